package models

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseDate(t *testing.T) {
	tests := []struct {
		name    string
		value   string
		want    Date
		wantErr bool
	}{
		{name: "valid date", value: "2025-04-01", want: NewDate(2025, time.April, 1)},
		{name: "day first", value: "01-04-2025", wantErr: true},
		{name: "missing day", value: "2025-04", wantErr: true},
		{name: "empty", value: "", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseDate(tt.value)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestMonthKey(t *testing.T) {
	assert.Equal(t, "2025-04", NewDate(2025, time.April, 30).MonthKey())
	assert.Equal(t, "2025-12", NewDate(2025, time.December, 1).MonthKey())
}

func TestMonthRange(t *testing.T) {
	tests := []struct {
		name      string
		month     string
		wantStart Date
		wantEnd   Date
		wantErr   bool
	}{
		{name: "thirty-one days", month: "2025-01", wantStart: NewDate(2025, time.January, 1), wantEnd: NewDate(2025, time.January, 31)},
		{name: "february", month: "2025-02", wantStart: NewDate(2025, time.February, 1), wantEnd: NewDate(2025, time.February, 28)},
		{name: "leap february", month: "2024-02", wantStart: NewDate(2024, time.February, 1), wantEnd: NewDate(2024, time.February, 29)},
		{name: "missing zero padding", month: "2025-4", wantErr: true},
		{name: "not a month", month: "April", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			start, end, err := MonthRange(tt.month)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.wantStart, start)
			assert.Equal(t, tt.wantEnd, end)
		})
	}
}

func TestDateJSON(t *testing.T) {
	data, err := json.Marshal(NewDate(2025, time.April, 1))
	require.NoError(t, err)
	assert.Equal(t, `"2025-04-01"`, string(data))

	var d Date
	require.NoError(t, json.Unmarshal([]byte(`"2025-04-01"`), &d))
	assert.Equal(t, NewDate(2025, time.April, 1), d)

	assert.Error(t, json.Unmarshal([]byte(`"01.04.2025"`), &d))
}
