package models

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNormalizePart(t *testing.T) {
	tests := []struct {
		name  string
		value string
		want  Part
	}{
		{name: "known part", value: "fl", want: PartFlute},
		{name: "bass", value: "bass", want: PartBass},
		{name: "unknown instrument", value: "piano", want: PartUnknown},
		{name: "empty", value: "", want: PartUnknown},
		{name: "wrong case", value: "FL", want: PartUnknown},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, NormalizePart(tt.value))
		})
	}
}

func TestPartDetailFallback(t *testing.T) {
	assert.Equal(t, "トランペット", PartTrumpet.Detail().JP)
	assert.Equal(t, Part("piano").Detail(), PartUnknown.Detail())
}

func TestPartUnmarshalNormalizes(t *testing.T) {
	var payload struct {
		Part Part `json:"part"`
	}
	require.NoError(t, json.Unmarshal([]byte(`{"part":"piano"}`), &payload))
	assert.Equal(t, PartUnknown, payload.Part)
}

func TestNormalizeRole(t *testing.T) {
	assert.Equal(t, RoleExecutive, NormalizeRole("exec"))
	assert.Equal(t, RoleUnknown, NormalizeRole("president"))
}
