package rate

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"

	"attendify_backend/models"
)

func records(statuses ...string) List {
	l := make(List, 0, len(statuses))
	for _, s := range statuses {
		l = append(l, Record{MemberID: uuid.New(), Status: s})
	}
	return l
}

func TestRate(t *testing.T) {
	tests := []struct {
		name    string
		list    List
		actual  bool
		want    float64
		counted bool
	}{
		{
			name:    "empty list has no nominal rate",
			list:    nil,
			counted: false,
		},
		{
			name:    "empty list has no actual rate",
			list:    nil,
			actual:  true,
			counted: false,
		},
		{
			name:    "all present",
			list:    records(models.StatusPresent, models.StatusPresent, models.StatusPresent),
			want:    100,
			counted: true,
		},
		{
			name:    "all absent",
			list:    records(models.StatusAbsent, models.StatusAbsent),
			want:    0,
			counted: true,
		},
		{
			name:    "late counts half",
			list:    records(models.StatusLate),
			want:    50,
			counted: true,
		},
		{
			name:    "early leave counts half",
			list:    records(models.StatusEarlyLeave),
			want:    50,
			counted: true,
		},
		{
			name:    "unexcused scores zero",
			list:    records(models.StatusPresent, models.StatusUnexcused),
			want:    50,
			counted: true,
		},
		{
			name:    "two thirds rounds up to one decimal",
			list:    records(models.StatusPresent, models.StatusPresent, models.StatusAbsent),
			want:    66.7,
			counted: true,
		},
		{
			name: "lecture day is skipped nominally",
			list: records(models.StatusPresent, models.StatusPresent,
				models.StatusAbsent, models.StatusLecture),
			want:    66.7,
			counted: true,
		},
		{
			name: "lecture day counts as absence actually",
			list: records(models.StatusPresent, models.StatusPresent,
				models.StatusAbsent, models.StatusLecture),
			actual:  true,
			want:    50,
			counted: true,
		},
		{
			name:    "only lectures leaves nothing to count nominally",
			list:    records(models.StatusLecture, models.StatusLecture),
			counted: false,
		},
		{
			name:    "only lectures is a zero actual rate",
			list:    records(models.StatusLecture, models.StatusLecture),
			actual:  true,
			want:    0,
			counted: true,
		},
		{
			name:    "unknown status is ignored nominally",
			list:    records(models.StatusPresent, "祝日"),
			want:    100,
			counted: true,
		},
		{
			name:    "unknown status scores zero actually",
			list:    records(models.StatusPresent, "祝日"),
			actual:  true,
			want:    50,
			counted: true,
		},
		{
			name:    "only unknown statuses leave nothing to count nominally",
			list:    records("祝日", "休み"),
			counted: false,
		},
		{
			name: "exact half rounds up",
			list: records(models.StatusLate, models.StatusLate, models.StatusLate,
				models.StatusLate, models.StatusLate, models.StatusLate,
				models.StatusLate, models.StatusAbsent),
			want:    43.8, // 350/8 = 43.75
			counted: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := tt.list.Rate(tt.actual)
			assert.Equal(t, tt.counted, ok)
			if tt.counted {
				assert.Equal(t, tt.want, got)
			}
		})
	}
}

func TestNominalNeverBelowActual(t *testing.T) {
	lists := []List{
		records(models.StatusPresent, models.StatusLecture, models.StatusAbsent),
		records(models.StatusLecture, models.StatusLecture, models.StatusPresent),
		records(models.StatusPresent, models.StatusLate, models.StatusEarlyLeave,
			models.StatusUnexcused, models.StatusLecture),
		records("祝日", models.StatusPresent),
		records(models.StatusAbsent, models.StatusAbsent, models.StatusLecture),
	}
	for _, l := range lists {
		nominal, nok := l.Rate(false)
		actual, aok := l.Rate(true)
		assert.True(t, nok)
		assert.True(t, aok)
		assert.GreaterOrEqual(t, nominal, actual)
	}
}

func TestFilterPart(t *testing.T) {
	list := List{
		{MemberID: uuid.New(), Part: models.PartFlute, Status: models.StatusPresent},
		{MemberID: uuid.New(), Part: models.PartTrumpet, Status: models.StatusAbsent},
		{MemberID: uuid.New(), Part: models.PartFlute, Status: models.StatusAbsent},
	}

	flutes := list.FilterPart(models.PartFlute)
	assert.Len(t, flutes, 2)
	for _, r := range flutes {
		assert.Equal(t, models.PartFlute, r.Part)
	}

	rate, ok := flutes.Rate(false)
	assert.True(t, ok)
	assert.Equal(t, 50.0, rate)

	assert.Empty(t, list.FilterPart(models.PartPercussion))
}

func TestFilterMember(t *testing.T) {
	target := uuid.New()
	list := List{
		{MemberID: target, Status: models.StatusPresent},
		{MemberID: uuid.New(), Status: models.StatusAbsent},
		{MemberID: target, Status: models.StatusLecture},
	}

	own := list.FilterMember(target)
	assert.Len(t, own, 2)

	nominal, ok := own.Rate(false)
	assert.True(t, ok)
	assert.Equal(t, 100.0, nominal)

	actual, ok := own.Rate(true)
	assert.True(t, ok)
	assert.Equal(t, 50.0, actual)
}
