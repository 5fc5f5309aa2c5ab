package rate

import (
	"time"

	"github.com/google/uuid"

	"attendify_backend/models"
)

// excluded marks a status that drops the record from the calculation.
const excluded = -1

// nominalScores weight each status for the nominal rate. Lecture days do
// not count either way, and neither does a status outside the vocabulary.
var nominalScores = map[string]int{
	models.StatusPresent:    100,
	models.StatusAbsent:     0,
	models.StatusLecture:    excluded,
	models.StatusLate:       50,
	models.StatusEarlyLeave: 50,
	models.StatusUnexcused:  0,
}

// actualScores weight each status for the actual rate. Lecture days count
// as absences here, and so does anything unrecognized.
var actualScores = map[string]int{
	models.StatusPresent:    100,
	models.StatusAbsent:     0,
	models.StatusLecture:    0,
	models.StatusLate:       50,
	models.StatusEarlyLeave: 50,
	models.StatusUnexcused:  0,
}

// Record is one attendance mark reduced to what the calculation needs.
type Record struct {
	Date     time.Time
	MemberID uuid.UUID
	Part     models.Part
	Status   string
}

// List is a set of records a rate is computed over.
type List []Record

// Rate returns the attendance percentage of the list on a 0-100 scale,
// rounded half-up to one decimal. ok is false when no record counted,
// which the caller must keep distinct from a rate of zero.
func (l List) Rate(actual bool) (rate float64, ok bool) {
	scores := nominalScores
	if actual {
		scores = actualScores
	}
	sum, total := 0, 0
	for _, r := range l {
		score, known := scores[r.Status]
		if !known {
			if !actual {
				continue
			}
			score = 0
		}
		if score == excluded {
			continue
		}
		sum += score
		total++
	}
	if total == 0 {
		return 0, false
	}
	// Integer tenths keep the half-up tie exact; going through float64
	// first can land just under the true half.
	tenths := (20*sum + total) / (2 * total)
	return float64(tenths) / 10, true
}

// FilterPart keeps the records of members belonging to part p.
func (l List) FilterPart(p models.Part) List {
	out := make(List, 0, len(l))
	for _, r := range l {
		if r.Part == p {
			out = append(out, r)
		}
	}
	return out
}

// FilterMember keeps the records of a single member.
func (l List) FilterMember(id uuid.UUID) List {
	out := make(List, 0, len(l))
	for _, r := range l {
		if r.MemberID == id {
			out = append(out, r)
		}
	}
	return out
}
