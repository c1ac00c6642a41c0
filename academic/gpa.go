package academic

import (
	"fmt"
	"math"
)

const (
	MinCredits = 1
	MaxCredits = 6
)

type Enrollment struct {
	StudentId  string
	CourseCode string
	TermCode   string
	Grade      *Grade // nil while the course is in progress
	Credits    int
}

// GPA distinguishes an earned average of 0.00 from "no GPA yet": a student
// whose only grades are W or in progress has no countable credits and Valid
// is false.
type GPA struct {
	Value float64
	Valid bool
}

func (g GPA) String() string {
	if !g.Valid {
		return "--"
	}
	return fmt.Sprintf("%.2f", g.Value)
}

// ComputeGPA returns the credit-weighted grade-point average of entries,
// rounded half-up to two decimal places. Withdrawn and in-progress entries
// are excluded entirely; an F contributes its credits with zero points.
func ComputeGPA(entries []Enrollment) (GPA, error) {
	var qualityPoints float64
	var credits int

	for _, entry := range entries {
		if entry.Credits < MinCredits || entry.Credits > MaxCredits {
			return GPA{}, InvalidCreditsError{Credits: entry.Credits}
		}
		if entry.Grade == nil || *entry.Grade == GradeW {
			continue
		}

		points, okay := entry.Grade.Points()
		if !okay {
			return GPA{}, InvalidGradeError{Grade: string(*entry.Grade)}
		}

		qualityPoints += points * float64(entry.Credits)
		credits += entry.Credits
	}

	if credits == 0 {
		return GPA{}, nil
	}
	return GPA{Value: roundHalfUp(qualityPoints/float64(credits), 2), Valid: true}, nil
}

func roundHalfUp(value float64, places int) float64 {
	shift := math.Pow(10, float64(places))
	return math.Floor(value*shift+0.5) / shift
}
