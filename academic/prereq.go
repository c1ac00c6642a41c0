package academic

import (
	"slices"

	"github.com/juju/collections/set"
)

type Eligibility struct {
	Eligible bool
	Unmet    set.Strings
}

// ValidatePrerequisites rejects a prerequisite map whose requirement graph is
// not a DAG. Self-references are one-element cycles.
func ValidatePrerequisites(prerequisites map[string][]string) error {
	const (
		unvisited = iota
		visiting
		finished
	)

	state := make(map[string]int)
	var stack []string

	var visit func(code string) *CyclicPrerequisiteError
	visit = func(code string) *CyclicPrerequisiteError {
		state[code] = visiting
		stack = append(stack, code)

		for _, required := range prerequisites[code] {
			switch state[required] {
			case visiting:
				start := slices.Index(stack, required)
				return &CyclicPrerequisiteError{Cycle: slices.Clone(stack[start:])}
			case unvisited:
				if err := visit(required); err != nil {
					return err
				}
			}
		}

		stack = stack[:len(stack)-1]
		state[code] = finished
		return nil
	}

	codes := make([]string, 0, len(prerequisites))
	for code := range prerequisites {
		codes = append(codes, code)
	}
	slices.Sort(codes)

	for _, code := range codes {
		if state[code] == unvisited {
			if err := visit(code); err != nil {
				return *err
			}
		}
	}
	return nil
}

// CheckEligibility determines whether a student may enrol in targetCourse. A
// prerequisite is satisfied only by a completed record with a passing grade;
// an attempt ending in F or W does not count, nor does an in-progress entry.
// A target absent from the map has no prerequisites.
func CheckEligibility(completed []Enrollment, targetCourse string, prerequisites map[string][]string) (Eligibility, error) {
	if err := ValidatePrerequisites(prerequisites); err != nil {
		return Eligibility{}, err
	}

	passed := set.NewStrings()
	for _, entry := range completed {
		if entry.Grade == nil {
			continue
		}
		if !entry.Grade.Valid() {
			return Eligibility{}, InvalidGradeError{Grade: string(*entry.Grade)}
		}
		if entry.Grade.Passing() {
			passed.Add(entry.CourseCode)
		}
	}

	required := set.NewStrings(prerequisites[targetCourse]...)
	unmet := required.Difference(passed)

	return Eligibility{Eligible: unmet.IsEmpty(), Unmet: unmet}, nil
}
