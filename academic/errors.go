package academic

import (
	"fmt"
	"strings"
)

type InvalidGradeError struct {
	Grade string
}

func (e InvalidGradeError) Error() string {
	return fmt.Sprintf("Invalid grade %q", e.Grade)
}

type InvalidCreditsError struct {
	Credits int
}

func (e InvalidCreditsError) Error() string {
	return fmt.Sprintf("Invalid credits %v: must be between %v and %v", e.Credits, MinCredits, MaxCredits)
}

type InvalidCourseCodeError struct {
	Code string
}

func (e InvalidCourseCodeError) Error() string {
	return fmt.Sprintf("Invalid course code %q", e.Code)
}

type InvalidTermError struct {
	Code string
}

func (e InvalidTermError) Error() string {
	return fmt.Sprintf("Invalid term code %q", e.Code)
}

// Cycle holds the offending course codes in requirement order; the first
// element is repeated implicitly as the target of the last.
type CyclicPrerequisiteError struct {
	Cycle []string
}

func (e CyclicPrerequisiteError) Error() string {
	closed := append(append([]string{}, e.Cycle...), e.Cycle[0])
	return "Prerequisite cycle: " + strings.Join(closed, " -> ")
}
