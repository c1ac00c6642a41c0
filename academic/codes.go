package academic

import "regexp"

var courseCodePattern = regexp.MustCompile(`^[[:upper:]]{3}[[:digit:]]{4}$`)
var termCodePattern = regexp.MustCompile(`^[FWS][[:digit:]]{4}$`)

func ValidCourseCode(code string) bool {
	return courseCodePattern.MatchString(code)
}

func ValidTerm(code string) bool {
	return termCodePattern.MatchString(code)
}
