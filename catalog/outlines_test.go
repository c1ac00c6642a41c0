package main

import (
	"strings"
	"testing"

	"github.com/PuerkitoBio/goquery"
	"github.com/algonquin/registrar/academic"
	"github.com/algonquin/registrar/db"
	"github.com/stretchr/testify/assert"
)

const programPage = `
<html><body>
<table class="course-outline">
<tbody>
<tr><td>CST8101</td><td>Computer Essentials</td><td>3</td><td>None</td></tr>
<tr><td>CST8284</td><td>Object Oriented Programming &amp; Java</td><td>4</td><td>CST8101</td></tr>
<tr><td>CST8285</td><td>Web Programming</td><td>3</td><td>Prerequisites: CST8284 and CST8101, or equivalent</td></tr>
<tr><td>BAD123</td><td>Broken Row</td><td>3</td><td></td></tr>
<tr><td>CST9999</td><td>Bad Credits</td><td>nine</td><td></td></tr>
</tbody>
</table>
</body></html>`

func TestParseProgramCourses(t *testing.T) {
	document, err := goquery.NewDocumentFromReader(strings.NewReader(programPage))
	assert.NoError(t, err)

	courses, prerequisites := ParseProgramCourses(document)

	assert.Equal(t, []db.Course{
		{Code: "CST8101", Name: "Computer Essentials", Credits: 3},
		{Code: "CST8284", Name: "Object Oriented Programming & Java", Credits: 4},
		{Code: "CST8285", Name: "Web Programming", Credits: 3},
	}, courses)

	assert.Equal(t, []db.Prerequisite{
		{CourseCode: "CST8284", PrereqCode: "CST8101"},
		{CourseCode: "CST8285", PrereqCode: "CST8284"},
		{CourseCode: "CST8285", PrereqCode: "CST8101"},
	}, prerequisites)
}

func TestParseProgramCoursesDropsSelfReference(t *testing.T) {
	page := `<table class="course-outline"><tbody>
<tr><td>CST8284</td><td>OOP</td><td>3</td><td>CST8284</td></tr>
</tbody></table>`
	document, err := goquery.NewDocumentFromReader(strings.NewReader(page))
	assert.NoError(t, err)

	courses, prerequisites := ParseProgramCourses(document)
	assert.Len(t, courses, 1)
	assert.Empty(t, prerequisites)
}

func TestParsePrerequisiteCodes(t *testing.T) {
	codes := ParsePrerequisiteCodes("Prerequisites: CST8284 and CST8101 or MAT8001 (CST8284 recommended first)")
	assert.Equal(t, []string{"CST8284", "CST8101", "MAT8001"}, codes)

	assert.Empty(t, ParsePrerequisiteCodes("None"))
	assert.Empty(t, ParsePrerequisiteCodes(""))
}

func TestParseCredits(t *testing.T) {
	credits, err := ParseCredits(" 3 ")
	assert.NoError(t, err)
	assert.Equal(t, 3, credits)

	_, err = ParseCredits("three")
	assert.Error(t, err)

	_, err = ParseCredits("0")
	assert.ErrorIs(t, err, academic.InvalidCreditsError{Credits: 0})

	_, err = ParseCredits("9")
	assert.ErrorIs(t, err, academic.InvalidCreditsError{Credits: 9})
}

func TestParseProgramLinks(t *testing.T) {
	page := `<ul class="program-index">
<li><a href="/programs/0156X01FWO">Computer Engineering Technology</a></li>
<li><a href="/programs/1561X01FWO">Business Administration</a></li>
<li><a>No Link</a></li>
</ul>`
	document, err := goquery.NewDocumentFromReader(strings.NewReader(page))
	assert.NoError(t, err)

	links := ParseProgramLinks(document)
	assert.Equal(t, []string{"/programs/0156X01FWO", "/programs/1561X01FWO"}, links)
}
