package main

import (
	"errors"
	"fmt"
	"log"
	"net/http"
	"regexp"
	"strconv"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/algonquin/registrar/academic"
	"github.com/algonquin/registrar/db"
	"golang.org/x/net/html"
)

var courseCodePattern = regexp.MustCompile(`[[:upper:]]{3}[[:digit:]]{4}`)

// ParsePrerequisiteCodes extracts the course codes named in the free-text
// prerequisite cell, in order of appearance, without duplicates. Text such as
// "CST8284 and CST8101 or equivalent" yields [CST8284 CST8101].
func ParsePrerequisiteCodes(text string) []string {
	var codes []string
	seen := make(map[string]bool)
	for _, code := range courseCodePattern.FindAllString(text, -1) {
		if seen[code] {
			continue
		}
		seen[code] = true
		codes = append(codes, code)
	}
	return codes
}

func ParseCredits(text string) (int, error) {
	credits, err := strconv.Atoi(strings.TrimSpace(text))
	if err != nil {
		msg := fmt.Sprintf("Unable to convert credits text '%v' to int", text)
		return 0, errors.New(msg)
	}
	if credits < academic.MinCredits || credits > academic.MaxCredits {
		return 0, academic.InvalidCreditsError{Credits: credits}
	}
	return credits, nil
}

func ParseProgramLinks(document *goquery.Document) []string {
	var links []string
	document.Find("ul.program-index").Find("a").Each(func(i int, anchor *goquery.Selection) {
		link, exists := anchor.Attr("href")
		if !exists {
			log.Println("Unable to determine program link")
			return
		}
		links = append(links, link)
	})
	return links
}

// ParseProgramCourses reads the outline table of a program page. Each row
// carries the course code, title, credit value and prerequisite text.
// Malformed rows are logged and skipped rather than aborting the program.
func ParseProgramCourses(document *goquery.Document) ([]db.Course, []db.Prerequisite) {
	var courses []db.Course
	var prerequisites []db.Prerequisite

	outlineRows := document.Find("table.course-outline").Find("tbody").Find("tr")
	outlineRows.Each(func(i int, outlineRow *goquery.Selection) {
		cells := outlineRow.Find("td")
		if cells.Length() < 4 {
			log.Println("Unable to determine course outline columns")
			return
		}

		code := strings.TrimSpace(cells.Eq(0).Text())
		if !academic.ValidCourseCode(code) {
			log.Println(academic.InvalidCourseCodeError{Code: code})
			return
		}

		name, err := cells.Eq(1).Html()
		if err != nil {
			log.Println("Unable to determine course title for " + code)
			return
		}
		name = strings.TrimSpace(html.UnescapeString(name))

		credits, err := ParseCredits(cells.Eq(2).Text())
		if err != nil {
			log.Println(err)
			return
		}

		courses = append(courses, db.Course{Code: code, Name: name, Credits: credits})
		for _, prereqCode := range ParsePrerequisiteCodes(cells.Eq(3).Text()) {
			if prereqCode == code {
				log.Println(academic.CyclicPrerequisiteError{Cycle: []string{code}})
				continue
			}
			prerequisites = append(prerequisites, db.Prerequisite{CourseCode: code, PrereqCode: prereqCode})
		}
	})

	return courses, prerequisites
}

func ScrapeProgramCourses(programUrl string) ([]db.Course, []db.Prerequisite, error) {
	response, err := http.Get(programUrl)
	if err != nil {
		return nil, nil, err
	}
	defer response.Body.Close()

	document, err := goquery.NewDocumentFromReader(response.Body)
	if err != nil {
		return nil, nil, err
	}

	courses, prerequisites := ParseProgramCourses(document)
	return courses, prerequisites, nil
}
