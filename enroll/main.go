package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"
	"strings"

	"github.com/algonquin/registrar/academic"
	"github.com/algonquin/registrar/db"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/joho/godotenv"
)

var seasonNames = map[byte]string{
	'F': "Fall",
	'W': "Winter",
	'S': "Spring/Summer",
}

func TermName(code string) string {
	return seasonNames[code[0]] + " " + code[1:]
}

func main() {
	godotenv.Load()

	grade := flag.String("grade", "", "final grade; omit for an in-progress enrollment")
	flag.Parse()
	if flag.NArg() != 3 {
		log.Fatal("Usage: enroll [-grade <grade>] <student-id> <course-code> <term-code>")
	}
	studentId := flag.Arg(0)
	courseCode := flag.Arg(1)
	termCode := flag.Arg(2)

	if !academic.ValidCourseCode(courseCode) {
		log.Fatal(academic.InvalidCourseCodeError{Code: courseCode})
	}
	if !academic.ValidTerm(termCode) {
		log.Fatal(academic.InvalidTermError{Code: termCode})
	}

	var finalGrade *academic.Grade
	if *grade != "" {
		g := academic.Grade(*grade)
		if !g.Valid() {
			log.Fatal(academic.InvalidGradeError{Grade: *grade})
		}
		finalGrade = &g
	}

	pool, err := pgxpool.New(context.Background(), os.Getenv("DATABASE_CONNECTION_STRING"))
	if err != nil {
		log.Fatal(err)
	}
	defer pool.Close()
	database := db.Database{Pool: pool}

	courses, err := database.ListCourses()
	if err != nil {
		log.Fatal(err)
	}
	var course *db.Course
	for i := range courses {
		if courses[i].Code == courseCode {
			course = &courses[i]
			break
		}
	}
	if course == nil {
		log.Fatal("Course is not in the catalog: " + courseCode)
	}

	prerequisites, err := database.PrerequisiteMap()
	if err != nil {
		log.Fatal(err)
	}
	enrollments, err := database.ListStudentEnrollments(studentId)
	if err != nil {
		log.Fatal(err)
	}

	eligibility, err := academic.CheckEligibility(enrollments, courseCode, prerequisites)
	if err != nil {
		log.Fatal(err)
	}
	if !eligibility.Eligible {
		fmt.Printf("%v is not eligible to enrol in %v; unmet prerequisites: %v\n",
			studentId, courseCode, strings.Join(eligibility.Unmet.SortedValues(), ", "))
		os.Exit(1)
	}

	if err := database.InsertTerms([]db.Term{{Code: termCode, Name: TermName(termCode)}}); err != nil {
		log.Fatal(err)
	}

	enrollment := academic.Enrollment{
		StudentId:  studentId,
		CourseCode: courseCode,
		TermCode:   termCode,
		Grade:      finalGrade,
		Credits:    course.Credits,
	}
	if err := database.InsertEnrollments([]academic.Enrollment{enrollment}); err != nil {
		log.Fatal(err)
	}

	fmt.Printf("Enrolled %v in %v for %v\n", studentId, courseCode, TermName(termCode))
}
