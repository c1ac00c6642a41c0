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

func main() {
	godotenv.Load()

	flag.Parse()
	if flag.NArg() != 2 {
		log.Fatal("Usage: eligibility <student-id> <course-code>")
	}
	studentId := flag.Arg(0)
	targetCourse := flag.Arg(1)

	if !academic.ValidCourseCode(targetCourse) {
		log.Fatal(academic.InvalidCourseCodeError{Code: targetCourse})
	}

	pool, err := pgxpool.New(context.Background(), os.Getenv("DATABASE_CONNECTION_STRING"))
	if err != nil {
		log.Fatal(err)
	}
	defer pool.Close()
	database := db.Database{Pool: pool}

	prerequisites, err := database.PrerequisiteMap()
	if err != nil {
		log.Fatal(err)
	}

	enrollments, err := database.ListStudentEnrollments(studentId)
	if err != nil {
		log.Fatal(err)
	}

	eligibility, err := academic.CheckEligibility(enrollments, targetCourse, prerequisites)
	if err != nil {
		log.Fatal(err)
	}

	if eligibility.Eligible {
		fmt.Printf("%v is eligible to enrol in %v\n", studentId, targetCourse)
		return
	}

	fmt.Printf("%v is not eligible to enrol in %v; unmet prerequisites: %v\n",
		studentId, targetCourse, strings.Join(eligibility.Unmet.SortedValues(), ", "))
	os.Exit(1)
}
