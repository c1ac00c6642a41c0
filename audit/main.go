package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"

	"github.com/algonquin/registrar/academic"
	"github.com/algonquin/registrar/db"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/joho/godotenv"
)

func ReportStudent(database db.Database, studentId string, termNames map[string]string) error {
	enrollments, err := database.ListStudentEnrollments(studentId)
	if err != nil {
		return err
	}

	fmt.Println(studentId)

	// Enrollments arrive ordered by term, so grouping preserves term order.
	var termCodes []string
	termEnrollments := make(map[string][]academic.Enrollment)
	for _, enrollment := range enrollments {
		if _, okay := termEnrollments[enrollment.TermCode]; !okay {
			termCodes = append(termCodes, enrollment.TermCode)
		}
		termEnrollments[enrollment.TermCode] = append(termEnrollments[enrollment.TermCode], enrollment)
	}

	for _, termCode := range termCodes {
		termGpa, err := academic.ComputeGPA(termEnrollments[termCode])
		if err != nil {
			return err
		}
		name, okay := termNames[termCode]
		if !okay {
			name = termCode
		}
		fmt.Printf("  %v  %v\n", name, termGpa)
	}

	cumulative, err := academic.ComputeGPA(enrollments)
	if err != nil {
		return err
	}
	fmt.Printf("  cumulative  %v\n", cumulative)

	return nil
}

func main() {
	godotenv.Load()

	studentId := flag.String("student", "", "report a single student")
	flag.Parse()

	pool, err := pgxpool.New(context.Background(), os.Getenv("DATABASE_CONNECTION_STRING"))
	if err != nil {
		log.Fatal(err)
	}
	defer pool.Close()
	database := db.Database{Pool: pool}

	terms, err := database.ListTerms()
	if err != nil {
		log.Fatal(err)
	}
	termNames := make(map[string]string)
	for _, term := range terms {
		termNames[term.Code] = term.Name
	}

	studentIds := []string{*studentId}
	if *studentId == "" {
		studentIds, err = database.ListStudentIds()
		if err != nil {
			log.Fatal(err)
		}
	}

	for _, studentId := range studentIds {
		if err := ReportStudent(database, studentId, termNames); err != nil {
			log.Fatal(err)
		}
	}
}
