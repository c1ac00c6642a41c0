package db

import (
	"context"

	"github.com/algonquin/registrar/academic"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
)

const listTerms = `SELECT code, name FROM terms ORDER BY term_rank(code)`
const insertTerm = `INSERT INTO terms (code, name) VALUES ($1, $2) ON CONFLICT DO NOTHING`

const listCourses = `SELECT code, name, credits FROM courses ORDER BY code`
const insertCourse = `INSERT INTO courses (code, name, credits) VALUES ($1, $2, $3) ON CONFLICT (code) DO UPDATE SET name=EXCLUDED.name, credits=EXCLUDED.credits`

const listPrerequisites = `SELECT course_code, prereq_code FROM prerequisites ORDER BY course_code, prereq_code`
const insertPrerequisite = `INSERT INTO prerequisites (course_code, prereq_code) VALUES ($1, $2) ON CONFLICT DO NOTHING`

const listStudentIds = `SELECT DISTINCT student_id FROM enrollments ORDER BY student_id`
const listStudentEnrollments = `SELECT student_id, course_code, term_code, grade, credits FROM enrollments WHERE student_id = $1 ORDER BY term_rank(term_code), course_code`
const insertEnrollment = `INSERT INTO enrollments (student_id, course_code, term_code, grade, credits) VALUES ($1, $2, $3, $4, $5) ON CONFLICT (student_id, course_code, term_code) DO UPDATE SET grade=EXCLUDED.grade, credits=EXCLUDED.credits`

func insertCallback(ct pgconn.CommandTag) error {
	return nil
}

func (d *Database) ListTerms() ([]Term, error) {
	sql := listTerms
	rows, err := d.Pool.Query(context.Background(), sql)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var terms []Term
	for rows.Next() {
		var term Term
		if err := rows.Scan(&term.Code, &term.Name); err != nil {
			return nil, err
		}
		terms = append(terms, term)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return terms, nil
}

func (d *Database) InsertTerms(terms []Term) error {
	if len(terms) == 0 {
		return nil
	}

	batch := pgx.Batch{}
	var queuedQueries []*pgx.QueuedQuery

	for _, term := range terms {
		queuedQueries = append(queuedQueries, batch.Queue(insertTerm, term.Code, term.Name))
	}

	for _, queuedQuery := range queuedQueries {
		queuedQuery.Exec(insertCallback)
	}

	if err := d.Pool.SendBatch(context.Background(), &batch).Close(); err != nil {
		return err
	}

	return nil
}

func (d *Database) ListCourses() ([]Course, error) {
	sql := listCourses
	rows, err := d.Pool.Query(context.Background(), sql)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var courses []Course
	for rows.Next() {
		var course Course
		if err := rows.Scan(&course.Code, &course.Name, &course.Credits); err != nil {
			return nil, err
		}
		courses = append(courses, course)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return courses, nil
}

func (d *Database) InsertCourses(courses []Course) error {
	if len(courses) == 0 {
		return nil
	}

	batch := pgx.Batch{}
	var queuedQueries []*pgx.QueuedQuery

	for _, course := range courses {
		queuedQueries = append(queuedQueries, batch.Queue(insertCourse, course.Code, course.Name, course.Credits))
	}

	for _, queuedQuery := range queuedQueries {
		queuedQuery.Exec(insertCallback)
	}

	if err := d.Pool.SendBatch(context.Background(), &batch).Close(); err != nil {
		return err
	}

	return nil
}

// PrerequisiteMap materializes the prerequisites table in the shape
// academic.CheckEligibility consumes.
func (d *Database) PrerequisiteMap() (map[string][]string, error) {
	sql := listPrerequisites
	rows, err := d.Pool.Query(context.Background(), sql)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	prerequisites := make(map[string][]string)
	for rows.Next() {
		var prerequisite Prerequisite
		if err := rows.Scan(&prerequisite.CourseCode, &prerequisite.PrereqCode); err != nil {
			return nil, err
		}
		prerequisites[prerequisite.CourseCode] = append(prerequisites[prerequisite.CourseCode], prerequisite.PrereqCode)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return prerequisites, nil
}

func (d *Database) InsertPrerequisites(prerequisites []Prerequisite) error {
	if len(prerequisites) == 0 {
		return nil
	}

	batch := pgx.Batch{}
	var queuedQueries []*pgx.QueuedQuery

	for _, prerequisite := range prerequisites {
		queuedQueries = append(queuedQueries, batch.Queue(insertPrerequisite, prerequisite.CourseCode, prerequisite.PrereqCode))
	}

	for _, queuedQuery := range queuedQueries {
		queuedQuery.Exec(insertCallback)
	}

	if err := d.Pool.SendBatch(context.Background(), &batch).Close(); err != nil {
		return err
	}

	return nil
}

func (d *Database) ListStudentIds() ([]string, error) {
	sql := listStudentIds
	rows, err := d.Pool.Query(context.Background(), sql)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var studentIds []string
	for rows.Next() {
		var studentId string
		if err := rows.Scan(&studentId); err != nil {
			return nil, err
		}
		studentIds = append(studentIds, studentId)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return studentIds, nil
}

func (d *Database) ListStudentEnrollments(studentId string) ([]academic.Enrollment, error) {
	sql := listStudentEnrollments
	rows, err := d.Pool.Query(context.Background(), sql, studentId)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var enrollments []academic.Enrollment
	for rows.Next() {
		var enrollment academic.Enrollment
		var grade *string
		if err := rows.Scan(&enrollment.StudentId, &enrollment.CourseCode, &enrollment.TermCode, &grade, &enrollment.Credits); err != nil {
			return nil, err
		}
		enrollment.Grade = ParseOptionalGrade(grade)
		enrollments = append(enrollments, enrollment)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return enrollments, nil
}

func (d *Database) InsertEnrollments(enrollments []academic.Enrollment) error {
	if len(enrollments) == 0 {
		return nil
	}

	batch := pgx.Batch{}
	var queuedQueries []*pgx.QueuedQuery

	for _, enrollment := range enrollments {
		grade := FormatOptionalGrade(enrollment.Grade)
		queuedQueries = append(queuedQueries, batch.Queue(insertEnrollment, enrollment.StudentId, enrollment.CourseCode, enrollment.TermCode, grade, enrollment.Credits))
	}

	for _, queuedQuery := range queuedQueries {
		queuedQuery.Exec(insertCallback)
	}

	if err := d.Pool.SendBatch(context.Background(), &batch).Close(); err != nil {
		return err
	}

	return nil
}
