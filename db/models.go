package db

type Term struct {
	Code string
	Name string
}

type Course struct {
	Code    string
	Name    string
	Credits int
}

type Prerequisite struct {
	CourseCode string
	PrereqCode string
}
