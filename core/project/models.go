package project

import (
	"math"
	"time"
)

// DateLayout is the layout of every project date (created_at, submitted_at).
const DateLayout = "2006-01-02"

// Founder is the name every student project starts with.
const Founder = "You"

type Status string

// Statuses
const (
	StatusActive    Status = "active"
	StatusSubmitted Status = "submitted"
	StatusGraded    Status = "graded"

	// StatusAll is only meaningful as a filter.
	StatusAll Status = "all"
)

var Statuses = []Status{StatusActive, StatusSubmitted, StatusGraded}

func (s Status) IsValid() bool {
	for _, st := range Statuses {
		if s == st {
			return true
		}
	}
	return false
}

// LetterGrades are the grades a professor can give, best first.
var LetterGrades = []string{"A+", "A", "A-", "B+", "B", "B-", "C+", "C", "C-", "D+", "D", "F"}

func IsLetterGrade(grade string) bool {
	for _, g := range LetterGrades {
		if g == grade {
			return true
		}
	}
	return false
}

// GradePoints maps a grade to GPA points using its first letter only:
// A=4, B=3, C=2, D=1, anything else 0. +/- modifiers are ignored.
func GradePoints(grade string) int {
	if grade == "" {
		return 0
	}
	switch grade[0] {
	case 'A':
		return 4
	case 'B':
		return 3
	case 'C':
		return 2
	case 'D':
		return 1
	default:
		return 0
	}
}

// AverageGPA returns the GPA average of grades rounded to one decimal. ok is false when grades is empty.
func AverageGPA(grades []string) (avg float64, ok bool) {
	if len(grades) == 0 {
		return 0, false
	}
	var total int
	for _, g := range grades {
		total += GradePoints(g)
	}
	avg = float64(total) / float64(len(grades))
	return math.Round(avg*10) / 10, true
}

// Today formats t the way project dates are stored, as a UTC date.
func Today(t time.Time) string {
	return t.UTC().Format(DateLayout)
}

// StudentProject is a project as seen from the student dashboard.
type StudentProject struct {
	ID          string   `json:"id"`
	Title       string   `json:"title"`
	Description string   `json:"description"`
	Members     []string `json:"members"`
	CreatedAt   string   `json:"created_at"`
	Status      Status   `json:"status"`
	Grade       string   `json:"grade,omitempty"`
}

func (p StudentProject) clone() StudentProject {
	p.Members = append([]string(nil), p.Members...)
	return p
}

// ProfessorProject is a project as seen from the professor dashboard.
type ProfessorProject struct {
	ID          string   `json:"id"`
	Title       string   `json:"title"`
	Description string   `json:"description"`
	Students    []string `json:"students"`
	CreatedAt   string   `json:"created_at"`
	SubmittedAt string   `json:"submitted_at,omitempty"`
	Status      Status   `json:"status"`
	Grade       string   `json:"grade,omitempty"`
	Feedback    string   `json:"feedback,omitempty"`
}

func (p ProfessorProject) clone() ProfessorProject {
	p.Students = append([]string(nil), p.Students...)
	return p
}

// StatusCounts counts projects per status.
type StatusCounts struct {
	Total     int `json:"total"`
	Active    int `json:"active"`
	Submitted int `json:"submitted"`
	Graded    int `json:"graded"`
}

func (c *StatusCounts) add(s Status) {
	c.Total++
	switch s {
	case StatusActive:
		c.Active++
	case StatusSubmitted:
		c.Submitted++
	case StatusGraded:
		c.Graded++
	}
}

// ProfessorStats are derived from a professor board, never stored.
type ProfessorStats struct {
	StatusCounts
	// AverageGPA is nil when no project has a grade.
	AverageGPA *float64 `json:"average_gpa"`
}
