package project

import "github.com/Radiyassin/login-campus-connect/core"

// ProfessorState is an immutable snapshot of a professor board.
type ProfessorState struct {
	Projects []ProfessorProject
}

func (s ProfessorState) index(id string) int {
	for i, p := range s.Projects {
		if p.ID == id {
			return i
		}
	}
	return -1
}

func (s ProfessorState) Get(id string) (ProfessorProject, error) {
	if i := s.index(id); i >= 0 {
		return s.Projects[i].clone(), nil
	}
	return ProfessorProject{}, ErrNotFound
}

func (s ProfessorState) clone() ProfessorState {
	projects := make([]ProfessorProject, len(s.Projects))
	for i, p := range s.Projects {
		projects[i] = p.clone()
	}
	return ProfessorState{Projects: projects}
}

// FilterByStatus returns the projects with the given status, in board order.
// StatusAll (or "") returns every project. The state is not modified.
func (s ProfessorState) FilterByStatus(status Status) ([]ProfessorProject, error) {
	if status != "" && status != StatusAll && !status.IsValid() {
		return nil, ErrUnknownStatus
	}
	res := make([]ProfessorProject, 0, len(s.Projects))
	for _, p := range s.Projects {
		if status == "" || status == StatusAll || p.Status == status {
			res = append(res, p.clone())
		}
	}
	return res, nil
}

// ComputeStats counts projects per status and averages the GPA points of every graded project.
func (s ProfessorState) ComputeStats() ProfessorStats {
	var stats ProfessorStats
	var grades []string
	for _, p := range s.Projects {
		stats.add(p.Status)
		if p.Grade != "" {
			grades = append(grades, p.Grade)
		}
	}
	if avg, ok := AverageGPA(grades); ok {
		stats.AverageGPA = &avg
	}
	return stats
}

// ProfessorAction is any action ReduceProfessor knows how to apply.
type ProfessorAction interface {
	isProfessorAction()
}

// GradeSubmission moves project ProjectID to graded, setting Grade and Feedback together.
type GradeSubmission struct {
	ProjectID string
	Grade     string
	Feedback  string
}

func (GradeSubmission) isProfessorAction() {}

// ReduceProfessor applies action to state and returns the next state.
// On error state is returned untouched.
func ReduceProfessor(state ProfessorState, action ProfessorAction) (ProfessorState, error) {
	switch a := action.(type) {
	case GradeSubmission:
		return gradeSubmission(state, a)
	default:
		return state, ErrUnknownAction
	}
}

func gradeSubmission(state ProfessorState, a GradeSubmission) (ProfessorState, error) {
	grade := core.CleanString(a.Grade)
	feedback := core.CleanString(a.Feedback)

	var flds []core.FieldError
	if grade == "" {
		flds = append(flds, core.FieldError{Field: "grade", Error: "this field is required"})
	}
	if feedback == "" {
		flds = append(flds, core.FieldError{Field: "feedback", Error: "this field is required"})
	}
	if flds != nil {
		return state, core.NewValidationError(nil, flds...)
	}

	i := state.index(a.ProjectID)
	if i < 0 {
		return state, ErrNotFound
	}
	// grading an active project is allowed; only a second grading is not.
	if state.Projects[i].Status == StatusGraded {
		return state, ErrAlreadyGraded
	}

	graded := state.Projects[i].clone()
	graded.Status = StatusGraded
	graded.Grade = grade
	graded.Feedback = feedback

	next := state.clone()
	next.Projects[i] = graded
	return next, nil
}
