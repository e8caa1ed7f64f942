package project

import (
	"github.com/pkg/errors"

	"github.com/Radiyassin/login-campus-connect/core"
)

// StudentState is an immutable snapshot of a student board.
// Reducers never modify a StudentState in place, they return a new one.
type StudentState struct {
	Projects []StudentProject
}

// Stats counts the board projects per status.
func (s StudentState) Stats() StatusCounts {
	var counts StatusCounts
	for _, p := range s.Projects {
		counts.add(p.Status)
	}
	return counts
}

func (s StudentState) index(id string) int {
	for i, p := range s.Projects {
		if p.ID == id {
			return i
		}
	}
	return -1
}

// Has reports whether a project with this id is on the board.
func (s StudentState) Has(id string) bool { return s.index(id) >= 0 }

func (s StudentState) Get(id string) (StudentProject, error) {
	if i := s.index(id); i >= 0 {
		return s.Projects[i].clone(), nil
	}
	return StudentProject{}, ErrNotFound
}

func (s StudentState) clone() StudentState {
	projects := make([]StudentProject, len(s.Projects))
	for i, p := range s.Projects {
		projects[i] = p.clone()
	}
	return StudentState{Projects: projects}
}

// StudentAction is any action ReduceStudent knows how to apply.
type StudentAction interface {
	isStudentAction()
}

type (
	// CreateProject appends a new active project. ID and CreatedAt are assigned by the caller.
	CreateProject struct {
		ID          string
		Title       string
		Description string
		CreatedAt   string
	}

	// AddMember appends Email to the members of project ProjectID.
	AddMember struct {
		ProjectID string
		Email     string
	}
)

func (CreateProject) isStudentAction() {}
func (AddMember) isStudentAction()     {}

// ReduceStudent applies action to state and returns the next state.
// On error state is returned untouched.
func ReduceStudent(state StudentState, action StudentAction) (StudentState, error) {
	switch a := action.(type) {
	case CreateProject:
		return createProject(state, a)
	case AddMember:
		return addMember(state, a)
	default:
		return state, ErrUnknownAction
	}
}

func createProject(state StudentState, a CreateProject) (StudentState, error) {
	var flds []core.FieldError
	if core.CleanString(a.Title) == "" {
		flds = append(flds, core.FieldError{Field: "title", Error: "this field is required"})
	}
	if core.CleanString(a.Description) == "" {
		flds = append(flds, core.FieldError{Field: "description", Error: "this field is required"})
	}
	if flds != nil {
		return state, core.NewValidationError(nil, flds...)
	}
	if state.Has(a.ID) {
		return state, errors.Wrapf(ErrDuplicateID, "creating project %q", a.ID)
	}

	next := state.clone()
	next.Projects = append(next.Projects, StudentProject{
		ID:          a.ID,
		Title:       core.CleanString(a.Title),
		Description: core.CleanString(a.Description),
		Members:     []string{Founder},
		CreatedAt:   a.CreatedAt,
		Status:      StatusActive,
	})
	return next, nil
}

func addMember(state StudentState, a AddMember) (StudentState, error) {
	email := core.CleanString(a.Email)
	if email == "" {
		return state, core.NewValidationError(nil, core.FieldError{Field: "email", Error: "this field is required"})
	}
	i := state.index(a.ProjectID)
	if i < 0 {
		return state, ErrNotFound
	}
	if state.Projects[i].Status != StatusActive {
		return state, ErrNotActive
	}

	next := state.clone()
	next.Projects[i].Members = append(next.Projects[i].Members, email)
	return next, nil
}
