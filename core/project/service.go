package project

import (
	"context"
	"fmt"
	"net/mail"
	"strconv"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/pkg/errors"

	"github.com/Radiyassin/login-campus-connect/core"
)

// NowFunc is mockable in tests.
var NowFunc = time.Now

type (
	// Repository loads the boards of a signed-in user, seeding them on first access.
	Repository interface {
		StudentBoard(ctx context.Context, owner string) (*StudentStore, error)
		ProfessorBoard(ctx context.Context, owner string) (*ProfessorStore, error)
		DropBoards(ctx context.Context, owner string) error
	}

	// NewProject contains what a student provides to create a project.
	NewProject struct {
		Title       string `json:"title" validate:"required"`
		Description string `json:"description" validate:"required"`
	}

	NewMember struct {
		Email string `json:"email" validate:"required"`
	}

	GradeRequest struct {
		Grade    string `json:"grade" validate:"required,lettergrade"`
		Feedback string `json:"feedback" validate:"required"`
	}

	ProjectFilter struct {
		Status Status `query:"status" validate:"omitempty,projectstatus"`
	}
)

func (np *NewProject) Validate(validate *validator.Validate) error {
	np.Title = core.CleanString(np.Title)
	np.Description = core.CleanString(np.Description)
	return validate.Struct(np)
}

func (nm *NewMember) Validate(validate *validator.Validate) error {
	nm.Email = core.CleanString(nm.Email)
	return validate.Struct(nm)
}

func (gr *GradeRequest) Validate(validate *validator.Validate) error {
	gr.Grade = core.CleanString(gr.Grade)
	gr.Feedback = core.CleanString(gr.Feedback)
	return validate.Struct(gr)
}

func (pf *ProjectFilter) Validate(validate *validator.Validate) error {
	pf.Status = Status(core.CleanString(string(pf.Status), true /* lower */))
	return validate.Struct(pf)
}

// nextID returns the current Unix millisecond timestamp, bumped until no project of state uses it.
func nextID(state StudentState, now time.Time) string {
	ms := now.UnixNano() / int64(time.Millisecond)
	id := strconv.FormatInt(ms, 10)
	for state.Has(id) {
		ms++
		id = strconv.FormatInt(ms, 10)
	}
	return id
}

type StudentService struct {
	repo    Repository
	mailSvc core.EmailService
}

func NewStudentService(repo Repository, mailSvc core.EmailService) *StudentService {
	return &StudentService{repo: repo, mailSvc: mailSvc}
}

func (svc *StudentService) board(ctx context.Context, owner string) (*StudentStore, error) {
	store, err := svc.repo.StudentBoard(ctx, owner)
	if err != nil {
		return nil, errors.Wrapf(err, "loading student board of %q", owner)
	}
	return store, nil
}

func (svc *StudentService) Projects(ctx context.Context, owner string) ([]StudentProject, error) {
	store, err := svc.board(ctx, owner)
	if err != nil {
		return nil, err
	}
	return store.State().Projects, nil
}

func (svc *StudentService) Stats(ctx context.Context, owner string) (StatusCounts, error) {
	store, err := svc.board(ctx, owner)
	if err != nil {
		return StatusCounts{}, err
	}
	return store.State().Stats(), nil
}

// Create adds an active project founded by the board owner.
func (svc *StudentService) Create(ctx context.Context, owner string, np NewProject) (StudentProject, error) {
	store, err := svc.board(ctx, owner)
	if err != nil {
		return StudentProject{}, err
	}

	now := NowFunc()
	var id string
	state, err := store.Dispatch(func(current StudentState) StudentAction {
		id = nextID(current, now)
		return CreateProject{
			ID:          id,
			Title:       np.Title,
			Description: np.Description,
			CreatedAt:   Today(now),
		}
	})
	if err != nil {
		return StudentProject{}, err
	}
	return state.Get(id)
}

// AddMember appends a member to an active project and sends them an invite.
func (svc *StudentService) AddMember(ctx context.Context, owner, projectID string, nm NewMember) (StudentProject, error) {
	store, err := svc.board(ctx, owner)
	if err != nil {
		return StudentProject{}, err
	}

	state, err := store.Dispatch(func(StudentState) StudentAction {
		return AddMember{ProjectID: projectID, Email: nm.Email}
	})
	if err != nil {
		return StudentProject{}, err
	}
	proj, err := state.Get(projectID)
	if err != nil {
		return StudentProject{}, err
	}
	svc.sendInvite(owner, nm.Email, proj)
	return proj, nil
}

func (svc *StudentService) sendInvite(inviter, email string, proj StudentProject) {
	if svc.mailSvc == nil {
		return
	}
	svc.mailSvc.SendMessages(&core.EmailMessage{
		To:      []mail.Address{{Address: email}},
		Subject: fmt.Sprintf("You have been added to %q", proj.Title),
		Body:    fmt.Sprintf("%s added you to the project %q.\r\n\r\n%s", inviter, proj.Title, proj.Description),
	})
}

type ProfessorService struct {
	repo Repository
}

func NewProfessorService(repo Repository) *ProfessorService {
	return &ProfessorService{repo: repo}
}

func (svc *ProfessorService) board(ctx context.Context, owner string) (*ProfessorStore, error) {
	store, err := svc.repo.ProfessorBoard(ctx, owner)
	if err != nil {
		return nil, errors.Wrapf(err, "loading professor board of %q", owner)
	}
	return store, nil
}

// Projects returns the board projects with the given status; StatusAll or "" returns them all.
func (svc *ProfessorService) Projects(ctx context.Context, owner string, status Status) ([]ProfessorProject, error) {
	store, err := svc.board(ctx, owner)
	if err != nil {
		return nil, err
	}
	return store.State().FilterByStatus(status)
}

func (svc *ProfessorService) Stats(ctx context.Context, owner string) (ProfessorStats, error) {
	store, err := svc.board(ctx, owner)
	if err != nil {
		return ProfessorStats{}, err
	}
	return store.State().ComputeStats(), nil
}

func (svc *ProfessorService) Grade(ctx context.Context, owner, projectID string, gr GradeRequest) (ProfessorProject, error) {
	store, err := svc.board(ctx, owner)
	if err != nil {
		return ProfessorProject{}, err
	}
	state, err := store.Dispatch(GradeSubmission{ProjectID: projectID, Grade: gr.Grade, Feedback: gr.Feedback})
	if err != nil {
		return ProfessorProject{}, err
	}
	return state.Get(projectID)
}
