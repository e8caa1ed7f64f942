package echoapi

import (
	"net/http"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"

	"github.com/Radiyassin/login-campus-connect/core"
	"github.com/Radiyassin/login-campus-connect/core/project"
)

type studentApi struct {
	svc      *project.StudentService
	validate *validator.Validate
	metrics  *Metrics
}

func registerStudentAPI(g *echo.Group, jwt echo.MiddlewareFunc, deps ServerDeps) {
	api := studentApi{
		svc:      deps.StudentSvc,
		validate: deps.Validate,
		metrics:  deps.Metrics,
	}

	sg := g.Group("/student", jwt, roleMiddleware(core.RoleStudent))
	sg.GET("/projects", api.query)
	sg.POST("/projects", api.create)
	sg.POST("/projects/:id/members", api.addMember)
	sg.GET("/stats", api.stats)
}

// Handlers

func (api *studentApi) query(ctx echo.Context) error {
	claims, err := getContextClaims(ctx)
	if err != nil {
		return errors.Wrap(err, "getting context claims")
	}
	projects, err := api.svc.Projects(ctx.Request().Context(), claims.Subject)
	if err != nil {
		return errors.Wrap(err, "querying projects")
	}
	return ctx.JSON(http.StatusOK, projects)
}

func (api *studentApi) create(ctx echo.Context) error {
	claims, err := getContextClaims(ctx)
	if err != nil {
		return errors.Wrap(err, "getting context claims")
	}

	var data project.NewProject
	if err = ctx.Bind(&data); err != nil {
		return errors.Wrap(err, "binding to NewProject")
	}
	if err = data.Validate(api.validate); err != nil {
		return err
	}

	proj, err := api.svc.Create(ctx.Request().Context(), claims.Subject, data)
	if err != nil {
		return errors.Wrap(err, "creating project")
	}
	api.metrics.ProjectsCreated.Inc()

	return ctx.JSON(http.StatusCreated, proj)
}

func (api *studentApi) addMember(ctx echo.Context) error {
	claims, err := getContextClaims(ctx)
	if err != nil {
		return errors.Wrap(err, "getting context claims")
	}

	var data project.NewMember
	if err = ctx.Bind(&data); err != nil {
		return errors.Wrap(err, "binding to NewMember")
	}
	if err = data.Validate(api.validate); err != nil {
		return err
	}

	proj, err := api.svc.AddMember(ctx.Request().Context(), claims.Subject, ctx.Param("id"), data)
	if err != nil {
		return errors.Wrap(err, "adding member")
	}
	api.metrics.MembersAdded.Inc()

	return ctx.JSON(http.StatusOK, proj)
}

func (api *studentApi) stats(ctx echo.Context) error {
	claims, err := getContextClaims(ctx)
	if err != nil {
		return errors.Wrap(err, "getting context claims")
	}
	stats, err := api.svc.Stats(ctx.Request().Context(), claims.Subject)
	if err != nil {
		return errors.Wrap(err, "computing stats")
	}
	return ctx.JSON(http.StatusOK, stats)
}
