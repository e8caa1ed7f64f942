package echoapi

import (
	"net/http"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"

	"github.com/Radiyassin/login-campus-connect/core"
	"github.com/Radiyassin/login-campus-connect/core/project"
)

type professorApi struct {
	svc      *project.ProfessorService
	validate *validator.Validate
	metrics  *Metrics
}

func registerProfessorAPI(g *echo.Group, jwt echo.MiddlewareFunc, deps ServerDeps) {
	api := professorApi{
		svc:      deps.ProfessorSvc,
		validate: deps.Validate,
		metrics:  deps.Metrics,
	}

	pg := g.Group("/professor", jwt, roleMiddleware(core.RoleProfessor))
	pg.GET("/projects", api.query)
	pg.POST("/projects/:id/grade", api.grade)
	pg.GET("/stats", api.stats)
}

// Handlers

func (api *professorApi) query(ctx echo.Context) error {
	claims, err := getContextClaims(ctx)
	if err != nil {
		return errors.Wrap(err, "getting context claims")
	}

	filter := project.ProjectFilter{Status: project.Status(ctx.QueryParam("status"))}
	if err = filter.Validate(api.validate); err != nil {
		return err
	}

	projects, err := api.svc.Projects(ctx.Request().Context(), claims.Subject, filter.Status)
	if err != nil {
		return errors.Wrap(err, "filtering projects")
	}
	return ctx.JSON(http.StatusOK, projects)
}

func (api *professorApi) grade(ctx echo.Context) error {
	claims, err := getContextClaims(ctx)
	if err != nil {
		return errors.Wrap(err, "getting context claims")
	}

	var data project.GradeRequest
	if err = ctx.Bind(&data); err != nil {
		return errors.Wrap(err, "binding to GradeRequest")
	}
	if err = data.Validate(api.validate); err != nil {
		return err
	}

	proj, err := api.svc.Grade(ctx.Request().Context(), claims.Subject, ctx.Param("id"), data)
	if err != nil {
		return errors.Wrap(err, "grading submission")
	}
	api.metrics.SubmissionsGraded.Inc()

	return ctx.JSON(http.StatusOK, proj)
}

func (api *professorApi) stats(ctx echo.Context) error {
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
