package echoapi

import (
	"net/http"
	"strconv"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Metrics are registered on their own registry so several servers can live in one process (tests).
type Metrics struct {
	registry *prometheus.Registry

	requestDuration   *prometheus.HistogramVec
	ProjectsCreated   prometheus.Counter
	MembersAdded      prometheus.Counter
	SubmissionsGraded prometheus.Counter
	Logins            *prometheus.CounterVec
}

func NewMetrics() *Metrics {
	reg := prometheus.NewRegistry()
	factory := promauto.With(reg)

	return &Metrics{
		registry: reg,
		requestDuration: factory.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "campus_http_request_duration_seconds",
				Help:    "HTTP request duration in seconds",
				Buckets: prometheus.DefBuckets,
			},
			[]string{"method", "route", "status"},
		),
		ProjectsCreated: factory.NewCounter(prometheus.CounterOpts{
			Name: "campus_projects_created_total",
			Help: "Total projects created by students",
		}),
		MembersAdded: factory.NewCounter(prometheus.CounterOpts{
			Name: "campus_members_added_total",
			Help: "Total members added to student projects",
		}),
		SubmissionsGraded: factory.NewCounter(prometheus.CounterOpts{
			Name: "campus_submissions_graded_total",
			Help: "Total submissions graded by professors",
		}),
		Logins: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "campus_logins_total",
				Help: "Total successful logins by provider",
			},
			[]string{"provider"},
		),
	}
}

// Handler serves the metrics in the prometheus text format.
func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{})
}

// middleware records request durations by route pattern.
// Errors are rendered here, like middleware.Logger does, so the recorded status is the final one.
func (m *Metrics) middleware(next echo.HandlerFunc) echo.HandlerFunc {
	return func(ctx echo.Context) error {
		start := time.Now()
		if err := next(ctx); err != nil {
			ctx.Error(err)
		}

		route := ctx.Path()
		if route == "" {
			route = "/"
		}
		status := strconv.Itoa(ctx.Response().Status)
		m.requestDuration.WithLabelValues(ctx.Request().Method, route, status).Observe(time.Since(start).Seconds())
		return nil
	}
}
