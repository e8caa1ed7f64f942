package echoapi

import (
	"net/http"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"

	"github.com/Radiyassin/login-campus-connect/core"
	"github.com/Radiyassin/login-campus-connect/core/project"
	authsvc "github.com/Radiyassin/login-campus-connect/services/auth"
)

type authApi struct {
	conf     *core.Config
	logger   core.Logger
	registry *authsvc.Registry
	boards   project.Repository
	validate *validator.Validate
	metrics  *Metrics
}

func registerAuthAPI(g *echo.Group, jwt echo.MiddlewareFunc, deps ServerDeps) {
	api := authApi{
		conf:     deps.Conf,
		logger:   deps.Logger,
		registry: deps.Auth,
		boards:   deps.Boards,
		validate: deps.Validate,
		metrics:  deps.Metrics,
	}

	ag := g.Group("/auth")

	// un-authed endpoints
	ag.GET("/providers", api.providers)
	ag.POST("/login", api.login)
	ag.GET("/:provider", api.redirect)

	// authed endpoints
	ag.POST("/logout", api.logout, jwt)
}

type (
	LoginRequest struct {
		Email    string `json:"email" validate:"required"`
		Password string `json:"password" validate:"required"`
		Role     string `json:"role" validate:"required,role"`
	}

	LoginResponse struct {
		Token string       `json:"token"`
		User  UserResponse `json:"user"`
	}

	UserResponse struct {
		Email    string            `json:"email"`
		Name     string            `json:"name"`
		Role     string            `json:"role"`
		Provider core.ProviderKind `json:"provider"`
	}

	LogoutResponse struct {
		Redirect string `json:"redirect"`
	}
)

func (lr *LoginRequest) Validate(validate *validator.Validate) error {
	lr.Email = core.CleanString(lr.Email, true /* lower */)
	lr.Role = core.CleanString(lr.Role, true /* lower */)
	return validate.Struct(lr)
}

func newUserResponse(ident core.Identity) UserResponse {
	return UserResponse{Email: ident.Email, Name: ident.Name, Role: ident.Role, Provider: ident.Provider}
}

// Handlers

func (api *authApi) providers(ctx echo.Context) error {
	return ctx.JSON(http.StatusOK, api.registry.Kinds())
}

func (api *authApi) login(ctx echo.Context) error {
	var data LoginRequest
	if err := ctx.Bind(&data); err != nil {
		return errors.Wrap(err, "binding to LoginRequest")
	}
	if err := data.Validate(api.validate); err != nil {
		return err
	}

	provider, err := api.registry.Get(core.ProviderEmailPassword)
	if err != nil {
		return errors.Wrap(err, "getting email provider")
	}
	ident, err := provider.Authenticate(ctx.Request().Context(), core.Credentials{
		Email:    data.Email,
		Password: data.Password,
		Role:     data.Role,
	})
	if err != nil {
		return errors.Wrap(err, "authenticating")
	}

	token, err := GenerateToken(api.conf, NewClaims(api.conf, ident))
	if err != nil {
		return errors.Wrap(err, "generating token")
	}
	api.metrics.Logins.WithLabelValues(string(ident.Provider)).Inc()

	return ctx.JSON(http.StatusOK, LoginResponse{Token: token, User: newUserResponse(ident)})
}

// redirect sends the user to the OAuth provider consent page.
func (api *authApi) redirect(ctx echo.Context) error {
	provider, err := api.registry.Get(core.ProviderKind(ctx.Param("provider")))
	if err != nil {
		return err
	}
	url, err := provider.AuthURL(uuid.New().String())
	if err != nil {
		return errors.Wrapf(err, "getting %s auth url", provider.Kind())
	}
	return ctx.Redirect(http.StatusTemporaryRedirect, url)
}

// logout drops the user boards. The token itself stays valid until it expires.
func (api *authApi) logout(ctx echo.Context) error {
	claims, err := getContextClaims(ctx)
	if err != nil {
		return errors.Wrap(err, "getting context claims")
	}
	if err = api.boards.DropBoards(ctx.Request().Context(), claims.Subject); err != nil {
		return errors.Wrap(err, "dropping boards")
	}
	return ctx.JSON(http.StatusOK, LogoutResponse{Redirect: "/"})
}
