package echoapi_test

import (
	"encoding/json"
	"net/http"
	"net/url"
	"testing"

	"github.com/dgrijalva/jwt-go"
	"github.com/stretchr/testify/assert"

	. "github.com/Radiyassin/login-campus-connect/apps/api/echo"
	"github.com/Radiyassin/login-campus-connect/core"
)

func Test_authApi_login(t *testing.T) {
	app := setup(t)

	runHTTPTests(t, app, []httpTest{
		{name: "providers", path: "/v1/auth/providers", wantCode: http.StatusOK, wantData: []byte(`["google","gitlab","email"]`)},
		{
			name: "empty body", method: http.MethodPost, path: "/v1/auth/login", wantCode: http.StatusBadRequest,
			wantData: marchallObj(t, map[string]string{
				"email":    "this field is required",
				"password": "this field is required",
				"role":     "this field is required",
			}),
		},
		{
			name: "unknown role", method: http.MethodPost, path: "/v1/auth/login",
			body:     []byte(`{"email":"kim@uni.edu","password":"pwd","role":"dean"}`),
			wantCode: http.StatusBadRequest, wantData: marchallObj(t, map[string]string{"role": "invalid role"}),
		},
		{
			name: "malformed json", method: http.MethodPost, path: "/v1/auth/login",
			body: []byte(`{"email":`), wantCode: http.StatusBadRequest,
		},
	})

	t.Run("success", func(t *testing.T) {
		req, rec := newRequest(http.MethodPost, "/v1/auth/login", []byte(`{"email":" Kim.Lee@Uni.edu","password":"pwd","role":"Professor"}`))
		app.ServeHTTP(rec, req)
		if !assert.Equal(t, http.StatusOK, rec.Code, rec.Body.String()) {
			return
		}

		var resp LoginResponse
		assert.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
		assert.Equal(t, UserResponse{
			Email:    "kim.lee@uni.edu",
			Name:     "Kim Lee",
			Role:     core.RoleProfessor,
			Provider: core.ProviderEmailPassword,
		}, resp.User)

		claims := new(Claims)
		_, err := jwt.ParseWithClaims(resp.Token, claims, func(*jwt.Token) (interface{}, error) {
			return []byte(app.conf.SecretKey), nil
		})
		assert.NoError(t, err)
		assert.Equal(t, "kim.lee@uni.edu", claims.Subject)
		assert.Equal(t, core.RoleProfessor, claims.Role)

		// the token opens the professor dashboard
		req, rec = newAuthRequest(http.MethodGet, "/v1/professor/stats", resp.Token)
		app.ServeHTTP(rec, req)
		assert.Equal(t, http.StatusOK, rec.Code)
	})
}

func Test_authApi_redirect(t *testing.T) {
	app := setup(t)

	runHTTPTests(t, app, []httpTest{
		{
			name: "google not configured", path: "/v1/auth/google", wantCode: http.StatusNotImplemented,
			wantData: marchallObj(t, httpErr{Error: core.ErrNotWired.Error()}),
		},
		{name: "gitlab not configured", path: "/v1/auth/gitlab", wantCode: http.StatusNotImplemented},
		{
			name: "email has no redirect", path: "/v1/auth/email", wantCode: http.StatusBadRequest,
			wantData: marchallObj(t, httpErr{Error: "provider has no redirect flow"}),
		},
		{
			name: "unknown provider", path: "/v1/auth/github", wantCode: http.StatusNotFound,
			wantData: marchallObj(t, httpErr{Error: "unknown auth provider"}),
		},
	})

	t.Run("configured", func(t *testing.T) {
		conf := newTestConfig()
		conf.OAuth.GitLabClientID = "lid"
		conf.OAuth.GitLabClientSecret = "lsecret"
		app := setup(t, conf)

		req, rec := newRequest(http.MethodGet, "/v1/auth/gitlab")
		app.ServeHTTP(rec, req)
		assert.Equal(t, http.StatusTemporaryRedirect, rec.Code)

		loc, err := url.Parse(rec.Header().Get("Location"))
		if assert.NoError(t, err) {
			assert.Equal(t, "gitlab.com", loc.Host)
			assert.NotEmpty(t, loc.Query().Get("state"))
			assert.Equal(t, "lid", loc.Query().Get("client_id"))
		}
	})
}

func Test_authApi_logout(t *testing.T) {
	app := setup(t)
	token := getToken(t, app.conf, "kim@uni.edu", core.RoleStudent)

	req, rec := newAuthRequest(http.MethodPost, "/v1/student/projects", token, []byte(`{"title":"Compilers","description":"A toy compiler"}`))
	app.ServeHTTP(rec, req)
	assert.Equal(t, http.StatusCreated, rec.Code)

	runHTTPTests(t, app, []httpTest{
		{name: "auth required", method: http.MethodPost, path: "/v1/auth/logout", wantCode: http.StatusUnauthorized, wantData: marchallObj(t, errMissingToken)},
		{
			name: "invalid token", method: http.MethodPost, path: "/v1/auth/logout", token: "not.a.jwt",
			wantCode: http.StatusUnauthorized, wantData: marchallObj(t, httpErr{Error: "invalid or expired jwt"}),
		},
		{
			name: "logout", method: http.MethodPost, path: "/v1/auth/logout", token: token,
			wantCode: http.StatusOK, wantData: marchallObj(t, LogoutResponse{Redirect: "/"}),
		},
	})

	// the board starts over from the seed
	req, rec = newAuthRequest(http.MethodGet, "/v1/student/stats", token)
	app.ServeHTTP(rec, req)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"total":2,"active":1,"submitted":0,"graded":1}`, rec.Body.String())
}
