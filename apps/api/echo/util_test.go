package echoapi_test

import (
	"bytes"
	"encoding/json"
	"io/ioutil"
	"log"
	"net/http"
	"net/http/httptest"
	"reflect"
	"testing"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/stretchr/testify/assert"

	. "github.com/Radiyassin/login-campus-connect/apps/api/echo"
	"github.com/Radiyassin/login-campus-connect/core"
	"github.com/Radiyassin/login-campus-connect/core/project"
	authsvc "github.com/Radiyassin/login-campus-connect/services/auth"
	emailsvc "github.com/Radiyassin/login-campus-connect/services/email"
	logsvc "github.com/Radiyassin/login-campus-connect/services/logger"
	inmemdb "github.com/Radiyassin/login-campus-connect/storage/database/inmem"
)

var errMissingToken = httpErr{Error: "missing or malformed jwt"}

func newTestConfig() *core.Config {
	return &core.Config{
		Env:                "TEST",
		TestMode:           true,
		AppName:            "Campus Connect",
		SecretKey:          "secret",
		JWTExpirationDelta: time.Hour,
		BoardTTL:           time.Hour,
		DefaultFromEmail:   "noreply@localhost",
		Server:             core.ServerConfig{DisableReqLogs: true},
		OAuth:              core.OAuthConfig{CallbackBaseURL: "http://localhost:8000/v1/auth"},
	}
}

type testApp struct {
	Server
	conf    *core.Config
	metrics *Metrics
}

func setup(t *testing.T, confs ...*core.Config) testApp {
	conf := newTestConfig()
	if len(confs) > 0 {
		conf = confs[0]
	}

	logger := logsvc.NewRollbarLogger(log.New(ioutil.Discard, "", 0), conf)
	logger.Enable(false)

	validate := validator.New()
	translator := core.NewTranslator()
	core.InitValidators(validate, translator)
	project.InitValidators(validate, translator)

	boards := inmemdb.NewBoardRepository(inmemdb.Open(conf.BoardTTL))
	metrics := NewMetrics()

	srv := NewServer(ServerDeps{
		Conf:         conf,
		Logger:       logger,
		Validate:     validate,
		Translator:   translator,
		Auth:         authsvc.NewDefaultRegistry(conf),
		Boards:       boards,
		StudentSvc:   project.NewStudentService(boards, emailsvc.NewConsoleServiceMock(conf)),
		ProfessorSvc: project.NewProfessorService(boards),
		Metrics:      metrics,
	})
	t.Cleanup(func() { _ = srv.Close() })
	return testApp{Server: srv, conf: conf, metrics: metrics}
}

type httpErr struct {
	Error string `json:"error"`
}

type httpTest struct {
	name     string
	method   string
	path     string
	body     []byte
	token    string
	wantCode int
	wantData []byte
}

func newAuthRequest(method, path, token string, data ...[]byte) (*http.Request, *httptest.ResponseRecorder) {
	var body bytes.Buffer
	if len(data) > 0 {
		body.Write(data[0])
	}
	req := httptest.NewRequest(method, path, &body)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	rec := httptest.NewRecorder()
	return req, rec
}

func newRequest(method, path string, data ...[]byte) (*http.Request, *httptest.ResponseRecorder) {
	return newAuthRequest(method, path, "", data...)
}

func getToken(t *testing.T, conf *core.Config, email, role string) string {
	claims := NewClaims(conf, core.Identity{Email: email, Role: role, Provider: core.ProviderEmailPassword})
	token, err := GenerateToken(conf, claims)
	if err != nil {
		t.Fatalf("getToken() failed: %v", err)
	}
	return token
}

func marchallObj(t *testing.T, obj interface{}) []byte {
	data, err := json.Marshal(obj)
	if err != nil {
		t.Fatalf("marchallObj() failed: %v", err)
	}
	return data
}

func jsonBytesEqual(t *testing.T, b1, b2 []byte) (bool, error) {
	var j1, j2 interface{}
	if err := json.Unmarshal(b1, &j1); err != nil {
		return false, err
	}
	if err := json.Unmarshal(b2, &j2); err != nil {
		return false, err
	}
	if reflect.DeepEqual(j1, j2) {
		return true, nil
	}
	if j1 == nil || j2 == nil {
		return false, nil
	}
	return assert.ElementsMatch(t, j1, j2), nil
}

func checkCodeAndData(t *testing.T, tt httpTest, rec *httptest.ResponseRecorder) {
	if rec.Code != tt.wantCode {
		t.Errorf("failed! code = %v; wantCode %v", rec.Code, tt.wantCode)
	}
	if tt.wantData == nil {
		return
	}
	ok, err := jsonBytesEqual(t, rec.Body.Bytes(), tt.wantData)
	if err != nil {
		t.Errorf("jsonBytesEqual() failed to compare; err %v", err)
	}
	if !ok {
		t.Errorf("failed! data = %v; wantData %v", rec.Body.String(), string(tt.wantData))
	}
}

func runHTTPTests(t *testing.T, app testApp, tests []httpTest) {
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			method := tt.method
			if method == "" {
				method = http.MethodGet
			}
			req, rec := newAuthRequest(method, tt.path, tt.token, tt.body)
			app.ServeHTTP(rec, req)
			checkCodeAndData(t, tt, rec)
		})
	}
}
