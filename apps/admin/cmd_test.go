package main

import (
	"bytes"
	"strings"
	"testing"
	"time"

	"github.com/dgrijalva/jwt-go"
	"golang.org/x/term"

	echoapi "github.com/Radiyassin/login-campus-connect/apps/api/echo"
	"github.com/Radiyassin/login-campus-connect/core"
	authsvc "github.com/Radiyassin/login-campus-connect/services/auth"
)

func setup() (*commandLine, *bytes.Buffer) {
	out := new(bytes.Buffer)
	return &commandLine{
		conf:     &core.Config{AppName: "Campus Connect", SecretKey: "secret", JWTExpirationDelta: time.Hour},
		provider: authsvc.NewEmailProvider(),
		out:      out,
	}, out
}

type cliTest struct {
	name       string
	args       []string // without program name
	wantErr    error
	wantErrStr string
	extra      interface{}
}

func Test_commandLine_gpa(t *testing.T) {
	tests := []cliTest{
		{name: "no command", wantErr: errHelp},
		{name: "unknown command", args: []string{"lol"}, wantErr: errHelp},
		{name: "no grades", args: []string{"gpa"}, wantErr: errHelp},
		{name: "invalid grade", args: []string{"gpa", "A", "E"}, wantErrStr: `invalid grade "E"`},
		{name: "one A one B", args: []string{"gpa", "A", "B"}, extra: "3.5\n"},
		{name: "modifiers ignored", args: []string{"gpa", "A+", "A-", "B+"}, extra: "3.7\n"},
	}
	for _, tt := range tests {
		args := append([]string{"admin"}, tt.args...)

		t.Run(tt.name, func(t *testing.T) {
			cli, out := setup()
			err := cli.run(args)
			switch {
			case tt.wantErr != nil:
				if err != tt.wantErr {
					t.Errorf("cli.run() error = %v, wantErr %v", err, tt.wantErr)
				}
			case tt.wantErrStr != "":
				if err == nil || err.Error() != tt.wantErrStr {
					t.Errorf("cli.run() error = %v, wantErrStr %s", err, tt.wantErrStr)
				}
			default:
				if err != nil {
					t.Fatalf("cli.run() unexpected error = %v", err)
				}
				if got := out.String(); got != tt.extra.(string) {
					t.Errorf("cli.run() output = %q, want %q", got, tt.extra)
				}
			}
		})
	}
}

func Test_commandLine_token(t *testing.T) {
	defer func() { readPasswordFunc = term.ReadPassword }()

	type extra struct {
		pwd  string
		role string
	}
	tests := []cliTest{
		{name: "no args", args: []string{"token"}, wantErr: errHelp},
		{name: "email but no password", args: []string{"token", "-email", "kim@uni.edu"}, wantErr: errHelp},
		{name: "invalid role", args: []string{"token", "-email", "kim@uni.edu", "-role", "dean"}, extra: extra{pwd: "pwd"}, wantErrStr: "role: invalid role"},
		{name: "student (default)", args: []string{"token", "-email", "kim@uni.edu"}, extra: extra{pwd: "pwd", role: core.RoleStudent}},
		{name: "professor", args: []string{"token", "-email", "prof@uni.edu", "-role", "professor"}, extra: extra{pwd: "pwd", role: core.RoleProfessor}},
	}
	for _, tt := range tests {
		args := append([]string{"admin"}, tt.args...)

		readPasswordFunc = func(fd int) ([]byte, error) {
			if extra, ok := tt.extra.(extra); ok {
				return []byte(extra.pwd), nil
			}
			return nil, nil
		}

		t.Run(tt.name, func(t *testing.T) {
			cli, out := setup()
			err := cli.run(args)
			if tt.wantErr != nil || tt.wantErrStr != "" {
				if tt.wantErr != nil && err != tt.wantErr {
					t.Errorf("cli.run() error = %v, wantErr %v", err, tt.wantErr)
				}
				if tt.wantErrStr != "" && (err == nil || err.Error() != tt.wantErrStr) {
					t.Errorf("cli.run() error = %v, wantErrStr %s", err, tt.wantErrStr)
				}
				return
			}
			if err != nil {
				t.Fatalf("cli.run() unexpected error = %v", err)
			}

			// output: "Enter password:\n<token>\n"
			lines := strings.Split(strings.TrimSpace(out.String()), "\n")
			claims := new(echoapi.Claims)
			if _, err = jwt.ParseWithClaims(lines[len(lines)-1], claims, func(*jwt.Token) (interface{}, error) {
				return []byte(cli.conf.SecretKey), nil
			}); err != nil {
				t.Fatalf("jwt.ParseWithClaims() failed: %v", err)
			}
			if want := tt.extra.(extra).role; claims.Role != want {
				t.Errorf("claims.Role = %q, want %q", claims.Role, want)
			}
		})
	}
}
