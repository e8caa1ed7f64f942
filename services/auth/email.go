package authsvc

import (
	"context"
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/Radiyassin/login-campus-connect/core"
)

// emailProvider accepts any non-empty email and password. There is no user store behind it.
type emailProvider struct{}

var _ core.AuthProvider = (*emailProvider)(nil)

func NewEmailProvider() core.AuthProvider {
	return emailProvider{}
}

func (emailProvider) Kind() core.ProviderKind { return core.ProviderEmailPassword }

func (emailProvider) AuthURL(string) (string, error) {
	return "", ErrNoRedirect
}

func (emailProvider) Authenticate(_ context.Context, creds core.Credentials) (core.Identity, error) {
	email := core.CleanString(creds.Email, true /* lower */)
	role := core.CleanString(creds.Role, true /* lower */)

	var flds []core.FieldError
	if email == "" {
		flds = append(flds, core.FieldError{Field: "email", Error: "this field is required"})
	}
	if creds.Password == "" {
		flds = append(flds, core.FieldError{Field: "password", Error: "this field is required"})
	}
	if !core.IsRole(role) {
		flds = append(flds, core.FieldError{Field: "role", Error: "invalid role"})
	}
	if flds != nil {
		return core.Identity{}, core.NewValidationError(nil, flds...)
	}

	return core.Identity{
		Email:    email,
		Name:     displayName(email),
		Role:     role,
		Provider: core.ProviderEmailPassword,
	}, nil
}

// displayName turns "jane.doe@uni.edu" into "Jane Doe".
func displayName(email string) string {
	local := strings.SplitN(email, "@", 2)[0]
	parts := strings.FieldsFunc(local, func(r rune) bool { return r == '.' || r == '_' || r == '-' })
	for i, p := range parts {
		r, size := utf8.DecodeRuneInString(p)
		parts[i] = string(unicode.ToUpper(r)) + p[size:]
	}
	if len(parts) == 0 {
		return email
	}
	return strings.Join(parts, " ")
}
