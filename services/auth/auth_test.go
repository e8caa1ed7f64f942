package authsvc

import (
	"context"
	"net/url"
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"

	"github.com/Radiyassin/login-campus-connect/core"
)

func TestEmailProvider_Authenticate(t *testing.T) {
	p := NewEmailProvider()

	tests := []struct {
		name    string
		creds   core.Credentials
		want    core.Identity
		wantErr bool
	}{
		{name: "no email", creds: core.Credentials{Password: "x", Role: core.RoleStudent}, wantErr: true},
		{name: "no password", creds: core.Credentials{Email: "a@b.c", Role: core.RoleStudent}, wantErr: true},
		{name: "bad role", creds: core.Credentials{Email: "a@b.c", Password: "x", Role: "dean"}, wantErr: true},
		{
			name:  "student",
			creds: core.Credentials{Email: " Jane.Doe@Uni.edu ", Password: "x", Role: "Student"},
			want:  core.Identity{Email: "jane.doe@uni.edu", Name: "Jane Doe", Role: core.RoleStudent, Provider: core.ProviderEmailPassword},
		},
		{
			name:  "non-ascii name",
			creds: core.Credentials{Email: "élodie.durand@uni.edu", Password: "x", Role: core.RoleStudent},
			want:  core.Identity{Email: "élodie.durand@uni.edu", Name: "Élodie Durand", Role: core.RoleStudent, Provider: core.ProviderEmailPassword},
		},
		{
			name:  "professor",
			creds: core.Credentials{Email: "turing@uni.edu", Password: "x", Role: core.RoleProfessor},
			want:  core.Identity{Email: "turing@uni.edu", Name: "Turing", Role: core.RoleProfessor, Provider: core.ProviderEmailPassword},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := p.Authenticate(context.Background(), tt.creds)
			if tt.wantErr {
				_, ok := err.(*core.ValidationError)
				assert.True(t, ok, "want a validation error, got %v", err)
				return
			}
			assert.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestOAuthProviders(t *testing.T) {
	t.Run("not configured", func(t *testing.T) {
		conf := &core.Config{}
		for _, p := range []core.AuthProvider{NewGoogleProvider(conf), NewGitLabProvider(conf)} {
			_, err := p.AuthURL("state")
			assert.Equal(t, core.ErrNotWired, errors.Cause(err))
			_, err = p.Authenticate(context.Background(), core.Credentials{})
			assert.Equal(t, core.ErrNotWired, errors.Cause(err))
		}
	})

	t.Run("configured", func(t *testing.T) {
		conf := &core.Config{OAuth: core.OAuthConfig{
			CallbackBaseURL:    "http://localhost:8000/v1/auth",
			GoogleClientID:     "gid",
			GoogleClientSecret: "gsecret",
			GitLabClientID:     "lid",
			GitLabClientSecret: "lsecret",
		}}

		for _, p := range []core.AuthProvider{NewGoogleProvider(conf), NewGitLabProvider(conf)} {
			raw, err := p.AuthURL("xyz")
			if !assert.NoError(t, err) {
				continue
			}
			u, err := url.Parse(raw)
			assert.NoError(t, err)
			q := u.Query()
			assert.Equal(t, "xyz", q.Get("state"))
			assert.Equal(t, "http://localhost:8000/v1/auth/"+string(p.Kind())+"/callback", q.Get("redirect_uri"))

			// completing the login is still not wired
			_, err = p.Authenticate(context.Background(), core.Credentials{})
			assert.Equal(t, core.ErrNotWired, errors.Cause(err))
		}
	})
}

func TestRegistry(t *testing.T) {
	reg := NewDefaultRegistry(&core.Config{})
	assert.Equal(t, []core.ProviderKind{core.ProviderGoogle, core.ProviderGitLab, core.ProviderEmailPassword}, reg.Kinds())

	p, err := reg.Get(core.ProviderEmailPassword)
	assert.NoError(t, err)
	assert.Equal(t, core.ProviderEmailPassword, p.Kind())

	_, err = reg.Get("github")
	assert.Equal(t, ErrUnknownProvider, errors.Cause(err))
}
