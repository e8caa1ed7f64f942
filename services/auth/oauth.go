package authsvc

import (
	"context"

	"github.com/markbates/goth"
	"github.com/markbates/goth/providers/gitlab"
	"github.com/markbates/goth/providers/google"
	"github.com/pkg/errors"

	"github.com/Radiyassin/login-campus-connect/core"
)

// oauthProvider only knows how to start the OAuth dance. Completing it is not wired.
type oauthProvider struct {
	kind     core.ProviderKind
	provider goth.Provider // nil when the client credentials are not configured
}

var _ core.AuthProvider = (*oauthProvider)(nil)

func callbackURL(conf *core.Config, kind core.ProviderKind) string {
	return conf.OAuth.CallbackBaseURL + "/" + string(kind) + "/callback"
}

func NewGoogleProvider(conf *core.Config) core.AuthProvider {
	p := &oauthProvider{kind: core.ProviderGoogle}
	if conf.OAuth.GoogleClientID != "" && conf.OAuth.GoogleClientSecret != "" {
		p.provider = google.New(
			conf.OAuth.GoogleClientID,
			conf.OAuth.GoogleClientSecret,
			callbackURL(conf, core.ProviderGoogle),
			"email", "profile",
		)
	}
	return p
}

func NewGitLabProvider(conf *core.Config) core.AuthProvider {
	p := &oauthProvider{kind: core.ProviderGitLab}
	if conf.OAuth.GitLabClientID != "" && conf.OAuth.GitLabClientSecret != "" {
		p.provider = gitlab.New(
			conf.OAuth.GitLabClientID,
			conf.OAuth.GitLabClientSecret,
			callbackURL(conf, core.ProviderGitLab),
		)
	}
	return p
}

func (p *oauthProvider) Kind() core.ProviderKind { return p.kind }

func (p *oauthProvider) AuthURL(state string) (string, error) {
	if p.provider == nil {
		return "", errors.Wrapf(core.ErrNotWired, "%s oauth client", p.kind)
	}
	sess, err := p.provider.BeginAuth(state)
	if err != nil {
		return "", errors.Wrapf(err, "beginning %s auth", p.kind)
	}
	url, err := sess.GetAuthURL()
	if err != nil {
		return "", errors.Wrapf(err, "getting %s auth url", p.kind)
	}
	return url, nil
}

func (p *oauthProvider) Authenticate(context.Context, core.Credentials) (core.Identity, error) {
	return core.Identity{}, errors.Wrapf(core.ErrNotWired, "%s login", p.kind)
}
