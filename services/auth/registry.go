package authsvc

import (
	"github.com/pkg/errors"

	"github.com/Radiyassin/login-campus-connect/core"
)

var (
	ErrUnknownProvider = errors.New("unknown auth provider")
	ErrNoRedirect      = errors.New("provider has no redirect flow")
)

// Registry holds the injected auth providers, in registration order.
type Registry struct {
	providers []core.AuthProvider
}

func NewRegistry(providers ...core.AuthProvider) *Registry {
	return &Registry{providers: providers}
}

// NewDefaultRegistry registers the google, gitlab and email/password providers.
func NewDefaultRegistry(conf *core.Config) *Registry {
	return NewRegistry(NewGoogleProvider(conf), NewGitLabProvider(conf), NewEmailProvider())
}

func (r *Registry) Get(kind core.ProviderKind) (core.AuthProvider, error) {
	for _, p := range r.providers {
		if p.Kind() == kind {
			return p, nil
		}
	}
	return nil, errors.Wrapf(ErrUnknownProvider, "%q", kind)
}

func (r *Registry) Kinds() []core.ProviderKind {
	kinds := make([]core.ProviderKind, 0, len(r.providers))
	for _, p := range r.providers {
		kinds = append(kinds, p.Kind())
	}
	return kinds
}
