package core

import "context"

// Roles
const (
	RoleStudent   = "student"
	RoleProfessor = "professor"
)

var Roles = []string{RoleStudent, RoleProfessor}

// ProviderKind identifies an AuthProvider.
type ProviderKind string

const (
	ProviderGoogle        ProviderKind = "google"
	ProviderGitLab        ProviderKind = "gitlab"
	ProviderEmailPassword ProviderKind = "email"
)

type (
	Credentials struct {
		Email    string
		Password string
		Role     string
	}

	// Identity is the signed-in user, as far as the dashboards care.
	Identity struct {
		Email    string
		Name     string
		Role     string
		Provider ProviderKind
	}

	// AuthProvider is a login capability. Dashboards only depend on this interface,
	// so real backends can be swapped in without touching them.
	AuthProvider interface {
		Kind() ProviderKind
		// AuthURL returns the URL to send the user to, for redirect based providers.
		AuthURL(state string) (string, error)
		Authenticate(ctx context.Context, creds Credentials) (Identity, error)
	}
)

func IsRole(role string) bool {
	for _, r := range Roles {
		if r == role {
			return true
		}
	}
	return false
}
