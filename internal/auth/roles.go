package auth

import "github.com/shopfront-labs/storefront/internal/session"

// Requirement is the minimum authorization a view asks for.
type Requirement int

const (
	// RequireAuthenticated admits customers and admins alike.
	RequireAuthenticated Requirement = iota
	// RequireAdmin admits admins only.
	RequireAdmin
)

func (r Requirement) String() string {
	if r == RequireAdmin {
		return "admin"
	}
	return "authenticated"
}

// Reasons reported with a Decision.
const (
	ReasonAllowed        = "allowed"
	ReasonMissingSession = "missing_session"
	ReasonCorruptSession = "corrupt_session"
	ReasonRoleMismatch   = "role_mismatch"
)

// Paths are the landing pages a guard redirects to.
type Paths struct {
	Login     string
	Dashboard string
	AdminHome string
}

// DefaultPaths are the storefront's landing pages.
var DefaultPaths = Paths{Login: "/login", Dashboard: "/dashboard", AdminHome: "/admin/products"}

// Decision is the outcome of a guard check. Redirect is empty when Allow is set.
type Decision struct {
	Allow    bool
	Redirect string
	Reason   string
}

// Decide applies the guard table to a resolved session; first match wins.
// Views that require authentication only do not turn admins away.
func Decide(req Requirement, s session.Session, paths Paths) Decision {
	switch {
	case s.Missing():
		return Decision{Redirect: paths.Login, Reason: ReasonMissingSession}
	case s.Corrupt() || !s.Level.Authenticated():
		return Decision{Redirect: paths.Login, Reason: ReasonCorruptSession}
	case req == RequireAdmin && s.Level != session.Admin:
		return Decision{Redirect: paths.Dashboard, Reason: ReasonRoleMismatch}
	default:
		return Decision{Allow: true, Reason: ReasonAllowed}
	}
}

// LandingFor returns where a session should start: admins on the product console,
// customers on the catalog, everybody else on the login page.
func LandingFor(s session.Session, paths Paths) string {
	switch s.Level {
	case session.Admin:
		return paths.AdminHome
	case session.Customer:
		return paths.Dashboard
	default:
		return paths.Login
	}
}
