package session

import (
	"net/url"

	domainauth "github.com/goldengigs/goldengigs/internal/domain/auth"
)

// Guard redirect targets.
const (
	SignInPath = "/auth/login"
	HomePath   = "/"
)

// Decision is the outcome category of a guard evaluation.
type Decision string

const (
	// DecisionPending means state is still loading: render nothing, never redirect.
	DecisionPending Decision = "pending"
	// DecisionAdmitted means the guarded content may be rendered.
	DecisionAdmitted Decision = "admitted"
	// DecisionDeniedUnauthenticated redirects to sign-in, carrying the origin.
	DecisionDeniedUnauthenticated Decision = "denied_unauthenticated"
	// DecisionDeniedWrongRole redirects to the home page.
	DecisionDeniedWrongRole Decision = "denied_wrong_role"
	// DecisionDeniedDegraded is the deliberate branch for authenticated sessions
	// whose user record could not be loaded: a required role cannot be
	// evaluated, so role-restricted content is denied.
	DecisionDeniedDegraded Decision = "denied_degraded"
)

// GuardOutcome is the result of evaluating access to a guarded location.
type GuardOutcome struct {
	Decision Decision
	// RedirectTo is set for the denied decisions.
	RedirectTo string
}

// Denied reports whether the outcome carries a redirect.
func (o GuardOutcome) Denied() bool {
	return o.Decision == DecisionDeniedUnauthenticated ||
		o.Decision == DecisionDeniedWrongRole ||
		o.Decision == DecisionDeniedDegraded
}

// EvaluateGuard gates access to currentLocation given a state snapshot and an
// optional required role (empty means any authenticated user). It is a pure
// function of its inputs.
//
// A loading state always yields Pending: redirecting while authentication is
// indeterminate is the classic source of redirect flicker. An unauthenticated
// state redirects to sign-in with the origin attached so a later successful
// sign-in can return the user. A degraded state (principal present, user
// record missing) admits role-agnostic locations but denies role-restricted
// ones, since the role check cannot be evaluated.
func EvaluateGuard(st State, requiredRole domainauth.Role, currentLocation string) GuardOutcome {
	if st.Loading {
		return GuardOutcome{Decision: DecisionPending}
	}

	if st.Principal == nil {
		return GuardOutcome{
			Decision:   DecisionDeniedUnauthenticated,
			RedirectTo: SignInRedirect(currentLocation),
		}
	}

	if requiredRole != "" {
		if st.UserRecord == nil {
			return GuardOutcome{Decision: DecisionDeniedDegraded, RedirectTo: HomePath}
		}
		if st.UserRecord.UserType != requiredRole {
			return GuardOutcome{Decision: DecisionDeniedWrongRole, RedirectTo: HomePath}
		}
	}

	return GuardOutcome{Decision: DecisionAdmitted}
}

// SignInRedirect builds the sign-in URL carrying the originally-requested
// location, so sign-in can navigate back afterward.
func SignInRedirect(currentLocation string) string {
	if currentLocation == "" || currentLocation == SignInPath {
		return SignInPath
	}
	return SignInPath + "?redirect_uri=" + url.QueryEscape(currentLocation)
}
