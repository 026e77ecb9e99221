// Copyright (c) 2026 NitikBatik. All rights reserved.

/*
Package guard decides who may open the dashboards.

The decision is a pure function of the path, the visitor's session and the
current time. It runs twice: once at the edge, before any handler, and once
more inside the dashboard handlers against the workspace's live auth state,
which may have been logged out by the backend in between.

# States

  - Unauthenticated: no session, or an expired one. Sent to /login.
  - Wrong role: sent to the home of their own role.
  - Authorized: passes.

Tokens are not verified here; the backend verifies them on every call.
*/
package guard

import (
	"net/http"
	"strings"
	"time"

	"github.com/Ferdiyansyah59/nitik-batik-fe-sub000/internal/platform/constants"
	"github.com/Ferdiyansyah59/nitik-batik-fe-sub000/internal/platform/respond"
	"github.com/Ferdiyansyah59/nitik-batik-fe-sub000/internal/platform/sec"
	"github.com/Ferdiyansyah59/nitik-batik-fe-sub000/internal/session"
)

// Outcome is the result of a guard check.
type Outcome int

const (
	Pass Outcome = iota
	Unauthenticated
	WrongRole
)

// Decision is what to do with a request.
type Decision struct {
	Outcome  Outcome
	Redirect string
}

// Allowed reports whether the request may proceed.
func (d Decision) Allowed() bool { return d.Outcome == Pass }

// Rule binds a path prefix to the role allowed under it.
type Rule struct {
	Prefix string
	Role   sec.UserRole
}

// Table is the set of protected prefixes.
type Table []Rule

// Dashboards protects the two role dashboards.
var Dashboards = Table{
	{Prefix: constants.RouteAdminDashboard, Role: sec.RoleAdmin},
	{Prefix: constants.RouteSellerDashboard, Role: sec.RolePenjual},
}

// Match returns the rule covering path, if any.
//
// Prefixes match whole segments: /admin/dashboard covers /admin/dashboard/users
// but not /admin/dashboards.
func (table Table) Match(path string) (Rule, bool) {
	for _, rule := range table {
		if path == rule.Prefix || strings.HasPrefix(path, rule.Prefix+"/") {
			return rule, true
		}
	}
	return Rule{}, false
}

// Decide applies the table to a request path.
func (table Table) Decide(path string, s *session.Session, now time.Time) Decision {
	rule, protected := table.Match(path)
	if !protected {
		return Decision{Outcome: Pass}
	}

	if !s.Valid(now) {
		return Decision{Outcome: Unauthenticated, Redirect: constants.RouteLogin}
	}

	if role := s.Role(); role != rule.Role {
		return Decision{Outcome: WrongRole, Redirect: role.Home()}
	}

	return Decision{Outcome: Pass}
}

// Decide applies [Dashboards].
func Decide(path string, s *session.Session, now time.Time) Decision {
	return Dashboards.Decide(path, s, now)
}

// SessionFunc returns the session a check should use.
type SessionFunc func(request *http.Request) *session.Session

/*
Middleware redirects requests the table refuses.

Parameters:
  - table: Table
  - sessionOf: SessionFunc (the edge uses the cookie session, handlers the workspace's)
*/
func Middleware(table Table, sessionOf SessionFunc) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
			decision := table.Decide(request.URL.Path, sessionOf(request), time.Now())
			if !decision.Allowed() {
				respond.Redirect(writer, request, decision.Redirect)
				return
			}

			next.ServeHTTP(writer, request)
		})
	}
}
