// Copyright (c) 2026 NitikBatik. All rights reserved.

package middleware

import (
	"net/http"

	"github.com/Ferdiyansyah59/nitik-batik-fe-sub000/internal/platform/constants"
	"github.com/Ferdiyansyah59/nitik-batik-fe-sub000/internal/platform/ctxutil"
	"github.com/Ferdiyansyah59/nitik-batik-fe-sub000/internal/workspace"
)

// visitorCookieMaxAge keeps the visitor id for a year; the workspace itself is evicted when idle.
const visitorCookieMaxAge = 365 * 24 * 60 * 60

// Workspace resolves the visitor's workspace and hydrates its auth store.
//
// It must run after [Session] so the workspace sees the cookie session.
func Workspace(registry *workspace.Registry, secure bool) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
			var visitorID string
			if cookie, err := request.Cookie(constants.VisitorCookieName); err == nil {
				visitorID = cookie.Value
			}

			ws, minted := registry.Resolve(visitorID)
			if minted {
				http.SetCookie(writer, &http.Cookie{
					Name:     constants.VisitorCookieName,
					Value:    ws.ID,
					Path:     "/",
					MaxAge:   visitorCookieMaxAge,
					HttpOnly: true,
					Secure:   secure,
					SameSite: http.SameSiteLaxMode,
				})
			}

			ctx := request.Context()
			ws.Hydrate(ctxutil.GetSession(ctx))

			next.ServeHTTP(writer, request.WithContext(workspace.With(ctx, ws)))
		})
	}
}
