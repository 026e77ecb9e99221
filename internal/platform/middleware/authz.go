// Copyright (c) 2026 NitikBatik. All rights reserved.

package middleware

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/Ferdiyansyah59/nitik-batik-fe-sub000/internal/platform/ctxutil"
	"github.com/Ferdiyansyah59/nitik-batik-fe-sub000/internal/session"
)

/*
Session decodes the persisted session cookie into the request context.

Flow:
 1. No cookie: the request proceeds as anonymous.
 2. Undecodable, expired or revoked: the cookie is cleared and the request
    proceeds as anonymous. Nothing is reported to the visitor.
 3. Valid: the [*session.Session] is injected for downstream use.

A revocation store that cannot be reached fails open: the backend still
rejects a dead token, which triggers a forced logout.
*/
func Session(codec *session.Codec, revocations session.Revocations) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
			if _, err := request.Cookie(codec.Name()); err != nil {
				next.ServeHTTP(writer, request)
				return
			}

			ctx := request.Context()
			s := codec.Read(request)

			if s.Valid(time.Now()) {
				revoked, err := revocations.IsRevoked(ctx, s.Token)
				if err != nil {
					ctxutil.GetLogger(ctx).WarnContext(ctx, "revocation_check_failed",
						slog.String("error", err.Error()),
					)
				}
				if !revoked {
					next.ServeHTTP(writer, request.WithContext(ctxutil.WithSession(ctx, s)))
					return
				}
			}

			codec.Clear(writer)
			next.ServeHTTP(writer, request)
		})
	}
}
