// Copyright (c) 2026 NitikBatik. All rights reserved.

/*
Package constants provides centralized, immutable values for the storefront server.

Categories:

  - Server Timing: Read/Write/Idle timeouts for the HTTP server.
  - Rate Limiting: Burst capacities and IP tracking TTLs.
  - Session: Cookie names and fallback lifetimes.
  - Upstream: Defaults for the NitikBatik REST backend.
*/
package constants

import "time"

// # Metadata

const (
	AppName    = "nitikbatik-web"
	AppVersion = "0.1.0-dev"
)

// # Server Timing

const (
	// DefaultReadTimeout is the maximum duration for reading the entire request.
	DefaultReadTimeout = 10 * time.Second

	// DefaultWriteTimeout must outlive the upstream timeout plus retry delays.
	DefaultWriteTimeout = 45 * time.Second

	// DefaultIdleTimeout is the maximum amount of time to wait for the next request.
	DefaultIdleTimeout = 120 * time.Second

	// DefaultReadHeaderTimeout is the amount of time allowed to read request headers.
	DefaultReadHeaderTimeout = 2 * time.Second

	// GlobalRequestTimeout is the deadline for the entire request lifecycle.
	GlobalRequestTimeout = 40 * time.Second

	// ShutdownTimeout is how long we wait for in-flight requests to complete during shutdown.
	ShutdownTimeout = 30 * time.Second

	// MaxUploadBytes bounds multipart bodies accepted from the browser.
	MaxUploadBytes = 10 << 20
)

// # Rate Limiting

const (
	// DefaultRateLimitRPS is the requests per second allowed per IP.
	DefaultRateLimitRPS = 50.0

	// DefaultRateLimitBurst is the maximum burst allowed for the rate limiter.
	DefaultRateLimitBurst = 100

	// RateLimitCleanupInterval is how often old IP entries are removed from memory.
	RateLimitCleanupInterval = 1 * time.Minute

	// RateLimitClientTTL is how long a client must be idle before its entry is deleted.
	RateLimitClientTTL = 3 * time.Minute
)

// # Session & Workspace

const (
	// SessionCookieName is the persisted auth store cookie.
	SessionCookieName = "auth-storage"

	// SessionFallbackTTL caps the session cookie lifetime.
	SessionFallbackTTL = 24 * time.Hour

	// VisitorCookieName identifies the visitor workspace.
	VisitorCookieName = "nb_visitor"

	// WorkspaceJanitorInterval is how often idle workspaces are evicted.
	WorkspaceJanitorInterval = 1 * time.Minute
)

// # Upstream API

const (
	// DefaultAPIBaseURL is the REST backend used when API_BASE_URL is unset.
	DefaultAPIBaseURL = "http://localhost:8081/api"

	// DefaultAPITimeout is the fixed per-request timeout to the backend.
	DefaultAPITimeout = 30 * time.Second

	// GenericTransportMessage is surfaced when no response was received.
	GenericTransportMessage = "Tidak dapat terhubung ke server. Silakan coba lagi."

	// GenericServerMessage is surfaced when the backend gave no message.
	GenericServerMessage = "Terjadi kesalahan pada server"
)

// # Routes

const (
	RouteLogin           = "/login"
	RouteHome            = "/"
	RouteAdminDashboard  = "/admin/dashboard"
	RouteSellerDashboard = "/penjual/dashboard"
)

// # HTTP Headers

const (
	HeaderXRequestID    = "X-Request-ID"
	HeaderXRealIP       = "X-Real-IP"
	HeaderXForwardedFor = "X-Forwarded-For"
	HeaderOrigin        = "Origin"
	HeaderAuthorization = "Authorization"
	HeaderLocation      = "Location"
)

// # JSON Field Identifiers

const (
	FieldStatus = "status"
	FieldChecks = "checks"
)

// # Redis Prefixes

const (
	RedisPrefixRevokedToken = "session:revoked:"
)
