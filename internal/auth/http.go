// Copyright (c) 2026 NitikBatik. All rights reserved.

package auth

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/Ferdiyansyah59/nitik-batik-fe-sub000/internal/platform/apperr"
	"github.com/Ferdiyansyah59/nitik-batik-fe-sub000/internal/platform/constants"
	"github.com/Ferdiyansyah59/nitik-batik-fe-sub000/internal/platform/ctxutil"
	requestutil "github.com/Ferdiyansyah59/nitik-batik-fe-sub000/internal/platform/request"
	"github.com/Ferdiyansyah59/nitik-batik-fe-sub000/internal/platform/respond"
	"github.com/Ferdiyansyah59/nitik-batik-fe-sub000/internal/session"
)

// StoreFunc resolves the auth store of the visitor making the request.
type StoreFunc func(request *http.Request) *Store

// Handler implements the login, registration and logout endpoints.
type Handler struct {
	store StoreFunc
	codec *session.Codec
}

// NewHandler constructs a new [Handler].
func NewHandler(store StoreFunc, codec *session.Codec) *Handler {
	return &Handler{store: store, codec: codec}
}

// RegisterRoutes registers the authentication endpoints.
//
// # Endpoints
//   - GET  /login    : Login page state (already logged in ⇒ redirect home).
//   - POST /login    : Authenticates and persists the session cookie.
//   - POST /register : Creates an account and persists the session cookie.
//   - POST /logout   : Revokes the session and clears the cookie.
func (handler *Handler) RegisterRoutes(router chi.Router) {
	router.Get(constants.RouteLogin, handler.loginPage)
	router.Post(constants.RouteLogin, handler.login)
	router.Post("/register", handler.register)
	router.Post("/logout", handler.logout)
}

// loginResult is the body of a successful login or registration.
type loginResult struct {
	User     *session.User `json:"user"`
	Token    string        `json:"token"`
	Redirect string        `json:"redirect"`
}

func (handler *Handler) loginPage(writer http.ResponseWriter, request *http.Request) {
	store := handler.store(request)
	if s := store.Session(); s != nil {
		respond.Redirect(writer, request, s.Role().Home())
		return
	}

	// A cookie that no longer authenticates (expired, revoked) is dropped here.
	if _, err := request.Cookie(handler.codec.Name()); err == nil {
		handler.codec.Clear(writer)
	}

	respond.OK(writer, store.Snapshot())
}

/*
Login authenticates a visitor.

POST /login

Request:
  - Body: Credentials (email, password)

Response:
  - 200: loginResult, session cookie set
  - 400: VALIDATION_ERROR
  - 401: INVALID_CREDENTIALS
*/
func (handler *Handler) login(writer http.ResponseWriter, request *http.Request) {
	var input Credentials
	if err := requestutil.DecodeJSON(request, &input); err != nil {
		respond.Error(writer, request, err)
		return
	}

	s, err := handler.store(request).Login(request.Context(), input)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	handler.persist(writer, request, s, http.StatusOK)
}

func (handler *Handler) register(writer http.ResponseWriter, request *http.Request) {
	var input Registration
	if err := requestutil.DecodeJSON(request, &input); err != nil {
		respond.Error(writer, request, err)
		return
	}

	s, err := handler.store(request).Register(request.Context(), input)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	handler.persist(writer, request, s, http.StatusCreated)
}

func (handler *Handler) persist(writer http.ResponseWriter, request *http.Request, s *session.Session, status int) {
	if err := handler.codec.Write(writer, s); err != nil {
		ctxutil.GetLogger(request.Context()).WarnContext(request.Context(), "session_cookie_rejected",
			slog.String("error", err.Error()),
		)
		respond.Error(writer, request, apperr.BadResponse(err))
		return
	}

	respond.JSON(writer, status, respond.SuccessEnvelope{Data: loginResult{
		User:     s.User,
		Token:    s.Token,
		Redirect: s.Role().Home(),
	}})
}

func (handler *Handler) logout(writer http.ResponseWriter, request *http.Request) {
	handler.store(request).Logout(request.Context())
	handler.codec.Clear(writer)
	respond.Redirect(writer, request, constants.RouteLogin)
}
