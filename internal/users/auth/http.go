// Copyright (c) 2026 JVED. All rights reserved.
// Author: jved@contact.fr

package auth

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/jved/forum/internal/platform/constants"
	requestutil "github.com/jved/forum/internal/platform/request"
	"github.com/jved/forum/internal/platform/respond"
	"github.com/jved/forum/internal/platform/validate"
	"github.com/jved/forum/internal/users/session"
	"github.com/jved/forum/pkg/pagination"
)

// # Definitions & Constructors

// Handler implements authentication-related HTTP endpoints.
//
// # Scope
//
// This handler manages everything related to the user lifecycle entry points
// (Registration, Login, Logout, Email Verification, Password Recovery).
type Handler struct {
	authService *Service
}

// NewHandler constructs a new [Handler] with its service dependency.
func NewHandler(service *Service) *Handler {
	return &Handler{authService: service}
}

// Routes returns a [chi.Router] configured with authentication-specific routes.
//
// # Endpoints
//   - POST /inscription            : Creates a new account (anonymous only).
//   - POST /login                  : Authenticates and opens a session (anonymous only).
//   - GET  /deconnexion            : Terminates the session (authenticated only).
//   - GET  /verification           : Redeems an email verification token.
//   - POST /verification-email     : Re-sends the verification email.
//   - GET  /admin/utilisateurs     : Lists accounts (super administrator only).
//   - POST /demande-reset-password : Starts the password recovery flow.
//   - POST /reset-password         : Completes the password recovery flow.
func (handler *Handler) Routes() chi.Router {
	router := chi.NewRouter()

	// Reachable only without an open session
	router.Group(func(r chi.Router) {
		r.Use(session.Guard(session.RequireAnonymous))
		r.Post("/inscription", handler.register)
		r.Post("/login", handler.login)
	})

	// Reachable only with an open session
	router.Group(func(r chi.Router) {
		r.Use(session.Guard(session.RequireAuthenticated))
		r.Get("/deconnexion", handler.logout)
	})

	// Reachable only by the site owner
	router.Group(func(r chi.Router) {
		r.Use(session.Guard(session.RequireSuperAdmin))
		r.Get("/admin/utilisateurs", handler.listUsers)
	})

	// Public endpoints
	router.Get("/verification", handler.verifyEmail)
	router.Post("/verification-email", handler.resendVerification)
	router.Post("/demande-reset-password", handler.requestPasswordReset)
	router.Post("/reset-password", handler.resetPassword)
	router.Get("/email-disponible", handler.emailAvailable)

	return router
}

// # Request Payloads

type registerRequest struct {
	Pseudo          string `json:"pseudo"`
	Email           string `json:"email"`
	Password        string `json:"password"`
	ConfirmPassword string `json:"confirm_password"`
}

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type emailRequest struct {
	Email string `json:"email"`
}

type resetPasswordRequest struct {
	Token           string `json:"token"`
	Password        string `json:"password"`
	ConfirmPassword string `json:"confirm_password"`
}

/*
Register handles the creation of a new user account.

POST /inscription

Description: Validates every submitted field, checks that the email address
is still free, persists the profile and dispatches the verification email.

Request:
  - Body: registerRequest (Pseudo, Email, Password, ConfirmPassword)

Response:
  - 201: User: Created user profile
  - 400: ErrInvalidJSON: Bad input or validation failure
  - 409: ErrConflict: Email already exists
*/
func (handler *Handler) register(writer http.ResponseWriter, request *http.Request) {
	var input registerRequest

	if err := requestutil.DecodeJSON(request, &input); err != nil {
		respond.Error(writer, request, validate.ErrInvalidJSON)
		return
	}

	user, result, err := handler.authService.Register(request.Context(), RegisterInput{
		Pseudo:          input.Pseudo,
		Email:           input.Email,
		Password:        input.Password,
		ConfirmPassword: input.ConfirmPassword,
	})
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	if !result.Valid() {
		respond.Error(writer, request, result.Err())
		return
	}

	respond.Created(writer, user)
}

/*
Login authenticates a user and opens a server-side session.

POST /login

Description: Verifies the credentials against the stored bcrypt hash and, on
success, binds the user identity to the session carried by the request.

Request:
  - Body: loginRequest (Email, Password)

Response:
  - 200: User: Authenticated user profile
  - 401: ErrUnauthorized: Invalid credentials or unverified account
*/
func (handler *Handler) login(writer http.ResponseWriter, request *http.Request) {
	var input loginRequest

	if err := requestutil.DecodeJSON(request, &input); err != nil {
		respond.Error(writer, request, validate.ErrInvalidJSON)
		return
	}

	validator := &validate.Validator{}
	validator.Required(FieldEmail, input.Email)
	validator.Required(FieldPassword, input.Password)

	if err := validator.Err(); err != nil {
		respond.Error(writer, request, err)
		return
	}

	user, err := handler.authService.Login(request.Context(), input.Email, input.Password)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	currentSession := session.FromContext(request.Context())
	err = currentSession.SetIdentity(request.Context(), session.Identity{
		ID:       user.ID,
		Pseudo:   user.Pseudo,
		Email:    user.Email,
		Role:     user.Role,
		Template: user.Template,
	})
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.OK(writer, map[string]any{
		FieldUser: user,
	})
}

/*
Logout terminates the current user session.

GET /deconnexion

Description: Destroys the server-side session record and sends the browser
back to the home page.

Response:
  - 302: Redirect to /
*/
func (handler *Handler) logout(writer http.ResponseWriter, request *http.Request) {
	currentSession := session.FromContext(request.Context())

	if err := currentSession.Clear(request.Context()); err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.Redirect(writer, request, constants.HomePath)
}

/*
VerifyEmail confirms a user's email ownership.

GET /verification?token=...

Description: Redeems the verification token received by email and marks the
account as verified. Tokens are single-use.

Response:
  - 200: Success: Email verified
  - 400: ErrInvalidJSON: Missing token
  - 404: ErrNotFound: Unknown or expired token
*/
func (handler *Handler) verifyEmail(writer http.ResponseWriter, request *http.Request) {
	token := request.URL.Query().Get(FieldToken)

	if token == "" {
		respond.Error(writer, request, validate.RequiredError(FieldToken, "is required"))
		return
	}

	if err := handler.authService.VerifyEmail(request.Context(), token); err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.OK(writer, map[string]string{
		FieldMessage: "Email verified successfully",
	})
}

/*
ResendVerification re-sends the account verification email.

POST /verification-email

Description: Issues a fresh verification token for an unverified account and
dispatches it again. Unknown addresses produce the same response as known
ones so the endpoint cannot be used to enumerate accounts.

Request:
  - Body: emailRequest (Email)

Response:
  - 200: Success: Generic confirmation message
  - 409: ErrConflict: Account already verified
*/
func (handler *Handler) resendVerification(writer http.ResponseWriter, request *http.Request) {
	var input emailRequest

	if err := requestutil.DecodeJSON(request, &input); err != nil {
		respond.Error(writer, request, validate.ErrInvalidJSON)
		return
	}

	v := &validate.Validator{}
	v.Required(FieldEmail, input.Email).Email(FieldEmail, input.Email)

	if err := v.Err(); err != nil {
		respond.Error(writer, request, err)
		return
	}

	if err := handler.authService.ResendVerification(request.Context(), input.Email); err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.OK(writer, map[string]string{
		FieldMessage: "If this email is registered, a verification link has been sent.",
	})
}

/*
RequestPasswordReset initiates the password recovery flow.

POST /demande-reset-password

Description: Sends a reset link to the provided email if the account exists.
The response never reveals whether the address is registered.

Request:
  - Body: emailRequest (Email)

Response:
  - 200: Success: Generic confirmation message
  - 400: ErrInvalidJSON: Invalid email format
*/
func (handler *Handler) requestPasswordReset(writer http.ResponseWriter, request *http.Request) {
	var input emailRequest

	if err := requestutil.DecodeJSON(request, &input); err != nil {
		respond.Error(writer, request, validate.ErrInvalidJSON)
		return
	}

	v := &validate.Validator{}
	v.Required(FieldEmail, input.Email).Email(FieldEmail, input.Email)

	if err := v.Err(); err != nil {
		respond.Error(writer, request, err)
		return
	}

	if err := handler.authService.RequestPasswordReset(request.Context(), input.Email); err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.OK(writer, map[string]string{
		FieldMessage: "If this email is registered, a reset link has been sent.",
	})
}

/*
ResetPassword completes the password recovery flow.

POST /reset-password

Description: Validates the reset token and the new password pair, then
updates the stored hash. The token is consumed on success.

Request:
  - Body: resetPasswordRequest (Token, Password, ConfirmPassword)

Response:
  - 200: Success: Password updated
  - 400: ErrInvalidJSON: Weak password or mismatched confirmation
  - 404: ErrNotFound: Unknown or expired token
*/
func (handler *Handler) resetPassword(writer http.ResponseWriter, request *http.Request) {
	var input resetPasswordRequest

	if err := requestutil.DecodeJSON(request, &input); err != nil {
		respond.Error(writer, request, validate.ErrInvalidJSON)
		return
	}

	if input.Token == "" {
		respond.Error(writer, request, validate.RequiredError(FieldToken, "is required"))
		return
	}

	result, err := handler.authService.ResetPassword(
		request.Context(),
		input.Token,
		input.Password,
		input.ConfirmPassword,
	)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	if !result.Valid() {
		respond.Error(writer, request, result.Err())
		return
	}

	respond.OK(writer, map[string]string{
		FieldMessage: "Password updated successfully",
	})
}

/*
ListUsers returns a page of user accounts for the administration screen.

GET /admin/utilisateurs?page=&limit=

Response:
  - 200: Paginated []User
  - 302: Redirect to / when the caller is not the super administrator
*/
func (handler *Handler) listUsers(writer http.ResponseWriter, request *http.Request) {
	params := pagination.FromRequest(request)

	users, total, err := handler.authService.ListUsers(
		request.Context(), params.Limit, params.Offset(),
	)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.Paginated(writer, users, pagination.NewMeta(params.Page, params.Limit, total))
}

/*
EmailAvailable reports whether an email address is still free.

GET /email-disponible?email=...

Description: Live availability probe used by the registration form.

Response:
  - 200: {"available": bool}
  - 400: ErrInvalidJSON: Invalid email format
*/
func (handler *Handler) emailAvailable(writer http.ResponseWriter, request *http.Request) {
	email := request.URL.Query().Get(FieldEmail)

	v := &validate.Validator{}
	v.Required(FieldEmail, email).Email(FieldEmail, email)

	if err := v.Err(); err != nil {
		respond.Error(writer, request, err)
		return
	}

	result, err := handler.authService.CheckEmailTaken(request.Context(), email)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.OK(writer, map[string]bool{
		"available": result.Valid(),
	})
}
