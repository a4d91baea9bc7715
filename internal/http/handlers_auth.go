package http

import (
	"encoding/json"
	"errors"
	nethttp "net/http"
	"net/mail"
	"regexp"

	"ign-lookup-service/internal/auth"
	"ign-lookup-service/internal/logging"
	"ign-lookup-service/internal/store"
)

var usernamePattern = regexp.MustCompile(`^[a-zA-Z0-9]{3,30}$`)

type registerRequest struct {
	Username string `json:"username"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

func (r registerRequest) validate() []fieldError {
	var errs []fieldError
	if !usernamePattern.MatchString(r.Username) {
		errs = append(errs, fieldError{Path: "username", Message: "username must be 3-30 alphanumeric characters"})
	}
	if _, err := mail.ParseAddress(r.Email); err != nil {
		errs = append(errs, fieldError{Path: "email", Message: "email must be a valid address"})
	}
	if len(r.Password) < 6 {
		errs = append(errs, fieldError{Path: "password", Message: "password must be at least 6 characters"})
	}
	return errs
}

type userView struct {
	ID       uint   `json:"id"`
	Username string `json:"username"`
	Email    string `json:"email"`
	APIKey   string `json:"api_key,omitempty"`
}

// Register handles POST /api/auth/register.
func (h *Handler) Register(w nethttp.ResponseWriter, r *nethttp.Request) {
	if r.Method != nethttp.MethodPost {
		h.methodNotAllowed(w, r)
		return
	}

	var req registerRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.writeError(w, r, nethttp.StatusBadRequest, "ValidationError", "invalid JSON body")
		return
	}
	if errs := req.validate(); len(errs) > 0 {
		h.writeValidationErrors(w, r, errs)
		return
	}

	hash, err := auth.HashPassword(req.Password)
	if err != nil {
		h.writeError(w, r, nethttp.StatusInternalServerError, "Error", "failed to process password")
		return
	}

	user := &store.User{
		Username:     req.Username,
		Email:        req.Email,
		PasswordHash: hash,
		APIKey:       auth.NewAPIKey(),
	}
	if err := h.store.CreateUser(r.Context(), user); err != nil {
		if errors.Is(err, store.ErrDuplicateUser) {
			h.writeError(w, r, nethttp.StatusBadRequest, "ConflictError", "Username or email already taken")
			return
		}
		logging.Error(logging.FromContext(r.Context(), h.logger), "user creation failed", err)
		h.writeError(w, r, nethttp.StatusInternalServerError, "Error", "failed to create user")
		return
	}

	token, err := h.tokens.Sign(user.ID, user.Username, user.Email)
	if err != nil {
		logging.Error(logging.FromContext(r.Context(), h.logger), "token signing failed", err)
		h.writeError(w, r, nethttp.StatusInternalServerError, "Error", "failed to issue token")
		return
	}

	logging.Info(logging.FromContext(r.Context(), h.logger), "user registered",
		"user_id", user.ID, "username", user.Username)

	h.writeData(w, r, nethttp.StatusCreated, "User registered successfully", map[string]any{
		"user":  userView{ID: user.ID, Username: user.Username, Email: user.Email, APIKey: user.APIKey},
		"token": token,
	})
}

// Login handles POST /api/auth/login.
func (h *Handler) Login(w nethttp.ResponseWriter, r *nethttp.Request) {
	if r.Method != nethttp.MethodPost {
		h.methodNotAllowed(w, r)
		return
	}

	var req loginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.writeError(w, r, nethttp.StatusBadRequest, "ValidationError", "invalid JSON body")
		return
	}
	if req.Email == "" || req.Password == "" {
		h.writeValidationErrors(w, r, []fieldError{
			{Path: "email", Message: "email and password are required"},
		})
		return
	}

	user, err := h.store.UserByEmail(r.Context(), req.Email)
	if err != nil {
		if store.IsNotFound(err) {
			h.writeError(w, r, nethttp.StatusUnauthorized, "UnauthorizedError", "Email or password is incorrect")
			return
		}
		logging.Error(logging.FromContext(r.Context(), h.logger), "login lookup failed", err)
		h.writeError(w, r, nethttp.StatusInternalServerError, "Error", "login failed")
		return
	}

	if !auth.CheckPassword(user.PasswordHash, req.Password) {
		h.writeError(w, r, nethttp.StatusUnauthorized, "UnauthorizedError", "Email or password is incorrect")
		return
	}

	token, err := h.tokens.Sign(user.ID, user.Username, user.Email)
	if err != nil {
		logging.Error(logging.FromContext(r.Context(), h.logger), "token signing failed", err)
		h.writeError(w, r, nethttp.StatusInternalServerError, "Error", "failed to issue token")
		return
	}

	h.writeData(w, r, nethttp.StatusOK, "Login successful", map[string]any{
		"user":  userView{ID: user.ID, Username: user.Username, Email: user.Email, APIKey: user.APIKey},
		"token": token,
	})
}
