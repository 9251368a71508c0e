package handlers

import (
	"encoding/json"
	"errors"
	"net/http"
	"strings"

	"github.com/rs/zerolog"

	"github.com/zhaosongzhu/financial-app-backend/internal/api/middleware"
	"github.com/zhaosongzhu/financial-app-backend/internal/domain"
	"github.com/zhaosongzhu/financial-app-backend/internal/store"
)

// UsersHandler handles user-related endpoints.
type UsersHandler struct {
	users store.UserStore
	log   zerolog.Logger
}

// NewUsersHandler creates a new users handler. The store may be nil when the
// document store failed to initialize; every route then answers with a 500.
func NewUsersHandler(users store.UserStore, log zerolog.Logger) *UsersHandler {
	return &UsersHandler{
		users: users,
		log:   log,
	}
}

// ListUsers handles GET /users
func (h *UsersHandler) ListUsers(w http.ResponseWriter, r *http.Request) {
	if h.users == nil {
		middleware.WriteError(w, http.StatusInternalServerError, "Document store is not initialized")
		return
	}

	users, err := h.users.ListUsers(r.Context())
	if err != nil {
		h.log.Error().Err(err).Msg("Failed to list users")
		middleware.WriteError(w, http.StatusInternalServerError, "Failed to list users")
		return
	}

	// Empty listing deliberately signals not-found rather than an empty
	// array; existing clients depend on it.
	if len(users) == 0 {
		middleware.WriteError(w, http.StatusNotFound, "No users found")
		return
	}

	middleware.WriteJSON(w, http.StatusOK, users)
}

// CreateUser handles POST /users
func (h *UsersHandler) CreateUser(w http.ResponseWriter, r *http.Request) {
	if h.users == nil {
		middleware.WriteError(w, http.StatusInternalServerError, "Document store is not initialized")
		return
	}

	var req struct {
		Name        string `json:"name"`
		DisplayName string `json:"displayName"`
		Email       string `json:"email"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		middleware.WriteError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	// displayName is an accepted alias for name; older clients send it.
	name := strings.TrimSpace(req.Name)
	if name == "" {
		name = strings.TrimSpace(req.DisplayName)
	}

	if name == "" {
		middleware.WriteError(w, http.StatusBadRequest, "name is required")
		return
	}
	if strings.TrimSpace(req.Email) == "" {
		middleware.WriteError(w, http.StatusBadRequest, "email is required")
		return
	}

	created, err := h.users.CreateUser(r.Context(), domain.User{
		Name:  name,
		Email: strings.TrimSpace(req.Email),
	})
	if err != nil {
		h.log.Error().Err(err).Msg("Failed to create user")
		middleware.WriteError(w, http.StatusInternalServerError, "Failed to create user")
		return
	}

	h.log.Info().Str("user_id", created.ID).Msg("User created")
	middleware.WriteJSON(w, http.StatusCreated, created)
}

// GetUser handles GET /users/{id}
func (h *UsersHandler) GetUser(w http.ResponseWriter, r *http.Request, id string) {
	if h.users == nil {
		middleware.WriteError(w, http.StatusInternalServerError, "Document store is not initialized")
		return
	}

	user, err := h.users.GetUser(r.Context(), id)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			middleware.WriteError(w, http.StatusNotFound, "User not found")
			return
		}
		h.log.Error().Err(err).Str("user_id", id).Msg("Failed to get user")
		middleware.WriteError(w, http.StatusInternalServerError, "Failed to get user")
		return
	}

	middleware.WriteJSON(w, http.StatusOK, user)
}

// UpdateUser handles PUT /users/{id}
func (h *UsersHandler) UpdateUser(w http.ResponseWriter, r *http.Request, id string) {
	if h.users == nil {
		middleware.WriteError(w, http.StatusInternalServerError, "Document store is not initialized")
		return
	}

	var upd domain.UserUpdate
	if err := json.NewDecoder(r.Body).Decode(&upd); err != nil {
		middleware.WriteError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	user, err := h.users.UpdateUser(r.Context(), id, upd)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			middleware.WriteError(w, http.StatusNotFound, "User not found")
			return
		}
		h.log.Error().Err(err).Str("user_id", id).Msg("Failed to update user")
		middleware.WriteError(w, http.StatusInternalServerError, "Failed to update user")
		return
	}

	middleware.WriteJSON(w, http.StatusOK, user)
}

// DeleteUser handles DELETE /users/{id}
func (h *UsersHandler) DeleteUser(w http.ResponseWriter, r *http.Request, id string) {
	if h.users == nil {
		middleware.WriteError(w, http.StatusInternalServerError, "Document store is not initialized")
		return
	}

	if err := h.users.DeleteUser(r.Context(), id); err != nil {
		if errors.Is(err, store.ErrNotFound) {
			middleware.WriteError(w, http.StatusNotFound, "User not found")
			return
		}
		h.log.Error().Err(err).Str("user_id", id).Msg("Failed to delete user")
		middleware.WriteError(w, http.StatusInternalServerError, "Failed to delete user")
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
