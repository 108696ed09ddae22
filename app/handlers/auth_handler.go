package handlers

import (
	"encoding/json"
	"log"
	"net/http"
	"strings"

	"shopfront/app/middlewares"
	"shopfront/app/models"
	"shopfront/app/repositories"
	"shopfront/app/utils/sessions"

	"github.com/gorilla/csrf"
	"github.com/unrolled/render"
	"golang.org/x/crypto/bcrypt"
)

type AuthHandler struct {
	render   *render.Render
	userRepo repositories.UserRepositoryImpl
	store    sessions.SessionStore
}

func NewAuthHandler(renderer *render.Render, userRepo repositories.UserRepositoryImpl, store sessions.SessionStore) *AuthHandler {
	return &AuthHandler{render: renderer, userRepo: userRepo, store: store}
}

type registerInput struct {
	Username  string `json:"username"`
	Email     string `json:"email"`
	Password  string `json:"password"`
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
}

func (h *AuthHandler) RegisterPost(w http.ResponseWriter, r *http.Request) {
	var input registerInput
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		h.render.JSON(w, http.StatusBadRequest, map[string]string{"detail": "Invalid JSON body"})
		return
	}
	input.Username = strings.TrimSpace(input.Username)
	if input.Username == "" || len(input.Password) < 8 {
		h.render.JSON(w, http.StatusBadRequest, map[string]string{"detail": "username and a password of at least 8 characters are required"})
		return
	}

	existing, err := h.userRepo.FindByUsernameOrEmail(r.Context(), input.Username)
	if err != nil {
		log.Printf("AuthHandler.RegisterPost: %v", err)
		h.render.JSON(w, http.StatusInternalServerError, map[string]string{"detail": "Failed to register"})
		return
	}
	if existing != nil {
		h.render.JSON(w, http.StatusBadRequest, map[string]string{"detail": "Username already taken"})
		return
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(input.Password), bcrypt.DefaultCost)
	if err != nil {
		log.Printf("AuthHandler.RegisterPost: hashing password: %v", err)
		h.render.JSON(w, http.StatusInternalServerError, map[string]string{"detail": "Failed to register"})
		return
	}

	user := &models.User{
		Username:  input.Username,
		Email:     strings.TrimSpace(input.Email),
		Password:  string(hashed),
		FirstName: input.FirstName,
		LastName:  input.LastName,
	}
	if err := h.userRepo.Create(r.Context(), user); err != nil {
		log.Printf("AuthHandler.RegisterPost: %v", err)
		h.render.JSON(w, http.StatusInternalServerError, map[string]string{"detail": "Failed to register"})
		return
	}

	if err := h.store.SetUserID(w, r, user.ID); err != nil {
		log.Printf("AuthHandler.RegisterPost: saving session: %v", err)
	}
	h.render.JSON(w, http.StatusCreated, user)
}

type loginInput struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

func (h *AuthHandler) LoginPost(w http.ResponseWriter, r *http.Request) {
	var input loginInput
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		h.render.JSON(w, http.StatusBadRequest, map[string]string{"detail": "Invalid JSON body"})
		return
	}

	user, err := h.userRepo.FindByUsernameOrEmail(r.Context(), input.Username)
	if err != nil {
		log.Printf("AuthHandler.LoginPost: %v", err)
		h.render.JSON(w, http.StatusInternalServerError, map[string]string{"detail": "Failed to log in"})
		return
	}
	if user == nil || bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(input.Password)) != nil {
		h.render.JSON(w, http.StatusUnauthorized, map[string]string{"detail": "Invalid credentials"})
		return
	}

	if err := h.store.SetUserID(w, r, user.ID); err != nil {
		log.Printf("AuthHandler.LoginPost: saving session: %v", err)
		h.render.JSON(w, http.StatusInternalServerError, map[string]string{"detail": "Failed to log in"})
		return
	}
	h.render.JSON(w, http.StatusOK, user)
}

func (h *AuthHandler) LogoutPost(w http.ResponseWriter, r *http.Request) {
	if err := h.store.ClearSession(w, r); err != nil {
		log.Printf("AuthHandler.LogoutPost: %v", err)
	}
	h.render.JSON(w, http.StatusOK, map[string]string{"detail": "Logged out"})
}

func (h *AuthHandler) MeGet(w http.ResponseWriter, r *http.Request) {
	userID := middlewares.UserIDFromContext(r.Context())
	if userID == 0 {
		h.render.JSON(w, http.StatusUnauthorized, map[string]string{"detail": "Not authenticated"})
		return
	}
	user, err := h.userRepo.FindByID(r.Context(), userID)
	if err != nil {
		log.Printf("AuthHandler.MeGet: %v", err)
		h.render.JSON(w, http.StatusInternalServerError, map[string]string{"detail": "Failed to load user"})
		return
	}
	if user == nil {
		h.render.JSON(w, http.StatusUnauthorized, map[string]string{"detail": "Not authenticated"})
		return
	}
	h.render.JSON(w, http.StatusOK, user)
}

// CSRFGet hands the token to browser clients so they can echo it back on
// mutating requests.
func (h *AuthHandler) CSRFGet(w http.ResponseWriter, r *http.Request) {
	h.render.JSON(w, http.StatusOK, map[string]string{"csrf_token": csrf.Token(r)})
}
