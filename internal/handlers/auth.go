package handlers

import (
	"log"
	"net/http"

	"eizer/internal/auth"
	"eizer/internal/database"
	"eizer/internal/middleware"
	"eizer/internal/models"
	"eizer/internal/respond"

	"github.com/gin-contrib/sessions"
	"github.com/gin-gonic/gin"
)

type AuthHandler struct {
	store *database.Store
}

func NewAuthHandler(store *database.Store) *AuthHandler {
	return &AuthHandler{store: store}
}

// Me returns the caller's resolved identity, or null when unauthenticated.
func (h *AuthHandler) Me(c *gin.Context) {
	if user, ok := middleware.CurrentUser(c); ok {
		respond.Data(c, http.StatusOK, user)
		return
	}
	respond.Data(c, http.StatusOK, nil)
}

type loginInput struct {
	UsernameOrEmail string `json:"usernameOrEmail" binding:"required"`
	Password        string `json:"password" binding:"required,min=6"`
}

// Login authenticates a local account. A missing user, a user without a
// stored credential, and a failed verification all produce the same generic
// error so account existence cannot be probed.
func (h *AuthHandler) Login(c *gin.Context) {
	var input loginInput
	if err := c.ShouldBindJSON(&input); err != nil {
		badRequest(c, "usernameOrEmail and password are required")
		return
	}

	user, err := h.store.GetUserByUsernameOrEmail(input.UsernameOrEmail)
	if err != nil {
		internalError(c, "failed to fetch user")
		return
	}
	if user == nil || user.Password == nil {
		respond.Error(c, http.StatusUnauthorized, respond.CodeUnauthorized, "Invalid credentials")
		return
	}
	if !auth.VerifyPassword(input.Password, *user.Password) {
		respond.Error(c, http.StatusUnauthorized, respond.CodeUnauthorized, "Invalid credentials")
		return
	}

	if err := h.store.UpdateUserLastSignedIn(user.ID); err != nil {
		log.Printf("failed to update last signed in for user %d: %v", user.ID, err)
	}

	sess := sessions.Default(c)
	sess.Set("user_id", user.ID)
	sess.Set("role", string(user.Role))
	if err := sess.Save(); err != nil {
		internalError(c, "failed to establish session")
		return
	}

	respond.Data(c, http.StatusOK, user)
}

type signupInput struct {
	Username string `json:"username" binding:"required,min=3,max=100"`
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required,min=6"`
	Name     string `json:"name"`
}

// Signup creates a local password account. The username lives in the same
// identity column external logins use, so both uniqueness checks run against
// one table.
func (h *AuthHandler) Signup(c *gin.Context) {
	var input signupInput
	if err := c.ShouldBindJSON(&input); err != nil {
		badRequest(c, "username (min 3 chars), email and password (min 6 chars) are required")
		return
	}

	existing, err := h.store.GetUserByUsernameOrEmail(input.Username)
	if err != nil {
		internalError(c, "failed to check username")
		return
	}
	if existing != nil {
		respond.Error(c, http.StatusConflict, respond.CodeConflict, "Username already exists")
		return
	}

	existingEmail, err := h.store.GetUserByUsernameOrEmail(input.Email)
	if err != nil {
		internalError(c, "failed to check email")
		return
	}
	if existingEmail != nil {
		respond.Error(c, http.StatusConflict, respond.CodeConflict, "Email already registered")
		return
	}

	name := input.Name
	if name == "" {
		name = input.Username
	}
	hash := auth.HashPassword(input.Password)
	user := models.User{
		OpenID:      input.Username,
		Name:        name,
		Email:       input.Email,
		LoginMethod: "password",
		Role:        models.RoleUser,
		Password:    &hash,
	}
	if err := h.store.CreateUser(&user); err != nil {
		internalError(c, "failed to create user")
		return
	}

	sess := sessions.Default(c)
	sess.Set("user_id", user.ID)
	sess.Set("role", string(user.Role))
	if err := sess.Save(); err != nil {
		internalError(c, "failed to establish session")
		return
	}

	respond.Data(c, http.StatusOK, user)
}

// Logout clears the session. Always succeeds.
func (h *AuthHandler) Logout(c *gin.Context) {
	sess := sessions.Default(c)
	sess.Clear()
	sess.Options(sessions.Options{Path: "/", MaxAge: -1})
	_ = sess.Save()
	respond.Data(c, http.StatusOK, gin.H{"success": true})
}
