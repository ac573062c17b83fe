package handlers

import (
	"log"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"tasktrack/internal/models"
	"tasktrack/internal/services"
)

// SessionCookie describes how the auth handlers write the session cookie.
type SessionCookie struct {
	Name   string
	MaxAge int // seconds
	Secure bool
}

type AuthHandler struct {
	userService services.UserService
	sessions    services.SessionService
	cookie      SessionCookie
}

func NewAuthHandler(userService services.UserService, sessions services.SessionService, cookie SessionCookie) *AuthHandler {
	return &AuthHandler{userService: userService, sessions: sessions, cookie: cookie}
}

func (h *AuthHandler) setSessionCookie(c *gin.Context, token string) {
	c.SetSameSite(http.SameSiteLaxMode)
	c.SetCookie(h.cookie.Name, token, h.cookie.MaxAge, "/", "", h.cookie.Secure, true)
}

func (h *AuthHandler) clearSessionCookie(c *gin.Context) {
	c.SetSameSite(http.SameSiteLaxMode)
	c.SetCookie(h.cookie.Name, "", -1, "/", "", h.cookie.Secure, true)
}

// @Summary      Register a new account
// @Description  Creates the user, seeds the default categories and starts a session
// @Tags         Auth
// @Accept       json
// @Produce      json
// @Param        register  body      models.RegisterRequest  true  "Registration data"
// @Success      201       {object}  map[string]string
// @Failure      400       {object}  map[string]string
// @Router       /api/register [post]
func (h *AuthHandler) Register(c *gin.Context) {
	var req models.RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		log.Printf("[auth][register][bind][err] %v", err)
		c.JSON(http.StatusBadRequest, gin.H{"error": "All fields are required"})
		return
	}
	if strings.TrimSpace(req.Username) == "" ||
		strings.TrimSpace(req.Email) == "" ||
		req.Password == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "All fields are required"})
		return
	}
	log.Printf("[auth][register] attempt username=%q email=%q", req.Username, req.Email)

	user, err := h.userService.Register(c.Request.Context(), req.Username, req.Email, req.Password)
	if err != nil {
		switch err {
		case models.ErrUsernameTaken:
			c.JSON(http.StatusBadRequest, gin.H{"error": "Username already exists"})
		case models.ErrEmailTaken:
			c.JSON(http.StatusBadRequest, gin.H{"error": "Email already exists"})
		default:
			log.Printf("[auth][register][err] %v", err)
			c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to register"})
		}
		return
	}

	session, err := h.sessions.Issue(c.Request.Context(), user.ID)
	if err != nil {
		log.Printf("[auth][register][err] issue session for user=%d: %v", user.ID, err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to start session"})
		return
	}
	h.setSessionCookie(c, session.Token)

	log.Printf("[auth][register][ok] user=%d username=%q", user.ID, user.Username)
	c.JSON(http.StatusCreated, gin.H{
		"message":  "Registration successful",
		"username": user.Username,
	})
}

// @Summary      Log in
// @Description  Verifies the credentials and starts a session
// @Tags         Auth
// @Accept       json
// @Produce      json
// @Param        login  body      models.LoginRequest  true  "Login data"
// @Success      200    {object}  map[string]string
// @Failure      400    {object}  map[string]string
// @Failure      401    {object}  map[string]string
// @Router       /api/login [post]
func (h *AuthHandler) Login(c *gin.Context) {
	var req models.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		log.Printf("[auth][login][bind][err] %v", err)
		c.JSON(http.StatusBadRequest, gin.H{"error": "Username and password are required"})
		return
	}
	if strings.TrimSpace(req.Username) == "" || req.Password == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Username and password are required"})
		return
	}
	log.Printf("[auth][login] attempt username=%q", req.Username)

	user, err := h.userService.Authenticate(c.Request.Context(), req.Username, req.Password)
	if err != nil {
		if err == models.ErrInvalidCredentials {
			log.Printf("[auth][login][deny] username=%q", req.Username)
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid username or password"})
			return
		}
		log.Printf("[auth][login][err] %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to log in"})
		return
	}

	session, err := h.sessions.Issue(c.Request.Context(), user.ID)
	if err != nil {
		log.Printf("[auth][login][err] issue session for user=%d: %v", user.ID, err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to start session"})
		return
	}
	h.setSessionCookie(c, session.Token)

	log.Printf("[auth][login][ok] user=%d", user.ID)
	c.JSON(http.StatusOK, gin.H{
		"message":  "Login successful",
		"username": user.Username,
	})
}

// @Summary      Log out
// @Description  Revokes the session; safe to call without one
// @Tags         Auth
// @Produce      json
// @Success      200  {object}  map[string]string
// @Router       /api/logout [post]
func (h *AuthHandler) Logout(c *gin.Context) {
	// idempotent: a missing or stale cookie still yields a 200
	if token, err := c.Cookie(h.cookie.Name); err == nil && token != "" {
		if err := h.sessions.Revoke(c.Request.Context(), token); err != nil {
			log.Printf("[auth][logout][err] revoke: %v", err)
		}
	}
	h.clearSessionCookie(c)
	c.JSON(http.StatusOK, gin.H{"message": "Logout successful"})
}
