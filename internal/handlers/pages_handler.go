package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"tasktrack/internal/services"
)

// PagesHandler serves the server-rendered shell pages. The pages themselves
// only bootstrap the JSON API from client-side script.
type PagesHandler struct {
	sessions   services.SessionService
	cookieName string
}

func NewPagesHandler(sessions services.SessionService, cookieName string) *PagesHandler {
	return &PagesHandler{sessions: sessions, cookieName: cookieName}
}

func (h *PagesHandler) authenticated(c *gin.Context) bool {
	token, err := c.Cookie(h.cookieName)
	if err != nil || token == "" {
		return false
	}
	_, err = h.sessions.Resolve(c.Request.Context(), token)
	return err == nil
}

// GET /
func (h *PagesHandler) Index(c *gin.Context) {
	if h.authenticated(c) {
		c.Redirect(http.StatusFound, "/dashboard")
		return
	}
	c.HTML(http.StatusOK, "login.html", nil)
}

// GET /register
func (h *PagesHandler) RegisterPage(c *gin.Context) {
	c.HTML(http.StatusOK, "register.html", nil)
}

// GET /dashboard
func (h *PagesHandler) Dashboard(c *gin.Context) {
	if !h.authenticated(c) {
		c.Redirect(http.StatusFound, "/")
		return
	}
	c.HTML(http.StatusOK, "dashboard.html", nil)
}

// GET /tasks
func (h *PagesHandler) TasksPage(c *gin.Context) {
	if !h.authenticated(c) {
		c.Redirect(http.StatusFound, "/")
		return
	}
	c.HTML(http.StatusOK, "tasks.html", nil)
}
