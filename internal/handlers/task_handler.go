package handlers

import (
	"encoding/json"
	"fmt"
	"log"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/gin-gonic/gin"

	"tasktrack/internal/models"
	"tasktrack/internal/pdf"
	"tasktrack/internal/services"
)

// dueDateLayout is the wire format for task due dates.
const dueDateLayout = "2006-01-02"

type TaskHandler struct {
	service services.TaskService
	users   services.UserService
}

func NewTaskHandler(service services.TaskService, users services.UserService) *TaskHandler {
	return &TaskHandler{service: service, users: users}
}

// POST /api/tasks
func (h *TaskHandler) Create(c *gin.Context) {
	userID, _ := currentUserID(c)

	var req struct {
		Title       string              `json:"title"`
		Description string              `json:"description"`
		Status      models.TaskStatus   `json:"status"`
		Priority    models.TaskPriority `json:"priority"`
		CategoryID  *int64              `json:"category_id"`
		DueDate     string              `json:"due_date"` // YYYY-MM-DD
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		log.Printf("[task][create][bind][err] %v", err)
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body"})
		return
	}
	if strings.TrimSpace(req.Title) == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Title is required"})
		return
	}
	if req.Status != "" && !models.IsValidStatus(req.Status) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid status"})
		return
	}
	if req.Priority != "" && !models.IsValidPriority(req.Priority) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid priority"})
		return
	}

	var due *time.Time
	if req.DueDate != "" {
		t, err := time.Parse(dueDateLayout, req.DueDate)
		if err != nil {
			log.Printf("[task][create][err] invalid due_date=%q: %v", req.DueDate, err)
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid date format"})
			return
		}
		due = &t
	}

	task := &models.Task{
		UserID:      userID,
		CategoryID:  req.CategoryID,
		Title:       req.Title,
		Description: req.Description,
		Status:      req.Status,
		Priority:    req.Priority,
		DueDate:     due,
	}

	created, err := h.service.Create(c.Request.Context(), task)
	if err != nil {
		log.Printf("[task][create][err] user=%d: %v", userID, err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to create task"})
		return
	}
	log.Printf("[task][create][ok] id=%d user=%d title=%q", created.ID, userID, created.Title)
	c.JSON(http.StatusCreated, created)
}

// GET /api/tasks/:id
func (h *TaskHandler) GetByID(c *gin.Context) {
	userID, _ := currentUserID(c)

	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Task not found"})
		return
	}

	task, err := h.service.GetByID(c.Request.Context(), id, userID)
	if err != nil {
		if err == models.ErrNotFound {
			c.JSON(http.StatusNotFound, gin.H{"error": "Task not found"})
			return
		}
		log.Printf("[task][getByID][err] id=%d user=%d: %v", id, userID, err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to get task"})
		return
	}
	c.JSON(http.StatusOK, task)
}

// filterFromQuery translates the supported query parameters into a
// TaskFilter. Absent parameters mean "no constraint"; unparseable numeric
// parameters are logged and ignored.
func filterFromQuery(c *gin.Context, userID int64) models.TaskFilter {
	filter := models.TaskFilter{UserID: userID}

	if v, ok := c.GetQuery("search"); ok && v != "" {
		filter.Search = &v
	}
	if v, ok := c.GetQuery("status"); ok && v != "" {
		st := models.TaskStatus(v)
		filter.Status = &st
	}
	if v, ok := c.GetQuery("priority"); ok && v != "" {
		p := models.TaskPriority(v)
		filter.Priority = &p
	}
	if v, ok := c.GetQuery("category_id"); ok && v != "" {
		if id, err := strconv.ParseInt(v, 10, 64); err == nil {
			filter.CategoryID = &id
		} else {
			log.Printf("[task][list][warn] bad category_id=%q: %v", v, err)
		}
	}
	if c.Query("overdue") == "true" {
		filter.Overdue = true
	}
	return filter
}

// GET /api/tasks
func (h *TaskHandler) GetAll(c *gin.Context) {
	userID, _ := currentUserID(c)

	filter := filterFromQuery(c, userID)
	tasks, err := h.service.GetAll(c.Request.Context(), filter)
	if err != nil {
		log.Printf("[task][list][err] user=%d: %v", userID, err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to retrieve tasks"})
		return
	}
	if tasks == nil {
		tasks = []models.Task{}
	}
	c.JSON(http.StatusOK, tasks)
}

// PUT /api/tasks/:id
func (h *TaskHandler) Update(c *gin.Context) {
	userID, _ := currentUserID(c)

	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Task not found"})
		return
	}

	current, err := h.service.GetByID(c.Request.Context(), id, userID)
	if err != nil {
		if err == models.ErrNotFound {
			c.JSON(http.StatusNotFound, gin.H{"error": "Task not found"})
			return
		}
		log.Printf("[task][update][err] get current id=%d user=%d: %v", id, userID, err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to get task"})
		return
	}

	var req struct {
		Title       *string              `json:"title"`
		Description *string              `json:"description"`
		Status      *models.TaskStatus   `json:"status"`
		Priority    *models.TaskPriority `json:"priority"`
		CategoryID  *int64               `json:"category_id"`
		DueDate     json.RawMessage      `json:"due_date"` // YYYY-MM-DD, "" or null clears
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		log.Printf("[task][update][bind][err] %v", err)
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body"})
		return
	}

	// partial update: absent fields stay as they are
	update := *current

	if req.Title != nil {
		if strings.TrimSpace(*req.Title) == "" {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Title is required"})
			return
		}
		update.Title = *req.Title
	}
	if req.Description != nil {
		update.Description = *req.Description
	}
	if req.Status != nil {
		if !models.IsValidStatus(*req.Status) {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid status"})
			return
		}
		update.Status = *req.Status
	}
	if req.Priority != nil {
		if !models.IsValidPriority(*req.Priority) {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid priority"})
			return
		}
		update.Priority = *req.Priority
	}
	if req.CategoryID != nil {
		update.CategoryID = req.CategoryID
	}
	if req.DueDate != nil {
		// null and "" clear the date; an absent key leaves it unchanged
		var value *string
		if err := json.Unmarshal(req.DueDate, &value); err != nil {
			log.Printf("[task][update][err] invalid due_date=%s: %v", req.DueDate, err)
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid date format"})
			return
		}
		if value == nil || *value == "" {
			update.DueDate = nil
		} else {
			t, err := time.Parse(dueDateLayout, *value)
			if err != nil {
				log.Printf("[task][update][err] invalid due_date=%q: %v", *value, err)
				c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid date format"})
				return
			}
			update.DueDate = &t
		}
	}

	updated, err := h.service.Update(c.Request.Context(), &update)
	if err != nil {
		if err == models.ErrNotFound {
			c.JSON(http.StatusNotFound, gin.H{"error": "Task not found"})
			return
		}
		log.Printf("[task][update][err] save id=%d user=%d: %v", id, userID, err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to update task"})
		return
	}
	log.Printf("[task][update][ok] id=%d user=%d", id, userID)
	c.JSON(http.StatusOK, updated)
}

// DELETE /api/tasks/:id
func (h *TaskHandler) Delete(c *gin.Context) {
	userID, _ := currentUserID(c)

	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Task not found"})
		return
	}

	if err := h.service.Delete(c.Request.Context(), id, userID); err != nil {
		if err == models.ErrNotFound {
			c.JSON(http.StatusNotFound, gin.H{"error": "Task not found"})
			return
		}
		log.Printf("[task][delete][err] id=%d user=%d: %v", id, userID, err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to delete task"})
		return
	}
	log.Printf("[task][delete][ok] id=%d user=%d", id, userID)
	c.JSON(http.StatusOK, gin.H{"message": "Task deleted successfully"})
}

// GET /api/tasks/export
// Renders the filtered task list as a PDF. Accepts the same query
// parameters as GET /api/tasks.
func (h *TaskHandler) Export(c *gin.Context) {
	userID, _ := currentUserID(c)

	filter := filterFromQuery(c, userID)
	tasks, err := h.service.GetAll(c.Request.Context(), filter)
	if err != nil {
		log.Printf("[task][export][err] user=%d: %v", userID, err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to retrieve tasks"})
		return
	}

	username := ""
	if user, err := h.users.GetByID(c.Request.Context(), userID); err == nil {
		username = user.Username
	}

	data, err := pdf.RenderTaskList(username, tasks)
	if err != nil {
		log.Printf("[task][export][err] render pdf user=%d: %v", userID, err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to render export"})
		return
	}

	filename := fmt.Sprintf("tasks_%s.pdf", time.Now().Format("2006-01-02"))
	c.Header("Content-Disposition", `attachment; filename="`+filename+`"`)
	c.Data(http.StatusOK, "application/pdf", data)
}
