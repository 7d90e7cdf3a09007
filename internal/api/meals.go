package api

import (
	"errors"
	"net/http"
	"regexp"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/dailydiet/daily-diet-api/internal/middleware"
	"github.com/dailydiet/daily-diet-api/internal/service"
)

// hourPattern matches HH:mm with hours 0-23 and minutes 0-59. A single
// digit hour is allowed ("9:30"), matching what clients already send.
var hourPattern = regexp.MustCompile(`^([0-1]?[0-9]|2[0-3]):[0-5][0-9]$`)

type MealHandler struct {
	mealService *service.MealService
}

func NewMealHandler(mealService *service.MealService) *MealHandler {
	return &MealHandler{mealService: mealService}
}

// RegisterRoutes mounts the meal routes. The caller is expected to have
// attached the session guard to the group; every handler here assumes an
// authenticated user in the context.
func (h *MealHandler) RegisterRoutes(router *gin.RouterGroup) {
	router.POST("", h.CreateMeal)
	router.GET("", h.ListMeals)
	router.GET("/metrics", h.GetMetrics)
	router.GET("/:id", h.GetMeal)
	router.PUT("/:id", h.UpdateMeal)
	router.DELETE("/:id", h.DeleteMeal)
}

// bindMealRequest validates a create/update body and normalizes its text
// fields. It writes the 400 response itself and returns false on failure.
func bindMealRequest(c *gin.Context) (service.MealInput, bool) {
	var req MealRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return service.MealInput{}, false
	}

	hour := strings.TrimSpace(req.Hour)
	if !hourPattern.MatchString(hour) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Format must be HH:mm"})
		return service.MealInput{}, false
	}

	return service.MealInput{
		Name:        strings.TrimSpace(req.Name),
		Description: strings.TrimSpace(req.Description),
		Date:        req.Date,
		Hour:        hour,
		IsOnDiet:    *req.IsOnDiet,
	}, true
}

// mealID parses the :id path parameter. Non-uuid ids are a 400, written by
// this helper.
func mealID(c *gin.Context) (uuid.UUID, bool) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid meal id"})
		return uuid.Nil, false
	}
	return id, true
}

func (h *MealHandler) CreateMeal(c *gin.Context) {
	user, ok := middleware.CurrentUser(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "User not authenticated"})
		return
	}

	input, ok := bindMealRequest(c)
	if !ok {
		return
	}

	// A (name, date, hour, user) uniqueness violation is not translated; it
	// surfaces like any other database failure.
	if _, err := h.mealService.Create(c.Request.Context(), user.ID, input); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create meal"})
		return
	}

	c.Status(http.StatusCreated)
}

func (h *MealHandler) ListMeals(c *gin.Context) {
	user, ok := middleware.CurrentUser(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "User not authenticated"})
		return
	}

	meals, err := h.mealService.List(c.Request.Context(), user.ID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to list meals"})
		return
	}

	// An empty list is signaled by the status code, not an empty array.
	if len(meals) == 0 {
		c.Status(http.StatusNoContent)
		return
	}

	c.JSON(http.StatusOK, gin.H{"meals": meals})
}

func (h *MealHandler) GetMeal(c *gin.Context) {
	user, ok := middleware.CurrentUser(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "User not authenticated"})
		return
	}

	id, ok := mealID(c)
	if !ok {
		return
	}

	meal, err := h.mealService.Get(c.Request.Context(), user.ID, id)
	if err != nil {
		if errors.Is(err, service.ErrMealNotFound) {
			c.Status(http.StatusNoContent)
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load meal"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"meal": meal})
}

func (h *MealHandler) UpdateMeal(c *gin.Context) {
	user, ok := middleware.CurrentUser(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "User not authenticated"})
		return
	}

	id, ok := mealID(c)
	if !ok {
		return
	}

	input, ok := bindMealRequest(c)
	if !ok {
		return
	}

	if err := h.mealService.Update(c.Request.Context(), user.ID, id, input); err != nil {
		if errors.Is(err, service.ErrMealNotFound) {
			c.Status(http.StatusNoContent)
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update meal"})
		return
	}

	c.Status(http.StatusOK)
}

func (h *MealHandler) DeleteMeal(c *gin.Context) {
	user, ok := middleware.CurrentUser(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "User not authenticated"})
		return
	}

	id, ok := mealID(c)
	if !ok {
		return
	}

	if err := h.mealService.Delete(c.Request.Context(), user.ID, id); err != nil {
		if errors.Is(err, service.ErrMealNotFound) {
			c.Status(http.StatusNoContent)
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete meal"})
		return
	}

	c.Status(http.StatusOK)
}

func (h *MealHandler) GetMetrics(c *gin.Context) {
	user, ok := middleware.CurrentUser(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "User not authenticated"})
		return
	}

	metrics, err := h.mealService.ComputeMetrics(c.Request.Context(), user.ID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to compute metrics"})
		return
	}

	if metrics.TotalMeals == 0 {
		c.Status(http.StatusNoContent)
		return
	}

	c.JSON(http.StatusOK, gin.H{"metrics": metrics})
}
