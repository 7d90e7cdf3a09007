package api

import (
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/dailydiet/daily-diet-api/internal/middleware"
	"github.com/dailydiet/daily-diet-api/internal/service"
)

// SetupAPI wires services and handlers onto the router. All /meals routes
// sit behind the session guard; /users is the only public route.
func SetupAPI(router *gin.Engine, db *gorm.DB) {
	userService := service.NewUserService(db)
	mealService := service.NewMealService(db)

	userHandler := NewUserHandler(userService)
	mealHandler := NewMealHandler(mealService)

	userHandler.RegisterRoutes(router.Group("/users"))
	mealHandler.RegisterRoutes(router.Group("/meals", middleware.SessionAuth(db)))
}
