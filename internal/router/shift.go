package router

import (
	"shiftdesk/internal/handler"
	"shiftdesk/internal/middleware"

	"github.com/gin-gonic/gin"
)

type ShiftRouter struct {
	shiftHandler   *handler.ShiftHandler
	taskHandler    *handler.TaskHandler
	journalHandler *handler.JournalHandler
	authMiddleware *middleware.Auth
}

func NewShiftRouter(
	shiftHandler *handler.ShiftHandler,
	taskHandler *handler.TaskHandler,
	journalHandler *handler.JournalHandler,
	authMiddleware *middleware.Auth,
) *ShiftRouter {
	return &ShiftRouter{
		shiftHandler:   shiftHandler,
		taskHandler:    taskHandler,
		journalHandler: journalHandler,
		authMiddleware: authMiddleware,
	}
}

func (sr *ShiftRouter) RegisterRoutes(engine *gin.Engine) {
	router := engine.Group("/shifts")
	router.Use(sr.authMiddleware.Handler())
	{
		router.POST("", sr.shiftHandler.Start)
		router.POST("/close", sr.shiftHandler.Close)
		router.GET("/active", sr.shiftHandler.Active)
		router.GET("/:shiftID", sr.shiftHandler.Get)
		router.POST("/:shiftID/orders", sr.shiftHandler.CreateOrder)
		router.GET("/:shiftID/orders", sr.shiftHandler.ListOrders)

		router.GET("/:shiftID/tasks", sr.taskHandler.List)
		router.PUT("/:shiftID/tasks/:taskID", sr.taskHandler.Toggle)

		router.GET("/:shiftID/events", sr.journalHandler.ListEvents)
		router.POST("/:shiftID/problems", sr.journalHandler.ReportProblem)
	}
}
