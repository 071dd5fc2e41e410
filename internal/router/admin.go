package router

import (
	"shiftdesk/internal/handler"
	"shiftdesk/internal/middleware"

	"github.com/gin-gonic/gin"
)

type AdminRouter struct {
	shiftHandler    *handler.AdminShiftHandler
	tenantHandler   *handler.AdminTenantHandler
	storeHandler    *handler.AdminStoreHandler
	employeeHandler *handler.AdminEmployeeHandler
	templateHandler *handler.AdminTemplateHandler
	authMiddleware  *middleware.Auth
}

func NewAdminRouter(
	shiftHandler *handler.AdminShiftHandler,
	tenantHandler *handler.AdminTenantHandler,
	storeHandler *handler.AdminStoreHandler,
	employeeHandler *handler.AdminEmployeeHandler,
	templateHandler *handler.AdminTemplateHandler,
	authMiddleware *middleware.Auth,
) *AdminRouter {
	return &AdminRouter{
		shiftHandler:    shiftHandler,
		tenantHandler:   tenantHandler,
		storeHandler:    storeHandler,
		employeeHandler: employeeHandler,
		templateHandler: templateHandler,
		authMiddleware:  authMiddleware,
	}
}

func (ar *AdminRouter) RegisterRoutes(r *gin.Engine) {
	admin := r.Group("/admin")
	admin.Use(ar.authMiddleware.Handler())

	shifts := admin.Group("/shifts")
	{
		shifts.GET("", ar.shiftHandler.List)
		shifts.GET("/stale", ar.shiftHandler.ListStale)
	}

	tenants := admin.Group("/tenants")
	{
		tenants.GET("", ar.tenantHandler.List)
		tenants.GET("/:tenantID", ar.tenantHandler.Get)
		tenants.POST("", ar.tenantHandler.Create)
		tenants.PUT("/:tenantID", ar.tenantHandler.Update)
		tenants.DELETE("/:tenantID", ar.tenantHandler.Delete)
	}

	stores := admin.Group("/stores")
	{
		stores.GET("", ar.storeHandler.List)
		stores.GET("/:storeID", ar.storeHandler.Get)
		stores.POST("", ar.storeHandler.Create)
		stores.PUT("/:storeID", ar.storeHandler.Update)
		stores.DELETE("/:storeID", ar.storeHandler.Delete)
	}

	employees := admin.Group("/employees")
	{
		employees.GET("", ar.employeeHandler.List)
		employees.GET("/:employeeID", ar.employeeHandler.Get)
		employees.POST("", ar.employeeHandler.Create)
		employees.PUT("/:employeeID", ar.employeeHandler.Update)
		employees.DELETE("/:employeeID", ar.employeeHandler.Delete)
	}

	templates := admin.Group("/task-templates")
	{
		templates.GET("", ar.templateHandler.List)
		templates.POST("", ar.templateHandler.Create)
		templates.DELETE("/:templateID", ar.templateHandler.Delete)
	}
}
