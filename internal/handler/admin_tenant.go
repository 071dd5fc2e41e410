package handler

import (
	"shiftdesk/internal/dto"
	"shiftdesk/internal/pkg/response"
	"shiftdesk/internal/service"
	"shiftdesk/internal/telemetry"
	"shiftdesk/utils/validate"

	"github.com/gin-gonic/gin"
)

type AdminTenantHandler struct {
	trace         *telemetry.Trace
	tenantService *service.TenantService
}

func NewAdminTenantHandler(trace *telemetry.Trace, tenantService *service.TenantService) *AdminTenantHandler {
	return &AdminTenantHandler{trace: trace, tenantService: tenantService}
}

// List 租戶列表
// @Summary 取得租戶列表
// @Tags Admin-Tenant
// @Security BearerAuth
// @Produce json
// @Param status query string false "狀態"
// @Success 200 {array} dto.TenantResponseDto
// @Failure 500 {object} map[string]string
// @Router /admin/tenants [get]
func (h *AdminTenantHandler) List(c *gin.Context) {
	ctx, _, end := h.trace.WithSpan(c)
	defer end(nil)

	filter := map[string]any{}
	if status := c.Query("status"); status != "" {
		filter["status"] = status
	}

	tenants, err := h.tenantService.ListTenants(ctx, filter)
	if err != nil {
		response.AbortWithError(c, err)
		return
	}
	response.Success(c, tenants)
}

// Get 取得租戶
// @Summary 取得單一租戶
// @Tags Admin-Tenant
// @Security BearerAuth
// @Produce json
// @Param tenantID path string true "Tenant ID"
// @Success 200 {object} dto.TenantResponseDto
// @Failure 404 {object} map[string]string
// @Router /admin/tenants/{tenantID} [get]
func (h *AdminTenantHandler) Get(c *gin.Context) {
	ctx, _, end := h.trace.WithSpan(c)
	defer end(nil)
	id, cause, respErr := validate.ParseObjectID(c, "tenantID")
	if cause != nil {
		end(cause)
		response.AbortWithError(c, respErr)
		return
	}

	tenant, err := h.tenantService.GetTenantByID(ctx, id)
	if err != nil {
		response.AbortWithError(c, err)
		return
	}
	response.Success(c, tenant)
}

// Create 新增租戶
// @Summary 新增租戶
// @Tags Admin-Tenant
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param body body dto.CreateTenantDto true "租戶資訊"
// @Success 201 {object} dto.TenantResponseDto
// @Failure 400 {object} map[string]string
// @Router /admin/tenants [post]
func (h *AdminTenantHandler) Create(c *gin.Context) {
	ctx, _, end := h.trace.WithSpan(c)
	defer end(nil)
	var req dto.CreateTenantDto
	if cause, respErr := validate.BindAndValidate(c, &req); cause != nil {
		end(cause)
		response.AbortWithError(c, respErr)
		return
	}

	res, err := h.tenantService.CreateTenant(ctx, &req)
	if err != nil {
		response.AbortWithError(c, err)
		return
	}
	response.Create(c, res)
}

// Update 更新租戶
// @Summary 更新租戶
// @Tags Admin-Tenant
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param tenantID path string true "Tenant ID"
// @Param body body dto.UpdateTenantDto true "更新內容"
// @Success 200 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /admin/tenants/{tenantID} [put]
func (h *AdminTenantHandler) Update(c *gin.Context) {
	ctx, _, end := h.trace.WithSpan(c)
	defer end(nil)
	id, cause, respErr := validate.ParseObjectID(c, "tenantID")
	if cause != nil {
		end(cause)
		response.AbortWithError(c, respErr)
		return
	}

	var req dto.UpdateTenantDto
	if cause, respErr := validate.BindAndValidate(c, &req); cause != nil {
		end(cause)
		response.AbortWithError(c, respErr)
		return
	}

	if err := h.tenantService.UpdateTenantByID(ctx, id, &req); err != nil {
		response.AbortWithError(c, err)
		return
	}
	response.Success(c, gin.H{"id": id.Hex()})
}

// Delete 刪除租戶
// @Summary 刪除租戶
// @Tags Admin-Tenant
// @Security BearerAuth
// @Produce json
// @Param tenantID path string true "Tenant ID"
// @Success 200 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /admin/tenants/{tenantID} [delete]
func (h *AdminTenantHandler) Delete(c *gin.Context) {
	ctx, _, end := h.trace.WithSpan(c)
	defer end(nil)
	id, cause, respErr := validate.ParseObjectID(c, "tenantID")
	if cause != nil {
		end(cause)
		response.AbortWithError(c, respErr)
		return
	}

	if err := h.tenantService.DeleteTenantByID(ctx, id); err != nil {
		response.AbortWithError(c, err)
		return
	}
	response.Success(c, gin.H{"id": id.Hex()})
}
