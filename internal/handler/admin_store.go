package handler

import (
	"shiftdesk/internal/dto"
	cErr "shiftdesk/internal/pkg/error"
	"shiftdesk/internal/pkg/response"
	"shiftdesk/internal/service"
	"shiftdesk/internal/telemetry"
	"shiftdesk/utils/validate"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

type AdminStoreHandler struct {
	trace        *telemetry.Trace
	storeService *service.StoreService
}

func NewAdminStoreHandler(trace *telemetry.Trace, storeService *service.StoreService) *AdminStoreHandler {
	return &AdminStoreHandler{trace: trace, storeService: storeService}
}

// List 門市列表
// @Summary 取得門市列表
// @Tags Admin-Store
// @Security BearerAuth
// @Produce json
// @Param tenantId query string false "租戶"
// @Param status query string false "狀態"
// @Success 200 {array} dto.StoreResponseDto
// @Failure 500 {object} map[string]string
// @Router /admin/stores [get]
func (h *AdminStoreHandler) List(c *gin.Context) {
	ctx, _, end := h.trace.WithSpan(c)
	defer end(nil)

	filter := map[string]any{}
	if status := c.Query("status"); status != "" {
		filter["status"] = status
	}
	if raw := c.Query("tenantId"); raw != "" {
		tenantID, err := primitive.ObjectIDFromHex(raw)
		if err != nil {
			end(err)
			response.AbortWithError(c, cErr.BadRequestParams("tenantId is not a valid ObjectID"))
			return
		}
		filter["tenantId"] = tenantID
	}

	stores, err := h.storeService.ListStores(ctx, filter)
	if err != nil {
		response.AbortWithError(c, err)
		return
	}
	response.Success(c, stores)
}

// Get 取得門市
// @Summary 取得單一門市
// @Tags Admin-Store
// @Security BearerAuth
// @Produce json
// @Param storeID path string true "Store ID"
// @Success 200 {object} dto.StoreResponseDto
// @Failure 404 {object} map[string]string
// @Router /admin/stores/{storeID} [get]
func (h *AdminStoreHandler) Get(c *gin.Context) {
	ctx, _, end := h.trace.WithSpan(c)
	defer end(nil)
	id, cause, respErr := validate.ParseObjectID(c, "storeID")
	if cause != nil {
		end(cause)
		response.AbortWithError(c, respErr)
		return
	}

	store, err := h.storeService.GetStoreByID(ctx, id)
	if err != nil {
		response.AbortWithError(c, err)
		return
	}
	response.Success(c, store)
}

// Create 新增門市
// @Summary 新增門市
// @Tags Admin-Store
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param body body dto.CreateStoreDto true "門市資訊"
// @Success 201 {object} dto.StoreResponseDto
// @Failure 400 {object} map[string]string
// @Router /admin/stores [post]
func (h *AdminStoreHandler) Create(c *gin.Context) {
	ctx, _, end := h.trace.WithSpan(c)
	defer end(nil)
	var req dto.CreateStoreDto
	if cause, respErr := validate.BindAndValidate(c, &req); cause != nil {
		end(cause)
		response.AbortWithError(c, respErr)
		return
	}

	res, err := h.storeService.CreateStore(ctx, &req)
	if err != nil {
		response.AbortWithError(c, err)
		return
	}
	response.Create(c, res)
}

// Update 更新門市
// @Summary 更新門市
// @Tags Admin-Store
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param storeID path string true "Store ID"
// @Param body body dto.UpdateStoreDto true "更新內容"
// @Success 200 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /admin/stores/{storeID} [put]
func (h *AdminStoreHandler) Update(c *gin.Context) {
	ctx, _, end := h.trace.WithSpan(c)
	defer end(nil)
	id, cause, respErr := validate.ParseObjectID(c, "storeID")
	if cause != nil {
		end(cause)
		response.AbortWithError(c, respErr)
		return
	}

	var req dto.UpdateStoreDto
	if cause, respErr := validate.BindAndValidate(c, &req); cause != nil {
		end(cause)
		response.AbortWithError(c, respErr)
		return
	}

	if err := h.storeService.UpdateStoreByID(ctx, id, &req); err != nil {
		response.AbortWithError(c, err)
		return
	}
	response.Success(c, gin.H{"id": id.Hex()})
}

// Delete 刪除門市
// @Summary 刪除門市
// @Tags Admin-Store
// @Security BearerAuth
// @Produce json
// @Param storeID path string true "Store ID"
// @Success 200 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /admin/stores/{storeID} [delete]
func (h *AdminStoreHandler) Delete(c *gin.Context) {
	ctx, _, end := h.trace.WithSpan(c)
	defer end(nil)
	id, cause, respErr := validate.ParseObjectID(c, "storeID")
	if cause != nil {
		end(cause)
		response.AbortWithError(c, respErr)
		return
	}

	if err := h.storeService.DeleteStoreByID(ctx, id); err != nil {
		response.AbortWithError(c, err)
		return
	}
	response.Success(c, gin.H{"id": id.Hex()})
}
