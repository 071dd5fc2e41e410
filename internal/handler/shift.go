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

type ShiftHandler struct {
	trace        *telemetry.Trace
	shiftService *service.ShiftService
}

func NewShiftHandler(trace *telemetry.Trace, shiftService *service.ShiftService) *ShiftHandler {
	return &ShiftHandler{trace: trace, shiftService: shiftService}
}

// Start 開班
// @Summary 開班
// @Description 同一員工同一門市同時最多一筆上班中的班次，重複開班回 409
// @Tags Shift
// @Accept json
// @Produce json
// @Param body body dto.StartShiftDto true "開班資訊"
// @Success 201 {object} dto.ShiftResponseDto
// @Failure 400 {object} map[string]string
// @Failure 409 {object} map[string]string
// @Router /shifts [post]
func (h *ShiftHandler) Start(c *gin.Context) {
	ctx, _, end := h.trace.WithSpan(c)
	defer end(nil)
	var req dto.StartShiftDto
	if cause, respErr := validate.BindAndValidate(c, &req); cause != nil {
		end(cause)
		response.AbortWithError(c, respErr)
		return
	}

	res, err := h.shiftService.StartShift(ctx, &req)
	if err != nil {
		response.AbortWithError(c, err)
		return
	}
	response.Create(c, res)
}

// Close 收班
// @Summary 收班
// @Description 可帶 shiftId，或帶 employeeId(+storeId) 收當前上班中的班次；金額欄位解析失敗以 0 計
// @Tags Shift
// @Accept json
// @Produce json
// @Param body body dto.CloseShiftDto true "收班資訊"
// @Success 200 {object} dto.ShiftResponseDto
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /shifts/close [post]
func (h *ShiftHandler) Close(c *gin.Context) {
	ctx, _, end := h.trace.WithSpan(c)
	defer end(nil)
	var req dto.CloseShiftDto
	if cause, respErr := validate.BindAndValidate(c, &req); cause != nil {
		end(cause)
		response.AbortWithError(c, respErr)
		return
	}

	res, err := h.shiftService.CloseShift(ctx, &req)
	if err != nil {
		response.AbortWithError(c, err)
		return
	}
	response.Success(c, res)
}

// Get 班次詳情
// @Summary 取得班次詳情（含訂單小計與清單進度）
// @Tags Shift
// @Produce json
// @Param shiftID path string true "Shift ID"
// @Success 200 {object} dto.ShiftDetailResponseDto
// @Failure 404 {object} map[string]string
// @Router /shifts/{shiftID} [get]
func (h *ShiftHandler) Get(c *gin.Context) {
	ctx, _, end := h.trace.WithSpan(c)
	defer end(nil)
	id, cause, respErr := validate.ParseObjectID(c, "shiftID")
	if cause != nil {
		end(cause)
		response.AbortWithError(c, respErr)
		return
	}

	res, err := h.shiftService.GetShift(ctx, id)
	if err != nil {
		response.AbortWithError(c, err)
		return
	}
	response.Success(c, res)
}

// Active 員工當前班次
// @Summary 取得員工目前上班中的班次
// @Tags Shift
// @Produce json
// @Param employeeId query string true "Employee ID"
// @Param storeId query string false "Store ID"
// @Success 200 {object} dto.ShiftResponseDto
// @Failure 404 {object} map[string]string
// @Router /shifts/active [get]
func (h *ShiftHandler) Active(c *gin.Context) {
	ctx, _, end := h.trace.WithSpan(c)
	defer end(nil)

	employeeID, err := primitive.ObjectIDFromHex(c.Query("employeeId"))
	if err != nil {
		end(err)
		response.AbortWithError(c, cErr.BadRequestParams("employeeId is not a valid ObjectID"))
		return
	}
	var storeID primitive.ObjectID
	if raw := c.Query("storeId"); raw != "" {
		if storeID, err = primitive.ObjectIDFromHex(raw); err != nil {
			end(err)
			response.AbortWithError(c, cErr.BadRequestParams("storeId is not a valid ObjectID"))
			return
		}
	}

	res, err := h.shiftService.GetActiveShift(ctx, employeeID, storeID)
	if err != nil {
		response.AbortWithError(c, err)
		return
	}
	response.Success(c, res)
}

// CreateOrder 班次收單
// @Summary 對上班中的班次寫入一筆訂單
// @Tags Shift
// @Accept json
// @Produce json
// @Param shiftID path string true "Shift ID"
// @Param body body dto.CreateOrderDto true "訂單"
// @Success 201 {object} dto.OrderResponseDto
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /shifts/{shiftID}/orders [post]
func (h *ShiftHandler) CreateOrder(c *gin.Context) {
	ctx, _, end := h.trace.WithSpan(c)
	defer end(nil)
	id, cause, respErr := validate.ParseObjectID(c, "shiftID")
	if cause != nil {
		end(cause)
		response.AbortWithError(c, respErr)
		return
	}

	var req dto.CreateOrderDto
	if cause, respErr := validate.BindAndValidate(c, &req); cause != nil {
		end(cause)
		response.AbortWithError(c, respErr)
		return
	}

	res, err := h.shiftService.CreateOrder(ctx, id, &req)
	if err != nil {
		response.AbortWithError(c, err)
		return
	}
	response.Create(c, res)
}

// ListOrders 班次訂單明細
// @Summary 列出班次底下的訂單
// @Tags Shift
// @Produce json
// @Param shiftID path string true "Shift ID"
// @Success 200 {object} []dto.OrderResponseDto
// @Failure 404 {object} map[string]string
// @Router /shifts/{shiftID}/orders [get]
func (h *ShiftHandler) ListOrders(c *gin.Context) {
	ctx, _, end := h.trace.WithSpan(c)
	defer end(nil)
	id, cause, respErr := validate.ParseObjectID(c, "shiftID")
	if cause != nil {
		end(cause)
		response.AbortWithError(c, respErr)
		return
	}

	res, err := h.shiftService.ListOrders(ctx, id)
	if err != nil {
		response.AbortWithError(c, err)
		return
	}
	response.Success(c, res)
}
