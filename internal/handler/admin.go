package handler

import (
	"strconv"
	"time"

	"shiftdesk/internal/core"
	cErr "shiftdesk/internal/pkg/error"
	"shiftdesk/internal/pkg/response"
	"shiftdesk/internal/service"
	"shiftdesk/internal/telemetry"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

type AdminShiftHandler struct {
	trace        *telemetry.Trace
	shiftService *service.ShiftService
}

func NewAdminShiftHandler(trace *telemetry.Trace, shiftService *service.ShiftService) *AdminShiftHandler {
	return &AdminShiftHandler{trace: trace, shiftService: shiftService}
}

// List 班次列表
// @Summary 取得班次列表
// @Tags Admin-Shift
// @Security BearerAuth
// @Produce json
// @Param page query int false "頁碼"
// @Param size query int false "每頁筆數"
// @Param storeId query string false "門市"
// @Param employeeId query string false "員工"
// @Param status query string false "狀態 active/closed"
// @Success 200 {array} dto.ShiftResponseDto
// @Failure 500 {object} map[string]string
// @Router /admin/shifts [get]
func (h *AdminShiftHandler) List(c *gin.Context) {
	ctx, span, end := h.trace.WithSpan(c)
	defer end(nil)

	page := getInt64Query(c, "page", 0)
	size := getInt64Query(c, "size", 20)
	status := c.Query("status")

	filter := map[string]any{}
	if status != "" {
		filter["status"] = status
	}
	if raw := c.Query("storeId"); raw != "" {
		storeID, err := primitive.ObjectIDFromHex(raw)
		if err != nil {
			end(err)
			response.AbortWithError(c, cErr.BadRequestParams("storeId is not a valid ObjectID"))
			return
		}
		filter["storeId"] = storeID
	}
	if raw := c.Query("employeeId"); raw != "" {
		employeeID, err := primitive.ObjectIDFromHex(raw)
		if err != nil {
			end(err)
			response.AbortWithError(c, cErr.BadRequestParams("employeeId is not a valid ObjectID"))
			return
		}
		filter["employeeId"] = employeeID
	}

	shifts, err := h.shiftService.ListShifts(ctx, filter, page, size)
	h.trace.ApplyTraceAttributes(span, core.TraceAdminListMeta{
		Page:        page,
		Size:        size,
		Status:      status,
		Filter:      filter,
		ResultCount: len(shifts),
	})
	if err != nil {
		end(err)
		response.AbortWithError(c, err)
		return
	}
	response.Success(c, shifts)
}

// ListStale 逾時未收班
// @Summary 取得開班過久仍未收的班次
// @Tags Admin-Shift
// @Security BearerAuth
// @Produce json
// @Param hours query int false "門檻（小時），預設 24"
// @Success 200 {array} dto.ShiftResponseDto
// @Failure 500 {object} map[string]string
// @Router /admin/shifts/stale [get]
func (h *AdminShiftHandler) ListStale(c *gin.Context) {
	ctx, _, end := h.trace.WithSpan(c)
	defer end(nil)

	hours := getInt64Query(c, "hours", 24)
	shifts, err := h.shiftService.ListStaleShifts(ctx, time.Duration(hours)*time.Hour)
	if err != nil {
		end(err)
		response.AbortWithError(c, err)
		return
	}
	response.Success(c, shifts)
}

func getInt64Query(c *gin.Context, key string, defaultVal int64) int64 {
	if v := c.Query(key); v != "" {
		if n, err := strconv.ParseInt(v, 10, 64); err == nil {
			return n
		}
	}
	return defaultVal
}
