package handler

import (
	"shiftdesk/internal/dto"
	"shiftdesk/internal/pkg/response"
	"shiftdesk/internal/service"
	"shiftdesk/internal/telemetry"
	"shiftdesk/utils/validate"

	"github.com/gin-gonic/gin"
)

type JournalHandler struct {
	trace          *telemetry.Trace
	journalService *service.JournalService
}

func NewJournalHandler(trace *telemetry.Trace, journalService *service.JournalService) *JournalHandler {
	return &JournalHandler{trace: trace, journalService: journalService}
}

// ListEvents 班次事件
// @Summary 依時間序取得班次的事件日誌
// @Tags Journal
// @Produce json
// @Param shiftID path string true "Shift ID"
// @Success 200 {object} dto.ListShiftEventsResponseDto
// @Failure 400 {object} map[string]string
// @Router /shifts/{shiftID}/events [get]
func (h *JournalHandler) ListEvents(c *gin.Context) {
	ctx, _, end := h.trace.WithSpan(c)
	defer end(nil)
	shiftID, cause, respErr := validate.ParseObjectID(c, "shiftID")
	if cause != nil {
		end(cause)
		response.AbortWithError(c, respErr)
		return
	}

	res, err := h.journalService.ListForShift(ctx, shiftID)
	if err != nil {
		response.AbortWithError(c, err)
		return
	}
	response.Success(c, res)
}

// ReportProblem 問題回報
// @Summary 回報現場問題
// @Description 事件日誌寫入失敗時整個回報失敗（503），前台應重試
// @Tags Journal
// @Accept json
// @Produce json
// @Param shiftID path string true "Shift ID"
// @Param body body dto.ReportProblemDto true "問題內容"
// @Success 201 {object} dto.ShiftEventResponseDto
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Failure 503 {object} map[string]string
// @Router /shifts/{shiftID}/problems [post]
func (h *JournalHandler) ReportProblem(c *gin.Context) {
	ctx, _, end := h.trace.WithSpan(c)
	defer end(nil)
	shiftID, cause, respErr := validate.ParseObjectID(c, "shiftID")
	if cause != nil {
		end(cause)
		response.AbortWithError(c, respErr)
		return
	}

	var req dto.ReportProblemDto
	if cause, respErr := validate.BindAndValidate(c, &req); cause != nil {
		end(cause)
		response.AbortWithError(c, respErr)
		return
	}

	res, err := h.journalService.ReportProblem(ctx, shiftID, &req)
	if err != nil {
		response.AbortWithError(c, err)
		return
	}
	response.Create(c, res)
}
