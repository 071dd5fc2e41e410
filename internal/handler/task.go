package handler

import (
	"shiftdesk/internal/dto"
	"shiftdesk/internal/pkg/response"
	"shiftdesk/internal/service"
	"shiftdesk/internal/telemetry"
	"shiftdesk/utils/validate"

	"github.com/gin-gonic/gin"
)

type TaskHandler struct {
	trace       *telemetry.Trace
	taskService *service.TaskService
}

func NewTaskHandler(trace *telemetry.Trace, taskService *service.TaskService) *TaskHandler {
	return &TaskHandler{trace: trace, taskService: taskService}
}

// List 班次檢查表
// @Summary 取得班次的檢查表與完成度
// @Tags Task
// @Produce json
// @Param shiftID path string true "Shift ID"
// @Success 200 {object} dto.ListTasksResponseDto
// @Failure 400 {object} map[string]string
// @Router /shifts/{shiftID}/tasks [get]
func (h *TaskHandler) List(c *gin.Context) {
	ctx, _, end := h.trace.WithSpan(c)
	defer end(nil)
	shiftID, cause, respErr := validate.ParseObjectID(c, "shiftID")
	if cause != nil {
		end(cause)
		response.AbortWithError(c, respErr)
		return
	}

	res, err := h.taskService.List(ctx, shiftID)
	if err != nil {
		response.AbortWithError(c, err)
		return
	}
	response.Success(c, res)
}

// Toggle 勾選 / 取消勾選
// @Summary 勾選或取消勾選檢查表項目（冪等）
// @Tags Task
// @Accept json
// @Produce json
// @Param shiftID path string true "Shift ID"
// @Param taskID path string true "Task ID"
// @Param body body dto.ToggleTaskDto true "目標狀態"
// @Success 200 {object} dto.TaskResponseDto
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /shifts/{shiftID}/tasks/{taskID} [put]
func (h *TaskHandler) Toggle(c *gin.Context) {
	ctx, _, end := h.trace.WithSpan(c)
	defer end(nil)
	shiftID, cause, respErr := validate.ParseObjectID(c, "shiftID")
	if cause != nil {
		end(cause)
		response.AbortWithError(c, respErr)
		return
	}
	taskID, cause, respErr := validate.ParseObjectID(c, "taskID")
	if cause != nil {
		end(cause)
		response.AbortWithError(c, respErr)
		return
	}

	var req dto.ToggleTaskDto
	if cause, respErr := validate.BindAndValidate(c, &req); cause != nil {
		end(cause)
		response.AbortWithError(c, respErr)
		return
	}

	res, err := h.taskService.Toggle(ctx, shiftID, taskID, *req.Completed)
	if err != nil {
		response.AbortWithError(c, err)
		return
	}
	response.Success(c, res)
}
