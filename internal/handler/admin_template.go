package handler

import (
	cErr "shiftdesk/internal/pkg/error"
	"shiftdesk/internal/dto"
	"shiftdesk/internal/pkg/response"
	"shiftdesk/internal/service"
	"shiftdesk/internal/telemetry"
	"shiftdesk/utils/validate"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

type AdminTemplateHandler struct {
	trace           *telemetry.Trace
	templateService *service.TemplateService
}

func NewAdminTemplateHandler(trace *telemetry.Trace, templateService *service.TemplateService) *AdminTemplateHandler {
	return &AdminTemplateHandler{trace: trace, templateService: templateService}
}

// List 門市清單模板
// @Summary 取得門市的檢查表模板
// @Tags Admin-Template
// @Security BearerAuth
// @Produce json
// @Param storeId query string true "Store ID"
// @Success 200 {array} dto.TaskTemplateResponseDto
// @Failure 400 {object} map[string]string
// @Router /admin/task-templates [get]
func (h *AdminTemplateHandler) List(c *gin.Context) {
	ctx, _, end := h.trace.WithSpan(c)
	defer end(nil)

	storeID, err := primitive.ObjectIDFromHex(c.Query("storeId"))
	if err != nil {
		end(err)
		response.AbortWithError(c, cErr.BadRequestParams("storeId is not a valid ObjectID"))
		return
	}

	templates, err := h.templateService.ListTemplates(ctx, storeID)
	if err != nil {
		response.AbortWithError(c, err)
		return
	}
	response.Success(c, templates)
}

// Create 新增模板
// @Summary 新增檢查表模板
// @Tags Admin-Template
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param body body dto.CreateTaskTemplateDto true "模板內容"
// @Success 201 {object} dto.TaskTemplateResponseDto
// @Failure 400 {object} map[string]string
// @Router /admin/task-templates [post]
func (h *AdminTemplateHandler) Create(c *gin.Context) {
	ctx, _, end := h.trace.WithSpan(c)
	defer end(nil)
	var req dto.CreateTaskTemplateDto
	if cause, respErr := validate.BindAndValidate(c, &req); cause != nil {
		end(cause)
		response.AbortWithError(c, respErr)
		return
	}

	res, err := h.templateService.CreateTemplate(ctx, &req)
	if err != nil {
		response.AbortWithError(c, err)
		return
	}
	response.Create(c, res)
}

// Delete 刪除模板
// @Summary 刪除檢查表模板
// @Tags Admin-Template
// @Security BearerAuth
// @Produce json
// @Param templateID path string true "Template ID"
// @Success 200 {object} map[string]string
// @Failure 400 {object} map[string]string
// @Router /admin/task-templates/{templateID} [delete]
func (h *AdminTemplateHandler) Delete(c *gin.Context) {
	ctx, _, end := h.trace.WithSpan(c)
	defer end(nil)
	id, cause, respErr := validate.ParseObjectID(c, "templateID")
	if cause != nil {
		end(cause)
		response.AbortWithError(c, respErr)
		return
	}

	if err := h.templateService.DeleteTemplateByID(ctx, id); err != nil {
		response.AbortWithError(c, err)
		return
	}
	response.Success(c, gin.H{"id": id.Hex()})
}
