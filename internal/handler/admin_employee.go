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

type AdminEmployeeHandler struct {
	trace           *telemetry.Trace
	employeeService *service.EmployeeService
}

func NewAdminEmployeeHandler(trace *telemetry.Trace, employeeService *service.EmployeeService) *AdminEmployeeHandler {
	return &AdminEmployeeHandler{trace: trace, employeeService: employeeService}
}

// List 員工列表
// @Summary 取得員工列表
// @Tags Admin-Employee
// @Security BearerAuth
// @Produce json
// @Param tenantId query string false "租戶"
// @Param status query string false "狀態"
// @Success 200 {array} dto.EmployeeResponseDto
// @Failure 500 {object} map[string]string
// @Router /admin/employees [get]
func (h *AdminEmployeeHandler) List(c *gin.Context) {
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

	employees, err := h.employeeService.ListEmployees(ctx, filter)
	if err != nil {
		response.AbortWithError(c, err)
		return
	}
	response.Success(c, employees)
}

// Get 取得員工
// @Summary 取得單一員工
// @Tags Admin-Employee
// @Security BearerAuth
// @Produce json
// @Param employeeID path string true "Employee ID"
// @Success 200 {object} dto.EmployeeResponseDto
// @Failure 404 {object} map[string]string
// @Router /admin/employees/{employeeID} [get]
func (h *AdminEmployeeHandler) Get(c *gin.Context) {
	ctx, _, end := h.trace.WithSpan(c)
	defer end(nil)
	id, cause, respErr := validate.ParseObjectID(c, "employeeID")
	if cause != nil {
		end(cause)
		response.AbortWithError(c, respErr)
		return
	}

	employee, err := h.employeeService.GetEmployeeByID(ctx, id)
	if err != nil {
		response.AbortWithError(c, err)
		return
	}
	response.Success(c, employee)
}

// Create 新增員工
// @Summary 新增員工
// @Tags Admin-Employee
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param body body dto.CreateEmployeeDto true "員工資訊"
// @Success 201 {object} dto.EmployeeResponseDto
// @Failure 400 {object} map[string]string
// @Router /admin/employees [post]
func (h *AdminEmployeeHandler) Create(c *gin.Context) {
	ctx, _, end := h.trace.WithSpan(c)
	defer end(nil)
	var req dto.CreateEmployeeDto
	if cause, respErr := validate.BindAndValidate(c, &req); cause != nil {
		end(cause)
		response.AbortWithError(c, respErr)
		return
	}

	res, err := h.employeeService.CreateEmployee(ctx, &req)
	if err != nil {
		response.AbortWithError(c, err)
		return
	}
	response.Create(c, res)
}

// Update 更新員工
// @Summary 更新員工
// @Tags Admin-Employee
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param employeeID path string true "Employee ID"
// @Param body body dto.UpdateEmployeeDto true "更新內容"
// @Success 200 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /admin/employees/{employeeID} [put]
func (h *AdminEmployeeHandler) Update(c *gin.Context) {
	ctx, _, end := h.trace.WithSpan(c)
	defer end(nil)
	id, cause, respErr := validate.ParseObjectID(c, "employeeID")
	if cause != nil {
		end(cause)
		response.AbortWithError(c, respErr)
		return
	}

	var req dto.UpdateEmployeeDto
	if cause, respErr := validate.BindAndValidate(c, &req); cause != nil {
		end(cause)
		response.AbortWithError(c, respErr)
		return
	}

	if err := h.employeeService.UpdateEmployeeByID(ctx, id, &req); err != nil {
		response.AbortWithError(c, err)
		return
	}
	response.Success(c, gin.H{"id": id.Hex()})
}

// Delete 刪除員工
// @Summary 刪除員工
// @Tags Admin-Employee
// @Security BearerAuth
// @Produce json
// @Param employeeID path string true "Employee ID"
// @Success 200 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /admin/employees/{employeeID} [delete]
func (h *AdminEmployeeHandler) Delete(c *gin.Context) {
	ctx, _, end := h.trace.WithSpan(c)
	defer end(nil)
	id, cause, respErr := validate.ParseObjectID(c, "employeeID")
	if cause != nil {
		end(cause)
		response.AbortWithError(c, respErr)
		return
	}

	if err := h.employeeService.DeleteEmployeeByID(ctx, id); err != nil {
		response.AbortWithError(c, err)
		return
	}
	response.Success(c, gin.H{"id": id.Hex()})
}
