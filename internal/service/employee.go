package service

import (
	"context"
	"errors"
	"fmt"

	"shiftdesk/internal/database/mongodb/model"
	"shiftdesk/internal/database/mongodb/repository"
	"shiftdesk/internal/dto"
	cErr "shiftdesk/internal/pkg/error"
	"shiftdesk/internal/telemetry"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

type EmployeeService struct {
	trace        *telemetry.Trace
	employeeRepo *repository.EmployeeRepository
}

func NewEmployeeService(trace *telemetry.Trace, employeeRepo *repository.EmployeeRepository) *EmployeeService {
	return &EmployeeService{trace: trace, employeeRepo: employeeRepo}
}

// 新增員工（管理專用）
func (s *EmployeeService) CreateEmployee(ctx context.Context, in *dto.CreateEmployeeDto) (*dto.EmployeeResponseDto, error) {
	ctx, _, end := s.trace.WithSpan(ctx)
	defer end(nil)

	tenantID, err := primitive.ObjectIDFromHex(in.TenantID)
	if err != nil {
		return nil, cErr.BadRequestParams("tenantId is not a valid ObjectID")
	}
	var primaryStoreID *primitive.ObjectID
	if in.PrimaryStoreID != "" {
		parsed, parseErr := primitive.ObjectIDFromHex(in.PrimaryStoreID)
		if parseErr != nil {
			return nil, cErr.BadRequestParams("primaryStoreId is not a valid ObjectID")
		}
		primaryStoreID = &parsed
	}
	status := in.Status
	if status == "" {
		status = "active"
	}
	employee := &model.Employee{
		ID:             primitive.NewObjectID(),
		TenantID:       tenantID,
		ExternalID:     in.ExternalID,
		DisplayName:    in.DisplayName,
		JobTitle:       in.JobTitle,
		PrimaryStoreID: primaryStoreID,
		Status:         status,
	}
	created, err := s.employeeRepo.Create(ctx, employee)
	if err != nil {
		return nil, cErr.DatabaseError("database CreateEmployee error")
	}
	return modelToEmployeeResponseDto(created), nil
}

// 依 id 查詢
func (s *EmployeeService) GetEmployeeByID(ctx context.Context, id primitive.ObjectID) (*dto.EmployeeResponseDto, error) {
	ctx, _, end := s.trace.WithSpan(ctx)
	defer end(nil)

	employee, err := s.employeeRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, cErr.NotFound("employee not found")
		}
		return nil, cErr.DatabaseError("database GetEmployeeByID error")
	}
	return modelToEmployeeResponseDto(employee), nil
}

// 管理後台列舉員工
func (s *EmployeeService) ListEmployees(ctx context.Context, filter bson.M) ([]*dto.EmployeeResponseDto, error) {
	ctx, _, end := s.trace.WithSpan(ctx)
	defer end(nil)

	employees, err := s.employeeRepo.List(ctx, filter)
	if err != nil {
		return nil, cErr.DatabaseError("database ListEmployees error")
	}
	resp := make([]*dto.EmployeeResponseDto, len(employees))
	for i, employee := range employees {
		resp[i] = modelToEmployeeResponseDto(employee)
	}
	return resp, nil
}

// 更新員工
func (s *EmployeeService) UpdateEmployeeByID(ctx context.Context, id primitive.ObjectID, in *dto.UpdateEmployeeDto) error {
	ctx, _, end := s.trace.WithSpan(ctx)
	defer end(nil)

	update := bson.M{}
	if in.ExternalID != nil {
		update["externalID"] = *in.ExternalID
	}
	if in.DisplayName != nil {
		update["displayName"] = *in.DisplayName
	}
	if in.JobTitle != nil {
		update["jobTitle"] = *in.JobTitle
	}
	if in.PrimaryStoreID != nil {
		primaryStoreID, err := primitive.ObjectIDFromHex(*in.PrimaryStoreID)
		if err != nil {
			return cErr.BadRequestParams("primaryStoreId is not a valid ObjectID")
		}
		update["primaryStoreId"] = primaryStoreID
	}
	if in.Status != nil {
		update["status"] = *in.Status
	}

	_, err := s.employeeRepo.UpdateByID(ctx, id, bson.M{"$set": update})
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return cErr.NotFound(fmt.Sprintf("employee with id %s not found", id.Hex()))
		}
		return cErr.DatabaseError("database UpdateEmployeeByID error")
	}
	return nil
}

// 刪除員工
func (s *EmployeeService) DeleteEmployeeByID(ctx context.Context, id primitive.ObjectID) error {
	ctx, _, end := s.trace.WithSpan(ctx)
	defer end(nil)

	if err := s.employeeRepo.DeleteByID(ctx, id); err != nil {
		return cErr.DatabaseError("database DeleteEmployeeByID error")
	}
	return nil
}

func modelToEmployeeResponseDto(employee *model.Employee) *dto.EmployeeResponseDto {
	resp := &dto.EmployeeResponseDto{
		ID:          employee.ID.Hex(),
		TenantID:    employee.TenantID.Hex(),
		ExternalID:  employee.ExternalID,
		DisplayName: employee.DisplayName,
		JobTitle:    employee.JobTitle,
		Status:      employee.Status,
		CreatedAt:   employee.CreatedAt,
		UpdatedAt:   employee.UpdatedAt,
	}
	if employee.PrimaryStoreID != nil && !employee.PrimaryStoreID.IsZero() {
		resp.PrimaryStoreID = employee.PrimaryStoreID.Hex()
	}
	return resp
}
