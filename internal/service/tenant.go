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

type TenantService struct {
	trace      *telemetry.Trace
	tenantRepo *repository.TenantRepository
}

func NewTenantService(trace *telemetry.Trace, tenantRepo *repository.TenantRepository) *TenantService {
	return &TenantService{trace: trace, tenantRepo: tenantRepo}
}

// 新增租戶（管理專用）
func (s *TenantService) CreateTenant(ctx context.Context, in *dto.CreateTenantDto) (*dto.TenantResponseDto, error) {
	ctx, _, end := s.trace.WithSpan(ctx)
	defer end(nil)

	status := in.Status
	if status == "" {
		status = "active"
	}
	tenant := &model.Tenant{
		ID:     primitive.NewObjectID(),
		Name:   in.Name,
		Status: status,
	}
	created, err := s.tenantRepo.Create(ctx, tenant)
	if err != nil {
		return nil, cErr.DatabaseError("database CreateTenant error")
	}
	return modelToTenantResponseDto(created), nil
}

// 依 id 查詢
func (s *TenantService) GetTenantByID(ctx context.Context, id primitive.ObjectID) (*dto.TenantResponseDto, error) {
	ctx, _, end := s.trace.WithSpan(ctx)
	defer end(nil)

	tenant, err := s.tenantRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, cErr.NotFound("tenant not found")
		}
		return nil, cErr.DatabaseError("database GetTenantByID error")
	}
	return modelToTenantResponseDto(tenant), nil
}

// 管理後台列舉租戶
func (s *TenantService) ListTenants(ctx context.Context, filter bson.M) ([]*dto.TenantResponseDto, error) {
	ctx, _, end := s.trace.WithSpan(ctx)
	defer end(nil)

	tenants, err := s.tenantRepo.List(ctx, filter)
	if err != nil {
		return nil, cErr.DatabaseError("database ListTenants error")
	}
	resp := make([]*dto.TenantResponseDto, len(tenants))
	for i, t := range tenants {
		resp[i] = modelToTenantResponseDto(t)
	}
	return resp, nil
}

// 更新租戶
func (s *TenantService) UpdateTenantByID(ctx context.Context, id primitive.ObjectID, in *dto.UpdateTenantDto) error {
	ctx, _, end := s.trace.WithSpan(ctx)
	defer end(nil)

	update := bson.M{}
	if in.Name != nil {
		update["name"] = *in.Name
	}
	if in.Status != nil {
		update["status"] = *in.Status
	}

	_, err := s.tenantRepo.UpdateByID(ctx, id, bson.M{"$set": update})
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return cErr.NotFound(fmt.Sprintf("tenant with id %s not found", id.Hex()))
		}
		return cErr.DatabaseError("database UpdateTenantByID error")
	}
	return nil
}

// 刪除租戶
func (s *TenantService) DeleteTenantByID(ctx context.Context, id primitive.ObjectID) error {
	ctx, _, end := s.trace.WithSpan(ctx)
	defer end(nil)

	if err := s.tenantRepo.DeleteByID(ctx, id); err != nil {
		return cErr.DatabaseError("database DeleteTenantByID error")
	}
	return nil
}

func modelToTenantResponseDto(t *model.Tenant) *dto.TenantResponseDto {
	return &dto.TenantResponseDto{
		ID:        t.ID.Hex(),
		Name:      t.Name,
		Status:    t.Status,
		CreatedAt: t.CreatedAt,
		UpdatedAt: t.UpdatedAt,
	}
}
