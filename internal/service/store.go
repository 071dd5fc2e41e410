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

type StoreService struct {
	trace     *telemetry.Trace
	storeRepo *repository.StoreRepository
}

func NewStoreService(trace *telemetry.Trace, storeRepo *repository.StoreRepository) *StoreService {
	return &StoreService{trace: trace, storeRepo: storeRepo}
}

// 新增門市（管理專用）
func (s *StoreService) CreateStore(ctx context.Context, in *dto.CreateStoreDto) (*dto.StoreResponseDto, error) {
	ctx, _, end := s.trace.WithSpan(ctx)
	defer end(nil)

	tenantID, err := primitive.ObjectIDFromHex(in.TenantID)
	if err != nil {
		return nil, cErr.BadRequestParams("tenantId is not a valid ObjectID")
	}
	status := in.Status
	if status == "" {
		status = "active"
	}
	store := &model.Store{
		ID:       primitive.NewObjectID(),
		TenantID: tenantID,
		Code:     in.Code,
		Name:     in.Name,
		Region:   in.Region,
		Timezone: in.Timezone,
		Status:   status,
	}
	created, err := s.storeRepo.Create(ctx, store)
	if err != nil {
		return nil, cErr.DatabaseError("database CreateStore error")
	}
	return modelToStoreResponseDto(created), nil
}

// 依 id 查詢
func (s *StoreService) GetStoreByID(ctx context.Context, id primitive.ObjectID) (*dto.StoreResponseDto, error) {
	ctx, _, end := s.trace.WithSpan(ctx)
	defer end(nil)

	store, err := s.storeRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, cErr.NotFound("store not found")
		}
		return nil, cErr.DatabaseError("database GetStoreByID error")
	}
	return modelToStoreResponseDto(store), nil
}

// 管理後台列舉門市
func (s *StoreService) ListStores(ctx context.Context, filter bson.M) ([]*dto.StoreResponseDto, error) {
	ctx, _, end := s.trace.WithSpan(ctx)
	defer end(nil)

	stores, err := s.storeRepo.List(ctx, filter)
	if err != nil {
		return nil, cErr.DatabaseError("database ListStores error")
	}
	resp := make([]*dto.StoreResponseDto, len(stores))
	for i, store := range stores {
		resp[i] = modelToStoreResponseDto(store)
	}
	return resp, nil
}

// 更新門市
func (s *StoreService) UpdateStoreByID(ctx context.Context, id primitive.ObjectID, in *dto.UpdateStoreDto) error {
	ctx, _, end := s.trace.WithSpan(ctx)
	defer end(nil)

	update := bson.M{}
	if in.Code != nil {
		update["code"] = *in.Code
	}
	if in.Name != nil {
		update["name"] = *in.Name
	}
	if in.Region != nil {
		update["region"] = *in.Region
	}
	if in.Timezone != nil {
		update["timezone"] = *in.Timezone
	}
	if in.Status != nil {
		update["status"] = *in.Status
	}

	_, err := s.storeRepo.UpdateByID(ctx, id, bson.M{"$set": update})
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return cErr.NotFound(fmt.Sprintf("store with id %s not found", id.Hex()))
		}
		return cErr.DatabaseError("database UpdateStoreByID error")
	}
	return nil
}

// 刪除門市
func (s *StoreService) DeleteStoreByID(ctx context.Context, id primitive.ObjectID) error {
	ctx, _, end := s.trace.WithSpan(ctx)
	defer end(nil)

	if err := s.storeRepo.DeleteByID(ctx, id); err != nil {
		return cErr.DatabaseError("database DeleteStoreByID error")
	}
	return nil
}

func modelToStoreResponseDto(store *model.Store) *dto.StoreResponseDto {
	return &dto.StoreResponseDto{
		ID:        store.ID.Hex(),
		TenantID:  store.TenantID.Hex(),
		Code:      store.Code,
		Name:      store.Name,
		Region:    store.Region,
		Timezone:  store.Timezone,
		Status:    store.Status,
		CreatedAt: store.CreatedAt,
		UpdatedAt: store.UpdatedAt,
	}
}
