package service

import (
	"context"

	"shiftdesk/internal/database/mongodb/model"
	"shiftdesk/internal/database/mongodb/repository"
	"shiftdesk/internal/dto"
	cErr "shiftdesk/internal/pkg/error"
	"shiftdesk/internal/telemetry"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

type TemplateService struct {
	trace        *telemetry.Trace
	templateRepo *repository.TaskTemplateRepository
}

func NewTemplateService(trace *telemetry.Trace, templateRepo *repository.TaskTemplateRepository) *TemplateService {
	return &TemplateService{trace: trace, templateRepo: templateRepo}
}

// 新增門市清單模板（管理專用）
func (s *TemplateService) CreateTemplate(ctx context.Context, in *dto.CreateTaskTemplateDto) (*dto.TaskTemplateResponseDto, error) {
	ctx, _, end := s.trace.WithSpan(ctx)
	defer end(nil)

	storeID, err := primitive.ObjectIDFromHex(in.StoreID)
	if err != nil {
		return nil, cErr.BadRequestParams("storeId is not a valid ObjectID")
	}
	template := &model.TaskTemplate{
		ID:        primitive.NewObjectID(),
		StoreID:   storeID,
		Title:     in.Title,
		Details:   in.Details,
		SortOrder: in.SortOrder,
	}
	created, err := s.templateRepo.Create(ctx, template)
	if err != nil {
		return nil, cErr.DatabaseError("database CreateTaskTemplate error")
	}
	return modelToTemplateResponseDto(created), nil
}

// 門市的清單模板
func (s *TemplateService) ListTemplates(ctx context.Context, storeID primitive.ObjectID) ([]*dto.TaskTemplateResponseDto, error) {
	ctx, _, end := s.trace.WithSpan(ctx)
	defer end(nil)

	templates, err := s.templateRepo.ListForStore(ctx, storeID)
	if err != nil {
		return nil, cErr.DatabaseError("database ListTaskTemplates error")
	}
	resp := make([]*dto.TaskTemplateResponseDto, len(templates))
	for i, template := range templates {
		resp[i] = modelToTemplateResponseDto(template)
	}
	return resp, nil
}

// 刪除模板
func (s *TemplateService) DeleteTemplateByID(ctx context.Context, id primitive.ObjectID) error {
	ctx, _, end := s.trace.WithSpan(ctx)
	defer end(nil)

	if err := s.templateRepo.DeleteByID(ctx, id); err != nil {
		return cErr.DatabaseError("database DeleteTaskTemplate error")
	}
	return nil
}

func modelToTemplateResponseDto(template *model.TaskTemplate) *dto.TaskTemplateResponseDto {
	return &dto.TaskTemplateResponseDto{
		ID:        template.ID.Hex(),
		StoreID:   template.StoreID.Hex(),
		Title:     template.Title,
		Details:   template.Details,
		SortOrder: template.SortOrder,
		CreatedAt: template.CreatedAt,
		UpdatedAt: template.UpdatedAt,
	}
}
