package command

import (
	"context"
	"time"

	"shiftdesk/internal/database/mongodb/model"
	"shiftdesk/internal/database/mongodb/repository"

	"github.com/spf13/cobra"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.uber.org/zap"
)

// 預設檢查表：門市尚未自訂模板時的起手式
var defaultTemplates = []struct {
	Title   string
	Details string
}{
	{"清點收銀機零用金", "與前一班的收班金額核對"},
	{"檢查冷藏設備溫度", "冷藏 0-5°C、冷凍 -18°C 以下"},
	{"確認食材效期", "過期品下架並記錄"},
	{"清潔工作檯面", ""},
	{"確認 POS 機連線", ""},
}

type SeedTemplatesHandler struct {
	logger             *zap.Logger
	templateRepository *repository.TaskTemplateRepository
}

func NewSeedTemplatesHandler(
	logger *zap.Logger,
	templateRepository *repository.TaskTemplateRepository,
) *SeedTemplatesHandler {
	return &SeedTemplatesHandler{
		logger:             logger,
		templateRepository: templateRepository,
	}
}

func (handler *SeedTemplatesHandler) Seed(cmd *cobra.Command, args []string) {
	storeHex, _ := cmd.Flags().GetString("store")
	if storeHex == "" && len(args) > 0 {
		storeHex = args[0]
	}
	storeID, err := primitive.ObjectIDFromHex(storeHex)
	if err != nil {
		cmd.PrintErrf("invalid store id %q: %v\n", storeHex, err)
		return
	}

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	existing, err := handler.templateRepository.ListForStore(ctx, storeID)
	if err != nil {
		cmd.PrintErrf("list templates failed: %v\n", err)
		return
	}
	if len(existing) > 0 {
		cmd.Printf("store %s already has %d templates, skip\n", storeHex, len(existing))
		return
	}

	for i, t := range defaultTemplates {
		created, err := handler.templateRepository.Create(ctx, &model.TaskTemplate{
			StoreID:   storeID,
			Title:     t.Title,
			Details:   t.Details,
			SortOrder: i + 1,
		})
		if err != nil {
			cmd.PrintErrf("create template %q failed: %v\n", t.Title, err)
			return
		}
		handler.logger.Info("[Seed] template created",
			zap.String("templateId", created.ID.Hex()),
			zap.String("title", created.Title),
		)
	}
	cmd.Printf("seeded %d templates for store %s\n", len(defaultTemplates), storeHex)
}
