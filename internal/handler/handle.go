package handler

import (
	"github.com/google/wire"
)

// ProviderSet Provider对象集合
var ProviderSet = wire.NewSet(
	NewShiftHandler,
	NewTaskHandler,
	NewJournalHandler,
	NewAdminShiftHandler,
	NewAdminTenantHandler,
	NewAdminStoreHandler,
	NewAdminEmployeeHandler,
	NewAdminTemplateHandler,
	NewHealthHandler,
)
