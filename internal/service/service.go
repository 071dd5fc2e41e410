package service

import (
	fluentdRepo "shiftdesk/internal/database/fluentd/repository"
	mongoRepo "shiftdesk/internal/database/mongodb/repository"
	redisRepo "shiftdesk/internal/database/redis/repository"

	"github.com/google/wire"
)

// 班次路徑的儲存層介面綁到實際 repository；其餘 service 直接吃 concrete repo
var ProviderSet = wire.NewSet(
	NewShiftService,
	NewTaskService,
	NewJournalService,
	NewTenantService,
	NewStoreService,
	NewEmployeeService,
	NewTemplateService,
	NewHealthService,
	wire.Bind(new(ShiftStore), new(*mongoRepo.ShiftRepository)),
	wire.Bind(new(OrderStore), new(*mongoRepo.OrderRepository)),
	wire.Bind(new(TaskStore), new(*mongoRepo.ShiftTaskRepository)),
	wire.Bind(new(TemplateStore), new(*mongoRepo.TaskTemplateRepository)),
	wire.Bind(new(EventStore), new(*mongoRepo.ShiftEventRepository)),
	wire.Bind(new(ShiftLocker), new(*redisRepo.ShiftLockRepository)),
	wire.Bind(new(AuditSink), new(*fluentdRepo.LogRepository)),
)
