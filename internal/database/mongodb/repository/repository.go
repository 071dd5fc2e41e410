package repository

import (
	"github.com/google/wire"
	"go.mongodb.org/mongo-driver/bson"
)

// 統一管理所有 MongoDB repository
type MongoDBRepository struct {
	shiftRepo        *ShiftRepository
	shiftEventRepo   *ShiftEventRepository
	orderRepo        *OrderRepository
	shiftTaskRepo    *ShiftTaskRepository
	taskTemplateRepo *TaskTemplateRepository
	tenantRepo       *TenantRepository
	storeRepo        *StoreRepository
	employeeRepo     *EmployeeRepository
}

// 建立 MongoDB repository 物件
func NewMongoDBRepository(
	shiftRepo *ShiftRepository,
	shiftEventRepo *ShiftEventRepository,
	orderRepo *OrderRepository,
	shiftTaskRepo *ShiftTaskRepository,
	taskTemplateRepo *TaskTemplateRepository,
	tenantRepo *TenantRepository,
	storeRepo *StoreRepository,
	employeeRepo *EmployeeRepository,
) *MongoDBRepository {
	return &MongoDBRepository{
		shiftRepo:        shiftRepo,
		shiftEventRepo:   shiftEventRepo,
		orderRepo:        orderRepo,
		shiftTaskRepo:    shiftTaskRepo,
		taskTemplateRepo: taskTemplateRepo,
		tenantRepo:       tenantRepo,
		storeRepo:        storeRepo,
		employeeRepo:     employeeRepo,
	}
}

// Wire 依賴提供
var ProviderSet = wire.NewSet(
	NewShiftRepository,
	NewShiftEventRepository,
	NewOrderRepository,
	NewShiftTaskRepository,
	NewTaskTemplateRepository,
	NewTenantRepository,
	NewStoreRepository,
	NewEmployeeRepository,
	NewMongoDBRepository)

func withUpdatedAt(update bson.M) bson.M {
	// 確保 $currentDate 存在
	currentDate, ok := update["$currentDate"].(bson.M)
	if !ok || currentDate == nil {
		currentDate = bson.M{}
	}
	currentDate["updatedAt"] = true
	update["$currentDate"] = currentDate
	return update
}
