package core

import "go.mongodb.org/mongo-driver/bson"

// ─── Shift ─────────────────────────────────────────────────────────────────────

// ShiftStatus 班次狀態（active 與 endedAt 必須一致，見 model.Shift.IsActive）
type ShiftStatus string

const (
	ShiftStatusActive ShiftStatus = "active" // 上班中：endedAt 必為 null
	ShiftStatusClosed ShiftStatus = "closed" // 已收班：終態，不可再轉換
)

// TenderType 訂單支付方式
type TenderType string

const (
	TenderCash   TenderType = "cash"
	TenderCard   TenderType = "card"
	TenderOnline TenderType = "online"
)

// ─── Event Journal ─────────────────────────────────────────────────────────────

// ShiftEventType 事件日誌的封閉型別集合；新增型別需同步 validate.IsValidShiftEventType
type ShiftEventType string

const (
	EventShiftStarted    ShiftEventType = "SHIFT_STARTED"
	EventShiftClosed     ShiftEventType = "SHIFT_CLOSED"
	EventProblemReported ShiftEventType = "PROBLEM_REPORTED"
	EventTaskCompleted   ShiftEventType = "CHECKLIST_TASK_COMPLETED"
	EventTaskUncompleted ShiftEventType = "TASK_UNCOMPLETED"
)

// ProblemCategory 現場問題分類
type ProblemCategory string

const (
	ProblemProductOut       ProblemCategory = "product_out"
	ProblemEquipmentFailure ProblemCategory = "equipment_failure"
	ProblemWrongOrder       ProblemCategory = "wrong_order"
	ProblemRudeClient       ProblemCategory = "rude_client"
	ProblemWorkIssue        ProblemCategory = "work_issue"
)

// ProblemCategoryLabel 問題分類的顯示文字（前台清單用）
func ProblemCategoryLabel(category ProblemCategory) string {
	switch category {
	case ProblemProductOut:
		return "Product out of stock"
	case ProblemEquipmentFailure:
		return "Equipment failure"
	case ProblemWrongOrder:
		return "Wrong order"
	case ProblemRudeClient:
		return "Rude client"
	case ProblemWorkIssue:
		return "Work issue"
	default:
		return string(category)
	}
}

// ProblemSeverity 問題嚴重度
type ProblemSeverity string

const (
	SeverityLow      ProblemSeverity = "low"
	SeverityMedium   ProblemSeverity = "medium"
	SeverityHigh     ProblemSeverity = "high"
	SeverityCritical ProblemSeverity = "critical"
)

// ─── Database Types ────────────────────────────────────────────────────────────

type MongoDatabaseName string
type MongoCollection string
type RedisKey string
type FluentdSubTag string

const (
	MongoDBShiftdesk MongoDatabaseName = "shiftdesk"
)

// MongoDB collections
const (
	MongoCollectionShifts        MongoCollection = "shifts"
	MongoCollectionShiftEvents   MongoCollection = "shift_events"
	MongoCollectionOrders        MongoCollection = "orders"
	MongoCollectionShiftTasks    MongoCollection = "shift_tasks"
	MongoCollectionTaskTemplates MongoCollection = "task_templates"
	MongoCollectionCounters      MongoCollection = "counters"
	MongoCollectionTenants       MongoCollection = "tenants"
	MongoCollectionStores        MongoCollection = "stores"
	MongoCollectionEmployees     MongoCollection = "employees"
)

// ─── Redis Keys ────────────────────────────────────────────────────────────────

const (
	// 班次開/收班互斥鎖的 key 前綴：shift_lock:{employeeID}:{storeID}
	RedisKeyShiftLock  RedisKey = "shift_lock"
	RedisKeyServerName RedisKey = "shiftdesk"
)

// ─── Fluentd sub tags ──────────────────────────────────────────────────────────

const (
	FluentdRequest    FluentdSubTag = "request_log"
	FluentdResponse   FluentdSubTag = "response_log"
	FluentdShiftAudit FluentdSubTag = "shift_audit_log"
)

type ListOptions struct {
	Filter bson.M `json:"filter,omitempty" bson:"filter,omitempty"`
	Page   int64  `json:"page,omitempty" bson:"page,omitempty"`
	Size   int64  `json:"size,omitempty" bson:"size,omitempty"`
}
