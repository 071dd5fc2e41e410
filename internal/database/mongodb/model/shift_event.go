package model

import (
	"time"

	"shiftdesk/internal/core"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// ShiftEvent 事件日誌的一筆不可變紀錄。只會 insert，永遠不 update / delete。
type ShiftEvent struct {
	ID         primitive.ObjectID  `json:"id" bson:"_id"`
	TenantID   primitive.ObjectID  `json:"tenantId,omitempty" bson:"tenantId,omitempty"`
	StoreID    primitive.ObjectID  `json:"storeId,omitempty" bson:"storeId,omitempty"`
	ShiftID    primitive.ObjectID  `json:"shiftId" bson:"shiftId"`
	EmployeeID primitive.ObjectID  `json:"employeeId" bson:"employeeId"`
	Type       core.ShiftEventType `json:"type" bson:"type"`
	Payload    bson.M              `json:"payload,omitempty" bson:"payload,omitempty"` // 依 Type 決定形狀，見下方 payload structs
	CreatedAt  time.Time           `json:"createdAt" bson:"createdAt"`
}

var ShiftEventIndexes = []mongo.IndexModel{
	{
		Keys:    bson.D{{Key: "shiftId", Value: 1}, {Key: "createdAt", Value: 1}},
		Options: options.Index().SetName("idx_shiftId_createdAt"),
	},
	{
		Keys:    bson.D{{Key: "tenantId", Value: 1}, {Key: "type", Value: 1}, {Key: "createdAt", Value: -1}},
		Options: options.Index().SetName("idx_tenantId_type_createdAt_desc"),
	},
}

// ─── Typed payloads（寫入前經 validate.PayloadToMap 轉 map，key 維持 snake_case）───

type ShiftStartedPayload struct {
	StartedAt time.Time `json:"started_at"`
}

type ShiftClosedPayload struct {
	EndedAt      time.Time `json:"ended_at"`
	TotalRevenue float64   `json:"total_revenue"`
	CheckCount   int       `json:"check_count"`
}

type ProblemReportedPayload struct {
	ProblemID     string               `json:"problem_id"`
	Category      core.ProblemCategory `json:"category"`
	CategoryLabel string               `json:"category_label"`
	Severity      core.ProblemSeverity `json:"severity"`
	Description   string               `json:"description"`
	ReportedAt    time.Time            `json:"reported_at"`
	IngredientID  string               `json:"ingredient_id,omitempty"`
	ProductID     string               `json:"product_id,omitempty"`
}

type TaskCompletedPayload struct {
	TaskID      string    `json:"task_id"`
	TaskName    string    `json:"task_name"`
	CompletedAt time.Time `json:"completed_at"`
}

type TaskUncompletedPayload struct {
	TaskID        string    `json:"task_id"`
	TaskName      string    `json:"task_name"`
	UncompletedAt time.Time `json:"uncompleted_at"`
}
