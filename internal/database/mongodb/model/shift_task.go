package model

import (
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// ShiftTask 班次檢查表項目。開班時由門市模板長出，開班期間不新增不刪除。
type ShiftTask struct {
	ID         primitive.ObjectID `json:"id" bson:"_id"`
	ShiftID    primitive.ObjectID `json:"shiftId" bson:"shiftId"`
	EmployeeID primitive.ObjectID `json:"employeeId" bson:"employeeId"`
	Title      string             `json:"title" bson:"title"`
	Details    string             `json:"details,omitempty" bson:"details,omitempty"`
	SortOrder  int                `json:"sortOrder" bson:"sortOrder"`
	// Completed 與 CompletedAt 必須同生共滅：false ⇔ completedAt == null
	Completed   bool       `json:"completed" bson:"completed"`
	CompletedAt *time.Time `json:"completedAt,omitempty" bson:"completedAt,omitempty"`
	CreatedAt   time.Time  `json:"createdAt" bson:"createdAt"`
	UpdatedAt   time.Time  `json:"updatedAt" bson:"updatedAt"`
}

var ShiftTaskIndexes = []mongo.IndexModel{
	{
		Keys:    bson.D{{Key: "shiftId", Value: 1}},
		Options: options.Index().SetName("idx_shiftId"),
	},
}

// TaskTemplate 門市層級的檢查表模板；開班時複製成 ShiftTask
type TaskTemplate struct {
	ID        primitive.ObjectID `json:"id" bson:"_id"`
	StoreID   primitive.ObjectID `json:"storeId" bson:"storeId"`
	Title     string             `json:"title" bson:"title"`
	Details   string             `json:"details,omitempty" bson:"details,omitempty"`
	SortOrder int                `json:"sortOrder" bson:"sortOrder"`
	CreatedAt time.Time          `json:"createdAt" bson:"createdAt"`
	UpdatedAt time.Time          `json:"updatedAt" bson:"updatedAt"`
}

var TaskTemplateIndexes = []mongo.IndexModel{
	{
		Keys:    bson.D{{Key: "storeId", Value: 1}, {Key: "sortOrder", Value: 1}},
		Options: options.Index().SetName("idx_storeId_sortOrder"),
	},
}
