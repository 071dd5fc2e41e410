package model

import (
	"time"

	"shiftdesk/internal/core"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// Shift 一位員工在一間門市的一次工作班次
type Shift struct {
	ID           primitive.ObjectID `json:"id" bson:"_id"`
	TenantID     primitive.ObjectID `json:"tenantId,omitempty" bson:"tenantId,omitempty"`   // 所屬公司；開班時未帶則為零值
	StoreID      primitive.ObjectID `json:"storeId" bson:"storeId"`                         // 門市
	EmployeeID   primitive.ObjectID `json:"employeeId" bson:"employeeId"`                   // 員工
	EmployeeName string             `json:"employeeName,omitempty" bson:"employeeName,omitempty"`
	Seq          int64              `json:"seq" bson:"seq"`                                 // 門市內流水號（給人看的班次編號）
	Status       core.ShiftStatus   `json:"status" bson:"status"`                           // active / closed
	StartedAt    time.Time          `json:"startedAt" bson:"startedAt"`
	EndedAt      *time.Time         `json:"endedAt,omitempty" bson:"endedAt,omitempty"`     // null ⇔ status == active
	CashRevenue  float64            `json:"cashRevenue" bson:"cashRevenue"`
	CardRevenue  float64            `json:"cardRevenue" bson:"cardRevenue"`
	OnlineRev    float64            `json:"onlineRevenue" bson:"onlineRevenue"`
	CheckCount   int                `json:"checkCount" bson:"checkCount"`
	GuestCount   int                `json:"guestCount" bson:"guestCount"`
	Notes        string             `json:"notes,omitempty" bson:"notes,omitempty"`
	// 收班表單的額外問答（固定欄位以外的 key/value）
	ClosingAnswers map[string]string `json:"closingAnswers,omitempty" bson:"closingAnswers,omitempty"`
	CreatedAt      time.Time         `json:"createdAt" bson:"createdAt"`
	UpdatedAt      time.Time         `json:"updatedAt" bson:"updatedAt"`
}

// IsActive 判斷班次是否上班中。status 與 endedAt 必須同時成立；
// 兩者不一致時一律視為「非 active」，寧可讓員工重新開班也不可出現兩筆 active。
func (s *Shift) IsActive() bool {
	return s.Status == core.ShiftStatusActive && s.EndedAt == nil
}

var ShiftIndexes = []mongo.IndexModel{
	{
		// 同一 (employeeId, storeId) 同時最多一筆 active：
		// partial unique index 讓第二筆併發 insert 直接吃 duplicate key
		Keys: bson.D{{Key: "employeeId", Value: 1}, {Key: "storeId", Value: 1}},
		Options: options.Index().
			SetName("uniq_active_shift").
			SetUnique(true).
			SetPartialFilterExpression(bson.D{{Key: "status", Value: string(core.ShiftStatusActive)}}),
	},
	{
		Keys:    bson.D{{Key: "storeId", Value: 1}, {Key: "startedAt", Value: -1}},
		Options: options.Index().SetName("idx_storeId_startedAt_desc"),
	},
	{
		Keys:    bson.D{{Key: "tenantId", Value: 1}, {Key: "status", Value: 1}},
		Options: options.Index().SetName("idx_tenantId_status"),
	},
	{
		Keys:    bson.D{{Key: "status", Value: 1}, {Key: "startedAt", Value: 1}},
		Options: options.Index().SetName("idx_status_startedAt"),
	},
}
