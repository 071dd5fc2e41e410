package model

import (
	"time"

	"shiftdesk/internal/core"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// Order POS 訂單。由收銀端寫入，班次結算端只讀。
type Order struct {
	ID         primitive.ObjectID `json:"id" bson:"_id"`
	TenantID   primitive.ObjectID `json:"tenantId,omitempty" bson:"tenantId,omitempty"`
	StoreID    primitive.ObjectID `json:"storeId,omitempty" bson:"storeId,omitempty"`
	ShiftID    primitive.ObjectID `json:"shiftId" bson:"shiftId"`
	EmployeeID primitive.ObjectID `json:"employeeId" bson:"employeeId"`
	Tender     core.TenderType    `json:"tender" bson:"tender"` // cash / card / online
	Amount     float64            `json:"amount" bson:"amount"`
	GuestCount int                `json:"guestCount" bson:"guestCount"`
	ExternalID string             `json:"externalId,omitempty" bson:"externalId,omitempty"` // POS 單號
	CreatedAt  time.Time          `json:"createdAt" bson:"createdAt"`
}

var OrderIndexes = []mongo.IndexModel{
	{
		Keys:    bson.D{{Key: "shiftId", Value: 1}, {Key: "createdAt", Value: 1}},
		Options: options.Index().SetName("idx_shiftId_createdAt"),
	},
	{
		Keys:    bson.D{{Key: "storeId", Value: 1}, {Key: "createdAt", Value: -1}},
		Options: options.Index().SetName("idx_storeId_createdAt_desc"),
	},
}
