package model

import (
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type Employee struct {
	ID             primitive.ObjectID  `json:"id" bson:"_id"`
	TenantID       primitive.ObjectID  `json:"tenantId" bson:"tenantId"`
	ExternalID     string              `json:"externalID,omitempty" bson:"externalID,omitempty"` // 外部身分服務的使用者 ID
	DisplayName    string              `json:"displayName" bson:"displayName"`
	Status         string              `json:"status" bson:"status"`
	PrimaryStoreID *primitive.ObjectID `json:"primaryStoreId,omitempty" bson:"primaryStoreId,omitempty"`
	JobTitle       string              `json:"jobTitle,omitempty" bson:"jobTitle,omitempty"`
	CreatedAt      time.Time           `json:"createdAt" bson:"createdAt"`
	UpdatedAt      time.Time           `json:"updatedAt" bson:"updatedAt"`
}

var EmployeeIndexes = []mongo.IndexModel{
	{
		Keys:    bson.D{{Key: "tenantId", Value: 1}, {Key: "externalID", Value: 1}},
		Options: options.Index().SetName("uniq_tenantId_externalID").SetUnique(true),
	},
	{
		Keys:    bson.D{{Key: "tenantId", Value: 1}, {Key: "primaryStoreId", Value: 1}},
		Options: options.Index().SetName("idx_tenantId_primaryStoreId"),
	},
	{
		Keys:    bson.D{{Key: "tenantId", Value: 1}, {Key: "status", Value: 1}},
		Options: options.Index().SetName("idx_tenantId_status"),
	},
}
