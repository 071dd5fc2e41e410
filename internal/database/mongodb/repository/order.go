package repository

import (
	"context"
	"fmt"
	"time"

	"shiftdesk/internal/core"
	client "shiftdesk/internal/database/client"
	"shiftdesk/internal/database/mongodb/model"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type OrderRepository struct {
	collection *mongo.Collection
}

func NewOrderRepository(mongoClient *client.MongoClient) *OrderRepository {
	repository := &OrderRepository{
		collection: mongoClient.Client().Database(string(core.MongoDBShiftdesk)).Collection(string(core.MongoCollectionOrders)),
	}
	_ = repository.ensureIndexes(context.Background())
	return repository
}

func (repository *OrderRepository) ensureIndexes(contextValue context.Context) error {
	_, _ = repository.collection.Indexes().CreateMany(contextValue, model.OrderIndexes)
	return nil
}

// Create 收銀端寫入；結算面永遠只讀
func (repository *OrderRepository) Create(
	contextValue context.Context,
	order *model.Order,
) (_ *model.Order, returnedError error) {

	if order.ID.IsZero() {
		order.ID = primitive.NewObjectID()
	}
	if order.CreatedAt.IsZero() {
		order.CreatedAt = time.Now().UTC()
	}

	insertResult, insertError := repository.collection.InsertOne(contextValue, order)
	if insertError != nil {
		return nil, insertError
	}
	objectID, ok := insertResult.InsertedID.(primitive.ObjectID)
	if !ok {
		return nil, fmt.Errorf("unexpected InsertedID type: %T", insertResult.InsertedID)
	}
	order.ID = objectID
	return order, nil
}

// ListForShift 取班次的全部訂單（結算 fold 的輸入）
func (repository *OrderRepository) ListForShift(
	contextValue context.Context,
	shiftIdentifier primitive.ObjectID,
) (_ []*model.Order, returnedError error) {

	findOptions := options.Find().SetSort(bson.M{"createdAt": 1})

	cursor, findError := repository.collection.Find(contextValue, bson.M{"shiftId": shiftIdentifier}, findOptions)
	if findError != nil {
		return nil, findError
	}
	defer cursor.Close(contextValue)

	var orders []*model.Order
	if returnedError = cursor.All(contextValue, &orders); returnedError != nil {
		return nil, returnedError
	}
	return orders, nil
}
