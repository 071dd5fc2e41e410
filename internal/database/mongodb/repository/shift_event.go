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

// ShiftEventRepository 事件日誌。只有 Append 與讀取，沒有任何 update/delete 方法。
type ShiftEventRepository struct {
	collection *mongo.Collection
}

func NewShiftEventRepository(mongoClient *client.MongoClient) *ShiftEventRepository {
	repository := &ShiftEventRepository{
		collection: mongoClient.Client().Database(string(core.MongoDBShiftdesk)).Collection(string(core.MongoCollectionShiftEvents)),
	}
	_ = repository.ensureIndexes(context.Background())
	return repository
}

func (repository *ShiftEventRepository) ensureIndexes(contextValue context.Context) error {
	_, _ = repository.collection.Indexes().CreateMany(contextValue, model.ShiftEventIndexes)
	return nil
}

// Append 追加一筆事件；單筆 insert 本身即原子
func (repository *ShiftEventRepository) Append(
	contextValue context.Context,
	event *model.ShiftEvent,
) (_ *model.ShiftEvent, returnedError error) {

	if event.ID.IsZero() {
		event.ID = primitive.NewObjectID()
	}
	if event.CreatedAt.IsZero() {
		event.CreatedAt = time.Now().UTC()
	}

	insertResult, insertError := repository.collection.InsertOne(contextValue, event)
	if insertError != nil {
		return nil, insertError
	}
	objectID, ok := insertResult.InsertedID.(primitive.ObjectID)
	if !ok {
		return nil, fmt.Errorf("unexpected InsertedID type: %T", insertResult.InsertedID)
	}
	event.ID = objectID
	return event, nil
}

// ListForShift 依建立時間遞增回傳某班次的全部事件
func (repository *ShiftEventRepository) ListForShift(
	contextValue context.Context,
	shiftIdentifier primitive.ObjectID,
) (_ []*model.ShiftEvent, returnedError error) {

	findOptions := options.Find().SetSort(bson.M{"createdAt": 1})

	cursor, findError := repository.collection.Find(contextValue, bson.M{"shiftId": shiftIdentifier}, findOptions)
	if findError != nil {
		return nil, findError
	}
	defer cursor.Close(contextValue)

	var events []*model.ShiftEvent
	if returnedError = cursor.All(contextValue, &events); returnedError != nil {
		return nil, returnedError
	}
	return events, nil
}
