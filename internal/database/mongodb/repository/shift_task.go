package repository

import (
	"context"
	"time"

	"shiftdesk/internal/core"
	client "shiftdesk/internal/database/client"
	"shiftdesk/internal/database/mongodb/model"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type ShiftTaskRepository struct {
	collection *mongo.Collection
}

func NewShiftTaskRepository(mongoClient *client.MongoClient) *ShiftTaskRepository {
	repository := &ShiftTaskRepository{
		collection: mongoClient.Client().Database(string(core.MongoDBShiftdesk)).Collection(string(core.MongoCollectionShiftTasks)),
	}
	_ = repository.ensureIndexes(context.Background())
	return repository
}

func (repository *ShiftTaskRepository) ensureIndexes(contextValue context.Context) error {
	_, _ = repository.collection.Indexes().CreateMany(contextValue, model.ShiftTaskIndexes)
	return nil
}

// SeedForShift 開班時一次長出該班次的檢查表；tasks 為空直接略過
func (repository *ShiftTaskRepository) SeedForShift(
	contextValue context.Context,
	tasks []*model.ShiftTask,
) (returnedError error) {

	if len(tasks) == 0 {
		return nil
	}
	nowUTC := time.Now().UTC()
	docs := make([]interface{}, 0, len(tasks))
	for _, task := range tasks {
		if task.ID.IsZero() {
			task.ID = primitive.NewObjectID()
		}
		task.CreatedAt = nowUTC
		task.UpdatedAt = nowUTC
		docs = append(docs, task)
	}
	_, returnedError = repository.collection.InsertMany(contextValue, docs)
	return returnedError
}

// GetForShift 取某班次底下的單一項目；shiftId 一起進 filter，避免跨班次誤操作
func (repository *ShiftTaskRepository) GetForShift(
	contextValue context.Context,
	shiftIdentifier primitive.ObjectID,
	taskIdentifier primitive.ObjectID,
) (_ *model.ShiftTask, returnedError error) {

	var task model.ShiftTask
	filter := bson.M{"_id": taskIdentifier, "shiftId": shiftIdentifier}
	if returnedError = repository.collection.FindOne(contextValue, filter).Decode(&task); returnedError != nil {
		return nil, returnedError
	}
	return &task, nil
}

// ListForShift 取班次的全部檢查表項目
func (repository *ShiftTaskRepository) ListForShift(
	contextValue context.Context,
	shiftIdentifier primitive.ObjectID,
) (_ []*model.ShiftTask, returnedError error) {

	findOptions := options.Find().SetSort(bson.D{{Key: "sortOrder", Value: 1}, {Key: "createdAt", Value: 1}})

	cursor, findError := repository.collection.Find(contextValue, bson.M{"shiftId": shiftIdentifier}, findOptions)
	if findError != nil {
		return nil, findError
	}
	defer cursor.Close(contextValue)

	var tasks []*model.ShiftTask
	if returnedError = cursor.All(contextValue, &tasks); returnedError != nil {
		return nil, returnedError
	}
	return tasks, nil
}

// SetCompleted 勾/取消勾一個項目。completed 與 completedAt 在同一筆 update 內
// 一起設定或一起清空，不會出現只改一半的紀錄。
func (repository *ShiftTaskRepository) SetCompleted(
	contextValue context.Context,
	taskIdentifier primitive.ObjectID,
	completed bool,
	completedAt *time.Time,
) (_ int64, returnedError error) {

	set := bson.M{"completed": completed}
	update := bson.M{"$set": set}
	if completed {
		set["completedAt"] = completedAt
	} else {
		update["$unset"] = bson.M{"completedAt": ""}
	}

	result, updateError := repository.collection.UpdateOne(contextValue, bson.M{"_id": taskIdentifier}, withUpdatedAt(update))
	if updateError != nil {
		return 0, updateError
	}
	return result.MatchedCount, nil
}
