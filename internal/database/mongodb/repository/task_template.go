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

type TaskTemplateRepository struct {
	collection *mongo.Collection
}

func NewTaskTemplateRepository(mongoClient *client.MongoClient) *TaskTemplateRepository {
	repository := &TaskTemplateRepository{
		collection: mongoClient.Client().Database(string(core.MongoDBShiftdesk)).Collection(string(core.MongoCollectionTaskTemplates)),
	}
	_ = repository.ensureIndexes(context.Background())
	return repository
}

func (repository *TaskTemplateRepository) ensureIndexes(contextValue context.Context) error {
	_, _ = repository.collection.Indexes().CreateMany(contextValue, model.TaskTemplateIndexes)
	return nil
}

func (repository *TaskTemplateRepository) Create(
	contextValue context.Context,
	template *model.TaskTemplate,
) (_ *model.TaskTemplate, returnedError error) {

	nowUTC := time.Now().UTC()
	if template.ID.IsZero() {
		template.ID = primitive.NewObjectID()
	}
	template.CreatedAt = nowUTC
	template.UpdatedAt = nowUTC

	insertResult, insertError := repository.collection.InsertOne(contextValue, template)
	if insertError != nil {
		return nil, insertError
	}
	objectID, ok := insertResult.InsertedID.(primitive.ObjectID)
	if !ok {
		return nil, fmt.Errorf("unexpected InsertedID type: %T", insertResult.InsertedID)
	}
	template.ID = objectID
	return template, nil
}

// ListForStore 依 sortOrder 取門市模板；開班時複製成 ShiftTask
func (repository *TaskTemplateRepository) ListForStore(
	contextValue context.Context,
	storeIdentifier primitive.ObjectID,
) (_ []*model.TaskTemplate, returnedError error) {

	findOptions := options.Find().SetSort(bson.M{"sortOrder": 1})

	cursor, findError := repository.collection.Find(contextValue, bson.M{"storeId": storeIdentifier}, findOptions)
	if findError != nil {
		return nil, findError
	}
	defer cursor.Close(contextValue)

	var templates []*model.TaskTemplate
	if returnedError = cursor.All(contextValue, &templates); returnedError != nil {
		return nil, returnedError
	}
	return templates, nil
}

func (repository *TaskTemplateRepository) DeleteByID(
	contextValue context.Context,
	templateIdentifier primitive.ObjectID,
) (returnedError error) {
	_, returnedError = repository.collection.DeleteOne(contextValue, bson.M{"_id": templateIdentifier})
	return returnedError
}
