package repository

import (
	"context"
	"errors"
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

// ErrActiveShiftExists 同一 (employeeId, storeId) 已有 active 班次。
// 由 uniq_active_shift partial unique index 在 insert 時擋下，這裡轉成領域語意。
var ErrActiveShiftExists = errors.New("active shift already exists for employee/store")

type ShiftRepository struct {
	collection *mongo.Collection
	counters   *mongo.Collection
}

func NewShiftRepository(mongoClient *client.MongoClient) *ShiftRepository {
	db := mongoClient.Client().Database(string(core.MongoDBShiftdesk))
	repository := &ShiftRepository{
		collection: db.Collection(string(core.MongoCollectionShifts)),
		counters:   db.Collection(string(core.MongoCollectionCounters)),
	}
	_ = repository.ensureIndexes(context.Background())
	return repository
}

func (repository *ShiftRepository) ensureIndexes(contextValue context.Context) error {
	_, _ = repository.collection.Indexes().CreateMany(contextValue, model.ShiftIndexes)
	return nil
}

// activeFilter 是 I1 的 fail-safe 讀法：status 與 endedAt 必須同時符合，
// 任何只有其中一邊像 active 的殘缺紀錄都不會被當成上班中。
func activeFilter(extra bson.M) bson.M {
	filter := bson.M{
		"status":  core.ShiftStatusActive,
		"endedAt": nil,
	}
	for k, v := range extra {
		filter[k] = v
	}
	return filter
}

// FindActive 查 (employeeId, storeId) 當前上班中的班次；storeId 可為零值表示不限門市。
// 查無回傳 mongo.ErrNoDocuments。
func (repository *ShiftRepository) FindActive(
	contextValue context.Context,
	employeeIdentifier primitive.ObjectID,
	storeIdentifier primitive.ObjectID,
) (_ *model.Shift, returnedError error) {

	extra := bson.M{"employeeId": employeeIdentifier}
	if !storeIdentifier.IsZero() {
		extra["storeId"] = storeIdentifier
	}

	var shift model.Shift
	if returnedError = repository.collection.FindOne(contextValue, activeFilter(extra)).Decode(&shift); returnedError != nil {
		return nil, returnedError
	}
	return &shift, nil
}

// GetByID 單文件讀取
func (repository *ShiftRepository) GetByID(
	contextValue context.Context,
	shiftIdentifier primitive.ObjectID,
) (_ *model.Shift, returnedError error) {

	var shift model.Shift
	if returnedError = repository.collection.FindOne(contextValue, bson.M{"_id": shiftIdentifier}).Decode(&shift); returnedError != nil {
		return nil, returnedError
	}
	return &shift, nil
}

// Insert 新增班次。同 pair 已有 active 時回傳 ErrActiveShiftExists（由 unique index 保證原子性）。
func (repository *ShiftRepository) Insert(
	contextValue context.Context,
	shift *model.Shift,
) (_ *model.Shift, returnedError error) {

	nowUTC := time.Now().UTC()
	if shift.ID.IsZero() {
		shift.ID = primitive.NewObjectID()
	}
	shift.CreatedAt = nowUTC
	shift.UpdatedAt = nowUTC

	insertResult, insertError := repository.collection.InsertOne(contextValue, shift)
	if insertError != nil {
		if mongo.IsDuplicateKeyError(insertError) {
			return nil, ErrActiveShiftExists
		}
		return nil, insertError
	}
	objectID, ok := insertResult.InsertedID.(primitive.ObjectID)
	if !ok {
		return nil, fmt.Errorf("unexpected InsertedID type: %T", insertResult.InsertedID)
	}
	shift.ID = objectID
	return shift, nil
}

// CloseByID 收班：status 與 endedAt 在同一筆 update 內一起落地，I1 不會出現中間態。
// filter 帶 active 條件，已收班或殘缺的紀錄 matched=0。
func (repository *ShiftRepository) CloseByID(
	contextValue context.Context,
	shiftIdentifier primitive.ObjectID,
	setFields bson.M,
) (_ int64, returnedError error) {

	setFields["status"] = core.ShiftStatusClosed
	update := bson.M{"$set": setFields}

	result, updateError := repository.collection.UpdateOne(
		contextValue,
		activeFilter(bson.M{"_id": shiftIdentifier}),
		withUpdatedAt(update),
	)
	if updateError != nil {
		return 0, updateError
	}
	return result.MatchedCount, nil
}

// NextSeq 取門市內下一個班次流水號（counters collection 的 $inc upsert，原子遞增）
func (repository *ShiftRepository) NextSeq(
	contextValue context.Context,
	storeIdentifier primitive.ObjectID,
) (_ int64, returnedError error) {

	filter := bson.M{"_id": "shift_seq_" + storeIdentifier.Hex()}
	update := bson.M{"$inc": bson.M{"seq": int64(1)}}
	opts := options.FindOneAndUpdate().
		SetUpsert(true).
		SetReturnDocument(options.After)

	var doc struct {
		Seq int64 `bson:"seq"`
	}
	if returnedError = repository.counters.FindOneAndUpdate(contextValue, filter, update, opts).Decode(&doc); returnedError != nil {
		return 0, returnedError
	}
	return doc.Seq, nil
}

// ListStale 找出開班超過 olderThan 仍未收的班次（cron 異常監看用）
func (repository *ShiftRepository) ListStale(
	contextValue context.Context,
	olderThan time.Duration,
) (_ []*model.Shift, returnedError error) {

	cutoff := time.Now().UTC().Add(-olderThan)
	filter := activeFilter(bson.M{"startedAt": bson.M{"$lt": cutoff}})

	cursor, findError := repository.collection.Find(contextValue, filter)
	if findError != nil {
		return nil, findError
	}
	defer cursor.Close(contextValue)

	var shifts []*model.Shift
	if returnedError = cursor.All(contextValue, &shifts); returnedError != nil {
		return nil, returnedError
	}
	return shifts, nil
}

// List 分頁查詢（page 為 0 起算）
func (repository *ShiftRepository) List(
	contextValue context.Context,
	listOptions core.ListOptions,
) (_ []*model.Shift, returnedError error) {

	findOptions := options.Find().
		SetSkip(listOptions.Page * listOptions.Size).
		SetLimit(listOptions.Size).
		SetSort(bson.M{"startedAt": -1})

	filter := listOptions.Filter
	if filter == nil {
		filter = bson.M{}
	}

	cursor, findError := repository.collection.Find(contextValue, filter, findOptions)
	if findError != nil {
		return nil, findError
	}
	defer cursor.Close(contextValue)

	var shifts []*model.Shift
	if returnedError = cursor.All(contextValue, &shifts); returnedError != nil {
		return nil, returnedError
	}
	return shifts, nil
}
