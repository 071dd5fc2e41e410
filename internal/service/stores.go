package service

import (
	"context"
	"time"

	"shiftdesk/internal/core"
	fluentdModel "shiftdesk/internal/database/fluentd/model"
	"shiftdesk/internal/database/mongodb/model"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// 班次路徑上的儲存層以介面呈現，mongo/redis/fluentd repository 為正式實作。
// 管理端 CRUD 流量低、邏輯薄，直接吃 concrete repository。

type ShiftStore interface {
	FindActive(ctx context.Context, employeeID, storeID primitive.ObjectID) (*model.Shift, error)
	GetByID(ctx context.Context, shiftID primitive.ObjectID) (*model.Shift, error)
	Insert(ctx context.Context, shift *model.Shift) (*model.Shift, error)
	CloseByID(ctx context.Context, shiftID primitive.ObjectID, setFields bson.M) (int64, error)
	NextSeq(ctx context.Context, storeID primitive.ObjectID) (int64, error)
	ListStale(ctx context.Context, olderThan time.Duration) ([]*model.Shift, error)
	List(ctx context.Context, opts core.ListOptions) ([]*model.Shift, error)
}

type OrderStore interface {
	Create(ctx context.Context, order *model.Order) (*model.Order, error)
	ListForShift(ctx context.Context, shiftID primitive.ObjectID) ([]*model.Order, error)
}

type TaskStore interface {
	SeedForShift(ctx context.Context, tasks []*model.ShiftTask) error
	GetForShift(ctx context.Context, shiftID, taskID primitive.ObjectID) (*model.ShiftTask, error)
	ListForShift(ctx context.Context, shiftID primitive.ObjectID) ([]*model.ShiftTask, error)
	SetCompleted(ctx context.Context, taskID primitive.ObjectID, completed bool, completedAt *time.Time) (int64, error)
}

type TemplateStore interface {
	ListForStore(ctx context.Context, storeID primitive.ObjectID) ([]*model.TaskTemplate, error)
}

type EventStore interface {
	Append(ctx context.Context, event *model.ShiftEvent) (*model.ShiftEvent, error)
	ListForShift(ctx context.Context, shiftID primitive.ObjectID) ([]*model.ShiftEvent, error)
}

// ShiftLocker 開班搶鎖（Redis SETNX）；鎖失效時以 DB unique index 為最後防線
type ShiftLocker interface {
	Acquire(ctx context.Context, employeeID, storeID string, ttlSeconds int64) (bool, error)
	Release(ctx context.Context, employeeID, storeID string) error
}

// AuditSink 班次事件外部稽核鏡像（Fluentd），best-effort
type AuditSink interface {
	LogShiftEvent(ctx context.Context, audit fluentdModel.ShiftAuditLog) error
}
