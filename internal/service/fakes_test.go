package service

import (
	"context"
	"errors"
	"sync"
	"time"

	"shiftdesk/internal/core"
	fluentdModel "shiftdesk/internal/database/fluentd/model"
	"shiftdesk/internal/database/mongodb/model"
	"shiftdesk/internal/database/mongodb/repository"
	"shiftdesk/internal/telemetry"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.uber.org/zap"
)

// 記憶體版儲存層。行為對齊 mongo repository：
// 查無回 mongo.ErrNoDocuments，active 撞鍵回 repository.ErrActiveShiftExists。

type fakeShiftStore struct {
	mu        sync.Mutex
	shifts    map[primitive.ObjectID]*model.Shift
	seq       map[primitive.ObjectID]int64
	insertErr error
}

func newFakeShiftStore() *fakeShiftStore {
	return &fakeShiftStore{
		shifts: make(map[primitive.ObjectID]*model.Shift),
		seq:    make(map[primitive.ObjectID]int64),
	}
}

func (f *fakeShiftStore) FindActive(_ context.Context, employeeID, storeID primitive.ObjectID) (*model.Shift, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	for _, s := range f.shifts {
		if s.EmployeeID != employeeID {
			continue
		}
		if !storeID.IsZero() && s.StoreID != storeID {
			continue
		}
		if s.Status == core.ShiftStatusActive && s.EndedAt == nil {
			copied := *s
			return &copied, nil
		}
	}
	return nil, mongo.ErrNoDocuments
}

func (f *fakeShiftStore) GetByID(_ context.Context, shiftID primitive.ObjectID) (*model.Shift, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	s, ok := f.shifts[shiftID]
	if !ok {
		return nil, mongo.ErrNoDocuments
	}
	copied := *s
	return &copied, nil
}

func (f *fakeShiftStore) Insert(_ context.Context, shift *model.Shift) (*model.Shift, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.insertErr != nil {
		return nil, f.insertErr
	}
	for _, s := range f.shifts {
		if s.EmployeeID == shift.EmployeeID && s.StoreID == shift.StoreID && s.Status == core.ShiftStatusActive {
			return nil, repository.ErrActiveShiftExists
		}
	}
	if shift.ID.IsZero() {
		shift.ID = primitive.NewObjectID()
	}
	now := time.Now().UTC()
	shift.CreatedAt = now
	shift.UpdatedAt = now
	copied := *shift
	f.shifts[shift.ID] = &copied
	return shift, nil
}

func (f *fakeShiftStore) CloseByID(_ context.Context, shiftID primitive.ObjectID, setFields bson.M) (int64, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	s, ok := f.shifts[shiftID]
	if !ok || s.Status != core.ShiftStatusActive || s.EndedAt != nil {
		return 0, nil
	}
	s.Status = core.ShiftStatusClosed
	if v, ok := setFields["endedAt"].(time.Time); ok {
		s.EndedAt = &v
	}
	if v, ok := setFields["cashRevenue"].(float64); ok {
		s.CashRevenue = v
	}
	if v, ok := setFields["cardRevenue"].(float64); ok {
		s.CardRevenue = v
	}
	if v, ok := setFields["onlineRevenue"].(float64); ok {
		s.OnlineRev = v
	}
	if v, ok := setFields["checkCount"].(int); ok {
		s.CheckCount = v
	}
	if v, ok := setFields["guestCount"].(int); ok {
		s.GuestCount = v
	}
	if v, ok := setFields["notes"].(string); ok {
		s.Notes = v
	}
	if v, ok := setFields["closingAnswers"].(map[string]string); ok {
		s.ClosingAnswers = v
	}
	s.UpdatedAt = time.Now().UTC()
	return 1, nil
}

func (f *fakeShiftStore) NextSeq(_ context.Context, storeID primitive.ObjectID) (int64, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.seq[storeID]++
	return f.seq[storeID], nil
}

func (f *fakeShiftStore) ListStale(_ context.Context, olderThan time.Duration) ([]*model.Shift, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	cutoff := time.Now().UTC().Add(-olderThan)
	var stale []*model.Shift
	for _, s := range f.shifts {
		if s.Status == core.ShiftStatusActive && s.EndedAt == nil && s.StartedAt.Before(cutoff) {
			copied := *s
			stale = append(stale, &copied)
		}
	}
	return stale, nil
}

func (f *fakeShiftStore) List(_ context.Context, _ core.ListOptions) ([]*model.Shift, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	var all []*model.Shift
	for _, s := range f.shifts {
		copied := *s
		all = append(all, &copied)
	}
	return all, nil
}

func (f *fakeShiftStore) activeCount() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	n := 0
	for _, s := range f.shifts {
		if s.Status == core.ShiftStatusActive && s.EndedAt == nil {
			n++
		}
	}
	return n
}

type fakeOrderStore struct {
	mu     sync.Mutex
	orders map[primitive.ObjectID][]*model.Order
}

func newFakeOrderStore() *fakeOrderStore {
	return &fakeOrderStore{orders: make(map[primitive.ObjectID][]*model.Order)}
}

func (f *fakeOrderStore) Create(_ context.Context, order *model.Order) (*model.Order, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if order.ID.IsZero() {
		order.ID = primitive.NewObjectID()
	}
	if order.CreatedAt.IsZero() {
		order.CreatedAt = time.Now().UTC()
	}
	copied := *order
	f.orders[order.ShiftID] = append(f.orders[order.ShiftID], &copied)
	return order, nil
}

func (f *fakeOrderStore) ListForShift(_ context.Context, shiftID primitive.ObjectID) ([]*model.Order, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	return append([]*model.Order(nil), f.orders[shiftID]...), nil
}

type fakeTaskStore struct {
	mu    sync.Mutex
	tasks map[primitive.ObjectID]*model.ShiftTask
}

func newFakeTaskStore() *fakeTaskStore {
	return &fakeTaskStore{tasks: make(map[primitive.ObjectID]*model.ShiftTask)}
}

func (f *fakeTaskStore) SeedForShift(_ context.Context, tasks []*model.ShiftTask) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	for _, task := range tasks {
		if task.ID.IsZero() {
			task.ID = primitive.NewObjectID()
		}
		copied := *task
		f.tasks[task.ID] = &copied
	}
	return nil
}

func (f *fakeTaskStore) GetForShift(_ context.Context, shiftID, taskID primitive.ObjectID) (*model.ShiftTask, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	task, ok := f.tasks[taskID]
	if !ok || task.ShiftID != shiftID {
		return nil, mongo.ErrNoDocuments
	}
	copied := *task
	return &copied, nil
}

func (f *fakeTaskStore) ListForShift(_ context.Context, shiftID primitive.ObjectID) ([]*model.ShiftTask, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	var tasks []*model.ShiftTask
	for _, task := range f.tasks {
		if task.ShiftID == shiftID {
			copied := *task
			tasks = append(tasks, &copied)
		}
	}
	return tasks, nil
}

func (f *fakeTaskStore) SetCompleted(_ context.Context, taskID primitive.ObjectID, completed bool, completedAt *time.Time) (int64, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	task, ok := f.tasks[taskID]
	if !ok {
		return 0, nil
	}
	task.Completed = completed
	task.CompletedAt = completedAt
	task.UpdatedAt = time.Now().UTC()
	return 1, nil
}

type fakeTemplateStore struct {
	templates map[primitive.ObjectID][]*model.TaskTemplate
	err       error
}

func newFakeTemplateStore() *fakeTemplateStore {
	return &fakeTemplateStore{templates: make(map[primitive.ObjectID][]*model.TaskTemplate)}
}

func (f *fakeTemplateStore) ListForStore(_ context.Context, storeID primitive.ObjectID) ([]*model.TaskTemplate, error) {
	if f.err != nil {
		return nil, f.err
	}
	return f.templates[storeID], nil
}

type fakeEventStore struct {
	mu     sync.Mutex
	events []*model.ShiftEvent
	err    error
}

func (f *fakeEventStore) Append(_ context.Context, event *model.ShiftEvent) (*model.ShiftEvent, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.err != nil {
		return nil, f.err
	}
	if event.ID.IsZero() {
		event.ID = primitive.NewObjectID()
	}
	if event.CreatedAt.IsZero() {
		event.CreatedAt = time.Now().UTC()
	}
	copied := *event
	f.events = append(f.events, &copied)
	return event, nil
}

func (f *fakeEventStore) ListForShift(_ context.Context, shiftID primitive.ObjectID) ([]*model.ShiftEvent, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	var events []*model.ShiftEvent
	for _, e := range f.events {
		if e.ShiftID == shiftID {
			copied := *e
			events = append(events, &copied)
		}
	}
	return events, nil
}

func (f *fakeEventStore) typesForShift(shiftID primitive.ObjectID) []core.ShiftEventType {
	f.mu.Lock()
	defer f.mu.Unlock()
	var types []core.ShiftEventType
	for _, e := range f.events {
		if e.ShiftID == shiftID {
			types = append(types, e.Type)
		}
	}
	return types
}

type fakeLocker struct {
	mu         sync.Mutex
	held       map[string]bool
	acquireErr error
}

func newFakeLocker() *fakeLocker {
	return &fakeLocker{held: make(map[string]bool)}
}

func (f *fakeLocker) Acquire(_ context.Context, employeeID, storeID string, _ int64) (bool, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.acquireErr != nil {
		return false, f.acquireErr
	}
	key := employeeID + "/" + storeID
	if f.held[key] {
		return false, nil
	}
	f.held[key] = true
	return true, nil
}

func (f *fakeLocker) Release(_ context.Context, employeeID, storeID string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	delete(f.held, employeeID+"/"+storeID)
	return nil
}

type fakeAuditSink struct {
	mu   sync.Mutex
	logs []fluentdModel.ShiftAuditLog
}

func (f *fakeAuditSink) LogShiftEvent(_ context.Context, audit fluentdModel.ShiftAuditLog) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.logs = append(f.logs, audit)
	return nil
}

var errStoreDown = errors.New("store down")

type testEnv struct {
	shifts    *fakeShiftStore
	orders    *fakeOrderStore
	tasks     *fakeTaskStore
	templates *fakeTemplateStore
	events    *fakeEventStore
	locker    *fakeLocker
	audit     *fakeAuditSink

	shiftService *ShiftService
	taskService  *TaskService
	journal      *JournalService
}

func newTestEnv() *testEnv {
	trace, _ := telemetry.NewTrace(nil)
	metric := telemetry.NewMetric(nil)
	logger := zap.NewNop()

	env := &testEnv{
		shifts:    newFakeShiftStore(),
		orders:    newFakeOrderStore(),
		tasks:     newFakeTaskStore(),
		templates: newFakeTemplateStore(),
		events:    &fakeEventStore{},
		locker:    newFakeLocker(),
		audit:     &fakeAuditSink{},
	}
	env.journal = NewJournalService(logger, trace, metric, env.events, env.shifts, env.audit)
	env.shiftService = NewShiftService(logger, trace, metric, env.shifts, env.orders, env.tasks, env.templates, env.locker, env.journal)
	env.taskService = NewTaskService(logger, trace, env.shifts, env.tasks, env.journal)
	return env
}
