package service

import (
	"context"
	"errors"
	"time"

	"shiftdesk/internal/core"
	"shiftdesk/internal/database/mongodb/model"
	"shiftdesk/internal/dto"
	cErr "shiftdesk/internal/pkg/error"
	"shiftdesk/internal/pkg/summary"
	"shiftdesk/internal/telemetry"
	"shiftdesk/utils/validate"

	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.uber.org/zap"
)

type TaskService struct {
	logger  *zap.Logger
	trace   *telemetry.Trace
	shifts  ShiftStore
	tasks   TaskStore
	journal *JournalService
}

func NewTaskService(
	logger *zap.Logger,
	trace *telemetry.Trace,
	shifts ShiftStore,
	tasks TaskStore,
	journal *JournalService,
) *TaskService {
	return &TaskService{
		logger:  logger,
		trace:   trace,
		shifts:  shifts,
		tasks:   tasks,
		journal: journal,
	}
}

// Toggle 勾/取消勾一個檢查表項目。冪等：目標狀態已成立時不寫 DB、不發事件。
func (s *TaskService) Toggle(ctx context.Context, shiftID, taskID primitive.ObjectID, completed bool) (*dto.TaskResponseDto, error) {
	ctx, span, end := s.trace.WithSpan(ctx)
	defer end(nil)

	traceMeta := core.TraceTaskToggleMeta{
		ShiftID:   shiftID.Hex(),
		TaskID:    taskID.Hex(),
		Completed: completed,
	}

	shift, err := s.shifts.GetByID(ctx, shiftID)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, cErr.NoActiveShift("shift not found")
		}
		return nil, cErr.DatabaseError("database GetShiftByID error")
	}
	if !shift.IsActive() {
		return nil, cErr.NoActiveShift("shift is already closed")
	}

	task, err := s.tasks.GetForShift(ctx, shiftID, taskID)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, cErr.TaskNotFound("task not found in this shift")
		}
		return nil, cErr.DatabaseError("database GetTaskForShift error")
	}

	if task.Completed == completed {
		traceMeta.NoOp = true
		s.trace.ApplyTraceAttributes(span, traceMeta)
		return modelToTaskResponseDto(task), nil
	}

	now := time.Now().UTC()
	var completedAt *time.Time
	if completed {
		completedAt = &now
	}
	matched, err := s.tasks.SetCompleted(ctx, taskID, completed, completedAt)
	if err != nil {
		return nil, cErr.DatabaseError("database SetTaskCompleted error")
	}
	if matched == 0 {
		return nil, cErr.TaskNotFound("task not found in this shift")
	}

	task.Completed = completed
	task.CompletedAt = completedAt
	task.UpdatedAt = now
	s.trace.ApplyTraceAttributes(span, traceMeta)

	s.appendToggleEvent(ctx, shift, task, completed, now)

	return modelToTaskResponseDto(task), nil
}

// List 班次的檢查表與完成度
func (s *TaskService) List(ctx context.Context, shiftID primitive.ObjectID) (*dto.ListTasksResponseDto, error) {
	ctx, _, end := s.trace.WithSpan(ctx)
	defer end(nil)

	tasks, err := s.tasks.ListForShift(ctx, shiftID)
	if err != nil {
		return nil, cErr.DatabaseError("database ListTasksForShift error")
	}

	resp := &dto.ListTasksResponseDto{
		Items:    make([]dto.TaskResponseDto, len(tasks)),
		Progress: summary.SummarizeTasks(tasks),
	}
	for i, task := range tasks {
		resp.Items[i] = *modelToTaskResponseDto(task)
	}
	return resp, nil
}

func (s *TaskService) appendToggleEvent(ctx context.Context, shift *model.Shift, task *model.ShiftTask, completed bool, at time.Time) {
	var (
		eventType core.ShiftEventType
		payload   any
	)
	if completed {
		eventType = core.EventTaskCompleted
		payload = model.TaskCompletedPayload{TaskID: task.ID.Hex(), TaskName: task.Title, CompletedAt: at}
	} else {
		eventType = core.EventTaskUncompleted
		payload = model.TaskUncompletedPayload{TaskID: task.ID.Hex(), TaskName: task.Title, UncompletedAt: at}
	}

	payloadMap, err := validate.PayloadToMap(payload)
	if err != nil {
		s.logger.Warn("encode task toggle payload failed", zap.Error(err))
		return
	}
	s.journal.AppendBestEffort(ctx, &model.ShiftEvent{
		TenantID:   shift.TenantID,
		StoreID:    shift.StoreID,
		EmployeeID: shift.EmployeeID,
		ShiftID:    shift.ID,
		Type:       eventType,
		Payload:    payloadMap,
		CreatedAt:  at,
	})
}

func modelToTaskResponseDto(task *model.ShiftTask) *dto.TaskResponseDto {
	return &dto.TaskResponseDto{
		ID:          task.ID.Hex(),
		ShiftID:     task.ShiftID.Hex(),
		Title:       task.Title,
		Details:     task.Details,
		SortOrder:   task.SortOrder,
		Completed:   task.Completed,
		CompletedAt: task.CompletedAt,
	}
}
