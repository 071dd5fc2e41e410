package service

import (
	"context"
	"testing"

	"shiftdesk/internal/core"
	"shiftdesk/internal/database/mongodb/model"
	"shiftdesk/internal/dto"
	cErr "shiftdesk/internal/pkg/error"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

func seedTask(t *testing.T, env *testEnv, shiftID primitive.ObjectID, title string) primitive.ObjectID {
	t.Helper()
	task := &model.ShiftTask{ShiftID: shiftID, Title: title}
	if err := env.tasks.SeedForShift(context.Background(), []*model.ShiftTask{task}); err != nil {
		t.Fatalf("seed task: %v", err)
	}
	return task.ID
}

func TestToggleTaskCompletes(t *testing.T) {
	env := newTestEnv()
	shiftID, _, _ := startShift(t, env)
	taskID := seedTask(t, env, shiftID, "Count the till")

	resp, err := env.taskService.Toggle(context.Background(), shiftID, taskID, true)
	if err != nil {
		t.Fatalf("Toggle: %v", err)
	}
	if !resp.Completed {
		t.Errorf("completed = false, want true")
	}
	if resp.CompletedAt == nil {
		t.Errorf("completedAt is nil on a completed task")
	}

	types := env.events.typesForShift(shiftID)
	if len(types) != 2 || types[1] != core.EventTaskCompleted {
		t.Errorf("journal = %v, want CHECKLIST_TASK_COMPLETED appended", types)
	}
}

func TestToggleTaskIdempotent(t *testing.T) {
	env := newTestEnv()
	shiftID, _, _ := startShift(t, env)
	taskID := seedTask(t, env, shiftID, "Count the till")

	first, err := env.taskService.Toggle(context.Background(), shiftID, taskID, true)
	if err != nil {
		t.Fatalf("first Toggle: %v", err)
	}
	second, err := env.taskService.Toggle(context.Background(), shiftID, taskID, true)
	if err != nil {
		t.Fatalf("repeated Toggle: %v", err)
	}
	if !second.Completed {
		t.Errorf("completed = false after repeated toggle")
	}
	if first.CompletedAt == nil || second.CompletedAt == nil || !second.CompletedAt.Equal(*first.CompletedAt) {
		t.Errorf("completedAt changed on a no-op toggle: %v -> %v", first.CompletedAt, second.CompletedAt)
	}

	types := env.events.typesForShift(shiftID)
	if len(types) != 2 {
		t.Errorf("journal = %v, no-op toggle must not append", types)
	}
}

func TestToggleTaskUncomplete(t *testing.T) {
	env := newTestEnv()
	shiftID, _, _ := startShift(t, env)
	taskID := seedTask(t, env, shiftID, "Count the till")

	if _, err := env.taskService.Toggle(context.Background(), shiftID, taskID, true); err != nil {
		t.Fatalf("Toggle on: %v", err)
	}
	resp, err := env.taskService.Toggle(context.Background(), shiftID, taskID, false)
	if err != nil {
		t.Fatalf("Toggle off: %v", err)
	}
	if resp.Completed {
		t.Errorf("completed = true, want false")
	}
	if resp.CompletedAt != nil {
		t.Errorf("completedAt = %v, must be cleared together with completed", resp.CompletedAt)
	}

	types := env.events.typesForShift(shiftID)
	if len(types) != 3 || types[2] != core.EventTaskUncompleted {
		t.Errorf("journal = %v, want TASK_UNCOMPLETED appended", types)
	}
}

func TestToggleTaskNotFound(t *testing.T) {
	env := newTestEnv()
	shiftID, _, _ := startShift(t, env)

	_, err := env.taskService.Toggle(context.Background(), shiftID, primitive.NewObjectID(), true)
	mustErrorCode(t, err, cErr.TASK_NOT_FOUND)
}

func TestToggleTaskWrongShift(t *testing.T) {
	env := newTestEnv()
	shiftID, _, _ := startShift(t, env)
	otherShiftID, _, _ := startShift(t, env)
	taskID := seedTask(t, env, shiftID, "Count the till")

	_, err := env.taskService.Toggle(context.Background(), otherShiftID, taskID, true)
	mustErrorCode(t, err, cErr.TASK_NOT_FOUND)
}

func TestToggleTaskOnClosedShift(t *testing.T) {
	env := newTestEnv()
	shiftID, _, _ := startShift(t, env)
	taskID := seedTask(t, env, shiftID, "Count the till")
	if _, err := env.shiftService.CloseShift(context.Background(), &dto.CloseShiftDto{ShiftID: strPtr(shiftID.Hex())}); err != nil {
		t.Fatalf("CloseShift: %v", err)
	}

	_, err := env.taskService.Toggle(context.Background(), shiftID, taskID, true)
	mustErrorCode(t, err, cErr.NO_ACTIVE_SHIFT)
}

func TestListTasksProgress(t *testing.T) {
	env := newTestEnv()
	shiftID, _, _ := startShift(t, env)
	done := seedTask(t, env, shiftID, "a")
	seedTask(t, env, shiftID, "b")
	seedTask(t, env, shiftID, "c")
	if _, err := env.taskService.Toggle(context.Background(), shiftID, done, true); err != nil {
		t.Fatalf("Toggle: %v", err)
	}

	resp, err := env.taskService.List(context.Background(), shiftID)
	if err != nil {
		t.Fatalf("List: %v", err)
	}
	if len(resp.Items) != 3 {
		t.Errorf("items = %d, want 3", len(resp.Items))
	}
	if resp.Progress.Completed != 1 || resp.Progress.Total != 3 || resp.Progress.Percent != 33 {
		t.Errorf("progress = %+v, want 1/3 = 33%%", resp.Progress)
	}
}

func TestListTasksEmptyShiftIsComplete(t *testing.T) {
	env := newTestEnv()
	shiftID, _, _ := startShift(t, env)

	resp, err := env.taskService.List(context.Background(), shiftID)
	if err != nil {
		t.Fatalf("List: %v", err)
	}
	if resp.Progress.Percent != 100 {
		t.Errorf("percent = %d, want 100 for a shift without checklist", resp.Progress.Percent)
	}
}
