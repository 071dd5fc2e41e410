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

func TestJournalRejectsUnknownType(t *testing.T) {
	env := newTestEnv()
	shiftID, _, _ := startShift(t, env)

	_, err := env.journal.Append(context.Background(), &model.ShiftEvent{
		ShiftID: shiftID,
		Type:    core.ShiftEventType("SHIFT_PAUSED"),
	})
	mustErrorCode(t, err, cErr.INVALID_EVENT_TYPE)
}

func TestJournalAppendMirrorsToAudit(t *testing.T) {
	env := newTestEnv()
	shiftID, _, _ := startShift(t, env)

	before := len(env.audit.logs)
	_, err := env.journal.Append(context.Background(), &model.ShiftEvent{
		ShiftID:    shiftID,
		StoreID:    primitive.NewObjectID(),
		EmployeeID: primitive.NewObjectID(),
		Type:       core.EventProblemReported,
	})
	if err != nil {
		t.Fatalf("Append: %v", err)
	}
	if len(env.audit.logs) != before+1 {
		t.Errorf("audit logs = %d, want %d", len(env.audit.logs), before+1)
	}
	if env.audit.logs[len(env.audit.logs)-1].Type != string(core.EventProblemReported) {
		t.Errorf("audit type = %q, want PROBLEM_REPORTED", env.audit.logs[len(env.audit.logs)-1].Type)
	}
}

func TestJournalAppendUnavailable(t *testing.T) {
	env := newTestEnv()
	shiftID, _, _ := startShift(t, env)
	env.events.err = errStoreDown

	_, err := env.journal.Append(context.Background(), &model.ShiftEvent{
		ShiftID: shiftID,
		Type:    core.EventProblemReported,
	})
	mustErrorCode(t, err, cErr.JOURNAL_UNAVAILABLE)
}

func TestReportProblem(t *testing.T) {
	env := newTestEnv()
	shiftID, _, _ := startShift(t, env)

	resp, err := env.journal.ReportProblem(context.Background(), shiftID, &dto.ReportProblemDto{
		Category:    core.ProblemEquipmentFailure,
		Severity:    core.SeverityHigh,
		Description: "espresso machine leaking",
	})
	if err != nil {
		t.Fatalf("ReportProblem: %v", err)
	}
	if resp.Type != core.EventProblemReported {
		t.Errorf("type = %q, want PROBLEM_REPORTED", resp.Type)
	}
	if resp.Payload["category"] != string(core.ProblemEquipmentFailure) {
		t.Errorf("payload category = %v, want equipment_failure", resp.Payload["category"])
	}
	if resp.Payload["severity"] != string(core.SeverityHigh) {
		t.Errorf("payload severity = %v, want high", resp.Payload["severity"])
	}
}

func TestReportProblemDefaultsSeverity(t *testing.T) {
	env := newTestEnv()
	shiftID, _, _ := startShift(t, env)

	resp, err := env.journal.ReportProblem(context.Background(), shiftID, &dto.ReportProblemDto{
		Category: core.ProblemWorkIssue,
	})
	if err != nil {
		t.Fatalf("ReportProblem: %v", err)
	}
	if resp.Payload["severity"] != string(core.SeverityMedium) {
		t.Errorf("severity = %v, want default medium", resp.Payload["severity"])
	}
}

func TestReportProblemUnknownCategory(t *testing.T) {
	env := newTestEnv()
	shiftID, _, _ := startShift(t, env)

	_, err := env.journal.ReportProblem(context.Background(), shiftID, &dto.ReportProblemDto{
		Category: core.ProblemCategory("alien_invasion"),
	})
	mustErrorCode(t, err, cErr.BAD_REQUEST_BODY)
}

func TestReportProblemJournalDownFailsRequest(t *testing.T) {
	env := newTestEnv()
	shiftID, _, _ := startShift(t, env)
	env.events.err = errStoreDown

	_, err := env.journal.ReportProblem(context.Background(), shiftID, &dto.ReportProblemDto{
		Category: core.ProblemProductOut,
	})
	mustErrorCode(t, err, cErr.JOURNAL_UNAVAILABLE)
}

func TestReportProblemOnClosedShift(t *testing.T) {
	env := newTestEnv()
	shiftID, _, _ := startShift(t, env)
	if _, err := env.shiftService.CloseShift(context.Background(), &dto.CloseShiftDto{ShiftID: strPtr(shiftID.Hex())}); err != nil {
		t.Fatalf("CloseShift: %v", err)
	}

	_, err := env.journal.ReportProblem(context.Background(), shiftID, &dto.ReportProblemDto{
		Category: core.ProblemProductOut,
	})
	mustErrorCode(t, err, cErr.NO_ACTIVE_SHIFT)
}

func TestListForShiftOrdersByTime(t *testing.T) {
	env := newTestEnv()
	shiftID, _, _ := startShift(t, env)
	taskID := seedTask(t, env, shiftID, "a")
	if _, err := env.taskService.Toggle(context.Background(), shiftID, taskID, true); err != nil {
		t.Fatalf("Toggle: %v", err)
	}
	if _, err := env.shiftService.CloseShift(context.Background(), &dto.CloseShiftDto{ShiftID: strPtr(shiftID.Hex())}); err != nil {
		t.Fatalf("CloseShift: %v", err)
	}

	resp, err := env.journal.ListForShift(context.Background(), shiftID)
	if err != nil {
		t.Fatalf("ListForShift: %v", err)
	}
	want := []core.ShiftEventType{core.EventShiftStarted, core.EventTaskCompleted, core.EventShiftClosed}
	if len(resp.Items) != len(want) {
		t.Fatalf("events = %d, want %d", len(resp.Items), len(want))
	}
	for i, item := range resp.Items {
		if item.Type != want[i] {
			t.Errorf("event[%d] = %q, want %q", i, item.Type, want[i])
		}
	}
}
