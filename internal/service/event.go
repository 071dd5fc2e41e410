package service

import (
	"context"
	"errors"
	"time"

	"shiftdesk/internal/core"
	fluentdModel "shiftdesk/internal/database/fluentd/model"
	"shiftdesk/internal/database/mongodb/model"
	"shiftdesk/internal/dto"
	cErr "shiftdesk/internal/pkg/error"
	"shiftdesk/internal/telemetry"
	"shiftdesk/utils/validate"

	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.uber.org/zap"
)

// JournalService 班次事件日誌。append-only：只新增、不修改、不刪除。
// 一般事件走 best-effort（失敗吞掉只留 log/metric），
// 問題回報走 strict（寫不進 journal 整個操作就失敗）。
type JournalService struct {
	logger *zap.Logger
	trace  *telemetry.Trace
	metric *telemetry.Metric
	events EventStore
	shifts ShiftStore
	audit  AuditSink
}

func NewJournalService(
	logger *zap.Logger,
	trace *telemetry.Trace,
	metric *telemetry.Metric,
	events EventStore,
	shifts ShiftStore,
	audit AuditSink,
) *JournalService {
	return &JournalService{
		logger: logger,
		trace:  trace,
		metric: metric,
		events: events,
		shifts: shifts,
		audit:  audit,
	}
}

// Append 寫入一筆事件並鏡像到稽核 sink。型別必須在封閉集合內。
func (s *JournalService) Append(ctx context.Context, event *model.ShiftEvent) (*dto.ShiftEventResponseDto, error) {
	ctx, span, end := s.trace.WithSpan(ctx)
	defer end(nil)

	if !validate.IsValidShiftEventType(string(event.Type)) {
		return nil, cErr.InvalidEventType("unknown shift event type: " + string(event.Type))
	}

	s.trace.ApplyTraceAttributes(span, core.TraceJournalMeta{
		ShiftID: event.ShiftID.Hex(),
		Type:    string(event.Type),
		Op:      "append",
	})

	appended, err := s.events.Append(ctx, event)
	if err != nil {
		if s.metric != nil && s.metric.JournalAppendFails != nil {
			s.metric.JournalAppendFails.WithLabelValues(string(event.Type)).Inc()
		}
		return nil, cErr.JournalUnavailable("database AppendShiftEvent error")
	}

	s.mirrorToAudit(ctx, appended)
	return modelToShiftEventResponseDto(appended), nil
}

// AppendBestEffort 寫入失敗不回傳錯誤，只留 warning 與 metric。
// 班次操作本身成功與否不受事件日誌影響。
func (s *JournalService) AppendBestEffort(ctx context.Context, event *model.ShiftEvent) {
	ctx, span, end := s.trace.WithSpan(ctx)
	defer end(nil)

	s.trace.ApplyTraceAttributes(span, core.TraceJournalMeta{
		ShiftID: event.ShiftID.Hex(),
		Type:    string(event.Type),
		Op:      "append_best_effort",
	})

	appended, err := s.events.Append(ctx, event)
	if err != nil {
		if s.metric != nil && s.metric.JournalAppendFails != nil {
			s.metric.JournalAppendFails.WithLabelValues(string(event.Type)).Inc()
		}
		s.logger.Warn("shift event append failed, event discarded",
			zap.String("shiftID", event.ShiftID.Hex()),
			zap.String("type", string(event.Type)),
			zap.Error(err))
		return
	}

	s.mirrorToAudit(ctx, appended)
}

// ListForShift 依時間序回傳班次的事件
func (s *JournalService) ListForShift(ctx context.Context, shiftID primitive.ObjectID) (*dto.ListShiftEventsResponseDto, error) {
	ctx, _, end := s.trace.WithSpan(ctx)
	defer end(nil)

	events, err := s.events.ListForShift(ctx, shiftID)
	if err != nil {
		return nil, cErr.DatabaseError("database ListShiftEvents error")
	}

	resp := &dto.ListShiftEventsResponseDto{Items: make([]dto.ShiftEventResponseDto, len(events))}
	for i, e := range events {
		resp.Items[i] = *modelToShiftEventResponseDto(e)
	}
	return resp, nil
}

// ReportProblem 現場問題回報。問題是稽核重點，所以這條路是 strict：
// journal 寫不進去就回 503，讓前台重試。
func (s *JournalService) ReportProblem(ctx context.Context, shiftID primitive.ObjectID, in *dto.ReportProblemDto) (*dto.ShiftEventResponseDto, error) {
	ctx, span, end := s.trace.WithSpan(ctx)
	defer end(nil)

	if !validate.IsValidProblemCategory(string(in.Category)) {
		return nil, cErr.ValidateErr("unknown problem category: " + string(in.Category))
	}
	severity := in.Severity
	if severity == "" {
		severity = core.SeverityMedium
	}
	if !validate.IsValidProblemSeverity(string(severity)) {
		return nil, cErr.ValidateErr("unknown problem severity: " + string(severity))
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

	now := time.Now().UTC()
	payload, err := validate.PayloadToMap(model.ProblemReportedPayload{
		ProblemID:     primitive.NewObjectID().Hex(),
		Category:      in.Category,
		CategoryLabel: core.ProblemCategoryLabel(in.Category),
		Severity:      severity,
		Description:   in.Description,
		ReportedAt:    now,
		IngredientID:  in.IngredientID,
		ProductID:     in.ProductID,
	})
	if err != nil {
		return nil, cErr.InternalServer("encode problem payload error")
	}

	s.trace.ApplyTraceAttributes(span, core.TraceJournalMeta{
		ShiftID: shiftID.Hex(),
		Type:    string(core.EventProblemReported),
		Op:      "report_problem",
	})

	event := &model.ShiftEvent{
		TenantID:   shift.TenantID,
		StoreID:    shift.StoreID,
		ShiftID:    shift.ID,
		EmployeeID: shift.EmployeeID,
		Type:       core.EventProblemReported,
		Payload:    payload,
		CreatedAt:  now,
	}
	return s.Append(ctx, event)
}

// mirrorToAudit 鏡像事件到 Fluentd；失敗只 warn
func (s *JournalService) mirrorToAudit(ctx context.Context, event *model.ShiftEvent) {
	if s.audit == nil {
		return
	}
	auditLog := fluentdModel.ShiftAuditLog{
		EventID:    event.ID.Hex(),
		StoreID:    event.StoreID.Hex(),
		ShiftID:    event.ShiftID.Hex(),
		EmployeeID: event.EmployeeID.Hex(),
		Type:       string(event.Type),
		Payload:    event.Payload,
	}
	if !event.TenantID.IsZero() {
		auditLog.TenantID = event.TenantID.Hex()
	}
	if err := s.audit.LogShiftEvent(ctx, auditLog); err != nil {
		s.logger.Warn("shift audit mirror failed",
			zap.String("eventID", auditLog.EventID),
			zap.String("type", auditLog.Type),
			zap.Error(err))
	}
}

func modelToShiftEventResponseDto(e *model.ShiftEvent) *dto.ShiftEventResponseDto {
	resp := &dto.ShiftEventResponseDto{
		ID:         e.ID.Hex(),
		StoreID:    e.StoreID.Hex(),
		ShiftID:    e.ShiftID.Hex(),
		EmployeeID: e.EmployeeID.Hex(),
		Type:       e.Type,
		Payload:    e.Payload,
		CreatedAt:  e.CreatedAt,
	}
	if !e.TenantID.IsZero() {
		resp.TenantID = e.TenantID.Hex()
	}
	return resp
}
