package service

import (
	"context"
	"errors"
	"strconv"
	"time"

	"shiftdesk/internal/core"
	"shiftdesk/internal/database/mongodb/model"
	"shiftdesk/internal/database/mongodb/repository"
	"shiftdesk/internal/dto"
	cErr "shiftdesk/internal/pkg/error"
	"shiftdesk/internal/pkg/summary"
	"shiftdesk/internal/telemetry"
	"shiftdesk/utils/validate"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.uber.org/zap"
)

// 開班鎖 TTL；鎖只護航 StartShift 的查詢+寫入窗口，不需要長
const shiftLockTTLSeconds = 10

type ShiftService struct {
	logger    *zap.Logger
	trace     *telemetry.Trace
	metric    *telemetry.Metric
	shifts    ShiftStore
	orders    OrderStore
	tasks     TaskStore
	templates TemplateStore
	locker    ShiftLocker
	journal   *JournalService
}

func NewShiftService(
	logger *zap.Logger,
	trace *telemetry.Trace,
	metric *telemetry.Metric,
	shifts ShiftStore,
	orders OrderStore,
	tasks TaskStore,
	templates TemplateStore,
	locker ShiftLocker,
	journal *JournalService,
) *ShiftService {
	return &ShiftService{
		logger:    logger,
		trace:     trace,
		metric:    metric,
		shifts:    shifts,
		orders:    orders,
		tasks:     tasks,
		templates: templates,
		locker:    locker,
		journal:   journal,
	}
}

// StartShift 開班。同一 (employeeId, storeId) 同時最多一筆 active：
// Redis 鎖擋住同組合的併發請求，DB partial unique index 做最後防線，
// 兩道任何一道攔下都回 409。
func (s *ShiftService) StartShift(ctx context.Context, in *dto.StartShiftDto) (*dto.ShiftResponseDto, error) {
	ctx, span, end := s.trace.WithSpan(ctx)
	defer end(nil)

	employeeID, err := primitive.ObjectIDFromHex(in.EmployeeID)
	if err != nil {
		return nil, cErr.BadRequestParams("employeeId is not a valid ObjectID")
	}
	storeID, err := primitive.ObjectIDFromHex(in.StoreID)
	if err != nil {
		return nil, cErr.BadRequestParams("storeId is not a valid ObjectID")
	}
	var tenantID primitive.ObjectID
	if in.TenantID != "" {
		if tenantID, err = primitive.ObjectIDFromHex(in.TenantID); err != nil {
			return nil, cErr.BadRequestParams("tenantId is not a valid ObjectID")
		}
	}

	traceMeta := core.TraceShiftStartMeta{
		TenantID:   in.TenantID,
		StoreID:    in.StoreID,
		EmployeeID: in.EmployeeID,
	}

	acquired, lockErr := s.locker.Acquire(ctx, in.EmployeeID, in.StoreID, shiftLockTTLSeconds)
	if lockErr != nil {
		// Redis 掛掉不擋開班，唯一性交給 unique index
		s.logger.Warn("shift lock unavailable, relying on unique index",
			zap.String("employeeID", in.EmployeeID),
			zap.String("storeID", in.StoreID),
			zap.Error(lockErr))
	} else if !acquired {
		traceMeta.Conflict = true
		s.trace.ApplyTraceAttributes(span, traceMeta)
		s.incConflict(in.StoreID)
		return nil, cErr.ActiveShiftExists("another start shift is in progress for this employee/store")
	} else {
		defer func() {
			if releaseErr := s.locker.Release(ctx, in.EmployeeID, in.StoreID); releaseErr != nil {
				s.logger.Warn("shift lock release failed", zap.Error(releaseErr))
			}
		}()
	}

	if existing, findErr := s.shifts.FindActive(ctx, employeeID, storeID); findErr == nil && existing != nil {
		traceMeta.Conflict = true
		s.trace.ApplyTraceAttributes(span, traceMeta)
		s.incConflict(in.StoreID)
		return nil, cErr.ActiveShiftExists("employee already has an active shift at this store")
	} else if findErr != nil && !errors.Is(findErr, mongo.ErrNoDocuments) {
		return nil, cErr.DatabaseError("database FindActiveShift error")
	}

	seq, err := s.shifts.NextSeq(ctx, storeID)
	if err != nil {
		return nil, cErr.DatabaseError("database NextShiftSeq error")
	}

	now := time.Now().UTC()
	shift := &model.Shift{
		TenantID:     tenantID,
		StoreID:      storeID,
		EmployeeID:   employeeID,
		EmployeeName: in.EmployeeName,
		Seq:          seq,
		Status:       core.ShiftStatusActive,
		StartedAt:    now,
	}
	created, err := s.shifts.Insert(ctx, shift)
	if err != nil {
		if errors.Is(err, repository.ErrActiveShiftExists) {
			traceMeta.Conflict = true
			s.trace.ApplyTraceAttributes(span, traceMeta)
			s.incConflict(in.StoreID)
			return nil, cErr.ActiveShiftExists("employee already has an active shift at this store")
		}
		return nil, cErr.DatabaseError("database InsertShift error")
	}

	taskCount := s.seedChecklist(ctx, created)

	traceMeta.ShiftID = created.ID.Hex()
	traceMeta.Seq = created.Seq
	traceMeta.TaskCount = taskCount
	s.trace.ApplyTraceAttributes(span, traceMeta)
	if s.metric != nil && s.metric.ShiftsStartedTotal != nil {
		s.metric.ShiftsStartedTotal.WithLabelValues(in.StoreID).Inc()
	}

	// 沒帶 tenantId 的班不進日誌
	if !created.TenantID.IsZero() {
		if payload, payloadErr := validate.PayloadToMap(model.ShiftStartedPayload{StartedAt: created.StartedAt}); payloadErr == nil {
			s.journal.AppendBestEffort(ctx, &model.ShiftEvent{
				TenantID:   created.TenantID,
				StoreID:    created.StoreID,
				EmployeeID: created.EmployeeID,
				ShiftID:    created.ID,
				Type:       core.EventShiftStarted,
				Payload:    payload,
				CreatedAt:  created.StartedAt,
			})
		}
	}

	return modelToShiftResponseDto(created), nil
}

// seedChecklist 依門市模板長出本班的檢查表。
// 模板讀不到只 warn：開班不因清單失敗而擋下。
func (s *ShiftService) seedChecklist(ctx context.Context, shift *model.Shift) int {
	templates, err := s.templates.ListForStore(ctx, shift.StoreID)
	if err != nil {
		s.logger.Warn("load task templates failed, shift starts without checklist",
			zap.String("shiftID", shift.ID.Hex()),
			zap.String("storeID", shift.StoreID.Hex()),
			zap.Error(err))
		return 0
	}
	if len(templates) == 0 {
		return 0
	}

	tasks := make([]*model.ShiftTask, len(templates))
	for i, template := range templates {
		tasks[i] = &model.ShiftTask{
			ShiftID:    shift.ID,
			EmployeeID: shift.EmployeeID,
			Title:      template.Title,
			Details:    template.Details,
			SortOrder:  template.SortOrder,
		}
	}
	if err := s.tasks.SeedForShift(ctx, tasks); err != nil {
		s.logger.Warn("seed checklist failed, shift starts without checklist",
			zap.String("shiftID", shift.ID.Hex()),
			zap.Error(err))
		return 0
	}
	return len(tasks)
}

// CloseShift 收班。status 與 endedAt 同一筆 update 落地；
// 人工盤點欄位優先於訂單折疊值，解析不了的字串以 0 計。
func (s *ShiftService) CloseShift(ctx context.Context, in *dto.CloseShiftDto) (*dto.ShiftResponseDto, error) {
	ctx, span, end := s.trace.WithSpan(ctx)
	defer end(nil)

	shift, err := s.resolveActiveShift(ctx, in)
	if err != nil {
		return nil, err
	}

	orders, err := s.orders.ListForShift(ctx, shift.ID)
	if err != nil {
		return nil, cErr.DatabaseError("database ListOrdersForShift error")
	}
	folded := summary.SummarizeOrders(orders)

	cash, cashOverride := s.coerceAmount(in.Cash, "cash", shift.ID, folded.Cash)
	card, cardOverride := s.coerceAmount(in.Card, "card", shift.ID, folded.Card)
	guests, guestOverride := s.coerceCount(in.Guests, "guests", shift.ID, folded.GuestCount)
	fromOverride := cashOverride || cardOverride || guestOverride

	now := time.Now().UTC()
	setFields := bson.M{
		"endedAt":       now,
		"cashRevenue":   cash,
		"cardRevenue":   card,
		"onlineRevenue": folded.Online,
		"checkCount":    folded.CheckCount,
		"guestCount":    guests,
	}
	if in.Notes != "" {
		setFields["notes"] = in.Notes
	}
	if len(in.Answers) > 0 {
		setFields["closingAnswers"] = in.Answers
	}

	matched, err := s.shifts.CloseByID(ctx, shift.ID, setFields)
	if err != nil {
		return nil, cErr.DatabaseError("database CloseShift error")
	}
	if matched == 0 {
		// 併發收班輸了，或讀到收一半的殘骸
		return nil, cErr.NoActiveShift("shift is already closed")
	}

	shift.Status = core.ShiftStatusClosed
	shift.EndedAt = &now
	shift.CashRevenue = cash
	shift.CardRevenue = card
	shift.OnlineRev = folded.Online
	shift.CheckCount = folded.CheckCount
	shift.GuestCount = guests
	if in.Notes != "" {
		shift.Notes = in.Notes
	}
	if len(in.Answers) > 0 {
		shift.ClosingAnswers = in.Answers
	}
	shift.UpdatedAt = now

	s.trace.ApplyTraceAttributes(span, core.TraceShiftCloseMeta{
		ShiftID:      shift.ID.Hex(),
		StoreID:      shift.StoreID.Hex(),
		EmployeeID:   shift.EmployeeID.Hex(),
		Cash:         cash,
		Card:         card,
		Online:       folded.Online,
		CheckCount:   folded.CheckCount,
		GuestCount:   guests,
		FromOverride: fromOverride,
		OrderCount:   len(orders),
	})
	if s.metric != nil && s.metric.ShiftsClosedTotal != nil {
		s.metric.ShiftsClosedTotal.WithLabelValues(shift.StoreID.Hex()).Inc()
	}

	// 與開班一致：沒有 tenantId 就不進日誌
	if !shift.TenantID.IsZero() {
		if payload, payloadErr := validate.PayloadToMap(model.ShiftClosedPayload{
			EndedAt:      now,
			TotalRevenue: cash + card,
			CheckCount:   folded.CheckCount,
		}); payloadErr == nil {
			s.journal.AppendBestEffort(ctx, &model.ShiftEvent{
				TenantID:   shift.TenantID,
				StoreID:    shift.StoreID,
				EmployeeID: shift.EmployeeID,
				ShiftID:    shift.ID,
				Type:       core.EventShiftClosed,
				Payload:    payload,
				CreatedAt:  now,
			})
		}
	}

	return modelToShiftResponseDto(shift), nil
}

// resolveActiveShift 先認 shiftId，沒有就拿 employeeId+storeId 找 active
func (s *ShiftService) resolveActiveShift(ctx context.Context, in *dto.CloseShiftDto) (*model.Shift, error) {
	if in.ShiftID != nil && *in.ShiftID != "" {
		shiftID, err := primitive.ObjectIDFromHex(*in.ShiftID)
		if err != nil {
			return nil, cErr.BadRequestParams("shiftId is not a valid ObjectID")
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
		return shift, nil
	}

	if in.EmployeeID == nil || *in.EmployeeID == "" {
		return nil, cErr.BadRequestParams("either shiftId or employeeId is required")
	}
	employeeID, err := primitive.ObjectIDFromHex(*in.EmployeeID)
	if err != nil {
		return nil, cErr.BadRequestParams("employeeId is not a valid ObjectID")
	}
	var storeID primitive.ObjectID
	if in.StoreID != nil && *in.StoreID != "" {
		if storeID, err = primitive.ObjectIDFromHex(*in.StoreID); err != nil {
			return nil, cErr.BadRequestParams("storeId is not a valid ObjectID")
		}
	}

	shift, err := s.shifts.FindActive(ctx, employeeID, storeID)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, cErr.NoActiveShift("no active shift for this employee")
		}
		return nil, cErr.DatabaseError("database FindActiveShift error")
	}
	return shift, nil
}

// coerceAmount 人工盤點金額。nil 表示沒填，用折疊值；
// 有填但解析失敗以 0 計並 warn，收班不因手滑的輸入而卡住。
func (s *ShiftService) coerceAmount(raw *string, field string, shiftID primitive.ObjectID, fallback float64) (float64, bool) {
	if raw == nil {
		return fallback, false
	}
	value, err := strconv.ParseFloat(*raw, 64)
	if err != nil || value < 0 {
		s.logger.Warn("unparseable closing amount, coerced to 0",
			zap.Int("code", cErr.INVALID_CLOSING_FIELDS),
			zap.String("shiftID", shiftID.Hex()),
			zap.String("field", field),
			zap.String("raw", *raw))
		return 0, true
	}
	return value, true
}

func (s *ShiftService) coerceCount(raw *string, field string, shiftID primitive.ObjectID, fallback int) (int, bool) {
	if raw == nil {
		return fallback, false
	}
	value, err := strconv.Atoi(*raw)
	if err != nil || value < 0 {
		s.logger.Warn("unparseable closing count, coerced to 0",
			zap.Int("code", cErr.INVALID_CLOSING_FIELDS),
			zap.String("shiftID", shiftID.Hex()),
			zap.String("field", field),
			zap.String("raw", *raw))
		return 0, true
	}
	return value, true
}

// GetShift 班次詳情：本體 + 訂單小計 + 清單進度
func (s *ShiftService) GetShift(ctx context.Context, shiftID primitive.ObjectID) (*dto.ShiftDetailResponseDto, error) {
	ctx, _, end := s.trace.WithSpan(ctx)
	defer end(nil)

	shift, err := s.shifts.GetByID(ctx, shiftID)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, cErr.NotFound("shift not found")
		}
		return nil, cErr.DatabaseError("database GetShiftByID error")
	}

	orders, err := s.orders.ListForShift(ctx, shiftID)
	if err != nil {
		return nil, cErr.DatabaseError("database ListOrdersForShift error")
	}
	tasks, err := s.tasks.ListForShift(ctx, shiftID)
	if err != nil {
		return nil, cErr.DatabaseError("database ListTasksForShift error")
	}

	return &dto.ShiftDetailResponseDto{
		Shift:    *modelToShiftResponseDto(shift),
		Orders:   summary.SummarizeOrders(orders),
		Progress: summary.SummarizeTasks(tasks),
	}, nil
}

// GetActiveShift 員工目前上班中的班次；storeID 可為零值表示不限門市
func (s *ShiftService) GetActiveShift(ctx context.Context, employeeID, storeID primitive.ObjectID) (*dto.ShiftResponseDto, error) {
	ctx, _, end := s.trace.WithSpan(ctx)
	defer end(nil)

	shift, err := s.shifts.FindActive(ctx, employeeID, storeID)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, cErr.NoActiveShift("no active shift for this employee")
		}
		return nil, cErr.DatabaseError("database FindActiveShift error")
	}
	return modelToShiftResponseDto(shift), nil
}

// ListShifts 管理後台分頁列表
func (s *ShiftService) ListShifts(ctx context.Context, filter bson.M, page, size int64) ([]*dto.ShiftResponseDto, error) {
	ctx, _, end := s.trace.WithSpan(ctx)
	defer end(nil)

	shifts, err := s.shifts.List(ctx, core.ListOptions{Filter: filter, Page: page, Size: size})
	if err != nil {
		return nil, cErr.DatabaseError("database ListShifts error")
	}
	resp := make([]*dto.ShiftResponseDto, len(shifts))
	for i, shift := range shifts {
		resp[i] = modelToShiftResponseDto(shift)
	}
	return resp, nil
}

// ListStaleShifts 開班超過 olderThan 仍未收的班次（cron 監看用）
func (s *ShiftService) ListStaleShifts(ctx context.Context, olderThan time.Duration) ([]*dto.ShiftResponseDto, error) {
	ctx, _, end := s.trace.WithSpan(ctx)
	defer end(nil)

	shifts, err := s.shifts.ListStale(ctx, olderThan)
	if err != nil {
		return nil, cErr.DatabaseError("database ListStaleShifts error")
	}
	resp := make([]*dto.ShiftResponseDto, len(shifts))
	for i, shift := range shifts {
		resp[i] = modelToShiftResponseDto(shift)
	}
	return resp, nil
}

// CreateOrder 收單；班次必須上班中
func (s *ShiftService) CreateOrder(ctx context.Context, shiftID primitive.ObjectID, in *dto.CreateOrderDto) (*dto.OrderResponseDto, error) {
	ctx, _, end := s.trace.WithSpan(ctx)
	defer end(nil)

	if !validate.IsValidTender(string(in.Tender)) {
		return nil, cErr.ValidateErr("unknown tender type: " + string(in.Tender))
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

	order := &model.Order{
		TenantID:   shift.TenantID,
		StoreID:    shift.StoreID,
		ShiftID:    shift.ID,
		EmployeeID: shift.EmployeeID,
		Tender:     in.Tender,
		Amount:     in.Amount,
		GuestCount: in.GuestCount,
		ExternalID: in.ExternalID,
	}
	created, err := s.orders.Create(ctx, order)
	if err != nil {
		return nil, cErr.DatabaseError("database CreateOrder error")
	}

	return &dto.OrderResponseDto{
		ID:         created.ID.Hex(),
		ShiftID:    created.ShiftID.Hex(),
		StoreID:    created.StoreID.Hex(),
		Tender:     created.Tender,
		Amount:     created.Amount,
		GuestCount: created.GuestCount,
		ExternalID: created.ExternalID,
		CreatedAt:  created.CreatedAt,
	}, nil
}

// ListOrders 列出班次底下的訂單明細（彙總值請走 GetShift）
func (s *ShiftService) ListOrders(ctx context.Context, shiftID primitive.ObjectID) ([]*dto.OrderResponseDto, error) {
	ctx, _, end := s.trace.WithSpan(ctx)
	defer end(nil)

	if _, err := s.shifts.GetByID(ctx, shiftID); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, cErr.NotFound("shift not found")
		}
		return nil, cErr.DatabaseError("database GetShiftByID error")
	}

	orders, err := s.orders.ListForShift(ctx, shiftID)
	if err != nil {
		return nil, cErr.DatabaseError("database ListOrders error")
	}
	resp := make([]*dto.OrderResponseDto, len(orders))
	for index, order := range orders {
		resp[index] = &dto.OrderResponseDto{
			ID:         order.ID.Hex(),
			ShiftID:    order.ShiftID.Hex(),
			StoreID:    order.StoreID.Hex(),
			Tender:     order.Tender,
			Amount:     order.Amount,
			GuestCount: order.GuestCount,
			ExternalID: order.ExternalID,
			CreatedAt:  order.CreatedAt,
		}
	}
	return resp, nil
}

func (s *ShiftService) incConflict(storeID string) {
	if s.metric != nil && s.metric.ShiftConflictsTotal != nil {
		s.metric.ShiftConflictsTotal.WithLabelValues(storeID).Inc()
	}
}

func modelToShiftResponseDto(shift *model.Shift) *dto.ShiftResponseDto {
	resp := &dto.ShiftResponseDto{
		ID:           shift.ID.Hex(),
		StoreID:      shift.StoreID.Hex(),
		EmployeeID:   shift.EmployeeID.Hex(),
		EmployeeName: shift.EmployeeName,
		Seq:          shift.Seq,
		Status:       shift.Status,
		StartedAt:    shift.StartedAt,
		EndedAt:      shift.EndedAt,
		CashRevenue:  shift.CashRevenue,
		CardRevenue:  shift.CardRevenue,
		OnlineRev:    shift.OnlineRev,
		TotalRevenue: shift.CashRevenue + shift.CardRevenue,
		CheckCount:   shift.CheckCount,
		GuestCount:   shift.GuestCount,
		Notes:        shift.Notes,
		Answers:      shift.ClosingAnswers,
		CreatedAt:    shift.CreatedAt,
		UpdatedAt:    shift.UpdatedAt,
	}
	if !shift.TenantID.IsZero() {
		resp.TenantID = shift.TenantID.Hex()
	}
	return resp
}
