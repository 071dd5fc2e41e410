package service

import (
	"context"
	"sync"
	"testing"

	"shiftdesk/internal/core"
	"shiftdesk/internal/database/mongodb/model"
	"shiftdesk/internal/dto"
	cErr "shiftdesk/internal/pkg/error"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

func mustErrorCode(t *testing.T, err error, wantCode int) {
	t.Helper()
	if err == nil {
		t.Fatalf("expected error with code %d, got nil", wantCode)
	}
	appErr, ok := err.(*cErr.Error)
	if !ok {
		t.Fatalf("expected *error.Error, got %T: %v", err, err)
	}
	if appErr.ErrorCode() != wantCode {
		t.Fatalf("error code = %d, want %d (%v)", appErr.ErrorCode(), wantCode, err)
	}
}

func strPtr(s string) *string { return &s }

func TestStartShiftCreatesActiveShift(t *testing.T) {
	env := newTestEnv()
	storeID := primitive.NewObjectID()
	employeeID := primitive.NewObjectID()
	env.templates.templates[storeID] = []*model.TaskTemplate{
		{ID: primitive.NewObjectID(), StoreID: storeID, Title: "Wipe counters", SortOrder: 1},
		{ID: primitive.NewObjectID(), StoreID: storeID, Title: "Check fridge temp", SortOrder: 2},
	}

	resp, err := env.shiftService.StartShift(context.Background(), &dto.StartShiftDto{
		TenantID:     primitive.NewObjectID().Hex(),
		StoreID:      storeID.Hex(),
		EmployeeID:   employeeID.Hex(),
		EmployeeName: "Alex",
	})
	if err != nil {
		t.Fatalf("StartShift: %v", err)
	}
	if resp.Status != core.ShiftStatusActive {
		t.Errorf("status = %q, want active", resp.Status)
	}
	if resp.EndedAt != nil {
		t.Errorf("endedAt = %v, want nil on an active shift", resp.EndedAt)
	}
	if resp.Seq != 1 {
		t.Errorf("seq = %d, want 1", resp.Seq)
	}

	shiftID, _ := primitive.ObjectIDFromHex(resp.ID)
	tasks, _ := env.tasks.ListForShift(context.Background(), shiftID)
	if len(tasks) != 2 {
		t.Errorf("seeded tasks = %d, want 2", len(tasks))
	}
	types := env.events.typesForShift(shiftID)
	if len(types) != 1 || types[0] != core.EventShiftStarted {
		t.Errorf("journal = %v, want exactly [SHIFT_STARTED]", types)
	}
}

func TestStartShiftSeqIncrementsPerStore(t *testing.T) {
	env := newTestEnv()
	storeID := primitive.NewObjectID()
	otherStore := primitive.NewObjectID()

	first, err := env.shiftService.StartShift(context.Background(), &dto.StartShiftDto{
		StoreID: storeID.Hex(), EmployeeID: primitive.NewObjectID().Hex(),
	})
	if err != nil {
		t.Fatalf("first StartShift: %v", err)
	}
	second, err := env.shiftService.StartShift(context.Background(), &dto.StartShiftDto{
		StoreID: storeID.Hex(), EmployeeID: primitive.NewObjectID().Hex(),
	})
	if err != nil {
		t.Fatalf("second StartShift: %v", err)
	}
	other, err := env.shiftService.StartShift(context.Background(), &dto.StartShiftDto{
		StoreID: otherStore.Hex(), EmployeeID: primitive.NewObjectID().Hex(),
	})
	if err != nil {
		t.Fatalf("other store StartShift: %v", err)
	}
	if first.Seq != 1 || second.Seq != 2 {
		t.Errorf("same-store seqs = %d,%d, want 1,2", first.Seq, second.Seq)
	}
	if other.Seq != 1 {
		t.Errorf("other-store seq = %d, want 1 (counter is per store)", other.Seq)
	}
}

func TestStartShiftRejectsSecondActive(t *testing.T) {
	env := newTestEnv()
	in := &dto.StartShiftDto{
		StoreID:    primitive.NewObjectID().Hex(),
		EmployeeID: primitive.NewObjectID().Hex(),
	}
	if _, err := env.shiftService.StartShift(context.Background(), in); err != nil {
		t.Fatalf("first StartShift: %v", err)
	}
	_, err := env.shiftService.StartShift(context.Background(), in)
	mustErrorCode(t, err, cErr.ACTIVE_SHIFT_EXISTS)
	if got := env.shifts.activeCount(); got != 1 {
		t.Errorf("active shifts = %d, want 1", got)
	}
}

func TestStartShiftAllowsDifferentStores(t *testing.T) {
	env := newTestEnv()
	employeeID := primitive.NewObjectID().Hex()

	if _, err := env.shiftService.StartShift(context.Background(), &dto.StartShiftDto{
		StoreID: primitive.NewObjectID().Hex(), EmployeeID: employeeID,
	}); err != nil {
		t.Fatalf("first store: %v", err)
	}
	if _, err := env.shiftService.StartShift(context.Background(), &dto.StartShiftDto{
		StoreID: primitive.NewObjectID().Hex(), EmployeeID: employeeID,
	}); err != nil {
		t.Fatalf("second store: %v", err)
	}
	if got := env.shifts.activeCount(); got != 2 {
		t.Errorf("active shifts = %d, want 2 (uniqueness is per employee+store)", got)
	}
}

func TestStartShiftConcurrent(t *testing.T) {
	env := newTestEnv()
	in := &dto.StartShiftDto{
		StoreID:    primitive.NewObjectID().Hex(),
		EmployeeID: primitive.NewObjectID().Hex(),
	}

	const racers = 16
	var wg sync.WaitGroup
	errs := make([]error, racers)
	for i := 0; i < racers; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			_, errs[i] = env.shiftService.StartShift(context.Background(), in)
		}(i)
	}
	wg.Wait()

	var okCount int
	for _, err := range errs {
		if err == nil {
			okCount++
			continue
		}
		mustErrorCode(t, err, cErr.ACTIVE_SHIFT_EXISTS)
	}
	if okCount != 1 {
		t.Errorf("successful starts = %d, want exactly 1", okCount)
	}
	if got := env.shifts.activeCount(); got != 1 {
		t.Errorf("active shifts = %d, want 1", got)
	}
}

func TestStartShiftSurvivesLockOutage(t *testing.T) {
	env := newTestEnv()
	env.locker.acquireErr = errStoreDown

	_, err := env.shiftService.StartShift(context.Background(), &dto.StartShiftDto{
		StoreID:    primitive.NewObjectID().Hex(),
		EmployeeID: primitive.NewObjectID().Hex(),
	})
	if err != nil {
		t.Fatalf("StartShift with lock outage: %v", err)
	}
}

func TestStartShiftSurvivesTemplateOutage(t *testing.T) {
	env := newTestEnv()
	env.templates.err = errStoreDown

	resp, err := env.shiftService.StartShift(context.Background(), &dto.StartShiftDto{
		StoreID:    primitive.NewObjectID().Hex(),
		EmployeeID: primitive.NewObjectID().Hex(),
	})
	if err != nil {
		t.Fatalf("StartShift with template outage: %v", err)
	}
	shiftID, _ := primitive.ObjectIDFromHex(resp.ID)
	tasks, _ := env.tasks.ListForShift(context.Background(), shiftID)
	if len(tasks) != 0 {
		t.Errorf("tasks = %d, want 0 when templates are unreachable", len(tasks))
	}
}

func startShift(t *testing.T, env *testEnv) (shiftID, storeID, employeeID primitive.ObjectID) {
	t.Helper()
	storeID = primitive.NewObjectID()
	employeeID = primitive.NewObjectID()
	resp, err := env.shiftService.StartShift(context.Background(), &dto.StartShiftDto{
		TenantID:   primitive.NewObjectID().Hex(),
		StoreID:    storeID.Hex(),
		EmployeeID: employeeID.Hex(),
	})
	if err != nil {
		t.Fatalf("StartShift: %v", err)
	}
	shiftID, _ = primitive.ObjectIDFromHex(resp.ID)
	return shiftID, storeID, employeeID
}

func TestShiftWithoutTenantSkipsJournal(t *testing.T) {
	env := newTestEnv()
	resp, err := env.shiftService.StartShift(context.Background(), &dto.StartShiftDto{
		StoreID:    primitive.NewObjectID().Hex(),
		EmployeeID: primitive.NewObjectID().Hex(),
	})
	if err != nil {
		t.Fatalf("StartShift: %v", err)
	}
	shiftID, _ := primitive.ObjectIDFromHex(resp.ID)

	if _, err := env.shiftService.CloseShift(context.Background(), &dto.CloseShiftDto{ShiftID: strPtr(shiftID.Hex())}); err != nil {
		t.Fatalf("CloseShift: %v", err)
	}
	if types := env.events.typesForShift(shiftID); len(types) != 0 {
		t.Errorf("journal = %v, want no events for a tenant-less shift", types)
	}
}

func TestCloseShiftFoldsOrders(t *testing.T) {
	env := newTestEnv()
	shiftID, _, _ := startShift(t, env)

	for _, o := range []struct {
		tender core.TenderType
		amount float64
		guests int
	}{
		{core.TenderCash, 100, 2},
		{core.TenderCard, 50, 1},
		{core.TenderCash, 25, 3},
	} {
		if _, err := env.shiftService.CreateOrder(context.Background(), shiftID, &dto.CreateOrderDto{
			Tender: o.tender, Amount: o.amount, GuestCount: o.guests,
		}); err != nil {
			t.Fatalf("CreateOrder: %v", err)
		}
	}

	resp, err := env.shiftService.CloseShift(context.Background(), &dto.CloseShiftDto{ShiftID: strPtr(shiftID.Hex())})
	if err != nil {
		t.Fatalf("CloseShift: %v", err)
	}
	if resp.Status != core.ShiftStatusClosed {
		t.Errorf("status = %q, want closed", resp.Status)
	}
	if resp.EndedAt == nil {
		t.Errorf("endedAt is nil on a closed shift")
	}
	if resp.CashRevenue != 125 || resp.CardRevenue != 50 {
		t.Errorf("cash/card = %v/%v, want 125/50", resp.CashRevenue, resp.CardRevenue)
	}
	if resp.TotalRevenue != 175 {
		t.Errorf("total = %v, want 175 (cash + card)", resp.TotalRevenue)
	}
	if resp.CheckCount != 3 || resp.GuestCount != 6 {
		t.Errorf("checks/guests = %d/%d, want 3/6", resp.CheckCount, resp.GuestCount)
	}

	types := env.events.typesForShift(shiftID)
	want := []core.ShiftEventType{core.EventShiftStarted, core.EventShiftClosed}
	if len(types) != len(want) || types[0] != want[0] || types[1] != want[1] {
		t.Errorf("journal = %v, want %v", types, want)
	}
}

func TestCloseShiftManualOverride(t *testing.T) {
	env := newTestEnv()
	shiftID, _, _ := startShift(t, env)
	if _, err := env.shiftService.CreateOrder(context.Background(), shiftID, &dto.CreateOrderDto{
		Tender: core.TenderCash, Amount: 100, GuestCount: 4,
	}); err != nil {
		t.Fatalf("CreateOrder: %v", err)
	}

	resp, err := env.shiftService.CloseShift(context.Background(), &dto.CloseShiftDto{
		ShiftID: strPtr(shiftID.Hex()),
		Cash:    strPtr("200.5"),
		Guests:  strPtr("7"),
	})
	if err != nil {
		t.Fatalf("CloseShift: %v", err)
	}
	if resp.CashRevenue != 200.5 {
		t.Errorf("cash = %v, want manual 200.5 over folded 100", resp.CashRevenue)
	}
	if resp.GuestCount != 7 {
		t.Errorf("guests = %d, want manual 7 over folded 4", resp.GuestCount)
	}
	if resp.CheckCount != 1 {
		t.Errorf("checkCount = %d, want 1 (always from orders)", resp.CheckCount)
	}
}

func TestCloseShiftCoercesBadInputToZero(t *testing.T) {
	env := newTestEnv()
	shiftID, _, _ := startShift(t, env)

	resp, err := env.shiftService.CloseShift(context.Background(), &dto.CloseShiftDto{
		ShiftID: strPtr(shiftID.Hex()),
		Cash:    strPtr("not-a-number"),
		Card:    strPtr("-5"),
		Guests:  strPtr("12.7"),
	})
	if err != nil {
		t.Fatalf("CloseShift with garbage input must still succeed: %v", err)
	}
	if resp.CashRevenue != 0 || resp.CardRevenue != 0 || resp.GuestCount != 0 {
		t.Errorf("cash/card/guests = %v/%v/%d, want 0/0/0 after coercion",
			resp.CashRevenue, resp.CardRevenue, resp.GuestCount)
	}
	if resp.Status != core.ShiftStatusClosed {
		t.Errorf("status = %q, want closed", resp.Status)
	}
}

func TestCloseShiftNoActive(t *testing.T) {
	env := newTestEnv()

	_, err := env.shiftService.CloseShift(context.Background(), &dto.CloseShiftDto{
		ShiftID: strPtr(primitive.NewObjectID().Hex()),
	})
	mustErrorCode(t, err, cErr.NO_ACTIVE_SHIFT)
	if len(env.events.typesForShift(primitive.NilObjectID)) != 0 {
		t.Errorf("journal must stay empty on a failed close")
	}
}

func TestCloseShiftTwice(t *testing.T) {
	env := newTestEnv()
	shiftID, _, _ := startShift(t, env)

	if _, err := env.shiftService.CloseShift(context.Background(), &dto.CloseShiftDto{ShiftID: strPtr(shiftID.Hex())}); err != nil {
		t.Fatalf("first CloseShift: %v", err)
	}
	_, err := env.shiftService.CloseShift(context.Background(), &dto.CloseShiftDto{ShiftID: strPtr(shiftID.Hex())})
	mustErrorCode(t, err, cErr.NO_ACTIVE_SHIFT)

	types := env.events.typesForShift(shiftID)
	if len(types) != 2 {
		t.Errorf("journal = %v, second close must not append", types)
	}
}

func TestCloseShiftByEmployee(t *testing.T) {
	env := newTestEnv()
	_, _, employeeID := startShift(t, env)

	resp, err := env.shiftService.CloseShift(context.Background(), &dto.CloseShiftDto{
		EmployeeID: strPtr(employeeID.Hex()),
	})
	if err != nil {
		t.Fatalf("CloseShift by employee: %v", err)
	}
	if resp.Status != core.ShiftStatusClosed {
		t.Errorf("status = %q, want closed", resp.Status)
	}
}

func TestCloseShiftSucceedsWhenJournalDown(t *testing.T) {
	env := newTestEnv()
	shiftID, _, _ := startShift(t, env)
	env.events.err = errStoreDown

	resp, err := env.shiftService.CloseShift(context.Background(), &dto.CloseShiftDto{ShiftID: strPtr(shiftID.Hex())})
	if err != nil {
		t.Fatalf("CloseShift must succeed when journal is down: %v", err)
	}
	if resp.Status != core.ShiftStatusClosed {
		t.Errorf("status = %q, want closed", resp.Status)
	}
}

func TestCreateOrderOnClosedShift(t *testing.T) {
	env := newTestEnv()
	shiftID, _, _ := startShift(t, env)
	if _, err := env.shiftService.CloseShift(context.Background(), &dto.CloseShiftDto{ShiftID: strPtr(shiftID.Hex())}); err != nil {
		t.Fatalf("CloseShift: %v", err)
	}

	_, err := env.shiftService.CreateOrder(context.Background(), shiftID, &dto.CreateOrderDto{
		Tender: core.TenderCash, Amount: 10,
	})
	mustErrorCode(t, err, cErr.NO_ACTIVE_SHIFT)
}

func TestListOrdersReturnsShiftLedger(t *testing.T) {
	env := newTestEnv()
	shiftID, _, _ := startShift(t, env)

	for _, amt := range []float64{100, 50, 25} {
		if _, err := env.shiftService.CreateOrder(context.Background(), shiftID, &dto.CreateOrderDto{
			Tender: core.TenderCash, Amount: amt,
		}); err != nil {
			t.Fatalf("CreateOrder: %v", err)
		}
	}

	orders, err := env.shiftService.ListOrders(context.Background(), shiftID)
	if err != nil {
		t.Fatalf("ListOrders: %v", err)
	}
	if len(orders) != 3 {
		t.Fatalf("len(orders) = %d, want 3", len(orders))
	}
	for _, order := range orders {
		if order.ShiftID != shiftID.Hex() {
			t.Errorf("order shiftId = %s, want %s", order.ShiftID, shiftID.Hex())
		}
	}
}

func TestGetActiveShift(t *testing.T) {
	env := newTestEnv()
	shiftID, storeID, employeeID := startShift(t, env)

	resp, err := env.shiftService.GetActiveShift(context.Background(), employeeID, storeID)
	if err != nil {
		t.Fatalf("GetActiveShift: %v", err)
	}
	if resp.ID != shiftID.Hex() {
		t.Errorf("id = %s, want %s", resp.ID, shiftID.Hex())
	}

	if _, err := env.shiftService.CloseShift(context.Background(), &dto.CloseShiftDto{ShiftID: strPtr(shiftID.Hex())}); err != nil {
		t.Fatalf("CloseShift: %v", err)
	}
	_, err = env.shiftService.GetActiveShift(context.Background(), employeeID, storeID)
	mustErrorCode(t, err, cErr.NO_ACTIVE_SHIFT)
}
