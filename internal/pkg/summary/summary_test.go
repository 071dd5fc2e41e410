package summary

import (
	"math/rand"
	"testing"

	"shiftdesk/internal/core"
	"shiftdesk/internal/database/mongodb/model"
)

func TestSummarizeOrders(t *testing.T) {
	orders := []*model.Order{
		{Tender: core.TenderCash, Amount: 100, GuestCount: 2},
		{Tender: core.TenderCard, Amount: 50, GuestCount: 1},
		{Tender: core.TenderCash, Amount: 25, GuestCount: 3},
	}

	got := SummarizeOrders(orders)

	if got.Cash != 125 {
		t.Errorf("cash = %v, want 125", got.Cash)
	}
	if got.Card != 50 {
		t.Errorf("card = %v, want 50", got.Card)
	}
	if got.Online != 0 {
		t.Errorf("online = %v, want 0", got.Online)
	}
	if got.Total != 175 {
		t.Errorf("total = %v, want 175", got.Total)
	}
	if got.CheckCount != 3 {
		t.Errorf("checkCount = %v, want 3", got.CheckCount)
	}
	if got.GuestCount != 6 {
		t.Errorf("guestCount = %v, want 6", got.GuestCount)
	}
}

func TestSummarizeOrdersEmpty(t *testing.T) {
	got := SummarizeOrders(nil)
	if got != (OrdersSummary{}) {
		t.Errorf("summary of no orders = %+v, want zero value", got)
	}
}

func TestSummarizeOrdersOrderIndependent(t *testing.T) {
	orders := []*model.Order{
		{Tender: core.TenderCash, Amount: 10.5, GuestCount: 1},
		{Tender: core.TenderCard, Amount: 42, GuestCount: 4},
		{Tender: core.TenderOnline, Amount: 99.99, GuestCount: 2},
		{Tender: core.TenderCash, Amount: 0, GuestCount: 0},
		{Tender: core.TenderCard, Amount: 7, GuestCount: 1},
	}
	want := SummarizeOrders(orders)

	rng := rand.New(rand.NewSource(1))
	for i := 0; i < 20; i++ {
		shuffled := make([]*model.Order, len(orders))
		copy(shuffled, orders)
		rng.Shuffle(len(shuffled), func(a, b int) {
			shuffled[a], shuffled[b] = shuffled[b], shuffled[a]
		})
		if got := SummarizeOrders(shuffled); got != want {
			t.Fatalf("shuffle %d: got %+v, want %+v", i, got, want)
		}
	}
}

func TestSummarizeOrdersSkipsUnknownTender(t *testing.T) {
	orders := []*model.Order{
		{Tender: core.TenderType("voucher"), Amount: 30, GuestCount: 1},
		{Tender: core.TenderCash, Amount: 20, GuestCount: 1},
	}
	got := SummarizeOrders(orders)
	if got.Cash != 20 || got.Total != 20 {
		t.Errorf("got %+v, unknown tender should not count toward any bucket", got)
	}
	if got.CheckCount != 2 {
		t.Errorf("checkCount = %v, want 2 (unknown tender still a check)", got.CheckCount)
	}
}

func TestSummarizeTasks(t *testing.T) {
	cases := []struct {
		name      string
		completed int
		total     int
		percent   int
	}{
		{"none done", 0, 4, 0},
		{"half done", 2, 4, 50},
		{"all done", 4, 4, 100},
		{"one third rounds down", 1, 3, 33},
		{"two thirds rounds up", 2, 3, 67},
		{"one sixth rounds up", 1, 6, 17},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			tasks := make([]*model.ShiftTask, tc.total)
			for i := range tasks {
				tasks[i] = &model.ShiftTask{Completed: i < tc.completed}
			}
			got := SummarizeTasks(tasks)
			if got.Percent != tc.percent {
				t.Errorf("percent = %d, want %d", got.Percent, tc.percent)
			}
			if got.Completed != tc.completed || got.Total != tc.total {
				t.Errorf("got %+v, want completed=%d total=%d", got, tc.completed, tc.total)
			}
		})
	}
}

func TestSummarizeTasksEmptyListIsComplete(t *testing.T) {
	got := SummarizeTasks(nil)
	if got.Percent != 100 {
		t.Errorf("percent = %d, want 100 for a shift with no checklist", got.Percent)
	}
	if got.Total != 0 || got.Completed != 0 {
		t.Errorf("got %+v, want zero totals", got)
	}
}
