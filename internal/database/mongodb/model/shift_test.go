package model

import (
	"math/rand"
	"testing"
	"time"

	"shiftdesk/internal/core"
)

func TestShiftIsActive(t *testing.T) {
	now := time.Now().UTC()

	cases := []struct {
		name    string
		status  core.ShiftStatus
		endedAt *time.Time
		want    bool
	}{
		{"active and open", core.ShiftStatusActive, nil, true},
		{"closed and ended", core.ShiftStatusClosed, &now, false},
		// 壞資料：兩個欄位矛盾時一律當非 active
		{"active but ended", core.ShiftStatusActive, &now, false},
		{"closed but not ended", core.ShiftStatusClosed, nil, false},
		{"unknown status", core.ShiftStatus("paused"), nil, false},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			s := &Shift{Status: tc.status, EndedAt: tc.endedAt}
			if got := s.IsActive(); got != tc.want {
				t.Errorf("IsActive() = %v, want %v", got, tc.want)
			}
		})
	}
}

// 隨機打 status/endedAt 組合，IsActive 只能在 active 且未結束時為真
func TestShiftIsActiveRandomized(t *testing.T) {
	rng := rand.New(rand.NewSource(1))
	statuses := []core.ShiftStatus{
		core.ShiftStatusActive,
		core.ShiftStatusClosed,
		core.ShiftStatus(""),
		core.ShiftStatus("paused"),
		core.ShiftStatus("ACTIVE"),
	}
	for i := 0; i < 500; i++ {
		status := statuses[rng.Intn(len(statuses))]
		var endedAt *time.Time
		if rng.Intn(2) == 1 {
			ts := time.Now().UTC().Add(-time.Duration(rng.Intn(72)) * time.Hour)
			endedAt = &ts
		}
		s := &Shift{Status: status, EndedAt: endedAt}
		want := status == core.ShiftStatusActive && endedAt == nil
		if got := s.IsActive(); got != want {
			t.Fatalf("IsActive() = %v, want %v (status=%q endedAt=%v)", got, want, status, endedAt)
		}
	}
}
