package dto

import (
	"time"

	"shiftdesk/internal/core"
	"shiftdesk/internal/pkg/request"
	"shiftdesk/internal/pkg/summary"
)

// 開班
type StartShiftDto struct {
	TenantID     string `json:"tenantId,omitempty"`                     // 多租戶識別，可選
	StoreID      string `json:"storeId" binding:"required"`             // 門市 ObjectID
	EmployeeID   string `json:"employeeId" binding:"required"`          // 員工 ObjectID
	EmployeeName string `json:"employeeName,omitempty" binding:"max=128"` // 顯示名稱快照
}

func (dto *StartShiftDto) GetMessages() request.ValidatorMessages {
	return request.ValidatorMessages{
		"StoreID.required":    "storeId 為必填欄位",
		"EmployeeID.required": "employeeId 為必填欄位",
	}
}

// 收班；金額欄位收字串，解析失敗以 0 計並記 warning
type CloseShiftDto struct {
	ShiftID    *string           `json:"shiftId,omitempty"`    // 指定班次；未帶時以 employee+store 找 active
	EmployeeID *string           `json:"employeeId,omitempty"`
	StoreID    *string           `json:"storeId,omitempty"`
	Cash       *string           `json:"cash,omitempty"`       // 現金收入（人工盤點）
	Card       *string           `json:"card,omitempty"`       // 刷卡收入（人工盤點）
	Guests     *string           `json:"guests,omitempty"`     // 來客數（人工盤點）
	Notes      string            `json:"notes,omitempty" binding:"max=2000"`
	Answers    map[string]string `json:"answers,omitempty"`    // 收班問卷自由欄位
}

type ShiftResponseDto struct {
	ID           string            `json:"id"`
	TenantID     string            `json:"tenantId,omitempty"`
	StoreID      string            `json:"storeId"`
	EmployeeID   string            `json:"employeeId"`
	EmployeeName string            `json:"employeeName,omitempty"`
	Seq          int64             `json:"seq"`
	Status       core.ShiftStatus  `json:"status"`
	StartedAt    time.Time         `json:"startedAt"`
	EndedAt      *time.Time        `json:"endedAt,omitempty"`
	CashRevenue  float64           `json:"cashRevenue"`
	CardRevenue  float64           `json:"cardRevenue"`
	OnlineRev    float64           `json:"onlineRevenue"`
	TotalRevenue float64           `json:"totalRevenue"` // cash + card
	CheckCount   int               `json:"checkCount"`
	GuestCount   int               `json:"guestCount"`
	Notes        string            `json:"notes,omitempty"`
	Answers      map[string]string `json:"answers,omitempty"`
	CreatedAt    time.Time         `json:"createdAt"`
	UpdatedAt    time.Time         `json:"updatedAt"`
}

// 班次詳情：班次本體加上訂單小計與清單進度
type ShiftDetailResponseDto struct {
	Shift    ShiftResponseDto      `json:"shift"`
	Orders   summary.OrdersSummary `json:"orders"`
	Progress summary.TaskProgress  `json:"progress"`
}

type ListShiftsResponseDto struct {
	Items []ShiftResponseDto `json:"items"`
	Total int64              `json:"total"`
	Page  int64              `json:"page"`
	Size  int64              `json:"size"`
}
