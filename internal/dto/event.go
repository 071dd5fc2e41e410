package dto

import (
	"time"

	"shiftdesk/internal/core"
)

// 回報現場問題；寫入 journal 失敗時整個操作失敗（與一般事件不同）
type ReportProblemDto struct {
	Category     core.ProblemCategory `json:"category" binding:"required"`
	Severity     core.ProblemSeverity `json:"severity,omitempty"`
	Description  string               `json:"description,omitempty" binding:"max=4000"`
	IngredientID string               `json:"ingredientId,omitempty"` // category=product_out 時使用
	ProductID    string               `json:"productId,omitempty"`    // category=wrong_order 時使用
}

type ShiftEventResponseDto struct {
	ID         string              `json:"id"`
	TenantID   string              `json:"tenantId,omitempty"`
	StoreID    string              `json:"storeId"`
	ShiftID    string              `json:"shiftId"`
	EmployeeID string              `json:"employeeId"`
	Type       core.ShiftEventType `json:"type"`
	Payload    map[string]any      `json:"payload,omitempty"`
	CreatedAt  time.Time           `json:"createdAt"`
}

type ListShiftEventsResponseDto struct {
	Items []ShiftEventResponseDto `json:"items"`
}
