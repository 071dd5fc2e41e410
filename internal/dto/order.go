package dto

import (
	"time"

	"shiftdesk/internal/core"
)

// 收單（POS 端逐筆上報）
type CreateOrderDto struct {
	Tender     core.TenderType `json:"tender" binding:"required"`
	Amount     float64         `json:"amount" binding:"min=0"`
	GuestCount int             `json:"guestCount,omitempty" binding:"min=0"`
	ExternalID string          `json:"externalId,omitempty"` // POS 單號，去重用
}

type OrderResponseDto struct {
	ID         string          `json:"id"`
	ShiftID    string          `json:"shiftId"`
	StoreID    string          `json:"storeId"`
	Tender     core.TenderType `json:"tender"`
	Amount     float64         `json:"amount"`
	GuestCount int             `json:"guestCount"`
	ExternalID string          `json:"externalId,omitempty"`
	CreatedAt  time.Time       `json:"createdAt"`
}
