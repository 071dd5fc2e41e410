package dto

import "time"

// 建立租戶
type CreateTenantDto struct {
	Name   string `json:"name" binding:"required,max=256"`
	Status string `json:"status,omitempty"`
}

// 更新租戶
type UpdateTenantDto struct {
	Name   *string `json:"name,omitempty"`
	Status *string `json:"status,omitempty"`
}

type TenantResponseDto struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Status    string    `json:"status"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}
