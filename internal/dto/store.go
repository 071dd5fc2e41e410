package dto

import "time"

// 建立門市
type CreateStoreDto struct {
	TenantID string `json:"tenantId" binding:"required"`
	Code     string `json:"code" binding:"required,max=64"`
	Name     string `json:"name" binding:"required,max=256"`
	Region   string `json:"region,omitempty"`
	Timezone string `json:"timezone,omitempty"`
	Status   string `json:"status,omitempty"`
}

// 更新門市
type UpdateStoreDto struct {
	Code     *string `json:"code,omitempty"`
	Name     *string `json:"name,omitempty"`
	Region   *string `json:"region,omitempty"`
	Timezone *string `json:"timezone,omitempty"`
	Status   *string `json:"status,omitempty"`
}

type StoreResponseDto struct {
	ID        string    `json:"id"`
	TenantID  string    `json:"tenantId"`
	Code      string    `json:"code"`
	Name      string    `json:"name"`
	Region    string    `json:"region,omitempty"`
	Timezone  string    `json:"timezone,omitempty"`
	Status    string    `json:"status"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}
