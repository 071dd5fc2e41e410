package dto

import "time"

// 建立員工
type CreateEmployeeDto struct {
	TenantID       string `json:"tenantId" binding:"required"`
	ExternalID     string `json:"externalID,omitempty"` // 外部人資系統 ID
	DisplayName    string `json:"displayName" binding:"required,max=128"`
	JobTitle       string `json:"jobTitle,omitempty"`
	PrimaryStoreID string `json:"primaryStoreId,omitempty"`
	Status         string `json:"status,omitempty"`
}

// 更新員工
type UpdateEmployeeDto struct {
	ExternalID     *string `json:"externalID,omitempty"`
	DisplayName    *string `json:"displayName,omitempty"`
	JobTitle       *string `json:"jobTitle,omitempty"`
	PrimaryStoreID *string `json:"primaryStoreId,omitempty"`
	Status         *string `json:"status,omitempty"`
}

type EmployeeResponseDto struct {
	ID             string    `json:"id"`
	TenantID       string    `json:"tenantId"`
	ExternalID     string    `json:"externalID,omitempty"`
	DisplayName    string    `json:"displayName"`
	JobTitle       string    `json:"jobTitle,omitempty"`
	PrimaryStoreID string    `json:"primaryStoreId,omitempty"`
	Status         string    `json:"status"`
	CreatedAt      time.Time `json:"createdAt"`
	UpdatedAt      time.Time `json:"updatedAt"`
}
