package dto

import (
	"time"

	"shiftdesk/internal/pkg/summary"
)

// 勾選 / 取消勾選清單任務；重複送同一狀態為冪等 no-op
type ToggleTaskDto struct {
	Completed *bool `json:"completed" binding:"required"`
}

type TaskResponseDto struct {
	ID          string     `json:"id"`
	ShiftID     string     `json:"shiftId"`
	Title       string     `json:"title"`
	Details     string     `json:"details,omitempty"`
	SortOrder   int        `json:"sortOrder"`
	Completed   bool       `json:"completed"`
	CompletedAt *time.Time `json:"completedAt,omitempty"`
}

type ListTasksResponseDto struct {
	Items    []TaskResponseDto    `json:"items"`
	Progress summary.TaskProgress `json:"progress"`
}

// 建立門市清單模板（管理端）
type CreateTaskTemplateDto struct {
	StoreID   string `json:"storeId" binding:"required"`
	Title     string `json:"title" binding:"required,max=256"`
	Details   string `json:"details,omitempty" binding:"max=2000"`
	SortOrder int    `json:"sortOrder,omitempty"`
}

type TaskTemplateResponseDto struct {
	ID        string    `json:"id"`
	StoreID   string    `json:"storeId"`
	Title     string    `json:"title"`
	Details   string    `json:"details,omitempty"`
	SortOrder int       `json:"sortOrder"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}
