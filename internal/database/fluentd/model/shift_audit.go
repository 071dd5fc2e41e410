package model

// ShiftAuditLog 班次事件的外部稽核鏡像；journal 寫入成功後以 best-effort 送出
type ShiftAuditLog struct {
	EventID    string         `bson:"event_id" json:"event_id"`
	TenantID   string         `bson:"tenant_id,omitempty" json:"tenant_id,omitempty"`
	StoreID    string         `bson:"store_id" json:"store_id"`
	ShiftID    string         `bson:"shift_id" json:"shift_id"`
	EmployeeID string         `bson:"employee_id" json:"employee_id"`
	Type       string         `bson:"type" json:"type"`
	Payload    map[string]any `bson:"payload,omitempty" json:"payload,omitempty"`
	Version    string         `bson:"version,omitempty" json:"version,omitempty"`
	LoggedAt   string         `bson:"logged_at" json:"logged_at"`
}
