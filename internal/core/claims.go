package core

import "github.com/golang-jwt/jwt/v4"

// Claims 由外部身分服務簽發；這裡只負責驗簽與取出識別欄位
type Claims struct {
	EmployeeID string `json:"employee_id"`
	TenantID   string `json:"tenant_id"`
	jwt.RegisteredClaims
}
