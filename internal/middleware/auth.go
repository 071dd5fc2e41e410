package middleware

import (
	"strings"

	"shiftdesk/config"
	"shiftdesk/internal/core"
	cErr "shiftdesk/internal/pkg/error"
	"shiftdesk/internal/pkg/response"
	"shiftdesk/internal/telemetry"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v4"
	"go.uber.org/zap"
)

type Auth struct {
	logger *zap.Logger
	trace  *telemetry.Trace
	config *config.Configuration
}

func NewAuth(
	logger *zap.Logger,
	trace *telemetry.Trace,
	config *config.Configuration,
) *Auth {
	return &Auth{
		logger: logger,
		trace:  trace,
		config: config,
	}
}

// Handler 驗證外部身分服務簽發的 Bearer JWT，並將識別欄位放入 gin context
func (m *Auth) Handler() gin.HandlerFunc {
	return func(c *gin.Context) {
		_, span, end := m.trace.WithSpan(c.Request.Context(), string(core.SpanAuthMiddleware))
		var cause error = nil

		header := c.GetHeader("Authorization")
		if header == "" || !strings.HasPrefix(header, "Bearer ") {
			m.trace.ApplyTraceAttributes(span, core.TraceAuthMeta{
				Status: "missing_bearer_token",
			})
			cause = cErr.Unauthorized("missing bearer token")
			response.AbortWithError(c, cause)
			end(cause)
			return
		}
		tokenString := strings.TrimPrefix(header, "Bearer ")

		claims := &core.Claims{}
		token, err := jwt.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (interface{}, error) {
			if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
				return nil, jwt.ErrSignatureInvalid
			}
			return []byte(m.config.App.SecretKey), nil
		})
		if err != nil || !token.Valid {
			m.trace.ApplyTraceAttributes(span, core.TraceAuthMeta{
				Status: "invalid_token",
			})
			m.logger.Warn("[Auth] token rejected", zap.Error(err))
			cause = cErr.Unauthorized("invalid token")
			response.AbortWithError(c, cause)
			end(cause)
			return
		}
		if claims.EmployeeID == "" {
			m.trace.ApplyTraceAttributes(span, core.TraceAuthMeta{
				Status: "missing_employee_claim",
			})
			cause = cErr.Unauthorized("token missing employee claim")
			response.AbortWithError(c, cause)
			end(cause)
			return
		}

		// 成功
		m.trace.ApplyTraceAttributes(span, core.TraceAuthMeta{
			EmployeeID: claims.EmployeeID,
			TenantID:   claims.TenantID,
			Status:     "success",
		})
		c.Set("employeeID", claims.EmployeeID)
		c.Set("tenantID", claims.TenantID)
		end(nil)
		c.Next()
	}
}
