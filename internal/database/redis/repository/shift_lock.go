package repository

import (
	"context"
	"fmt"
	"time"

	"shiftdesk/internal/core"
	client "shiftdesk/internal/database/client"
	"shiftdesk/internal/telemetry"

	"github.com/redis/go-redis/v9"
)

type ShiftLockRepository struct {
	trace  *telemetry.Trace
	client *redis.Client
}

func NewShiftLockRepository(trace *telemetry.Trace, client *client.RedisClient) *ShiftLockRepository {
	return &ShiftLockRepository{trace: trace, client: client.Client()}
}

// Acquire 以 SETNX 取得 (employeeId, storeId) 開班鎖。
// 鎖只是快速路徑，真正的唯一性由 shifts 的 partial unique index 保證；
// 取不到鎖（acquired=false）代表同一組合的開班正在進行中。
func (repository *ShiftLockRepository) Acquire(
	contextValue context.Context,
	employeeIdentifier string,
	storeIdentifier string,
	timeToLiveSeconds int64,
) (acquired bool, returnedError error) {

	contextValue, span, endSpan := repository.trace.WithSpan(contextValue)
	defer func() { endSpan(returnedError) }()

	traceMetadata := core.TraceShiftLockMeta{
		StoreID:    storeIdentifier,
		EmployeeID: employeeIdentifier,
		TTLSec:     timeToLiveSeconds,
		Op:         "acquire",
	}

	redisKey := repository.buildKey(employeeIdentifier, storeIdentifier)
	expiration := time.Duration(timeToLiveSeconds) * time.Second

	acquired, returnedError = repository.client.SetNX(contextValue, redisKey, 1, expiration).Result()
	traceMetadata.Acquired = acquired
	repository.trace.ApplyTraceAttributes(span, traceMetadata)
	return acquired, returnedError
}

// Release 釋放開班鎖；開班流程結束（成功或失敗）都會呼叫
func (repository *ShiftLockRepository) Release(
	contextValue context.Context,
	employeeIdentifier string,
	storeIdentifier string,
) (returnedError error) {

	contextValue, span, endSpan := repository.trace.WithSpan(contextValue)
	defer func() { endSpan(returnedError) }()

	traceMetadata := core.TraceShiftLockMeta{
		StoreID:    storeIdentifier,
		EmployeeID: employeeIdentifier,
		Op:         "release",
	}
	repository.trace.ApplyTraceAttributes(span, traceMetadata)

	redisKey := repository.buildKey(employeeIdentifier, storeIdentifier)
	returnedError = repository.client.Del(contextValue, redisKey).Err()
	return returnedError
}

// buildKey 建構開班鎖用的 Redis key
func (r *ShiftLockRepository) buildKey(employeeID string, storeID string) string {
	return fmt.Sprintf("%s:%s:%s:%s", core.RedisKeyServerName, core.RedisKeyShiftLock, employeeID, storeID)
}
