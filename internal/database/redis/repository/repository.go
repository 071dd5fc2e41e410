package repository

import (
	"github.com/google/wire"
)

// 統一管理所有 Redis repository
type RedisRepository struct {
	shiftLockRepo *ShiftLockRepository
}

// 建立 Redis repository 物件
func NewRedisRepository(
	shiftLockRepo *ShiftLockRepository,
) *RedisRepository {
	return &RedisRepository{
		shiftLockRepo: shiftLockRepo,
	}
}

// Wire 依賴提供
var ProviderSet = wire.NewSet(
	NewShiftLockRepository,
	NewRedisRepository)
