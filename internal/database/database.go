package database

import (
	client "shiftdesk/internal/database/client"
	fluentdRepo "shiftdesk/internal/database/fluentd/repository"
	mongoRepo "shiftdesk/internal/database/mongodb/repository"
	redisRepo "shiftdesk/internal/database/redis/repository"

	"github.com/google/wire"
)

// ProviderSet 定義所有 DB Client 的依賴
var ProviderSet = wire.NewSet(
	client.NewMongoClient,
	client.NewRedisClient,
	client.NewFluentdClient,
	mongoRepo.ProviderSet,
	redisRepo.ProviderSet,
	fluentdRepo.ProviderSet,
)
