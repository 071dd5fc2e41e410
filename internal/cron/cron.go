package cron

import (
	"context"
	"time"

	"shiftdesk/config"
	"shiftdesk/internal/service"

	"github.com/google/wire"
	"github.com/robfig/cron/v3"
	"go.uber.org/zap"
)

var ProviderSet = wire.NewSet(NewCron)

type Cron struct {
	logger       *zap.Logger
	config       *config.Configuration
	shiftService *service.ShiftService
	server       *cron.Cron
}

// NewCron .
func NewCron(logger *zap.Logger, config *config.Configuration, shiftService *service.ShiftService) *Cron {
	server := cron.New(
		cron.WithSeconds(),
	)

	return &Cron{
		logger:       logger,
		config:       config,
		shiftService: shiftService,
		server:       server,
	}
}

func (c *Cron) Run() error {
	// 每小時掃一次超時未收班的班次
	if _, err := c.server.AddFunc("0 0 * * * *", c.watchStaleShifts); err != nil {
		return err
	}

	c.server.Start()
	return nil
}

func (c *Cron) Stop(ctx context.Context) error {
	c.server.Stop()
	return nil
}

func (c *Cron) watchStaleShifts() {
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	hours := c.config.App.StaleShiftHours
	if hours <= 0 {
		hours = 24
	}
	stale, err := c.shiftService.ListStaleShifts(ctx, time.Duration(hours)*time.Hour)
	if err != nil {
		c.logger.Warn("[Cron] stale shift scan failed", zap.Error(err))
		return
	}
	for _, shift := range stale {
		c.logger.Warn("[Cron] shift still open past threshold",
			zap.String("shiftId", shift.ID),
			zap.String("storeId", shift.StoreID),
			zap.String("employeeId", shift.EmployeeID),
			zap.Time("startedAt", shift.StartedAt),
			zap.Int("thresholdHours", hours),
		)
	}
}
