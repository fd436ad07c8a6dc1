package jobs

import (
	"context"
	"log/slog"

	"storefront/internal/core/application/usecases/queries"

	"github.com/robfig/cron/v3"
)

// DailySummaryJob logs the order board counters once a day at midnight,
// giving operators a running record of order volume and revenue.
type DailySummaryJob struct {
	handler queries.GetOrderStatsQueryHandler
	cron    *cron.Cron
	logger  *slog.Logger
}

// NewDailySummaryJob creates the midnight summary job.
func NewDailySummaryJob(handler queries.GetOrderStatsQueryHandler, logger *slog.Logger) *DailySummaryJob {
	return &DailySummaryJob{
		handler: handler,
		cron:    cron.New(cron.WithSeconds()),
		logger:  logger.With("component", "daily_summary_job"),
	}
}

// Start schedules the summary to run at midnight every day.
func (j *DailySummaryJob) Start() error {
	_, err := j.cron.AddFunc("0 0 0 * * *", func() {
		ctx := context.Background()

		stats, statsErr := j.handler.Handle(ctx, queries.NewGetOrderStatsQuery())
		if statsErr != nil {
			j.logger.ErrorContext(ctx, "Daily summary job failed", "error", statsErr)
			return
		}

		j.logger.InfoContext(ctx, "Daily order summary",
			"totalOrders", stats.TotalOrders,
			"totalRevenue", stats.TotalRevenue,
			"homeDelivery", stats.HomeDeliveryCount,
			"pickupPoint", stats.PickupPointCount,
		)
	})

	if err != nil {
		return err
	}

	j.cron.Start()
	j.logger.InfoContext(context.Background(), "Daily summary job started (running at midnight)")
	return nil
}

// Stop stops the daily summary job.
func (j *DailySummaryJob) Stop() {
	j.cron.Stop()
	j.logger.InfoContext(context.Background(), "Daily summary job stopped")
}
