package jobs

import (
	"context"
	"log/slog"

	"github.com/robfig/cron/v3"

	"payroll/internal/core/ports"
)

// OrderReportJob periodically logs the number of orders per status.
// Runs every minute.
type OrderReportJob struct {
	orders ports.OrderRepository
	cron   *cron.Cron
	logger *slog.Logger
}

// NewOrderReportJob creates a new job reporting order counts by status.
func NewOrderReportJob(orders ports.OrderRepository, logger *slog.Logger) *OrderReportJob {
	return &OrderReportJob{
		orders: orders,
		cron:   cron.New(),
		logger: logger.With("component", "order_report_job"),
	}
}

// Start begins the order report job to run every minute.
func (j *OrderReportJob) Start() error {
	_, err := j.cron.AddFunc("@every 1m", func() {
		ctx := context.Background()
		if err := j.Report(ctx); err != nil {
			j.logger.ErrorContext(ctx, "Order report job failed", "error", err)
		}
	})

	if err != nil {
		return err
	}

	j.cron.Start()
	j.logger.InfoContext(context.Background(), "Order report job started (running every minute)")
	return nil
}

// Report counts orders by status and logs one line with the totals.
func (j *OrderReportJob) Report(ctx context.Context) error {
	all, err := j.orders.FindAll(ctx)
	if err != nil {
		return err
	}

	byStatus := make(map[string]int)
	for _, o := range all {
		byStatus[o.Status().String()]++
	}

	j.logger.InfoContext(ctx, "Order report",
		"total", len(all),
		"in_progress", byStatus["IN_PROGRESS"],
		"completed", byStatus["COMPLETED"],
		"cancelled", byStatus["CANCELLED"],
	)
	return nil
}

// Stop stops the order report job.
func (j *OrderReportJob) Stop() {
	j.cron.Stop()
	j.logger.InfoContext(context.Background(), "Order report job stopped")
}
