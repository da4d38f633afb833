package jobs

import (
	"fmt"

	"github.com/robfig/cron/v3"
	"go.uber.org/zap"

	"blankquiz/internal/scoring"
	"blankquiz/internal/topics"
)

// ActivityReporterJob periodically logs per-topic attempt counts, giving a
// cheap view of quiz activity without a dashboard.
type ActivityReporterJob struct {
	ledger    *scoring.Ledger
	directory *topics.Directory
	logger    *zap.Logger
	schedule  string
	cron      *cron.Cron
}

func NewActivityReporterJob(ledger *scoring.Ledger, directory *topics.Directory, logger *zap.Logger, schedule string) *ActivityReporterJob {
	return &ActivityReporterJob{
		ledger:    ledger,
		directory: directory,
		logger:    logger,
		schedule:  schedule,
		cron:      cron.New(),
	}
}

// Start begins the scheduled report job
func (j *ActivityReporterJob) Start() error {
	_, err := j.cron.AddFunc(j.schedule, func() {
		if err := j.RunReport(); err != nil {
			j.logger.Error("Activity report failed", zap.Error(err))
		}
	})
	if err != nil {
		return fmt.Errorf("failed to schedule activity report: %w", err)
	}

	j.cron.Start()
	j.logger.Info("Activity reporter started", zap.String("schedule", j.schedule))
	return nil
}

// Stop stops the scheduled report job
func (j *ActivityReporterJob) Stop() {
	if j.cron != nil {
		j.cron.Stop()
	}
}

// RunReport performs a single report run
func (j *ActivityReporterJob) RunReport() error {
	activity, err := j.ledger.ActivityByTopic()
	if err != nil {
		return err
	}

	if len(activity) == 0 {
		j.logger.Info("No quiz activity recorded yet")
		return nil
	}

	for _, row := range activity {
		name, err := j.directory.Resolve(row.TopicID)
		if err != nil {
			// Attempts are recorded against unvalidated topic ids, so rows
			// may reference topics the directory has never seen.
			name = "unknown"
		}
		j.logger.Info("Topic activity",
			zap.Uint("topic_id", row.TopicID),
			zap.String("topic", name),
			zap.Int64("attempted", row.Attempted),
			zap.Int64("correct", row.Correct))
	}
	return nil
}
