package executor

import "context"

// Status tracks one submission through the execution state machine.
// Compiling and Running early-exit to Failed on compile errors and
// timeouts; per-test failures do not fail the batch.
type Status string

const (
	StatusPending   Status = "pending"
	StatusCompiling Status = "compiling"
	StatusRunning   Status = "running"
	StatusCompleted Status = "completed"
	StatusFailed    Status = "failed"
)

// StatusUpdate carries intermediate execution status data.
type StatusUpdate struct {
	Language   string
	Status     Status
	TotalTests int
}

// StatusReporter receives intermediate status updates. Implementations
// must not block; reporting failures are ignored.
type StatusReporter interface {
	ReportStatus(ctx context.Context, update StatusUpdate)
}

// NoopStatusReporter discards all updates.
type NoopStatusReporter struct{}

func (NoopStatusReporter) ReportStatus(context.Context, StatusUpdate) {}
