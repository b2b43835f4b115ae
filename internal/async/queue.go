package async

import (
	"context"

	"salestracker/internal/intake"
)

// Job wraps one submission for background processing. Extend as needed
// later (retry policy, priority, etc).
type Job struct {
	Submission intake.Submission
	Force      bool // enqueue even if deduplicated
}

type Queue interface {
	Enqueue(ctx context.Context, job Job) error
	Shutdown(ctx context.Context)
}
