package worker

import "time"

// Log messages for worker pool operations
const (
	LogMsgWorkerJobFailed  = "Worker job failed"
	LogMsgWorkerJobPanic   = "Worker job panicked"
	LogMsgWorkerQueueFull  = "Worker queue full, job dropped"
	LogMsgWorkerPoolClosed = "Worker pool stopped, job dropped"
)

// DefaultJobTimeout bounds a single job run when the pool is given no timeout
const DefaultJobTimeout = 5 * time.Minute
