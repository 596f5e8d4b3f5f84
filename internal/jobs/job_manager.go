package jobs

import (
	"fmt"
)

// Job is a startable background task.
type Job interface {
	Start() error
	Stop()
}

// JobManager coordinates a set of scheduled jobs and provides a unified
// interface to start and stop them together.
type JobManager struct {
	jobs []Job
}

// NewJobManager creates a manager over the given jobs. The composition root
// decides which jobs a process runs.
func NewJobManager(jobs ...Job) *JobManager {
	return &JobManager{jobs: jobs}
}

// StartAll starts every job in order. If one fails to start, the jobs
// already running are stopped again.
func (jm *JobManager) StartAll() error {
	for i, job := range jm.jobs {
		if err := job.Start(); err != nil {
			for _, started := range jm.jobs[:i] {
				started.Stop()
			}
			return fmt.Errorf("failed to start job %d: %w", i, err)
		}
	}
	return nil
}

// StopAll stops all jobs gracefully, last started first.
func (jm *JobManager) StopAll() {
	for i := len(jm.jobs) - 1; i >= 0; i-- {
		jm.jobs[i].Stop()
	}
}
