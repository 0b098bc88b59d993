package model

// ProcessStatus represents the lifecycle state of a launched companion process
type ProcessStatus string

const (
	// ProcessStatusIdle means nothing has been launched yet
	ProcessStatusIdle ProcessStatus = "Idle"

	// ProcessStatusStarting means the process is being spawned
	ProcessStatusStarting ProcessStatus = "Starting"

	// ProcessStatusRunning means the process is alive and streaming output
	ProcessStatusRunning ProcessStatus = "Running"

	// ProcessStatusStopping means a stop was requested and the process has not exited yet
	ProcessStatusStopping ProcessStatus = "Stopping"

	// ProcessStatusExited means the process finished, was stopped, or failed to start
	ProcessStatusExited ProcessStatus = "Exited"
)

// String returns the string representation of ProcessStatus
func (ps ProcessStatus) String() string {
	return string(ps)
}

// IsActive returns true if the process owns a live child
func (ps ProcessStatus) IsActive() bool {
	return ps == ProcessStatusStarting || ps == ProcessStatusRunning || ps == ProcessStatusStopping
}

// IsFinished returns true if the process is gone
func (ps ProcessStatus) IsFinished() bool {
	return ps == ProcessStatusExited
}
