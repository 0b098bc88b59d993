package launcher

import (
	"github.com/ytget/workout-viewer/internal/model"
)

// Launcher defines the interface for the companion process launcher.
type Launcher interface {
	Register(name string, builder AppBuilder)
	SetEventCallback(func(Event))
	Start(app string, args ...string) (*model.ProcessRun, error)
	Stop(app string) error
	Shutdown()
	Current() (*model.ProcessRun, bool)
}

// AppSpec describes how to spawn an application
type AppSpec struct {
	Command string
	Args    []string // placed before the arguments passed to Start
	Dir     string
	Env     []string // appended to the current environment
}

// AppBuilder resolves an application spec at launch time
type AppBuilder func() (AppSpec, error)

// EventKind identifies the type of a launcher event
type EventKind int

const (
	// EventStatus carries a lifecycle change and a human readable message
	EventStatus EventKind = iota
	// EventStdout carries one line of the child's standard output
	EventStdout
	// EventStderr carries one line of the child's standard error
	EventStderr
	// EventExited is sent once when the run is over
	EventExited
)

// String returns the string representation of EventKind
func (k EventKind) String() string {
	switch k {
	case EventStatus:
		return "status"
	case EventStdout:
		return "stdout"
	case EventStderr:
		return "stderr"
	case EventExited:
		return "exited"
	default:
		return "unknown"
	}
}

// Event is delivered to the event callback. Run is a snapshot and may be nil
// for events not tied to a run.
type Event struct {
	Kind    EventKind
	App     string
	Message string
	Run     *model.ProcessRun
}
