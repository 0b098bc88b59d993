package launcher

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"log"
	"os"
	"os/exec"
	"runtime"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/ytget/workout-viewer/internal/model"
	"github.com/ytget/workout-viewer/internal/platform"
)

const (
	// RunIDPrefix prefixes generated run IDs
	RunIDPrefix = "run-"

	// DefaultGracePeriod is how long a stopped child may take to exit before it is killed
	DefaultGracePeriod = 5 * time.Second

	// MaxLineSize bounds a single line of child output
	MaxLineSize = 1024 * 1024
)

// Status messages
const (
	MsgStarted       = "Successfully started %s (PID: %d)."
	MsgStartFailed   = "Failed to start %s: %v"
	MsgExited        = "App exited with code: %d."
	MsgNotRunning    = "No application is currently running."
	MsgStopped       = "Successfully stopped %s."
	MsgNotRegistered = "The selected application is not registered: %s"
)

var (
	// ErrUnknownApp is returned when starting an application that was never registered
	ErrUnknownApp = errors.New("application is not registered")

	// ErrAlreadyRunning is returned when a run is still active
	ErrAlreadyRunning = errors.New("an application is already running")

	// ErrNotRunning is returned when stopping while nothing runs
	ErrNotRunning = errors.New("no application is running")
)

// Option configures a Service
type Option func(*Service)

// WithGracePeriod sets how long Stop waits after the interrupt before killing the child
func WithGracePeriod(d time.Duration) Option {
	return func(s *Service) {
		s.gracePeriod = d
	}
}

// WithDebug echoes child output to the log
func WithDebug(debug bool) Option {
	return func(s *Service) {
		s.debug = debug
	}
}

var _ Launcher = (*Service)(nil)

// Service owns at most one running child process
type Service struct {
	apps map[string]AppBuilder

	runMutex sync.RWMutex
	run      *model.ProcessRun
	cancel   context.CancelFunc
	done     chan struct{}

	onEvent     func(Event) // callback for UI updates
	gracePeriod time.Duration
	debug       bool
	now         func() time.Time
}

// NewService creates a new launcher
func NewService(opts ...Option) *Service {
	s := &Service{
		apps:        make(map[string]AppBuilder),
		gracePeriod: DefaultGracePeriod,
		now:         time.Now,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Register adds or replaces a named application
func (s *Service) Register(name string, builder AppBuilder) {
	s.runMutex.Lock()
	defer s.runMutex.Unlock()
	s.apps[name] = builder
}

// SetEventCallback sets the callback function for launcher events
func (s *Service) SetEventCallback(callback func(Event)) {
	s.runMutex.Lock()
	defer s.runMutex.Unlock()
	s.onEvent = callback
}

// Current returns a snapshot of the latest run, if any
func (s *Service) Current() (*model.ProcessRun, bool) {
	s.runMutex.RLock()
	defer s.runMutex.RUnlock()
	if s.run == nil {
		return nil, false
	}
	return snapshot(s.run), true
}

// Start launches a registered application. Only one run may be active at a time.
func (s *Service) Start(app string, args ...string) (*model.ProcessRun, error) {
	s.runMutex.Lock()
	builder, ok := s.apps[app]
	if !ok {
		s.runMutex.Unlock()
		s.notify(Event{Kind: EventStatus, App: app, Message: fmt.Sprintf(MsgNotRegistered, app)})
		return nil, fmt.Errorf("%w: %s", ErrUnknownApp, app)
	}
	if s.run != nil && s.run.Status.IsActive() {
		current := s.run.AppName
		s.runMutex.Unlock()
		return nil, fmt.Errorf("%w: %s", ErrAlreadyRunning, current)
	}

	run := &model.ProcessRun{
		ID:        generateRunID(),
		AppName:   app,
		Status:    model.ProcessStatusStarting,
		ExitCode:  -1,
		StartedAt: s.now(),
	}
	done := make(chan struct{})
	s.run = run
	s.cancel = nil
	s.done = done
	starting := snapshot(run)
	s.runMutex.Unlock()

	s.notify(Event{Kind: EventStatus, App: app, Run: starting})

	spec, err := builder()
	if err != nil {
		return nil, s.failStart(run, done, err)
	}

	ctx, cancel := context.WithCancel(context.Background())
	cmd := exec.CommandContext(ctx, spec.Command, append(append([]string(nil), spec.Args...), args...)...)
	cmd.Dir = spec.Dir
	if len(spec.Env) > 0 {
		cmd.Env = append(os.Environ(), spec.Env...)
	}
	cmd.Cancel = func() error {
		return interruptProcess(cmd.Process)
	}
	cmd.WaitDelay = s.gracePeriod

	ready := make(chan struct{})
	stdoutReader, stdoutWriter := io.Pipe()
	stderrReader, stderrWriter := io.Pipe()
	cmd.Stdout = stdoutWriter
	cmd.Stderr = stderrWriter

	s.runMutex.Lock()
	run.Args = append([]string(nil), cmd.Args[1:]...)
	s.runMutex.Unlock()

	if err := cmd.Start(); err != nil {
		cancel()
		stdoutWriter.Close()
		stderrWriter.Close()
		return nil, s.failStart(run, done, err)
	}

	var output sync.WaitGroup
	output.Add(2)
	go s.monitorOutput(stdoutReader, app, EventStdout, ready, &output)
	go s.monitorOutput(stderrReader, app, EventStderr, ready, &output)

	s.runMutex.Lock()
	run.PID = cmd.Process.Pid
	stopRequested := run.Status == model.ProcessStatusStopping
	if !stopRequested {
		run.Status = model.ProcessStatusRunning
	}
	s.cancel = cancel
	started := snapshot(run)
	s.runMutex.Unlock()

	log.Printf("started %s (pid %d): %v", app, started.PID, started.Args)
	s.notify(Event{Kind: EventStatus, App: app, Message: fmt.Sprintf(MsgStarted, app, started.PID), Run: started})
	close(ready)

	if stopRequested {
		cancel()
	}

	go s.wait(cmd, run, cancel, done, func() {
		stdoutWriter.Close()
		stderrWriter.Close()
		output.Wait()
	})

	return started, nil
}

// failStart records a launch failure and finishes the run
func (s *Service) failStart(run *model.ProcessRun, done chan struct{}, err error) error {
	defer close(done)

	s.runMutex.Lock()
	run.Status = model.ProcessStatusExited
	run.LastError = err.Error()
	run.FinishedAt = s.now()
	failed := snapshot(run)
	s.runMutex.Unlock()

	log.Printf("failed to start %s: %v", run.AppName, err)
	s.notify(Event{Kind: EventStatus, App: run.AppName, Message: fmt.Sprintf(MsgStartFailed, run.AppName, err), Run: failed})
	s.notify(Event{Kind: EventExited, App: run.AppName, Run: failed})
	return fmt.Errorf("starting %s: %w", run.AppName, err)
}

// Stop asks the running application to exit. It returns once the request is sent;
// the run finishes asynchronously and is reported through events.
func (s *Service) Stop(app string) error {
	s.runMutex.Lock()
	run := s.run
	if run == nil || !run.Status.IsActive() || (app != "" && run.AppName != app) {
		s.runMutex.Unlock()
		s.notify(Event{Kind: EventStatus, App: app, Message: MsgNotRunning})
		return ErrNotRunning
	}
	if run.Status == model.ProcessStatusStopping {
		s.runMutex.Unlock()
		return nil
	}

	run.Status = model.ProcessStatusStopping
	cancel := s.cancel
	stopping := snapshot(run)
	s.runMutex.Unlock()

	s.notify(Event{Kind: EventStatus, App: run.AppName, Run: stopping})

	// A nil cancel means the child is still being spawned; Start will cancel it.
	if cancel != nil {
		cancel()
	}
	return nil
}

// Shutdown stops the active run, if any, and waits for it to exit
func (s *Service) Shutdown() {
	s.runMutex.RLock()
	run := s.run
	done := s.done
	active := run != nil && run.Status.IsActive()
	s.runMutex.RUnlock()

	if !active {
		return
	}
	if err := s.Stop(run.AppName); err != nil && !errors.Is(err, ErrNotRunning) {
		log.Printf("shutdown: stopping %s: %v", run.AppName, err)
	}
	<-done
}

// wait reaps the child and reports the end of the run
func (s *Service) wait(cmd *exec.Cmd, run *model.ProcessRun, cancel context.CancelFunc, done chan struct{}, drain func()) {
	defer close(done)
	defer cancel()

	err := cmd.Wait()
	drain()

	s.runMutex.Lock()
	stopped := run.Status == model.ProcessStatusStopping
	run.Status = model.ProcessStatusExited
	run.FinishedAt = s.now()
	if cmd.ProcessState != nil {
		run.ExitCode = cmd.ProcessState.ExitCode()
	}
	var exitErr *exec.ExitError
	if err != nil && !stopped && !errors.As(err, &exitErr) {
		run.LastError = err.Error()
	}
	if s.run == run {
		s.cancel = nil
	}
	exited := snapshot(run)
	s.runMutex.Unlock()

	log.Printf("%s exited with code %d", run.AppName, exited.ExitCode)
	if stopped {
		s.notify(Event{Kind: EventStatus, App: run.AppName, Message: fmt.Sprintf(MsgStopped, run.AppName), Run: exited})
	}
	s.notify(Event{Kind: EventStatus, App: run.AppName, Message: fmt.Sprintf(MsgExited, exited.ExitCode), Run: exited})
	s.notify(Event{Kind: EventExited, App: run.AppName, Run: exited})
}

// monitorOutput forwards child output line by line
func (s *Service) monitorOutput(r *io.PipeReader, app string, kind EventKind, ready <-chan struct{}, wg *sync.WaitGroup) {
	defer wg.Done()
	defer r.Close()

	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), MaxLineSize)

	<-ready
	for scanner.Scan() {
		line := scanner.Text()
		if s.debug {
			log.Printf("%s %s: %s", app, kind, line)
		}
		s.notify(Event{Kind: kind, App: app, Message: line})
	}
	if err := scanner.Err(); err != nil {
		log.Printf("reading %s %s: %v", app, kind, err)
		// keep draining so the child never blocks on a full pipe
		_, _ = io.Copy(io.Discard, r)
	}
}

// notify calls the event callback if set
func (s *Service) notify(event Event) {
	s.runMutex.RLock()
	callback := s.onEvent
	s.runMutex.RUnlock()

	if callback != nil {
		callback(event)
	}
}

// interruptProcess asks the child to exit. Windows has no interrupt for child processes, so it is killed.
func interruptProcess(p *os.Process) error {
	if p == nil {
		return nil
	}
	if runtime.GOOS == platform.OSWindows {
		return p.Kill()
	}
	return p.Signal(os.Interrupt)
}

func snapshot(run *model.ProcessRun) *model.ProcessRun {
	out := *run
	out.Args = append([]string(nil), run.Args...)
	return &out
}

// generateRunID generates a unique, time ordered run ID using UUID v7
func generateRunID() string {
	id, err := uuid.NewV7()
	if err != nil {
		return fmt.Sprintf(RunIDPrefix+"%d", time.Now().UnixNano())
	}
	return RunIDPrefix + id.String()
}
