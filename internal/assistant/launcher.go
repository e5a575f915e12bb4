// Package assistant launches the external hint assistant as a child process.
package assistant

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/exec"
	"sync"
)

var (
	// ErrDisabled is returned by Launch when no assistant command is configured.
	ErrDisabled = errors.New("assistant disabled")
	// ErrAlreadyRunning is returned by Launch while a previous assistant is alive.
	ErrAlreadyRunning = errors.New("assistant already running")
)

// Launcher tracks at most one assistant process.
type Launcher struct {
	command string
	args    []string
	env     []string

	mu   sync.Mutex
	cmd  *exec.Cmd
	done chan struct{}
}

// New returns a launcher for command. The hint prompt is appended after args
// on each launch. An empty command yields a disabled launcher.
func New(command string, args ...string) *Launcher {
	return &Launcher{command: command, args: args}
}

// SetEnv adds environment entries (KEY=value) for launched processes.
func (l *Launcher) SetEnv(env ...string) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.env = append(l.env, env...)
}

// Enabled reports whether a command is configured.
func (l *Launcher) Enabled() bool {
	return l.command != ""
}

// Launch starts the assistant with prompt as its final argument. It does not
// wait for the process to exit.
func (l *Launcher) Launch(ctx context.Context, prompt string) error {
	if !l.Enabled() {
		return ErrDisabled
	}
	if err := ctx.Err(); err != nil {
		return err
	}

	l.mu.Lock()
	defer l.mu.Unlock()

	if l.aliveLocked() {
		return ErrAlreadyRunning
	}

	args := append(append([]string{}, l.args...), prompt)
	cmd := exec.Command(l.command, args...)
	if len(l.env) > 0 {
		cmd.Env = append(os.Environ(), l.env...)
	}
	if err := cmd.Start(); err != nil {
		return fmt.Errorf("start assistant %q: %w", l.command, err)
	}

	done := make(chan struct{})
	l.cmd = cmd
	l.done = done
	go func() {
		// The exit status is irrelevant; the process is only ever reaped.
		_ = cmd.Wait()
		close(done)
	}()
	return nil
}

// Running reports whether the last launched process is still alive.
func (l *Launcher) Running() bool {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.aliveLocked()
}

func (l *Launcher) aliveLocked() bool {
	if l.done == nil {
		return false
	}
	select {
	case <-l.done:
		return false
	default:
		return true
	}
}

// TerminateAndWait kills the tracked process, if alive, and waits for it to
// be reaped. It is safe to call when nothing was launched.
func (l *Launcher) TerminateAndWait() error {
	l.mu.Lock()
	cmd, done := l.cmd, l.done
	l.mu.Unlock()

	if done == nil {
		return nil
	}

	var err error
	select {
	case <-done:
	default:
		if kerr := cmd.Process.Kill(); kerr != nil && !errors.Is(kerr, os.ErrProcessDone) {
			err = fmt.Errorf("kill assistant: %w", kerr)
		}
		<-done
	}
	return err
}
