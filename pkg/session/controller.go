package session

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/signal"
	"strings"
	"sync"
	"sync/atomic"
	"syscall"
	"time"

	"hybrid-rag-chat/internal/pkg/logger"

	"github.com/fatih/color"
)

// State models the controller lifecycle. There is no transition back to
// StateRunning.
type State int32

const (
	StateRunning State = iota
	StateShuttingDown
	StateTerminated
)

const (
	defaultShutdownTimeout  = 5 * time.Second
	defaultPoolCloseTimeout = 3 * time.Second
)

// Answerer is the synthesis pipeline as the controller sees it.
type Answerer interface {
	Answer(ctx context.Context, question string) (string, error)
}

type Option func(*Controller)

func WithInput(r io.Reader) Option {
	return func(c *Controller) { c.in = r }
}

func WithOutput(w io.Writer) Option {
	return func(c *Controller) { c.out = w }
}

func WithTimeouts(shutdown, poolClose time.Duration) Option {
	return func(c *Controller) {
		c.shutdownTimeout = shutdown
		c.poolCloseTimeout = poolClose
	}
}

// Controller drives the interactive question/answer loop and owns the close
// authority over the connection pool and graph driver. Everything else only
// borrows those handles.
type Controller struct {
	chain      Answerer
	closePool  func() error
	closeGraph func(ctx context.Context) error
	logger     logger.ILogger

	in  io.Reader
	out io.Writer

	shutdownTimeout  time.Duration
	poolCloseTimeout time.Duration

	state    atomic.Int32
	once     sync.Once
	shutdown chan struct{} // closed exactly once by RequestShutdown
}

// NewController wires the controller. chain may be nil when initialization
// already failed and only Abort will be called.
func NewController(chain Answerer, closePool func() error, closeGraph func(ctx context.Context) error, log logger.ILogger, opts ...Option) *Controller {
	c := &Controller{
		chain:            chain,
		closePool:        closePool,
		closeGraph:       closeGraph,
		logger:           log,
		in:               os.Stdin,
		out:              os.Stdout,
		shutdownTimeout:  defaultShutdownTimeout,
		poolCloseTimeout: defaultPoolCloseTimeout,
		shutdown:         make(chan struct{}),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

func (c *Controller) State() State {
	return State(c.state.Load())
}

// RequestShutdown flips the controller into StateShuttingDown exactly once
// and closes the shutdown channel observed by the loop. Safe to call from
// any goroutine, any number of times.
func (c *Controller) RequestShutdown(reason string) {
	c.once.Do(func() {
		c.state.Store(int32(StateShuttingDown))
		c.logger.Info("session", "shutdown requested", map[string]interface{}{
			"reason": reason,
		})
		close(c.shutdown)
	})
}

// Run drives the chat loop until a shutdown trigger fires, then performs
// cleanup. Returns the process exit code: 0 for a clean shutdown, 1 for any
// shutdown-path failure or forced timeout.
func (c *Controller) Run(ctx context.Context) int {
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM, syscall.SIGHUP)
	defer signal.Stop(sigCh)
	go func() {
		select {
		case sig := <-sigCh:
			fmt.Fprintf(c.out, "\nReceived %s signal. Shutting down...\n", sig)
			c.RequestShutdown(sig.String())
		case <-c.shutdown:
		}
	}()

	lines := readLines(c.in)

	prompt := color.New(color.FgCyan, color.Bold).Sprint("You:")
	assistantLabel := color.New(color.FgGreen).Sprint("Assistant:")

loop:
	for c.State() == StateRunning {
		fmt.Fprintf(c.out, "%s ", prompt)
		// The pending read races the shutdown signal, so a shutdown request
		// interrupts an in-progress prompt instead of waiting for the next
		// line. An LLM call already in flight is allowed to finish.
		select {
		case <-c.shutdown:
			break loop
		case <-ctx.Done():
			c.RequestShutdown("context canceled")
			break loop
		case line, ok := <-lines:
			if !ok {
				fmt.Fprintln(c.out)
				c.RequestShutdown("end of input")
				break loop
			}

			query := strings.TrimSpace(line)
			if query == "" {
				continue
			}
			if strings.EqualFold(query, "exit") {
				c.RequestShutdown("exit command")
				break loop
			}

			fmt.Fprintln(c.out, "Waiting for assistant to respond...")

			answer, err := c.chain.Answer(ctx, query)
			if err != nil {
				if c.State() != StateRunning {
					break loop
				}
				// Synthesis failures end the turn, not the session.
				c.logger.Error("session", "answer synthesis failed", map[string]interface{}{
					"error": err.Error(),
				})
				fmt.Fprintf(c.out, "\nAn error occurred: %v\n", err)
				continue
			}

			fmt.Fprintf(c.out, "\n%s\n%s\n\n", assistantLabel, answer)
		}
	}

	c.RequestShutdown("loop exit")
	return c.cleanup()
}

// Abort runs the shutdown sequence without ever starting the loop. Used when
// initialization fails after connections are already open.
func (c *Controller) Abort(reason string) int {
	c.RequestShutdown(reason)
	return c.cleanup()
}

// cleanup closes the connection pool and graph driver under a bounded
// ceiling. The pool close itself races a shorter inner timeout. Partial
// cleanup is acceptable: a failed step reports and exits without retrying.
func (c *Controller) cleanup() int {
	defer c.state.Store(int32(StateTerminated))

	deadline := time.Now().Add(c.shutdownTimeout)
	forced := time.NewTimer(c.shutdownTimeout)
	defer forced.Stop()

	done := make(chan int, 1)
	go func() {
		if err := c.closePoolBounded(); err != nil {
			c.logger.Error("session", "error during shutdown", map[string]interface{}{
				"step":  "close database pool",
				"error": err.Error(),
			})
			done <- 1
			return
		}

		// The graph close shares the ceiling's remaining budget, so its
		// context expires no later than the forced timer fires.
		graphCtx, cancelGraph := context.WithDeadline(context.Background(), deadline)
		defer cancelGraph()
		if err := c.closeGraph(graphCtx); err != nil {
			c.logger.Error("session", "error during shutdown", map[string]interface{}{
				"step":  "close graph driver",
				"error": err.Error(),
			})
			done <- 1
			return
		}

		done <- 0
	}()

	select {
	case code := <-done:
		if code == 0 {
			fmt.Fprintln(c.out, "Connections closed. Exiting.")
		}
		return code
	case <-forced.C:
		c.logger.Error("session", "forced shutdown after timeout", nil)
		return 1
	}
}

func (c *Controller) closePoolBounded() error {
	errCh := make(chan error, 1)
	go func() { errCh <- c.closePool() }()

	select {
	case err := <-errCh:
		return err
	case <-time.After(c.poolCloseTimeout):
		return errors.New("database shutdown timeout")
	}
}

// readLines pumps input lines onto a channel so the loop can select between
// a pending read and the shutdown signal. The channel closes on EOF.
func readLines(r io.Reader) <-chan string {
	lines := make(chan string)
	go func() {
		defer close(lines)
		scanner := bufio.NewScanner(r)
		for scanner.Scan() {
			lines <- scanner.Text()
		}
	}()
	return lines
}
