// Package poller drives the fetch → validate → format → notify cycle. It is
// the single recovery point: component errors propagate here, become one
// operator-facing failure message, and never stop the loop.
package poller

import (
	"context"
	"sync"
	"time"

	"hwbot/internal/practicum"
	logx "hwbot/pkg/logx"
)

// failurePrefix opens every operator-facing failure notification. The text
// is part of the bot's user contract, so it stays in Russian like the
// verdicts.
const failurePrefix = "Сбой в работе программы: "

type Client interface {
	HomeworkStatuses(ctx context.Context, fromDate int64) (*practicum.Response, error)
}

type Notifier interface {
	Send(ctx context.Context, text string) error
}

type Config struct {
	// Interval is the fixed sleep between cycles, applied after success and
	// failure alike. A failure-path shortcut here would turn an outage into
	// a tight hammering loop.
	Interval time.Duration
}

// Snapshot is a point-in-time view of the loop for the heartbeat digest.
type Snapshot struct {
	Cursor      int64
	Cycles      uint64
	Failures    uint64
	LastSuccess time.Time
	LastMessage string
	LastError   string
}

type Service struct {
	client Client
	notif  Notifier
	log    logx.Logger

	mu  sync.Mutex
	cfg Config

	cursor int64
	// lastError suppresses duplicate consecutive failure notifications.
	// It is cleared only by process restart or by a differing new error.
	lastError string

	cycles      uint64
	failures    uint64
	lastSuccess time.Time
	lastMessage string
}

func New(cfg Config, client Client, notif Notifier, log logx.Logger) *Service {
	if cfg.Interval <= 0 {
		cfg.Interval = 10 * time.Minute
	}
	return &Service{
		client: client,
		notif:  notif,
		log:    log,
		cfg:    cfg,
		cursor: time.Now().Unix(),
	}
}

// Apply updates the poll interval; takes effect on the next sleep.
func (s *Service) Apply(cfg Config) {
	if cfg.Interval <= 0 {
		return
	}
	s.mu.Lock()
	s.cfg = cfg
	s.mu.Unlock()
}

func (s *Service) interval() time.Duration {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.cfg.Interval
}

func (s *Service) Snapshot() Snapshot {
	s.mu.Lock()
	defer s.mu.Unlock()
	return Snapshot{
		Cursor:      s.cursor,
		Cycles:      s.cycles,
		Failures:    s.failures,
		LastSuccess: s.lastSuccess,
		LastMessage: s.lastMessage,
		LastError:   s.lastError,
	}
}

// Run executes cycles until ctx is cancelled. It always returns nil: cycle
// failures are reported to the chat, not to the supervisor.
func (s *Service) Run(ctx context.Context) error {
	s.log.Info("poll loop started", logx.Duration("interval", s.interval()), logx.Int64("cursor", s.Snapshot().Cursor))
	timer := time.NewTimer(0)
	defer timer.Stop()

	// Drain the immediate first tick so the first cycle runs right away.
	<-timer.C
	for {
		s.Cycle(ctx)

		timer.Reset(s.interval())
		select {
		case <-ctx.Done():
			s.log.Info("poll loop stopped")
			return nil
		case <-timer.C:
		}
	}
}

// Cycle runs one fetch–validate–format–notify pass. Exported so tests drive
// the loop without sleeping.
func (s *Service) Cycle(ctx context.Context) {
	err := s.runCycle(ctx)
	if err == nil || ctx.Err() != nil {
		return
	}
	s.reportFailure(ctx, err)
}

func (s *Service) runCycle(ctx context.Context) error {
	s.mu.Lock()
	cursor := s.cursor
	s.mu.Unlock()

	resp, err := s.client.HomeworkStatuses(ctx, cursor)
	if err != nil {
		return err
	}
	homeworks, err := practicum.CheckResponse(resp)
	if err != nil {
		return err
	}

	var sent string
	if len(homeworks) > 0 {
		// Latest-first ordering is assumed from the API; only the newest
		// submission is reported.
		msg, err := practicum.ParseStatus(homeworks[0])
		if err != nil {
			return err
		}
		if err := s.notif.Send(ctx, msg); err != nil {
			return err
		}
		sent = msg
	} else {
		s.log.Info("no homework status changes", logx.Int64("cursor", cursor))
	}

	next, err := resp.CurrentDateUnix()
	if err != nil {
		return err
	}

	s.mu.Lock()
	s.cursor = next
	s.cycles++
	s.lastSuccess = time.Now()
	if sent != "" {
		s.lastMessage = sent
	}
	s.mu.Unlock()
	return nil
}

// reportFailure sends the failure text unless it repeats the previous one.
// The last-error cache updates either way, and a delivery failure here is
// only logged — escalating it would just produce another identical cycle
// failure.
func (s *Service) reportFailure(ctx context.Context, cause error) {
	msg := failurePrefix + cause.Error()

	s.mu.Lock()
	repeat := msg == s.lastError
	s.lastError = msg
	s.failures++
	s.mu.Unlock()

	if repeat {
		s.log.Debug("cycle failure repeated; notification suppressed", logx.Err(cause))
		return
	}

	s.log.Error("cycle failed", logx.Err(cause), logx.String("kind", string(practicum.KindOf(cause))))
	if err := s.notif.Send(ctx, msg); err != nil {
		s.log.Error("failure notification not delivered", logx.Err(err))
	}
}
