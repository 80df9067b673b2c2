// Package heartbeat sends an optional cron-scheduled liveness digest to the
// notification chat, so a silent bot can be told apart from a dead one.
package heartbeat

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/robfig/cron/v3"

	"hwbot/internal/poller"
	logx "hwbot/pkg/logx"
)

type Notifier interface {
	Send(ctx context.Context, text string) error
}

// StatusSource is satisfied by the poller service.
type StatusSource interface {
	Snapshot() poller.Snapshot
}

type Config struct {
	Enabled bool
	// Schedule is a standard 5-field cron spec.
	Schedule string
}

// ValidateSchedule rejects malformed cron specs at config-load time instead
// of at the first misfire.
func ValidateSchedule(spec string) error {
	if spec == "" {
		return nil
	}
	_, err := cron.ParseStandard(spec)
	return err
}

type Service struct {
	src   StatusSource
	notif Notifier
	log   logx.Logger

	mu     sync.Mutex
	cfg    Config
	cron   *cron.Cron
	runCtx context.Context
}

func New(cfg Config, src StatusSource, notif Notifier, log logx.Logger) *Service {
	return &Service{src: src, notif: notif, log: log, cfg: cfg}
}

func (s *Service) Start(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.runCtx = ctx
	return s.startLocked()
}

func (s *Service) startLocked() error {
	if s.cron != nil || !s.cfg.Enabled || s.cfg.Schedule == "" {
		return nil
	}
	c := cron.New()
	if _, err := c.AddFunc(s.cfg.Schedule, s.emit); err != nil {
		return fmt.Errorf("heartbeat.schedule: %w", err)
	}
	c.Start()
	s.cron = c
	s.log.Info("heartbeat enabled", logx.String("schedule", s.cfg.Schedule))
	return nil
}

func (s *Service) Stop(ctx context.Context) {
	s.mu.Lock()
	c := s.cron
	s.cron = nil
	s.mu.Unlock()

	if c == nil {
		return
	}
	done := c.Stop().Done()
	select {
	case <-done:
	case <-ctx.Done():
	}
}

// Apply reschedules on config hot reload.
func (s *Service) Apply(cfg Config) {
	s.mu.Lock()
	ctx := s.runCtx
	same := cfg == s.cfg
	s.mu.Unlock()
	if same || ctx == nil {
		return
	}

	s.Stop(ctx)
	s.mu.Lock()
	s.cfg = cfg
	err := s.startLocked()
	s.mu.Unlock()
	if err != nil {
		s.log.Warn("heartbeat reschedule failed", logx.Err(err))
	}
}

func (s *Service) emit() {
	s.mu.Lock()
	ctx := s.runCtx
	s.mu.Unlock()
	if ctx == nil || ctx.Err() != nil {
		return
	}

	sctx, cancel := context.WithTimeout(ctx, 30*time.Second)
	defer cancel()
	if err := s.notif.Send(sctx, s.digest()); err != nil {
		s.log.Warn("heartbeat not delivered", logx.Err(err))
	}
}

func (s *Service) digest() string {
	snap := s.src.Snapshot()
	lastPoll := "ещё не было"
	if !snap.LastSuccess.IsZero() {
		lastPoll = snap.LastSuccess.Format("2006-01-02 15:04:05")
	}
	msg := fmt.Sprintf(
		"Бот работает. Успешных опросов: %d, сбоев: %d. Последний успешный опрос: %s.",
		snap.Cycles, snap.Failures, lastPoll,
	)
	if snap.LastMessage != "" {
		msg += "\nПоследнее уведомление: " + snap.LastMessage
	}
	return msg
}
