// Package notifier owns the message send path: one fixed destination chat,
// rate-limited, no internal retry. Retry semantics live in the poll loop.
package notifier

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"golang.org/x/time/rate"

	logx "hwbot/pkg/logx"
)

// ErrDeliveryUnavailable wraps any transport failure on the send path.
var ErrDeliveryUnavailable = errors.New("telegram delivery unavailable")

// Sender is the transport seam; satisfied by the telebot adapter and by
// fakes in tests.
type Sender interface {
	SendText(ctx context.Context, chatID int64, text string) error
}

type Config struct {
	ChatID int64
	// RatePerSec caps outgoing messages. Telegram throttles bots that
	// exceed roughly one message per second per chat for long.
	RatePerSec int
}

type Service struct {
	mu      sync.Mutex
	cfg     Config
	limiter *rate.Limiter

	sender Sender
	log    logx.Logger
}

func New(cfg Config, sender Sender, log logx.Logger) *Service {
	s := &Service{sender: sender, log: log}
	s.Apply(cfg)
	return s
}

func (s *Service) Apply(cfg Config) {
	if cfg.RatePerSec <= 0 {
		cfg.RatePerSec = 3
	}
	s.mu.Lock()
	s.cfg = cfg
	// Token bucket: burst = rate per sec, so short spikes don't block too hard.
	s.limiter = rate.NewLimiter(rate.Limit(cfg.RatePerSec), cfg.RatePerSec)
	s.mu.Unlock()
}

// ChatID returns the configured destination chat.
func (s *Service) ChatID() int64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.cfg.ChatID
}

// Send delivers text to the configured chat. It blocks on the rate limiter
// (respecting ctx) and does not retry.
func (s *Service) Send(ctx context.Context, text string) error {
	s.mu.Lock()
	chatID := s.cfg.ChatID
	lim := s.limiter
	s.mu.Unlock()

	if err := lim.Wait(ctx); err != nil {
		return err
	}
	if err := s.sender.SendText(ctx, chatID, text); err != nil {
		return fmt.Errorf("%w: %v", ErrDeliveryUnavailable, err)
	}
	s.log.Info("notification sent", logx.Int("chars", len([]rune(text))))
	return nil
}
