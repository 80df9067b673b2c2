package notifier

import (
	"context"
	"errors"
	"testing"

	logx "hwbot/pkg/logx"
)

type fakeSender struct {
	chatID int64
	texts  []string
	err    error
}

func (f *fakeSender) SendText(_ context.Context, chatID int64, text string) error {
	if f.err != nil {
		return f.err
	}
	f.chatID = chatID
	f.texts = append(f.texts, text)
	return nil
}

func TestSendDeliversToConfiguredChat(t *testing.T) {
	t.Parallel()
	sender := &fakeSender{}
	s := New(Config{ChatID: 42, RatePerSec: 10}, sender, logx.Nop())

	if err := s.Send(context.Background(), "привет"); err != nil {
		t.Fatalf("Send error: %v", err)
	}
	if sender.chatID != 42 {
		t.Fatalf("chatID = %d, want 42", sender.chatID)
	}
	if len(sender.texts) != 1 || sender.texts[0] != "привет" {
		t.Fatalf("unexpected sends: %v", sender.texts)
	}
}

func TestSendWrapsTransportFailure(t *testing.T) {
	t.Parallel()
	sender := &fakeSender{err: errors.New("flood wait")}
	s := New(Config{ChatID: 42, RatePerSec: 10}, sender, logx.Nop())

	err := s.Send(context.Background(), "x")
	if !errors.Is(err, ErrDeliveryUnavailable) {
		t.Fatalf("err = %v, want ErrDeliveryUnavailable", err)
	}
}

func TestSendRespectsCancelledContext(t *testing.T) {
	t.Parallel()
	sender := &fakeSender{}
	// Zero tokens available immediately after two quick sends at 1/sec.
	s := New(Config{ChatID: 1, RatePerSec: 1}, sender, logx.Nop())

	ctx, cancel := context.WithCancel(context.Background())
	_ = s.Send(ctx, "a")
	cancel()
	if err := s.Send(ctx, "b"); err == nil {
		t.Fatal("expected error from cancelled context")
	}
}

func TestApplyDefaultsRate(t *testing.T) {
	t.Parallel()
	s := New(Config{ChatID: 7}, &fakeSender{}, logx.Nop())
	if got := s.ChatID(); got != 7 {
		t.Fatalf("ChatID = %d, want 7", got)
	}
	// A zero rate must not mean "never send".
	if err := s.Send(context.Background(), "x"); err != nil {
		t.Fatalf("Send error: %v", err)
	}
}
