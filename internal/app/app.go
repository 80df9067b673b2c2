package app

import (
	"context"
	"time"

	"github.com/coreos/go-systemd/v22/daemon"

	"hwbot/internal/config"
	"hwbot/internal/heartbeat"
	"hwbot/internal/notifier"
	"hwbot/internal/poller"
	"hwbot/internal/practicum"
	"hwbot/internal/runtime/supervisor"
	telegram "hwbot/internal/transport/telegram"
	logx "hwbot/pkg/logx"
)

type App struct {
	cfgPath string

	cfgm *config.Manager
	sup  *supervisor.Supervisor

	log  logx.Logger
	logs *logx.Service

	adapter *telegram.Adapter
	notif   *notifier.Service
	poll    *poller.Service
	heart   *heartbeat.Service
}

func New(cfgPath string) (*App, error) {
	cfgm := config.NewManager(cfgPath)
	cfg, err := cfgm.Load()
	if err != nil {
		return nil, err
	}

	logSvc, log := logx.New(mapLoggingConfig(cfg))
	log = log.With(logx.String("comp", "app"))

	// Secrets gate everything: without them the loop must never start.
	secrets, err := config.SecretsFromEnv()
	if err != nil {
		log.Error("startup secrets missing; refusing to start", logx.Err(err))
		_ = logSvc.Close()
		return nil, err
	}

	ad, err := telegram.New(telegram.Config{Token: secrets.TelegramToken}, log.With(logx.String("comp", "telegram")))
	if err != nil {
		_ = logSvc.Close()
		return nil, err
	}

	notifSvc := notifier.New(notifier.Config{
		ChatID:     secrets.ChatID,
		RatePerSec: cfg.Telegram.RatePerSec,
	}, ad, log.With(logx.String("comp", "notifier")))

	timeout, err := config.ParseDurationOrDefault("practicum.request_timeout", cfg.Practicum.RequestTimeout, 10*time.Second)
	if err != nil {
		_ = logSvc.Close()
		return nil, err
	}
	client := practicum.NewClient(practicum.ClientConfig{
		Endpoint: cfg.Practicum.Endpoint,
		Token:    secrets.PracticumToken,
		Timeout:  timeout,
	}, log.With(logx.String("comp", "practicum")))

	pollCfg, err := mapPollerConfig(cfg)
	if err != nil {
		_ = logSvc.Close()
		return nil, err
	}
	pollSvc := poller.New(pollCfg, client, notifSvc, log.With(logx.String("comp", "poller")))

	heartSvc := heartbeat.New(mapHeartbeatConfig(cfg), pollSvc, notifSvc,
		log.With(logx.String("comp", "heartbeat")))

	return &App{
		cfgPath: cfgPath,
		cfgm:    cfgm,
		log:     log,
		logs:    logSvc,
		adapter: ad,
		notif:   notifSvc,
		poll:    pollSvc,
		heart:   heartSvc,
	}, nil
}

func (a *App) Start(ctx context.Context) error {
	a.sup = supervisor.New(ctx, supervisor.WithLogger(a.log))

	a.cfgm.SetLogger(a.log.With(logx.String("comp", "config")))
	a.cfgm.SetValidator(func(_ context.Context, cfg *config.Config) error {
		return validateConfig(cfg)
	})

	a.sup.Go("poller.run", a.poll.Run)

	if err := a.heart.Start(a.sup.Context()); err != nil {
		return err
	}

	// Hot reload fan-out.
	sub := a.cfgm.Subscribe(4)
	a.sup.Go0("config.reload", func(c context.Context) {
		defer a.cfgm.Unsubscribe(sub)
		for {
			select {
			case <-c.Done():
				return
			case newCfg, ok := <-sub:
				if !ok {
					return
				}
				a.applyConfig(newCfg)
			}
		}
	})
	a.sup.Go("config.watch", a.cfgm.Watch)

	// systemd integration is best-effort: SdNotify is a no-op outside a
	// Type=notify unit.
	if ok, err := daemon.SdNotify(false, daemon.SdNotifyReady); err != nil {
		a.log.Warn("sd-notify failed", logx.Err(err))
	} else if ok {
		a.log.Debug("sd-notify: ready")
	}
	if interval, err := daemon.SdWatchdogEnabled(false); err == nil && interval > 0 {
		a.sup.Go0("watchdog", func(c context.Context) {
			t := time.NewTicker(interval / 2)
			defer t.Stop()
			for {
				select {
				case <-c.Done():
					return
				case <-t.C:
					_, _ = daemon.SdNotify(false, daemon.SdNotifyWatchdog)
				}
			}
		})
	}

	a.log.Info("bot started")
	return nil
}

func (a *App) applyConfig(cfg *config.Config) {
	if cfg == nil {
		return
	}
	a.logs.Apply(mapLoggingConfig(cfg))

	if pollCfg, err := mapPollerConfig(cfg); err != nil {
		a.log.Warn("invalid poller config; keeping previous", logx.Err(err))
	} else {
		a.poll.Apply(pollCfg)
	}

	// The destination chat is a secret, not a config-file field; it is
	// preserved across re-Apply.
	a.notif.Apply(notifier.Config{
		ChatID:     a.notif.ChatID(),
		RatePerSec: cfg.Telegram.RatePerSec,
	})

	a.heart.Apply(mapHeartbeatConfig(cfg))
	a.log.Info("config applied")
}

func (a *App) Stop(ctx context.Context) error {
	if a.sup == nil {
		return nil
	}
	_, _ = daemon.SdNotify(false, daemon.SdNotifyStopping)
	a.log.Info("stopping")

	a.sup.Cancel()
	a.heart.Stop(ctx)
	err := a.sup.Wait(ctx)

	a.log.Info("stopped")
	if a.logs != nil {
		_ = a.logs.Close()
	}
	return err
}

func validateConfig(cfg *config.Config) error {
	if _, err := mapPollerConfig(cfg); err != nil {
		return err
	}
	if _, err := config.ParseDurationField("practicum.request_timeout", cfg.Practicum.RequestTimeout); err != nil {
		return err
	}
	if cfg.Heartbeat != nil {
		if err := heartbeat.ValidateSchedule(cfg.Heartbeat.Schedule); err != nil {
			return err
		}
	}
	return nil
}

func mapLoggingConfig(cfg *config.Config) logx.Config {
	return logx.Config{
		Level:   cfg.Logging.Level,
		Console: cfg.Logging.Console,
		File: logx.FileConfig{
			Enabled: cfg.Logging.File.Enabled,
			Path:    cfg.Logging.File.Path,
		},
	}
}

func mapPollerConfig(cfg *config.Config) (poller.Config, error) {
	interval, err := config.ParseDurationOrDefault("practicum.poll_interval", cfg.Practicum.PollInterval, 10*time.Minute)
	if err != nil {
		return poller.Config{}, err
	}
	return poller.Config{Interval: interval}, nil
}

func mapHeartbeatConfig(cfg *config.Config) heartbeat.Config {
	if cfg.Heartbeat == nil {
		return heartbeat.Config{}
	}
	return heartbeat.Config{Enabled: cfg.Heartbeat.Enabled, Schedule: cfg.Heartbeat.Schedule}
}
