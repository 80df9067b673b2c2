package config

// Config is the non-secret runtime configuration, loaded from a YAML or JSON
// file. Secrets (tokens, chat id) never live here — see Secrets.
//
// All durations are Go duration strings (e.g. "30s", "10m").
type Config struct {
	Logging   LoggingConfig    `json:"logging"`
	Practicum PracticumConfig  `json:"practicum"`
	Telegram  TelegramConfig   `json:"telegram"`
	Heartbeat *HeartbeatConfig `json:"heartbeat,omitempty"`
}

type LoggingConfig struct {
	Level   string     `json:"level,omitempty"`
	Console bool       `json:"console"`
	File    FileConfig `json:"file"`
}

type FileConfig struct {
	Enabled bool   `json:"enabled"`
	Path    string `json:"path,omitempty"`
}

// PracticumConfig controls the homework-review API poller.
//
// Defaults (when fields are omitted/empty):
//   - endpoint: the production homework_statuses URL
//   - poll_interval: "10m"
//   - request_timeout: "10s"
type PracticumConfig struct {
	Endpoint       string `json:"endpoint,omitempty"`
	PollInterval   string `json:"poll_interval,omitempty"`
	RequestTimeout string `json:"request_timeout,omitempty"`
}

// TelegramConfig controls the send path. The bot token and destination chat
// come from the environment, not from this file.
type TelegramConfig struct {
	// RatePerSec caps outgoing messages (Telegram flood protection).
	RatePerSec int `json:"rate_per_sec,omitempty"`
}

// HeartbeatConfig enables a periodic liveness digest to the same chat.
// Schedule is a standard 5-field cron spec; the section is ignored unless
// both enabled and a valid schedule are set.
type HeartbeatConfig struct {
	Enabled  bool   `json:"enabled"`
	Schedule string `json:"schedule,omitempty"`
}

// Default returns the configuration used when no config file is present.
func Default() *Config {
	return &Config{
		Logging: LoggingConfig{
			Level:   "info",
			Console: true,
			File:    FileConfig{Enabled: true, Path: "./hwbot.log"},
		},
		Practicum: PracticumConfig{
			PollInterval:   "10m",
			RequestTimeout: "10s",
		},
		Telegram: TelegramConfig{RatePerSec: 3},
	}
}
