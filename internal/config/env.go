package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
)

// Environment variable names for the three process secrets.
const (
	EnvPracticumToken = "PRACTICUM_TOKEN"
	EnvTelegramToken  = "TELEGRAM_TOKEN"
	EnvTelegramChatID = "TELEGRAM_CHAT_ID"
)

// Secrets are loaded once at startup and are immutable for the process
// lifetime. A missing value is a startup failure, never a runtime one.
type Secrets struct {
	PracticumToken string
	TelegramToken  string
	ChatID         int64
}

// SecretsFromEnv reads all three secrets and reports every missing variable
// in one error, so the operator fixes the environment in one pass.
func SecretsFromEnv() (Secrets, error) {
	var missing []string

	practicum := strings.TrimSpace(os.Getenv(EnvPracticumToken))
	if practicum == "" {
		missing = append(missing, EnvPracticumToken)
	}
	telegram := strings.TrimSpace(os.Getenv(EnvTelegramToken))
	if telegram == "" {
		missing = append(missing, EnvTelegramToken)
	}
	rawChat := strings.TrimSpace(os.Getenv(EnvTelegramChatID))
	if rawChat == "" {
		missing = append(missing, EnvTelegramChatID)
	}
	if len(missing) > 0 {
		return Secrets{}, fmt.Errorf("missing environment variables: %s", strings.Join(missing, ", "))
	}

	chatID, err := strconv.ParseInt(rawChat, 10, 64)
	if err != nil {
		return Secrets{}, fmt.Errorf("%s: not a valid chat id: %w", EnvTelegramChatID, err)
	}

	return Secrets{
		PracticumToken: practicum,
		TelegramToken:  telegram,
		ChatID:         chatID,
	}, nil
}
