package config

import (
	"strings"
	"testing"
)

func TestSecretsFromEnv(t *testing.T) {
	t.Setenv(EnvPracticumToken, "p-token")
	t.Setenv(EnvTelegramToken, "t-token")
	t.Setenv(EnvTelegramChatID, "123456789")

	s, err := SecretsFromEnv()
	if err != nil {
		t.Fatalf("SecretsFromEnv error: %v", err)
	}
	if s.PracticumToken != "p-token" || s.TelegramToken != "t-token" || s.ChatID != 123456789 {
		t.Fatalf("unexpected secrets: %+v", s)
	}
}

func TestSecretsFromEnvReportsAllMissing(t *testing.T) {
	t.Setenv(EnvPracticumToken, "")
	t.Setenv(EnvTelegramToken, "")
	t.Setenv(EnvTelegramChatID, "")

	_, err := SecretsFromEnv()
	if err == nil {
		t.Fatal("expected error")
	}
	for _, name := range []string{EnvPracticumToken, EnvTelegramToken, EnvTelegramChatID} {
		if !strings.Contains(err.Error(), name) {
			t.Fatalf("error does not name %s: %v", name, err)
		}
	}
}

func TestSecretsFromEnvBadChatID(t *testing.T) {
	t.Setenv(EnvPracticumToken, "p")
	t.Setenv(EnvTelegramToken, "t")
	t.Setenv(EnvTelegramChatID, "not-a-number")

	if _, err := SecretsFromEnv(); err == nil {
		t.Fatal("expected error for non-numeric chat id")
	}
}
