package practicum

import (
	"errors"
	"strings"
	"testing"
)

func TestParseStatusVerdicts(t *testing.T) {
	t.Parallel()
	tests := []struct {
		status  string
		verdict string
	}{
		{status: "approved", verdict: "Работа проверена: ревьюеру всё понравилось. Ура!"},
		{status: "reviewing", verdict: "Работа взята на проверку ревьюером."},
		{status: "rejected", verdict: "Работа проверена: у ревьюера есть замечания."},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.status, func(t *testing.T) {
			msg, err := ParseStatus(Homework{HomeworkName: "proj1", Status: tt.status})
			if err != nil {
				t.Fatalf("ParseStatus error: %v", err)
			}
			if !strings.Contains(msg, `"proj1"`) {
				t.Fatalf("message does not contain homework name: %q", msg)
			}
			if !strings.Contains(msg, tt.verdict) {
				t.Fatalf("message does not contain verdict %q: %q", tt.verdict, msg)
			}
		})
	}
}

func TestParseStatusApprovedExact(t *testing.T) {
	t.Parallel()
	msg, err := ParseStatus(Homework{HomeworkName: "proj1", Status: "approved"})
	if err != nil {
		t.Fatalf("ParseStatus error: %v", err)
	}
	want := `Изменился статус проверки работы "proj1". Работа проверена: ревьюеру всё понравилось. Ура!`
	if msg != want {
		t.Fatalf("message = %q, want %q", msg, want)
	}
}

func TestParseStatusErrors(t *testing.T) {
	t.Parallel()
	tests := []struct {
		name string
		hw   Homework
		kind Kind
	}{
		{name: "missing name", hw: Homework{Status: "approved"}, kind: KindMissingField},
		{name: "missing status", hw: Homework{HomeworkName: "proj1"}, kind: KindMissingField},
		{name: "unknown status", hw: Homework{HomeworkName: "proj1", Status: "burned"}, kind: KindUnknownStatus},
		{name: "case sensitive", hw: Homework{HomeworkName: "proj1", Status: "Approved"}, kind: KindUnknownStatus},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			_, err := ParseStatus(tt.hw)
			if err == nil {
				t.Fatal("expected error")
			}
			if got := KindOf(err); got != tt.kind {
				t.Fatalf("KindOf = %q, want %q", got, tt.kind)
			}
		})
	}
}

func TestParseStatusUnknownCarriesValue(t *testing.T) {
	t.Parallel()
	_, err := ParseStatus(Homework{HomeworkName: "proj1", Status: "burned"})
	var pe *Error
	if !errors.As(err, &pe) {
		t.Fatalf("expected *Error, got %T", err)
	}
	if pe.Value != "burned" {
		t.Fatalf("Value = %q, want %q", pe.Value, "burned")
	}
}
