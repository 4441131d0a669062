package domain

import (
	"errors"
	"testing"

	"cadizaccesible/pkg/e"
)

func TestParseStatus_AllVariants(t *testing.T) {
	for _, s := range AllStatuses() {
		got, err := ParseStatus(string(s))
		if err != nil {
			t.Fatalf("ParseStatus(%q): unexpected err: %v", s, err)
		}
		if got != s {
			t.Fatalf("ParseStatus(%q) = %q", s, got)
		}
	}
}

func TestParseStatus_UnknownIsHardFailure(t *testing.T) {
	for _, raw := range []string{"", "pending", "PENDIENTE", "DONE"} {
		_, err := ParseStatus(raw)
		if !errors.Is(err, e.ErrParse) {
			t.Fatalf("ParseStatus(%q): want ErrParse, got %v", raw, err)
		}
	}
}

func TestParseSeverity_AllVariants(t *testing.T) {
	for _, s := range AllSeverities() {
		got, err := ParseSeverity(string(s))
		if err != nil {
			t.Fatalf("ParseSeverity(%q): unexpected err: %v", s, err)
		}
		if got != s {
			t.Fatalf("ParseSeverity(%q) = %q", s, got)
		}
	}
}

func TestParseSeverity_UnknownIsHardFailure(t *testing.T) {
	if _, err := ParseSeverity("CRITICAL"); !errors.Is(err, e.ErrParse) {
		t.Fatalf("want ErrParse, got %v", err)
	}
}

func TestParseRole_UnknownIsHardFailure(t *testing.T) {
	if _, err := ParseRole("SUPERUSER"); !errors.Is(err, e.ErrParse) {
		t.Fatalf("want ErrParse, got %v", err)
	}
	role, err := ParseRole("ADMIN")
	if err != nil || role != RoleAdmin {
		t.Fatalf("ParseRole(ADMIN) = %v, %v", role, err)
	}
}
