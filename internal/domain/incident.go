package domain

import (
	"fmt"

	"cadizaccesible/pkg/e"
)

type Status string

const (
	StatusPending  Status = "PENDING"
	StatusAccepted Status = "ACCEPTED"
	StatusInReview Status = "IN_REVIEW"
	StatusResolved Status = "RESOLVED"
	StatusRejected Status = "REJECTED"
)

type Severity string

const (
	SeverityLow    Severity = "LOW"
	SeverityMedium Severity = "MEDIUM"
	SeverityHigh   Severity = "HIGH"
)

// ParseStatus maps a persisted status name back to its variant.
// Unknown values are a hard parse failure, never a silent default.
func ParseStatus(s string) (Status, error) {
	switch Status(s) {
	case StatusPending, StatusAccepted, StatusInReview, StatusResolved, StatusRejected:
		return Status(s), nil
	}
	return "", fmt.Errorf("unknown status %q: %w", s, e.ErrParse)
}

func ParseSeverity(s string) (Severity, error) {
	switch Severity(s) {
	case SeverityLow, SeverityMedium, SeverityHigh:
		return Severity(s), nil
	}
	return "", fmt.Errorf("unknown severity %q: %w", s, e.ErrParse)
}

func AllStatuses() []Status {
	return []Status{StatusPending, StatusAccepted, StatusInReview, StatusResolved, StatusRejected}
}

func AllSeverities() []Severity {
	return []Severity{SeverityLow, SeverityMedium, SeverityHigh}
}

// Incident is a citizen-reported accessibility obstacle.
// Lat and Lng are either both set or both nil.
type Incident struct {
	ID             string   `json:"id"`
	CreatorEmail   string   `json:"creator_email"`
	Title          string   `json:"title"`
	Description    string   `json:"description"`
	Category       string   `json:"category"`
	AffectedAccess string   `json:"affected_access"`
	Severity       Severity `json:"severity"`
	Urgent         bool     `json:"urgent"`
	Temporary      bool     `json:"temporary"`
	Address        string   `json:"address"`
	Lat            *float64 `json:"lat,omitempty"`
	Lng            *float64 `json:"lng,omitempty"`
	PhotoURI       *string  `json:"photo_uri,omitempty"`
	Status         Status   `json:"status"`
	AdminRemark    string   `json:"admin_remark"`
	CreatedAtMs    int64    `json:"created_at_ms"`
}
