package domain

import "time"

// StatusChangedEvent is queued after every applied transition and
// delivered to the configured webhook.
type StatusChangedEvent struct {
	IncidentID string    `json:"incident_id"`
	OldStatus  Status    `json:"old_status"`
	NewStatus  Status    `json:"new_status"`
	Remark     string    `json:"remark"`
	OccurredAt time.Time `json:"occurred_at"`
}
