package domain

// StatusCount is one row of the count-by-status grouping. Only statuses
// actually present in storage appear; there is no zero padding.
type StatusCount struct {
	Status Status `json:"status"`
	Total  int64  `json:"total"`
}

type SeverityCount struct {
	Severity Severity `json:"severity"`
	Total    int64    `json:"total"`
}

// StatsSummary is the dashboard snapshot. UrgentPercent is
// (urgent*100)/total, integer division, zero when the table is empty.
type StatsSummary struct {
	Total         int64           `json:"total"`
	Urgent        int64           `json:"urgent"`
	UrgentPercent int64           `json:"urgent_percent"`
	ByStatus      []StatusCount   `json:"by_status"`
	BySeverity    []SeverityCount `json:"by_severity"`
}
