package models

// NotificationMessage is the driver-agnostic message the notify stage builds
// from prior stage outputs. Drivers render it into their native format.
type NotificationMessage struct {
	Title        string           `json:"title"`
	Body         string           `json:"body"`
	Severity     Severity         `json:"severity"`
	IncidentID   string           `json:"incident_id,omitempty"`
	TraceID      string           `json:"trace_id"`
	RunID        string           `json:"run_id"`
	Environment  string           `json:"environment,omitempty"`
	DashboardURL string           `json:"dashboard_url,omitempty"`
	DedupKey     string           `json:"dedup_key,omitempty"` // at-least-once with dedup keys
	Checks       *CheckSummary    `json:"checks,omitempty"`
	Analysis     []Recommendation `json:"analysis,omitempty"`
}

// DeliveryResult records the outcome of one channel dispatch.
type DeliveryResult struct {
	ChannelID   string `json:"channel_id"`
	ChannelName string `json:"channel_name"`
	Driver      string `json:"driver"`
	Succeeded   bool   `json:"succeeded"`
	Error       string `json:"error,omitempty"`
	Retryable   bool   `json:"retryable,omitempty"`
	DurationMs  int64  `json:"duration_ms"`
}
