package config

const (
	// Summarization fallback
	FallbackSummaryLength = 250
	FallbackEllipsis      = "..."

	// TimestampLayout is the fixed pattern complaints are rendered with
	// on the listing endpoint and in the admin CLI.
	TimestampLayout = "2006-01-02 15:04:05"

	// ComplaintCreatedChannel is the Redis channel new-complaint events
	// are published on.
	ComplaintCreatedChannel = "complaints:created"
)
