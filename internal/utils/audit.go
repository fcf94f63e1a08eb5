// audit.go provides a wrapper around the posthog.Client for best-effort
// audit events. Enqueueing is asynchronous and decoupled from the
// transaction outcome: a failed or missing client never blocks, fails or
// rolls back the primary operation.
package utils

import (
	"log/slog"

	"github.com/posthog/posthog-go"
)

// AuditClient publishes audit events when configured and silently
// drops them when not.
type AuditClient struct {
	client posthog.Client
	logger *slog.Logger
}

// NewAuditClient initializes the audit sink. An empty API key yields a
// no-op client.
func NewAuditClient(apiKey string, logger *slog.Logger) *AuditClient {
	if apiKey == "" {
		logger.Warn("Audit API key is empty, audit events will be dropped.")
		return &AuditClient{logger: logger}
	}
	wrapper := &AuditClient{logger: logger}
	wrapper.client, _ = posthog.NewWithConfig(apiKey, posthog.Config{Endpoint: "https://eu.i.posthog.com"})
	return wrapper
}

// IsInitialized reports whether a real client is attached.
func (w *AuditClient) IsInitialized() bool {
	return w.client != nil
}

// Enqueue records an audit event attributed to userID. Errors are logged
// and swallowed.
func (w *AuditClient) Enqueue(userID string, event string, properties map[string]any) {
	if w.client == nil {
		return
	}
	err := w.client.Enqueue(posthog.Capture{
		DistinctId: userID,
		Event:      event,
		Properties: properties,
	})
	if err != nil && w.logger != nil {
		w.logger.Warn("Failed to enqueue audit event", slog.String("event", event), slog.String("error", err.Error()))
	}
}

// Close flushes and shuts down the underlying client.
func (w *AuditClient) Close() {
	if w.client == nil {
		return
	}
	w.client.Close()
}
