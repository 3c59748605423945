package authshell

import (
	"io"

	"github.com/projecthealth/authshell/internal/audit"
)

// AuditEvent is the structured record emitted on every session transition.
type AuditEvent = audit.Event

// AuditSink receives emitted audit events.
type AuditSink = audit.Sink

// NoOpSink drops audit events.
type NoOpSink = audit.NoOpSink

// ChannelSink writes audit events into a buffered channel.
type ChannelSink = audit.ChannelSink

// JSONWriterSink writes one JSON object per line.
type JSONWriterSink = audit.JSONWriterSink

// NewChannelSink returns a ChannelSink with the given buffer size.
func NewChannelSink(buffer int) *ChannelSink {
	return audit.NewChannelSink(buffer)
}

// NewJSONWriterSink returns a JSONWriterSink writing to w.
func NewJSONWriterSink(w io.Writer) *JSONWriterSink {
	return audit.NewJSONWriterSink(w)
}

// Audit event types emitted by the store.
const (
	AuditLogin          = "session.login"
	AuditSignup         = "session.signup"
	AuditLogout         = "session.logout"
	AuditRestore        = "session.restore"
	AuditRestoreCorrupt = "session.restore_corrupt"
	AuditPersistFailure = "session.persist_failure"
)
