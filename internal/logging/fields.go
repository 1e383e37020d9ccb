package logging

import "log/slog"

// Common structured log field keys to keep logs searchable/consistent.
const (
	FieldService    = "service"
	FieldVersion    = "version"
	FieldPath       = "path"
	FieldDate       = "date"
	FieldCount      = "count"
	FieldSkipped    = "skipped"
	FieldReplaced   = "replaced"
	FieldRecords    = "records"
	FieldIndex      = "index"
	FieldName       = "name"
	FieldKey        = "key"
	FieldPlayerID   = "player_id"
	FieldHeadshot   = "headshot"
	FieldReason     = "reason"
	FieldDurationMS = "duration_ms"
)

// WithCommon appends service/version fields when provided.
func WithCommon(attrs []slog.Attr, service, version string) []slog.Attr {
	if service != "" {
		attrs = append(attrs, slog.String(FieldService, service))
	}
	if version != "" {
		attrs = append(attrs, slog.String(FieldVersion, version))
	}
	return attrs
}
