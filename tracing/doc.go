// Package tracing records the pipeline stages as OpenTelemetry spans. Tracing
// is off until Init is called; before that every span is a no-op.
package tracing
