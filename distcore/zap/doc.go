// Package zap adapts go.uber.org/zap to the distcore log.Logger interface,
// appending trace correlation fields when the context carries an active
// OpenTelemetry span.
package zap
