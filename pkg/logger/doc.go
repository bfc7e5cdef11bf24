// Package logger builds slog loggers that enrich every record with
// request-scoped values pulled from context, such as the resolved locale.
//
// Extractors run per log call, so middleware-injected values are always
// fresh:
//
//	log := logger.New(localeroute.LocaleLogExtractor())
//	log.InfoContext(r.Context(), "page served") // includes locale=de
//
// NewWithSentry mirrors warnings and errors to Sentry when a DSN is
// configured, and degrades to stdout-only logging when it is not.
package logger
