// Package logger builds the application's *slog.Logger.
//
// New takes functional options for format (text or JSON), level, output,
// static attributes and ContextExtractor callbacks. Extractors run on every
// record, which is how request IDs attached to a context end up in the logs
// of outbound API calls.
//
// Attribute helpers (Form, Endpoint, StatusCode, Route, Error, ...) keep key
// names consistent across packages.
//
//	log := logger.New(
//	    logger.WithEnvironment(cfg.Environment, "takaful"),
//	    logger.WithContextExtractors(requestid.LoggerExtractor()),
//	)
//	log.InfoContext(ctx, "form submitted", logger.Form("signin"))
package logger
