// Package logger builds configured slog.Logger instances for the gateway.
//
// It provides a small factory over log/slog with JSON or text output, static
// attributes, and context extractors that inject request-scoped values (such as
// the correlation id or resolved tenant) into every record logged with a
// request context.
//
//	log := logger.New(
//		logger.WithService("gateway", "production"),
//		logger.WithContextExtractors(requestid.LoggerExtractor(), tenant.LoggerExtractor()),
//	)
package logger
