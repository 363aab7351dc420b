// Package logger builds configured log/slog loggers and provides attr
// helpers for the dispatcher's common log fields.
//
//	log := logger.New(logger.WithEnvironment(env, "flare-worker"))
//	logger.SetAsDefault(log)
package logger
