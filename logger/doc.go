// Package logger wraps zerolog with service- and component-scoped loggers.
//
// A single logger is constructed at startup from configuration and handed to
// each subsystem via WithComponent:
//
//	log := logger.New(&cfg.Logging, "authd")
//	storeLog := log.WithComponent("identity")
//	storeLog.Info("identity added", logger.Fields("name", rec.Name))
//
// Credential material and the token signing secret must never be logged.
package logger
