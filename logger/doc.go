// Package logger provides structured logging for fiter using zerolog.
//
// The sequence adaptors themselves never log. Loggers from this package are
// consumed by the observe adaptors and by config loading.
//
// # Configuration
//
//	logger:
//	  level: "debug"
//	  format: "json"
//
// # Usage
//
//	log := logger.Get("fiter")
//	log.Debug("cursor advanced", logger.Fields("sequence", "evens", "step", 3))
package logger
