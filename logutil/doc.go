// Package logutil configures the process-wide log/slog logger used by procfind.
//
// Call SetupLogger once from main; library packages obtain component-scoped
// loggers with NewLogger:
//
//	logutil.SetupLogger(debug, structured)
//
//	log := logutil.NewLogger("procutil").WithOperation("find")
//	log.Debug("process found", "pid", pid)
//
// # Debug Mode
//
// Debug records are emitted when SetupLogger is called with debug=true or
// when the PROCFIND_DEBUG environment variable is "true" at setup time.
//
// # Structured Logging
//
// With structured=true records are written as JSON:
//
//	{"time":"2026-01-15T10:30:00Z","level":"DEBUG","msg":"process found","component":"procutil","pid":4242}
//
// Otherwise the slog text format is used:
//
//	time=2026-01-15T10:30:00Z level=DEBUG msg="process found" component=procutil pid=4242
package logutil
