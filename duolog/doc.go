// Package duolog provides a minimal leveled logger that writes to an owned
// append-mode log file, a borrowed stream, or both.
//
// # Sinks
//
// A logger is built by one of three constructors. NewStream attaches a
// caller-owned stream (typically os.Stderr); NewFile opens a log file in
// append mode and owns it until Close; NewDual combines both. Each emitted
// line is flushed to every sink before the call returns.
//
// # Line format
//
// Every line carries, in order: an optional ISO-8601 UTC timestamp, an
// optional [name] tag, the level name padded to eight columns, the call
// site as file:line:function, and the message:
//
//	2025-09-03T21:07:15Z [worker] WARNING  main.go:42:main: queue is almost full
//
// ANSI colors are applied per level, but only on a stream that is an
// interactive terminal with colors enabled; files never receive escape
// sequences. The NO_COLOR environment variable disables colors globally.
//
// # Usage
//
//	lg, err := duolog.NewDual("app.log", os.Stderr, duolog.InfoLevel)
//	if err != nil {
//		// handle
//	}
//	defer lg.Close()
//
//	lg.SetName("worker")
//	lg.Infof("started with %d queues", n)
//	lg.Errorf("dial %s: %v", addr, err)
//
// A package-level Default logger writes to os.Stderr at InfoLevel for code
// that does not want to thread a logger through.
//
// # Concurrency
//
// With locking enabled (the default) the whole format-and-write sequence is
// serialized under one mutex, so concurrent goroutines never interleave
// lines. EnableLocking(false) removes all synchronization for
// single-goroutine callers. Setters are not synchronized with in-flight
// emits.
//
// Suppressed messages are cheap: a message below the minimum level returns
// before any lock, clock read, or formatting.
package duolog
