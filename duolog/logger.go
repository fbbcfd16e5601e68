package duolog

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"runtime"
	"strconv"
	"strings"
	"sync"
	"time"

	"github.com/mattn/go-isatty"
)

const (
	// maxMessageLen bounds a rendered message body. Longer messages are
	// truncated, not rejected.
	maxMessageLen = 2048

	// fileBufferSize is the block-buffer size for owned file sinks, chosen
	// large to cut down write syscalls. Every emitted line is still flushed
	// before the call returns.
	fileBufferSize = 1 << 20

	timeLayout = "2006-01-02T15:04:05Z"
)

// Dependency injection points for testing time and terminal detection.
var (
	timeNow = time.Now

	isTerminal = func(w io.Writer) bool {
		f, ok := w.(*os.File)
		return ok && (isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd()))
	}

	// noColor honors the NO_COLOR convention, captured once at startup.
	noColor = os.Getenv("NO_COLOR") != ""
)

// flusher is implemented by buffered sinks that can be flushed explicitly.
type flusher interface{ Flush() error }

// Logger emits leveled, timestamped lines to an owned append-mode file sink,
// a borrowed stream sink, or both. The zero value is not usable; construct
// with NewStream, NewFile, or NewDual.
//
// When locking is enabled (the default) all emit paths are safe for
// concurrent use from multiple goroutines. Configuration setters are not
// synchronized with in-flight emits; reconfigure before sharing the logger
// across goroutines, or accept that a concurrent change applies to an
// unspecified subset of in-flight messages.
type Logger struct {
	mu     sync.Mutex
	file   *os.File      // owned file sink; closed by Close
	fileW  *bufio.Writer // block-buffered writer over file
	stream io.Writer     // borrowed stream sink; never closed

	level      Level
	name       string
	timestamps bool
	colors     bool
	locking    bool

	initialized bool
}

// newLogger sets the defaults shared by all constructors: timestamps, colors,
// and locking enabled.
func newLogger(min Level) *Logger {
	return &Logger{
		level:       min,
		timestamps:  true,
		colors:      true,
		locking:     true,
		initialized: true,
	}
}

// NewStream returns a logger that writes only to w. The caller retains
// ownership of w and must keep it open for the logger's lifetime; Close never
// closes it. Returns ErrInvalidArgument if w is nil.
func NewStream(w io.Writer, min Level) (*Logger, error) {
	if w == nil {
		return nil, fmt.Errorf("%w: nil stream", ErrInvalidArgument)
	}
	l := newLogger(min)
	l.stream = w
	return l, nil
}

// NewFile returns a logger that writes only to the file at path, opened in
// append mode and created if absent. The logger owns the file and closes it
// in Close. Open failures are returned unmodified from the OS layer.
func NewFile(path string, min Level) (*Logger, error) {
	if path == "" {
		return nil, fmt.Errorf("%w: empty path", ErrInvalidArgument)
	}
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return nil, err
	}
	l := newLogger(min)
	l.file = f
	l.fileW = bufio.NewWriterSize(f, fileBufferSize)
	return l, nil
}

// NewDual returns a logger that writes to both the file at path and the
// borrowed stream w. File semantics match NewFile; stream semantics match
// NewStream.
func NewDual(path string, w io.Writer, min Level) (*Logger, error) {
	if w == nil {
		return nil, fmt.Errorf("%w: nil stream", ErrInvalidArgument)
	}
	l, err := NewFile(path, min)
	if err != nil {
		return nil, err
	}
	l.stream = w
	return l, nil
}

// Close flushes both sinks, closes the owned file sink if present, and clears
// the logger's sink state. It never closes a borrowed stream. Close is
// idempotent and safe on a nil logger; repeat calls are no-ops that return
// nil.
func (l *Logger) Close() error {
	if l == nil || !l.initialized {
		return nil
	}
	var err error
	if l.fileW != nil {
		err = l.fileW.Flush()
	}
	if f, ok := l.stream.(flusher); ok {
		if ferr := f.Flush(); err == nil {
			err = ferr
		}
	}
	if l.file != nil {
		if cerr := l.file.Close(); err == nil {
			err = cerr
		}
	}
	l.file = nil
	l.fileW = nil
	l.stream = nil
	l.initialized = false
	return err
}

// SetLevel sets the minimum severity emitted. Messages strictly below it are
// suppressed.
func (l *Logger) SetLevel(level Level) {
	if l == nil {
		return
	}
	l.level = level
}

// SetName sets the tag printed in brackets on every line. An empty name
// clears it.
func (l *Logger) SetName(name string) {
	if l == nil {
		return
	}
	l.name = name
}

// EnableTimestamps controls the ISO-8601 UTC timestamp prefix.
func (l *Logger) EnableTimestamps(on bool) {
	if l == nil {
		return
	}
	l.timestamps = on
}

// EnableColors controls ANSI coloring. Colors apply only to a stream sink
// that is an interactive terminal; file sinks are never colorized.
func (l *Logger) EnableColors(on bool) {
	if l == nil {
		return
	}
	l.colors = on
}

// EnableLocking controls the internal mutex. Disable it only for
// single-goroutine use; with locking off the emit path performs no
// synchronization at all.
func (l *Logger) EnableLocking(on bool) {
	if l == nil {
		return
	}
	l.locking = on
}

// Logf renders format with args and emits the result at the given level. The
// reported source location is Logf's call site.
func (l *Logger) Logf(level Level, format string, args ...any) error {
	return l.logf(level, format, args...)
}

// Debugf emits a formatted message at DebugLevel.
func (l *Logger) Debugf(format string, args ...any) error {
	return l.logf(DebugLevel, format, args...)
}

// Infof emits a formatted message at InfoLevel.
func (l *Logger) Infof(format string, args ...any) error {
	return l.logf(InfoLevel, format, args...)
}

// Warningf emits a formatted message at WarningLevel.
func (l *Logger) Warningf(format string, args ...any) error {
	return l.logf(WarningLevel, format, args...)
}

// Errorf emits a formatted message at ErrorLevel.
func (l *Logger) Errorf(format string, args ...any) error {
	return l.logf(ErrorLevel, format, args...)
}

// Criticalf emits a formatted message at CriticalLevel.
func (l *Logger) Criticalf(format string, args ...any) error {
	return l.logf(CriticalLevel, format, args...)
}

// Output emits a pre-rendered message at the given level, skipping template
// rendering. calldepth selects the source location to report: 1 names
// Output's direct caller, 2 that function's caller, and so on. It exists for
// wrapper functions that forward messages through their own stack frames.
func (l *Logger) Output(calldepth int, level Level, msg string) error {
	if l == nil {
		return fmt.Errorf("%w: nil logger", ErrInvalidArgument)
	}
	if level < l.level {
		return nil
	}
	if len(msg) > maxMessageLen {
		msg = msg[:maxMessageLen]
	}
	file, line, fn := location(calldepth + 1)
	return l.emit(level, file, line, fn, msg)
}

// logf is the formatted entry point shared by Logf and the leveled helpers,
// all of which sit exactly one frame above it.
func (l *Logger) logf(level Level, format string, args ...any) error {
	if l == nil {
		return fmt.Errorf("%w: nil logger", ErrInvalidArgument)
	}
	// Suppression is the hot path: no lock, no clock, no formatting.
	if level < l.level {
		return nil
	}
	file, line, fn := location(3)
	msg := fmt.Sprintf(format, args...)
	if len(msg) > maxMessageLen {
		msg = msg[:maxMessageLen]
	}
	return l.emit(level, file, line, fn, msg)
}

// emit is the single pipeline behind every entry point: lock, capture the
// timestamp, then dispatch one line per sink, stream before file, flushing
// each before returning.
func (l *Logger) emit(level Level, file string, line int, fn, msg string) error {
	if l.locking {
		l.mu.Lock()
		defer l.mu.Unlock()
	}

	ts := ""
	if l.timestamps {
		ts = timeNow().UTC().Format(timeLayout)
	}

	var err error
	if l.stream != nil {
		colorize := l.colors && !noColor && isTerminal(l.stream)
		if werr := writeLine(l.stream, colorize, level, ts, l.name, file, line, fn, msg); werr != nil {
			err = werr
		}
		if f, ok := l.stream.(flusher); ok {
			if ferr := f.Flush(); ferr != nil && err == nil {
				err = ferr
			}
		}
	}
	if l.fileW != nil {
		if werr := writeLine(l.fileW, false, level, ts, l.name, file, line, fn, msg); werr != nil && err == nil {
			err = werr
		}
		if ferr := l.fileW.Flush(); ferr != nil && err == nil {
			err = ferr
		}
	}
	return err
}

// writeLine assembles one output line and writes it with a single call so
// that an unlocked logger still produces whole lines on ordinary sinks.
func writeLine(w io.Writer, colorize bool, level Level, ts, name, file string, line int, fn, msg string) error {
	var b strings.Builder
	b.Grow(len(ts) + len(name) + len(file) + len(fn) + len(msg) + 32)
	if colorize {
		b.WriteString(level.color())
	}
	if ts != "" {
		b.WriteString(ts)
		b.WriteByte(' ')
	}
	if name != "" {
		b.WriteByte('[')
		b.WriteString(name)
		b.WriteString("] ")
	}
	lv := level.String()
	b.WriteString(lv)
	for i := len(lv); i < 8; i++ {
		b.WriteByte(' ')
	}
	b.WriteByte(' ')
	b.WriteString(file)
	b.WriteByte(':')
	b.WriteString(strconv.Itoa(line))
	b.WriteByte(':')
	b.WriteString(fn)
	b.WriteString(": ")
	b.WriteString(msg)
	b.WriteByte('\n')
	if colorize {
		b.WriteString(ansiReset)
	}
	_, err := io.WriteString(w, b.String())
	return err
}

// location reports the base file name, line, and bare function name of the
// frame skip levels above runtime.Caller.
func location(skip int) (string, int, string) {
	pc, file, line, ok := runtime.Caller(skip)
	if !ok {
		return "???", 0, "???"
	}
	fn := "???"
	if f := runtime.FuncForPC(pc); f != nil {
		fn = f.Name()
		if i := strings.LastIndexByte(fn, '/'); i >= 0 {
			fn = fn[i+1:]
		}
		if i := strings.IndexByte(fn, '.'); i >= 0 {
			fn = fn[i+1:]
		}
	}
	return filepath.Base(file), line, fn
}

// Default is a ready-to-use logger writing to standard error at InfoLevel.
var Default, _ = NewStream(os.Stderr, InfoLevel)

// Logf emits a formatted message through the Default logger.
func Logf(level Level, format string, args ...any) error {
	return Default.logf(level, format, args...)
}

// Debugf emits a formatted debug message through the Default logger.
func Debugf(format string, args ...any) error {
	return Default.logf(DebugLevel, format, args...)
}

// Infof emits a formatted info message through the Default logger.
func Infof(format string, args ...any) error {
	return Default.logf(InfoLevel, format, args...)
}

// Warningf emits a formatted warning message through the Default logger.
func Warningf(format string, args ...any) error {
	return Default.logf(WarningLevel, format, args...)
}

// Errorf emits a formatted error message through the Default logger.
func Errorf(format string, args ...any) error {
	return Default.logf(ErrorLevel, format, args...)
}

// Criticalf emits a formatted critical message through the Default logger.
func Criticalf(format string, args ...any) error {
	return Default.logf(CriticalLevel, format, args...)
}
