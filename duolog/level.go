package duolog

import (
	"fmt"
	"strings"
)

// Level classifies log messages by severity. Only messages at or above a
// logger's minimum level are emitted; comparison is purely numeric. The gaps
// between values leave room for intermediate severities without renumbering.
type Level int32

const (
	// DebugLevel enables verbose diagnostic messages.
	DebugLevel Level = 10
	// InfoLevel enables routine operational messages.
	InfoLevel Level = 20
	// WarningLevel enables messages about unexpected but recoverable events.
	WarningLevel Level = 30
	// ErrorLevel enables messages about failed operations.
	ErrorLevel Level = 40
	// CriticalLevel enables messages about conditions requiring immediate
	// attention.
	CriticalLevel Level = 50
)

// ANSI escape sequences used for terminal output.
const (
	ansiDim       = "\033[2m"
	ansiReset     = "\033[0m"
	ansiYellow    = "\033[33m"
	ansiRed       = "\033[31m"
	ansiBoldRedBg = "\033[1;41m"
)

// String returns the display name for the level. Unrecognized values map to
// "LVL?" rather than failing.
func (l Level) String() string {
	switch l {
	case DebugLevel:
		return "DEBUG"
	case InfoLevel:
		return "INFO"
	case WarningLevel:
		return "WARNING"
	case ErrorLevel:
		return "ERROR"
	case CriticalLevel:
		return "CRITICAL"
	default:
		return "LVL?"
	}
}

// color returns the ANSI escape applied to interactive terminal output for
// the level. Unrecognized values fall back to the reset sequence.
func (l Level) color() string {
	switch l {
	case DebugLevel:
		return ansiDim
	case InfoLevel:
		return ansiReset
	case WarningLevel:
		return ansiYellow
	case ErrorLevel:
		return ansiRed
	case CriticalLevel:
		return ansiBoldRedBg
	default:
		return ansiReset
	}
}

// ParseLevel converts a level name such as "debug" or "WARNING" into its
// Level. Matching is case-insensitive and tolerates surrounding whitespace.
func ParseLevel(s string) (Level, error) {
	switch strings.ToUpper(strings.TrimSpace(s)) {
	case "DEBUG":
		return DebugLevel, nil
	case "INFO":
		return InfoLevel, nil
	case "WARNING", "WARN":
		return WarningLevel, nil
	case "ERROR":
		return ErrorLevel, nil
	case "CRITICAL", "CRIT":
		return CriticalLevel, nil
	}
	return 0, fmt.Errorf("duolog: unknown level %q", s)
}
