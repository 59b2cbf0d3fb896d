package logger

import (
	"strings"

	"github.com/omnihash/omnihash/errors"
)

type LogLevel int

const (
	LevelDebug LogLevel = iota
	LevelInfo
	LevelWarn
	LevelError
	LevelNone
)

// Levelify maps a level name (case-insensitive) to a LogLevel.
func Levelify(levelString string) (LogLevel, error) {
	switch strings.ToUpper(levelString) {
	case "DEBUG":
		return LevelDebug, nil
	case "INFO":
		return LevelInfo, nil
	case "WARN":
		return LevelWarn, nil
	case "ERROR":
		return LevelError, nil
	case "NONE":
		return LevelNone, nil
	default:
		return LevelNone, errors.Errorf("Unknown LogLevel string '%s', expected one of [DEBUG, INFO, WARN, ERROR, NONE]", levelString)
	}
}
