package logger

import (
	"fmt"
	"io"
	"log"
	"os"
	"runtime/debug"
	"time"
)

type Logger interface {
	Debug(tag, msg string, args ...interface{})
	DebugWithDetails(tag, msg string, args ...interface{})
	Info(tag, msg string, args ...interface{})
	Warn(tag, msg string, args ...interface{})
	Error(tag, msg string, args ...interface{})
	ErrorWithDetails(tag, msg string, args ...interface{})
	HandlePanic(tag string)
	ToggleForcedDebug()
	Flush() error
	FlushTimeout(time.Duration) error
}

type logger struct {
	level       LogLevel
	logger      *log.Logger
	forcedDebug bool
}

func New(level LogLevel, out *log.Logger) Logger {
	return &logger{
		level:  level,
		logger: out,
	}
}

func NewLogger(level LogLevel) Logger {
	return NewWriterLogger(level, os.Stderr)
}

func NewWriterLogger(level LogLevel, writer io.Writer) Logger {
	return New(level, log.New(writer, "", log.LstdFlags))
}

func (l *logger) Flush() error                     { return nil }
func (l *logger) FlushTimeout(time.Duration) error { return nil }

func (l *logger) Debug(tag, msg string, args ...interface{}) {
	if l.level <= LevelDebug || l.forcedDebug {
		msg = "DEBUG - " + msg
		l.printf(tag, msg, args...)
	}
}

// DebugWithDetails dumps multi-line details after the message.
func (l *logger) DebugWithDetails(tag, msg string, args ...interface{}) {
	msg = msg + "\n********************\n%s\n********************"
	l.Debug(tag, msg, args...)
}

func (l *logger) Info(tag, msg string, args ...interface{}) {
	if l.level <= LevelInfo || l.forcedDebug {
		msg = "INFO - " + msg
		l.printf(tag, msg, args...)
	}
}

func (l *logger) Warn(tag, msg string, args ...interface{}) {
	if l.level <= LevelWarn || l.forcedDebug {
		msg = "WARN - " + msg
		l.printf(tag, msg, args...)
	}
}

func (l *logger) Error(tag, msg string, args ...interface{}) {
	if l.level <= LevelError || l.forcedDebug {
		msg = "ERROR - " + msg
		l.printf(tag, msg, args...)
	}
}

func (l *logger) ErrorWithDetails(tag, msg string, args ...interface{}) {
	msg = msg + "\n********************\n%s\n********************"
	l.Error(tag, msg, args...)
}

// HandlePanic logs a recovered panic with its stack and exits.
// Meant to be deferred at the top of goroutines that must not crash silently.
func (l *logger) HandlePanic(tag string) {
	if l.recoverPanic(tag) {
		os.Exit(2)
	}
}

func (l *logger) recoverPanic(tag string) bool {
	if e := recover(); e != nil {
		var msg string
		switch obj := e.(type) {
		case string:
			msg = obj
		case fmt.Stringer:
			msg = obj.String()
		case error:
			msg = obj.Error()
		default:
			msg = fmt.Sprintf("%#v", obj)
		}

		l.ErrorWithDetails(tag, "Panic: %s", msg, debug.Stack())
		return true
	}

	return false
}

func (l *logger) ToggleForcedDebug() {
	l.forcedDebug = !l.forcedDebug
}

func (l *logger) printf(tag, msg string, args ...interface{}) {
	msg = fmt.Sprintf(msg, args...)
	l.logger.Printf("[%s] %s", tag, msg)
}
