package logger

import (
	"log"
	"strings"
)

const (
	DEBUG int = iota
	INFO
	WARNING
	ERROR
	SILENCE
)

// ParseLevel maps a config string to a level, defaulting to INFO.
func ParseLevel(s string) int {
	switch strings.ToLower(s) {
	case "debug":
		return DEBUG
	case "info":
		return INFO
	case "warning", "warn":
		return WARNING
	case "error":
		return ERROR
	case "silence", "silent":
		return SILENCE
	default:
		return INFO
	}
}

type Logger interface {
	Debugf(msg string, a ...any)
	Infof(msg string, a ...any)
	Warnf(msg string, a ...any)
	Errorf(msg string, a ...any)
}

type defaultLogger struct {
	level  int
	prefix string
}

func NewLogger(level int) *defaultLogger {
	return &defaultLogger{level: level}
}

// WithPrefix returns a logger writing every line with the given prefix. The
// receiver is not modified.
func (l *defaultLogger) WithPrefix(prefix string) *defaultLogger {
	return &defaultLogger{level: l.level, prefix: prefix + " "}
}

func (l *defaultLogger) Debugf(msg string, a ...any) {
	if l.level <= DEBUG {
		log.Printf(l.prefix+msg+"\n", a...)
	}
}

func (l *defaultLogger) Infof(msg string, a ...any) {
	if l.level <= INFO {
		log.Printf(l.prefix+msg+"\n", a...)
	}
}

func (l *defaultLogger) Warnf(msg string, a ...any) {
	if l.level <= WARNING {
		log.Printf(l.prefix+msg+"\n", a...)
	}
}

func (l *defaultLogger) Errorf(msg string, a ...any) {
	if l.level <= ERROR {
		log.Printf(l.prefix+msg+"\n", a...)
	}
}
