// Package pktlog provides the leveled Logger interface consumed by the
// blockchain and utxostore packages, and a simple stderr-backed
// implementation. Packages hold a package-level `log` of this interface
// type, silent (Disabled) by default and swappable via each package's own
// UseLogger function, matching the convention visible throughout the
// teacher's subsystems (pktwallet/wallet/log.go, lnd/log.go, ...).
package pktlog

import (
	"fmt"
	"os"
	"sync"
	"time"
)

// Level is the level at which a logger is configured. Messages below the
// configured level are filtered.
type Level uint32

const (
	LevelTrace Level = iota
	LevelDebug
	LevelInfo
	LevelWarn
	LevelError
	LevelCritical
	LevelOff
)

var levelStrs = [...]string{"TRC", "DBG", "INF", "WRN", "ERR", "CRT"}

func (l Level) String() string {
	if int(l) >= len(levelStrs) {
		return "OFF"
	}
	return levelStrs[l]
}

// Logger is the interface consumed by this module's packages. Disabled
// is the zero-cost default; NewBackend produces one that writes to an
// io.Writer-like destination (here, always os.Stderr, since there is no
// config surface to redirect it).
type Logger interface {
	Tracef(format string, args ...interface{})
	Debugf(format string, args ...interface{})
	Infof(format string, args ...interface{})
	Warnf(format string, args ...interface{})
	Errorf(format string, args ...interface{})
	Criticalf(format string, args ...interface{})
}

type disabled struct{}

func (disabled) Tracef(string, ...interface{})    {}
func (disabled) Debugf(string, ...interface{})    {}
func (disabled) Infof(string, ...interface{})     {}
func (disabled) Warnf(string, ...interface{})     {}
func (disabled) Errorf(string, ...interface{})    {}
func (disabled) Criticalf(string, ...interface{}) {}

// Disabled is a Logger that discards everything. It is the zero value
// every package in this module starts with.
var Disabled Logger = disabled{}

type backend struct {
	mu    sync.Mutex
	level Level
	tag   string
}

// NewBackend returns a Logger tagged with the given subsystem name,
// writing lines of the form "<unix-ts> [LVL] TAG: message" to stderr,
// filtered by level.
func NewBackend(tag string, level Level) Logger {
	return &backend{level: level, tag: tag}
}

func (b *backend) log(lvl Level, format string, args ...interface{}) {
	if lvl < b.level {
		return
	}
	b.mu.Lock()
	defer b.mu.Unlock()
	fmt.Fprintf(os.Stderr, "%d [%s] %s: %s\n", time.Now().Unix(), lvl, b.tag, fmt.Sprintf(format, args...))
}

func (b *backend) Tracef(format string, args ...interface{})    { b.log(LevelTrace, format, args...) }
func (b *backend) Debugf(format string, args ...interface{})    { b.log(LevelDebug, format, args...) }
func (b *backend) Infof(format string, args ...interface{})     { b.log(LevelInfo, format, args...) }
func (b *backend) Warnf(format string, args ...interface{})     { b.log(LevelWarn, format, args...) }
func (b *backend) Errorf(format string, args ...interface{})    { b.log(LevelError, format, args...) }
func (b *backend) Criticalf(format string, args ...interface{}) { b.log(LevelCritical, format, args...) }
