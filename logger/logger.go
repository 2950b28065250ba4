// This file is part of Gopher2600.
//
// Gopher2600 is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// Gopher2600 is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with Gopher2600.  If not, see <https://www.gnu.org/licenses/>.

// Package logger is a small ring-buffer logger shared by every part of the
// emulation that wants to leave a breadcrumb without owning an io.Writer of
// its own: the cartridge loader and cmd/c64run's ROM loading both log here.
package logger

import (
	"fmt"
	"io"
	"strings"
	"sync"
)

// Permission decides whether a particular caller's log entries are actually
// recorded. The package-level functions always use Allow; a Logger's own Log
// and Logf accept any Permission, so a caller can mute its entries.
type Permission interface {
	AllowLogging() bool
}

type allowPermission struct{}

func (allowPermission) AllowLogging() bool { return true }

// Allow is the Permission value that never suppresses logging.
var Allow Permission = allowPermission{}

type entry struct {
	tag    string
	detail string
}

// Logger is a fixed-capacity ring buffer of tag/detail entries.
type Logger struct {
	mu      sync.Mutex
	entries []entry
	size    int
}

// NewLogger creates a Logger that retains at most size entries, discarding
// the oldest once full.
func NewLogger(size int) *Logger {
	return &Logger{size: size}
}

func formatDetail(detail interface{}) string {
	switch d := detail.(type) {
	case error:
		return d.Error()
	case fmt.Stringer:
		return d.String()
	default:
		return fmt.Sprintf("%v", d)
	}
}

// Log appends tag/detail as a new entry, unless perm forbids it.
func (l *Logger) Log(perm Permission, tag string, detail interface{}) {
	if perm == nil || !perm.AllowLogging() {
		return
	}

	l.mu.Lock()
	defer l.mu.Unlock()

	l.entries = append(l.entries, entry{tag: tag, detail: formatDetail(detail)})
	if l.size > 0 && len(l.entries) > l.size {
		l.entries = l.entries[len(l.entries)-l.size:]
	}
}

// Logf is Log with the detail built via fmt.Sprintf.
func (l *Logger) Logf(perm Permission, tag string, format string, args ...interface{}) {
	l.Log(perm, tag, fmt.Sprintf(format, args...))
}

// Clear empties the log.
func (l *Logger) Clear() {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.entries = nil
}

// Write writes every retained entry to w, oldest first.
func (l *Logger) Write(w io.Writer) {
	l.Tail(w, -1)
}

// Tail writes the most recent n entries to w, oldest first. A negative n
// writes every retained entry.
func (l *Logger) Tail(w io.Writer, n int) {
	l.mu.Lock()
	entries := make([]entry, len(l.entries))
	copy(entries, l.entries)
	l.mu.Unlock()

	if n >= 0 && n < len(entries) {
		entries = entries[len(entries)-n:]
	}

	var b strings.Builder
	for _, e := range entries {
		fmt.Fprintf(&b, "%s: %s\n", e.tag, e.detail)
	}
	io.WriteString(w, b.String())
}

// central is the package-level logger every free function below writes to.
var central = NewLogger(1000)

// Log adds an entry to the central logger. Always allowed.
func Log(tag string, detail interface{}) {
	central.Log(Allow, tag, detail)
}

// Logf is Log with the detail built via fmt.Sprintf.
func Logf(tag string, format string, args ...interface{}) {
	central.Logf(Allow, tag, format, args...)
}

// Write writes the central logger's entries to w.
func Write(w io.Writer) {
	central.Write(w)
}

// Tail writes the central logger's n most recent entries to w.
func Tail(w io.Writer, n int) {
	central.Tail(w, n)
}

// Clear empties the central logger.
func Clear() {
	central.Clear()
}
