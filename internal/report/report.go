package report

import (
	"fmt"
	"log"
	"sort"
	"strings"
	"sync"
)

// Level classifies the severity of a reported event.
type Level string

const (
	LevelDebug Level = "DEBUG"
	LevelInfo  Level = "INFO"
	LevelWarn  Level = "WARN"
	LevelError Level = "ERROR"
)

// Fields carries structured context (city, bucket, key, error, ...) with an event.
type Fields map[string]any

// Event is a single reported occurrence.
type Event struct {
	Level   Level
	Message string
	Fields  Fields
}

// Reporter receives events from the archiver and its collaborators.
type Reporter interface {
	Report(level Level, msg string, fields Fields)
}

// LogReporter renders events through the standard logger as
// "LEVEL: message key=value ..." lines.
type LogReporter struct {
	Logger *log.Logger
}

// NewLogReporter returns a LogReporter backed by the default logger.
func NewLogReporter() *LogReporter {
	return &LogReporter{Logger: log.Default()}
}

func (r *LogReporter) Report(level Level, msg string, fields Fields) {
	r.Logger.Printf("%s: %s%s", level, msg, formatFields(fields))
}

// formatFields renders fields as " key=value" pairs in sorted key order so
// output is stable.
func formatFields(fields Fields) string {
	if len(fields) == 0 {
		return ""
	}

	keys := make([]string, 0, len(fields))
	for k := range fields {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	var b strings.Builder
	for _, k := range keys {
		fmt.Fprintf(&b, " %s=%v", k, fields[k])
	}
	return b.String()
}

// Recorder captures events in memory so tests can assert on what was
// reported instead of scraping console output.
type Recorder struct {
	mu     sync.Mutex
	events []Event
}

func (r *Recorder) Report(level Level, msg string, fields Fields) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.events = append(r.events, Event{Level: level, Message: msg, Fields: fields})
}

// Events returns a copy of everything reported so far.
func (r *Recorder) Events() []Event {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]Event, len(r.events))
	copy(out, r.events)
	return out
}
