package logging

import (
	"encoding/json"
	"io"
	"log"
	"os"
	"time"
)

// Fields carries structured key/value pairs attached to a log line.
type Fields map[string]interface{}

var out io.Writer = os.Stderr

// SetOutput redirects log output; used by tests to capture lines.
func SetOutput(w io.Writer) { out = w }

func emit(level, msg string, err error, fields Fields) {
	if fields == nil {
		fields = Fields{}
	}
	fields["level"] = level
	fields["ts"] = time.Now().UTC().Format(time.RFC3339)
	fields["msg"] = msg
	if err != nil {
		fields["error"] = err.Error()
	}
	b, marshalErr := json.Marshal(fields)
	if marshalErr != nil {
		// fallback to plain logging
		log.Printf("%s: %s (%v)\n", level, msg, fields)
		return
	}
	b = append(b, '\n')
	_, _ = out.Write(b)
}

// Info logs an informational message with optional fields.
func Info(msg string, fields Fields) {
	emit("info", msg, nil, fields)
}

// Warn logs a recoverable anomaly.
func Warn(msg string, fields Fields) {
	emit("warn", msg, nil, fields)
}

// Error logs an error message and includes the error text in the fields.
func Error(msg string, err error, fields Fields) {
	emit("error", msg, err, fields)
}

// Fatal logs a fatal error and exits the process.
func Fatal(msg string, err error, fields Fields) {
	emit("fatal", msg, err, fields)
	os.Exit(1)
}
