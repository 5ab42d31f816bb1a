package formatter

import (
	"bytes"
	"strconv"
	"time"

	"github.com/philipp01105/csplog/core"
)

// TextFormatter formats entries for humans reading a console: RFC3339
// time, bracketed level, sink name, message and fields.
type TextFormatter struct {
	Config
}

// NewTextFormatter creates a new text formatter
func NewTextFormatter(cfg Config) *TextFormatter {
	if cfg.TimestampFormat == "" {
		cfg.TimestampFormat = time.RFC3339
	}
	return &TextFormatter{Config: cfg}
}

// Format formats an entry as text
func (f *TextFormatter) Format(entry *core.Entry) ([]byte, error) {
	buf := getBuffer()
	defer putBuffer(buf)

	f.formatToBuffer(entry, buf)
	return copyOut(buf), nil
}

func (f *TextFormatter) formatToBuffer(entry *core.Entry, buf *bytes.Buffer) {
	buf.Write(entry.Time.AppendFormat(buf.AvailableBuffer(), f.TimestampFormat))
	buf.WriteString(" [")
	buf.WriteString(entry.Level.String())
	buf.WriteString("] ")

	if entry.Logger != "" {
		buf.WriteString(entry.Logger)
		buf.WriteString(": ")
	}

	if f.IncludeCaller && entry.Caller.Defined {
		buf.WriteByte('[')
		buf.WriteString(entry.Caller.ShortFile)
		buf.WriteByte(':')
		buf.Write(appendInt(buf.AvailableBuffer(), entry.Caller.Line))
		buf.WriteString("] ")
	}

	buf.WriteString(entry.Message)
	writeFields(buf, entry.Fields)

	if entry.Err != nil {
		buf.WriteString(" error=")
		buf.WriteString(entry.Err.Error())
	}
	buf.WriteByte('\n')
}

func appendInt(dst []byte, n int) []byte {
	return strconv.AppendInt(dst, int64(n), 10)
}
