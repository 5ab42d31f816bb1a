package formatter

import (
	"bytes"
	"strings"

	"github.com/philipp01105/csplog/core"
)

// LineTimestampFormat is the millisecond layout used by LineFormatter.
const LineTimestampFormat = "2006-01-02 15:04:05.000"

// LineFormatter renders the record layout written to rotating log files:
//
//	2026-01-15 12:00:00.000 INFO message key=value error=cause
//
// Every record is exactly one line; newlines inside the message or the
// error text are escaped.
type LineFormatter struct {
	Config
}

// NewLineFormatter creates a LineFormatter with the millisecond layout.
// It has the shape of a formatter constructor so that it can be passed
// wherever a fresh formatter per handler is needed.
func NewLineFormatter() Formatter {
	return &LineFormatter{Config: Config{TimestampFormat: LineTimestampFormat}}
}

var lineEscaper = strings.NewReplacer("\r\n", `\n`, "\n", `\n`, "\r", `\r`)

// Format formats an entry as a single line
func (f *LineFormatter) Format(entry *core.Entry) ([]byte, error) {
	buf := getBuffer()
	defer putBuffer(buf)

	f.formatToBuffer(entry, buf)
	return copyOut(buf), nil
}

func (f *LineFormatter) formatToBuffer(entry *core.Entry, buf *bytes.Buffer) {
	layout := f.TimestampFormat
	if layout == "" {
		layout = LineTimestampFormat
	}
	buf.Write(entry.Time.AppendFormat(buf.AvailableBuffer(), layout))
	buf.WriteByte(' ')
	buf.WriteString(entry.Level.String())
	buf.WriteByte(' ')

	if f.IncludeCaller && entry.Caller.Defined {
		buf.WriteByte('[')
		buf.WriteString(entry.Caller.ShortFile)
		buf.WriteByte(':')
		buf.Write(appendInt(buf.AvailableBuffer(), entry.Caller.Line))
		buf.WriteString("] ")
	}

	lineEscaper.WriteString(buf, entry.Message)
	writeFields(buf, entry.Fields)

	if entry.Err != nil {
		buf.WriteString(" error=")
		lineEscaper.WriteString(buf, entry.Err.Error())
	}
	buf.WriteByte('\n')
}
