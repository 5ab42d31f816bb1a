package formatter

import (
	"bytes"
	"sync"

	"github.com/philipp01105/csplog/core"
)

// Formatter renders one entry as a single newline-terminated record.
type Formatter interface {
	Format(entry *core.Entry) ([]byte, error)
}

// Config holds common formatter configuration
type Config struct {
	// IncludeCaller enables caller information in log output
	IncludeCaller bool
	// TimestampFormat specifies the time layout (empty for the formatter's default)
	TimestampFormat string
}

var bufferPool = &sync.Pool{
	New: func() interface{} {
		b := new(bytes.Buffer)
		b.Grow(256)
		return b
	},
}

func getBuffer() *bytes.Buffer {
	buf := bufferPool.Get().(*bytes.Buffer)
	buf.Reset()
	return buf
}

func putBuffer(buf *bytes.Buffer) {
	if buf.Cap() > 64*1024 {
		return
	}
	bufferPool.Put(buf)
}

// copyOut detaches the formatted bytes from a pooled buffer.
func copyOut(buf *bytes.Buffer) []byte {
	out := make([]byte, buf.Len())
	copy(out, buf.Bytes())
	return out
}

func writeFields(buf *bytes.Buffer, fields []core.Field) {
	for _, field := range fields {
		buf.WriteByte(' ')
		buf.WriteString(field.Key)
		buf.WriteByte('=')
		buf.WriteString(field.StringValue())
	}
}
