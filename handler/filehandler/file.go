package filehandler

import (
	"bytes"
	"errors"
	"sync"

	"golang.org/x/text/encoding"
	"golang.org/x/text/encoding/unicode"

	"github.com/philipp01105/csplog/core"
	"github.com/philipp01105/csplog/formatter"
	"github.com/philipp01105/csplog/handler"
	"github.com/philipp01105/csplog/rotate"
)

// ErrNoEncoding is returned by SetEncoding for a nil encoding.
var ErrNoEncoding = errors.New("filehandler: nil encoding")

// Handler writes formatted, encoded entries to a rotating writer.
type Handler struct {
	mu        sync.Mutex
	writer    rotate.Writer
	pattern   string
	formatter formatter.Formatter
	encoding  encoding.Encoding
	encoder   *encoding.Encoder
	stats     *handler.Stats
	closed    bool
}

// New binds a handler to an opened writer. pattern is the opener pattern
// the writer was opened with. The handler starts with a LineFormatter and
// UTF-8 encoding.
func New(w rotate.Writer, pattern string) *Handler {
	h := &Handler{
		writer:    w,
		pattern:   pattern,
		formatter: formatter.NewLineFormatter(),
		stats:     handler.NewStats(),
	}
	h.setEncoding(unicode.UTF8)
	return h
}

// Open opens pattern with opener and binds a handler to the result.
func Open(opener rotate.Opener, pattern string, policy rotate.Policy) (*Handler, error) {
	w, err := opener.Open(pattern, policy)
	if err != nil {
		return nil, err
	}
	return New(w, pattern), nil
}

// Pattern returns the opener pattern, e.g. /logs/record.pid42.%d.
func (h *Handler) Pattern() string {
	return h.pattern
}

// Path returns the active file name.
func (h *Handler) Path() string {
	return rotate.FileName(h.pattern, 0)
}

// SetFormatter replaces the formatter. A nil formatter is ignored.
func (h *Handler) SetFormatter(f formatter.Formatter) {
	if f == nil {
		return
	}
	h.mu.Lock()
	h.formatter = f
	h.mu.Unlock()
}

// Formatter returns the bound formatter.
func (h *Handler) Formatter() formatter.Formatter {
	h.mu.Lock()
	defer h.mu.Unlock()
	return h.formatter
}

// SetEncoding sets the character encoding records are written in.
func (h *Handler) SetEncoding(enc encoding.Encoding) error {
	if enc == nil {
		return ErrNoEncoding
	}
	h.mu.Lock()
	h.setEncoding(enc)
	h.mu.Unlock()
	return nil
}

func (h *Handler) setEncoding(enc encoding.Encoding) {
	h.encoding = enc
	h.encoder = encoding.ReplaceUnsupported(enc.NewEncoder())
}

// Encoding returns the bound character encoding.
func (h *Handler) Encoding() encoding.Encoding {
	h.mu.Lock()
	defer h.mu.Unlock()
	return h.encoding
}

// Handle formats, encodes and writes one entry. Entries handled after
// Close are dropped without error.
func (h *Handler) Handle(entry *core.Entry) error {
	h.mu.Lock()
	defer h.mu.Unlock()

	if h.closed {
		return nil
	}

	data, err := h.formatter.Format(entry)
	if err != nil {
		h.stats.IncrementFailed()
		return err
	}

	data, err = h.encoder.Bytes(bytes.ToValidUTF8(data, []byte("\uFFFD")))
	if err != nil {
		h.stats.IncrementFailed()
		return err
	}

	if _, err := h.writer.Write(data); err != nil {
		h.stats.IncrementFailed()
		return err
	}
	h.stats.IncrementProcessed()
	return nil
}

var _ handler.StatsProvider = (*Handler)(nil)

// Stats returns a snapshot of the current statistics
func (h *Handler) Stats() handler.Snapshot {
	return h.stats.GetSnapshot()
}

// Close closes the underlying writer. Closing twice is a no-op.
func (h *Handler) Close() error {
	h.mu.Lock()
	defer h.mu.Unlock()

	if h.closed {
		return nil
	}
	h.closed = true

	return h.writer.Close()
}
