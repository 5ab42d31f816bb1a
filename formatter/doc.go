// Package formatter turns entries into bytes.
//
// LineFormatter is the layout bound to rotating file handlers: a
// millisecond timestamp, the level name and the message, one record per
// line. TextFormatter is the friendlier layout used on the console by the
// root sink.
//
// Both formatters use a pooled bytes.Buffer and Append-style functions
// (time.AppendFormat, strconv.AppendInt). Buffers larger than 64 KiB are
// not returned to the pool so a single large record cannot permanently
// inflate memory usage.
package formatter
