// Package journal persists engine completion notifications as a stream of
// msgpack-encoded records.
//
// The engine's notifier is an in-process broadcast; the journal is its
// durable counterpart, letting out-of-process observers replay what partial
// refreshes happened and when. Records are appended as independent msgpack
// values, so a reader can consume a journal that is still being written.
package journal

import (
	"io"
	"sync"
	"time"

	"github.com/vmihailenco/msgpack/v5"
)

// Record is one completed firing.
type Record struct {
	Verb string    `msgpack:"verb"`
	Path string    `msgpack:"path"`
	At   time.Time `msgpack:"at"`
}

// Writer appends records to an underlying stream. Safe for concurrent use;
// firings complete on independent goroutines.
type Writer struct {
	mu  sync.Mutex
	enc *msgpack.Encoder
}

// NewWriter creates a journal writer over w.
func NewWriter(w io.Writer) *Writer {
	return &Writer{enc: msgpack.NewEncoder(w)}
}

// Append records a completion stamped with the current time.
func (w *Writer) Append(verb, path string) error {
	return w.Write(Record{Verb: verb, Path: path, At: time.Now().UTC()})
}

// Write appends a fully specified record.
func (w *Writer) Write(rec Record) error {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.enc.Encode(rec)
}

// Reader decodes records from a journal stream.
type Reader struct {
	dec *msgpack.Decoder
}

// NewReader creates a journal reader over r.
func NewReader(r io.Reader) *Reader {
	return &Reader{dec: msgpack.NewDecoder(r)}
}

// Next returns the next record, or io.EOF when the stream is exhausted.
func (r *Reader) Next() (Record, error) {
	var rec Record
	if err := r.dec.Decode(&rec); err != nil {
		return Record{}, err
	}
	return rec, nil
}

// ReadAll decodes every record remaining in r.
func ReadAll(r io.Reader) ([]Record, error) {
	jr := NewReader(r)
	var recs []Record
	for {
		rec, err := jr.Next()
		if err == io.EOF {
			return recs, nil
		}
		if err != nil {
			return recs, err
		}
		recs = append(recs, rec)
	}
}
