package journal

import (
	"bytes"
	"io"
	"testing"
	"time"
)

func TestWriteReadRoundTrip(t *testing.T) {
	var buf bytes.Buffer
	w := NewWriter(&buf)

	stamp := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	records := []Record{
		{Verb: "get", Path: "/clock", At: stamp},
		{Verb: "get", Path: "/search?q=a&q=b", At: stamp.Add(time.Second)},
	}
	for _, rec := range records {
		if err := w.Write(rec); err != nil {
			t.Fatalf("Write: %v", err)
		}
	}

	got, err := ReadAll(&buf)
	if err != nil {
		t.Fatalf("ReadAll: %v", err)
	}
	if len(got) != len(records) {
		t.Fatalf("read %d records, want %d", len(got), len(records))
	}
	for i := range got {
		if got[i].Verb != records[i].Verb || got[i].Path != records[i].Path {
			t.Errorf("record %d = %+v, want %+v", i, got[i], records[i])
		}
		if !got[i].At.Equal(records[i].At) {
			t.Errorf("record %d timestamp = %v, want %v", i, got[i].At, records[i].At)
		}
	}
}

func TestAppendStampsTime(t *testing.T) {
	var buf bytes.Buffer
	w := NewWriter(&buf)

	before := time.Now().UTC()
	if err := w.Append("get", "/x"); err != nil {
		t.Fatalf("Append: %v", err)
	}
	after := time.Now().UTC()

	rec, err := NewReader(&buf).Next()
	if err != nil {
		t.Fatalf("Next: %v", err)
	}
	if rec.At.Before(before) || rec.At.After(after) {
		t.Errorf("At = %v, want between %v and %v", rec.At, before, after)
	}
}

func TestReaderEOF(t *testing.T) {
	r := NewReader(bytes.NewReader(nil))
	if _, err := r.Next(); err != io.EOF {
		t.Errorf("Next on empty stream = %v, want io.EOF", err)
	}
}

func TestReadAllEmpty(t *testing.T) {
	got, err := ReadAll(bytes.NewReader(nil))
	if err != nil {
		t.Fatalf("ReadAll: %v", err)
	}
	if len(got) != 0 {
		t.Errorf("ReadAll = %+v, want empty", got)
	}
}
