package record

import (
	"bufio"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"github.com/klauspost/compress/zstd"
)

// FileName is the recording file for a session inside a record directory.
func FileName(sessionID string) string {
	return fmt.Sprintf("session-%s.jsonl.zst", sessionID)
}

// Writer appends records for one session. The file is created on the first
// write and closed by EndSession or Close.
type Writer struct {
	path string

	mu  sync.Mutex
	f   *os.File
	enc *zstd.Encoder
	w   *bufio.Writer
}

func NewWriter(dir, sessionID string) (*Writer, error) {
	if strings.TrimSpace(dir) == "" {
		return nil, fmt.Errorf("record: empty directory")
	}
	if strings.TrimSpace(sessionID) == "" {
		return nil, fmt.Errorf("record: empty session id")
	}
	return &Writer{path: filepath.Join(dir, FileName(sessionID))}, nil
}

func (w *Writer) Path() string { return w.path }

func (w *Writer) BeginSession(h SessionHeader) error {
	h.Type = TypeHeader
	return w.write(h)
}

func (w *Writer) RecordTick(t TickRecord) error {
	t.Type = TypeTick
	return w.write(t)
}

// EndSession writes the footer and closes the file. A session that never
// began leaves no file behind.
func (w *Writer) EndSession(f SessionFooter) error {
	w.mu.Lock()
	opened := w.w != nil
	w.mu.Unlock()
	if !opened {
		return nil
	}
	f.Type = TypeFooter
	if err := w.write(f); err != nil {
		return err
	}
	return w.Close()
}

func (w *Writer) Close() error {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.closeLocked()
}

func (w *Writer) write(v any) error {
	w.mu.Lock()
	defer w.mu.Unlock()

	if w.w == nil {
		if err := w.openLocked(); err != nil {
			return err
		}
	}
	b, err := json.Marshal(v)
	if err != nil {
		return err
	}
	if _, err := w.w.Write(b); err != nil {
		return err
	}
	if err := w.w.WriteByte('\n'); err != nil {
		return err
	}
	return w.w.Flush()
}

func (w *Writer) openLocked() error {
	if err := os.MkdirAll(filepath.Dir(w.path), 0o755); err != nil {
		return err
	}
	f, err := os.OpenFile(w.path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return err
	}
	enc, err := zstd.NewWriter(f, zstd.WithEncoderLevel(zstd.SpeedFastest))
	if err != nil {
		_ = f.Close()
		return err
	}
	w.f = f
	w.enc = enc
	w.w = bufio.NewWriterSize(enc, 128*1024)
	return nil
}

func (w *Writer) closeLocked() error {
	var err1 error
	if w.w != nil {
		_ = w.w.Flush()
	}
	if w.enc != nil {
		err1 = w.enc.Close()
		w.enc = nil
	}
	if w.f != nil {
		_ = w.f.Close()
		w.f = nil
	}
	w.w = nil
	return err1
}
