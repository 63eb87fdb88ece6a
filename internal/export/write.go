package export

import (
	"bufio"
	"bytes"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/klauspost/compress/zstd"

	"maptojson/internal/level"
	"maptojson/internal/names"
)

var ErrEmptyPath = errors.New("empty destination path")

type Compression string

const (
	// CompressAuto compresses when the destination ends in ".zst".
	CompressAuto   Compression = "auto"
	CompressAlways Compression = "always"
	CompressNever  Compression = "never"
)

type Options struct {
	Indent string

	// Atomic writes to a temporary file beside the destination and renames
	// it into place once everything has been written.
	Atomic   bool
	Compress Compression
}

func DefaultOptions() Options {
	return Options{Indent: "  ", Atomic: true, Compress: CompressAuto}
}

type Exporter struct {
	tr   *Translator
	opts Options
}

func New(tables *names.Tables, opts Options) *Exporter {
	if opts.Compress == "" {
		opts.Compress = CompressAuto
	}
	return &Exporter{tr: NewTranslator(tables), opts: opts}
}

func (e *Exporter) Translator() *Translator { return e.tr }

// Result describes one finished export.
type Result struct {
	Path       string
	LevelName  string
	Bytes      int64
	Compressed bool

	// Digest is the sha256 of the uncompressed JSON text.
	Digest string
	Counts Counts
}

// Marshal assembles l and renders it as indented JSON text with a trailing
// newline. HTML characters are written as is.
func (e *Exporter) Marshal(l *level.Level) ([]byte, *Document, error) {
	doc := e.tr.Assemble(l)
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	enc.SetIndent("", e.opts.Indent)
	if err := enc.Encode(doc); err != nil {
		return nil, nil, fmt.Errorf("encode: %w", err)
	}
	return buf.Bytes(), doc, nil
}

// WriteFile exports l to path, replacing any existing file. The document
// is fully built before the destination is touched.
func (e *Exporter) WriteFile(path string, l level.Level) (Result, error) {
	if strings.TrimSpace(path) == "" {
		return Result{}, ErrEmptyPath
	}
	text, doc, err := e.Marshal(&l)
	if err != nil {
		return Result{}, err
	}
	sum := sha256.Sum256(text)
	res := Result{
		Path:       path,
		LevelName:  l.Name,
		Compressed: e.compress(path),
		Digest:     hex.EncodeToString(sum[:]),
		Counts:     doc.Counts(),
	}

	write := e.writeDirect
	if e.opts.Atomic {
		write = e.writeAtomic
	}
	n, err := write(path, text, res.Compressed)
	if err != nil {
		return Result{}, fmt.Errorf("write %s: %w", path, err)
	}
	res.Bytes = n
	return res, nil
}

func (e *Exporter) compress(path string) bool {
	switch e.opts.Compress {
	case CompressAlways:
		return true
	case CompressNever:
		return false
	default:
		return strings.EqualFold(filepath.Ext(path), ".zst")
	}
}

func (e *Exporter) writeDirect(path string, text []byte, compressed bool) (int64, error) {
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_TRUNC, 0o644)
	if err != nil {
		return 0, err
	}
	n, err := writeBody(f, text, compressed)
	if cerr := f.Close(); err == nil {
		err = cerr
	}
	return n, err
}

func (e *Exporter) writeAtomic(path string, text []byte, compressed bool) (int64, error) {
	dir := filepath.Dir(path)
	tmp, err := os.CreateTemp(dir, "."+filepath.Base(path)+".*.tmp")
	if err != nil {
		return 0, err
	}
	tmpPath := tmp.Name()
	ok := false
	defer func() {
		if !ok {
			_ = tmp.Close()
			_ = os.Remove(tmpPath)
		}
	}()

	n, err := writeBody(tmp, text, compressed)
	if err != nil {
		return 0, err
	}
	if err := tmp.Sync(); err != nil {
		return 0, err
	}
	if err := tmp.Close(); err != nil {
		return 0, err
	}
	if err := os.Chmod(tmpPath, 0o644); err != nil {
		return 0, err
	}
	if err := os.Rename(tmpPath, path); err != nil {
		return 0, err
	}
	ok = true
	return n, nil
}

func writeBody(f io.Writer, text []byte, compressed bool) (int64, error) {
	cw := &countingWriter{w: f}
	if !compressed {
		_, err := cw.Write(text)
		return cw.n, err
	}
	enc, err := zstd.NewWriter(cw, zstd.WithEncoderLevel(zstd.SpeedDefault))
	if err != nil {
		return 0, err
	}
	bw := bufio.NewWriterSize(enc, 256*1024)
	if _, err := bw.Write(text); err != nil {
		_ = enc.Close()
		return cw.n, err
	}
	if err := bw.Flush(); err != nil {
		_ = enc.Close()
		return cw.n, err
	}
	if err := enc.Close(); err != nil {
		return cw.n, err
	}
	return cw.n, nil
}

type countingWriter struct {
	w io.Writer
	n int64
}

func (c *countingWriter) Write(p []byte) (int, error) {
	n, err := c.w.Write(p)
	c.n += int64(n)
	return n, err
}
