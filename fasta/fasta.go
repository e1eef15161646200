// Package fasta reads and writes FASTA formatted sequence files. Input may
// be plain text or gzipped; compression is detected from the magic bytes so
// callers can hand over uniprot_sprot.fasta.gz unmodified.
package fasta

import (
	"bufio"
	"compress/gzip"
	"fmt"
	"io"
	"strings"

	"github.com/carbocation/pfx"
)

// BufferSize is the size of the buffered reader wrapping the input.
var BufferSize = 4096 * 32

// Record is a single FASTA entry: the header line without its leading '>'
// and the concatenated sequence lines.
type Record struct {
	Header   string
	Sequence string
}

// Reader yields FASTA records one at a time.
type Reader struct {
	scanner *bufio.Scanner

	// pending header from the previous Read call
	next string
	done bool
}

// NewReader wraps r. If the stream begins with the gzip magic bytes it is
// decompressed transparently.
func NewReader(r io.Reader) (*Reader, error) {
	buffRead := bufio.NewReaderSize(r, BufferSize)

	if magic, _ := buffRead.Peek(2); len(magic) == 2 && magic[0] == 0x1f && magic[1] == 0x8b {
		gz, err := gzip.NewReader(buffRead)
		if err != nil {
			return nil, pfx.Err(err)
		}

		scanner := bufio.NewScanner(gz)
		scanner.Buffer(make([]byte, BufferSize), BufferSize)
		return &Reader{scanner: scanner}, nil
	}

	scanner := bufio.NewScanner(buffRead)
	scanner.Buffer(make([]byte, BufferSize), BufferSize)
	return &Reader{scanner: scanner}, nil
}

// Read returns the next record, or io.EOF once the input is exhausted.
func (r *Reader) Read() (Record, error) {
	if r.done {
		return Record{}, io.EOF
	}

	var rec Record
	var seq strings.Builder

	// Scan forward to the first header if we don't have one pending.
	for r.next == "" {
		if !r.scanner.Scan() {
			r.done = true
			if err := r.scanner.Err(); err != nil {
				return Record{}, pfx.Err(err)
			}
			return Record{}, io.EOF
		}

		line := strings.TrimRight(r.scanner.Text(), "\r")
		if strings.HasPrefix(line, ">") {
			r.next = line
		}
	}

	rec.Header = strings.TrimPrefix(r.next, ">")
	r.next = ""

	for r.scanner.Scan() {
		line := strings.TrimRight(r.scanner.Text(), "\r")
		if strings.HasPrefix(line, ">") {
			// Start of the following record; stash it for the next call.
			r.next = line
			rec.Sequence = seq.String()
			return rec, nil
		}

		seq.WriteString(strings.TrimSpace(line))
	}

	r.done = true
	if err := r.scanner.Err(); err != nil {
		return Record{}, pfx.Err(err)
	}

	rec.Sequence = seq.String()
	return rec, nil
}

// ReadAll consumes the reader and returns every record.
func ReadAll(r io.Reader) ([]Record, error) {
	fr, err := NewReader(r)
	if err != nil {
		return nil, err
	}

	var out []Record
	for {
		rec, err := fr.Read()
		if err == io.EOF {
			break
		} else if err != nil {
			return nil, err
		}

		out = append(out, rec)
	}

	return out, nil
}

// Write emits records in FASTA format, one sequence line per record.
func Write(w io.Writer, records []Record) error {
	for _, rec := range records {
		if _, err := fmt.Fprintf(w, ">%s\n%s\n", rec.Header, rec.Sequence); err != nil {
			return pfx.Err(err)
		}
	}

	return nil
}
