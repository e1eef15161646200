package fasta

import (
	"bytes"
	"compress/gzip"
	"io"
	"strings"
	"testing"
)

func TestReadAllSimple(t *testing.T) {
	input := ">seq1\nMKVL\nAATT\n>seq2 some description\nGGWW\n"

	recs, err := ReadAll(strings.NewReader(input))
	if err != nil {
		t.Fatal(err)
	}
	if len(recs) != 2 {
		t.Fatalf("expected 2 records, got %d", len(recs))
	}
	if recs[0].Header != "seq1" || recs[0].Sequence != "MKVLAATT" {
		t.Fatalf("unexpected first record: %+v", recs[0])
	}
	if recs[1].Header != "seq2 some description" || recs[1].Sequence != "GGWW" {
		t.Fatalf("unexpected second record: %+v", recs[1])
	}
}

func TestReadNoTrailingNewline(t *testing.T) {
	recs, err := ReadAll(strings.NewReader(">seq1\nMKVL"))
	if err != nil {
		t.Fatal(err)
	}
	if len(recs) != 1 || recs[0].Sequence != "MKVL" {
		t.Fatalf("unexpected records: %+v", recs)
	}
}

func TestReadBlankLines(t *testing.T) {
	recs, err := ReadAll(strings.NewReader("\n>seq1\nMKVL\n\nAATT\n"))
	if err != nil {
		t.Fatal(err)
	}
	if len(recs) != 1 || recs[0].Sequence != "MKVLAATT" {
		t.Fatalf("unexpected records: %+v", recs)
	}
}

func TestReadGzipped(t *testing.T) {
	var buf bytes.Buffer
	gz := gzip.NewWriter(&buf)
	if _, err := gz.Write([]byte(">seq1\nMKVL\n")); err != nil {
		t.Fatal(err)
	}
	if err := gz.Close(); err != nil {
		t.Fatal(err)
	}

	recs, err := ReadAll(&buf)
	if err != nil {
		t.Fatal(err)
	}
	if len(recs) != 1 || recs[0].Header != "seq1" || recs[0].Sequence != "MKVL" {
		t.Fatalf("unexpected records: %+v", recs)
	}
}

func TestReaderSequential(t *testing.T) {
	fr, err := NewReader(strings.NewReader(">a\nMK\n>b\nVL\n"))
	if err != nil {
		t.Fatal(err)
	}

	first, err := fr.Read()
	if err != nil {
		t.Fatal(err)
	}
	if first.Header != "a" || first.Sequence != "MK" {
		t.Fatalf("unexpected first record: %+v", first)
	}

	second, err := fr.Read()
	if err != nil {
		t.Fatal(err)
	}
	if second.Header != "b" || second.Sequence != "VL" {
		t.Fatalf("unexpected second record: %+v", second)
	}

	if _, err := fr.Read(); err != io.EOF {
		t.Fatalf("expected io.EOF, got %v", err)
	}
}

func TestWrite(t *testing.T) {
	var buf bytes.Buffer
	records := []Record{{Header: "seq1", Sequence: "MKVL"}}

	if err := Write(&buf, records); err != nil {
		t.Fatal(err)
	}
	if buf.String() != ">seq1\nMKVL\n" {
		t.Fatalf("unexpected output: %q", buf.String())
	}
}
