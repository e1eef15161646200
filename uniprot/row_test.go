package uniprot

import (
	"os"
	"path/filepath"
	"testing"
)

func sampleRows() []SequenceRow {
	return []SequenceRow{
		{
			DB:           "sp",
			UniqueID:     "Q6GZX4",
			EntryName:    "001R_FRG3G",
			ProteinName:  "Putative transcription factor 001R",
			OrganismName: "Frog virus 3 (isolate Goorha)",
			OrganismID:   "654924",
			Sequence:     "MAFSAEDVLK",
		},
		{
			DB:           "sp",
			UniqueID:     "P12345",
			EntryName:    "TEST_HUMAN",
			ProteinName:  "Some protein, with a comma",
			OrganismName: "Homo sapiens",
			OrganismID:   "9606",
			Sequence:     "MKVL",
		},
	}
}

func TestWriteAndReadRows(t *testing.T) {
	path := filepath.Join(t.TempDir(), "seq.csv")
	want := sampleRows()

	if err := WriteRows(path, want); err != nil {
		t.Fatal(err)
	}

	got, err := ReadRows(path)
	if err != nil {
		t.Fatal(err)
	}
	if len(got) != len(want) {
		t.Fatalf("expected %d rows, got %d", len(want), len(got))
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("row %d mismatch: got %+v, want %+v", i, got[i], want[i])
		}
	}
}

func TestReadRowsTabDelimited(t *testing.T) {
	path := filepath.Join(t.TempDir(), "seq.tsv")
	content := "db\tunique_id\tentry_name\tprotein_name\torganism_name\torganism_id\tsequence\n" +
		"sp\tQ6GZX4\t001R_FRG3G\tSome protein\tFrog virus 3\t654924\tMAFS\n"
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}

	rows, err := ReadRows(path)
	if err != nil {
		t.Fatal(err)
	}
	if len(rows) != 1 {
		t.Fatalf("expected 1 row, got %d", len(rows))
	}
	if rows[0].OrganismID != "654924" || rows[0].Sequence != "MAFS" {
		t.Errorf("unexpected row: %+v", rows[0])
	}
}

func TestOrganismIDs(t *testing.T) {
	ids := OrganismIDs(sampleRows())
	if len(ids) != 2 || ids[0] != "654924" || ids[1] != "9606" {
		t.Fatalf("unexpected ids: %v", ids)
	}
}

func TestSummarizeLengths(t *testing.T) {
	sum, err := SummarizeLengths(sampleRows())
	if err != nil {
		t.Fatal(err)
	}
	if sum.Count != 2 {
		t.Errorf("count: got %d", sum.Count)
	}
	if sum.Min != 4 || sum.Max != 10 {
		t.Errorf("min/max: got %v/%v", sum.Min, sum.Max)
	}
	if sum.Mean != 7 || sum.Median != 7 {
		t.Errorf("mean/median: got %v/%v", sum.Mean, sum.Median)
	}
}

func TestSummarizeLengthsEmpty(t *testing.T) {
	sum, err := SummarizeLengths(nil)
	if err != nil {
		t.Fatal(err)
	}
	if sum.Count != 0 {
		t.Errorf("count: got %d", sum.Count)
	}
}
