package uniprot

import (
	"strings"
	"testing"
)

func TestParseHeader(t *testing.T) {
	s1 := "sp|Q6GZX4|001R_FRG3G Putative transcription factor 001R OS=Frog virus 3 (isolate Goorha) OX=654924 GN=FV3-001R PE=4 SV=1"

	fields, err := ParseHeader(s1)
	if err != nil {
		t.Fatal(err)
	}
	if fields.DB != "sp" {
		t.Errorf("db: got %q", fields.DB)
	}
	if fields.UniqueID != "Q6GZX4" {
		t.Errorf("unique_id: got %q", fields.UniqueID)
	}
	if fields.EntryName != "001R_FRG3G" {
		t.Errorf("entry_name: got %q", fields.EntryName)
	}
	if fields.ProteinName != "Putative transcription factor 001R" {
		t.Errorf("protein_name: got %q", fields.ProteinName)
	}
	if fields.OrganismName != "Frog virus 3 (isolate Goorha)" {
		t.Errorf("organism_name: got %q", fields.OrganismName)
	}
	if fields.OrganismID != "654924" {
		t.Errorf("organism_id: got %q", fields.OrganismID)
	}
}

func TestParseHeaderTrailingOX(t *testing.T) {
	// OX= can be the final field with nothing after it
	fields, err := ParseHeader("sp|P12345|TEST_HUMAN Some protein OS=Homo sapiens OX=9606")
	if err != nil {
		t.Fatal(err)
	}
	if fields.OrganismID != "9606" {
		t.Errorf("organism_id: got %q", fields.OrganismID)
	}
	if fields.OrganismName != "Homo sapiens" {
		t.Errorf("organism_name: got %q", fields.OrganismName)
	}
}

func TestParseHeaderMalformed(t *testing.T) {
	malformed := []string{
		"sp|Q6GZX4|001R_FRG3G",                      // no description
		"Q6GZX4 Some protein OS=Thing OX=1",         // no pipes in ID block
		"sp|Q6GZX4|001R_FRG3G Some protein OX=1",    // missing OS=
		"sp|Q6GZX4|001R_FRG3G Some protein OS=X",    // missing OX=
		"sp|Q6GZX4|001R_FRG3G protein OX=1 OS=Back", // OX before OS
	}

	for _, raw := range malformed {
		if _, err := ParseHeader(raw); err == nil {
			t.Errorf("expected error for %q", raw)
		}
	}
}

func TestParseFASTA(t *testing.T) {
	input := strings.Join([]string{
		">sp|Q6GZX4|001R_FRG3G Putative transcription factor 001R OS=Frog virus 3 (isolate Goorha) OX=654924 GN=FV3-001R PE=4 SV=1",
		"MAFSAEDVLK",
		"EYDRRRRMEA",
		">badheader",
		"MMMM",
		">sp|P12345|TEST_HUMAN Some protein OS=Homo sapiens OX=9606 PE=1 SV=2",
		"MKVL",
		"",
	}, "\n")

	rows, skipped, err := ParseFASTA(strings.NewReader(input))
	if err != nil {
		t.Fatal(err)
	}
	if skipped != 1 {
		t.Errorf("expected 1 skipped entry, got %d", skipped)
	}
	if len(rows) != 2 {
		t.Fatalf("expected 2 rows, got %d", len(rows))
	}
	if rows[0].UniqueID != "Q6GZX4" || rows[0].Sequence != "MAFSAEDVLKEYDRRRRMEA" {
		t.Errorf("unexpected first row: %+v", rows[0])
	}
	if rows[1].OrganismID != "9606" || rows[1].Sequence != "MKVL" {
		t.Errorf("unexpected second row: %+v", rows[1])
	}
}
