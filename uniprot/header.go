// Package uniprot parses UniProt/Swiss-Prot FASTA entries into flat sequence
// rows and reads and writes those rows as CSV.
package uniprot

import (
	"fmt"
	"strings"
)

// HeaderFields are the pieces of a Swiss-Prot FASTA header, e.g.
//
//	sp|Q6GZX4|001R_FRG3G Putative transcription factor 001R OS=Frog virus 3 (isolate Goorha) OX=654924 GN=FV3-001R PE=4 SV=1
//
// The first pipe-separated block carries the source database, accession and
// entry name; the free text up to OS= is the protein name; OS= and OX= carry
// the organism name and NCBI taxonomy id.
type HeaderFields struct {
	DB           string
	UniqueID     string
	EntryName    string
	ProteinName  string
	OrganismName string
	OrganismID   string
}

// ParseHeader parses a Swiss-Prot FASTA header (without the leading '>').
func ParseHeader(raw string) (HeaderFields, error) {
	var fields HeaderFields

	idBlock, remaining, found := cutAnySpace(raw)
	if !found {
		return fields, fmt.Errorf("header %q has no description after the ID block", raw)
	}

	idParts := strings.Split(idBlock, "|")
	if len(idParts) != 3 {
		return fields, fmt.Errorf("header ID block %q is not db|accession|entry", idBlock)
	}
	fields.DB, fields.UniqueID, fields.EntryName = idParts[0], idParts[1], idParts[2]

	osIdx := strings.Index(remaining, "OS=")
	if osIdx < 0 {
		return fields, fmt.Errorf("header %q is missing the OS= organism field", raw)
	}
	oxIdx := strings.Index(remaining, "OX=")
	if oxIdx < 0 {
		return fields, fmt.Errorf("header %q is missing the OX= organism ID field", raw)
	}
	if oxIdx < osIdx {
		return fields, fmt.Errorf("header %q has OX= before OS=", raw)
	}

	fields.ProteinName = strings.TrimRight(remaining[:osIdx], " \t")
	fields.OrganismName = strings.TrimRight(remaining[osIdx+len("OS="):oxIdx], " \t")

	organismID, _, _ := cutAnySpace(remaining[oxIdx+len("OX="):])
	if organismID == "" {
		return fields, fmt.Errorf("header %q has an empty OX= organism ID", raw)
	}
	fields.OrganismID = organismID

	return fields, nil
}

// cutAnySpace splits s around its first run of whitespace.
func cutAnySpace(s string) (before, after string, found bool) {
	i := strings.IndexAny(s, " \t")
	if i < 0 {
		return s, "", false
	}

	return s[:i], strings.TrimLeft(s[i:], " \t"), true
}
