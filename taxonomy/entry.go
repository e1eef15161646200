// Package taxonomy looks up organism classifications from the UniProt REST
// API and persists them in a JSON-backed local store so each organism is
// fetched over the network at most once.
package taxonomy

import (
	"gopkg.in/guregu/null.v3"
)

// Taxon is one step of an organism's lineage.
type Taxon struct {
	ScientificName string      `json:"scientificName"`
	TaxonID        int64       `json:"taxonId"`
	Rank           null.String `json:"rank"`
	Hidden         bool        `json:"hidden"`
}

// Entry is a taxonomy record as served by
// https://rest.uniprot.org/taxonomy/{id}.json. The lineage is ordered most
// specific first; the final taxon is the root ("Viruses" or "cellular
// organisms").
type Entry struct {
	TaxonID        int64       `json:"taxonId"`
	ScientificName string      `json:"scientificName"`
	CommonName     null.String `json:"commonName"`
	Rank           null.String `json:"rank"`
	Lineage        []Taxon     `json:"lineage"`
}

// LineageNames returns the lineage as scientific names, preserving order.
func (e Entry) LineageNames() []string {
	names := make([]string, 0, len(e.Lineage))
	for _, taxon := range e.Lineage {
		names = append(names, taxon.ScientificName)
	}

	return names
}
