// Package label derives kingdom-level class labels for protein sequences
// from their organism's taxonomic lineage, and balances the labeled dataset
// for downstream model training.
package label

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"

	"github.com/BenLubar/memoize"
	"github.com/carbocation/pfx"
	"github.com/gocarina/gocsv"
	"github.com/protml/uniprep"
	"github.com/protml/uniprep/taxonomy"
	"github.com/protml/uniprep/uniprot"
)

// The class labels, from most to least specific in the decision chain.
const (
	ClassViruses       = "Viruses"
	ClassBacteria      = "Bacteria"
	ClassArchaea       = "Archaea"
	ClassViridiplantae = "Viridiplantae"
	ClassFungi         = "Fungi"
	ClassChordata      = "Chordata"
	ClassMetazoa       = "Metazoa"
	ClassEukaryota     = "Eukaryota"
)

// LabeledRow is a sequence row plus its derived class label.
type LabeledRow struct {
	uniprot.SequenceRow
	Label string `csv:"label"`
}

// Labeler assigns class labels to organisms using a populated taxonomy
// store. Classification per organism id is memoized, since Swiss-Prot
// contains many sequences per organism.
type Labeler struct {
	store    *taxonomy.Store
	classify func(string) string
}

// New returns a Labeler over the given store.
func New(store *taxonomy.Store) *Labeler {
	l := &Labeler{store: store}
	l.classify = memoize.Memoize(l.labelLineage).(func(string) string)

	return l
}

// Label returns the class label for an organism id. Organisms absent from
// the store are an error: labeling without taxonomy is meaningless.
func (l *Labeler) Label(organismID string) (string, error) {
	if _, ok := l.store.Get(organismID); !ok {
		return "", fmt.Errorf("organism %s is not in the taxonomy store; run the taxonomy step first", organismID)
	}

	return l.classify(organismID), nil
}

// LabelRows labels every sequence row.
func (l *Labeler) LabelRows(rows []uniprot.SequenceRow) ([]LabeledRow, error) {
	out := make([]LabeledRow, 0, len(rows))
	for _, row := range rows {
		class, err := l.Label(row.OrganismID)
		if err != nil {
			return nil, err
		}

		out = append(out, LabeledRow{SequenceRow: row, Label: class})
	}

	return out, nil
}

// labelLineage walks the decision chain over the organism's lineage. The
// chain runs most-specific label first so that, e.g., a chordate is labeled
// Chordata rather than the broader Metazoa or Eukaryota.
func (l *Labeler) labelLineage(organismID string) string {
	entry, _ := l.store.Get(organismID)
	lineage := entry.LineageNames()

	switch {
	case isVirus(lineage):
		return ClassViruses
	case isBacteria(lineage):
		return ClassBacteria
	case isArchaea(lineage):
		return ClassArchaea
	case isViridiplantae(lineage):
		return ClassViridiplantae
	case isFungi(lineage):
		return ClassFungi
	case isChordata(lineage):
		return ClassChordata
	case isMetazoa(lineage):
		return ClassMetazoa
	}

	return ClassEukaryota
}

// The lineage is ordered most specific first, so the root taxon is the last
// element and the domain sits just before it.

func isVirus(lineage []string) bool {
	return len(lineage) >= 1 && lineage[len(lineage)-1] == "Viruses"
}

func isCellular(lineage []string) bool {
	return len(lineage) >= 1 && lineage[len(lineage)-1] == "cellular organisms"
}

func hasDomain(lineage []string, name string) bool {
	return isCellular(lineage) && len(lineage) >= 2 && lineage[len(lineage)-2] == name
}

func isEukaryote(lineage []string) bool {
	return hasDomain(lineage, "Eukaryota")
}

func isBacteria(lineage []string) bool {
	return hasDomain(lineage, "Bacteria")
}

func isArchaea(lineage []string) bool {
	return hasDomain(lineage, "Archaea")
}

func contains(lineage []string, name string) bool {
	for _, taxon := range lineage {
		if taxon == name {
			return true
		}
	}

	return false
}

func isViridiplantae(lineage []string) bool {
	return isEukaryote(lineage) && contains(lineage, "Viridiplantae")
}

func isFungi(lineage []string) bool {
	return isEukaryote(lineage) && contains(lineage, "Fungi")
}

func isChordata(lineage []string) bool {
	return isEukaryote(lineage) && contains(lineage, "Chordata")
}

func isMetazoa(lineage []string) bool {
	return isEukaryote(lineage) && !isChordata(lineage) && contains(lineage, "Metazoa")
}

// WriteRows saves labeled rows as a comma-delimited CSV with a header line.
func WriteRows(path string, rows []LabeledRow) error {
	f, err := os.Create(uniprep.ExpandHome(path))
	if err != nil {
		return pfx.Err(err)
	}
	defer f.Close()

	gocsv.SetCSVWriter(func(out io.Writer) *gocsv.SafeCSVWriter {
		return gocsv.NewSafeCSVWriter(csv.NewWriter(out))
	})

	if err := gocsv.MarshalFile(&rows, f); err != nil {
		return pfx.Err(err)
	}

	return nil
}
