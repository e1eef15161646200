package main

import (
	"log"
	"os"
	"path/filepath"

	"github.com/carbocation/pfx"
	"github.com/protml/uniprep/taxonomy"
	"github.com/protml/uniprep/uniprot"
	"github.com/spf13/cobra"
)

var testDataDir string

var testDataCmd = &cobra.Command{
	Use:   "testdata",
	Short: "Recreate fixture data from a sample FASTA file",
	Long: `
Parse a small sample FASTA into a sequence CSV and build a fresh taxonomy
store for it from the UniProt REST API. Useful for regenerating the fixtures
the tests and examples run against.`,
	Run: runTestData,
}

func init() {
	rootCmd.AddCommand(testDataCmd)

	testDataCmd.Flags().StringVar(&testDataDir, "dir", "testdata", "directory holding uniprot_sprot.fasta and receiving the fixtures")
}

func runTestData(cmd *cobra.Command, args []string) {
	fastaPath := filepath.Join(testDataDir, "uniprot_sprot.fasta")
	seqCSVPath := filepath.Join(testDataDir, "seq.csv")
	storePath := filepath.Join(testDataDir, "taxonomy_db.json")

	f, err := os.Open(fastaPath)
	if err != nil {
		log.Fatalln(pfx.Err(err))
	}
	defer f.Close()

	rows, skipped, err := uniprot.ParseFASTA(f)
	if err != nil {
		log.Fatalln(pfx.Err(err))
	}
	if skipped > 0 {
		log.Printf("%d malformed entries skipped\n", skipped)
	}

	if err := uniprot.WriteRows(seqCSVPath, rows); err != nil {
		log.Fatalln(pfx.Err(err))
	}

	store := &taxonomy.Store{Path: storePath, Entries: make(map[string]taxonomy.Entry)}
	if err := store.Populate(uniprot.OrganismIDs(rows), taxonomy.NewClient(), 100); err != nil {
		log.Fatalln(pfx.Err(err))
	}

	log.Println("Test data created in", testDataDir)
}
