package main

import (
	"log"

	"github.com/carbocation/pfx"
	"github.com/protml/uniprep/config"
	"github.com/protml/uniprep/taxonomy"
	"github.com/protml/uniprep/uniprot"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var recreateStore bool

var taxonomyCmd = &cobra.Command{
	Use:   "taxonomy",
	Short: "Populate the local taxonomy store from the UniProt REST API",
	Long: `
Fetch the taxonomy entry of every organism in the sequence CSV from the
UniProt REST API. Entries already in the local store are not refetched; the
store is saved periodically so an interrupted run loses little work.`,
	Run: runTaxonomy,
}

func init() {
	rootCmd.AddCommand(taxonomyCmd)

	taxonomyCmd.Flags().StringP("seq-csv", "i", "", "input sequence CSV path")
	taxonomyCmd.Flags().StringP("taxonomy-db", "d", "", "taxonomy store backing file")
	taxonomyCmd.Flags().IntP("save-interval", "s", 0, "save the store every N new entries")
	taxonomyCmd.Flags().BoolVar(&recreateStore, "recreate", false, "discard any existing store and start fresh")
}

func runTaxonomy(cmd *cobra.Command, args []string) {
	viper.BindPFlag("seq-csv", cmd.Flags().Lookup("seq-csv"))
	viper.BindPFlag("taxonomy-db", cmd.Flags().Lookup("taxonomy-db"))
	viper.BindPFlag("save-interval", cmd.Flags().Lookup("save-interval"))

	c := config.New()

	rows, err := uniprot.ReadRows(c.SequenceCSVPath)
	if err != nil {
		log.Fatalln(pfx.Err(err))
	}

	var store *taxonomy.Store
	if recreateStore {
		log.Println("Initializing a new taxonomy store at", c.TaxonomyStorePath)
		store = &taxonomy.Store{Path: c.TaxonomyStorePath, Entries: make(map[string]taxonomy.Entry)}
	} else {
		store, err = taxonomy.Open(c.TaxonomyStorePath)
		if err != nil {
			log.Fatalln(pfx.Err(err))
		}
	}

	if err := store.Populate(uniprot.OrganismIDs(rows), taxonomy.NewClient(), c.SaveInterval); err != nil {
		log.Fatalln(pfx.Err(err))
	}
	log.Println("Saved taxonomy store to", c.TaxonomyStorePath)
}
