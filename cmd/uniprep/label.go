package main

import (
	"log"

	"github.com/carbocation/pfx"
	"github.com/protml/uniprep/config"
	"github.com/protml/uniprep/label"
	"github.com/protml/uniprep/taxonomy"
	"github.com/protml/uniprep/uniprot"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var labelCmd = &cobra.Command{
	Use:   "label",
	Short: "Label sequences by kingdom and write a class-balanced CSV",
	Long: `
Join the sequence CSV against the taxonomy store, derive a kingdom-level
class label per organism, and write a class-balanced sample of the labeled
rows. Label statistics are logged before and after balancing.`,
	Run: runLabel,
}

func init() {
	rootCmd.AddCommand(labelCmd)

	labelCmd.Flags().StringP("seq-csv", "i", "", "input sequence CSV path")
	labelCmd.Flags().StringP("taxonomy-db", "d", "", "taxonomy store backing file")
	labelCmd.Flags().StringP("labeled-csv", "o", "", "output labeled CSV path")
	labelCmd.Flags().Float64P("balance-fraction", "b", 0, "per-class sample size as a fraction of all rows")
	labelCmd.Flags().Int64P("seed", "r", 0, "seed for the balancing shuffle")
}

func runLabel(cmd *cobra.Command, args []string) {
	viper.BindPFlag("seq-csv", cmd.Flags().Lookup("seq-csv"))
	viper.BindPFlag("taxonomy-db", cmd.Flags().Lookup("taxonomy-db"))
	viper.BindPFlag("labeled-csv", cmd.Flags().Lookup("labeled-csv"))
	viper.BindPFlag("balance-fraction", cmd.Flags().Lookup("balance-fraction"))
	viper.BindPFlag("seed", cmd.Flags().Lookup("seed"))

	c := config.New()

	store, err := taxonomy.Open(c.TaxonomyStorePath)
	if err != nil {
		log.Fatalln(pfx.Err(err))
	}

	rows, err := uniprot.ReadRows(c.SequenceCSVPath)
	if err != nil {
		log.Fatalln(pfx.Err(err))
	}
	log.Printf("Labeling %d sequences from %s\n", len(rows), c.SequenceCSVPath)

	labeled, err := label.New(store).LabelRows(rows)
	if err != nil {
		log.Fatalln(pfx.Err(err))
	}

	log.Println("Label statistics:")
	label.LogStats(label.Stats(labeled))

	log.Println("Balancing data")
	balanced := label.Balance(labeled, c.BalanceFraction, c.Seed)

	if err := label.WriteRows(c.LabeledCSVPath, balanced); err != nil {
		log.Fatalln(pfx.Err(err))
	}
	log.Printf("Wrote %d labeled rows to %s\n", len(balanced), c.LabeledCSVPath)

	log.Println("Balanced data statistics:")
	label.LogStats(label.Stats(balanced))
}
