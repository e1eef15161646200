package main

import (
	"log"
	"os"
	"time"

	"github.com/aybabtme/uniplot/histogram"
	"github.com/carbocation/pfx"
	"github.com/protml/uniprep/config"
	"github.com/protml/uniprep/uniprot"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var parseCmd = &cobra.Command{
	Use:   "parse",
	Short: "Parse the Swiss-Prot FASTA into a sequence CSV",
	Long: `
Stream the (optionally gzipped) Swiss-Prot FASTA file into a CSV with one row
per sequence. Entries whose header cannot be parsed are skipped with a
warning.`,
	Run: runParse,
}

func init() {
	rootCmd.AddCommand(parseCmd)

	parseCmd.Flags().StringP("fasta", "f", "", "input FASTA file, plain or gzipped")
	parseCmd.Flags().StringP("seq-csv", "o", "", "output sequence CSV path")
}

func runParse(cmd *cobra.Command, args []string) {
	viper.BindPFlag("fasta", cmd.Flags().Lookup("fasta"))
	viper.BindPFlag("seq-csv", cmd.Flags().Lookup("seq-csv"))

	c := config.New()

	log.Println("Started running at", time.Now())
	defer func() {
		log.Println("Completed at", time.Now())
	}()

	f, err := os.Open(c.FastaPath)
	if err != nil {
		log.Fatalln(pfx.Err(err))
	}
	defer f.Close()

	rows, skipped, err := uniprot.ParseFASTA(f)
	if err != nil {
		log.Fatalln(pfx.Err(err))
	}
	log.Printf("Parsed %d entries (%d skipped)\n", len(rows), skipped)

	sum, err := uniprot.SummarizeLengths(rows)
	if err != nil {
		log.Fatalln(pfx.Err(err))
	}
	log.Printf("Residue lengths: min %.0f, max %.0f, mean %.1f, median %.0f\n", sum.Min, sum.Max, sum.Mean, sum.Median)

	if len(rows) > 0 {
		hist := histogram.Hist(15, uniprot.Lengths(rows))
		if err := histogram.Fprint(os.Stdout, hist, histogram.Linear(40)); err != nil {
			log.Fatalln(pfx.Err(err))
		}
	}

	if err := uniprot.WriteRows(c.SequenceCSVPath, rows); err != nil {
		log.Fatalln(pfx.Err(err))
	}
	log.Println("Saved sequence data to", c.SequenceCSVPath)
}
