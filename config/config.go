// Package config is for pipeline-wide settings that are unmarshalled from
// Viper (see: /cmd/uniprep)
package config

import (
	"log"

	"github.com/protml/uniprep"
	"github.com/protml/uniprep/download"
	"github.com/protml/uniprep/label"
	"github.com/spf13/viper"
)

// Config is the root-level settings struct, a mix of settings available in
// uniprep.yaml and those available from the command line.
type Config struct {
	// URL of the Swiss-Prot FASTA database
	URL string `mapstructure:"url"`

	// path the downloaded FASTA is written to and parsed from
	FastaPath string `mapstructure:"fasta"`

	// path of the parsed sequence CSV
	SequenceCSVPath string `mapstructure:"seq-csv"`

	// path of the taxonomy store backing file
	TaxonomyStorePath string `mapstructure:"taxonomy-db"`

	// path of the labeled, balanced output CSV
	LabeledCSVPath string `mapstructure:"labeled-csv"`

	// how many new taxonomy entries to buffer between saves
	SaveInterval int `mapstructure:"save-interval"`

	// per-class sample size as a fraction of the whole dataset
	BalanceFraction float64 `mapstructure:"balance-fraction"`

	// seed for the balancing shuffle
	Seed int64 `mapstructure:"seed"`
}

// SetDefaults registers every setting's default value with Viper. Called
// once before flag binding so flags and the config file both override these.
func SetDefaults() {
	viper.SetDefault("url", download.DefaultURL)
	viper.SetDefault("fasta", "data/uniprot_sprot.fasta.gz")
	viper.SetDefault("seq-csv", "data/seq.csv")
	viper.SetDefault("taxonomy-db", "data/taxonomy_db.json")
	viper.SetDefault("labeled-csv", "data/labeled_sequences.csv")
	viper.SetDefault("save-interval", 100)
	viper.SetDefault("balance-fraction", label.DefaultFraction)
	viper.SetDefault("seed", 1)
}

// New returns a new Config struct populated by Viper settings (either from
// the local uniprep.yaml) and/or command line arguments.
func New() Config {
	var c Config

	if err := viper.Unmarshal(&c); err != nil {
		log.Fatalf("unable to decode settings into struct, %v", err)
	}

	c.FastaPath = uniprep.ExpandHome(c.FastaPath)
	c.SequenceCSVPath = uniprep.ExpandHome(c.SequenceCSVPath)
	c.TaxonomyStorePath = uniprep.ExpandHome(c.TaxonomyStorePath)
	c.LabeledCSVPath = uniprep.ExpandHome(c.LabeledCSVPath)

	return c
}
