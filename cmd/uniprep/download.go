package main

import (
	"log"

	"github.com/carbocation/pfx"
	"github.com/protml/uniprep/config"
	"github.com/protml/uniprep/download"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var downloadCmd = &cobra.Command{
	Use:   "download",
	Short: "Download the Swiss-Prot FASTA database",
	Long: `
Download the gzipped Swiss-Prot FASTA database to the local data directory.
If the target file already exists the download is skipped.`,
	Run: runDownload,
}

func init() {
	rootCmd.AddCommand(downloadCmd)

	downloadCmd.Flags().StringP("url", "u", "", "URL of the Swiss-Prot FASTA database")
	downloadCmd.Flags().StringP("fasta", "f", "", "output path for the downloaded FASTA")
}

func runDownload(cmd *cobra.Command, args []string) {
	// Bind here, not in init: several subcommands share these keys.
	viper.BindPFlag("url", cmd.Flags().Lookup("url"))
	viper.BindPFlag("fasta", cmd.Flags().Lookup("fasta"))

	c := config.New()

	if err := download.Fetch(c.URL, c.FastaPath); err != nil {
		log.Fatalln(pfx.Err(err))
	}
}
