// uniprep prepares the UniProt/Swiss-Prot protein database for
// machine-learning use. The pipeline is four file-to-file stages, each its
// own subcommand and each independently re-runnable:
//
//	uniprep download   fetch uniprot_sprot.fasta.gz
//	uniprep parse      FASTA -> sequence CSV
//	uniprep taxonomy   fill the local taxonomy store from the UniProt REST API
//	uniprep label      kingdom labels + class-balanced output CSV
//
// Settings come from an optional uniprep.yaml in the working directory and
// can be overridden per-flag.
package main

func main() {
	Execute()
}
