package uniprot

import (
	"bytes"
	"encoding/csv"
	"io"
	"log"
	"os"

	"github.com/carbocation/pfx"
	"github.com/gocarina/gocsv"
	"github.com/montanaflynn/stats"
	"github.com/protml/uniprep"
	"github.com/protml/uniprep/fasta"
)

// SequenceRow is one protein sequence in tabular form. The column order
// matches the seq.csv layout consumed downstream.
type SequenceRow struct {
	DB           string `csv:"db"`
	UniqueID     string `csv:"unique_id"`
	EntryName    string `csv:"entry_name"`
	ProteinName  string `csv:"protein_name"`
	OrganismName string `csv:"organism_name"`
	OrganismID   string `csv:"organism_id"`
	Sequence     string `csv:"sequence"`
}

// ParseFASTA converts FASTA records from r into sequence rows. Records whose
// header cannot be parsed are skipped with a logged warning rather than
// aborting the run; the skip count is returned alongside the rows.
func ParseFASTA(r io.Reader) ([]SequenceRow, int, error) {
	fr, err := fasta.NewReader(r)
	if err != nil {
		return nil, 0, err
	}

	var rows []SequenceRow
	skipped := 0
	for i := 0; ; i++ {
		rec, err := fr.Read()
		if err == io.EOF {
			break
		} else if err != nil {
			return nil, skipped, err
		}

		if i > 0 && i%50000 == 0 {
			log.Printf("Parsed %d entries\n", i)
		}

		fields, err := ParseHeader(rec.Header)
		if err != nil {
			log.Println("Skipping malformed entry:", err)
			skipped++
			continue
		}

		rows = append(rows, SequenceRow{
			DB:           fields.DB,
			UniqueID:     fields.UniqueID,
			EntryName:    fields.EntryName,
			ProteinName:  fields.ProteinName,
			OrganismName: fields.OrganismName,
			OrganismID:   fields.OrganismID,
			Sequence:     rec.Sequence,
		})
	}

	return rows, skipped, nil
}

// ReadRows loads a sequence CSV from a local path or an http(s) URL. The
// delimiter is sniffed from the contents so tab-delimited variants load
// without configuration.
func ReadRows(path string) ([]SequenceRow, error) {
	fileBytes, err := uniprep.OpenFileOrURL(path)
	if err != nil {
		return nil, pfx.Err(err)
	}

	delim := uniprep.DetermineDelimiter(bytes.NewReader(fileBytes))

	gocsv.SetCSVReader(func(in io.Reader) gocsv.CSVReader {
		r := csv.NewReader(in)
		r.Comma = delim
		r.LazyQuotes = true
		return r
	})

	rows := []SequenceRow{}
	if err := gocsv.UnmarshalBytes(fileBytes, &rows); err != nil {
		return nil, pfx.Err(err)
	}

	return rows, nil
}

// WriteRows saves rows as a comma-delimited CSV with a header line.
func WriteRows(path string, rows []SequenceRow) error {
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

// OrganismIDs returns the organism id of every row, in row order and with
// duplicates preserved, mirroring the column the taxonomy stage walks.
func OrganismIDs(rows []SequenceRow) []string {
	ids := make([]string, 0, len(rows))
	for _, row := range rows {
		ids = append(ids, row.OrganismID)
	}

	return ids
}

// LengthStats summarizes residue lengths across rows.
type LengthStats struct {
	Count  int
	Min    float64
	Max    float64
	Mean   float64
	Median float64
}

// Lengths returns each row's residue count as a float64 slice, suitable for
// summary statistics and histograms.
func Lengths(rows []SequenceRow) []float64 {
	lengths := make([]float64, 0, len(rows))
	for _, row := range rows {
		lengths = append(lengths, float64(len(row.Sequence)))
	}

	return lengths
}

// SummarizeLengths computes residue-length summary statistics.
func SummarizeLengths(rows []SequenceRow) (LengthStats, error) {
	out := LengthStats{Count: len(rows)}
	if len(rows) == 0 {
		return out, nil
	}

	data := stats.LoadRawData(Lengths(rows))

	var err error
	if out.Min, err = data.Min(); err != nil {
		return out, pfx.Err(err)
	}
	if out.Max, err = data.Max(); err != nil {
		return out, pfx.Err(err)
	}
	if out.Mean, err = data.Mean(); err != nil {
		return out, pfx.Err(err)
	}
	if out.Median, err = data.Median(); err != nil {
		return out, pfx.Err(err)
	}

	return out, nil
}
