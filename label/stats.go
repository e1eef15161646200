package label

import (
	"log"
	"sort"
)

// LabelStat is the population share of one class label.
type LabelStat struct {
	Count    int
	Fraction float64
}

// Stats counts rows per class label.
func Stats(rows []LabeledRow) map[string]LabelStat {
	out := make(map[string]LabelStat)
	if len(rows) == 0 {
		return out
	}

	n := float64(len(rows))
	for _, row := range rows {
		stat := out[row.Label]
		stat.Count++
		stat.Fraction = float64(stat.Count) / n
		out[row.Label] = stat
	}

	return out
}

// LogStats logs per-class counts and fractions in sorted label order.
func LogStats(stats map[string]LabelStat) {
	classes := make([]string, 0, len(stats))
	for class := range stats {
		classes = append(classes, class)
	}
	sort.Strings(classes)

	for _, class := range classes {
		stat := stats[class]
		log.Printf("  %-14s %8d (%.2f%%)\n", class, stat.Count, 100*stat.Fraction)
	}
}
