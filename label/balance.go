package label

import (
	"log"
	"math"
	"math/rand"
	"sort"
)

// DefaultFraction is the per-class sample size as a fraction of the whole
// dataset. At 8 classes this keeps the balanced output near 13% of the
// input.
const DefaultFraction = 0.01639

// Balance draws a per-class random sample of round(fraction*len(rows)) rows.
// Classes with fewer rows than the sample size contribute everything they
// have, with a logged warning. Output order is deterministic for a given
// seed: classes in sorted order, rows shuffled within each class.
func Balance(rows []LabeledRow, fraction float64, seed int64) []LabeledRow {
	if len(rows) == 0 {
		return nil
	}

	sampleSize := int(math.Round(fraction * float64(len(rows))))

	groups := make(map[string][]LabeledRow)
	for _, row := range rows {
		groups[row.Label] = append(groups[row.Label], row)
	}

	classes := make([]string, 0, len(groups))
	for class := range groups {
		classes = append(classes, class)
	}
	sort.Strings(classes)

	rng := rand.New(rand.NewSource(seed))

	var out []LabeledRow
	for _, class := range classes {
		group := groups[class]
		rng.Shuffle(len(group), func(i, j int) {
			group[i], group[j] = group[j], group[i]
		})

		n := sampleSize
		if len(group) < n {
			log.Printf("Class %s has only %d rows; sampling all of them instead of %d\n", class, len(group), n)
			n = len(group)
		}

		out = append(out, group[:n]...)
	}

	return out
}
