package report

import (
	"fmt"
	"strings"

	"algo-readme/internal/domain/model"
)

const (
	documentTitle   = "# 알고리즘 문제 풀이"
	progressHeading = "## 진행 상황"
	summaryHeading  = "## 📊 해결한 문제 수"
)

// Document assembles the full README from the tier counts and the
// pre-rendered table of every tier. Tiers without a table get the
// "nothing solved" sentence.
func Document(counts model.TierCounts, tables map[model.Tier]string) (string, error) {
	chart, err := Chart(counts)
	if err != nil {
		return "", err
	}

	var b strings.Builder
	b.WriteString(documentTitle + "\n\n")
	b.WriteString(progressHeading + "\n\n")
	b.WriteString(chart + "\n\n")

	b.WriteString(summaryHeading + "\n\n")
	fmt.Fprintf(&b, "- 총 문제 수: %d\n", counts.Total())
	for _, tier := range model.Tiers {
		fmt.Fprintf(&b, "- %s: %d\n", tier.Label(), counts[tier])
	}

	for _, tier := range model.Tiers {
		table, ok := tables[tier]
		if !ok || table == "" {
			table = Table(nil)
		}
		fmt.Fprintf(&b, "\n## %s\n\n", tier.Label())
		b.WriteString(strings.TrimRight(table, "\n") + "\n")
	}

	return b.String(), nil
}
