package report

import (
	"cmp"
	"fmt"
	"slices"
	"strings"

	"algo-readme/internal/domain/model"
)

// MaxTags is the number of tags rendered per problem row.
const MaxTags = 3

const tableHeader = "| 문제 번호 | 제목 | 유형 | 태그 |\n|:---:|:---:|:---:|:---:|\n"

// Table renders problems as a markdown table ordered by problem id. An empty
// list renders the "nothing solved" sentence instead.
func Table(problems []model.ProblemInfo) string {
	if len(problems) == 0 {
		return NoProblemsMessage + "."
	}

	sorted := slices.Clone(problems)
	slices.SortStableFunc(sorted, func(a, b model.ProblemInfo) int {
		return cmp.Compare(a.ID, b.ID)
	})

	var b strings.Builder
	b.WriteString(tableHeader)
	for _, p := range sorted {
		fmt.Fprintf(&b, "| [%d](%s) | %s | %s | %s |\n",
			p.ID, p.Link, escapeCell(p.Title), escapeCell(p.Category), formatTags(p.Tags))
	}
	return b.String()
}

func formatTags(tags []string) string {
	if len(tags) > MaxTags {
		tags = tags[:MaxTags]
	}
	quoted := make([]string, 0, len(tags))
	for _, tag := range tags {
		quoted = append(quoted, "`"+escapeCell(tag)+"`")
	}
	return strings.Join(quoted, " ")
}

func escapeCell(s string) string {
	s = strings.ReplaceAll(s, "\n", " ")
	return strings.ReplaceAll(s, "|", `\|`)
}
