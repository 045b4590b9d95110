package model

import (
	"regexp"
	"strconv"
)

// ProblemFile is a solution source file discovered under the source root.
type ProblemFile struct {
	ID       int
	Tier     Tier
	Category string
	Path     string
}

// ProblemInfo is the display record for one solved problem.
type ProblemInfo struct {
	ID       int
	Title    string
	Level    int
	Tags     []string
	Link     string
	Category string
}

// Metadata is what the problem service knows about a problem.
type Metadata struct {
	Title string
	Level int
	Tags  []string
}

// Collection groups discovered files by tier and category.
type Collection struct {
	Problems map[Tier]map[string][]ProblemFile
	Counts   TierCounts
}

// NewCollection returns an empty collection ready for Add.
func NewCollection() *Collection {
	return &Collection{
		Problems: make(map[Tier]map[string][]ProblemFile),
		Counts:   make(TierCounts),
	}
}

// Add records a file under its tier and category and bumps the tier count.
func (c *Collection) Add(file ProblemFile) {
	categories, ok := c.Problems[file.Tier]
	if !ok {
		categories = make(map[string][]ProblemFile)
		c.Problems[file.Tier] = categories
	}
	categories[file.Category] = append(categories[file.Category], file)
	c.Counts[file.Tier]++
}

// FilePattern matches solution file names of the form Prob<digits><ext>.
type FilePattern struct {
	re *regexp.Regexp
}

// NewFilePattern compiles the matcher for the given extension, e.g. ".java".
func NewFilePattern(ext string) *FilePattern {
	return &FilePattern{re: regexp.MustCompile(`^Prob(\d+)` + regexp.QuoteMeta(ext) + `$`)}
}

// Match reports the problem id encoded in name, or false when name is not a problem file.
func (p *FilePattern) Match(name string) (int, bool) {
	m := p.re.FindStringSubmatch(name)
	if m == nil {
		return 0, false
	}
	id, err := strconv.Atoi(m[1])
	if err != nil {
		return 0, false
	}
	return id, true
}
