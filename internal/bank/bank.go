// Package bank holds the static assessment question catalog. The catalog
// is built once at startup and never mutated; section membership is
// derived purely from the question id ranges.
package bank

import (
	"sort"

	"careercompass/internal/model"
)

// idRange is a closed interval of question ids.
type idRange struct {
	lo, hi int
}

// sectionRanges maps each section name to its id range. Ranges are the
// only link between a question and its section.
var sectionRanges = map[string]idRange{
	model.SectionRiasec:       {101, 106},
	model.SectionIntelligence: {201, 208},
	model.SectionPersonality:  {301, 310},
	model.SectionWorkstyle:    {401, 406},
	model.SectionLearning:     {501, 505},
	model.SectionValues:       {601, 606},
	model.SectionAptitude:     {701, 708},
	model.SectionInterests:    {801, 806},
	model.SectionEnvironment:  {901, 905},
	model.SectionCreativity:   {1001, 1005},
}

// Catalog is the in-memory question bank.
type Catalog struct {
	byID  map[int]model.Question
	order []model.Question
}

// NewCatalog builds the default catalog.
func NewCatalog() *Catalog {
	return newCatalog(defaultQuestions)
}

func newCatalog(questions []model.Question) *Catalog {
	c := &Catalog{byID: make(map[int]model.Question, len(questions))}
	for _, q := range questions {
		c.byID[q.ID] = q
	}
	c.order = append(c.order, questions...)
	sort.Slice(c.order, func(i, j int) bool { return c.order[i].ID < c.order[j].ID })
	return c
}

// Lookup returns the question with the given id.
func (c *Catalog) Lookup(id int) (model.Question, bool) {
	q, ok := c.byID[id]
	return q, ok
}

// FilterByType returns all questions whose id falls in the section's
// range. An unknown section name returns the full catalog; historical
// clients depend on that fallback, so it stays.
func (c *Catalog) FilterByType(section string) []model.Question {
	r, ok := sectionRanges[section]
	if !ok {
		out := make([]model.Question, len(c.order))
		copy(out, c.order)
		return out
	}
	var out []model.Question
	for _, q := range c.order {
		if q.ID >= r.lo && q.ID <= r.hi {
			out = append(out, q)
		}
	}
	return out
}

// SectionFor returns the section name owning the given question id.
func SectionFor(id int) (string, bool) {
	for name, r := range sectionRanges {
		if id >= r.lo && id <= r.hi {
			return name, true
		}
	}
	return "", false
}

// Sections returns all known section names, sorted.
func Sections() []string {
	names := make([]string, 0, len(sectionRanges))
	for name := range sectionRanges {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
