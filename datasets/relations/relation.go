package relations

import (
	"sort"
	"strings"
)

// Relation is a multi part relation identifier with its parts sorted
type Relation []string

// NewRelation canonicalizes the parts by sorting a copy of them
func NewRelation(parts ...string) Relation {
	r := make(Relation, len(parts))
	copy(r, parts)
	sort.Strings(r)
	return r
}

// Key returns the comma joined parts, equal for relations with equal parts
func (r Relation) Key() string {
	return strings.Join(r, ",")
}

// ParseRelations parses space separated relations, each a comma separated list of parts.
// Relation order is kept. An empty string gives no relations.
func ParseRelations(s string) (rels []Relation) {
	for _, rel := range strings.Split(strings.TrimSpace(s), " ") {
		if rel == "" {
			continue
		}
		rels = append(rels, NewRelation(strings.Split(rel, ",")...))
	}
	return
}
