package query

import "strings"

// FilterTerm is a term of a Filter: either a Comparison or a nested Filter.
// Nested Filters always compile parenthesized as a unit, so their internal
// AND/OR sequence cannot be reinterpreted by the enclosing chain.
type FilterTerm interface {
	isFilterTerm()
}

type combinator string

const (
	combinatorAnd combinator = "&&"
	combinatorOr  combinator = "||"
)

// filterTerm pairs a term with the combinator linking it to the terms before
// it. The first term of a Filter carries no combinator.
type filterTerm struct {
	combinator combinator
	comparison *Comparison
	nested     *Filter
}

// Filter is an ordered boolean combination of Comparisons and nested Filters.
// Terms compile strictly in insertion order, left to right: there is no
// operator-precedence reordering and flat chains get no added grouping.
// Filters are values; And and Or return updated copies, so a Filter can be
// reused across several queries without aliasing.
type Filter struct {
	terms []filterTerm
}

// NewFilter creates a filter holding a single term.
func NewFilter(term FilterTerm) Filter {
	return Filter{}.append("", term)
}

// And appends a term with an AND combinator and returns the updated filter.
func (f Filter) And(term FilterTerm) Filter {
	return f.append(combinatorAnd, term)
}

// Or appends a term with an OR combinator and returns the updated filter.
func (f Filter) Or(term FilterTerm) Filter {
	return f.append(combinatorOr, term)
}

func (f Filter) append(c combinator, term FilterTerm) Filter {
	terms := make([]filterTerm, len(f.terms), len(f.terms)+1)
	copy(terms, f.terms)
	switch t := term.(type) {
	case Comparison:
		terms = append(terms, filterTerm{combinator: c, comparison: &t})
	case Filter:
		terms = append(terms, filterTerm{combinator: c, nested: &t})
	}
	return Filter{terms: terms}
}

// ToAQL renders the filter clause qualified by the given scope variable.
// Exposed for debugging; compiled statements are produced through
// Query.ToAQL.
func (f Filter) ToAQL(scopeVar string) (string, error) {
	return f.aql(scopeVar)
}

func (f Filter) aql(scopeVar string) (string, error) {
	if len(f.terms) == 0 {
		return "", ErrMalformedFilter
	}
	var sb strings.Builder
	for i, term := range f.terms {
		if i > 0 {
			sb.WriteString(" " + string(term.combinator) + " ")
		}
		switch {
		case term.comparison != nil:
			clause, err := term.comparison.aql(scopeVar)
			if err != nil {
				return "", err
			}
			sb.WriteString(clause)
		case term.nested != nil:
			clause, err := term.nested.aql(scopeVar)
			if err != nil {
				return "", err
			}
			sb.WriteString("(" + clause + ")")
		}
	}
	return sb.String(), nil
}

func (Filter) isFilterTerm() {}
