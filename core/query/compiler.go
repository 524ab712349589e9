package query

import (
	"fmt"
	"strings"
)

// ToAQL compiles the query descriptor chain into a single AQL statement.
//
// Compilation is deterministic and side-effect free: the same descriptor
// value always yields byte-identical output, and the receiver is never
// mutated. Each scope of the join chain is bound to a distinct loop variable
// derived from its depth, and every clause of a scope is emitted in a fixed
// order regardless of builder call order: the FOR clause, PRUNE, FILTER,
// SORT, LIMIT, then the joined scope's clauses nested inside. The terminal
// return clause references the deepest scope's variable, DISTINCT-qualified
// if any scope in the chain requested it.
func (q Query) ToAQL() (string, error) {
	var sb strings.Builder
	distinct := false
	scopeVar := ""

	depth := 0
	for cur := &q; cur != nil; cur = cur.join {
		parentVar := scopeVar
		scopeVar = scopeIdentifier(depth)
		if err := cur.writeScope(&sb, scopeVar, parentVar); err != nil {
			return "", err
		}
		if cur.distinct {
			distinct = true
		}
		depth++
	}

	sb.WriteString("return ")
	if distinct {
		sb.WriteString("DISTINCT ")
	}
	sb.WriteString(scopeVar)
	return sb.String(), nil
}

// MustToAQL is ToAQL but panics on compilation errors. Intended for
// statically known queries, typically in examples and tests.
func (q Query) MustToAQL() string {
	aql, err := q.ToAQL()
	if err != nil {
		panic(err)
	}
	return aql
}

// writeScope emits one scope's clause set followed by a trailing space.
// parentVar is empty for the root scope and holds the owning scope's
// variable for joined traversals.
func (q *Query) writeScope(sb *strings.Builder, scopeVar, parentVar string) error {
	if err := q.writeFor(sb, scopeVar, parentVar); err != nil {
		return err
	}
	if q.prune != nil {
		if q.graph == nil {
			return fmt.Errorf("%w: collection %q", ErrInvalidPrune, q.collection)
		}
		clause, err := q.prune.aql(scopeVar)
		if err != nil {
			return err
		}
		sb.WriteString("PRUNE " + clause + " ")
	}
	if q.filter != nil {
		clause, err := q.filter.aql(scopeVar)
		if err != nil {
			return err
		}
		sb.WriteString("FILTER " + clause + " ")
	}
	if len(q.sorts) > 0 {
		sb.WriteString("SORT ")
		for i, s := range q.sorts {
			if i > 0 {
				sb.WriteString(", ")
			}
			sb.WriteString(scopeVar + "." + s.field + " " + string(s.direction))
		}
		sb.WriteString(" ")
	}
	if q.limit != nil {
		if q.limit.skip > 0 {
			fmt.Fprintf(sb, "LIMIT %d, %d ", q.limit.skip, q.limit.count)
		} else {
			fmt.Fprintf(sb, "LIMIT %d ", q.limit.count)
		}
	}
	return nil
}

// writeFor emits the loop or traversal opening clause of one scope.
func (q *Query) writeFor(sb *strings.Builder, scopeVar, parentVar string) error {
	if q.graph == nil {
		sb.WriteString("FOR " + scopeVar + " in " + q.collection + " ")
		return nil
	}
	if q.graph.min > q.graph.max {
		return fmt.Errorf("%w: min %d > max %d", ErrInvalidTraversalDepth, q.graph.min, q.graph.max)
	}

	start := parentVar
	if start == "" {
		// Root traversals start from a document id rather than a parent
		// scope variable.
		start = quoteVertex(q.graph.startVertex)
	}
	target := q.collection
	if q.graph.named {
		target = "GRAPH " + target
	}
	fmt.Fprintf(sb, "FOR %s in %d..%d %s %s %s ",
		scopeVar, q.graph.min, q.graph.max, q.graph.direction, start, target)
	return nil
}
