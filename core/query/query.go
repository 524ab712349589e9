// Package query defines the typed query model for ArangoDB and its AQL
// compiler. Callers assemble Comparisons into Filters, attach Filters, sorts,
// limits and graph-traversal joins onto a Query descriptor, and compile the
// descriptor into a single AQL statement with ToAQL. The whole package is a
// pure transformation layer: building and compiling perform no I/O, never
// mutate their input and are safe to use from multiple goroutines.
package query

// SortDirection specifies the direction of one sort key.
type SortDirection string

// Supported sort directions.
const (
	Asc  SortDirection = "ASC"
	Desc SortDirection = "DESC"
)

// Direction specifies which edges a graph traversal follows.
type Direction string

// Supported traversal directions.
const (
	DirectionOutbound Direction = "OUTBOUND"
	DirectionInbound  Direction = "INBOUND"
	DirectionAny      Direction = "ANY"
)

// traversal describes an edge-collection or named-graph hop. A query whose
// traversal is nil reads from a plain collection. startVertex is only set on
// root traversals; joined traversals bind the parent scope's variable
// instead.
type traversal struct {
	direction   Direction
	min         uint
	max         uint
	named       bool
	startVertex string
}

type sortClause struct {
	field     string
	direction SortDirection
}

type limitClause struct {
	count uint
	skip  uint
}

// Query describes one traversal scope: a source (collection or graph hop),
// an optional filter and prune, accumulated sort keys, an optional
// limit/skip pair, a distinct flag, and at most one joined sub-query forming
// a singly-linked chain of scopes.
//
// Query is an immutable builder: every method returns an updated value and
// two queries derived from the same source never share state after they
// diverge, so a query can be cloned and branched freely:
//
//	base := query.NewQuery("User").Filter(active)
//	adults := base.Filter(active.And(query.Field("age").GreaterOrEqual(18)))
//	named := base.Sort("last_name")
type Query struct {
	collection string
	graph      *traversal
	filter     *Filter
	prune      *Filter
	sorts      []sortClause
	limit      *limitClause
	distinct   bool
	join       *Query
}

// NewQuery creates a query over a named collection.
func NewQuery(collection string) Query {
	return Query{collection: collection}
}

// Outbound creates a root query traversing outbound edges of edgeCollection,
// between min and max hops deep, starting from the document id startVertex.
func Outbound(min, max uint, edgeCollection, startVertex string) Query {
	return newTraversalQuery(DirectionOutbound, min, max, edgeCollection, startVertex, false)
}

// Inbound creates a root query traversing inbound edges of edgeCollection,
// between min and max hops deep, starting from the document id startVertex.
func Inbound(min, max uint, edgeCollection, startVertex string) Query {
	return newTraversalQuery(DirectionInbound, min, max, edgeCollection, startVertex, false)
}

// Any creates a root query traversing edges of edgeCollection in both
// directions, between min and max hops deep, starting from the document id
// startVertex.
func Any(min, max uint, edgeCollection, startVertex string) Query {
	return newTraversalQuery(DirectionAny, min, max, edgeCollection, startVertex, false)
}

// OutboundGraph is Outbound over a named graph instead of an edge collection.
func OutboundGraph(min, max uint, graphName, startVertex string) Query {
	return newTraversalQuery(DirectionOutbound, min, max, graphName, startVertex, true)
}

// InboundGraph is Inbound over a named graph instead of an edge collection.
func InboundGraph(min, max uint, graphName, startVertex string) Query {
	return newTraversalQuery(DirectionInbound, min, max, graphName, startVertex, true)
}

// AnyGraph is Any over a named graph instead of an edge collection.
func AnyGraph(min, max uint, graphName, startVertex string) Query {
	return newTraversalQuery(DirectionAny, min, max, graphName, startVertex, true)
}

func newTraversalQuery(direction Direction, min, max uint, target, startVertex string, named bool) Query {
	return Query{
		collection: target,
		graph: &traversal{
			direction:   direction,
			min:         min,
			max:         max,
			named:       named,
			startVertex: startVertex,
		},
	}
}

// Filter sets the scope's filter. A later call overwrites an earlier one:
// composing several conditions must happen inside one Filter through And/Or
// before attaching it.
func (q Query) Filter(f Filter) Query {
	q.filter = &f
	return q
}

// Prune sets the traversal's prune filter, stopping graph expansion on
// matching vertices. Attaching a prune to a plain collection query is
// rejected with ErrInvalidPrune when the query is compiled.
func (q Query) Prune(f Filter) Query {
	q.prune = &f
	return q
}

// Sort appends a sort key. Direction defaults to ascending when omitted;
// repeated calls accumulate a multi-key sort compiled in call order.
func (q Query) Sort(field string, direction ...SortDirection) Query {
	d := Asc
	if len(direction) > 0 {
		d = direction[0]
	}
	sorts := make([]sortClause, len(q.sorts), len(q.sorts)+1)
	copy(sorts, q.sorts)
	q.sorts = append(sorts, sortClause{field: field, direction: d})
	return q
}

// Limit caps the number of returned documents, optionally skipping the given
// number of documents first. A later call overwrites the whole pair.
func (q Query) Limit(count uint, skip ...uint) Query {
	l := limitClause{count: count}
	if len(skip) > 0 {
		l.skip = skip[0]
	}
	q.limit = &l
	return q
}

// Distinct requests duplicate elimination on the returned documents. No
// matter where in the builder chain it is called, the DISTINCT modifier is
// compiled on the terminal return clause.
func (q Query) Distinct() Query {
	q.distinct = true
	return q
}

// JoinOutbound attaches sub as a nested outbound traversal over sub's
// collection (or named graph when named is true), between min and max hops
// from each document of the current scope. A query carries at most one join;
// calling a join method again replaces the previous join. Deeper traversal
// paths are built by joining onto sub itself before attaching it.
func (q Query) JoinOutbound(min, max uint, named bool, sub Query) Query {
	return q.joinQuery(DirectionOutbound, min, max, named, sub)
}

// JoinInbound attaches sub as a nested inbound traversal. See JoinOutbound.
func (q Query) JoinInbound(min, max uint, named bool, sub Query) Query {
	return q.joinQuery(DirectionInbound, min, max, named, sub)
}

// JoinAny attaches sub as a nested traversal following edges in both
// directions. See JoinOutbound.
func (q Query) JoinAny(min, max uint, named bool, sub Query) Query {
	return q.joinQuery(DirectionAny, min, max, named, sub)
}

func (q Query) joinQuery(direction Direction, min, max uint, named bool, sub Query) Query {
	sub.graph = &traversal{
		direction: direction,
		min:       min,
		max:       max,
		named:     named,
	}
	q.join = &sub
	return q
}
