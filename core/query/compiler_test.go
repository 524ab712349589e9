package query

import (
	"fmt"
	"strings"
	"testing"

	"github.com/sebdah/goldie/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestToAQL_SingleScope(t *testing.T) {
	q := NewQuery("User").Filter(NewFilter(Field("age").GreaterThan(15)))
	aql, err := q.ToAQL()
	require.NoError(t, err)
	assert.Equal(t, "FOR a in User FILTER a.age > 15 return a", aql)
}

func TestToAQL_EscapesStartVertex(t *testing.T) {
	q := Outbound(1, 1, "ChildOf", `User/o'brien\`)
	aql, err := q.ToAQL()
	require.NoError(t, err)
	assert.Equal(t, `FOR a in 1..1 OUTBOUND 'User/o\'brien\\' ChildOf return a`, aql)
}

func TestToAQL_EmptyQuery(t *testing.T) {
	aql, err := NewQuery("Companies").ToAQL()
	require.NoError(t, err)
	assert.Equal(t, "FOR a in Companies return a", aql)
}

func TestToAQL_FullClauseSet(t *testing.T) {
	q := NewQuery("Companies").
		Filter(NewFilter(AnyOf("emails").Like("%gmail.com"))).
		Sort("company_name").
		Sort("company_age", Desc).
		Limit(5).
		Distinct()
	aql, err := q.ToAQL()
	require.NoError(t, err)
	assert.Equal(t,
		`FOR a in Companies `+
			`FILTER a.emails ANY LIKE "%gmail.com" `+
			`SORT a.company_name ASC, a.company_age DESC `+
			`LIMIT 5 `+
			`return DISTINCT a`,
		aql)
}

func TestToAQL_SimpleJoin(t *testing.T) {
	q := NewQuery("User").JoinOutbound(1, 2, false, NewQuery("edgeCollection"))
	aql, err := q.ToAQL()
	require.NoError(t, err)
	assert.Equal(t, "FOR a in User FOR b in 1..2 OUTBOUND a edgeCollection return b", aql)
}

func TestToAQL_JoinChain(t *testing.T) {
	q := NewQuery("Companies").
		Filter(NewFilter(AnyOf("emails").Like("%gmail.com"))).
		Sort("company_name").
		JoinOutbound(1, 2, false, NewQuery("MemberOf").
			Sort("_id").
			Filter(NewFilter(Statement("1").Equals(1))).
			JoinInbound(1, 5, false, NewQuery("BelongsTo").
				JoinOutbound(2, 2, false, NewQuery("HasFriend"))))

	aql, err := q.ToAQL()
	require.NoError(t, err)
	assert.Equal(t,
		`FOR a in Companies `+
			`FILTER a.emails ANY LIKE "%gmail.com" `+
			`SORT a.company_name ASC `+
			`FOR b in 1..2 OUTBOUND a MemberOf `+
			`FILTER 1 == 1 `+
			`SORT b._id ASC `+
			`FOR c in 1..5 INBOUND b BelongsTo `+
			`FOR d in 2..2 OUTBOUND c HasFriend `+
			`return d`,
		aql)
}

func TestToAQL_NamedGraphJoinChain(t *testing.T) {
	q := NewQuery("Companies").
		Sort("company_name").
		JoinOutbound(1, 2, true, NewQuery("SomeGraph").
			Prune(NewFilter(Statement("1").Equals(1))).
			JoinInbound(1, 5, false, NewQuery("BelongsTo")))

	aql, err := q.ToAQL()
	require.NoError(t, err)
	assert.Equal(t,
		`FOR a in Companies `+
			`SORT a.company_name ASC `+
			`FOR b in 1..2 OUTBOUND a GRAPH SomeGraph `+
			`PRUNE 1 == 1 `+
			`FOR c in 1..5 INBOUND b BelongsTo `+
			`return c`,
		aql)
}

func TestToAQL_ClauseOrderIndependentOfCallOrder(t *testing.T) {
	// Clauses compile in the fixed PRUNE, FILTER, SORT, LIMIT order no matter
	// how the builder calls were sequenced.
	first := Outbound(1, 2, "ChildOf", "User/1").
		Sort("name").
		Limit(5).
		Prune(NewFilter(Field("depth").Equals(1))).
		Filter(NewFilter(Field("active").IsTrue()))
	second := Outbound(1, 2, "ChildOf", "User/1").
		Filter(NewFilter(Field("active").IsTrue())).
		Prune(NewFilter(Field("depth").Equals(1))).
		Limit(5).
		Sort("name")

	aqlFirst, err := first.ToAQL()
	require.NoError(t, err)
	aqlSecond, err := second.ToAQL()
	require.NoError(t, err)

	assert.Equal(t, aqlFirst, aqlSecond)
	assert.Equal(t,
		"FOR a in 1..2 OUTBOUND 'User/1' ChildOf "+
			"PRUNE a.depth == 1 "+
			"FILTER a.active == true "+
			"SORT a.name ASC "+
			"LIMIT 5 "+
			"return a",
		aqlFirst)
}

func TestToAQL_DistinctAlwaysCompilesOnReturn(t *testing.T) {
	early := NewQuery("User").Distinct().Filter(NewFilter(Field("age").GreaterThan(15))).Sort("age").Limit(3)
	late := NewQuery("User").Filter(NewFilter(Field("age").GreaterThan(15))).Sort("age").Limit(3).Distinct()

	aqlEarly, err := early.ToAQL()
	require.NoError(t, err)
	aqlLate, err := late.ToAQL()
	require.NoError(t, err)

	assert.Equal(t, aqlEarly, aqlLate)
	assert.True(t, strings.HasSuffix(aqlEarly, "return DISTINCT a"))
}

func TestToAQL_DistinctFromAnyScopeInChain(t *testing.T) {
	q := NewQuery("Dish").JoinOutbound(1, 1, false, NewQuery("PartOf").Distinct())
	aql, err := q.ToAQL()
	require.NoError(t, err)
	assert.Equal(t, "FOR a in Dish FOR b in 1..1 OUTBOUND a PartOf return DISTINCT b", aql)

	q = NewQuery("Dish").Distinct().JoinOutbound(1, 1, false, NewQuery("PartOf"))
	aql, err = q.ToAQL()
	require.NoError(t, err)
	assert.Equal(t, "FOR a in Dish FOR b in 1..1 OUTBOUND a PartOf return DISTINCT b", aql)
}

func TestToAQL_Idempotent(t *testing.T) {
	q := NewQuery("Companies").
		Filter(NewFilter(AnyOf("emails").Like("%gmail.com")).And(Field("age").In(1, 2, 3))).
		Sort("company_name", Desc).
		Limit(5, 10).
		JoinOutbound(1, 2, false, NewQuery("MemberOf").Distinct())

	first, err := q.ToAQL()
	require.NoError(t, err)
	second, err := q.ToAQL()
	require.NoError(t, err)
	assert.Equal(t, first, second)
}

func TestToAQL_DeepChainAssignsDistinctVariables(t *testing.T) {
	// 28 scopes: the last two run past the single-letter alphabet.
	const joins = 27
	q := NewQuery("L27")
	for i := joins - 1; i >= 0; i-- {
		q = NewQuery(fmt.Sprintf("L%d", i)).JoinOutbound(1, 1, false, q)
	}

	aql, err := q.ToAQL()
	require.NoError(t, err)
	assert.Contains(t, aql, "FOR aa in 1..1 OUTBOUND z L26")
	assert.Contains(t, aql, "FOR ab in 1..1 OUTBOUND aa L27")
	assert.True(t, strings.HasSuffix(aql, "return ab"))

	// Every FOR introduces a fresh variable.
	vars := map[string]struct{}{}
	fields := strings.Fields(aql)
	for i, token := range fields {
		if token == "FOR" {
			v := fields[i+1]
			_, seen := vars[v]
			assert.False(t, seen, "scope variable %q assigned twice", v)
			vars[v] = struct{}{}
		}
	}
	assert.Len(t, vars, joins+1)
}

func TestToAQL_MustToAQLPanicsOnError(t *testing.T) {
	assert.Panics(t, func() {
		NewQuery("User").Filter(Filter{}).MustToAQL()
	})
	assert.Equal(t, "FOR a in User return a", NewQuery("User").MustToAQL())
}

func TestToAQL_GoldenStatements(t *testing.T) {
	g := goldie.New(t)

	simple := NewQuery("User").Filter(NewFilter(Field("age").GreaterThan(15)))
	aql, err := simple.ToAQL()
	require.NoError(t, err)
	g.Assert(t, "simple_filter", []byte(aql))

	join := NewQuery("User").JoinOutbound(1, 2, false, NewQuery("edgeCollection"))
	aql, err = join.ToAQL()
	require.NoError(t, err)
	g.Assert(t, "graph_join", []byte(aql))

	full := NewQuery("Companies").
		Filter(NewFilter(AnyOf("emails").Like("%gmail.com"))).
		Sort("company_name").
		JoinOutbound(1, 2, false, NewQuery("MemberOf").
			Sort("_id").
			Filter(NewFilter(Statement("1").Equals(1))).
			JoinInbound(1, 5, false, NewQuery("BelongsTo").
				JoinOutbound(2, 2, false, NewQuery("HasFriend")))).
		Distinct()
	aql, err = full.ToAQL()
	require.NoError(t, err)
	g.Assert(t, "full_statement", []byte(aql))
}
