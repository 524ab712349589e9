package query

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestQuery_FilterLastCallWins(t *testing.T) {
	q := NewQuery("User").
		Filter(NewFilter(Field("active").IsTrue())).
		Filter(NewFilter(Field("gender").Equals("f")))

	aql, err := q.ToAQL()
	require.NoError(t, err)
	assert.Equal(t, `FOR a in User FILTER a.gender == "f" return a`, aql)
}

func TestQuery_SortAccumulates(t *testing.T) {
	q := NewQuery("User").Sort("last_name").Sort("age", Desc)
	aql, err := q.ToAQL()
	require.NoError(t, err)
	assert.Equal(t, "FOR a in User SORT a.last_name ASC, a.age DESC return a", aql)
}

func TestQuery_LimitLastCallWins(t *testing.T) {
	q := NewQuery("User").Limit(20, 100).Limit(5)
	aql, err := q.ToAQL()
	require.NoError(t, err)
	assert.Equal(t, "FOR a in User LIMIT 5 return a", aql)
}

func TestQuery_LimitWithSkip(t *testing.T) {
	q := NewQuery("User").Limit(5, 10)
	aql, err := q.ToAQL()
	require.NoError(t, err)
	assert.Equal(t, "FOR a in User LIMIT 10, 5 return a", aql)
}

func TestQuery_JoinLastCallWins(t *testing.T) {
	q := NewQuery("User").
		JoinOutbound(1, 2, false, NewQuery("Follows")).
		JoinInbound(1, 1, false, NewQuery("MemberOf"))

	aql, err := q.ToAQL()
	require.NoError(t, err)
	assert.Equal(t, "FOR a in User FOR b in 1..1 INBOUND a MemberOf return b", aql)
}

func TestQuery_JoinDoesNotMutateSubQuery(t *testing.T) {
	sub := NewQuery("MemberOf")
	_ = NewQuery("User").JoinOutbound(1, 2, false, sub)

	aql, err := sub.ToAQL()
	require.NoError(t, err)
	assert.Equal(t, "FOR a in MemberOf return a", aql)
}

func TestQuery_BranchingDoesNotShareState(t *testing.T) {
	base := NewQuery("User").Sort("created_at")
	byName := base.Sort("name")
	byAge := base.Sort("age", Desc).Limit(10)

	aql, err := base.ToAQL()
	require.NoError(t, err)
	assert.Equal(t, "FOR a in User SORT a.created_at ASC return a", aql)

	aql, err = byName.ToAQL()
	require.NoError(t, err)
	assert.Equal(t, "FOR a in User SORT a.created_at ASC, a.name ASC return a", aql)

	aql, err = byAge.ToAQL()
	require.NoError(t, err)
	assert.Equal(t, "FOR a in User SORT a.created_at ASC, a.age DESC LIMIT 10 return a", aql)
}

func TestQuery_RootTraversals(t *testing.T) {
	tests := []struct {
		name     string
		query    Query
		expected string
	}{
		{
			"outbound",
			Outbound(1, 2, "ChildOf", "User/123"),
			"FOR a in 1..2 OUTBOUND 'User/123' ChildOf return a",
		},
		{
			"inbound",
			Inbound(1, 5, "ChildOf", "User/123"),
			"FOR a in 1..5 INBOUND 'User/123' ChildOf return a",
		},
		{
			"any",
			Any(1, 1, "Knows", "Person/7"),
			"FOR a in 1..1 ANY 'Person/7' Knows return a",
		},
		{
			"outbound named graph",
			OutboundGraph(1, 2, "SomeGraph", "User/123"),
			"FOR a in 1..2 OUTBOUND 'User/123' GRAPH SomeGraph return a",
		},
		{
			"inbound named graph",
			InboundGraph(2, 4, "SomeGraph", "User/123"),
			"FOR a in 2..4 INBOUND 'User/123' GRAPH SomeGraph return a",
		},
		{
			"any named graph",
			AnyGraph(1, 3, "SomeGraph", "User/123"),
			"FOR a in 1..3 ANY 'User/123' GRAPH SomeGraph return a",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			aql, err := tt.query.ToAQL()
			require.NoError(t, err)
			assert.Equal(t, tt.expected, aql)
		})
	}
}

func TestQuery_PruneOnTraversal(t *testing.T) {
	q := Outbound(1, 2, "ChildOf", "User/123").
		Prune(NewFilter(Field("_key").Equals("49")))
	aql, err := q.ToAQL()
	require.NoError(t, err)
	assert.Equal(t, `FOR a in 1..2 OUTBOUND 'User/123' ChildOf PRUNE a._key == "49" return a`, aql)
}

func TestQuery_PruneOnCollectionIsRejected(t *testing.T) {
	q := NewQuery("User").Prune(NewFilter(Field("_key").Equals("49")))
	_, err := q.ToAQL()
	require.Error(t, err)
	assert.True(t, IsInvalidPruneErr(err))
}

func TestQuery_InvalidDepthBoundsAreRejected(t *testing.T) {
	_, err := Outbound(5, 2, "ChildOf", "User/123").ToAQL()
	require.Error(t, err)
	assert.True(t, IsInvalidTraversalDepthErr(err))

	_, err = NewQuery("User").JoinOutbound(3, 1, false, NewQuery("ChildOf")).ToAQL()
	require.Error(t, err)
	assert.True(t, IsInvalidTraversalDepthErr(err))
}

func TestQuery_EmptyFilterIsRejected(t *testing.T) {
	_, err := NewQuery("User").Filter(Filter{}).ToAQL()
	require.Error(t, err)
	assert.True(t, IsMalformedFilterErr(err))

	_, err = Outbound(1, 1, "ChildOf", "User/1").Prune(Filter{}).ToAQL()
	require.Error(t, err)
	assert.True(t, IsMalformedFilterErr(err))
}
