package record

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type user struct {
	Username string `json:"username"`
	Age      int    `json:"age"`
}

func (user) CollectionName() string { return "User" }

type memberOf struct {
	Role string `json:"role"`
}

func (memberOf) CollectionName() string { return "MemberOf" }

type guardedUser struct {
	Username string `json:"username"`
}

func (guardedUser) CollectionName() string { return "User" }

func (u guardedUser) Validate() error {
	if u.Username == "" {
		return assert.AnError
	}
	return nil
}

func TestDatabaseRecord_MarshalInlinesPayload(t *testing.T) {
	r := DatabaseRecord[user]{
		Meta:   Meta{Key: "123", ID: "User/123", Rev: "_abc"},
		Record: user{Username: "felix", Age: 18},
	}

	raw, err := json.Marshal(r)
	require.NoError(t, err)

	var doc map[string]any
	require.NoError(t, json.Unmarshal(raw, &doc))
	assert.Equal(t, "123", doc["_key"])
	assert.Equal(t, "User/123", doc["_id"])
	assert.Equal(t, "_abc", doc["_rev"])
	assert.Equal(t, "felix", doc["username"])
	assert.Equal(t, float64(18), doc["age"])
	assert.NotContains(t, doc, "_from")
	assert.NotContains(t, doc, "_to")
}

func TestDatabaseRecord_MarshalEdgeMeta(t *testing.T) {
	r := DatabaseRecord[memberOf]{
		Meta:   Meta{From: "User/1", To: "Company/2"},
		Record: memberOf{Role: "admin"},
	}

	raw, err := json.Marshal(r)
	require.NoError(t, err)

	var doc map[string]any
	require.NoError(t, json.Unmarshal(raw, &doc))
	assert.Equal(t, "User/1", doc["_from"])
	assert.Equal(t, "Company/2", doc["_to"])
	assert.Equal(t, "admin", doc["role"])
}

func TestDatabaseRecord_UnmarshalSplitsDocument(t *testing.T) {
	raw := []byte(`{"_key":"123","_id":"User/123","_rev":"_abc","username":"felix","age":18}`)

	var r DatabaseRecord[user]
	require.NoError(t, json.Unmarshal(raw, &r))
	assert.Equal(t, "123", r.Key)
	assert.Equal(t, "User/123", r.ID)
	assert.Equal(t, "_abc", r.Rev)
	assert.Equal(t, user{Username: "felix", Age: 18}, r.Record)
}

func TestDatabaseRecord_RoundTrip(t *testing.T) {
	original := DatabaseRecord[user]{
		Meta:   Meta{Key: "9", ID: "User/9", Rev: "_x"},
		Record: user{Username: "gerard", Age: 42},
	}

	raw, err := json.Marshal(original)
	require.NoError(t, err)

	var decoded DatabaseRecord[user]
	require.NoError(t, json.Unmarshal(raw, &decoded))
	assert.Equal(t, original, decoded)
}

func TestQuery_UsesCollectionName(t *testing.T) {
	aql, err := Query[user]().ToAQL()
	require.NoError(t, err)
	assert.Equal(t, "FOR a in User return a", aql)
}

func TestTraversalQueries_StartAtDocumentID(t *testing.T) {
	r := DatabaseRecord[user]{Meta: Meta{Key: "123", ID: "User/123"}}

	aql, err := r.OutboundQuery(1, 2, "MemberOf").ToAQL()
	require.NoError(t, err)
	assert.Equal(t, "FOR a in 1..2 OUTBOUND 'User/123' MemberOf return a", aql)

	aql, err = r.InboundQuery(1, 1, "MemberOf").ToAQL()
	require.NoError(t, err)
	assert.Equal(t, "FOR a in 1..1 INBOUND 'User/123' MemberOf return a", aql)

	aql, err = r.AnyQuery(2, 3, "Knows").ToAQL()
	require.NoError(t, err)
	assert.Equal(t, "FOR a in 2..3 ANY 'User/123' Knows return a", aql)
}
