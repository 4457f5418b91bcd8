package eventqueue

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/huynhanx03/go-eventqueue/pkg/serialize"
)

// =============================================================================
// Method: Describe()
// =============================================================================

func TestDescribe_Fields(t *testing.T) {
	q, err := NewWithCapacity(0)
	require.NoError(t, err)
	q.Start()
	require.True(t, q.Submit([]byte("hello")))

	d := q.Describe()
	assert.Equal(t, Description{
		Head:       0,
		Tail:       12,
		QueueSize:  16 * 1024,
		NumEntries: 0,
		EntrySize:  0,
	}, d)

	dict := d.Dictionary()
	assert.Len(t, dict, 6)
	for _, key := range []string{
		FieldHead, FieldTail, FieldEnqueueErrorCount,
		FieldQueueSize, FieldNumEntries, FieldEntrySize,
	} {
		assert.Contains(t, dict, key)
	}
	assert.Equal(t, uint64(0), dict[FieldNumEntries])
}

func TestDescribe_Idempotent(t *testing.T) {
	q, err := NewWithEntries(64, 32)
	require.NoError(t, err)
	q.Start()
	q.Submit([]byte("x"))

	first := q.Describe()
	for i := 0; i < 5; i++ {
		assert.Equal(t, first, q.Describe())
	}
}

func TestDescription_JSONFieldNames(t *testing.T) {
	raw, err := json.Marshal(Description{Head: 1, Tail: 2, EnqueueErrorCount: 3, QueueSize: 4, NumEntries: 5, EntrySize: 6})
	require.NoError(t, err)
	assert.JSONEq(t,
		`{"head":1,"tail":2,"EnqueueErrorCount":3,"QueueSize":4,"numEntries":5,"entrySize":6}`,
		string(raw))
}

// =============================================================================
// Method: Serialize()
// =============================================================================

func TestSerialize_DeduplicatesWithinContext(t *testing.T) {
	q, err := NewWithEntries(5, 16)
	require.NoError(t, err)

	ctx := serialize.NewContext()
	require.True(t, ctx.Visit("primary", q))
	require.True(t, ctx.Visit("alias", q))

	records := ctx.Records()
	require.Len(t, records, 2)
	assert.Equal(t, "primary", records[0].Path)
	assert.Equal(t, uint64(5), records[0].Fields[FieldNumEntries])
	assert.Nil(t, records[1].Fields)
	require.NotNil(t, records[1].Ref)
	assert.Equal(t, records[0].ID, *records[1].Ref)
}

func TestSerialize_FreshContextEmitsAgain(t *testing.T) {
	q, err := NewWithCapacity(0)
	require.NoError(t, err)

	for i := 0; i < 2; i++ {
		ctx := serialize.NewContext()
		require.True(t, q.Serialize(ctx))
		records := ctx.Records()
		require.Len(t, records, 1)
		assert.NotNil(t, records[0].Fields)
	}
}

func TestSerialize_DistinctQueues(t *testing.T) {
	a, err := NewWithCapacity(0)
	require.NoError(t, err)
	b, err := NewWithCapacity(0)
	require.NoError(t, err)

	ctx := serialize.NewContext()
	assert.True(t, a.Serialize(ctx))
	assert.True(t, b.Serialize(ctx))
	assert.True(t, a.Serialize(ctx))

	records := ctx.Records()
	require.Len(t, records, 3)
	assert.NotNil(t, records[0].Fields)
	assert.NotNil(t, records[1].Fields)
	assert.Equal(t, 0, *records[2].Ref)
}
