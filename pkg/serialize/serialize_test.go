package serialize

import (
	"encoding/json"
	"fmt"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

type node struct {
	value int
}

func (n *node) Serialize(ctx *Context) bool {
	if ctx.PreviouslySerialized(n) {
		return true
	}
	return ctx.Emit(n, Dictionary{"value": n.value})
}

// =============================================================================
// De-duplication
// =============================================================================

func TestContext_Dedup(t *testing.T) {
	ctx := NewContext()
	a := &node{value: 1}
	b := &node{value: 2}

	assert.True(t, ctx.Visit("a", a))
	assert.True(t, ctx.Visit("b", b))
	assert.True(t, ctx.Visit("alias/a", a))

	records := ctx.Records()
	require.Len(t, records, 3)

	assert.Equal(t, Dictionary{"value": 1}, records[0].Fields)
	assert.Equal(t, "a", records[0].Path)
	assert.Nil(t, records[0].Ref)

	assert.Equal(t, Dictionary{"value": 2}, records[1].Fields)

	assert.Nil(t, records[2].Fields, "repeat visit must not re-emit fields")
	require.NotNil(t, records[2].Ref)
	assert.Equal(t, 0, *records[2].Ref)
	assert.Equal(t, "alias/a", records[2].Path)
}

func TestContext_SeparateContexts(t *testing.T) {
	n := &node{value: 7}

	first := NewContext()
	second := NewContext()

	assert.False(t, first.PreviouslySerialized(n))
	assert.True(t, first.PreviouslySerialized(n))
	assert.False(t, second.PreviouslySerialized(n), "contexts must not share state")
}

func TestContext_Emit(t *testing.T) {
	n := &node{value: 1}

	t.Run("unmarked", func(t *testing.T) {
		ctx := NewContext()
		assert.False(t, ctx.Emit(n, Dictionary{"value": 1}))
		assert.Zero(t, ctx.Len())
	})

	t.Run("nil_fields", func(t *testing.T) {
		ctx := NewContext()
		require.False(t, ctx.PreviouslySerialized(n))
		assert.False(t, ctx.Emit(n, nil))
		assert.Nil(t, ctx.Records()[0].Fields)
	})

	t.Run("filled_once", func(t *testing.T) {
		ctx := NewContext()
		require.False(t, ctx.PreviouslySerialized(n))
		assert.True(t, ctx.Emit(n, Dictionary{"value": 1}))
		assert.False(t, ctx.Emit(n, Dictionary{"value": 2}))
		assert.Equal(t, Dictionary{"value": 1}, ctx.Records()[0].Fields)
	})
}

func TestContext_InterleavedMarks(t *testing.T) {
	ctx := NewContext()
	a := &node{value: 1}
	b := &node{value: 2}

	require.False(t, ctx.PreviouslySerialized(a))
	require.False(t, ctx.PreviouslySerialized(b))
	require.True(t, ctx.Emit(a, Dictionary{"value": 1}))
	require.True(t, ctx.Emit(b, Dictionary{"value": 2}))
	require.True(t, ctx.PreviouslySerialized(b))

	records := ctx.Records()
	require.Len(t, records, 3)
	require.NotNil(t, records[2].Ref)
	assert.Equal(t, Dictionary{"value": 2}, records[*records[2].Ref].Fields)
}

func TestContext_ConcurrentVisits(t *testing.T) {
	const workers = 8
	const rounds = 200

	for r := 0; r < rounds; r++ {
		ctx := NewContext()
		nodes := make([]*node, workers)
		for i := range nodes {
			nodes[i] = &node{value: i}
		}

		var wg sync.WaitGroup
		for i := 0; i < workers; i++ {
			wg.Add(1)
			go func(i int) {
				defer wg.Done()
				ctx.Visit(fmt.Sprintf("n%d", i), nodes[i])
				ctx.Visit(fmt.Sprintf("alias/n%d", i), nodes[i])
			}(i)
		}
		wg.Wait()

		records := ctx.Records()
		require.Len(t, records, 2*workers)
		for _, rec := range records {
			if rec.Ref == nil {
				require.NotNil(t, rec.Fields)
				assert.Equal(t, fmt.Sprintf("n%d", rec.Fields["value"]), rec.Path)
				continue
			}
			target := records[*rec.Ref]
			assert.Equal(t, fmt.Sprintf("alias/n%d", target.Fields["value"]), rec.Path)
		}
	}
}

// =============================================================================
// Encoding
// =============================================================================

func TestContext_Marshal(t *testing.T) {
	ctx := NewContext()
	n := &node{value: 3}
	ctx.Visit("n", n)
	ctx.Visit("m", n)

	raw, err := json.Marshal(ctx)
	require.NoError(t, err)
	assert.JSONEq(t, `[{"id":0,"path":"n","fields":{"value":3}},{"id":1,"path":"m","ref":0}]`, string(raw))

	out, err := ctx.YAML()
	require.NoError(t, err)

	var decoded []Record
	require.NoError(t, yaml.Unmarshal(out, &decoded))
	require.Len(t, decoded, 2)
	assert.Equal(t, 3, decoded[0].Fields["value"])
	assert.Equal(t, 0, *decoded[1].Ref)
}
