package collapse_test

import (
	"math/rand"
	"slices"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/wnf2018888/eureka/collapse"
	"github.com/wnf2018888/eureka/event"
)

func byValue(a, b string) int {
	return strings.Compare(a, b)
}

func TestBatch(t *testing.T) {
	tests := []struct {
		name string
		in   []event.Event[string]
		want []event.Event[string]
	}{
		{
			name: "order preserved with no duplicate identities",
			in: []event.Event[string]{
				event.NewAdd("A"),
				event.NewAdd("B"),
				event.NewModify("A"),
				event.NewDelete("B"),
			},
			want: []event.Event[string]{
				event.NewAdd("A"),
				event.NewDelete("B"),
			},
		},
		{
			name: "documented example",
			in: []event.Event[string]{
				event.NewAdd("A"),
				event.NewModify("B"),
				event.NewModify("A"),
				event.NewDelete("B"),
				event.NewDelete("C"),
			},
			want: []event.Event[string]{
				event.NewAdd("A"),
				event.NewDelete("B"),
				event.NewDelete("C"),
			},
		},
		{
			name: "empty",
			in:   nil,
			want: []event.Event[string]{},
		},
		{
			name: "sentinels are dropped",
			in: []event.Event[string]{
				event.NewBufferStart[string](),
				event.NewAdd("A"),
				event.NewBufferEnd[string](),
			},
			want: []event.Event[string]{
				event.NewAdd("A"),
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, collapse.Batch(tt.in, byValue))
		})
	}
}

func TestBatchConflictTable(t *testing.T) {
	tests := []struct {
		name    string
		earlier event.Event[string]
		later   event.Event[string]
		want    event.Event[string]
	}{
		{name: "add then delete", earlier: event.NewAdd("A"), later: event.NewDelete("A"), want: event.NewDelete("A")},
		{name: "add then modify", earlier: event.NewAdd("A"), later: event.NewModify("A"), want: event.NewAdd("A")},
		{name: "modify then add", earlier: event.NewModify("A"), later: event.NewAdd("A"), want: event.NewAdd("A")},
		{name: "modify then delete", earlier: event.NewModify("A"), later: event.NewDelete("A"), want: event.NewDelete("A")},
		{name: "delete then add", earlier: event.NewDelete("A"), later: event.NewAdd("A"), want: event.NewAdd("A")},
		{name: "delete then modify", earlier: event.NewDelete("A"), later: event.NewModify("A"), want: event.NewModify("A")},
		{name: "add then add", earlier: event.NewAdd("A"), later: event.NewAdd("A"), want: event.NewAdd("A")},
		{name: "modify then modify", earlier: event.NewModify("A"), later: event.NewModify("A"), want: event.NewModify("A")},
		{name: "delete then delete", earlier: event.NewDelete("A"), later: event.NewDelete("A"), want: event.NewDelete("A")},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := collapse.Batch([]event.Event[string]{tt.earlier, tt.later}, byValue)
			assert.Equal(t, []event.Event[string]{tt.want}, got)
		})
	}
}

func TestBatchIdempotent(t *testing.T) {
	in := []event.Event[string]{
		event.NewAdd("A"),
		event.NewDelete("B"),
		event.NewModify("C"),
	}
	once := collapse.Batch(in, byValue)
	assert.Equal(t, in, once)
	assert.Equal(t, once, collapse.Batch(once, byValue))
}

func TestBatchSurvivorPosition(t *testing.T) {
	// Survivors are ordered by the most recent event per identity, so A's
	// late Delete places it after B.
	in := []event.Event[string]{
		event.NewAdd("A"),
		event.NewAdd("B"),
		event.NewDelete("A"),
	}
	assert.Equal(t, []event.Event[string]{
		event.NewAdd("B"),
		event.NewDelete("A"),
	}, collapse.Batch(in, byValue))
}

func TestLists(t *testing.T) {
	b1 := []event.Event[string]{
		event.NewAdd("A"),
		event.NewAdd("B"),
	}
	b2 := []event.Event[string]{
		event.NewModify("A"),
		event.NewDelete("B"),
	}

	got := collapse.Lists([][]event.Event[string]{b1, b2}, byValue)
	assert.Equal(t, []event.Event[string]{
		event.NewAdd("A"),
		event.NewDelete("B"),
	}, got)
}

func TestListsEquivalentToCollapsedConcatenation(t *testing.T) {
	rng := rand.New(rand.NewSource(42))

	randomBatch := func() []event.Event[string] {
		identities := []string{"a", "b", "c", "d", "e"}
		n := rng.Intn(8)
		batch := make([]event.Event[string], 0, n)
		for range n {
			id := identities[rng.Intn(len(identities))]
			switch rng.Intn(3) {
			case 0:
				batch = append(batch, event.NewAdd(id))
			case 1:
				batch = append(batch, event.NewModify(id))
			default:
				batch = append(batch, event.NewDelete(id))
			}
		}
		return batch
	}

	for range 200 {
		b1, b2 := randomBatch(), randomBatch()
		concat := slices.Concat(b1, b2)

		want := collapse.Batch(concat, byValue)
		got := collapse.Lists([][]event.Event[string]{b1, b2}, byValue)
		require.Equal(t, want, got, "batches %v and %v", b1, b2)
	}
}

func TestAndExtract(t *testing.T) {
	in := []event.Event[string]{
		event.NewAdd("A"),
		event.NewAdd("B"),
		event.NewModify("A"),
		event.NewDelete("B"),
	}
	assert.Equal(t, []string{"A"}, collapse.AndExtract(in, byValue))
}

func TestAndExtractSorted(t *testing.T) {
	in := []event.Event[string]{
		event.NewAdd("C"),
		event.NewAdd("A"),
		event.NewModify("B"),
	}
	assert.Equal(t, []string{"A", "B", "C"}, collapse.AndExtract(in, byValue))
}

func TestBatchesStream(t *testing.T) {
	in := [][]event.Event[string]{
		{event.NewAdd("A"), event.NewModify("A")},
		{event.NewDelete("B")},
	}
	got := slices.Collect(collapse.Batches(slices.Values(in), byValue))
	assert.Equal(t, [][]event.Event[string]{
		{event.NewAdd("A")},
		{event.NewDelete("B")},
	}, got)
}

func TestBatchListsStream(t *testing.T) {
	in := [][][]event.Event[string]{
		{
			{event.NewAdd("A")},
			{event.NewModify("A"), event.NewAdd("B")},
		},
	}
	got := slices.Collect(collapse.BatchLists(slices.Values(in), byValue))
	assert.Equal(t, [][]event.Event[string]{
		{event.NewAdd("A"), event.NewAdd("B")},
	}, got)
}
