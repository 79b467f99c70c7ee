package container_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/km-arc/go-canister/framework/container"
)

//
// -----------------------------------------------------------------------------
// Normalization
// -----------------------------------------------------------------------------

// TestTag_StringNormalizesToPayload verifies a bare string spec becomes
// {name: spec}.
func TestTag_StringNormalizesToPayload(t *testing.T) {
	c := container.New()
	c.Set("svc", 1)
	c.Tag("svc", "x")

	got := c.GetTag("x")
	require.Len(t, got, 1)
	assert.Equal(t, "svc", got[0].ServiceID)
	require.Len(t, got[0].Tags, 1)
	assert.Equal(t, container.Tag{"name": "x"}, got[0].Tags[0])
}

// TestTag_StructuredPayloadKeepsFields verifies map payloads pass through
// with their extra fields.
func TestTag_StructuredPayloadKeepsFields(t *testing.T) {
	c := container.New()
	c.Tag("svc", container.Tag{"name": "exporters", "order": 10, "format": "csv"})

	got := c.GetTag("exporters")
	require.Len(t, got, 1)
	assert.Equal(t, 10, got[0].Tags[0]["order"])
	assert.Equal(t, "csv", got[0].Tags[0]["format"])
}

// TestTag_MapSpecAccepted verifies plain map[string]any specs normalize too.
func TestTag_MapSpecAccepted(t *testing.T) {
	c := container.New()
	c.Tag("svc", map[string]any{"name": "t", "order": 1})

	require.Len(t, c.GetTag("t"), 1)
}

// TestTag_InvalidShapes verifies non-string, non-named-map specs fail with
// *InvalidTagError.
func TestTag_InvalidShapes(t *testing.T) {
	c := container.New()

	for _, spec := range []any{42, container.Tag{"order": 1}, map[string]any{}, "", nil} {
		err := catchErr(t, func() { c.Tag("svc", spec) })
		var e *container.InvalidTagError
		require.ErrorAs(t, err, &e, "spec %#v should be rejected", spec)
	}
}

//
// -----------------------------------------------------------------------------
// Accumulation & ordering
// -----------------------------------------------------------------------------

// TestTag_DuplicatesPreservedInCallOrder verifies tagging the same service
// with the same tag name twice yields two distinct entries, in call order.
func TestTag_DuplicatesPreservedInCallOrder(t *testing.T) {
	c := container.New()
	c.Tag("svc", container.Tag{"name": "t", "seq": 1})
	c.Tag("svc", container.Tag{"name": "t", "seq": 2})

	got := c.GetTag("t")
	require.Len(t, got, 1)
	require.Len(t, got[0].Tags, 2)
	assert.Equal(t, 1, got[0].Tags[0]["seq"])
	assert.Equal(t, 2, got[0].Tags[1]["seq"])
}

// TestGetTag_ServiceInsertionOrder verifies services appear in first-tagged
// order.
func TestGetTag_ServiceInsertionOrder(t *testing.T) {
	c := container.New()
	c.Tag("b", "t")
	c.Tag("a", "t")
	c.Tag("b", "t")

	got := c.GetTag("t")
	require.Len(t, got, 2)
	assert.Equal(t, "b", got[0].ServiceID)
	assert.Equal(t, "a", got[1].ServiceID)
	assert.Len(t, got[0].Tags, 2)
}

// TestGetTag_UnknownNameIsEmpty verifies an unused tag name yields an empty
// listing.
func TestGetTag_UnknownNameIsEmpty(t *testing.T) {
	c := container.New()
	assert.Empty(t, c.GetTag("never-used"))
}

//
// -----------------------------------------------------------------------------
// OverTags — plain iteration
// -----------------------------------------------------------------------------

// TestOverTags_NoSort_InsertionOrder verifies iteration order without sort
// options is service-insertion order, then payload order within a service.
func TestOverTags_NoSort_InsertionOrder(t *testing.T) {
	c := container.New()
	c.Tag("a", container.Tag{"name": "t", "seq": 1})
	c.Tag("b", container.Tag{"name": "t", "seq": 2})
	c.Tag("a", container.Tag{"name": "t", "seq": 3})

	var ids []string
	var seqs []int
	c.OverTags("t", nil, func(id string, tag container.Tag) {
		ids = append(ids, id)
		seqs = append(seqs, tag["seq"].(int))
	})

	assert.Equal(t, []string{"a", "a", "b"}, ids)
	assert.Equal(t, []int{1, 3, 2}, seqs)
}

//
// -----------------------------------------------------------------------------
// OverTags — sorted iteration
// -----------------------------------------------------------------------------

func tagABC(c *container.Container) {
	c.Tag("A", container.Tag{"name": "t", "order": 30})
	c.Tag("B", container.Tag{"name": "t", "order": 20})
	c.Tag("C", container.Tag{"name": "t", "order": 10})
}

// TestOverTags_SortAscending verifies Order -1 visits ascending by field
// value.
func TestOverTags_SortAscending(t *testing.T) {
	c := container.New()
	tagABC(c)

	var ids []string
	c.OverTags("t", &container.SortOptions{Field: "order", Order: -1},
		func(id string, tag container.Tag) { ids = append(ids, id) })

	assert.Equal(t, []string{"C", "B", "A"}, ids)
}

// TestOverTags_SortDescending verifies Order 1 visits descending by field
// value.
func TestOverTags_SortDescending(t *testing.T) {
	c := container.New()
	tagABC(c)

	var ids []string
	c.OverTags("t", &container.SortOptions{Field: "order", Order: 1},
		func(id string, tag container.Tag) { ids = append(ids, id) })

	assert.Equal(t, []string{"A", "B", "C"}, ids)
}

// TestOverTags_SortStableTies verifies equal keys keep their original
// tagging order.
func TestOverTags_SortStableTies(t *testing.T) {
	c := container.New()
	c.Tag("first", container.Tag{"name": "t", "order": 5})
	c.Tag("second", container.Tag{"name": "t", "order": 5})
	c.Tag("third", container.Tag{"name": "t", "order": 5})

	var ids []string
	c.OverTags("t", &container.SortOptions{Field: "order", Order: -1},
		func(id string, tag container.Tag) { ids = append(ids, id) })

	assert.Equal(t, []string{"first", "second", "third"}, ids)
}

// TestOverTags_MissingFieldDefaultsToZero verifies payloads lacking the sort
// field sort as 0.
func TestOverTags_MissingFieldDefaultsToZero(t *testing.T) {
	c := container.New()
	c.Tag("ordered", container.Tag{"name": "t", "order": 1})
	c.Tag("bare", container.Tag{"name": "t"})

	var ids []string
	c.OverTags("t", &container.SortOptions{Field: "order", Order: -1},
		func(id string, tag container.Tag) { ids = append(ids, id) })

	assert.Equal(t, []string{"bare", "ordered"}, ids)
}

// TestOverTags_MalformedSortOptions verifies validation failures panic with
// *InvalidSortError before any callback runs.
func TestOverTags_MalformedSortOptions(t *testing.T) {
	c := container.New()
	tagABC(c)

	for _, opts := range []*container.SortOptions{
		{Field: "", Order: -1},
		{Field: "order", Order: 0},
		{Field: "order", Order: 2},
	} {
		calls := 0
		err := catchErr(t, func() {
			c.OverTags("t", opts, func(id string, tag container.Tag) { calls++ })
		})
		var e *container.InvalidSortError
		require.ErrorAs(t, err, &e, "opts %+v should be rejected", opts)
		assert.Zero(t, calls, "no partial iteration on invalid opts")
	}
}

//
// -----------------------------------------------------------------------------
// GetSortedTags
// -----------------------------------------------------------------------------

// TestGetSortedTags_CustomComparator verifies the flattened listing is
// stably sorted by the caller's comparator.
func TestGetSortedTags_CustomComparator(t *testing.T) {
	c := container.New()
	tagABC(c)

	entries := c.GetSortedTags("t", func(a, b container.TagEntry) bool {
		return a.ServiceID < b.ServiceID
	})

	require.Len(t, entries, 3)
	assert.Equal(t, "A", entries[0].ServiceID)
	assert.Equal(t, "B", entries[1].ServiceID)
	assert.Equal(t, "C", entries[2].ServiceID)
}
