package container

import (
	"sort"

	"github.com/km-arc/go-canister/framework/validation"
)

// ── Tag model ─────────────────────────────────────────────────────────────────

// Tag is one annotation payload attached to a service. Every payload carries
// a "name" field; the remaining fields are arbitrary.
type Tag map[string]any

// Name returns the payload's tag name.
func (t Tag) Name() string {
	n, _ := t["name"].(string)
	return n
}

// ServiceTags groups the ordered payloads one service holds under one tag
// name.
type ServiceTags struct {
	ServiceID string
	Tags      []Tag
}

// TagEntry is one (service, payload) pair of a flattened tag listing.
type TagEntry struct {
	ServiceID string
	Tag       Tag
}

// SortOptions selects the numeric payload field OverTags sorts by.
// Order -1 iterates ascending by field value, 1 descending; payloads lacking
// the field sort as 0; equal keys keep their original tagging order.
type SortOptions struct {
	Field string `validate:"required"`
	Order int    `validate:"required,oneof=-1 1"`
}

// tagBucket holds, per tag name, the ordered id list plus per-id payloads.
type tagBucket struct {
	ids  []string
	byID map[string][]Tag
}

// ── Tag operations ────────────────────────────────────────────────────────────

// Tag attaches tag payloads to a service id. A bare string spec normalizes to
// Tag{"name": spec}; a map spec must already carry a non-empty "name" field.
// Payloads are appended, never merged: tagging the same service with the same
// tag name twice yields two distinct entries, in call order.
func (c *Container) Tag(serviceID string, tagSpecs ...any) {
	for _, spec := range tagSpecs {
		t := normalizeTag(spec)
		name := t.Name()
		b := c.tags[name]
		if b == nil {
			b = &tagBucket{byID: make(map[string][]Tag)}
			c.tags[name] = b
		}
		if _, seen := b.byID[serviceID]; !seen {
			b.ids = append(b.ids, serviceID)
		}
		b.byID[serviceID] = append(b.byID[serviceID], t)
		c.log.Debug().Str("service", serviceID).Str("tag", name).Msg("service tagged")
	}
}

// GetTag returns the per-service ordered payload listing for a tag name.
// Service order is first-tagged order; an unused tag name yields an empty
// listing.
func (c *Container) GetTag(tagName string) []ServiceTags {
	b := c.tags[tagName]
	if b == nil {
		return nil
	}
	out := make([]ServiceTags, 0, len(b.ids))
	for _, id := range b.ids {
		out = append(out, ServiceTags{
			ServiceID: id,
			Tags:      append([]Tag(nil), b.byID[id]...),
		})
	}
	return out
}

// OverTags invokes callback(serviceID, payload) for each payload attached
// under tagName. Without opts the order is service-insertion order, then
// payload-insertion order within a service. With opts the flattened pairs are
// stably sorted by the numeric payload field first; malformed opts panic with
// *InvalidSortError before any callback runs.
func (c *Container) OverTags(tagName string, opts *SortOptions, callback func(serviceID string, tag Tag)) {
	entries := c.tagEntries(tagName)
	if opts != nil {
		if err := validation.Struct(opts); err != nil {
			panic(&InvalidSortError{Err: err})
		}
		field := opts.Field
		ascending := opts.Order == -1
		sort.SliceStable(entries, func(i, j int) bool {
			a := numericField(entries[i].Tag, field)
			b := numericField(entries[j].Tag, field)
			if ascending {
				return a < b
			}
			return a > b
		})
	}
	for _, e := range entries {
		callback(e.ServiceID, e.Tag)
	}
}

// GetSortedTags returns the flattened (service, payload) pairs for a tag
// name, stably sorted by a caller-supplied comparator.
func (c *Container) GetSortedTags(tagName string, less func(a, b TagEntry) bool) []TagEntry {
	entries := c.tagEntries(tagName)
	sort.SliceStable(entries, func(i, j int) bool {
		return less(entries[i], entries[j])
	})
	return entries
}

// tagEntries flattens a tag bucket in insertion order.
func (c *Container) tagEntries(tagName string) []TagEntry {
	b := c.tags[tagName]
	if b == nil {
		return nil
	}
	var out []TagEntry
	for _, id := range b.ids {
		for _, t := range b.byID[id] {
			out = append(out, TagEntry{ServiceID: id, Tag: t})
		}
	}
	return out
}

// normalizeTag coerces a tag spec into a payload.
func normalizeTag(spec any) Tag {
	switch s := spec.(type) {
	case string:
		if s == "" {
			panic(&InvalidTagError{Spec: spec})
		}
		return Tag{"name": s}
	case Tag:
		if s.Name() == "" {
			panic(&InvalidTagError{Spec: spec})
		}
		return s
	case map[string]any:
		t := Tag(s)
		if t.Name() == "" {
			panic(&InvalidTagError{Spec: spec})
		}
		return t
	default:
		panic(&InvalidTagError{Spec: spec})
	}
}

// numericField reads a payload field as float64, defaulting to 0 when the
// field is absent or non-numeric.
func numericField(t Tag, field string) float64 {
	switch v := t[field].(type) {
	case int:
		return float64(v)
	case int32:
		return float64(v)
	case int64:
		return float64(v)
	case uint:
		return float64(v)
	case float32:
		return float64(v)
	case float64:
		return v
	default:
		return 0
	}
}
