package desktopentry

import (
	"github.com/gobwas/glob"
	"github.com/gopasspw/gopass/pkg/set"
)

// findFirst returns the first item whose lookup key equals key. Comments
// never match. One traversal serves both collection shapes: groups within
// a document and entries within a group.
func findFirst[T keyed](items []T, key string) (T, bool) {
	for _, it := range items {
		if k, ok := it.lookupKey(); ok && k == key {
			return it, true
		}
	}

	var zero T

	return zero, false
}

// requireFirst is findFirst with a *NotFoundError instead of a bool.
func requireFirst[T keyed](items []T, key string) (T, error) {
	it, ok := findFirst(items, key)
	if !ok {
		var zero T

		return zero, &NotFoundError{Key: key}
	}

	return it, nil
}

// withoutComments returns the content items of a collection, preserving
// relative order.
func withoutComments[T keyed](items []T) []T {
	out := make([]T, 0, len(items))
	for _, it := range items {
		if _, ok := it.lookupKey(); ok {
			out = append(out, it)
		}
	}

	return out
}

// onlyComments returns the comments of a collection, preserving relative
// order.
func onlyComments[T keyed](items []T) []*Comment {
	out := make([]*Comment, 0, len(items))
	for _, it := range items {
		if c, ok := any(it).(*Comment); ok {
			out = append(out, c)
		}
	}

	return out
}

// Find returns the first group with the given header.
func (d *Document) Find(header string) (*Group, bool) {
	it, ok := findFirst(d.Items, header)
	if !ok {
		return nil, false
	}

	return it.(*Group), true
}

// Require returns the first group with the given header or a
// *NotFoundError naming it.
func (d *Document) Require(header string) (*Group, error) {
	it, err := requireFirst(d.Items, header)
	if err != nil {
		return nil, err
	}

	return it.(*Group), nil
}

// Groups returns the document's groups in order, without comments.
func (d *Document) Groups() []*Group {
	items := withoutComments(d.Items)

	out := make([]*Group, 0, len(items))
	for _, it := range items {
		out = append(out, it.(*Group))
	}

	return out
}

// Comments returns the document's top-level comments in order.
func (d *Document) Comments() []*Comment {
	return onlyComments(d.Items)
}

// Headers returns the sorted, deduplicated headers of all groups.
func (d *Document) Headers() []string {
	groups := d.Groups()

	headers := make([]string, 0, len(groups))
	for _, g := range groups {
		headers = append(headers, g.Header)
	}

	return set.Sorted(headers)
}

// FindGlob returns all groups whose header matches the given glob
// pattern, in document order. Desktop files commonly hold `Desktop
// Action *` groups next to the main one; this locates them without
// callers iterating by hand.
func (d *Document) FindGlob(pattern string) ([]*Group, error) {
	g, err := glob.Compile(pattern)
	if err != nil {
		return nil, err
	}

	var out []*Group
	for _, grp := range d.Groups() {
		if g.Match(grp.Header) {
			out = append(out, grp)
		}
	}

	return out, nil
}

// Find returns the first entry with the given key, localized or not.
func (g *Group) Find(key string) (*KeyValue, bool) {
	it, ok := findFirst(g.Entries, key)
	if !ok {
		return nil, false
	}

	return it.(*KeyValue), true
}

// Require returns the first entry with the given key or a *NotFoundError
// naming it.
func (g *Group) Require(key string) (*KeyValue, error) {
	it, err := requireFirst(g.Entries, key)
	if err != nil {
		return nil, err
	}

	return it.(*KeyValue), nil
}

// FindLocale returns the first entry whose key matches and whose locale
// satisfies the matcher. Unlocalized entries match any locale query.
func (g *Group) FindLocale(key string, m LocaleMatcher) (*KeyValue, bool) {
	for _, e := range g.Entries {
		kv, ok := e.(*KeyValue)
		if !ok || kv.Key != key {
			continue
		}
		if m.Matches(kv.Locale) {
			return kv, true
		}
	}

	return nil, false
}

// RequireLocale is FindLocale with a *NotFoundError instead of a bool.
func (g *Group) RequireLocale(key string, m LocaleMatcher) (*KeyValue, error) {
	kv, ok := g.FindLocale(key, m)
	if !ok {
		return nil, &NotFoundError{Key: key}
	}

	return kv, nil
}

// KeyValues returns the group's content entries in order, without
// comments.
func (g *Group) KeyValues() []*KeyValue {
	entries := withoutComments(g.Entries)

	out := make([]*KeyValue, 0, len(entries))
	for _, e := range entries {
		out = append(out, e.(*KeyValue))
	}

	return out
}

// Comments returns the group's comments in order.
func (g *Group) Comments() []*Comment {
	return onlyComments(g.Entries)
}

// Keys returns the sorted, deduplicated keys of the group's content
// entries.
func (g *Group) Keys() []string {
	kvs := g.KeyValues()

	keys := make([]string, 0, len(kvs))
	for _, kv := range kvs {
		keys = append(keys, kv.Key)
	}

	return set.Sorted(keys)
}
