package desktopentry

// Document is the full parsed representation of one desktop-entry file.
//
// It holds an ordered sequence of top-level items, each of which is either
// a *Group or a *Comment. The order is the serialization order and is
// preserved exactly; nothing is sorted or deduplicated. Duplicate group
// headers are allowed, lookups return the first match.
//
// A Document owns its groups, entries and comments exclusively. It is not
// safe for concurrent use; callers that share a Document across goroutines
// must provide their own synchronization.
type Document struct {
	Items []Item
}

// Item is a top-level element of a Document: either a *Group or a
// *Comment. The sum is closed, no other type satisfies it.
type Item interface {
	keyed
	topLevelItem()
}

// Entry is an element of a Group: either a *KeyValue or a *Comment.
// The sum is closed, no other type satisfies it.
type Entry interface {
	keyed
	groupEntry()
}

// Group is a named section of a desktop-entry file: a `[Header]` line
// followed by an ordered sequence of entries. The header is stored
// without the surrounding brackets.
type Group struct {
	Header  string
	Entries []Entry
}

// KeyValue is a single `key[locale]=value;value;...` line.
//
// Key is restricted to ASCII alphanumerics and '-' (the parser enforces
// this; programmatic construction is expected to respect it, see
// NewASCIIString for sanitizing arbitrary input). Locale is nil for
// unlocalized entries. Values are stored decoded and trimmed, in order,
// without deduplication.
type KeyValue struct {
	Key    string
	Locale *Locale
	Values []string
}

// Value returns the first value of the entry, or the empty string if the
// entry has no values (a bare `key=` line).
func (kv *KeyValue) Value() string {
	if len(kv.Values) == 0 {
		return ""
	}

	return kv.Values[0]
}

// CommentKind discriminates the two comment variants.
type CommentKind int

const (
	// TextComment is a `#` line. Text holds the body without the leading
	// `#` and the single space after it, if any.
	TextComment CommentKind = iota
	// BlankComment is a verbatim run of whitespace between entries. Text
	// holds the run exactly as read, it is never empty and never contains
	// a `#`. It exists purely so the original spacing survives a
	// parse/render round trip.
	BlankComment
)

// Comment is a non-content element: a `#` line or a preserved run of
// blank lines. Comments may appear both at the top level of a Document
// and between the entries of a Group.
type Comment struct {
	Kind CommentKind
	Text string
}

// IsBlank reports whether the comment is a preserved whitespace run.
func (c *Comment) IsBlank() bool {
	return c.Kind == BlankComment
}

// keyed is implemented by every node that can appear in an ordered
// collection subject to lookups. Comments report ok == false and never
// match a key.
type keyed interface {
	lookupKey() (key string, ok bool)
}

func (g *Group) lookupKey() (string, bool) { return g.Header, true }

func (kv *KeyValue) lookupKey() (string, bool) { return kv.Key, true }

func (c *Comment) lookupKey() (string, bool) { return "", false }

func (g *Group) topLevelItem() {}

func (c *Comment) topLevelItem() {}

func (kv *KeyValue) groupEntry() {}

func (c *Comment) groupEntry() {}

// GetOrInsert returns the first entry with the given key and no locale
// qualifier needed to match, appending a new empty entry at the end of
// the group if none exists. The returned entry can be edited in place.
func (g *Group) GetOrInsert(key string) *KeyValue {
	if kv, ok := g.Find(key); ok {
		return kv
	}

	kv := &KeyValue{Key: key}
	g.Entries = append(g.Entries, kv)

	return kv
}

// GetOrInsertGroup returns the first group with the given header,
// appending a new empty group at the end of the document if none exists.
func (d *Document) GetOrInsertGroup(header string) *Group {
	if g, ok := d.Find(header); ok {
		return g
	}

	g := &Group{Header: header}
	d.Items = append(d.Items, g)

	return g
}
