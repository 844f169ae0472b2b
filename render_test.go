package desktopentry

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRoundTrip(t *testing.T) {
	t.Parallel()

	for name, in := range map[string]string{
		"single group": "[Desktop]\nType=Application\nExec=sh-test",
		"trailing comment": "[Desktop]\nType=Application\n# done",
		"leading comment": "# header comment\n[Desktop]\nType=Application",
		"blank gaps": "[Desktop]\n\n\nType=Application\n\nExec=sh-test",
		"two groups": "[A]\nx=1\n[B]\ny=2",
		"two groups with gap": "[A]\nx=1\n\n[B]\ny=2",
		"empty group between groups": "[A]\n[B]\nx=1",
		"lone header": "[A]",
		"multi values": "[G]\nTargets=World;Universe;all others",
		"duplicate keys": "[G]\nPath=/a\nPath=/b\nPath=/c",
		"locale keys": "[G]\nName=Generic\nName[de_DE]=Speziell\nName[sr@latin]=Opšte",
		"indented blank": "[G]\n \t\nx=1",
		"comment inside group": "[G]\nx=1\n# middle\ny=2",
		"only comments": "# one\n# two\n\n# three",
	} {
		doc, err := ParseString(in)
		require.NoError(t, err, name)
		assert.Equal(t, in, doc.String(), name)
	}
}

func TestCommentPreservation(t *testing.T) {
	t.Parallel()

	in := `[Trash Info]


DeletionDate=2025-08-12T00:14:20
# Here is an awesome comment
Path=~/Downloads/file
Path=/wrong/


DeletionDate=2025-08-14T00:00:00`

	doc, err := ParseString(in)
	require.NoError(t, err)

	group, ok := doc.Find("Trash Info")
	require.True(t, ok)
	require.Len(t, group.Entries, 7)
	assert.Equal(t, &Comment{Kind: BlankComment, Text: "\n\n"}, group.Entries[0])
	assert.Equal(t, &Comment{Kind: TextComment, Text: "Here is an awesome comment"}, group.Entries[2])
	assert.Equal(t, &Comment{Kind: BlankComment, Text: "\n\n"}, group.Entries[5])

	assert.Equal(t, in, doc.String())
}

func TestRenderNormalizesCRLF(t *testing.T) {
	t.Parallel()

	// \r\n endings parse without injecting blank lines and re-render
	// LF-normalized
	for in, want := range map[string]string{
		"[G]\r\nA=1":           "[G]\nA=1",
		"[G]\r\nA=1\r\nB=2":    "[G]\nA=1\nB=2",
		"[G]\r\n\r\nA=1":       "[G]\n\r\nA=1",
		"[A]\r\nx=1\r\n[B]\r\ny=2": "[A]\nx=1\n[B]\ny=2",
	} {
		doc, err := ParseString(in)
		require.NoError(t, err, in)
		assert.Equal(t, want, doc.String(), in)
	}
}

func TestRenderLocale(t *testing.T) {
	t.Parallel()

	l := Locale{Lang: "en", Country: "US", Modifier: "new"}
	assert.Equal(t, "en_US@new", l.String())

	doc := &Document{Items: []Item{
		&Group{
			Header: "G",
			Entries: []Entry{
				&KeyValue{Key: "Hello", Locale: &l, Values: []string{"World"}},
			},
		},
	}}
	assert.Equal(t, "[G]\nHello[en_US@new]=World", doc.String())
}

func TestRenderCountryUppercased(t *testing.T) {
	t.Parallel()

	l := Locale{Lang: "en", Country: "us"}
	assert.Equal(t, "en_US", l.String())
}

func TestRenderTextComment(t *testing.T) {
	t.Parallel()

	doc := &Document{Items: []Item{
		&Comment{Kind: TextComment, Text: "hello"},
	}}
	assert.Equal(t, "# hello", doc.String())
}

func TestRenderValuesJoined(t *testing.T) {
	t.Parallel()

	doc := &Document{Items: []Item{
		&Group{
			Header: "G",
			Entries: []Entry{
				&KeyValue{Key: "Targets", Values: []string{"World", "Universe", "all others"}},
			},
		},
	}}
	assert.Equal(t, "[G]\nTargets=World;Universe;all others", doc.String())
}

func TestRenderEmptyDocument(t *testing.T) {
	t.Parallel()

	doc := &Document{}
	assert.Empty(t, doc.String())
}

func TestGroupString(t *testing.T) {
	t.Parallel()

	g := &Group{
		Header: "Desktop Entry",
		Entries: []Entry{
			&KeyValue{Key: "Name", Values: []string{"Editor"}},
		},
	}
	assert.Equal(t, "[Desktop Entry]\nName=Editor", g.String())
}
