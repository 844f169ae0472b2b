package desktopentry

import "strings"

// String renders the document back to text.
//
// The renderer is the designed inverse of Parse: for input that needed no
// escape decoding or value trimming, render(parse(x)) == x, including all
// comments and blank-line runs. Nodes are joined by a single newline,
// except that nothing is written after a node that already ends in a
// Blank comment (its stored text supplies the line breaks) or after the
// very last node.
//
// Values are written as stored, no escaping is re-applied. See the Known
// limitations section of the package documentation.
func (d *Document) String() string {
	var sb strings.Builder
	renderAll(&sb, d.Items)

	return sb.String()
}

// String renders the group as it would appear inside a document.
func (g *Group) String() string {
	var sb strings.Builder
	renderNode(&sb, g)

	return sb.String()
}

func renderAll[T keyed](sb *strings.Builder, nodes []T) {
	for i, n := range nodes {
		if i > 0 && !endsBlank(nodes[i-1]) {
			sb.WriteByte('\n')
		}
		renderNode(sb, n)
	}
}

// endsBlank reports whether the rendered form of a node ends with a Blank
// comment, i.e. already carries its own trailing line breaks.
func endsBlank(n keyed) bool {
	switch n := n.(type) {
	case *Comment:
		return n.IsBlank()
	case *Group:
		if len(n.Entries) == 0 {
			return false
		}

		return endsBlank(n.Entries[len(n.Entries)-1])
	default:
		return false
	}
}

func renderNode(sb *strings.Builder, n keyed) {
	switch n := n.(type) {
	case *Group:
		sb.WriteByte('[')
		sb.WriteString(n.Header)
		sb.WriteByte(']')
		// the join rule supplies the newline between an empty group's
		// header and the next item
		if len(n.Entries) > 0 {
			sb.WriteByte('\n')
		}
		renderAll(sb, n.Entries)
	case *KeyValue:
		sb.WriteString(n.Key)
		if n.Locale != nil {
			sb.WriteByte('[')
			sb.WriteString(n.Locale.String())
			sb.WriteByte(']')
		}
		sb.WriteByte('=')
		sb.WriteString(strings.Join(n.Values, ";"))
	case *Comment:
		if n.IsBlank() {
			sb.WriteString(n.Text)

			return
		}
		sb.WriteString("# ")
		sb.WriteString(n.Text)
	}
}
