package dom

import (
	"fmt"
	"io"
	"strings"
)

// Dump writes an indented outline of the tree rooted at n to w, in the
// style the cmd/html5parser `parse` and `dom` subcommands use to print the
// finished Document (spec section 6).
func Dump(w io.Writer, n *Node) {
	dump(w, n, 0)
}

func dump(w io.Writer, n *Node, depth int) {
	indent := strings.Repeat("  ", depth)
	switch n.Type {
	case DocumentNode:
		fmt.Fprintf(w, "%s#document\n", indent)
	case DoctypeNode:
		fmt.Fprintf(w, "%s<!DOCTYPE %s", indent, n.Data)
		if n.PublicID != "" || n.SystemID != "" {
			fmt.Fprintf(w, " %q %q", n.PublicID, n.SystemID)
		}
		fmt.Fprint(w, ">\n")
	case ElementNode:
		fmt.Fprintf(w, "%s<%s", indent, n.Name.String())
		for _, a := range n.Attr {
			fmt.Fprintf(w, " %s=%q", a.Name, a.Value)
		}
		fmt.Fprint(w, ">\n")
	case TextNode:
		fmt.Fprintf(w, "%s%q\n", indent, n.Data)
	case CommentNode:
		fmt.Fprintf(w, "%s<!-- %s -->\n", indent, n.Data)
	case ProcessingInstructionNode:
		fmt.Fprintf(w, "%s<?%s %s?>\n", indent, n.Target, n.Data)
	case DocumentFragmentNode:
		fmt.Fprintf(w, "%s#document-fragment\n", indent)
	}
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		dump(w, c, depth+1)
	}
}

// String returns Dump's output as a string, primarily for use in tests.
func String(n *Node) string {
	var b strings.Builder
	Dump(&b, n)
	return b.String()
}
