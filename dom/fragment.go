package dom

import "github.com/dpotapov/html5parser/token"

// Fragment is the result of parsing an HTML fragment against a context
// element, per the "parsing HTML fragments" algorithm this module's
// spec names but leaves the constructor for (spec section 4.4 supplement,
// grounded on original_source/src/dom/document_fragment.rs). It owns its
// own element arena the same way Document does, since a fragment parse
// never has a full Document backing it.
type Fragment struct {
	Root *Node // DocumentFragmentNode; its children are the fragment's top-level nodes
	doc  *Document
}

// NewFragment allocates an empty fragment, backed by a throwaway Document
// whose DocumentElement is never set. context identifies the element the
// fragment is being parsed "as if" it were a child of, which callers use
// to seed the tree constructor's open-elements stack and initial insertion
// mode (e.g. parsing innerHTML of a <select> starts in "in select").
func NewFragment(context token.TagName) *Fragment {
	d := NewDocument()
	f := &Fragment{doc: d}
	f.Root = d.NewDocumentFragment()
	_ = context // recorded by the caller (tree.Parser), not needed on the Node itself
	return f
}

// Document returns the throwaway Document backing the fragment's element
// arena, so the tree constructor can allocate nodes through the same
// NewElement/NewText/... API it uses for a full parse.
func (f *Fragment) Document() *Document { return f.doc }

// Children returns the fragment's top-level nodes.
func (f *Fragment) Children() []*Node { return f.Root.Children() }
