package token

// Attribute is a single name/value pair collected while the tokenizer
// builds a tag token. Duplicate tracks whether a later attribute with the
// same name already appeared earlier on the same tag; duplicates are
// stripped when the tag is finalized (spec section 3).
type Attribute struct {
	Namespace Namespace
	Name      string
	Value     string
	Duplicate bool
}

// finalizeAttributes drops every attribute whose name already appeared
// earlier (first occurrence wins) and returns the remaining attributes in
// order, with Duplicate cleared.
// The tokenizer calls this once, right before emitting a tag token.
func finalizeAttributes(attrs []Attribute) []Attribute {
	if len(attrs) < 2 {
		return attrs
	}
	seen := make(map[string]bool, len(attrs))
	out := attrs[:0]
	for _, a := range attrs {
		if seen[a.Name] {
			continue
		}
		seen[a.Name] = true
		a.Duplicate = false
		out = append(out, a)
	}
	return out
}
