package tree

import "strings"

// quirksExactMatch and quirksPrefixMatch implement spec section 4.3's
// "Quirks classification", grounded verbatim on
// original_source/src/parser/transitions/force_quirks_check.rs
// (quirks_check/limited_quirks_check) — the Rust source this module's spec
// was distilled from carries the exact identifier lists the WHATWG
// algorithm uses, so this module reproduces them rather than re-deriving
// them from the prose spec.

var quirksExactMatch = []string{
	"-//W3O//DTD W3 HTML Strict 3.0//EN//",
	"-/W3C/DTD HTML 4.0 Transitional/EN",
	"HTML",
}

var quirksSystemIDExactMatch = "http://www.ibm.com/data/dtd/v11/ibmxhtml1-transitional.dtd"

var quirksPrefixMatch = []string{
	"+//Silmaril//dtd html Pro v0r11 19970101//",
	"-//AS//DTD HTML 3.0 asWedit + extensions//",
	"-//AdvaSoft Ltd//DTD HTML 3.0 asWedit + extensions//",
	"-//IETF//DTD HTML 2.0 Level 1//",
	"-//IETF//DTD HTML 2.0 Level 2//",
	"-//IETF//DTD HTML 2.0 Strict Level 1//",
	"-//IETF//DTD HTML 2.0 Strict Level 2//",
	"-//IETF//DTD HTML 2.0 Strict//",
	"-//IETF//DTD HTML 2.0//",
	"-//IETF//DTD HTML 2.1E//",
	"-//IETF//DTD HTML 3.0//",
	"-//IETF//DTD HTML 3.2 Final//",
	"-//IETF//DTD HTML 3.2//",
	"-//IETF//DTD HTML 3//",
	"-//IETF//DTD HTML Level 0//",
	"-//IETF//DTD HTML Level 1//",
	"-//IETF//DTD HTML Level 2//",
	"-//IETF//DTD HTML Level 3//",
	"-//IETF//DTD HTML Strict Level 0//",
	"-//IETF//DTD HTML Strict Level 1//",
	"-//IETF//DTD HTML Strict Level 2//",
	"-//IETF//DTD HTML Strict Level 3//",
	"-//IETF//DTD HTML Strict//",
	"-//IETF//DTD HTML//",
	"-//Metrius//DTD Metrius Presentational//",
	"-//Microsoft//DTD Internet Explorer 2.0 HTML Strict//",
	"-//Microsoft//DTD Internet Explorer 2.0 HTML//",
	"-//Microsoft//DTD Internet Explorer 2.0 Tables//",
	"-//Microsoft//DTD Internet Explorer 3.0 HTML Strict//",
	"-//Microsoft//DTD Internet Explorer 3.0 HTML//",
	"-//Microsoft//DTD Internet Explorer 3.0 Tables//",
	"-//Netscape Comm. Corp.//DTD HTML//",
	"-//Netscape Comm. Corp.//DTD Strict HTML//",
	"-//O'Reilly and Associates//DTD HTML 2.0//",
	"-//SoftQuad Software//DTD HoTMetaL PRO 6.0::19990601::extensions to HTML 4.0//",
	"-//O'Reilly and Associates//DTD HTML Extended 1.0//",
	"-//O'Reilly and Associates//DTD HTML Extended Relaxed 1.0//",
	"-//SQ//DTD HTML 2.0 HoTMetaL + extensions//",
	"-//SoftQuad//DTD HoTMetaL PRO 4.0::19971010::extensions to HTML 4.0//",
	"-//Spyglass//DTD HTML 2.0 Extended//",
	"-//Sun Microsystems Corp.//DTD HotJava HTML//",
	"-//Sun Microsystems Corp.//DTD HotJava Strict HTML//",
	"-//W3C//DTD HTML 3 1995-03-24//",
	"-//W3C//DTD HTML 3.2 Draft//",
	"-//W3C//DTD HTML 3.2 Final//",
	"-//W3C//DTD HTML 3.2//",
	"-//W3C//DTD HTML 3.2S Draft//",
	"-//W3C//DTD HTML 4.0 Frameset//",
	"-//W3C//DTD HTML 4.0 Transitional//",
	"-//W3C//DTD HTML Experimental 19960712//",
	"-//W3C//DTD HTML Experimental 970421//",
	"-//W3C//DTD W3 HTML//",
	"-//W3O//DTD W3 HTML 3.0//",
	"-//WebTechs//DTD Mozilla HTML 2.0//",
	"-//WebTechs//DTD Mozilla HTML//",
}

// quirksPrefixMatchNoSystemID additionally requires the DOCTYPE to have no
// system identifier.
var quirksPrefixMatchNoSystemID = []string{
	"-//W3C//DTD HTML 4.01 Frameset//",
	"-//W3C//DTD HTML 4.01 Transitional//",
}

var limitedQuirksPrefixMatch = []string{
	"-//W3C//DTD XHTML 1.0 Frameset//",
	"-//W3C//DTD XHTML 1.0 Transitional//",
}

// limitedQuirksPrefixMatchWithSystemID additionally requires the DOCTYPE to
// have a system identifier present.
var limitedQuirksPrefixMatchWithSystemID = []string{
	"-//W3C//DTD HTML 4.01 Frameset//",
	"-//W3C//DTD HTML 4.01 Transitional//",
}

func hasPrefixFold(s, prefix string) bool {
	return len(s) >= len(prefix) && strings.EqualFold(s[:len(prefix)], prefix)
}

// quirksCheck implements spec section 4.3's quirks_check predicate.
func quirksCheck(name, publicID, systemID string, forceQuirks, systemIDPresent bool) bool {
	if forceQuirks || !strings.EqualFold(name, "html") {
		return true
	}
	for _, m := range quirksExactMatch {
		if strings.EqualFold(publicID, m) {
			return true
		}
	}
	if strings.EqualFold(systemID, quirksSystemIDExactMatch) {
		return true
	}
	for _, p := range quirksPrefixMatch {
		if hasPrefixFold(publicID, p) {
			return true
		}
	}
	if !systemIDPresent {
		for _, p := range quirksPrefixMatchNoSystemID {
			if hasPrefixFold(publicID, p) {
				return true
			}
		}
	}
	return false
}

// limitedQuirksCheck implements spec section 4.3's limited_quirks_check
// predicate.
func limitedQuirksCheck(publicID string, systemIDPresent bool) bool {
	for _, p := range limitedQuirksPrefixMatch {
		if hasPrefixFold(publicID, p) {
			return true
		}
	}
	if systemIDPresent {
		for _, p := range limitedQuirksPrefixMatchWithSystemID {
			if hasPrefixFold(publicID, p) {
				return true
			}
		}
	}
	return false
}
