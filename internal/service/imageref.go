package service

import (
	"regexp"
	"strings"
)

// EmptyImageSentinel is how the ingested dataset encodes "no images":
// the R vector literal for a zero-length character vector.
const EmptyImageSentinel = "character(0)"

var quotedSubstring = regexp.MustCompile(`"((?:[^"\\]|\\.)*)"`)

// CleanImageRef reduces a raw stored image reference to one canonical
// URL, or nil if no usable URL is stored. The stored encodings are
// heterogeneous: nil, the empty-collection sentinel, an R-style
// c("u1","u2",...) vector literal, or a plain (possibly quoted and
// backslash-escaped) string. Cleaning is idempotent on plain URLs.
func CleanImageRef(raw *string) *string {
	if raw == nil {
		return nil
	}
	value := strings.TrimSpace(*raw)
	// Stored values are sometimes backslash-escaped once over;
	// unescape before looking for the vector-literal wrapper.
	value = strings.ReplaceAll(value, `\"`, `"`)
	if value == "" || value == EmptyImageSentinel {
		return nil
	}

	if strings.HasPrefix(value, "c(") && strings.HasSuffix(value, ")") {
		if m := quotedSubstring.FindStringSubmatch(value); m != nil {
			return cleanPlain(m[1])
		}
		// No quoted element inside the wrapper; treat the whole value
		// as an opaque plain string rather than failing.
	}

	return cleanPlain(value)
}

// FirstImage picks the canonical URL out of an already-split sequence
// of stored image strings.
func FirstImage(values []string) *string {
	if len(values) == 0 {
		return nil
	}
	return CleanImageRef(&values[0])
}

func cleanPlain(value string) *string {
	value = strings.ReplaceAll(value, `\`, "")
	value = strings.Trim(value, `"`)
	value = strings.TrimSpace(value)
	if value == "" {
		return nil
	}
	return &value
}
