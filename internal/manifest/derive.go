package manifest

import (
	"path/filepath"
	"regexp"
	"strings"
)

// FallbackPrefix tags files whose names carry fewer than three letters.
const FallbackPrefix = "amx"

// Trailing numeric token variants, tried in order. The parenthesized form
// must win over the dash/dot form when a name matches both, otherwise
// identifiers would silently change for such files.
var (
	parenDigitsRE = regexp.MustCompile(`(?i)\((\d+)\)\.html?$`)
	sepDigitsRE   = regexp.MustCompile(`(?i)[-.](\d+)\.html?$`)
)

// DerivePrefix returns the three-letter lowercase tag for a filename.
//
// The extension is dropped, every non-ASCII-letter is stripped from what
// remains, and the surviving letters are lowercased. Names with fewer than
// three letters fall back to FallbackPrefix, so the result is always
// exactly three lowercase ASCII letters.
func DerivePrefix(name string) string {
	stem := strings.TrimSuffix(name, filepath.Ext(name))

	var b strings.Builder
	for _, r := range stem {
		switch {
		case r >= 'a' && r <= 'z':
			b.WriteRune(r)
		case r >= 'A' && r <= 'Z':
			b.WriteRune(r + ('a' - 'A'))
		}
	}
	letters := b.String()
	if len(letters) < 3 {
		return FallbackPrefix
	}
	return letters[:3]
}

// DeriveLast3 returns the three-digit tag for a filename: the trailing
// numeric token before the .html/.htm extension, zero-padded to three
// digits and truncated to its rightmost three when longer.
//
// Two token forms are recognized, parenthesized first: "name(10).html"
// and "name-07.html" / "name.580.html". Extension matching is
// case-insensitive. Names without a trailing token yield "000".
func DeriveLast3(name string) string {
	if m := parenDigitsRE.FindStringSubmatch(name); m != nil {
		return last3(m[1])
	}
	if m := sepDigitsRE.FindStringSubmatch(name); m != nil {
		return last3(m[1])
	}
	return "000"
}

func last3(digits string) string {
	for len(digits) < 3 {
		digits = "0" + digits
	}
	return digits[len(digits)-3:]
}
