package manifest

import "testing"

func TestDerivePrefix(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{"simple name", "report.html", "rep"},
		{"mixed case", "RePort.html", "rep"},
		{"digits interleaved", "a1b2c3d4.html", "abc"},
		{"digits only", "123.html", "amx"},
		{"one letter", "a(1).html", "amx"},
		{"two letters", "ab-7.html", "amx"},
		{"exactly three letters", "abc.html", "abc"},
		{"symbols only", "___.html", "amx"},
		{"empty", "", "amx"},
		{"letters beyond three", "photograph(10).html", "pho"},
		{"dotted stem keeps letters", "archive.580.html", "arc"},
		{"htm extension", "report.htm", "rep"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := DerivePrefix(tt.in)
			if got != tt.want {
				t.Errorf("DerivePrefix(%q) = %q, want %q", tt.in, got, tt.want)
			}
			if len(got) != 3 {
				t.Errorf("DerivePrefix(%q) length = %d, want 3", tt.in, len(got))
			}
			for _, r := range got {
				if r < 'a' || r > 'z' {
					t.Errorf("DerivePrefix(%q) = %q contains non-lowercase-letter %q", tt.in, got, r)
				}
			}
		})
	}
}

func TestDeriveLast3(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{"parenthesized", "photo(10).html", "010"},
		{"dash", "scan-07.html", "007"},
		{"dot", "archive.580.html", "580"},
		{"no digits", "plain.html", "000"},
		{"overlong capture truncates", "image(12345).html", "345"},
		{"overlong dash capture truncates", "image-98765.html", "765"},
		{"single digit pads", "page(7).html", "007"},
		{"three digits exact", "page-123.html", "123"},
		{"uppercase extension", "scan-07.HTML", "007"},
		{"htm extension", "scan-07.htm", "007"},
		{"digits not trailing", "10-photos.html", "000"},
		{"empty", "", "000"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := DeriveLast3(tt.in)
			if got != tt.want {
				t.Errorf("DeriveLast3(%q) = %q, want %q", tt.in, got, tt.want)
			}
			if len(got) != 3 {
				t.Errorf("DeriveLast3(%q) length = %d, want 3", tt.in, len(got))
			}
			for _, r := range got {
				if r < '0' || r > '9' {
					t.Errorf("DeriveLast3(%q) = %q contains non-digit %q", tt.in, got, r)
				}
			}
		})
	}
}

func TestDeriveLast3ParenthesesWinOverSeparator(t *testing.T) {
	// Matches both forms; the parenthesized token must decide the tag.
	got := DeriveLast3("mix-3(7).html")
	if got != "007" {
		t.Errorf("DeriveLast3(mix-3(7).html) = %q, want %q", got, "007")
	}
}

func TestDeriveLast3SeparatorAfterParentheses(t *testing.T) {
	// The parenthesized form only counts immediately before the extension.
	got := DeriveLast3("a(5)-9.html")
	if got != "009" {
		t.Errorf("DeriveLast3(a(5)-9.html) = %q, want %q", got, "009")
	}
}
