package pageload

import "testing"

func TestSanitizeURL(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{"clean URL untouched", "https://example.com/guide", "https://example.com/guide"},
		{"surrounding whitespace", "  https://example.com \n", "https://example.com"},
		{"markdown link", "[the guide](https://example.com/guide)", "https://example.com/guide"},
		{"trailing comma", "https://example.com/guide,", "https://example.com/guide"},
		{"wrapped in parens", "(https://example.com/guide)", "https://example.com/guide"},
		{"angle brackets", "<https://example.com/guide>", "https://example.com/guide"},
		{"local path untouched", "testdata/page.html", "testdata/page.html"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := SanitizeURL(tt.in); got != tt.want {
				t.Errorf("SanitizeURL(%q) = %q, want %q", tt.in, got, tt.want)
			}
		})
	}
}

func TestValidateURL(t *testing.T) {
	valid := []string{
		"https://example.com",
		"http://example.com/path?q=1",
	}
	for _, u := range valid {
		if err := validateURL(u); err != nil {
			t.Errorf("validateURL(%q) error = %v, want nil", u, err)
		}
	}

	invalid := []string{
		"https://example.com/has space",
		"https://",
		"https://exa{mple.com",
	}
	for _, u := range invalid {
		if err := validateURL(u); err == nil {
			t.Errorf("validateURL(%q) error = nil, want error", u)
		}
	}
}
