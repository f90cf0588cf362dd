package sanitize

import "testing"

func TestStripHTML(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"plain", "plain"},
		{"<b>Jane</b> Smith", "Jane Smith"},
		{"&lt;script&gt;alert(1)&lt;/script&gt;Jane", "alert(1)Jane"},
		{"Smith &amp; Sons", "Smith & Sons"},
		{"  O&#39;Neil  ", "O'Neil"},
		{"a < b", "a < b"},
	}
	for _, tt := range tests {
		if got := StripHTML(tt.in); got != tt.want {
			t.Fatalf("StripHTML(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestName(t *testing.T) {
	if got := Name("  Jane \t\n <i>Smith</i> "); got != "Jane Smith" {
		t.Fatalf("got %q", got)
	}
	if got := Name("<br/>"); got != "" {
		t.Fatalf("expected empty name, got %q", got)
	}
}
