package greeting_test

import (
	"bytes"
	"html"
	"strings"
	"testing"

	"github.com/employee-playground/internal/greeting"
)

func TestGreet(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{name: "plain name", in: "yogesh", want: "Hello, yogesh!"},
		{name: "empty", in: "", want: "Hello, !"},
		{name: "spaces kept", in: "  karpe ", want: "Hello,   karpe !"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := greeting.Greet(tt.in); got != tt.want {
				t.Errorf("Greet(%q) = %q, want %q", tt.in, got, tt.want)
			}
			if got := greeting.GreetFunc(tt.in); got != tt.want {
				t.Errorf("GreetFunc(%q) = %q, want %q", tt.in, got, tt.want)
			}
		})
	}
}

func TestRender(t *testing.T) {
	tests := []struct {
		name    string
		in      string
		wantRaw string
	}{
		{name: "simple", in: "Yogesh", wantRaw: "<h1>Hello, Yogesh!</h1>"},
		{name: "empty", in: "", wantRaw: "<h1>Hello, !</h1>"},
		{name: "markup escaped", in: "<b>x</b>", wantRaw: "<h1>Hello, &lt;b&gt;x&lt;/b&gt;!</h1>"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			if err := greeting.Render(&buf, tt.in); err != nil {
				t.Fatalf("Render failed: %v", err)
			}
			if buf.String() != tt.wantRaw {
				t.Errorf("Render(%q) = %q, want %q", tt.in, buf.String(), tt.wantRaw)
			}

			// Visible text is always the literal concatenation
			text := strings.TrimSuffix(strings.TrimPrefix(buf.String(), "<h1>"), "</h1>")
			if got := html.UnescapeString(text); got != greeting.Heading(tt.in) {
				t.Errorf("Visible text %q, want %q", got, greeting.Heading(tt.in))
			}
		})
	}
}
