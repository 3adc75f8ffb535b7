package greeting

import (
	"html/template"
	"io"
)

var headingTmpl = template.Must(template.New("heading").Parse(`<h1>{{.}}</h1>`))

// Greet returns the greeting for name
func Greet(name string) string {
	return "Hello, " + name + "!"
}

// GreetFunc is Greet as a function value
var GreetFunc = func(name string) string { return "Hello, " + name + "!" }

// Heading returns the visible text of the rendered heading
func Heading(name string) string {
	return Greet(name)
}

// Render writes a single <h1> element greeting name. Any text is accepted,
// including the empty string; markup in name is escaped so it shows verbatim.
func Render(w io.Writer, name string) error {
	return headingTmpl.Execute(w, Heading(name))
}
