package tui

import (
	"fmt"
	"io"

	"github.com/muesli/termenv"
)

var bannerLines = []struct {
	text  string
	color string
}{
	{"       _ _  __", "#818cf8"},
	{"   ___| (_)/ _|", "#a78bfa"},
	{"  / __| | | |_", "#c084fc"},
	{" | (__| | |  _|", "#e879f9"},
	{"  \\___|_|_|_|", "#f472b6"},
}

// PrintBanner writes the start-up banner to w.
// Colors degrade to plain text when w is not a color-capable terminal.
func PrintBanner(w io.Writer, version string) {
	out := termenv.NewOutput(w)
	fmt.Fprintln(w)
	for _, l := range bannerLines {
		fmt.Fprintln(w, out.String(l.text).Foreground(out.Color(l.color)))
	}
	fmt.Fprintln(w, out.String("  command pools v"+version).Faint())
	fmt.Fprintln(w)
}
