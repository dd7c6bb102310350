package content

import (
	"fmt"
	"io"
	"regexp"
	"sort"

	chromahtml "github.com/alecthomas/chroma/v2/formatters/html"
	"github.com/alecthomas/chroma/v2/styles"
	"github.com/yuin/goldmark"
	highlighting "github.com/yuin/goldmark-highlighting/v2"
)

// HighlightStyle is the chroma style public/static/css/chroma.css is generated from.
const HighlightStyle = "dracula"

// Chroma emits short token classes such as "kd", "s2" or "line".
var highlightClassPattern = regexp.MustCompile(`^[a-zA-Z0-9\-_ ]+$`)

func highlighter() goldmark.Extender {
	return highlighting.NewHighlighting(
		highlighting.WithStyle(HighlightStyle),
		highlighting.WithFormatOptions(chromahtml.WithClasses(true)),
	)
}

// WriteHighlightCSS writes the class-based stylesheet for the named chroma style.
func WriteHighlightCSS(w io.Writer, style string) error {
	s, ok := styles.Registry[style]
	if !ok {
		return fmt.Errorf("content: unknown highlight style %q", style)
	}
	return chromahtml.New(chromahtml.WithClasses(true)).WriteCSS(w, s)
}

// HighlightStyles lists the style names accepted by WriteHighlightCSS.
func HighlightStyles() []string {
	names := make([]string, 0, len(styles.Registry))
	for name := range styles.Registry {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
