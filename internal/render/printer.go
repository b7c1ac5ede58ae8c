package render

import (
	"fmt"
	"io"
	"os"

	"github.com/alecthomas/chroma/v2"
	"github.com/alecthomas/chroma/v2/formatters"
	"github.com/alecthomas/chroma/v2/lexers"
	"github.com/alecthomas/chroma/v2/styles"
	"github.com/mattn/go-isatty"
)

// Grammar names the highlighting grammar used for a piece of output.
type Grammar string

const (
	Markdown Grammar = "markdown"
	TOML     Grammar = "toml"
	YAML     Grammar = "yaml"
)

// Colour modes accepted by NewPrinter.
const (
	ColorAuto   = "auto"
	ColorAlways = "always"
	ColorNever  = "never"
)

// Printer writes text to a terminal, highlighted when colour is enabled.
type Printer struct {
	out   io.Writer
	style string
	color bool
}

// NewPrinter creates a Printer. In ColorAuto mode colour is used only when
// out is a terminal.
func NewPrinter(out io.Writer, style, colorMode string) *Printer {
	color := false
	switch colorMode {
	case ColorAlways:
		color = true
	case ColorNever:
	default:
		if f, ok := out.(*os.File); ok {
			color = isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
		}
	}
	return &Printer{
		out:   out,
		style: style,
		color: color,
	}
}

// Print writes text using the given grammar.
func (p *Printer) Print(text string, grammar Grammar) error {
	if !p.color {
		_, err := io.WriteString(p.out, text)
		return err
	}

	lexer := lexers.Get(string(grammar))
	if lexer == nil {
		lexer = lexers.Fallback
	}
	lexer = chroma.Coalesce(lexer)

	formatter := formatters.Get("terminal256")
	if formatter == nil {
		formatter = formatters.Fallback
	}

	iterator, err := lexer.Tokenise(nil, text)
	if err != nil {
		return fmt.Errorf("failed to tokenise %s output: %w", grammar, err)
	}
	return formatter.Format(p.out, styles.Get(p.style), iterator)
}
