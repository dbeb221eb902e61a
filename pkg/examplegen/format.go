package examplegen

import "strings"

// lineKind classifies one emitted line of compact markup for the pretty
// printer's indent table.
type lineKind uint8

const (
	lineOther lineKind = iota
	lineOpening
	lineClosing
	lineSelfClosing
	lineInline // open, content, and close on a single line
)

// formatXML pretty-prints compact markup deterministically: tags move onto
// their own lines, indentation follows a fixed delta per (previous, current)
// line-kind transition, and an opening tag immediately followed by its
// closing tag collapses onto one line.
func formatXML(markup string) string {
	broken := strings.ReplaceAll(markup, "><", ">\n<")
	lines := strings.Split(broken, "\n")

	var out []string
	depth := 0
	for i := 0; i < len(lines); i++ {
		line := lines[i]
		kind := classifyLine(line)

		if kind == lineOpening && i+1 < len(lines) && lines[i+1] == "</"+tagName(line)+">" {
			line += lines[i+1]
			i++
			kind = lineInline
		}

		if kind == lineClosing && depth > 0 {
			depth--
		}
		out = append(out, strings.Repeat("  ", depth)+line)
		if kind == lineOpening {
			depth++
		}
	}
	return strings.Join(out, "\n")
}

func classifyLine(line string) lineKind {
	switch {
	case line == "":
		return lineOther
	case strings.HasPrefix(line, "</"):
		return lineClosing
	case strings.HasSuffix(line, "/>"):
		return lineSelfClosing
	case strings.HasPrefix(line, "<?"):
		return lineOther
	case strings.HasPrefix(line, "<") && strings.Contains(line, "</"):
		return lineInline
	case strings.HasPrefix(line, "<") && strings.HasSuffix(line, ">"):
		return lineOpening
	default:
		return lineOther
	}
}

// tagName extracts the element name from an opening tag line.
func tagName(line string) string {
	trimmed := strings.TrimPrefix(line, "<")
	if idx := strings.IndexAny(trimmed, " >/"); idx >= 0 {
		trimmed = trimmed[:idx]
	}
	return trimmed
}
