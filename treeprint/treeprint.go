package treeprint

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

type config struct {
	maxDepth    int
	branchStyle *lipgloss.Style
}

// Option configures a Printer.
type Option func(*config)

// WithMaxDepth limits how deep the rendering descends from the root.
// Truncated subtrees are marked with an ellipsis. Non-positive values mean
// unlimited, the default.
func WithMaxDepth(depth int) Option {
	return func(c *config) {
		c.maxDepth = depth
	}
}

// WithBranchStyle applies a lipgloss style to the branch glyphs. By default
// output is plain text, so rendering is environment-independent.
func WithBranchStyle(style lipgloss.Style) Option {
	return func(c *config) {
		c.branchStyle = &style
	}
}

// Printer renders tree-like structures one node per line. It is generic
// over the node type: a label accessor and a children accessor describe the
// structure, so any tree can be rendered without implementing an interface.
type Printer[N any] struct {
	label    func(N) string
	children func(N) []N
	config   config
}

// New creates a Printer from node accessor functions.
func New[N any](label func(N) string, children func(N) []N, optFns ...Option) *Printer[N] {
	c := config{}
	for _, fn := range optFns {
		if fn != nil {
			fn(&c)
		}
	}
	return &Printer[N]{
		label:    label,
		children: children,
		config:   c,
	}
}

// Sprint returns the rendering of the tree rooted at node.
func (p *Printer[N]) Sprint(node N) string {
	var sb strings.Builder
	sb.WriteString(p.label(node))
	p.sprint(&sb, node, "", 0)
	return sb.String()
}

func (p *Printer[N]) sprint(sb *strings.Builder, node N, prefix string, depth int) {
	children := p.children(node)
	if len(children) == 0 {
		return
	}
	if p.config.maxDepth > 0 && depth+1 >= p.config.maxDepth {
		sb.WriteByte('\n')
		sb.WriteString(prefix)
		sb.WriteString(p.branch("└── "))
		sb.WriteString("…")
		return
	}
	for i, child := range children {
		glyph, cont := "├── ", "│   "
		if i == len(children)-1 {
			glyph, cont = "└── ", "    "
		}
		sb.WriteByte('\n')
		sb.WriteString(prefix)
		sb.WriteString(p.branch(glyph))
		sb.WriteString(p.label(child))
		p.sprint(sb, child, prefix+cont, depth+1)
	}
}

func (p *Printer[N]) branch(glyph string) string {
	if p.config.branchStyle == nil {
		return glyph
	}
	return p.config.branchStyle.Render(glyph)
}
