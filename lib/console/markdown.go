// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package console

import (
	"strconv"
	"strings"
	"sync"

	"github.com/alecthomas/chroma/v2/quick"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"
	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/ast"
	"github.com/yuin/goldmark/text"
)

var (
	markdownParserInstance goldmark.Markdown
	markdownParserOnce     sync.Once
)

func markdownParser() goldmark.Markdown {
	markdownParserOnce.Do(func() {
		markdownParserInstance = goldmark.New()
	})
	return markdownParserInstance
}

// renderMarkdown renders a command description for the terminal:
// paragraphs are reflowed to width, emphasis and code spans are
// styled, lists get bullets and fenced code is indented (and
// highlighted when color is on). With color off the result is plain
// text.
func renderMarkdown(input string, output *Output, width int) string {
	input = strings.TrimSpace(input)
	if input == "" {
		return ""
	}
	source := []byte(input)
	document := markdownParser().Parser().Parse(text.NewReader(source))

	renderer := &descriptionRenderer{
		source: source,
		output: output,
		width:  max(width, 20),
	}
	ast.Walk(document, renderer.walk)
	return strings.TrimRight(renderer.result.String(), "\n")
}

// descriptionRenderer accumulates inline content per block and wraps it
// when the block closes.
type descriptionRenderer struct {
	source []byte
	output *Output
	width  int

	result strings.Builder
	inline strings.Builder

	boldCount   int
	italicCount int

	// lists holds the item counter of each open list; -1 for bullets.
	lists []int
	// bullet is written before the next flushed line.
	bullet string
}

func (r *descriptionRenderer) style() lipgloss.Style { return r.output.Style() }

func (r *descriptionRenderer) indent() string {
	return strings.Repeat("  ", len(r.lists))
}

func (r *descriptionRenderer) flushInline() {
	content := r.inline.String()
	r.inline.Reset()
	if content == "" {
		return
	}
	indent := r.indent()
	width := max(r.width-ansi.StringWidth(indent), 10)
	lines := strings.Split(ansi.Wrap(content, width, " ,.;-+|"), "\n")
	for index, line := range lines {
		if index == 0 && r.bullet != "" {
			r.result.WriteString(indent[:len(indent)-2] + r.bullet)
			r.bullet = ""
		} else {
			r.result.WriteString(indent)
		}
		r.result.WriteString(line + "\n")
	}
}

func (r *descriptionRenderer) blankLine() {
	if len(r.lists) > 0 {
		return
	}
	current := r.result.String()
	if current != "" && !strings.HasSuffix(current, "\n\n") {
		r.result.WriteString("\n")
	}
}

func (r *descriptionRenderer) styled(content string) string {
	if r.boldCount == 0 && r.italicCount == 0 {
		return content
	}
	style := r.style()
	if r.boldCount > 0 {
		style = style.Bold(true)
	}
	if r.italicCount > 0 {
		style = style.Italic(true)
	}
	return style.Render(content)
}

func (r *descriptionRenderer) walk(node ast.Node, entering bool) (ast.WalkStatus, error) {
	switch node.Kind() {
	case ast.KindParagraph, ast.KindTextBlock:
		if !entering {
			r.flushInline()
			r.blankLine()
		}

	case ast.KindHeading:
		if !entering {
			content := ansi.Strip(r.inline.String())
			r.inline.Reset()
			r.inline.WriteString(r.style().Bold(true).Foreground(r.output.Theme().Heading).Render(content))
			r.flushInline()
			r.blankLine()
		}

	case ast.KindList:
		if entering {
			counter := -1
			if list := node.(*ast.List); list.IsOrdered() {
				counter = list.Start
			}
			r.lists = append(r.lists, counter)
		} else {
			r.lists = r.lists[:len(r.lists)-1]
			r.blankLine()
		}

	case ast.KindListItem:
		if entering {
			top := len(r.lists) - 1
			if r.lists[top] < 0 {
				r.bullet = "- "
			} else {
				r.bullet = strconv.Itoa(r.lists[top]) + ". "
				r.lists[top]++
			}
		}

	case ast.KindFencedCodeBlock, ast.KindCodeBlock:
		if entering {
			r.renderCode(node)
			return ast.WalkSkipChildren, nil
		}

	case ast.KindText:
		if entering {
			textNode := node.(*ast.Text)
			r.inline.WriteString(r.styled(string(textNode.Segment.Value(r.source))))
			if textNode.HardLineBreak() {
				r.flushInline()
			} else if textNode.SoftLineBreak() {
				r.inline.WriteString(" ")
			}
		}

	case ast.KindString:
		if entering {
			r.inline.WriteString(r.styled(string(node.(*ast.String).Value)))
		}

	case ast.KindEmphasis:
		level := node.(*ast.Emphasis).Level
		delta := 1
		if !entering {
			delta = -1
		}
		if level >= 2 {
			r.boldCount += delta
		} else {
			r.italicCount += delta
		}

	case ast.KindCodeSpan:
		if entering {
			var content strings.Builder
			for child := node.FirstChild(); child != nil; child = child.NextSibling() {
				if textNode, ok := child.(*ast.Text); ok {
					content.Write(textNode.Segment.Value(r.source))
				}
			}
			r.inline.WriteString(r.style().Foreground(r.output.Theme().Info).Render(content.String()))
			return ast.WalkSkipChildren, nil
		}

	case ast.KindAutoLink:
		if entering {
			r.inline.WriteString(string(node.(*ast.AutoLink).URL(r.source)))
			return ast.WalkSkipChildren, nil
		}

	case ast.KindLink:
		if !entering {
			r.inline.WriteString(" (" + string(node.(*ast.Link).Destination) + ")")
		}
	}
	return ast.WalkContinue, nil
}

func (r *descriptionRenderer) renderCode(node ast.Node) {
	var code strings.Builder
	lines := node.Lines()
	for index := range lines.Len() {
		segment := lines.At(index)
		code.Write(segment.Value(r.source))
	}
	language := ""
	if fenced, ok := node.(*ast.FencedCodeBlock); ok {
		language = string(fenced.Language(r.source))
	}

	content := strings.TrimRight(code.String(), "\n")
	if r.output.ColorEnabled() && language != "" {
		var highlighted strings.Builder
		if err := quick.Highlight(&highlighted, content, language, "terminal256", "monokai"); err == nil {
			content = highlighted.String()
		}
	}

	indent := r.indent() + "    "
	for _, line := range strings.Split(content, "\n") {
		r.result.WriteString(indent + line + "\n")
	}
	r.blankLine()
}
