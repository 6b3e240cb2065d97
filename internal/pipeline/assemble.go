package pipeline

import (
	"regexp"
	"strings"
)

// List item markers. Both are exactly two characters wide.
const (
	unorderedMarker = "- "
	orderedMarker   = "* "
)

// headingPattern matches 1-6 leading '#', a single space, then content.
var headingPattern = regexp.MustCompile(`^(#{1,6}) (.+)`)

// Options controls the behaviors left open by the supported subset.
type Options struct {
	// BlankLineBreaks emits a <br /> fragment for every blank line,
	// in addition to flushing the pending paragraph.
	BlankLineBreaks bool
}

// blockState is threaded through one Assemble call and discarded afterwards.
type blockState struct {
	opts      Options
	list      ListKind
	paragraph []string
	out       []Fragment
}

// Assemble classifies each line and aggregates the lines into fragments.
// Lines may or may not carry their terminator. Assemble never fails: any
// unrecognized line is paragraph text, and empty input yields no fragments.
func Assemble(lines []string, opts Options) []Fragment {
	s := &blockState{opts: opts}
	for _, line := range lines {
		s.line(strings.TrimRight(line, "\r\n"))
	}
	s.flushParagraph()
	s.closeList()
	return s.out
}

// line applies the classification rules; the first match wins.
func (s *blockState) line(line string) {
	if m := headingPattern.FindStringSubmatch(line); m != nil {
		s.flushParagraph()
		s.closeList()
		s.emit(Fragment{
			Kind:  KindHeading,
			Level: len(m[1]),
			Text:  ApplyInline(strings.TrimSpace(m[2])),
		})
		return
	}

	switch {
	case strings.HasPrefix(line, unorderedMarker):
		s.item(ListUnordered, line[len(unorderedMarker):])
	case strings.HasPrefix(line, orderedMarker):
		s.item(ListOrdered, line[len(orderedMarker):])
	case strings.TrimSpace(line) == "":
		s.flushParagraph()
		if s.opts.BlankLineBreaks {
			s.emit(Fragment{Kind: KindBreak})
		}
	default:
		s.closeList()
		s.paragraph = append(s.paragraph, strings.TrimSpace(line))
	}
}

// item emits a list item, switching or opening the container as needed.
func (s *blockState) item(kind ListKind, content string) {
	s.flushParagraph()
	if s.list != kind {
		s.closeList()
		s.list = kind
		s.emit(Fragment{Kind: KindListOpen, List: kind})
	}
	s.emit(Fragment{
		Kind: KindListItem,
		List: kind,
		Text: ApplyInline(strings.TrimSpace(content)),
	})
}

func (s *blockState) flushParagraph() {
	if len(s.paragraph) == 0 {
		return
	}
	s.emit(Fragment{
		Kind: KindParagraph,
		Text: ApplyInline(strings.Join(s.paragraph, " ")),
	})
	s.paragraph = s.paragraph[:0]
}

func (s *blockState) closeList() {
	if s.list == ListNone {
		return
	}
	s.emit(Fragment{Kind: KindListClose, List: s.list})
	s.list = ListNone
}

func (s *blockState) emit(f Fragment) {
	s.out = append(s.out, f)
}
