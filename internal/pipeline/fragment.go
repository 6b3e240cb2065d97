package pipeline

import (
	"strconv"
	"strings"
)

// Kind identifies what a Fragment represents in the output document.
type Kind int

// Fragment kinds.
const (
	KindHeading Kind = iota + 1
	KindListOpen
	KindListItem
	KindListClose
	KindParagraph
	KindBreak
)

// String returns a short name for the kind, used in test failures and logs.
func (k Kind) String() string {
	switch k {
	case KindHeading:
		return "heading"
	case KindListOpen:
		return "list-open"
	case KindListItem:
		return "list-item"
	case KindListClose:
		return "list-close"
	case KindParagraph:
		return "paragraph"
	case KindBreak:
		return "break"
	default:
		return "kind(" + strconv.Itoa(int(k)) + ")"
	}
}

// ListKind distinguishes the two list containers.
type ListKind int

// List kinds. ListNone means no list is open.
const (
	ListNone ListKind = iota
	ListUnordered
	ListOrdered
)

// tag returns the HTML element name of the list container.
func (l ListKind) tag() string {
	if l == ListOrdered {
		return "ol"
	}
	return "ul"
}

// Fragment is one unit of produced output. Concatenating the String() of
// every fragment, in order, yields the converted document.
type Fragment struct {
	Kind  Kind
	Level int      // heading level 1-6, zero otherwise
	List  ListKind // container for list open/close fragments
	Text  string   // substituted content for headings, items and paragraphs
}

// String renders the fragment as HTML, including its trailing newline.
func (f Fragment) String() string {
	switch f.Kind {
	case KindHeading:
		lvl := strconv.Itoa(f.Level)
		return "<h" + lvl + ">" + f.Text + "</h" + lvl + ">\n"
	case KindListOpen:
		return "<" + f.List.tag() + ">\n"
	case KindListClose:
		return "</" + f.List.tag() + ">\n"
	case KindListItem:
		return "<li>" + f.Text + "</li>\n"
	case KindParagraph:
		return "<p>" + f.Text + "</p>\n"
	case KindBreak:
		return "<br />\n"
	default:
		return ""
	}
}

// Render concatenates the rendered fragments in emission order.
func Render(frags []Fragment) string {
	var b strings.Builder
	for _, f := range frags {
		b.WriteString(f.String())
	}
	return b.String()
}
