package pipeline

// Notes:
// - Differential test against goldmark, restricted to the constructs where
//   the CommonMark rendering and ours agree: ATX headings without closing
//   sequences, tight "- " lists and paragraphs without inline markup or hard
//   line breaks. "* " lists, inline substitutions and loose lists differ by
//   construction and are covered by the table tests instead.
// - Whitespace is normalized on both sides because goldmark keeps soft line
//   breaks inside paragraphs while we join paragraph lines with a space.

import (
	"bytes"
	"strings"
	"testing"

	"github.com/yuin/goldmark"
)

func TestAssemble_MatchesGoldmark(t *testing.T) {
	t.Parallel()

	md := goldmark.New()

	docs := map[string]string{
		"heading only":        "# Hello\n",
		"all levels":          "# 1\n## 2\n### 3\n#### 4\n##### 5\n###### 6\n",
		"seven hashes":        "####### not a heading\n",
		"paragraph lines":     "Some text\nmore text\n\nSecond paragraph\n",
		"list then paragraph": "- item one\n- item two\n\nAfter the list\n",
		"paragraph then list": "Intro\n- a\n- b\n",
		"heading interrupts":  "text\n# Title\n",
		"mixed document":      "# Title\n\nIntro line\ncontinued\n\n- a\n- b\n\n## Sub\n\nEnd.\n",
		"empty":               "",
		"blank lines only":    "\n\n   \n",
	}

	for name, doc := range docs {
		t.Run(name, func(t *testing.T) {
			t.Parallel()

			var buf bytes.Buffer
			if err := md.Convert([]byte(doc), &buf); err != nil {
				t.Fatalf("goldmark Convert() error = %v", err)
			}

			got := Render(Assemble(SplitLines(doc), Options{}))
			if normalizeSpace(got) != normalizeSpace(buf.String()) {
				t.Errorf("output differs from goldmark\n got: %q\nwant: %q", got, buf.String())
			}
		})
	}
}

func normalizeSpace(s string) string {
	return strings.Join(strings.Fields(s), " ")
}
