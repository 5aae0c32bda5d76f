package docs

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/ast"
	"github.com/yuin/goldmark/text"
)

// Every fenced code block in the manual must declare one of these
// languages, so terminal rendering highlights it properly.
var knownLanguages = map[string]bool{
	"bash": true,
	"json": true,
	"go":   true,
}

func TestManualCodeBlocks(t *testing.T) {
	files, err := filepath.Glob("*.md")
	if err != nil {
		t.Fatal(err)
	}
	files = append(files, "../README.md")

	for _, file := range files {
		t.Run(file, func(t *testing.T) {
			content, err := os.ReadFile(file)
			if err != nil {
				t.Fatalf("failed to read %s: %v", file, err)
			}

			root := goldmark.DefaultParser().Parse(text.NewReader(content))
			ast.Walk(root, func(n ast.Node, entering bool) (ast.WalkStatus, error) {
				if !entering {
					return ast.WalkContinue, nil
				}
				fcb, ok := n.(*ast.FencedCodeBlock)
				if !ok {
					return ast.WalkContinue, nil
				}
				if fcb.Info == nil {
					t.Error("fenced code block without a language tag")
					return ast.WalkContinue, nil
				}
				lang := strings.TrimSpace(string(fcb.Info.Segment.Value(content)))
				if !knownLanguages[lang] {
					t.Errorf("fenced code block with unknown language %q", lang)
				}
				return ast.WalkContinue, nil
			})
		})
	}
}

// TestManualMentionsCommands keeps the manual honest: every topic about a
// subcommand must actually show its invocation.
func TestManualMentionsCommands(t *testing.T) {
	for topic, command := range map[string]string{
		"import":  "cta import",
		"summary": "cta summary",
		"quotes":  "cta summary -quotes",
		"assist":  "cta assist",
	} {
		content, err := Topic(topic)
		if err != nil {
			t.Fatalf("topic %q: %v", topic, err)
		}
		if !strings.Contains(content, command) {
			t.Errorf("topic %q does not mention %q", topic, command)
		}
	}
}
