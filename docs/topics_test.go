package docs

import (
	"bufio"
	"os"
	"path/filepath"
	"regexp"
	"slices"
	"strings"
	"testing"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/ast"
	"github.com/yuin/goldmark/text"
)

// knownLanguages are the fence languages the topic renderer knows how to highlight.
var knownLanguages = []string{"bash", "json", "console"}

func TestTopics(t *testing.T) {
	// This test ensures that the documentation is in sync with the code.
	// It checks two things:
	// 1. Every topic listed in readme.md can be successfully loaded.
	// 2. Every .md file in the docs directory (excluding readme.md itself) is
	//    present in the list of topics extracted from readme.md.

	file, err := os.Open("readme.md")
	if err != nil {
		t.Fatalf("failed to open readme.md: %v", err)
	}
	defer file.Close()

	var topicsInReadme []string
	scanner := bufio.NewScanner(file)
	topicRegex := regexp.MustCompile(`^\*\s+([^:]+):.*$`)

	for scanner.Scan() {
		matches := topicRegex.FindStringSubmatch(scanner.Text())
		if len(matches) > 1 {
			topicsInReadme = append(topicsInReadme, strings.TrimSpace(matches[1]))
		}
	}
	if err := scanner.Err(); err != nil {
		t.Fatalf("error scanning readme.md: %v", err)
	}

	for _, topic := range topicsInReadme {
		t.Run("load_"+topic, func(t *testing.T) {
			if _, err := GetTopic(topic); err != nil {
				t.Errorf("failed to get topic %q: %v", topic, err)
			}
		})
	}

	files, err := filepath.Glob("*.md")
	if err != nil {
		t.Fatalf("failed to glob *.md: %v", err)
	}
	for _, f := range files {
		base := filepath.Base(f)
		if base == "readme.md" {
			continue
		}
		topic := strings.TrimSuffix(base, ".md")
		if !slices.Contains(topicsInReadme, topic) {
			t.Errorf("topic %q is not listed in readme.md", topic)
		}
	}
}

func TestTopicCodeBlocks(t *testing.T) {
	// Every fenced code block in the documentation must declare a language
	// the renderer knows, otherwise it shows up unstyled in the terminal.
	topics, err := GetAllTopics()
	if err != nil {
		t.Fatalf("failed to list topics: %v", err)
	}

	mdParser := goldmark.DefaultParser()
	for _, topic := range topics {
		t.Run(topic, func(t *testing.T) {
			content, err := GetTopic(topic)
			if err != nil {
				t.Fatalf("failed to get topic %q: %v", topic, err)
			}
			source := []byte(content)
			root := mdParser.Parse(text.NewReader(source))

			ast.Walk(root, func(n ast.Node, entering bool) (ast.WalkStatus, error) {
				if !entering {
					return ast.WalkContinue, nil
				}
				fence, ok := n.(*ast.FencedCodeBlock)
				if !ok {
					return ast.WalkContinue, nil
				}
				lang := string(fence.Language(source))
				if !slices.Contains(knownLanguages, lang) {
					t.Errorf("topic %q has a code block with unknown language %q", topic, lang)
				}
				return ast.WalkContinue, nil
			})
		})
	}
}
