package docs

import (
	"slices"
	"testing"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/ast"
	"github.com/yuin/goldmark/text"
)

func TestGetAllTopics(t *testing.T) {
	topics, err := GetAllTopics()
	if err != nil {
		t.Fatalf("GetAllTopics() error = %v", err)
	}
	for _, want := range []string{"cppi", "floor", "multiplier", "rounding"} {
		if !slices.Contains(topics, want) {
			t.Errorf("GetAllTopics() = %v, missing %q", topics, want)
		}
	}
}

func TestGetTopic_unknown(t *testing.T) {
	if _, err := GetTopic("no-such-topic"); err == nil {
		t.Error("GetTopic(no-such-topic) error = nil, want error")
	}
}

// Every topic must be valid markdown starting with a level-1 heading,
// since `cps topic` renders them directly to the terminal.
func TestTopics_structure(t *testing.T) {
	topics, err := GetAllTopics()
	if err != nil {
		t.Fatalf("GetAllTopics() error = %v", err)
	}

	mdParser := goldmark.DefaultParser()
	for _, topic := range topics {
		content, err := GetTopic(topic)
		if err != nil {
			t.Fatalf("GetTopic(%q) error = %v", topic, err)
		}
		source := []byte(content)
		root := mdParser.Parse(text.NewReader(source))

		first := root.FirstChild()
		heading, ok := first.(*ast.Heading)
		if !ok {
			t.Errorf("topic %q: first block is %T, want a heading", topic, first)
			continue
		}
		if heading.Level != 1 {
			t.Errorf("topic %q: first heading level = %d, want 1", topic, heading.Level)
		}
	}
}
