package docs

import (
	"regexp"
	"strings"
	"testing"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/ast"
	"github.com/yuin/goldmark/text"
)

// Every topic must be valid markdown with a single top-level heading.
func TestTopicsStructure(t *testing.T) {
	topics, err := GetAllTopics()
	if err != nil {
		t.Fatalf("GetAllTopics() error = %v", err)
	}
	if len(topics) == 0 {
		t.Fatal("GetAllTopics() returned no topics")
	}

	for _, topic := range topics {
		content, err := GetTopic(topic)
		if err != nil {
			t.Errorf("GetTopic(%q) error = %v", topic, err)
			continue
		}

		source := []byte(content)
		doc := goldmark.DefaultParser().Parse(text.NewReader(source))

		h1 := 0
		for node := doc.FirstChild(); node != nil; node = node.NextSibling() {
			if heading, ok := node.(*ast.Heading); ok && heading.Level == 1 {
				h1++
			}
		}
		if h1 != 1 {
			t.Errorf("topic %q: got %d top-level headings, want 1", topic, h1)
		}
	}
}

// The readme lists every topic in the "* topic: description" format.
func TestReadmeListsAllTopics(t *testing.T) {
	readme, err := GetTopic("readme")
	if err != nil {
		t.Fatalf("GetTopic(readme) error = %v", err)
	}

	re := regexp.MustCompile(`(?m)^\* ([a-z-]+): .+$`)
	listed := make(map[string]bool)
	for _, m := range re.FindAllStringSubmatch(readme, -1) {
		listed[m[1]] = true
	}

	topics, err := GetAllTopics()
	if err != nil {
		t.Fatalf("GetAllTopics() error = %v", err)
	}
	for _, topic := range topics {
		if !listed[topic] {
			t.Errorf("topic %q is not listed in readme.md", topic)
		}
	}
	if len(listed) != len(topics) {
		t.Errorf("readme lists %d topics, want %d", len(listed), len(topics))
	}
}

func TestGetTopicsWildcard(t *testing.T) {
	all, err := GetTopics("*")
	if err != nil {
		t.Fatalf("GetTopics(*) error = %v", err)
	}
	for _, topic := range []string{"candlesticks", "volume", "dollar-cost-averaging"} {
		content, err := GetTopic(topic)
		if err != nil {
			t.Fatalf("GetTopic(%q) error = %v", topic, err)
		}
		if !strings.Contains(all, content) {
			t.Errorf("GetTopics(*) does not contain topic %q", topic)
		}
	}
}

func TestGetTopicUnknown(t *testing.T) {
	if _, err := GetTopic("no-such-topic"); err == nil {
		t.Fatal("GetTopic(no-such-topic) error = nil, want error")
	}
}
