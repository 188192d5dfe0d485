package docs

import (
	"bufio"
	"regexp"
	"slices"
	"strings"
	"testing"
)

func TestTopics(t *testing.T) {
	// Every topic listed in the index exists, and every topic is listed.
	index, err := Topic(Index)
	if err != nil {
		t.Fatalf("cannot read the index: %v", err)
	}

	var listed []string
	topicRegex := regexp.MustCompile(`^\*\s+([^:]+):.*$`)
	scanner := bufio.NewScanner(strings.NewReader(index))
	for scanner.Scan() {
		if matches := topicRegex.FindStringSubmatch(scanner.Text()); len(matches) > 1 {
			listed = append(listed, strings.TrimSpace(matches[1]))
		}
	}

	for _, name := range listed {
		t.Run("load_"+name, func(t *testing.T) {
			content, err := Topic(name)
			if err != nil {
				t.Fatalf("Topic(%q) failed: %v", name, err)
			}
			if !strings.HasPrefix(content, "# ") {
				t.Errorf("topic %q does not start with a title", name)
			}
		})
	}

	names, err := Names()
	if err != nil {
		t.Fatalf("Names() failed: %v", err)
	}
	for _, name := range names {
		if !slices.Contains(listed, name) {
			t.Errorf("topic %q is not listed in %s.md", name, Index)
		}
	}
	if len(names) != len(listed) {
		t.Errorf("got %d topics, the index lists %d", len(names), len(listed))
	}
}

func TestTopics_All(t *testing.T) {
	all, err := Topics(All)
	if err != nil {
		t.Fatalf("Topics(%q) failed: %v", All, err)
	}
	names, _ := Names()
	for _, name := range names {
		content, _ := Topic(name)
		if !strings.Contains(all, content) {
			t.Errorf("Topics(%q) does not contain topic %q", All, name)
		}
	}
	if strings.Contains(all, "Run `wb topic <name>`") {
		t.Errorf("Topics(%q) should not contain the index", All)
	}
}

func TestTopic_Unknown(t *testing.T) {
	if _, err := Topic("nope"); err == nil {
		t.Errorf("Topic(%q) should fail", "nope")
	}
	if _, err := Topics("tasks", "nope"); err == nil {
		t.Errorf("Topics(%q, %q) should fail", "tasks", "nope")
	}
}
