// Package docs embeds the user manual and serves it by topic.
package docs

import (
	"embed"
	"fmt"
	"sort"
	"strings"
)

//go:embed *.md
var manual embed.FS

// Topic returns the content of one documentation topic, or of the whole
// manual for "*".
func Topic(name string) (string, error) {
	if name == "*" {
		var b strings.Builder
		for _, t := range AllTopics() {
			content, err := Topic(t)
			if err != nil {
				return "", err
			}
			b.WriteString(content)
			b.WriteString("\n")
		}
		return b.String(), nil
	}

	content, err := manual.ReadFile(name + ".md")
	if err != nil {
		return "", fmt.Errorf("topic %q not found: %w", name, err)
	}
	return string(content), nil
}

// AllTopics lists the available topics, sorted. The readme is the index,
// not a topic.
func AllTopics() []string {
	entries, err := manual.ReadDir(".")
	if err != nil {
		return nil
	}
	var topics []string
	for _, e := range entries {
		name := strings.TrimSuffix(e.Name(), ".md")
		if name == "readme" {
			continue
		}
		topics = append(topics, name)
	}
	sort.Strings(topics)
	return topics
}

// Readme returns the manual index.
func Readme() string {
	content, _ := manual.ReadFile("readme.md")
	return string(content)
}
