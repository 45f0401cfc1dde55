// Package sidebar derives the category-grouped navigation shown next to
// the active story and renders it.
package sidebar

import (
	"strings"

	"github.com/jansmrcka/teabook/pkg/story"
)

// NavItem is one selectable story.
type NavItem struct {
	ID    string
	Label string
}

// Section groups the items of one category.
type Section struct {
	Title string
	Items []NavItem
}

// Config is the complete navigation tree.
type Config struct {
	Title    string
	Sections []Section
}

// Build groups stories by category. Categories keep the order of their
// first story; items keep the order of stories.
func Build(title string, stories []story.Meta) Config {
	cfg := Config{Title: title}
	index := make(map[string]int)
	for _, s := range stories {
		i, ok := index[s.Category]
		if !ok {
			i = len(cfg.Sections)
			index[s.Category] = i
			cfg.Sections = append(cfg.Sections, Section{Title: s.Category})
		}
		cfg.Sections[i].Items = append(cfg.Sections[i].Items, NavItem{ID: s.ID, Label: s.Title})
	}
	return cfg
}

// Filter keeps items whose label or id contains query, ignoring case. A
// section whose title matches keeps all its items. Empty sections are
// dropped.
func (c Config) Filter(query string) Config {
	q := strings.ToLower(strings.TrimSpace(query))
	if q == "" {
		return c
	}
	out := Config{Title: c.Title}
	for _, sec := range c.Sections {
		if strings.Contains(strings.ToLower(sec.Title), q) {
			out.Sections = append(out.Sections, sec)
			continue
		}
		var items []NavItem
		for _, it := range sec.Items {
			if strings.Contains(strings.ToLower(it.Label), q) || strings.Contains(strings.ToLower(it.ID), q) {
				items = append(items, it)
			}
		}
		if len(items) > 0 {
			out.Sections = append(out.Sections, Section{Title: sec.Title, Items: items})
		}
	}
	return out
}

// Items flattens the tree in display order.
func (c Config) Items() []NavItem {
	var items []NavItem
	for _, sec := range c.Sections {
		items = append(items, sec.Items...)
	}
	return items
}

// Len counts the items.
func (c Config) Len() int {
	n := 0
	for _, sec := range c.Sections {
		n += len(sec.Items)
	}
	return n
}

// IndexOf returns the display position of id, or -1.
func (c Config) IndexOf(id string) int {
	for i, it := range c.Items() {
		if it.ID == id {
			return i
		}
	}
	return -1
}

// ToggleBrightnessMsg asks the shell to switch between dark and light.
type ToggleBrightnessMsg struct{}

// SelectStoryMsg asks the shell to show a story. An empty ID shows the
// welcome view.
type SelectStoryMsg struct {
	ID string
}

// SearchChangedMsg carries the new search query.
type SearchChangedMsg struct {
	Query string
}
