package guide

import (
	"fmt"
	"strings"
)

// BlockKind identifies how a content block is rendered.
type BlockKind string

const (
	BlockProse       BlockKind = "prose"
	BlockCallout     BlockKind = "callout"
	BlockCards       BlockKind = "cards"
	BlockAccordion   BlockKind = "accordion"
	BlockChart       BlockKind = "chart"
	BlockPlaceholder BlockKind = "placeholder"
)

// Card is one tile of a cards block. Href is optional.
type Card struct {
	Icon  string `yaml:"icon,omitempty" json:"icon,omitempty"`
	Title string `yaml:"title" json:"title"`
	Text  string `yaml:"text,omitempty" json:"text,omitempty"`
	Href  string `yaml:"href,omitempty" json:"href,omitempty"`
}

// Block is one element of a content block. Which fields are used depends on Kind:
// prose uses Markdown; callout uses Tone and Markdown; cards uses Title, Columns
// and Cards; accordion uses Title (always visible) and Markdown (visible when
// open); chart uses Title, Markdown (caption) and Chart.
type Block struct {
	Kind     BlockKind `yaml:"kind" json:"kind"`
	Title    string    `yaml:"title,omitempty" json:"title,omitempty"`
	Markdown string    `yaml:"markdown,omitempty" json:"markdown,omitempty"`
	Tone     string    `yaml:"tone,omitempty" json:"tone,omitempty"`
	Icon     string    `yaml:"icon,omitempty" json:"icon,omitempty"`
	Columns  int       `yaml:"columns,omitempty" json:"columns,omitempty"`
	Cards    []Card    `yaml:"cards,omitempty" json:"cards,omitempty"`
	Chart    *Chart    `yaml:"chart,omitempty" json:"chart,omitempty"`
}

// Content is the renderable block associated with a section id.
type Content struct {
	SectionID   string  `yaml:"id" json:"id"`
	Title       string  `yaml:"title" json:"title"`
	Lead        string  `yaml:"lead,omitempty" json:"lead,omitempty"`
	Blocks      []Block `yaml:"blocks" json:"blocks"`
	Placeholder bool    `yaml:"-" json:"placeholder"`
}

var validTones = map[string]bool{"": true, "info": true, "success": true, "warning": true}

// Validate checks the structural rules of every block.
func (c Content) Validate() error {
	if c.SectionID == "" {
		return fmt.Errorf("content: id is required")
	}
	if c.Title == "" {
		return fmt.Errorf("content %q: title is required", c.SectionID)
	}
	for i, b := range c.Blocks {
		switch b.Kind {
		case BlockProse:
			if strings.TrimSpace(b.Markdown) == "" {
				return fmt.Errorf("content %q block %d: prose needs markdown", c.SectionID, i)
			}
		case BlockCallout:
			if !validTones[b.Tone] {
				return fmt.Errorf("content %q block %d: invalid tone %q", c.SectionID, i, b.Tone)
			}
		case BlockCards:
			if len(b.Cards) == 0 {
				return fmt.Errorf("content %q block %d: cards block is empty", c.SectionID, i)
			}
		case BlockAccordion:
			if b.Title == "" {
				return fmt.Errorf("content %q block %d: accordion needs a title", c.SectionID, i)
			}
		case BlockChart:
			if b.Chart == nil {
				return fmt.Errorf("content %q block %d: chart block has no chart", c.SectionID, i)
			}
			if err := b.Chart.Validate(); err != nil {
				return fmt.Errorf("content %q block %d: %w", c.SectionID, i, err)
			}
		case BlockPlaceholder:
		default:
			return fmt.Errorf("content %q block %d: unknown kind %q", c.SectionID, i, b.Kind)
		}
	}
	return nil
}

// Accordions returns the number of disclosure widgets in the block.
func (c Content) Accordions() int {
	n := 0
	for _, b := range c.Blocks {
		if b.Kind == BlockAccordion {
			n++
		}
	}
	return n
}

// Markdown flattens the content into a single markdown document. open reports
// whether the i-th accordion shows its body; a nil open shows every body.
func (c Content) Markdown(open func(i int) bool) string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "# %s\n\n", c.Title)
	if c.Lead != "" {
		sb.WriteString(strings.TrimSpace(c.Lead))
		sb.WriteString("\n\n")
	}

	acc := 0
	for _, b := range c.Blocks {
		switch b.Kind {
		case BlockProse:
			sb.WriteString(strings.TrimSpace(b.Markdown))
			sb.WriteString("\n\n")
		case BlockCallout:
			for _, line := range strings.Split(strings.TrimSpace(b.Markdown), "\n") {
				sb.WriteString("> " + line + "\n")
			}
			sb.WriteString("\n")
		case BlockCards:
			if b.Title != "" {
				fmt.Fprintf(&sb, "## %s\n\n", b.Title)
			}
			for _, card := range b.Cards {
				title := card.Title
				if card.Href != "" {
					title = fmt.Sprintf("[%s](%s)", card.Title, card.Href)
				}
				if card.Text != "" {
					fmt.Fprintf(&sb, "- **%s**: %s\n", title, card.Text)
				} else {
					fmt.Fprintf(&sb, "- **%s**\n", title)
				}
			}
			sb.WriteString("\n")
		case BlockAccordion:
			shown := open == nil || open(acc)
			marker := "▸"
			if shown {
				marker = "▾"
			}
			fmt.Fprintf(&sb, "### %s %d. %s\n\n", marker, acc+1, b.Title)
			if shown {
				sb.WriteString(strings.TrimSpace(b.Markdown))
				sb.WriteString("\n\n")
			}
			acc++
		case BlockChart:
			if b.Title != "" {
				fmt.Fprintf(&sb, "## %s\n\n", b.Title)
			}
			if b.Markdown != "" {
				sb.WriteString(strings.TrimSpace(b.Markdown))
				sb.WriteString("\n\n")
			}
			sb.WriteString(b.Chart.Table())
			sb.WriteString("\n")
		case BlockPlaceholder:
			fmt.Fprintf(&sb, "## %s\n\n%s\n\n", b.Title, strings.TrimSpace(b.Markdown))
		}
	}
	return strings.TrimRight(sb.String(), "\n") + "\n"
}

// PlaceholderTitle is the heading of every generated placeholder block.
const PlaceholderTitle = "Content Coming Soon"

// Placeholder synthesises the "coming soon" block for a section that has no
// authored content. It is parameterised only by the section's title and icon.
func Placeholder(s Section) Content {
	return Content{
		SectionID:   s.ID,
		Title:       s.Title,
		Placeholder: true,
		Blocks: []Block{{
			Kind:  BlockPlaceholder,
			Title: PlaceholderTitle,
			Icon:  s.Icon,
			Markdown: fmt.Sprintf("Detailed information about %s will be added here. "+
				"This section will cover comprehensive guidelines, best practices, and implementation details.", s.Title),
		}},
	}
}
