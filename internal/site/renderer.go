package site

import (
	"bytes"
	"encoding/json"
	"fmt"
	"html/template"
	"io"
	"strings"

	"github.com/yuin/goldmark"
	highlighting "github.com/yuin/goldmark-highlighting/v2"
	"github.com/yuin/goldmark/extension"
	"github.com/yuin/goldmark/parser"
	"github.com/yuin/goldmark/renderer/html"

	"github.com/ziadkadry99/bpguide/internal/guide"
	"github.com/ziadkadry99/bpguide/internal/view"
)

// Options controls how pages link to each other and to their assets.
type Options struct {
	Title           string
	Footer          string
	ScrollThreshold int
	// Static renders pages for the exported site: relative <id>.html links and
	// page-local interaction instead of the websocket channel.
	Static bool
}

// Renderer turns view state into HTML. Block markup is rendered once per
// section at construction; only state-dependent parts are rendered per call.
type Renderer struct {
	reg  *guide.Registry
	opts Options
	tmpl *template.Template
	md   goldmark.Markdown

	sections map[string]renderedSection
}

type renderedSection struct {
	content guide.Content
	blocks  []renderedBlock
}

type renderedBlock struct {
	Kind    guide.BlockKind
	Title   string
	Tone    string
	Icon    string
	Columns int
	Body    template.HTML
	Caption template.HTML
	Cards   []guide.Card
	Chart   string
	Index   int
}

// blockView is a rendered block plus the accordion state of the current view.
type blockView struct {
	renderedBlock
	Open bool
}

type contentData struct {
	ID          string
	Title       string
	Lead        string
	Placeholder bool
	Blocks      []blockView
}

type navItem struct {
	ID     string
	Title  string
	Icon   string
	Href   string
	Active bool
}

type navGroup struct {
	Title string
	Color string
	Items []navItem
}

type sidebarData struct {
	Groups []navGroup
	Footer string
}

type pageData struct {
	SiteTitle   string
	Title       string
	Mode        string
	Static      bool
	Active      string
	Assets      string
	SearchURL   string
	Threshold   int
	Scrolled    bool
	SidebarOpen bool
	MenuHref    string
	CloseHref   string
	Sidebar     template.HTML
	Content     template.HTML
}

// NewRenderer parses the templates and pre-renders every catalogued section.
func NewRenderer(reg *guide.Registry, opts Options) (*Renderer, error) {
	if opts.ScrollThreshold == 0 {
		opts.ScrollThreshold = view.DefaultScrollThreshold
	}

	tmpl := template.New("site").Funcs(template.FuncMap{"glyph": guide.Glyph})
	for _, src := range []string{pageTemplate, sidebarTemplate, contentTemplate} {
		if _, err := tmpl.Parse(src); err != nil {
			return nil, fmt.Errorf("parsing templates: %w", err)
		}
	}

	r := &Renderer{
		reg:  reg,
		opts: opts,
		tmpl: tmpl,
		md: goldmark.New(
			goldmark.WithExtensions(
				extension.GFM,
				highlighting.NewHighlighting(
					highlighting.WithStyle("github"),
				),
			),
			goldmark.WithParserOptions(
				parser.WithAutoHeadingID(),
			),
			goldmark.WithRendererOptions(
				html.WithUnsafe(),
			),
		),
		sections: make(map[string]renderedSection),
	}

	for _, s := range reg.Catalog().Sections() {
		rs, err := r.renderSection(reg.Resolve(s.ID))
		if err != nil {
			return nil, fmt.Errorf("rendering %s: %w", s.ID, err)
		}
		r.sections[s.ID] = rs
	}
	return r, nil
}

// Options returns the renderer's options.
func (r *Renderer) Options() Options { return r.opts }

func (r *Renderer) renderSection(c guide.Content) (renderedSection, error) {
	rs := renderedSection{content: c}
	acc := 0
	for i, b := range c.Blocks {
		rb := renderedBlock{
			Kind:    b.Kind,
			Title:   b.Title,
			Tone:    b.Tone,
			Icon:    b.Icon,
			Columns: b.Columns,
			Cards:   b.Cards,
			Index:   -1,
		}

		var err error
		switch b.Kind {
		case guide.BlockCallout:
			if rb.Tone == "" {
				rb.Tone = "info"
			}
			rb.Body, err = r.Markdown(b.Markdown)
		case guide.BlockCards:
			if rb.Columns <= 0 {
				rb.Columns = min(len(b.Cards), 3)
			}
		case guide.BlockAccordion:
			rb.Index = acc
			acc++
			rb.Body, err = r.Markdown(b.Markdown)
		case guide.BlockChart:
			var cfg []byte
			cfg, err = json.Marshal(b.Chart.Config())
			if err != nil {
				break
			}
			rb.Chart = string(cfg)
			if rb.Caption, err = r.Markdown(b.Markdown); err != nil {
				break
			}
			rb.Body, err = r.Markdown(b.Chart.Table())
		default:
			rb.Body, err = r.Markdown(b.Markdown)
		}
		if err != nil {
			return rs, fmt.Errorf("block %d: %w", i, err)
		}
		rs.blocks = append(rs.blocks, rb)
	}
	return rs, nil
}

// Markdown converts trusted guide markdown to HTML.
func (r *Renderer) Markdown(src string) (template.HTML, error) {
	src = strings.TrimSpace(src)
	if src == "" {
		return "", nil
	}
	var buf bytes.Buffer
	if err := r.md.Convert([]byte(src), &buf); err != nil {
		return "", fmt.Errorf("converting markdown: %w", err)
	}
	out := wrapTables(buf.String())
	out = externalLinks(out)
	return template.HTML(out), nil
}

// SectionHref is the link target for a section.
func (r *Renderer) SectionHref(id string) string {
	if r.opts.Static {
		return PageFile(id)
	}
	return "/sections/" + id
}

// PageFile is the exported file name for a section.
func PageFile(id string) string {
	return id + ".html"
}

// Sidebar renders the grouped navigation with the active section highlighted.
func (r *Renderer) Sidebar(st *view.State) (template.HTML, error) {
	data := sidebarData{Footer: r.opts.Footer}
	for _, g := range r.reg.Catalog().Groups() {
		ng := navGroup{Title: g.Category.Title, Color: g.Category.Color}
		for _, s := range g.Sections {
			ng.Items = append(ng.Items, navItem{
				ID:     s.ID,
				Title:  s.Title,
				Icon:   s.Icon,
				Href:   r.SectionHref(s.ID),
				Active: s.ID == st.ActiveSectionID(),
			})
		}
		data.Groups = append(data.Groups, ng)
	}
	return r.execute("sidebar", data)
}

// Content renders the active content block with the current accordion states.
func (r *Renderer) Content(st *view.State) (template.HTML, error) {
	rs, ok := r.sections[st.ActiveSectionID()]
	if !ok {
		var err error
		if rs, err = r.renderSection(st.Content()); err != nil {
			return "", err
		}
	}

	data := contentData{
		ID:          rs.content.SectionID,
		Title:       rs.content.Title,
		Lead:        rs.content.Lead,
		Placeholder: rs.content.Placeholder,
	}
	for _, b := range rs.blocks {
		bv := blockView{renderedBlock: b}
		if b.Index >= 0 {
			bv.Open = st.Accordion(b.Index).IsOpen()
		}
		data.Blocks = append(data.Blocks, bv)
	}
	return r.execute("content", data)
}

// Page writes the full HTML document for st.
func (r *Renderer) Page(w io.Writer, st *view.State) error {
	sidebar, err := r.Sidebar(st)
	if err != nil {
		return err
	}
	content, err := r.Content(st)
	if err != nil {
		return err
	}

	active := st.ActiveSectionID()
	data := pageData{
		SiteTitle:   r.opts.Title,
		Title:       st.Content().Title,
		Active:      active,
		Threshold:   r.opts.ScrollThreshold,
		Scrolled:    st.HeaderScrolled(),
		SidebarOpen: st.SidebarOpen(),
		Sidebar:     sidebar,
		Content:     content,
	}
	if r.opts.Static {
		data.Mode = "static"
		data.Static = true
		data.SearchURL = "search-index.json"
		data.MenuHref = "#"
		data.CloseHref = "#"
	} else {
		data.Mode = "live"
		data.Assets = "/assets/"
		data.SearchURL = "/api/search"
		data.CloseHref = r.SectionHref(active)
		data.MenuHref = data.CloseHref
		if !st.SidebarOpen() {
			data.MenuHref += "?sidebar=open"
		}
	}
	return r.tmpl.ExecuteTemplate(w, "page", data)
}

func (r *Renderer) execute(name string, data any) (template.HTML, error) {
	var buf bytes.Buffer
	if err := r.tmpl.ExecuteTemplate(&buf, name, data); err != nil {
		return "", fmt.Errorf("executing %s template: %w", name, err)
	}
	return template.HTML(buf.String()), nil
}

// wrapTables puts every table in a horizontally scrollable container.
func wrapTables(s string) string {
	s = strings.ReplaceAll(s, "<table>", `<div class="table-wrap"><table>`)
	return strings.ReplaceAll(s, "</table>", "</table></div>")
}

// externalLinks opens absolute links in a new tab.
func externalLinks(s string) string {
	s = strings.ReplaceAll(s, `<a href="http://`, `<a target="_blank" rel="noopener" href="http://`)
	return strings.ReplaceAll(s, `<a href="https://`, `<a target="_blank" rel="noopener" href="https://`)
}

// CSS returns the site stylesheet.
func CSS() string { return cssContent }

// JS returns the site script.
func JS() string { return jsContent }
