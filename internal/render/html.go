package render

import (
	"embed"
	"fmt"
	"html/template"
	"strings"

	"github.com/jonathan/resume-studio/internal/schema"
)

//go:embed templates/*.tmpl
var templateFiles embed.FS

// funcs are the helpers shared by every skin template.
var funcs = template.FuncMap{
	"lines": NonEmpty,
	"dates": DateRange,
	"join":  strings.Join,
	// pct maps a 1-5 skill level onto a CSS bar width.
	"pct": func(level int) template.CSS {
		if level < 0 {
			level = 0
		}
		if level > 5 {
			level = 5
		}
		return template.CSS(fmt.Sprintf("%d%%", level*20)) //nolint:gosec // numeric only
	},
}

// htmlSkin renders through a parsed template set: base.tmpl supplies the
// default section blocks, the skin file supplies the page shell and any
// section overrides (later definitions win).
type htmlSkin struct {
	name schema.Template
	tmpl *template.Template
}

func newHTMLSkin(name schema.Template) (*htmlSkin, error) {
	file := strings.ToLower(string(name)) + ".tmpl"
	tmpl, err := template.New(string(name)).Funcs(funcs).ParseFS(
		templateFiles, "templates/base.tmpl", "templates/"+file,
	)
	if err != nil {
		return nil, &SkinError{Skin: name, Message: "parse templates", Cause: err}
	}
	return &htmlSkin{name: name, tmpl: tmpl}, nil
}

// sectionCtx is the data handed to each section template.
type sectionCtx struct {
	Title  string
	Resume *schema.Resume
}

// pageCtx is the data handed to the page shell. Sidebar stays empty for
// single-column skins.
type pageCtx struct {
	Resume  *schema.Resume
	Main    template.HTML
	Sidebar template.HTML
}

// sidebarSections lists the keys the Modern skin pulls into its sidebar
// region. Relative order within each region still follows the enabled
// order.
var sidebarSections = map[schema.SectionKey]bool{
	schema.KeySkills:    true,
	schema.KeyLanguages: true,
	schema.KeyInterests: true,
}

// Render implements Renderer.
func (s *htmlSkin) Render(r *schema.Resume, enabledOrder []schema.SectionKey) (string, error) {
	var main, sidebar strings.Builder

	for _, key := range enabledOrder {
		if SectionEmpty(r, key) {
			continue
		}
		out := &main
		if s.name == schema.TemplateModern && sidebarSections[key] {
			out = &sidebar
		}
		ctx := sectionCtx{Title: SectionTitle(key), Resume: r}
		if err := s.tmpl.ExecuteTemplate(out, "section_"+string(key), ctx); err != nil {
			return "", &SkinError{Skin: s.name, Message: fmt.Sprintf("render section %s", key), Cause: err}
		}
	}

	var page strings.Builder
	ctx := pageCtx{
		Resume:  r,
		Main:    template.HTML(main.String()),    //nolint:gosec // built from escaped template output
		Sidebar: template.HTML(sidebar.String()), //nolint:gosec // built from escaped template output
	}
	if err := s.tmpl.ExecuteTemplate(&page, "page", ctx); err != nil {
		return "", &SkinError{Skin: s.name, Message: "render page", Cause: err}
	}
	return page.String(), nil
}

// letterCtx is the data handed to the cover letter template.
type letterCtx struct {
	Letter *schema.CoverLetter
	Basics schema.Basics
}

// RenderLetter implements LetterRenderer.
func (s *htmlSkin) RenderLetter(c *schema.CoverLetter, basics schema.Basics) (string, error) {
	var out strings.Builder
	if err := s.tmpl.ExecuteTemplate(&out, "letter", letterCtx{Letter: c, Basics: basics}); err != nil {
		return "", &SkinError{Skin: s.name, Message: "render letter", Cause: err}
	}
	return out.String(), nil
}
