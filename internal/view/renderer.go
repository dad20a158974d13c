// Package view renders the storefront's server-side pages with pongo2.
package view

import (
	"bytes"
	"embed"
	"fmt"
	"io"
	"path"
	"strings"

	"github.com/flosch/pongo2/v6"
	"github.com/gofiber/fiber/v2"
)

//go:embed templates/*.pongo2
var templateFS embed.FS

// embedLoader serves templates from the embedded FS.
type embedLoader struct {
	fs   embed.FS
	root string
}

// Abs resolves name against the including template, or the root for top-level lookups.
func (l embedLoader) Abs(base, name string) string {
	name = strings.TrimPrefix(name, "/")
	if base == "" {
		return path.Join(l.root, name)
	}
	return path.Join(path.Dir(base), name)
}

func (l embedLoader) Get(p string) (io.Reader, error) {
	data, err := l.fs.ReadFile(p)
	if err != nil {
		return nil, err
	}
	return bytes.NewReader(data), nil
}

// Renderer executes page templates into fiber responses.
type Renderer struct {
	set *pongo2.TemplateSet
}

// NewRenderer builds a renderer over the embedded templates. In debug mode
// templates are parsed on every render instead of once.
func NewRenderer(debug bool) *Renderer {
	set := pongo2.NewSet("storefront", embedLoader{fs: templateFS, root: "templates"})
	set.Debug = debug
	return &Renderer{set: set}
}

// TemplateSet exposes the underlying pongo2 set.
func (r *Renderer) TemplateSet() *pongo2.TemplateSet { return r.set }

// HTML renders name with data and writes it with the given status.
func (r *Renderer) HTML(c *fiber.Ctx, status int, name string, data pongo2.Context) error {
	tpl, err := r.set.FromCache(name)
	if err != nil {
		return fmt.Errorf("load template %s: %w", name, err)
	}
	out, err := tpl.ExecuteBytes(data)
	if err != nil {
		return fmt.Errorf("render template %s: %w", name, err)
	}
	c.Status(status)
	c.Type("html", "utf-8")
	return c.Send(out)
}
