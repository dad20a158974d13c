package view

import (
	"github.com/flosch/pongo2/v6"

	"github.com/shopfront-labs/storefront/internal/flash"
)

// FlashView is a one-shot message styled for the layout.
type FlashView struct {
	Text  string
	Class string
}

// FlashFrom converts a popped flash message; nil stays nil.
func FlashFrom(m *flash.Message) *FlashView {
	if m == nil {
		return nil
	}
	class := "alert-success"
	if m.IsError() {
		class = "alert-danger"
	}
	return &FlashView{Text: m.Text, Class: class}
}

// Chrome carries what the layout needs on every page.
type Chrome struct {
	AppName string
	Lang    string
	Nav     Nav
	Flash   *FlashView
}

// Context merges the chrome with page-specific values.
func (ch Chrome) Context(page pongo2.Context) pongo2.Context {
	ctx := pongo2.Context{
		"app_name": ch.AppName,
		"lang":     ch.Lang,
		"nav":      ch.Nav,
	}
	if ch.Flash != nil {
		ctx["flash"] = ch.Flash
	}
	return ctx.Update(page)
}
