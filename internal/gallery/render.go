package gallery

import (
	"fmt"
	"html/template"
	"io"

	"github.com/ziadkadry99/saree-gallery/internal/catalog"
)

// Linker builds the URLs a rendered page points at. The preview server
// and the static site address items differently.
type Linker interface {
	// Home links to the grid, optionally pre-filtered.
	Home(query string) string
	// Item links to the viewer for id with photo (1-based) selected.
	Item(id string, photo int, query string) string
	// AssetBase is prepended to tree-relative image paths.
	AssetBase() string
	// Static links to a generated file such as style.css.
	Static(name string) string
}

// ItemIDMarker stands in for an item id in the link pattern handed to
// script.js.
const ItemIDMarker = "__ID__"

// Card is the render model for one grid card.
type Card struct {
	ID         string
	Thumb      string
	Href       string
	CountLabel string
}

// Page is everything the page template needs.
type Page struct {
	Title string
	Intro template.HTML
	Query string
	// Error replaces the grid when the catalog could not be built.
	Error string
	Items []catalog.Item
	Modal ModalView
}

type pageData struct {
	Page
	Cards        []Card
	Modal        modalData
	CSSHref      string
	JSHref       string
	CatalogHref  string
	AssetBase    string
	ItemHrefTmpl string
}

type modalData struct {
	ModalView
	Main      string
	CloseHref string
	Thumbs    []thumbData
}

type thumbData struct {
	Thumbnail
	URL  string
	Href string
}

// Renderer renders the gallery page and grid fragment.
type Renderer struct {
	tmpl *template.Template
}

// NewRenderer parses the embedded templates.
func NewRenderer() (*Renderer, error) {
	tmpl, err := template.New("page").Parse(pageTemplate)
	if err != nil {
		return nil, fmt.Errorf("parsing page template: %w", err)
	}
	if _, err := tmpl.New("grid").Parse(gridTemplate); err != nil {
		return nil, fmt.Errorf("parsing grid template: %w", err)
	}
	return &Renderer{tmpl: tmpl}, nil
}

// Cards filters items by query and builds one card per survivor.
func Cards(items []catalog.Item, query string, links Linker) []Card {
	filtered := Filter(items, query)
	cards := make([]Card, len(filtered))
	for i, it := range filtered {
		cards[i] = Card{
			ID:         it.ID,
			Thumb:      links.AssetBase() + it.Thumbnail,
			Href:       links.Item(it.ID, 1, query),
			CountLabel: CountLabel(len(it.Images)),
		}
	}
	return cards
}

// RenderGrid writes the grid contents for items filtered by query. The
// output replaces the previous grid wholesale.
func (r *Renderer) RenderGrid(w io.Writer, items []catalog.Item, query string, links Linker) error {
	return r.tmpl.ExecuteTemplate(w, "grid", pageData{Cards: Cards(items, query, links)})
}

// RenderError writes the grid contents for a failed catalog build.
func (r *Renderer) RenderError(w io.Writer, err error) error {
	return r.tmpl.ExecuteTemplate(w, "grid", pageData{Page: Page{Error: err.Error()}})
}

// RenderPage writes a full HTML page.
func (r *Renderer) RenderPage(w io.Writer, p Page, links Linker) error {
	data := pageData{
		Page:         p,
		CSSHref:      links.Static("style.css"),
		JSHref:       links.Static("script.js"),
		CatalogHref:  links.Static("catalog.json"),
		AssetBase:    links.AssetBase(),
		ItemHrefTmpl: links.Item(ItemIDMarker, 1, ""),
	}
	if p.Error == "" {
		data.Cards = Cards(p.Items, p.Query, links)
	}
	data.Modal = buildModal(p.Modal, p.Query, links)
	return r.tmpl.ExecuteTemplate(w, "page", data)
}

func buildModal(v ModalView, query string, links Linker) modalData {
	m := modalData{ModalView: v, CloseHref: links.Home(query)}
	if !v.Open {
		return m
	}
	m.Main = links.AssetBase() + v.MainImage
	m.Thumbs = make([]thumbData, len(v.Thumbnails))
	for i, th := range v.Thumbnails {
		m.Thumbs[i] = thumbData{
			Thumbnail: th,
			URL:       links.AssetBase() + th.Src,
			Href:      links.Item(v.ID, th.Index+1, query),
		}
	}
	return m
}
