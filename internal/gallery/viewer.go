package gallery

import (
	"fmt"

	"github.com/ziadkadry99/saree-gallery/internal/catalog"
)

// OriginalsPlaceholder is the link target used when an item has no
// originals link.
const OriginalsPlaceholder = "#"

// ViewerState is the modal viewer's state.
type ViewerState int

const (
	Closed ViewerState = iota
	Open
)

func (s ViewerState) String() string {
	if s == Open {
		return "open"
	}
	return "closed"
}

// DismissReason identifies what closed the viewer. Every reason produces
// the same closed state.
type DismissReason int

const (
	DismissCloseButton DismissReason = iota
	DismissBackdrop
	DismissEscape
)

// Thumbnail is one entry of the viewer's thumbnail strip.
type Thumbnail struct {
	Index  int
	Src    string
	Active bool
}

// ModalView is the render model for the viewer.
type ModalView struct {
	Open          bool
	ID            string
	Title         string
	CountLabel    string
	MainImage     string
	OriginalsHref string
	Thumbnails    []Thumbnail
}

// Viewer is the modal viewer state machine. The zero value is closed.
type Viewer struct {
	state  ViewerState
	item   *catalog.Item
	active int
}

// State returns the current state.
func (v *Viewer) State() ViewerState { return v.state }

// Active returns the index of the highlighted thumbnail.
func (v *Viewer) Active() int { return v.active }

// Open shows item starting at its first image. A nil item or one with no
// images is ignored and Open returns false.
func (v *Viewer) Open(item *catalog.Item) bool {
	if item == nil || len(item.Images) == 0 {
		return false
	}
	v.state = Open
	v.item = item
	v.active = 0
	return true
}

// SelectThumbnail makes image i the main image.
func (v *Viewer) SelectThumbnail(i int) error {
	if v.state != Open {
		return fmt.Errorf("viewer is closed")
	}
	if i < 0 || i >= len(v.item.Images) {
		return fmt.Errorf("thumbnail %d out of range [0,%d)", i, len(v.item.Images))
	}
	v.active = i
	return nil
}

// Dismiss closes the viewer. Closing a closed viewer is a no-op.
func (v *Viewer) Dismiss(DismissReason) {
	v.state = Closed
	v.item = nil
	v.active = 0
}

// HandleKey dismisses the viewer on Escape.
func (v *Viewer) HandleKey(key string) {
	if key == "Escape" {
		v.Dismiss(DismissEscape)
	}
}

// View returns the render model for the current state.
func (v *Viewer) View() ModalView {
	if v.state != Open {
		return ModalView{}
	}
	it := v.item
	thumbs := make([]Thumbnail, len(it.Images))
	for i, src := range it.Images {
		thumbs[i] = Thumbnail{Index: i, Src: src, Active: i == v.active}
	}
	href := it.Originals
	if href == "" {
		href = OriginalsPlaceholder
	}
	return ModalView{
		Open:          true,
		ID:            it.ID,
		Title:         Title(it.ID),
		CountLabel:    CountLabel(len(it.Images)),
		MainImage:     it.Images[v.active],
		OriginalsHref: href,
		Thumbnails:    thumbs,
	}
}

// Title is the human label for an item id.
func Title(id string) string { return "Saree " + id }

// CountLabel formats an image count.
func CountLabel(n int) string { return fmt.Sprintf("%d photo(s)", n) }
