package blueprint

import (
	"image"
	"os"
	"path/filepath"
	"time"

	"github.com/fogleman/gg"

	"github.com/anchorlayer/anchorage/pkg/layout"
)

// tooltipShowDelay is the continuous-hover time before an action shows
// its hint tooltip.
const tooltipShowDelay = 800 * time.Millisecond

// Action is one interactive affordance drawn below a selected widget.
// The set of actions is fixed (lock, delete connections, toggle chain
// style); all are created by the decorator.
type Action interface {
	// Update recomputes visibility. Called before each paint.
	Update()
	// IsVisible reports whether the action should be drawn this frame.
	IsVisible() bool
	// Click performs the action, reporting whether it changed the model.
	Click() bool
	// Text returns the hint tooltip lines.
	Text() []string
	// Hover updates the action's hover state, driving its tooltip timer.
	Hover(over bool)
	// Paint draws the action button at (x, y), its top-left corner.
	Paint(dc *gg.Context, x, y float64)
	// Bounds returns the button rect from the last paint, for hit tests.
	Bounds() (x, y, w, h float64)
}

// Icons holds the optional action button images. Missing entries draw
// buttons without an icon.
type Icons struct {
	Lock              image.Image
	Unlock            image.Image
	DeleteConnections image.Image
	ToggleChain       image.Image
}

// LoadIcons reads the action icons from a directory of PNG files (named
// lock.png, unlock.png, delete.png, chain.png). Files that are missing
// or unreadable are skipped; the action still works without its icon.
func LoadIcons(dir string) *Icons {
	return &Icons{
		Lock:              loadIcon(filepath.Join(dir, "lock.png")),
		Unlock:            loadIcon(filepath.Join(dir, "unlock.png")),
		DeleteConnections: loadIcon(filepath.Join(dir, "delete.png")),
		ToggleChain:       loadIcon(filepath.Join(dir, "chain.png")),
	}
}

func loadIcon(path string) image.Image {
	if _, err := os.Stat(path); err != nil {
		return nil
	}
	img, err := gg.LoadPNG(path)
	if err != nil {
		return nil
	}
	return img
}

// actionBase carries the shared button state: position from the last
// paint, hover flag, and the tooltip reveal timer.
type actionBase struct {
	dec    *Decorator
	widget *layout.Widget

	x, y       float64
	over       bool
	hoverStart time.Time
}

func (b *actionBase) Bounds() (float64, float64, float64, float64) {
	return b.x, b.y, actionSize, actionSize
}

// Hover starts the tooltip timer on entry and keeps the actions visible
// while the pointer stays on a button.
func (b *actionBase) Hover(over bool) {
	b.over = over
	if over {
		if b.hoverStart.IsZero() {
			b.hoverStart = b.dec.now()
		}
		b.dec.keepActionsVisible()
	}
}

// paintButton draws the rounded button chrome and, when hovered long
// enough, the tooltip. Returns the inset rect for the icon.
func (b *actionBase) paintButton(dc *gg.Context, x, y float64, text []string) (float64, float64, float64) {
	b.x = x
	b.y = y
	p := b.dec.palette

	bg := p.ActionBackground
	if b.over {
		bg = p.ActionSelectedBackground
	}
	// Outline in the canvas background color separates adjacent buttons.
	dc.SetColor(p.Background)
	dc.DrawRoundedRectangle(x-2, y-2, actionSize+4, actionSize+4, actionCorner)
	dc.Fill()
	dc.SetColor(bg)
	dc.DrawRoundedRectangle(x, y, actionSize, actionSize, actionCorner)
	dc.Fill()

	if b.over && !b.hoverStart.IsZero() && b.dec.now().Sub(b.hoverStart) > tooltipShowDelay {
		drawTooltip(dc, p, text, x+actionSize/2, y)
	} else if !b.over {
		b.hoverStart = time.Time{}
	}
	return x + actionMargin, y + actionMargin, actionSize - 2*actionMargin
}

func paintIcon(dc *gg.Context, icon image.Image, x, y, size float64) {
	if icon == nil {
		return
	}
	dc.DrawImageAnchored(icon, int(x+size/2), int(y+size/2), 0.5, 0.5)
}

// lockAction toggles every connection on the widget between soft
// (auto-inferred) and user-authored. Visible whenever the widget has at
// least one connection; the shown icon and tooltip follow the majority
// creator.
type lockAction struct {
	actionBase
	creator layout.Creator
	visible bool
}

func newLockAction(d *Decorator) *lockAction {
	return &lockAction{actionBase: actionBase{dec: d, widget: d.widget}}
}

func (a *lockAction) Update() {
	a.visible, a.creator = mainConnectionCreator(a.widget)
}

func (a *lockAction) IsVisible() bool { return a.visible }

func (a *lockAction) Text() []string {
	if a.creator == layout.CreatorAuto {
		return []string{
			"Lock Constraints",
			"(unlocked constraints are broken",
			"by dragging the widget)",
		}
	}
	return []string{"Unlock Constraints"}
}

func (a *lockAction) Paint(dc *gg.Context, x, y float64) {
	ix, iy, size := a.paintButton(dc, x, y, a.Text())
	icon := a.dec.icons.Unlock
	if a.creator == layout.CreatorAuto {
		icon = a.dec.icons.Lock
	}
	paintIcon(dc, icon, ix, iy, size)
}

func (a *lockAction) Click() bool {
	if a.creator == layout.CreatorAuto {
		a.widget.SetConnectionCreator(layout.CreatorUser)
	} else {
		a.widget.SetConnectionCreator(layout.CreatorAuto)
	}
	for _, anchor := range a.widget.Anchors() {
		if anchor.IsConnected() {
			a.dec.StartLocking(anchor)
		}
	}
	a.dec.save()
	return true
}

// mainConnectionCreator returns whether the widget has any connections
// and, if so, the majority creator tag (ties go to auto).
func mainConnectionCreator(w *layout.Widget) (bool, layout.Creator) {
	var numAuto, numUser int
	for _, anchor := range w.Anchors() {
		if !anchor.IsConnected() {
			continue
		}
		if anchor.Creator() == layout.CreatorAuto {
			numAuto++
		} else {
			numUser++
		}
	}
	if numAuto == 0 && numUser == 0 {
		return false, layout.CreatorUser
	}
	if numUser > numAuto {
		return true, layout.CreatorUser
	}
	return true, layout.CreatorAuto
}

// deleteConnectionsAction clears every connection on the widget.
type deleteConnectionsAction struct {
	actionBase
	visible bool
}

func newDeleteConnectionsAction(d *Decorator) *deleteConnectionsAction {
	return &deleteConnectionsAction{actionBase: actionBase{dec: d, widget: d.widget}}
}

func (a *deleteConnectionsAction) Update()         { a.visible = a.widget.HasConnections() }
func (a *deleteConnectionsAction) IsVisible() bool { return a.visible }
func (a *deleteConnectionsAction) Text() []string  { return []string{"Delete All Constraints"} }

func (a *deleteConnectionsAction) Paint(dc *gg.Context, x, y float64) {
	ix, iy, size := a.paintButton(dc, x, y, a.Text())
	paintIcon(dc, a.dec.icons.DeleteConnections, ix, iy, size)
}

func (a *deleteConnectionsAction) Click() bool {
	a.widget.ResetAllConstraints()
	a.dec.save()
	return true
}

// toggleChainStyleAction cycles the style of every chain the widget
// participates in, mutating the chain head.
type toggleChainStyleAction struct {
	actionBase
	visible bool
}

func newToggleChainStyleAction(d *Decorator) *toggleChainStyleAction {
	return &toggleChainStyleAction{actionBase: actionBase{dec: d, widget: d.widget}}
}

func (a *toggleChainStyleAction) Update() {
	a.visible = a.widget.InHorizontalChain() || a.widget.InVerticalChain()
}

func (a *toggleChainStyleAction) IsVisible() bool { return a.visible }
func (a *toggleChainStyleAction) Text() []string  { return []string{"Toggle chain style"} }

func (a *toggleChainStyleAction) Paint(dc *gg.Context, x, y float64) {
	ix, iy, size := a.paintButton(dc, x, y, a.Text())
	paintIcon(dc, a.dec.icons.ToggleChain, ix, iy, size)
}

func (a *toggleChainStyleAction) Click() bool {
	if a.widget.InHorizontalChain() {
		layout.CycleChainStyle(a.widget, layout.Horizontal)
		a.dec.save()
	}
	if a.widget.InVerticalChain() {
		layout.CycleChainStyle(a.widget, layout.Vertical)
		a.dec.save()
	}
	return true
}
