package blueprint

import (
	"fmt"
	"time"

	"github.com/fogleman/gg"

	"github.com/anchorlayer/anchorage/pkg/layout"
)

// actionsHideTimeout is how long the action buttons stay visible after
// the last hover interaction.
const actionsHideTimeout = 1000 * time.Millisecond

// Animation timings for the reveal trackers.
const (
	baselineRevealDelay    = 1000 * time.Millisecond
	baselineRevealDuration = 1000 * time.Millisecond
	biasRevealDuration     = 1000 * time.Millisecond
	lockingDuration        = 300 * time.Millisecond
)

// StateModel persists decorator-driven model mutations. Every action
// that changes the constraint graph (lock toggle, delete connections,
// chain style cycle) calls Save afterwards.
type StateModel interface {
	Save(d *Decorator)
}

// Decorator annotates one widget with its transient interaction state
// and paints it. It never owns the widget; the constraint graph does.
//
// Paint runs five ordered passes: background, frame, anchors,
// constraint lines, action buttons. It returns true while any animation
// is running, in which case the host must schedule another frame.
type Decorator struct {
	widget  *layout.Widget
	palette *Palette
	icons   *Icons
	now     func() time.Time

	background  *Theme
	frame       *Theme
	text        *Theme
	constraints *Theme
	look        Look

	selected          bool
	over              bool
	showResizeHandles bool
	showSizeIndicator bool
	showActions       bool
	lastInteraction   time.Time

	policy DisplaySet

	showBaseline *AnimationProgress
	showBias     *AnimationProgress
	locking      map[*layout.Anchor]*AnimationProgress

	actions    []Action
	stateModel StateModel
}

// NewDecorator creates a decorator for the widget. A nil icons set draws
// buttons without icons; a nil clock defaults to time.Now.
func NewDecorator(w *layout.Widget, p *Palette, icons *Icons, now func() time.Time) *Decorator {
	if now == nil {
		now = time.Now
	}
	if icons == nil {
		icons = &Icons{}
	}
	d := &Decorator{
		widget:  w,
		palette: p,
		icons:   icons,
		now:     now,

		background:  NewTheme(p.SubduedBackground, p.Background, p.HighlightedBackground, p.SelectedBackground, now),
		frame:       NewTheme(p.SubduedFrames, p.Frames, p.HighlightedFrames, p.SelectedFrames, now),
		text:        NewTheme(p.SubduedText, p.Text, p.Text, p.SelectedText, now),
		constraints: NewTheme(p.SubduedConstraints, p.Constraints, p.HighlightedConstraints, p.SelectedConstraints, now),
		look:        LookNormal,

		policy: NewDisplaySet(DisplayNone),

		showBaseline: NewAnimationProgress(baselineRevealDelay, baselineRevealDuration, now),
		showBias:     NewAnimationProgress(0, biasRevealDuration, now),
		locking:      make(map[*layout.Anchor]*AnimationProgress),
	}
	d.actions = []Action{
		newLockAction(d),
		newDeleteConnectionsAction(d),
		newToggleChainStyleAction(d),
	}
	return d
}

// Widget returns the decorated widget.
func (d *Decorator) Widget() *layout.Widget { return d.widget }

// Actions returns the widget's action buttons.
func (d *Decorator) Actions() []Action { return d.actions }

// SetStateModel sets the persistence callback invoked after mutations.
func (d *Decorator) SetStateModel(m StateModel) { d.stateModel = m }

// StateModel returns the persistence callback, or nil.
func (d *Decorator) StateModel() StateModel { return d.stateModel }

func (d *Decorator) save() {
	if d.stateModel != nil {
		d.stateModel.Save(d)
	}
}

// Look returns the decorator's current look.
func (d *Decorator) Look() Look { return d.look }

// SetLook sets the look; the color themes cross-fade on the next paint.
func (d *Decorator) SetLook(l Look) { d.look = l }

func (d *Decorator) applyLook() {
	if d.background.Look() != d.look {
		d.background.SetLook(d.look)
		d.frame.SetLook(d.look)
		d.text.SetLook(d.look)
		d.constraints.SetLook(d.look)
	}
}

// SetSelected selects or deselects the widget. Selection switches the
// look, starts the baseline and bias reveal animations, and shows the
// action buttons; deselection resets the reveals.
func (d *Decorator) SetSelected(selected bool) {
	if d.selected == selected {
		return
	}
	d.selected = selected
	if selected {
		d.SetLook(LookSelected)
		d.showBaseline.Start()
		d.showBias.Start()
		d.showActions = true
		d.lastInteraction = d.now()
	} else {
		d.SetLook(LookNormal)
		d.showBaseline.Reset()
		d.showBias.Reset()
	}
}

// IsSelected reports whether the widget is selected.
func (d *Decorator) IsSelected() bool { return d.selected }

// SetShowResizeHandles toggles the corner resize handles.
func (d *Decorator) SetShowResizeHandles(v bool) { d.showResizeHandles = v }

// SetShowSizeIndicator toggles the size bubble below the widget.
func (d *Decorator) SetShowSizeIndicator(v bool) { d.showSizeIndicator = v }

// ShowBaseline reports whether the baseline reveal has completed.
func (d *Decorator) ShowBaseline() bool { return d.showBaseline.IsDone() }

// UpdateBias restarts the bias label reveal. Call it when a bias value
// changes so the labels fade back in.
func (d *Decorator) UpdateBias() { d.showBias.Start() }

// SetShowPercentIndicator starts the bias label reveal when enabled.
func (d *Decorator) SetShowPercentIndicator(v bool) {
	if v {
		d.showBias.Start()
	}
}

// Hover updates the hover state. Hovering reveals the action buttons;
// the hide timeout re-arms on every call and is checked lazily at paint
// time, so no timer runs.
func (d *Decorator) Hover(over bool) {
	d.over = over
	if over {
		d.showActions = true
	}
	d.lastInteraction = d.now()
}

// ActionsVisible reports whether the action buttons are currently
// shown. The hide timeout is applied lazily during Paint.
func (d *Decorator) ActionsVisible() bool { return d.showActions }

// keepActionsVisible re-arms the action hide timeout. Called while the
// pointer is over an action button.
func (d *Decorator) keepActionsVisible() {
	d.showActions = true
	d.lastInteraction = d.now()
}

// StartLocking begins the partial-alpha connector animation on one
// connection, used when the lock action re-tags it.
func (d *Decorator) StartLocking(a *layout.Anchor) {
	p := NewAnimationProgress(0, lockingDuration, d.now)
	p.Start()
	d.locking[a] = p
}

// UpdateAnchorPolicy recomputes the display policy for an unselected
// widget, given the global selection.
func (d *Decorator) UpdateAnchorPolicy(cfg Config, selectedWidget *layout.Widget, selectedAnchor *layout.Anchor) {
	d.policy = UnselectedAnchorPolicy(d.widget, d.look, cfg, selectedWidget, selectedAnchor)
}

// Policy returns the display policy computed by the last policy update
// or paint.
func (d *Decorator) Policy() DisplaySet { return d.policy }

// IsAnimating reports whether any animation is still running, meaning
// another repaint is needed.
func (d *Decorator) IsAnimating() bool {
	if d.background.IsAnimating() || d.frame.IsAnimating() ||
		d.text.IsAnimating() || d.constraints.IsAnimating() {
		return true
	}
	if d.showBaseline.IsRunning() || d.showBias.IsRunning() {
		return true
	}
	for _, p := range d.locking {
		if p.IsRunning() {
			return true
		}
	}
	return false
}

// ActionAt returns the visible action whose button contains the device
// point (x, y), or nil. Only meaningful while the actions are shown.
func (d *Decorator) ActionAt(x, y float64) Action {
	if !d.selected || !d.showActions || !d.showResizeHandles {
		return nil
	}
	for _, a := range d.actions {
		if !a.IsVisible() {
			continue
		}
		ax, ay, aw, ah := a.Bounds()
		if x >= ax && x < ax+aw && y >= ay && y < ay+ah {
			return a
		}
	}
	return nil
}

// Paint draws the widget in five passes and reports whether another
// frame is needed.
func (d *Decorator) Paint(vt *ViewTransform, dc *gg.Context, cfg Config) bool {
	d.applyLook()
	if d.selected {
		d.policy = SelectedAnchorPolicy(d.widget, d.showResizeHandles)
	} else {
		d.showResizeHandles = false
		d.showSizeIndicator = false
	}
	if d.showActions && !d.over && !d.lastInteraction.IsZero() &&
		d.now().Sub(d.lastInteraction) > actionsHideTimeout {
		d.showActions = false
	}

	if d.palette.DrawWidgetInfos || cfg.ShowTextUI {
		d.paintWidgetInfo(vt, dc)
	} else {
		d.paintBackground(vt, dc)
	}
	d.paintFrame(vt, dc)
	d.paintAnchors(vt, dc)
	d.paintConstraints(vt, dc, cfg)
	d.paintActions(vt, dc)

	return d.IsAnimating()
}

// paintBackground fills the widget rect and overlays a subtle diagonal
// gradient highlight. Root and container widgets stay unfilled.
func (d *Decorator) paintBackground(vt *ViewTransform, dc *gg.Context) {
	if !d.palette.DrawBackground {
		return
	}
	w := d.widget
	if w.IsRoot() || w.IsContainer() || w.Visibility() != layout.Visible {
		return
	}
	f := w.Frame()
	l, t := vt.X(f.X), vt.Y(f.Y)
	width, height := vt.Dim(f.Width), vt.Dim(f.Height)

	if d.background.Look() != LookNormal {
		dc.SetColor(d.background.Color())
		dc.DrawRectangle(l, t, width, height)
		dc.Fill()
	}

	// Fine diagonal hatching in a brightened background tone.
	highlight := withAlpha(UpdateBrightness(d.background.Color(), 1.6), 90)
	dc.Push()
	dc.DrawRectangle(l, t, width, height)
	dc.Clip()
	dc.SetColor(highlight)
	dc.SetLineWidth(1)
	for x := l - height; x < l+width; x += 8 {
		dc.DrawLine(x, t, x+height, t+height)
		dc.Stroke()
	}
	dc.ResetClip()
	dc.Pop()
}

// paintWidgetInfo draws the widget's textual annotation instead of the
// background fill. Invisible widgets draw at reduced alpha.
func (d *Decorator) paintWidgetInfo(vt *ViewTransform, dc *gg.Context) {
	w := d.widget
	if w.IsRoot() || w.Visibility() == layout.Gone {
		return
	}
	c := d.text.Color()
	if w.Visibility() == layout.Invisible {
		c = withAlpha(c, 100)
	}
	if face := infoFace(); face != nil {
		dc.SetFontFace(face)
	}
	dc.SetColor(c)
	f := w.Frame()
	cx := vt.X(f.X) + vt.Dim(f.Width)/2
	cy := vt.Y(f.Y) + vt.Dim(f.Height)/2
	dc.DrawStringAnchored(w.Name(), cx, cy, 0.5, 0.35)
}

// paintFrame draws the widget outline, the resize handles and the size
// indicator.
func (d *Decorator) paintFrame(vt *ViewTransform, dc *gg.Context) {
	w := d.widget
	if w.Visibility() == layout.Gone {
		return
	}
	f := w.Frame()
	l, t := vt.X(f.X), vt.Y(f.Y)
	width, height := vt.Dim(f.Width), vt.Dim(f.Height)

	dc.SetColor(d.frame.Color())
	if w.Visibility() == layout.Invisible {
		setDashed(dc)
	}
	dc.SetLineWidth(1)
	dc.DrawRectangle(l, t, width, height)
	dc.Stroke()
	setSolid(dc)

	if d.selected && d.showResizeHandles {
		c := d.palette.SelectedFrames
		drawResizeHandle(dc, l, t, c)
		drawResizeHandle(dc, l+width, t, c)
		drawResizeHandle(dc, l, t+height, c)
		drawResizeHandle(dc, l+width, t+height, c)
	}

	if d.selected && d.showSizeIndicator {
		text := fmt.Sprintf("%d x %d", f.Width, f.Height)
		drawRoundRectText(dc, text, l+width/2, t+height+tooltipOffset,
			d.palette.TooltipBackground, d.palette.TooltipText)
	}
}

// paintAnchors draws the anchor markers allowed by the display policy.
// The baseline draws first, fading in while unconnected on a selected
// widget; connected anchors are added implicitly unless the policy
// carries the none flag.
func (d *Decorator) paintAnchors(vt *ViewTransform, dc *gg.Context) {
	w := d.widget
	if w.Visibility() == layout.Gone {
		return
	}

	left := w.Anchor(layout.AnchorLeft)
	right := w.Anchor(layout.AnchorRight)
	top := w.Anchor(layout.AnchorTop)
	bottom := w.Anchor(layout.AnchorBottom)

	all := d.policy.Has(DisplayAll)
	showLeft := all || d.policy.Has(DisplayLeft) || d.policy.Has(DisplayHorizontal)
	showRight := all || d.policy.Has(DisplayRight) || d.policy.Has(DisplayHorizontal)
	showTop := all || d.policy.Has(DisplayTop) || d.policy.Has(DisplayVertical)
	showBottom := all || d.policy.Has(DisplayBottom) || d.policy.Has(DisplayVertical)

	if !d.policy.Has(DisplayNone) {
		showLeft = showLeft || left.IsConnected()
		showRight = showRight || right.IsConnected()
		showTop = showTop || top.IsConnected()
		showBottom = showBottom || bottom.IsConnected()
	}

	c := d.constraints.Color()

	if w.HasBaseline() {
		baseline := w.Anchor(layout.AnchorBaseline)
		if baseline.IsConnected() || (d.selected && d.showResizeHandles) {
			progress := 1.0
			bc := c
			if !baseline.IsConnected() {
				progress = d.showBaseline.Progress()
				bc = withAlpha(c, uint8(255*progress))
			}
			if progress > 0 {
				f := w.Frame()
				drawBaselineMarker(dc, vt.X(f.X), vt.Y(w.BaselineY()), vt.Dim(f.Width), bc)
			}
		}
	}

	if d.selected {
		c = d.palette.SelectedConstraints
	}
	for _, s := range []struct {
		show   bool
		anchor *layout.Anchor
	}{
		{showLeft, left},
		{showRight, right},
		{showTop, top},
		{showBottom, bottom},
	} {
		if !s.show {
			continue
		}
		t := s.anchor.Type()
		drawAnchorMarker(dc, vt.X(w.AnchorX(t)), vt.Y(w.AnchorY(t)), s.anchor.IsConnected(), c)
	}
}

// paintConstraints draws the connection lines in the fixed order
// baseline, left, top, right, bottom, then the bias labels. Soft
// connections use the soft color with a dashed stroke; in-progress
// locking animations draw at partial alpha.
func (d *Decorator) paintConstraints(vt *ViewTransform, dc *gg.Context, cfg Config) {
	w := d.widget
	if w.Visibility() == layout.Gone {
		return
	}
	if !d.selected && !cfg.ShowAllConstraints && d.look != LookHighlighted {
		return
	}

	invisible := w.Visibility() == layout.Invisible
	base := d.constraints.Color()

	types := make([]layout.AnchorType, 0, 5)
	if w.HasBaseline() &&
		(d.showBaseline.IsDone() || w.Anchor(layout.AnchorBaseline).IsConnected()) {
		types = append(types, layout.AnchorBaseline)
	}
	types = append(types, layout.AnchorLeft, layout.AnchorTop, layout.AnchorRight, layout.AnchorBottom)

	for _, t := range types {
		anchor := w.Anchor(t)
		if !anchor.IsConnected() {
			continue
		}
		target := anchor.Target()
		if target.Owner().Visibility() == layout.Gone {
			continue
		}

		c := base
		dashed := invisible
		if anchor.Creator() == layout.CreatorAuto {
			c = d.palette.SoftConstraint
			dashed = true
		}
		if p, ok := d.locking[anchor]; ok {
			if p.IsRunning() {
				c = withAlpha(c, uint8(255*p.Progress()))
			} else {
				delete(d.locking, anchor)
			}
		}

		x1 := vt.X(w.AnchorX(t))
		y1 := vt.Y(w.AnchorY(t))
		x2 := vt.X(target.Owner().AnchorX(target.Type()))
		y2 := vt.Y(target.Owner().AnchorY(target.Type()))
		drawConnection(dc, x1, y1, x2, y2, c, dashed)
	}

	d.paintBias(vt, dc)
}

// paintBias draws the bias percentage bubbles at both ends of a biased
// axis while the bias reveal is running, fading out as it completes.
func (d *Decorator) paintBias(vt *ViewTransform, dc *gg.Context) {
	if !d.showBias.IsRunning() {
		return
	}
	w := d.widget
	f := w.Frame()
	alpha := uint8(255 * (1 - d.showBias.Progress()))
	bg := withAlpha(d.palette.TooltipBackground, alpha)
	fg := withAlpha(d.palette.TooltipText, alpha)

	left := w.Anchor(layout.AnchorLeft)
	right := w.Anchor(layout.AnchorRight)
	if left.IsConnected() && right.IsConnected() && left.Creator() != layout.CreatorAuto {
		percent := int(w.HorizontalBias() * 100)
		y := vt.Y(f.Y + f.Height/2)

		lt := left.Target()
		x := vt.X(f.X)
		tx := vt.X(lt.Owner().AnchorX(lt.Type()))
		drawRoundRectText(dc, FormatPercent(percent, true), (x+tx)/2, y, bg, fg)

		rt := right.Target()
		x = vt.X(f.Right())
		tx = vt.X(rt.Owner().AnchorX(rt.Type()))
		drawRoundRectText(dc, FormatPercent(percent, false), (x+tx)/2, y, bg, fg)
	}

	top := w.Anchor(layout.AnchorTop)
	bottom := w.Anchor(layout.AnchorBottom)
	if top.IsConnected() && bottom.IsConnected() {
		percent := int(w.VerticalBias() * 100)
		x := vt.X(f.X + f.Width/2)

		tt := top.Target()
		y := vt.Y(f.Y)
		ty := vt.Y(tt.Owner().AnchorY(tt.Type()))
		drawRoundRectText(dc, FormatPercent(percent, true), x, (y+ty)/2, bg, fg)

		bt := bottom.Target()
		y = vt.Y(f.Bottom())
		ty = vt.Y(bt.Owner().AnchorY(bt.Type()))
		drawRoundRectText(dc, FormatPercent(percent, false), x, (y+ty)/2, bg, fg)
	}
}

// paintActions lays the visible action buttons left to right below the
// widget. Only the selected widget with resize handles shows actions.
func (d *Decorator) paintActions(vt *ViewTransform, dc *gg.Context) {
	w := d.widget
	if !d.selected || w.Visibility() == layout.Gone {
		return
	}
	if !d.showResizeHandles || !d.showActions || len(d.actions) == 0 {
		return
	}
	f := w.Frame()
	x := vt.X(f.X)
	y := vt.Y(f.Y) + vt.Dim(f.Height) + anchorGap + 4
	for _, a := range d.actions {
		a.Update()
		if !a.IsVisible() {
			continue
		}
		a.Paint(dc, x, y)
		x += actionSize + anchorGap
	}
}
