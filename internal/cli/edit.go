package cli

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"

	"github.com/anchorlayer/anchorage/pkg/layout"
	"github.com/anchorlayer/anchorage/pkg/render/blueprint"
	"github.com/anchorlayer/anchorage/pkg/scene"
)

// List styles
var (
	listSelectedStyle = lipgloss.NewStyle().Bold(true).Foreground(colorCyan)
	listNormalStyle   = lipgloss.NewStyle().Foreground(colorWhite)
	listDimStyle      = lipgloss.NewStyle().Foreground(colorDim)
)

// editCommand creates the edit command: an interactive terminal editor
// for a scene's widgets and constraints.
func (c *CLI) editCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "edit [scene.json]",
		Short: "Edit a scene's widgets and constraints interactively",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runEdit(args[0])
		},
	}
}

// runEdit loads the scene and runs the editor program until the user
// quits.
func runEdit(path string) error {
	sc, err := scene.ImportFile(path)
	if err != nil {
		return err
	}
	g, err := scene.ToGraph(sc)
	if err != nil {
		return err
	}

	m := newEditModel(path, sc, g)
	final, err := tea.NewProgram(m).Run()
	if err != nil {
		return err
	}

	if fm, ok := final.(editModel); ok && fm.saveErr != nil {
		return fm.saveErr
	}
	return nil
}

// dirtyFlag tracks unsaved mutations. Widget actions report through
// the editor's state model, which shares this flag with the TUI model.
type dirtyFlag struct{ dirty bool }

// Save implements blueprint.StateModel.
func (f *dirtyFlag) Save(*blueprint.Decorator) { f.dirty = true }

// editModel is the bubbletea model for the scene editor.
type editModel struct {
	path    string
	sc      scene.Scene
	editor  *blueprint.Editor
	widgets []*layout.Widget
	cursor  int
	flag    *dirtyFlag
	status  string
	saveErr error
}

func newEditModel(path string, sc scene.Scene, g *layout.Graph) editModel {
	flag := &dirtyFlag{}
	editor := blueprint.NewEditor(g, blueprint.WithStateModel(flag))

	var widgets []*layout.Widget
	for _, w := range g.Widgets() {
		if !w.IsRoot() {
			widgets = append(widgets, w)
		}
	}

	return editModel{
		path:    path,
		sc:      sc,
		editor:  editor,
		widgets: widgets,
		flag:    flag,
	}
}

func (m editModel) Init() tea.Cmd {
	return nil
}

func (m editModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	key, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	m.status = ""
	switch key.String() {
	case "q", "ctrl+c":
		return m, tea.Quit
	case "up", "k":
		if m.cursor > 0 {
			m.cursor--
		}
	case "down", "j":
		if m.cursor < len(m.widgets)-1 {
			m.cursor++
		}
	case "enter":
		m.editor.Select(m.current())
	case "esc":
		m.editor.Select(nil)
	case "c":
		m.cycleChain(layout.Horizontal)
	case "C":
		m.cycleChain(layout.Vertical)
	case "x":
		m.clearConstraints()
	case "s":
		m.save()
	}
	return m, nil
}

func (m *editModel) current() *layout.Widget {
	if len(m.widgets) == 0 {
		return nil
	}
	return m.widgets[m.cursor]
}

// cycleChain advances the chain style of the chain the cursored widget
// belongs to, on the given axis.
func (m *editModel) cycleChain(axis layout.Axis) {
	w := m.current()
	if w == nil {
		return
	}
	head := layout.CycleChainStyle(w, axis)
	if head == nil {
		m.status = "not in a chain"
		return
	}
	m.flag.dirty = true
	style := head.HorizontalChainStyle()
	if axis == layout.Vertical {
		style = head.VerticalChainStyle()
	}
	m.status = fmt.Sprintf("chain %s: %s", head.Name(), style)
}

func (m *editModel) clearConstraints() {
	w := m.current()
	if w == nil || !w.HasConnections() {
		m.status = "no connections"
		return
	}
	w.ResetAllConstraints()
	m.flag.dirty = true
	m.status = "connections cleared"
}

// save writes the current graph back to the scene file, preserving the
// document ID and name.
func (m *editModel) save() {
	out := scene.FromGraph(m.editor.Graph())
	out.ID = m.sc.ID
	out.Name = m.sc.Name
	if err := scene.ExportFile(out, m.path); err != nil {
		m.saveErr = err
		m.status = "save failed: " + err.Error()
		return
	}
	m.flag.dirty = false
	m.status = "saved"
}

func (m editModel) View() string {
	var b strings.Builder

	title := "Edit Scene"
	if m.sc.Name != "" {
		title += ": " + m.sc.Name
	}
	if m.flag.dirty {
		title += " *"
	}
	b.WriteString(StyleTitle.Render(title))
	b.WriteString("\n")
	b.WriteString(listDimStyle.Render("↑/↓ navigate  ⏎ select  c/C cycle chain  x clear  s save  q quit"))
	b.WriteString("\n\n")

	selected := m.editor.SelectedWidget()
	for i, w := range m.widgets {
		cursor := "  "
		if i == m.cursor {
			cursor = "▸ "
		}

		marker := " "
		if w == selected {
			marker = StyleHighlight.Render("●")
		}

		f := w.Frame()
		line := fmt.Sprintf("%s%s %-16s %4d,%-4d %dx%d%s",
			cursor, marker, w.Name(), f.X, f.Y, f.Width, f.Height, widgetTags(w))

		switch {
		case i == m.cursor:
			b.WriteString(listSelectedStyle.Render(line))
		case w.Visibility() == layout.Gone:
			b.WriteString(listDimStyle.Render(line))
		default:
			b.WriteString(listNormalStyle.Render(line))
		}
		b.WriteString("\n")
	}

	if selected != nil {
		b.WriteString("\n")
		b.WriteString(listDimStyle.Render(fmt.Sprintf("  anchors: %s", m.editor.Decorator(selected).Policy())))
		b.WriteString("\n")
		for _, a := range selected.Anchors() {
			if !a.IsConnected() {
				continue
			}
			t := a.Target()
			b.WriteString(listDimStyle.Render(fmt.Sprintf("  %s %s %s.%s (%s)",
				a.Type(), iconArrow, t.Owner().Name(), t.Type(), a.Creator())))
			b.WriteString("\n")
		}
	}

	if m.status != "" {
		b.WriteString("\n")
		b.WriteString(StyleDim.Render("  " + m.status))
		b.WriteString("\n")
	}
	return b.String()
}

// widgetTags summarizes chain membership and visibility as short
// suffixes.
func widgetTags(w *layout.Widget) string {
	var tags []string
	if w.IsContainer() {
		tags = append(tags, "container")
	}
	if w.InHorizontalChain() {
		tags = append(tags, "h-chain")
	}
	if w.InVerticalChain() {
		tags = append(tags, "v-chain")
	}
	if w.Visibility() != layout.Visible {
		tags = append(tags, w.Visibility().String())
	}
	if len(tags) == 0 {
		return ""
	}
	return "  [" + strings.Join(tags, ", ") + "]"
}
