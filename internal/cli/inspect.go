package cli

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"

	"github.com/twistyworks/twisty"
	"github.com/twistyworks/twisty/internal/scheme"
	"github.com/twistyworks/twisty/internal/storage"
)

var inspectCmd = &cobra.Command{
	Use:   "inspect [snapshot-id]",
	Short: "Interactively browse the cube's views",
	Long: `Open a small TUI that pages through the cube's geometric views:
the six faces, the nine rows, the nine columns, and the eight corners.

With a snapshot ID argument the stored cube is inspected; otherwise a
fresh cube painted with the classic scheme is used.

Keys:
  left/h, right/l   previous / next view
  q/Esc             quit`,
	Args: cobra.MaximumNArgs(1),
	RunE: runInspect,
}

func init() {
	rootCmd.AddCommand(inspectCmd)
}

// Styles
var (
	inspectTitleStyle = lipgloss.NewStyle().
				Bold(true).
				Foreground(lipgloss.Color("205"))

	inspectHelpStyle = lipgloss.NewStyle().
				Foreground(lipgloss.Color("241"))

	inspectLabelStyle = lipgloss.NewStyle().
				Foreground(lipgloss.Color("39"))
)

// inspectModel pages through the cube's view projections.
type inspectModel struct {
	cube  *twisty.Cube
	title string
	page  int
}

// Page order: six faces, rows, columns, corners.
const inspectPages = 9

func newInspectModel(c *twisty.Cube, title string) *inspectModel {
	return &inspectModel{cube: c, title: title}
}

func (m *inspectModel) Init() tea.Cmd {
	return nil
}

func (m *inspectModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "esc", "ctrl+c":
			return m, tea.Quit
		case "right", "l":
			m.page = (m.page + 1) % inspectPages
		case "left", "h":
			m.page = (m.page + inspectPages - 1) % inspectPages
		}
	}
	return m, nil
}

func (m *inspectModel) View() string {
	var b strings.Builder

	b.WriteString(inspectTitleStyle.Render("twisty inspect: " + m.title))
	b.WriteString("\n\n")

	switch {
	case m.page < 6:
		b.WriteString(renderFace(m.cube.Face(twisty.FaceKind(m.page))))
	case m.page == 6:
		b.WriteString(m.viewRows())
	case m.page == 7:
		b.WriteString(m.viewColumns())
	default:
		b.WriteString(m.viewCorners())
	}

	b.WriteString("\n")
	b.WriteString(inspectHelpStyle.Render(fmt.Sprintf("view %d/%d   left/right: change view   q: quit", m.page+1, inspectPages)))
	b.WriteString("\n")
	return b.String()
}

var rowNames = [9]string{
	"top back", "top middle", "top front",
	"middle back", "middle center", "middle front",
	"bottom back", "bottom middle", "bottom front",
}

func (m *inspectModel) viewRows() string {
	var b strings.Builder
	b.WriteString("rows\n")
	for i, row := range m.cube.Rows() {
		b.WriteString(fmt.Sprintf("  %s  %s | %s | %s\n",
			inspectLabelStyle.Render(fmt.Sprintf("%-14s", rowNames[i])),
			describeCubie(row.Left), describeCubie(row.Center), describeCubie(row.Right)))
	}
	return b.String()
}

var columnNames = [9]string{
	"back left", "back center", "back right",
	"middle left", "middle center", "middle right",
	"front left", "front center", "front right",
}

func (m *inspectModel) viewColumns() string {
	var b strings.Builder
	b.WriteString("columns\n")
	for i, col := range m.cube.Columns() {
		b.WriteString(fmt.Sprintf("  %s  %s | %s | %s\n",
			inspectLabelStyle.Render(fmt.Sprintf("%-14s", columnNames[i])),
			describeCubie(col.Top), describeCubie(col.Center), describeCubie(col.Bottom)))
	}
	return b.String()
}

var cornerNames = [8]string{
	"top back left", "top back right", "top front left", "top front right",
	"bottom back left", "bottom back right", "bottom front left", "bottom front right",
}

func (m *inspectModel) viewCorners() string {
	var b strings.Builder
	b.WriteString("corners\n")
	for i, cb := range m.cube.Corners() {
		b.WriteString(fmt.Sprintf("  %s  %s\n",
			inspectLabelStyle.Render(fmt.Sprintf("%-18s", cornerNames[i])),
			describeCubie(cb)))
	}
	return b.String()
}

func runInspect(cmd *cobra.Command, args []string) error {
	var c *twisty.Cube
	title := "classic cube"

	if len(args) == 1 {
		db, err := openDB()
		if err != nil {
			return err
		}
		defer db.Close()

		repo := storage.NewSnapshotRepository(db)
		snap, err := repo.Get(args[0])
		if err != nil {
			return err
		}
		c, err = repo.Load(args[0])
		if err != nil {
			return err
		}
		title = snap.Name
	} else {
		c = twisty.New()
		scheme.Apply(c, scheme.Classic())
	}

	p := tea.NewProgram(newInspectModel(c, title))
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("inspect: %w", err)
	}
	return nil
}
