package views

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"

	"shelfsmart/internal/domain"
	"shelfsmart/internal/ui/state"
)

// TableRenderer draws the catalog table and its status line.
type TableRenderer struct {
	styles *Styles
}

// NewTableRenderer creates a new table renderer
func NewTableRenderer(styles *Styles) *TableRenderer {
	return &TableRenderer{styles: styles}
}

type column struct {
	title string
	width int
}

var columns = []column{
	{"ISBN", 14},
	{"Title", 32},
	{"Authors", 24},
	{"Category", 16},
	{"Publisher", 16},
	{"Lang", 6},
	{"Status", 12},
}

// Render draws the visible window of the filtered catalog.
func (tr *TableRenderer) Render(s *state.AppState) string {
	var b strings.Builder

	b.WriteString(tr.renderHeader())
	b.WriteString("\n")

	if len(s.VisibleRows) == 0 {
		if s.Loading {
			b.WriteString(tr.styles.Dim.Render("Loading catalog..."))
		} else if s.FilterQuery != "" {
			b.WriteString(tr.styles.Dim.Render(fmt.Sprintf("No books match %q", s.FilterQuery)))
		} else {
			b.WriteString(tr.styles.Dim.Render("No books in the catalog"))
		}
		return b.String()
	}

	end := s.ViewportOffset + s.ViewportHeight
	if end > len(s.VisibleRows) {
		end = len(s.VisibleRows)
	}
	for vi := s.ViewportOffset; vi < end; vi++ {
		book := s.Books[s.VisibleRows[vi]]
		line := tr.renderRow(book)
		if vi == s.SelectedIndex {
			line = tr.styles.SelectionBg.Render(ansi.Strip(line))
		}
		b.WriteString(line)
		b.WriteString("\n")
	}

	return strings.TrimRight(b.String(), "\n")
}

func (tr *TableRenderer) renderHeader() string {
	cells := make([]string, len(columns))
	for i, col := range columns {
		cells[i] = pad(col.title, col.width)
	}
	return tr.styles.Header.Render(strings.Join(cells, " "))
}

func (tr *TableRenderer) renderRow(book domain.Book) string {
	status := lipgloss.NewStyle().
		Foreground(lipgloss.Color(AvailabilityColor(book.Availability))).
		Render(pad(book.Availability, columns[6].width))

	cells := []string{
		pad(book.ISBN, columns[0].width),
		pad(book.Title, columns[1].width),
		pad(book.AuthorNames(), columns[2].width),
		pad(book.CategoryName, columns[3].width),
		pad(book.PublisherName, columns[4].width),
		pad(book.Language, columns[5].width),
		status,
	}
	return strings.Join(cells, " ")
}

// StatusLine summarizes the view: row counts, active filter and sort.
func (tr *TableRenderer) StatusLine(s *state.AppState, sortLabel string) string {
	parts := []string{
		fmt.Sprintf("%d/%d books", len(s.VisibleRows), len(s.Books)),
		"sort: " + sortLabel,
	}
	if s.FilterQuery != "" {
		parts = append(parts, tr.styles.Filter.Render("filter: "+s.FilterQuery))
	}
	if s.StatusMessage != "" {
		parts = append(parts, s.StatusMessage)
	}
	return tr.styles.Status.Render(strings.Join(parts, "  |  "))
}

// pad truncates or right-pads a cell to the column width.
func pad(s string, width int) string {
	s = ansi.Truncate(s, width, "…")
	w := ansi.StringWidth(s)
	if w < width {
		s += strings.Repeat(" ", width-w)
	}
	return s
}
