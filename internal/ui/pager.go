package ui

import (
	"fmt"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/noborus/ov/oviewer"

	"shelfsmart/internal/domain"
)

// PagerOps shows long content in the ov pager, releasing the terminal for
// the duration.
type PagerOps struct {
	program *tea.Program
}

// NewPagerOps creates a new pager operations instance
func NewPagerOps(program *tea.Program) *PagerOps {
	return &PagerOps{
		program: program,
	}
}

// SetProgram sets the program reference for terminal management
func (p *PagerOps) SetProgram(program *tea.Program) {
	p.program = program
}

// ShowInPager displays the content in ov, restoring the terminal after.
func (p *PagerOps) ShowInPager(content string) error {
	if p.program == nil {
		return fmt.Errorf("program not set")
	}

	// Release terminal control to run ov
	if err := p.program.ReleaseTerminal(); err != nil {
		return err
	}

	// Ensure terminal is restored even if ov fails
	defer func() {
		// Small delay to ensure ov has fully exited before restoring terminal
		time.Sleep(100 * time.Millisecond)
		_ = p.program.RestoreTerminal() // Ignore error as we're in defer context
	}()

	reader := strings.NewReader(content)

	root, err := oviewer.NewRoot(reader)
	if err != nil {
		return err
	}

	// Configure ov to not write on exit (to avoid messing with our screen)
	config := oviewer.NewConfig()
	config.IsWriteOnExit = false
	config.IsWriteOriginal = false

	root.SetConfig(config)

	// Run the oviewer (this will take over the terminal)
	return root.Run()
}

// BuildBookRecord renders the complete book record as plain text for the
// pager, description unabridged.
func BuildBookRecord(book *domain.Book) string {
	var b strings.Builder

	titleStyle := lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("99"))
	labelStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("245"))

	b.WriteString(titleStyle.Render(book.Title))
	b.WriteString("\n\n")

	row := func(label, value string) {
		if value == "" {
			return
		}
		b.WriteString(fmt.Sprintf("%s %s\n", labelStyle.Render(fmt.Sprintf("%-18s", label)), value))
	}

	row("ISBN", book.ISBN)
	row("Subtitle", book.Subtitle)
	row("Publication date", book.PublicationDate)
	row("Edition", book.Edition)
	if book.Pages > 0 {
		row("Pages", fmt.Sprintf("%d", book.Pages))
	}
	row("Language", book.Language)
	row("Category", book.CategoryName)
	row("Publisher", book.PublisherName)
	row("Availability", book.Availability)
	if book.TotalCopies > 0 {
		row("Copies", fmt.Sprintf("%d total, %d on hand", book.TotalCopies, book.Quantity))
	}
	row("Cover image", book.CoverImageURL)

	if len(book.Authors) > 0 {
		b.WriteString("\n")
		b.WriteString(labelStyle.Render("Authors"))
		b.WriteString("\n")
		for _, a := range book.Authors {
			role := a.Role
			if role == "" {
				role = "primary"
			}
			b.WriteString(fmt.Sprintf("  %s (%s)\n", a.Name, role))
		}
	}

	if book.Description != "" {
		b.WriteString("\n")
		b.WriteString(labelStyle.Render("Description"))
		b.WriteString("\n")
		b.WriteString(book.Description)
		b.WriteString("\n")
	}

	return b.String()
}

// BuildHelpContent renders the key binding reference.
func BuildHelpContent() string {
	titleStyle := lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color("99")).
		MarginBottom(1)

	sectionStyle := lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color("39")).
		MarginTop(1)

	keyStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color("220"))

	descStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color("252"))

	var help strings.Builder

	line := func(key, desc string) {
		help.WriteString(fmt.Sprintf("  %-18s %s\n", keyStyle.Render(key), descStyle.Render(desc)))
	}

	help.WriteString(titleStyle.Render("ShelfSmart Help"))
	help.WriteString("\n")

	help.WriteString(sectionStyle.Render("Navigation"))
	help.WriteString("\n")
	line("↑/↓, j/k", "Move up/down")
	line("PgUp/PgDn", "Page up/down")
	line("gg/G", "Go to top/bottom")
	help.WriteString("\n")

	help.WriteString(sectionStyle.Render("Catalog"))
	help.WriteString("\n")
	line("a", "Add book")
	line("e, Enter", "Edit selected book")
	line("v", "View selected book")
	line("d", "Delete selected book")
	line("r", "Reload catalog")
	line("s", "Cycle sort column")
	help.WriteString("\n")

	help.WriteString(sectionStyle.Render("Other Records"))
	help.WriteString("\n")
	line("A", "Add author")
	line("c", "Add category")
	line("p", "Add publisher")
	help.WriteString("\n")

	help.WriteString(sectionStyle.Render("Search"))
	help.WriteString("\n")
	line("/", "Filter the table as you type")
	line("Enter", "Keep filter, save the search now")
	line("Esc", "Clear the filter")
	line("H", "Recent searches")
	help.WriteString("\n")

	help.WriteString(sectionStyle.Render("Forms"))
	help.WriteString("\n")
	line("Tab/Shift+Tab", "Next/previous field")
	line("Enter", "Save")
	line("Esc", "Cancel")
	line("Ctrl+L", "Fill book fields from ISBN")
	line("Ctrl+A / Ctrl+X", "Add/remove author row")
	help.WriteString("\n")

	help.WriteString(sectionStyle.Render("Other"))
	help.WriteString("\n")
	line("?", "Toggle this help")
	line("q", "Quit")

	return help.String()
}
