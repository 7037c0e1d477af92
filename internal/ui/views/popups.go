package views

import (
	"fmt"
	"strings"
	"time"

	"shelfsmart/internal/domain"
	"shelfsmart/internal/history"
	"shelfsmart/internal/ui/form"
	"shelfsmart/internal/ui/state"
)

// FormRenderer draws the add/edit popup body.
type FormRenderer struct {
	styles *Styles
}

// NewFormRenderer creates a new form renderer
func NewFormRenderer(styles *Styles) *FormRenderer {
	return &FormRenderer{styles: styles}
}

// Render draws the form fields with the focused one highlighted.
func (fr *FormRenderer) Render(f *form.Form) string {
	var b strings.Builder

	b.WriteString(fr.styles.Title.Render(f.Title()))
	b.WriteString("\n")

	if f.State() == form.StateLoading {
		b.WriteString(fr.styles.Dim.Render("Loading..."))
		return b.String()
	}

	if msg := f.Error(); msg != "" {
		b.WriteString(fr.styles.FieldError.Render(msg))
		b.WriteString("\n\n")
	}

	inputs := f.Inputs()
	schema := f.Schema()
	for i, field := range schema.Fields {
		label := field.Label
		if field.Required {
			label += " *"
		}
		fr.writeField(&b, label, inputs[i].View(), i == f.FocusIndex())
		if fieldErr := f.FieldError(field.Key); fieldErr != "" {
			b.WriteString("  ")
			b.WriteString(fr.styles.FieldError.Render(fieldErr))
			b.WriteString("\n")
		}
	}

	if schema.HasAuthors {
		b.WriteString("\n")
		b.WriteString(fr.styles.Dim.Render("Authors (ctrl+a add, ctrl+x remove)"))
		b.WriteString("\n")
		base := len(schema.Fields)
		for row := 0; row < f.AuthorRowCount(); row++ {
			idIdx := base + row*2
			fr.writeField(&b, fmt.Sprintf("Author %d ID", row+1), inputs[idIdx].View(), idIdx == f.FocusIndex())
			fr.writeField(&b, "Role", inputs[idIdx+1].View(), idIdx+1 == f.FocusIndex())
		}
		if err := f.FieldError("author_0"); err != "" {
			b.WriteString("  ")
			b.WriteString(fr.styles.FieldError.Render(err))
			b.WriteString("\n")
		}
	}

	b.WriteString("\n")
	if f.State() == form.StateSubmitting {
		b.WriteString(fr.styles.Dim.Render("Saving..."))
	} else {
		hint := "enter save · esc cancel · tab next field"
		if schema.Kind == domain.KindBook {
			hint += " · ctrl+l fill from ISBN"
		}
		b.WriteString(fr.styles.Help.Render(hint))
	}
	return b.String()
}

func (fr *FormRenderer) writeField(b *strings.Builder, label, value string, focused bool) {
	labelStyle := fr.styles.FieldLabel
	if focused {
		labelStyle = fr.styles.FieldFocused.Width(18)
	}
	b.WriteString(labelStyle.Render(label))
	b.WriteString(" ")
	b.WriteString(value)
	b.WriteString("\n")
}

// RenderConfirm draws a yes/no question popup body.
func RenderConfirm(styles *Styles, title, question string) string {
	var b strings.Builder
	b.WriteString(styles.Title.Render(title))
	b.WriteString("\n")
	b.WriteString(question)
	b.WriteString("\n\n")
	b.WriteString(styles.Help.Render("y confirm · n cancel"))
	return b.String()
}

// RenderHistory draws the recent searches popup body.
func RenderHistory(styles *Styles, s *state.AppState, now time.Time) string {
	var b strings.Builder
	b.WriteString(styles.Title.Render("Recent Searches"))
	b.WriteString("\n")

	if !s.HistoryLoaded {
		b.WriteString(styles.Dim.Render("Loading..."))
		b.WriteString("\n\n")
		b.WriteString(styles.Help.Render("esc close"))
		return b.String()
	}

	if len(s.History) == 0 {
		b.WriteString(styles.Dim.Render("No recent searches"))
		b.WriteString("\n\n")
		b.WriteString(styles.Help.Render("esc close"))
		return b.String()
	}

	for i, rec := range s.History {
		line := fmt.Sprintf("%-30s %3d results  %s",
			truncate(rec.Query, 30), rec.ResultsCount, history.TimeAgo(rec.CreatedAt, now))
		if i == s.HistoryIndex {
			line = styles.SelectionBg.Render(line)
		}
		b.WriteString(line)
		b.WriteString("\n")
	}

	if rec, ok := s.SelectedHistory(); ok {
		if similar := history.Similar(s.History, rec.Query); len(similar) > 0 {
			b.WriteString("\n")
			b.WriteString(styles.Dim.Render("Similar: " + strings.Join(similar, ", ")))
			b.WriteString("\n")
		}
	}

	b.WriteString("\n")
	b.WriteString(styles.Help.Render("enter search again · c clear all · esc close"))
	return b.String()
}

// RenderDetail draws the read-only book popup body.
func RenderDetail(styles *Styles, book *domain.Book) string {
	var b strings.Builder
	if book == nil {
		b.WriteString(styles.Title.Render("Book"))
		b.WriteString("\n")
		b.WriteString(styles.Dim.Render("Loading..."))
		return b.String()
	}

	b.WriteString(styles.Title.Render(book.Title))
	b.WriteString("\n")

	row := func(label, value string) {
		if value == "" {
			return
		}
		b.WriteString(styles.FieldLabel.Render(label))
		b.WriteString(" ")
		b.WriteString(value)
		b.WriteString("\n")
	}

	row("ISBN", book.ISBN)
	row("Subtitle", book.Subtitle)
	row("Authors", book.AuthorNames())
	row("Category", book.CategoryName)
	row("Publisher", book.PublisherName)
	row("Published", book.PublicationDate)
	row("Edition", book.Edition)
	if book.Pages > 0 {
		row("Pages", fmt.Sprintf("%d", book.Pages))
	}
	row("Language", book.Language)
	row("Status", book.Availability)
	if book.TotalCopies > 0 {
		row("Copies", fmt.Sprintf("%d total, %d on hand", book.TotalCopies, book.Quantity))
	}
	if book.Description != "" {
		b.WriteString("\n")
		b.WriteString(truncate(book.Description, 400))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(styles.Help.Render("o full record · e edit · esc close"))
	return b.String()
}

func truncate(s string, max int) string {
	if len(s) <= max {
		return s
	}
	return s[:max-1] + "…"
}
