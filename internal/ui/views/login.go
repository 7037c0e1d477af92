package views

import (
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/lipgloss"
)

// LoginRenderer draws the credentials screen shown before the catalog.
type LoginRenderer struct {
	styles *Styles
}

// NewLoginRenderer creates a new login renderer
func NewLoginRenderer(styles *Styles) *LoginRenderer {
	return &LoginRenderer{styles: styles}
}

// Render centers the login card on the screen.
func (lr *LoginRenderer) Render(username, password textinput.Model, focusIdx int, errMsg string, fieldErrs map[string]string, width, height int) string {
	var b strings.Builder

	b.WriteString(lr.styles.Title.Render("ShelfSmart"))
	b.WriteString("\n")

	if errMsg != "" {
		b.WriteString(lr.styles.FieldError.Render(errMsg))
		b.WriteString("\n\n")
	}

	writeField := func(label, view string, focused bool, fieldErr string) {
		labelStyle := lr.styles.FieldLabel
		if focused {
			labelStyle = lr.styles.FieldFocused.Width(18)
		}
		b.WriteString(labelStyle.Render(label))
		b.WriteString(" ")
		b.WriteString(view)
		b.WriteString("\n")
		if fieldErr != "" {
			b.WriteString("  ")
			b.WriteString(lr.styles.FieldError.Render(fieldErr))
			b.WriteString("\n")
		}
	}

	writeField("Username", username.View(), focusIdx == 0, fieldErrs["username"])
	writeField("Password", password.View(), focusIdx == 1, fieldErrs["password"])

	b.WriteString("\n")
	b.WriteString(lr.styles.Help.Render("enter sign in · tab switch field · ctrl+c quit"))

	card := lr.styles.PopupBox.Render(b.String())
	if width > 0 && height > 0 {
		return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, card)
	}
	return card
}
