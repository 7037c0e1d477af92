package ui

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"

	inputtypes "shelfsmart/internal/ui/input/types"
	"shelfsmart/internal/ui/views"
)

// View renders the UI
func (m *Model) View() string {
	if m.inPagerMode {
		return ""
	}

	if !m.state.LoggedIn {
		return m.loginView.Render(m.loginUser, m.loginPass, m.loginFocus, m.loginErr, m.loginField, m.width, m.height)
	}

	base := m.renderMain()

	// One popup at a time, chosen by the input mode
	switch m.inputHandler.CurrentMode() {
	case inputtypes.ModeForm:
		if m.form != nil && m.form.IsOpen() {
			return m.overlay(base, m.formView.Render(m.form), m.styles.PopupBox)
		}

	case inputtypes.ModeConfirm:
		return m.overlay(base, m.renderConfirm(), m.styles.ConfirmBox)

	case inputtypes.ModeQuickAdd:
		if len(m.state.QuickAddQueue) > 0 {
			item := m.state.QuickAddQueue[0]
			body := views.RenderConfirm(m.styles, "Quick Add",
				fmt.Sprintf("%s %q is not in the database yet.\nAdd it now?", capitalize(item.Kind), item.Name))
			return m.overlay(base, body, m.styles.PopupBox)
		}

	case inputtypes.ModeHistory:
		return m.overlay(base, views.RenderHistory(m.styles, m.state, time.Now()), m.styles.PopupBox)

	case inputtypes.ModeView:
		return m.overlay(base, views.RenderDetail(m.styles, m.state.ViewBook), m.styles.PopupBox)
	}

	if m.state.ShowHelp {
		return m.overlay(base, BuildHelpContent(), m.styles.PopupBox)
	}

	return base
}

func (m *Model) renderMain() string {
	var b strings.Builder

	b.WriteString(m.styles.Title.Render("ShelfSmart"))
	if m.state.Username != "" {
		b.WriteString(m.styles.Dim.Render("  signed in as " + m.state.Username))
	}
	b.WriteString("\n")

	b.WriteString(m.renderSearchLine())
	b.WriteString("\n")

	b.WriteString(m.table.Render(m.state))
	b.WriteString("\n")

	b.WriteString(m.table.StatusLine(m.state, m.currentSort.Label()))
	b.WriteString("\n")
	b.WriteString(m.styles.Help.Render("/ search · a add · e edit · d delete · v view · H history · ? help · q quit"))

	return m.styles.Main.Render(b.String())
}

func (m *Model) renderSearchLine() string {
	if m.inputHandler.CurrentMode() == inputtypes.ModeSearch {
		return m.styles.Filter.Render("Search: ") + m.inputHandler.TextInput().View()
	}
	if m.state.FilterQuery != "" {
		return m.styles.Filter.Render("Search: " + m.state.FilterQuery)
	}
	return m.styles.Dim.Render("Press / to search the catalog")
}

func (m *Model) renderConfirm() string {
	if m.state.PendingClear {
		return views.RenderConfirm(m.styles, "Clear Search History",
			"Delete all saved searches?\nThis cannot be undone.")
	}
	return views.RenderConfirm(m.styles, "Delete Book",
		fmt.Sprintf("Delete %q from the catalog?\nThis cannot be undone.", m.state.PendingDeleteTitle))
}

func (m *Model) overlay(base, content string, box lipgloss.Style) string {
	if m.width <= 0 || m.height <= 0 {
		return box.Render(content)
	}
	return m.popup.RenderPopupOverlay(base, content, m.height, m.width, box)
}

func capitalize(s string) string {
	if s == "" {
		return s
	}
	return strings.ToUpper(s[:1]) + s[1:]
}
