package views

import (
	"github.com/charmbracelet/lipgloss"
)

// Styles contains all the style definitions for the UI
type Styles struct {
	Title         lipgloss.Style
	Confirm       lipgloss.Style
	Dim           lipgloss.Style
	Status        lipgloss.Style
	Filter        lipgloss.Style
	Help          lipgloss.Style
	Main          lipgloss.Style
	Header        lipgloss.Style
	SelectionBg   lipgloss.Style
	FieldLabel    lipgloss.Style
	FieldFocused  lipgloss.Style
	FieldError    lipgloss.Style
	PopupBox      lipgloss.Style
	ConfirmBox    lipgloss.Style
	StatusError   lipgloss.Style
	StatusWarning lipgloss.Style
	StatusLoading lipgloss.Style
	StatusSuccess lipgloss.Style
}

// NewStyles creates a new Styles instance with default values
func NewStyles() *Styles {
	return &Styles{
		Title: lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("99")).
			MarginBottom(1),
		Confirm: lipgloss.NewStyle().Bold(true),
		Dim:     lipgloss.NewStyle().Faint(true),
		Status: lipgloss.NewStyle().
			Foreground(lipgloss.Color("241")).
			MarginTop(1),
		Filter: lipgloss.NewStyle().Foreground(lipgloss.Color("214")), // yellow
		Help:   lipgloss.NewStyle().Faint(true),
		Main: lipgloss.NewStyle().
			Padding(1, 2),
		Header: lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("251")).
			Underline(true),
		SelectionBg:  lipgloss.NewStyle().Background(lipgloss.Color("238")),
		FieldLabel:   lipgloss.NewStyle().Foreground(lipgloss.Color("245")).Width(18),
		FieldFocused: lipgloss.NewStyle().Foreground(lipgloss.Color("226")).Bold(true),
		FieldError:   lipgloss.NewStyle().Foreground(lipgloss.Color("203")),
		PopupBox: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			Padding(1, 2).
			BorderForeground(lipgloss.Color("99")),
		ConfirmBox: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			Padding(1, 2).
			BorderForeground(lipgloss.Color("203")),
		StatusError:   lipgloss.NewStyle().Foreground(lipgloss.Color("203")), // red
		StatusWarning: lipgloss.NewStyle().Foreground(lipgloss.Color("214")), // yellow
		StatusLoading: lipgloss.NewStyle().Foreground(lipgloss.Color("241")), // gray
		StatusSuccess: lipgloss.NewStyle().Foreground(lipgloss.Color("78")),  // green
	}
}

// AvailabilityColor returns the color for a book's availability status
func AvailabilityColor(status string) string {
	switch status {
	case "Available", "available":
		return "78" // green
	case "Reserved", "reserved":
		return "214" // yellow
	default:
		if status == "" {
			return "241" // gray, unknown
		}
		return "203" // red for unavailable
	}
}
