package deck

import "github.com/charmbracelet/lipgloss"

var (
	// Palette
	accentColor    = lipgloss.Color("#E5544B") // red 500
	cardBgColor    = lipgloss.Color("#181F3A")
	borderColor    = lipgloss.Color("#2E3650")
	focusColor     = lipgloss.Color("#3E4C75")
	headerBgColor  = lipgloss.Color("#1E263F")
	toggleOffColor = lipgloss.Color("#3B4862")
	mutedTextColor = lipgloss.Color("#C0C8DF")
	tabBgColor     = lipgloss.Color("#2F3A5A")
	neutral600     = lipgloss.Color("#535868")
	neutral300     = lipgloss.Color("#C7C7C7")

	headerStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("255")).
			Background(headerBgColor).
			Padding(0, 1)

	titleStyle  = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("255"))
	subtleStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
	descStyle   = lipgloss.NewStyle().Foreground(mutedTextColor)
	helpStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
	statusStyle = lipgloss.NewStyle().Foreground(accentColor)

	// Filter selector
	tabStyle            = lipgloss.NewStyle().Foreground(neutral300).Padding(0, 1)
	tabSelectedAllStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("255")).Background(accentColor).Bold(true).Padding(0, 1)
	tabSelectedStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("255")).Background(neutral600).Bold(true).Padding(0, 1)

	// Cards
	cardStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(borderColor).
			Padding(0, 1)

	focusedCardStyle = lipgloss.NewStyle().
				Border(lipgloss.ThickBorder()).
				BorderForeground(focusColor).
				Padding(0, 1)

	removeButtonStyle = lipgloss.NewStyle().Foreground(mutedTextColor).Background(tabBgColor).Padding(0, 1)
	toggleOnStyle     = lipgloss.NewStyle().Foreground(accentColor).Bold(true)
	toggleOffStyle    = lipgloss.NewStyle().Foreground(toggleOffColor)

	emptyStateStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(borderColor).
			Foreground(mutedTextColor).
			Padding(1, 4)

	helpOverlayStyle = lipgloss.NewStyle().
				Border(lipgloss.RoundedBorder()).
				BorderForeground(accentColor).
				Background(cardBgColor).
				Padding(0, 1)
)

// renderSwitch draws the toggle switch for a card
func renderSwitch(active bool) string {
	if active {
		return toggleOnStyle.Render("[ ━●]")
	}
	return toggleOffStyle.Render("[●━ ]")
}
