package browse

import "github.com/charmbracelet/lipgloss"

var (
	Accent = lipgloss.AdaptiveColor{Light: "#228be6", Dark: "#7aa2f7"}
	Muted  = lipgloss.AdaptiveColor{Light: "#868e96", Dark: "#565f89"}
	Match  = lipgloss.AdaptiveColor{Light: "#ffe066", Dark: "#9e6a03"}
	Border = lipgloss.AdaptiveColor{Light: "#dee2e6", Dark: "#292e42"}

	titleStyle    = lipgloss.NewStyle().Foreground(Accent).Bold(true)
	navStyle      = lipgloss.NewStyle().PaddingLeft(2)
	cursorStyle   = lipgloss.NewStyle().Foreground(Accent)
	selectedStyle = lipgloss.NewStyle().Foreground(Accent).Bold(true).Underline(true)
	mutedStyle    = lipgloss.NewStyle().Foreground(Muted)
	matchStyle    = lipgloss.NewStyle().Background(Match).Bold(true)
	headingStyle  = lipgloss.NewStyle().Bold(true)
	quoteStyle    = lipgloss.NewStyle().
			BorderStyle(lipgloss.NormalBorder()).
			BorderLeft(true).
			BorderForeground(Accent).
			PaddingLeft(1).
			MarginBottom(1)
	columnStyle = lipgloss.NewStyle().
			BorderStyle(lipgloss.RoundedBorder()).
			BorderForeground(Border).
			Padding(0, 1)
	aboutStyle = lipgloss.NewStyle().
			BorderStyle(lipgloss.RoundedBorder()).
			BorderForeground(Accent).
			Padding(1, 2)
)
