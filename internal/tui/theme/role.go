package theme

import "github.com/charmbracelet/lipgloss"

// Role is the visual part an element plays. Rendering code asks the theme
// for a role's style instead of picking colors itself.
type Role int

const (
	// Primary is ordinary content on the app background.
	Primary Role = iota
	// Header is the title bar.
	Header
	// Card is a framed panel.
	Card
	// Stats is a metric value inside a card.
	Stats
	// Accent highlights the active or selected element.
	Accent
	// Secondary is labels, hints and metadata.
	Secondary
)

var roleNames = [...]string{"primary", "header", "card", "stats", "accent", "secondary"}

func (r Role) String() string {
	if r < 0 || int(r) >= len(roleNames) {
		return "unknown"
	}
	return roleNames[r]
}

// Style returns the base style for role under t.
func (t Theme) Style(r Role) lipgloss.Style {
	base := lipgloss.NewStyle()
	switch r {
	case Header:
		return base.Bold(true).Foreground(t.AccentBright).Background(t.Surface)
	case Card:
		return base.Foreground(t.TextPrimary).Background(t.Surface).
			Border(lipgloss.RoundedBorder()).
			BorderForeground(t.Border).
			BorderBackground(t.Background)
	case Stats:
		return base.Bold(true).Foreground(t.TextPrimary).Background(t.Surface)
	case Accent:
		return base.Bold(true).Foreground(t.Accent)
	case Secondary:
		return base.Foreground(t.TextMuted)
	default:
		return base.Foreground(t.TextPrimary).Background(t.Background)
	}
}
