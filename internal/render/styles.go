// Package render draws the product views for the terminal.
package render

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"

	"stylecurator/internal/views"
)

var (
	colorRose    = lipgloss.Color("#E11D48")
	colorPlum    = lipgloss.Color("#7C3AED")
	colorInk     = lipgloss.Color("#1F2937")
	colorGold    = lipgloss.Color("#F59E0B")
	colorSuccess = lipgloss.Color("#10B981")
	colorMuted   = lipgloss.Color("#9CA3AF")
)

// Styles holds the lipgloss styles used by every renderer.
type Styles struct {
	Title    lipgloss.Style
	Subtitle lipgloss.Style
	Card     lipgloss.Style
	Name     lipgloss.Style
	Brand    lipgloss.Style
	Price    lipgloss.Style
	Original lipgloss.Style
	Discount lipgloss.Style
	Rating   lipgloss.Style
	Tag      lipgloss.Style
	Muted    lipgloss.Style
	Notice   lipgloss.Style
	Score    lipgloss.Style
	Selected lipgloss.Style
}

// DefaultStyles returns the default palette.
func DefaultStyles() Styles {
	return Styles{
		Title:    lipgloss.NewStyle().Foreground(colorPlum).Bold(true).MarginBottom(1),
		Subtitle: lipgloss.NewStyle().Foreground(colorMuted).Italic(true),
		Card: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(colorMuted).
			Padding(0, 1),
		Name:     lipgloss.NewStyle().Foreground(colorInk).Bold(true),
		Brand:    lipgloss.NewStyle().Foreground(colorMuted),
		Price:    lipgloss.NewStyle().Foreground(colorSuccess).Bold(true),
		Original: lipgloss.NewStyle().Foreground(colorMuted).Strikethrough(true),
		Discount: lipgloss.NewStyle().Foreground(colorRose).Bold(true),
		Rating:   lipgloss.NewStyle().Foreground(colorGold),
		Tag:      lipgloss.NewStyle().Foreground(colorPlum),
		Muted:    lipgloss.NewStyle().Foreground(colorMuted),
		Notice:   lipgloss.NewStyle().Foreground(colorRose).Italic(true),
		Score:    lipgloss.NewStyle().Foreground(colorRose).Bold(true),
		Selected: lipgloss.NewStyle().Foreground(colorPlum).Bold(true).Underline(true),
	}
}

// Renderer turns views into terminal text.
type Renderer struct {
	styles Styles
}

// New returns a Renderer with the default styles.
func New() *Renderer {
	return &Renderer{styles: DefaultStyles()}
}

// WithStyles returns a Renderer using s.
func WithStyles(s Styles) *Renderer {
	return &Renderer{styles: s}
}

func money(amount float64, currency string) string {
	if currency == "" || currency == "USD" {
		return fmt.Sprintf("$%.2f", amount)
	}
	return fmt.Sprintf("%.2f %s", amount, currency)
}

func (r *Renderer) price(p views.Price) string {
	out := r.styles.Price.Render(money(p.Amount, p.Currency))
	if p.OriginalAmount != nil {
		out += " " + r.styles.Original.Render(money(*p.OriginalAmount, p.Currency))
		out += " " + r.styles.Discount.Render(p.DiscountLabel)
	}
	return out
}

func (r *Renderer) preview(p views.Preview, sep, suffix string) string {
	out := ""
	for i, item := range p.Items {
		if i > 0 {
			out += sep
		}
		out += item
	}
	if more := p.MoreLabel(suffix); more != "" {
		out += " " + r.styles.Muted.Render(more)
	}
	return out
}
