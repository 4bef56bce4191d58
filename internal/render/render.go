package render

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"stylecurator/internal/models"
	"stylecurator/internal/views"
)

// Grid renders the product listing, three cards per row.
func (r *Renderer) Grid(grid views.GridView) string {
	title := r.styles.Title.Render(fmt.Sprintf("Discover Products (%d)", grid.Count))
	if grid.Notice != "" {
		return lipgloss.JoinVertical(lipgloss.Left, title, r.styles.Notice.Render(grid.Notice))
	}
	if grid.Count == 0 {
		return lipgloss.JoinVertical(lipgloss.Left, title,
			r.styles.Name.Render("No products found"),
			r.styles.Subtitle.Render("Try adjusting your filters or search terms"))
	}

	var rows []string
	for start := 0; start < len(grid.Products); start += 3 {
		end := min(start+3, len(grid.Products))
		cards := make([]string, 0, end-start)
		for _, card := range grid.Products[start:end] {
			cards = append(cards, r.card(card))
		}
		rows = append(rows, lipgloss.JoinHorizontal(lipgloss.Top, cards...))
	}
	return lipgloss.JoinVertical(lipgloss.Left, append([]string{title}, rows...)...)
}

func (r *Renderer) card(c views.ProductCard) string {
	lines := []string{
		r.styles.Name.Render(c.Name),
		r.styles.Brand.Render(c.Brand + " · " + c.Category),
		r.price(c.Price),
		r.styles.Rating.Render(fmt.Sprintf("★ %s (%d)", c.RatingText, c.ReviewsCount)) +
			r.styles.Muted.Render(fmt.Sprintf("  trend %d", c.TrendScore)),
		r.styles.Tag.Render(r.preview(c.Tags, " ", "more")),
		"Sizes: " + r.preview(c.Sizes, " ", ""),
		"Colors: " + r.preview(c.Colors, ", ", ""),
		r.styles.Muted.Render("id " + c.ID),
	}
	return r.styles.Card.Render(strings.Join(lines, "\n"))
}

// Detail renders a product page with the current selections marked.
func (r *Renderer) Detail(d views.DetailView) string {
	p := d.Product
	lines := []string{
		r.styles.Brand.Render(strings.ToUpper(p.Brand)),
		r.styles.Name.Render(p.Name),
		r.price(d.Price),
		r.styles.Rating.Render(fmt.Sprintf("★ %s (%d reviews)", d.RatingText, p.ReviewsCount)) +
			r.styles.Muted.Render(fmt.Sprintf("  trend score %d", p.TrendScore)),
		"",
		"Image: " + d.Image,
	}
	if n := len(d.Thumbnails); n > 1 {
		lines = append(lines, r.styles.Muted.Render(fmt.Sprintf("image %d of %d", d.ImageIndex+1, n)))
	}
	if p.Description != "" {
		lines = append(lines, "", p.Description)
	}
	if len(p.Sizes) > 0 {
		lines = append(lines, "", "Size:  "+r.choices(p.Sizes, d.SelectedSize))
	}
	if len(p.Colors) > 0 {
		lines = append(lines, "Color: "+r.choices(p.Colors, d.SelectedColor))
	}
	lines = append(lines, fmt.Sprintf("Quantity: %d", d.Quantity))
	if len(p.Tags) > 0 {
		lines = append(lines, "", r.styles.Tag.Render(strings.Join(p.Tags, " ")))
	}
	return r.styles.Card.Render(strings.Join(lines, "\n"))
}

func (r *Renderer) choices(values []string, selected string) string {
	out := make([]string, len(values))
	for i, v := range values {
		if v == selected {
			out[i] = r.styles.Selected.Render("[" + v + "]")
		} else {
			out[i] = v
		}
	}
	return strings.Join(out, " ")
}

// Trending renders the ranked trending list followed by its stats.
func (r *Renderer) Trending(t views.TrendingView) string {
	title := r.styles.Title.Render("Trending Now")
	if t.Notice != "" {
		return lipgloss.JoinVertical(lipgloss.Left, title, r.styles.Notice.Render(t.Notice))
	}

	lines := make([]string, 0, len(t.Products))
	for _, p := range t.Products {
		lines = append(lines, fmt.Sprintf("%s %s %s  %s  %s  %s",
			r.styles.Score.Render(fmt.Sprintf("#%d", p.Rank)),
			r.styles.Name.Render(p.Name),
			r.styles.Brand.Render(p.Brand),
			r.price(p.Price),
			r.styles.Rating.Render("★ "+p.RatingText),
			r.styles.Tag.Render(r.preview(p.Tags, " ", "more")),
		))
	}
	stats := r.styles.Muted.Render(fmt.Sprintf("Total trend score %d · Total reviews %d · Highly rated %d",
		t.Stats.TotalTrendScore, t.Stats.TotalReviews, t.Stats.HighlyRated))
	return lipgloss.JoinVertical(lipgloss.Left, title, strings.Join(lines, "\n"), "", stats)
}

// Recommendation renders each generated outfit as a card.
func (r *Renderer) Recommendation(rec *models.Recommendation) string {
	title := r.styles.Title.Render("Your Personalized Outfits")
	if rec == nil || len(rec.Outfits) == 0 {
		return lipgloss.JoinVertical(lipgloss.Left, title,
			r.styles.Subtitle.Render("No outfits could be generated. Try adjusting your preferences."))
	}

	cards := make([]string, 0, len(rec.Outfits))
	for _, outfit := range rec.Outfits {
		lines := []string{
			r.styles.Name.Render(outfit.Name) + "  " + r.styles.Score.Render(fmt.Sprintf("%d%% match", outfit.StyleScore)),
			r.styles.Subtitle.Render(outfit.Description),
		}
		for _, p := range outfit.Products {
			lines = append(lines, fmt.Sprintf("  %s %s  %s", p.Name, r.styles.Brand.Render(p.Brand), money(p.Price, p.Currency)))
		}
		lines = append(lines, r.styles.Price.Render("Total "+money(outfit.TotalPrice, "")))
		cards = append(cards, r.styles.Card.Render(strings.Join(lines, "\n")))
	}
	return lipgloss.JoinVertical(lipgloss.Left, append([]string{title}, cards...)...)
}
