package models

import "time"

// Outfit is a generated bundle of up to three products from distinct categories.
type Outfit struct {
	ID          string    `json:"id"`
	Name        string    `json:"name"`
	Occasion    Occasion  `json:"occasion"`
	StyleType   StyleType `json:"style_type"`
	Products    []Product `json:"products"`
	TotalPrice  float64   `json:"total_price"`
	StyleScore  int       `json:"style_score"` // cosmetic, drawn at random
	Description string    `json:"description"`
}

// Recommendation is the result of one generation run.
type Recommendation struct {
	ID          string           `json:"id"`
	Preferences StylePreferences `json:"preferences"`
	Outfits     []Outfit         `json:"outfits"`
	GeneratedAt time.Time        `json:"generated_at"`
}

// StyleOption describes a style type for pickers.
type StyleOption struct {
	ID          StyleType `json:"id"`
	Name        string    `json:"name"`
	Description string    `json:"description"`
}

// OccasionOption describes an occasion for pickers.
type OccasionOption struct {
	ID   Occasion `json:"id"`
	Name string   `json:"name"`
}

// ColorOption is a selectable preferred color.
type ColorOption struct {
	Name  string `json:"name"`
	Value string `json:"value"`
	Hex   string `json:"hex"`
}

// StyleOptions lists the style types in display order.
var StyleOptions = []StyleOption{
	{ID: StyleCasual, Name: "Casual", Description: "Comfortable everyday wear"},
	{ID: StyleFormal, Name: "Formal", Description: "Professional and elegant"},
	{ID: StyleStreetwear, Name: "Streetwear", Description: "Urban and trendy"},
	{ID: StyleBohemian, Name: "Bohemian", Description: "Free-spirited and artistic"},
	{ID: StyleMinimalist, Name: "Minimalist", Description: "Clean and simple"},
	{ID: StyleVintage, Name: "Vintage", Description: "Classic and timeless"},
}

// OccasionOptions lists the occasions in display order.
var OccasionOptions = []OccasionOption{
	{ID: OccasionEveryday, Name: "Everyday"},
	{ID: OccasionWork, Name: "Work"},
	{ID: OccasionParty, Name: "Party"},
	{ID: OccasionDate, Name: "Date"},
	{ID: OccasionTravel, Name: "Travel"},
	{ID: OccasionWorkout, Name: "Workout"},
}

// ColorOptions lists the colors a shopper can prefer.
var ColorOptions = []ColorOption{
	{Name: "Black", Value: "black", Hex: "#000000"},
	{Name: "White", Value: "white", Hex: "#ffffff"},
	{Name: "Gray", Value: "gray", Hex: "#6b7280"},
	{Name: "Blue", Value: "blue", Hex: "#3b82f6"},
	{Name: "Red", Value: "red", Hex: "#ef4444"},
	{Name: "Green", Value: "green", Hex: "#10b981"},
	{Name: "Pink", Value: "pink", Hex: "#ec4899"},
	{Name: "Purple", Value: "purple", Hex: "#8b5cf6"},
	{Name: "Yellow", Value: "yellow", Hex: "#f59e0b"},
	{Name: "Brown", Value: "brown", Hex: "#a3a3a3"},
}

// CategoryOptions lists the categories a shopper can prefer.
var CategoryOptions = []string{"Tops", "Bottoms", "Dresses", "Shoes", "Accessories", "Jackets", "Hoodies"}

// StyleName returns the display name of a style type, or the raw value when unknown.
func StyleName(style StyleType) string {
	for _, opt := range StyleOptions {
		if opt.ID == style {
			return opt.Name
		}
	}
	return string(style)
}
