package catalog

import "stylecurator/internal/models"

// SeedProducts returns the demo catalog used in offline mode.
func SeedProducts() []models.Product {
	return []models.Product{
		{
			ID: "1", Name: "Classic Denim Jacket", Brand: "Levi's",
			Price: 89.99, OriginalPrice: models.Float64(120.00),
			Category: "Jackets", Subcategory: "Denim",
			Description: "Timeless denim jacket perfect for layering",
			Images:      []string{"https://images.unsplash.com/photo-1551537482-f2075a1d41f2?w=500&h=600&fit=crop"},
			Sizes:       []string{"XS", "S", "M", "L", "XL"},
			Colors:      []string{"Blue", "Black", "Light Blue"},
			Tags:        []string{"casual", "denim", "classic"},
			Rating:      models.Float64(4.5), ReviewsCount: 127, Availability: true, TrendScore: 85,
		},
		{
			ID: "2", Name: "Floral Summer Dress", Brand: "Zara",
			Price: 49.99, Category: "Dresses", Subcategory: "Summer",
			Description: "Light and airy floral dress perfect for summer",
			Images:      []string{"https://images.unsplash.com/photo-1572804013309-59a88b7e92f1?w=500&h=600&fit=crop"},
			Sizes:       []string{"XS", "S", "M", "L"},
			Colors:      []string{"Floral", "Pink", "Blue"},
			Tags:        []string{"summer", "floral", "feminine"},
			Rating:      models.Float64(4.2), ReviewsCount: 89, Availability: true, TrendScore: 92,
		},
		{
			ID: "3", Name: "Streetwear Hoodie", Brand: "Nike",
			Price: 75.00, Category: "Hoodies", Subcategory: "Streetwear",
			Description: "Comfortable oversized hoodie with urban style",
			Images:      []string{"https://images.unsplash.com/photo-1556821840-3a63f95609a7?w=500&h=600&fit=crop"},
			Sizes:       []string{"S", "M", "L", "XL", "XXL"},
			Colors:      []string{"Black", "Grey", "White", "Red"},
			Tags:        []string{"streetwear", "comfort", "urban"},
			Rating:      models.Float64(4.7), ReviewsCount: 203, Availability: true, TrendScore: 78,
		},
		{
			ID: "4", Name: "Leather Ankle Boots", Brand: "Dr. Martens",
			Price: 159.99, Category: "Shoes", Subcategory: "Boots",
			Description: "Durable leather boots with iconic style",
			Images:      []string{"https://images.unsplash.com/photo-1549298916-b41d501d3772?w=500&h=600&fit=crop"},
			Sizes:       []string{"6", "7", "8", "9", "10", "11"},
			Colors:      []string{"Black", "Brown", "Cherry Red"},
			Tags:        []string{"boots", "leather", "durable"},
			Rating:      models.Float64(4.8), ReviewsCount: 156, Availability: true, TrendScore: 73,
		},
		{
			ID: "5", Name: "Silk Blouse", Brand: "H&M",
			Price: 39.99, Category: "Tops", Subcategory: "Blouses",
			Description: "Elegant silk blouse for professional wear",
			Images:      []string{"https://images.unsplash.com/photo-1564257577-6b0b3e6b9d4e?w=500&h=600&fit=crop"},
			Sizes:       []string{"XS", "S", "M", "L", "XL"},
			Colors:      []string{"White", "Black", "Navy", "Blush"},
			Tags:        []string{"professional", "silk", "elegant"},
			Rating:      models.Float64(4.3), ReviewsCount: 94, Availability: true, TrendScore: 67,
		},
		{
			ID: "6", Name: "Slim Fit Chinos", Brand: "Uniqlo",
			Price: 39.90, OriginalPrice: models.Float64(49.90), Category: "Bottoms", Subcategory: "Trousers",
			Description: "Stretch cotton chinos for everyday wear",
			Sizes:       []string{"28", "30", "32", "34", "36"},
			Colors:      []string{"Beige", "Navy", "Black"},
			Tags:        []string{"casual", "work", "cotton"},
			Rating:      models.Float64(4.4), ReviewsCount: 312, Availability: true, TrendScore: 64,
		},
		{
			ID: "7", Name: "White Leather Sneakers", Brand: "Adidas",
			Price: 95.00, Category: "Shoes", Subcategory: "Sneakers",
			Description: "Minimal low-top sneakers in smooth leather",
			Images:      []string{"https://images.unsplash.com/photo-1549298916-f52d724204b4?w=500&h=600&fit=crop"},
			Sizes:       []string{"7", "8", "9", "10", "11", "12"},
			Colors:      []string{"White"},
			Tags:        []string{"minimalist", "sneakers", "leather", "everyday"},
			Rating:      models.Float64(4.6), ReviewsCount: 421, Availability: true, TrendScore: 88,
		},
		{
			ID: "8", Name: "Wool Blazer", Brand: "Massimo Dutti",
			Price: 229.00, OriginalPrice: models.Float64(299.00), Category: "Jackets", Subcategory: "Blazers",
			Description: "Tailored wool blazer with notch lapels",
			Sizes:       []string{"S", "M", "L", "XL"},
			Colors:      []string{"Charcoal", "Navy"},
			Tags:        []string{"formal", "work", "wool", "tailored"},
			Rating:      models.Float64(4.9), ReviewsCount: 58, Availability: true, TrendScore: 71,
		},
		{
			ID: "9", Name: "Graphic Tee", Brand: "Stussy",
			Price: 45.00, Category: "Tops", Subcategory: "T-Shirts",
			Description: "Heavyweight cotton tee with screen-printed logo",
			Images:      []string{"https://images.unsplash.com/photo-1521572163474-6864f9cf17ab?w=500&h=600&fit=crop"},
			Sizes:       []string{"S", "M", "L", "XL"},
			Colors:      []string{"Black", "White", "Green"},
			Tags:        []string{"streetwear", "graphic"},
			ReviewsCount: 0, Availability: true, TrendScore: 81,
		},
		{
			ID: "10", Name: "High-Rise Mom Jeans", Brand: "Levi's",
			Price: 79.50, Category: "Bottoms", Subcategory: "Denim",
			Description: "Vintage-inspired high-rise jeans",
			Images:      []string{"https://images.unsplash.com/photo-1541099649105-f69ad21f3246?w=500&h=600&fit=crop"},
			Sizes:       []string{"24", "25", "26", "27", "28", "29", "30"},
			Colors:      []string{"Light Blue", "Blue"},
			Tags:        []string{"vintage", "denim", "casual"},
			Rating:      models.Float64(4.1), ReviewsCount: 240, Availability: true, TrendScore: 76,
		},
		{
			ID: "11", Name: "Crossbody Bag", Brand: "Coach",
			Price: 195.00, OriginalPrice: models.Float64(195.00), Category: "Accessories", Subcategory: "Bags",
			Description: "Pebbled leather crossbody with adjustable strap",
			Images:      []string{"https://images.unsplash.com/photo-1548036328-c9fa89d128fa?w=500&h=600&fit=crop"},
			Colors:      []string{"Brown", "Black", "Red"},
			Tags:        []string{"leather", "everyday"},
			Rating:      models.Float64(4.7), ReviewsCount: 133, Availability: true, TrendScore: 69,
		},
		{
			ID: "12", Name: "Boho Maxi Skirt", Brand: "Free People",
			Price: 68.00, Category: "Bottoms", Subcategory: "Skirts",
			Description: "Tiered maxi skirt with paisley print",
			Images:      []string{"https://images.unsplash.com/photo-1583496661160-fb5886a0aaaa?w=500&h=600&fit=crop"},
			Sizes:       []string{"XS", "S", "M", "L"},
			Colors:      []string{"Rust", "Cream"},
			Tags:        []string{"bohemian", "summer", "festival"},
			Rating:      models.Float64(4.0), ReviewsCount: 47, Availability: true, TrendScore: 59,
		},
	}
}
