package catalog

import "github.com/noren-next/internal/constants"

// defaultMenu 餐厅菜单数据
func defaultMenu() []Category {
	return []Category{
		{
			ID:   constants.CategorySushi,
			Name: "Sushi",
			Items: []Item{
				{
					Number:      1,
					Name:        "Nigiri Sushi Set",
					Description: "Fresh tuna, salmon, yellowtail, and sea bream over seasoned rice",
					Price:       "$28.00",
					IsPopular:   true,
				},
				{
					Number:      2,
					Name:        "Chirashi Bowl",
					Description: "Assorted sashimi over sushi rice with seasonal vegetables",
					Price:       "$32.00",
				},
				{
					Number:      3,
					Name:        "Maki Combo",
					Description: "California roll, spicy tuna roll, and salmon avocado roll",
					Price:       "$24.00",
				},
				{
					Number:      4,
					Name:        "Omakase Selection",
					Description: "Chef's choice of 8 pieces nigiri and 1 specialty roll",
					Price:       "$45.00",
					IsPopular:   true,
				},
				{
					Number:      5,
					Name:        "Vegetarian Sushi",
					Description: "Cucumber, avocado, pickled radish, and inari sushi",
					Price:       "$22.00",
				},
				{
					Number:      6,
					Name:        "Dragon Roll",
					Description: "Eel and cucumber topped with avocado and teriyaki sauce",
					Price:       "$18.00",
				},
			},
		},
		{
			ID:   constants.CategoryRamen,
			Name: "Ramen",
			Items: []Item{
				{
					Number:      7,
					Name:        "Tonkotsu Ramen",
					Description: "Rich pork bone broth with chashu, soft-boiled egg, and green onions",
					Price:       "$16.00",
					IsPopular:   true,
				},
				{
					Number:      8,
					Name:        "Miso Ramen",
					Description: "Savory miso broth with corn, bamboo shoots, and nori",
					Price:       "$15.00",
				},
				{
					Number:      9,
					Name:        "Spicy Tantanmen",
					Description: "Sesame and chili oil broth with ground pork and vegetables",
					Price:       "$17.00",
				},
				{
					Number:      10,
					Name:        "Shoyu Ramen",
					Description: "Clear soy sauce broth with traditional toppings",
					Price:       "$14.00",
				},
				{
					Number:      11,
					Name:        "Vegetable Ramen",
					Description: "Plant-based broth with seasonal vegetables and tofu",
					Price:       "$13.00",
				},
				{
					Number:      12,
					Name:        "Seafood Ramen",
					Description: "Rich seafood broth with shrimp, scallops, and fish cake",
					Price:       "$19.00",
				},
			},
		},
		{
			ID:   constants.CategoryMochi,
			Name: "Mochi",
			Items: []Item{
				{
					Number:      13,
					Name:        "Traditional Mochi Set",
					Description: "Red bean, green tea, and black sesame flavors",
					Price:       "$12.00",
				},
				{
					Number:      14,
					Name:        "Fruit Mochi",
					Description: "Strawberry, mango, and lychee filled mochi",
					Price:       "$14.00",
					IsPopular:   true,
				},
				{
					Number:      15,
					Name:        "Ice Cream Mochi",
					Description: "Vanilla, chocolate, and green tea ice cream wrapped in mochi",
					Price:       "$10.00",
				},
				{
					Number:      16,
					Name:        "Seasonal Special",
					Description: "Chef's seasonal creation with premium ingredients",
					Price:       "$16.00",
				},
				{
					Number:      17,
					Name:        "Daifuku Assortment",
					Description: "Traditional soft mochi with sweet filling varieties",
					Price:       "$11.00",
				},
			},
		},
		{
			ID:   constants.CategoryOnigiri,
			Name: "Onigiri",
			Items: []Item{
				{
					Number:      18,
					Name:        "Salmon Onigiri",
					Description: "Grilled salmon with seasoned rice wrapped in nori",
					Price:       "$4.50",
				},
				{
					Number:      19,
					Name:        "Tuna Mayo Onigiri",
					Description: "Spicy tuna mayo filling with crispy nori",
					Price:       "$5.00",
					IsPopular:   true,
				},
				{
					Number:      20,
					Name:        "Pickled Plum Onigiri",
					Description: "Traditional umeboshi center with perfect rice texture",
					Price:       "$4.00",
				},
				{
					Number:      21,
					Name:        "Teriyaki Chicken Onigiri",
					Description: "Tender chicken teriyaki with vegetables",
					Price:       "$5.50",
				},
				{
					Number:      22,
					Name:        "Vegetable Onigiri",
					Description: "Mixed vegetables and seasoning with brown rice option",
					Price:       "$4.00",
				},
			},
		},
	}
}
