package catalog

import "mix-store/internal/model"

func price(v float64) *float64 { return &v }

// DefaultProducts returns the built-in storefront inventory used when no seed
// file is configured.
func DefaultProducts() []model.Product {
	return []model.Product{
		{
			ID:          "p1",
			Name:        "Air Velocity Nitro",
			Brand:       "Nike",
			Price:       180,
			Description: "Experience the ultimate in speed and comfort with the Air Velocity Nitro. Designed for the modern athlete, these sneakers feature breathable mesh and responsive cushioning.",
			Images:      []string{"https://images.unsplash.com/photo-1542291026-7eec264c27ff?q=80&w=1000&auto=format&fit=crop"},
			Sizes:       []int{7, 8, 9, 10, 11, 12},
			Category:    "Running",
			Stock:       25,
			Featured:    true,
		},
		{
			ID:          "p2",
			Name:        "Restorative Hair Mask",
			Brand:       "Act+Acre",
			Price:       45,
			Description: "A deeply nourishing treatment that repairs damaged hair and restores shine. Plant-based and cold-processed for maximum potency.",
			Images:      []string{"https://images.unsplash.com/photo-1629198688000-71f23e745b6e?q=80&w=1000&auto=format&fit=crop"},
			Sizes:       []int{100, 200}, // ml
			Category:    "Haircare",
			Stock:       40,
			Featured:    true,
		},
		{
			ID:          "p3",
			Name:        "Amber Glow Serum",
			Brand:       "Mix Lab",
			Price:       65,
			Description: "Rich in antioxidants, this facial oil hydrates and illuminates your complexion. Housed in UV-protective amber glass.",
			Images:      []string{"https://images.unsplash.com/photo-1620916566398-39f1143ab7be?q=80&w=1000&auto=format&fit=crop"},
			Sizes:       []int{30, 50}, // ml
			Category:    "Skincare",
			Stock:       15,
		},
		{
			ID:          "p4",
			Name:        "Hydra-Cool Gel",
			Brand:       "Mix Lab",
			Price:       38,
			Description: "A refreshing gel moisturizer that instantly soothes and hydrates thirsty skin. Perfect for daily use.",
			Images:      []string{"https://images.unsplash.com/photo-1611930022073-b7a4ba5fcccd?q=80&w=1000&auto=format&fit=crop"},
			Sizes:       []int{50}, // ml
			Category:    "Skincare",
			Stock:       60,
		},
		{
			ID:            "p5",
			Name:          "Violet Therapy Set",
			Brand:         "Luxe Care",
			Price:         120,
			OriginalPrice: price(150),
			Description:   "Complete color-correcting haircare system. Keeps blonde and silver hair bright and brass-free.",
			Images:        []string{"https://images.unsplash.com/photo-1620917670396-980b6e98c76b?q=80&w=1000&auto=format&fit=crop"},
			Sizes:         []int{1}, // set
			Category:      "Haircare",
			Stock:         8,
		},
		{
			ID:          "p6",
			Name:        "Daily Essentials Kit",
			Brand:       "Glossier",
			Price:       85,
			Description: "The ultimate \"no-makeup\" makeup set. Includes cleanser, priming moisturizer, and lip balm.",
			Images:      []string{"https://images.unsplash.com/photo-1556228720-1987aa6c5895?q=80&w=1000&auto=format&fit=crop"},
			Sizes:       []int{1},
			Category:    "Makeup",
			Stock:       25,
			Featured:    true,
		},
		{
			ID:          "p7",
			Name:        "The Body Lotion",
			Brand:       "Nécessaire",
			Price:       28,
			Description: "A fast-absorbing, fragrance-free daily moisturizer with Niacinamide and Peptides. Strengthens skin barrier.",
			Images:      []string{"https://images.unsplash.com/photo-1608248597279-f99d160bfbc8?q=80&w=1000&auto=format&fit=crop"},
			Sizes:       []int{200},
			Category:    "Body",
			Stock:       100,
		},
		{
			ID:          "p8",
			Name:        "Balance & Hydrate Set",
			Brand:       "The Ordinary",
			Price:       35,
			Description: "Clinical formulations with integrity. A simple, effective regimen for balanced hydration.",
			Images:      []string{"https://images.unsplash.com/photo-1556229010-6c3f2c9ca5f8?q=80&w=1000&auto=format&fit=crop"},
			Sizes:       []int{1},
			Category:    "Skincare",
			Stock:       55,
		},
		{
			ID:          "p9",
			Name:        "Relief Body Oil",
			Brand:       "Mender",
			Price:       52,
			Description: "A luxurious botanical oil blend designed to soothe muscles and nourish skin post-workout.",
			Images:      []string{"https://images.unsplash.com/photo-1601049541289-9b1b7bbbfe19?q=80&w=1000&auto=format&fit=crop"},
			Sizes:       []int{100},
			Category:    "Body",
			Stock:       12,
		},
		{
			ID:          "p10",
			Name:        "Luxe Lifestyle Edit",
			Brand:       "Mix Curated",
			Price:       250,
			Description: "Our editors picks: A premium selection of skincare, fragrance, and accessories for the modern woman.",
			Images:      []string{"https://images.unsplash.com/photo-1552664152-320d3f114227?q=80&w=1000&auto=format&fit=crop"},
			Sizes:       []int{1},
			Category:    "Lifestyle",
			Stock:       5,
			Featured:    true,
		},
	}
}
