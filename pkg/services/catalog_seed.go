package services

import "shopmate-api/pkg/models"

// DefaultSeedCatalog is the built-in product list used when no catalog
// file is configured. Prices are whole rupees.
func DefaultSeedCatalog() []models.Product {
	return []models.Product{
		{
			ID: "p1", Name: "Classic Blue Jeans", Category: "clothing", Subcategory: "jeans",
			Color: "blue", Price: 1299, OriginalPrice: 1999, Image: "https://images.shopmate.dev/p1.jpg",
			Description: "Slim-fit stretch denim with a classic five-pocket design.",
			Rating:      4.3, Reviews: 212, InStock: true, Brand: "DenimCo",
			Sizes: []string{"28", "30", "32", "34"}, EcoFriendly: false, Discount: 35, Source: "seed",
		},
		{
			ID: "p2", Name: "Premium Blue Denim Jeans", Category: "clothing", Subcategory: "jeans",
			Color: "blue", Price: 1899, OriginalPrice: 2499, Image: "https://images.shopmate.dev/p2.jpg",
			Description: "Premium selvedge denim, tapered cut.",
			Rating:      4.6, Reviews: 148, InStock: true, Brand: "UrbanStyle",
			Sizes: []string{"30", "32", "34", "36"}, EcoFriendly: false, Discount: 24, Source: "seed",
		},
		{
			ID: "p3", Name: "Black Skinny Jeans", Category: "clothing", Subcategory: "jeans",
			Color: "black", Price: 1499, OriginalPrice: 1799, Image: "https://images.shopmate.dev/p3.jpg",
			Description: "High-rise skinny jeans in washed black.",
			Rating:      4.1, Reviews: 96, InStock: true, Brand: "DenimCo",
			Sizes: []string{"26", "28", "30", "32"}, EcoFriendly: false, Discount: 17, Source: "seed",
		},
		{
			ID: "p4", Name: "White Running Sneakers", Category: "footwear", Subcategory: "sneakers",
			Color: "white", Price: 2499, OriginalPrice: 3499, Image: "https://images.shopmate.dev/p4.jpg",
			Description: "Lightweight mesh runners with cushioned sole.",
			Rating:      4.5, Reviews: 321, InStock: true, Brand: "StrideMax",
			Sizes: []string{"7", "8", "9", "10", "11"}, EcoFriendly: false, Discount: 29, Source: "seed",
		},
		{
			ID: "p5", Name: "Eco Canvas Sneakers", Category: "footwear", Subcategory: "sneakers",
			Color: "green", Price: 1799, OriginalPrice: 1999, Image: "https://images.shopmate.dev/p5.jpg",
			Description: "Organic canvas upper, recycled rubber sole.",
			Rating:      4.2, Reviews: 87, InStock: true, Brand: "EcoWear",
			Sizes: []string{"6", "7", "8", "9"}, EcoFriendly: true, Discount: 10, Source: "seed",
		},
		{
			ID: "p6", Name: "Red Bomber Jacket", Category: "clothing", Subcategory: "jackets",
			Color: "red", Price: 3299, OriginalPrice: 4999, Image: "https://images.shopmate.dev/p6.jpg",
			Description: "Water-resistant bomber with ribbed cuffs.",
			Rating:      4.4, Reviews: 142, InStock: true, Brand: "UrbanStyle",
			Sizes: []string{"M", "L", "XL"}, EcoFriendly: false, Discount: 34, Source: "seed",
		},
		{
			ID: "p7", Name: "Black Leather Jacket", Category: "clothing", Subcategory: "jackets",
			Color: "black", Price: 5999, OriginalPrice: 7999, Image: "https://images.shopmate.dev/p7.jpg",
			Description: "Full-grain leather biker jacket.",
			Rating:      4.7, Reviews: 203, InStock: false, Brand: "RoadWorn",
			Sizes: []string{"S", "M", "L", "XL"}, EcoFriendly: false, Discount: 25, Source: "seed",
		},
		{
			ID: "p8", Name: "Organic Cotton T-Shirt", Category: "clothing", Subcategory: "tshirts",
			Color: "white", Price: 599, OriginalPrice: 799, Image: "https://images.shopmate.dev/p8.jpg",
			Description: "100% organic cotton crew-neck tee.",
			Rating:      4.0, Reviews: 412, InStock: true, Brand: "EcoWear",
			Sizes: []string{"S", "M", "L", "XL", "XXL"}, EcoFriendly: true, Discount: 25, Source: "seed",
		},
		{
			ID: "p9", Name: "Blue Graphic T-Shirt", Category: "clothing", Subcategory: "tshirts",
			Color: "blue", Price: 699, OriginalPrice: 999, Image: "https://images.shopmate.dev/p9.jpg",
			Description: "Soft cotton tee with a retro print.",
			Rating:      3.9, Reviews: 156, InStock: true, Brand: "UrbanStyle",
			Sizes: []string{"S", "M", "L"}, EcoFriendly: false, Discount: 30, Source: "seed",
		},
		{
			ID: "p10", Name: "Yellow Tote Bag", Category: "accessories", Subcategory: "bags",
			Color: "yellow", Price: 899, OriginalPrice: 1199, Image: "https://images.shopmate.dev/p10.jpg",
			Description: "Spacious canvas tote with inner pocket.",
			Rating:      4.1, Reviews: 64, InStock: true, Brand: "EcoWear",
			Sizes: []string{"One Size"}, EcoFriendly: true, Discount: 25, Source: "seed",
		},
		{
			ID: "p11", Name: "Brown Leather Office Bag", Category: "accessories", Subcategory: "bags",
			Color: "brown", Price: 4499, OriginalPrice: 5999, Image: "https://images.shopmate.dev/p11.jpg",
			Description: "Structured laptop bag in tan leather.",
			Rating:      4.6, Reviews: 98, InStock: true, Brand: "RoadWorn",
			Sizes: []string{"One Size"}, EcoFriendly: false, Discount: 25, Source: "seed",
		},
		{
			ID: "p12", Name: "Black Formal Shoes", Category: "footwear", Subcategory: "shoes",
			Color: "black", Price: 2999, OriginalPrice: 3999, Image: "https://images.shopmate.dev/p12.jpg",
			Description: "Classic Oxford lace-ups in polished leather.",
			Rating:      4.3, Reviews: 177, InStock: true, Brand: "StrideMax",
			Sizes: []string{"7", "8", "9", "10"}, EcoFriendly: false, Discount: 25, Source: "seed",
		},
	}
}
