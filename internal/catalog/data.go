package catalog

// Static storefront data. Image URLs point at the stock photo CDN used
// by the frontend. Discounts stay within 0–30 percent.

var categories = map[string]Category{
	"aesthetic": {
		Name:        "Aesthetic Products",
		Theme:       "linear-gradient(135deg, #0f4c75 0%, #3282b8 50%, #bbe1fa 100%)",
		Description: "Luxury jewelry, watches, chains, bracelets, and glasses",
	},
	"clothes": {
		Name:        "Designer Clothes",
		Theme:       "linear-gradient(135deg, #3c1810 0%, #6b2c0e 50%, #a0652d 100%)",
		Description: "Premium fashion and designer apparel",
	},
	"social": {
		Name:        "Social Media Growth",
		Theme:       "linear-gradient(135deg, #6a4c93 0%, #9a8c98 50%, #f2e9e4 100%)",
		Description: "Instagram accounts and social media services",
	},
}

const (
	imgJewelry1 = "https://images.unsplash.com/photo-1617038220319-276d3cfab638?crop=entropy&cs=srgb&fm=jpg&ixid=M3w3NDQ2NDF8MHwxfHNlYXJjaHwxfHxqZXdlbHJ5fGVufDB8fHx8MTc1NDM5NTQ4NXww&ixlib=rb-4.1.0&q=85"
	imgJewelry2 = "https://images.unsplash.com/photo-1616837874254-8d5aaa63e273?crop=entropy&cs=srgb&fm=jpg&ixid=M3w3NDQ2NDF8MHwxfHNlYXJjaHwyfHxqZXdlbHJ5fGVufDB8fHx8MTc1NDM5NTQ4NXww&ixlib=rb-4.1.0&q=85"
	imgJewelry3 = "https://images.unsplash.com/photo-1602173574767-37ac01994b2a?crop=entropy&cs=srgb&fm=jpg&ixid=M3w3NDQ2NDF8MHwxfHNlYXJjaHwzfHxqZXdlbHJ5fGVufDB8fHx8MTc1NDM5NTQ4NXww&ixlib=rb-4.1.0&q=85"
	imgLuxury1  = "https://images.pexels.com/photos/2227774/pexels-photo-2227774.jpeg"
	imgLuxury2  = "https://images.unsplash.com/photo-1528154291023-a6525fabe5b4?crop=entropy&cs=srgb&fm=jpg&ixid=M3w3NTY2NzV8MHwxfHNlYXJjaHwxfHxsdXh1cnl8ZW58MHx8fHwxNzU0Mzk1NDc5fDA&ixlib=rb-4.1.0&q=85"
	imgLuxury3  = "https://images.unsplash.com/photo-1541239370886-851049f91487?crop=entropy&cs=srgb&fm=jpg&ixid=M3w3NTY2NzV8MHwxfHNlYXJjaHwzfHxsdXh1cnl8ZW58MHx8fHwxNzU0Mzk1NDc5fDA&ixlib=rb-4.1.0&q=85"
)

var products = map[string][]entry{
	"aesthetic": {
		{ID: "aes_001", Name: "Diamond Eternity Ring", OriginalPrice: 185.50, Discount: 25, Image: imgJewelry1},
		{ID: "aes_002", Name: "Gold Cuban Link Chain", OriginalPrice: 150.00, Discount: 15, Image: imgJewelry2},
		{ID: "aes_003", Name: "Luxury Watch Collection", OriginalPrice: 199.99, Discount: 20, Image: imgJewelry3},
		{ID: "aes_004", Name: "Pearl Bracelet Set", OriginalPrice: 89.99, Discount: 10, Image: imgJewelry1},
		{ID: "aes_005", Name: "Designer Sunglasses", OriginalPrice: 120.00, Discount: 30, Image: imgJewelry2},
		{ID: "aes_006", Name: "Silver Pendant Necklace", OriginalPrice: 75.50, Discount: 18, Image: imgJewelry3},
		{ID: "aes_007", Name: "Rose Gold Earrings", OriginalPrice: 95.00, Discount: 22, Image: imgJewelry1},
		{ID: "aes_008", Name: "Luxury Cufflinks", OriginalPrice: 110.00, Discount: 12, Image: imgJewelry2},
		{ID: "aes_009", Name: "Tennis Bracelet", OriginalPrice: 175.00, Discount: 28, Image: imgJewelry3},
		{ID: "aes_010", Name: "Sapphire Ring", OriginalPrice: 165.99, Discount: 15, Image: imgJewelry1},
	},
	"clothes": {
		{ID: "clo_001", Name: "Designer Silk Dress", OriginalPrice: 180.00, Discount: 20, Image: imgLuxury1},
		{ID: "clo_002", Name: "Luxury Leather Jacket", OriginalPrice: 195.50, Discount: 25, Image: imgLuxury2},
		{ID: "clo_003", Name: "Cashmere Sweater", OriginalPrice: 145.00, Discount: 18, Image: imgLuxury3},
		{ID: "clo_004", Name: "Premium Denim Jeans", OriginalPrice: 120.00, Discount: 15, Image: imgLuxury1},
		{ID: "clo_005", Name: "Italian Suit", OriginalPrice: 199.99, Discount: 30, Image: imgLuxury2},
		{ID: "clo_006", Name: "Designer Handbag", OriginalPrice: 175.00, Discount: 22, Image: imgLuxury3},
		{ID: "clo_007", Name: "Luxury Sneakers", OriginalPrice: 135.50, Discount: 10, Image: imgLuxury1},
		{ID: "clo_008", Name: "Silk Scarf Collection", OriginalPrice: 85.00, Discount: 20, Image: imgLuxury2},
		{ID: "clo_009", Name: "Premium Wool Coat", OriginalPrice: 189.00, Discount: 25, Image: imgLuxury3},
		{ID: "clo_010", Name: "Designer Evening Gown", OriginalPrice: 199.50, Discount: 28, Image: imgLuxury1},
	},
	"social": {
		{ID: "soc_001", Name: "Instagram Account - 15K Followers (Verified)", OriginalPrice: 150.00, Discount: 0, Image: imgLuxury2, IsAccount: true, Verified: true},
		{ID: "soc_002", Name: "Instagram Account - 15K Followers (Verified)", OriginalPrice: 150.00, Discount: 0, Image: imgLuxury3, IsAccount: true, Verified: true},
		{ID: "soc_003", Name: "Instagram Account - 10K Followers", OriginalPrice: 120.00, Discount: 10, Image: imgLuxury1, IsAccount: true},
		{ID: "soc_004", Name: "Instagram Account - 10K Followers", OriginalPrice: 120.00, Discount: 10, Image: imgLuxury2, IsAccount: true},
		{ID: "soc_005", Name: "Instagram Account - 10K Followers", OriginalPrice: 115.00, Discount: 15, Image: imgLuxury3, IsAccount: true},
		{ID: "soc_006", Name: "Instagram Account - 10K Followers", OriginalPrice: 118.50, Discount: 12, Image: imgLuxury1, IsAccount: true},
		{ID: "soc_007", Name: "Instagram Account - 10K Followers", OriginalPrice: 125.00, Discount: 8, Image: imgLuxury2, IsAccount: true},
		{ID: "soc_008", Name: "Instagram Account - 10K Followers", OriginalPrice: 110.00, Discount: 18, Image: imgLuxury3, IsAccount: true},
		{ID: "soc_009", Name: "Instagram Account - 10K Followers", OriginalPrice: 122.00, Discount: 20, Image: imgLuxury1, IsAccount: true},
		{ID: "soc_010", Name: "Instagram Account - 10K Followers", OriginalPrice: 128.00, Discount: 15, Image: imgLuxury2, IsAccount: true},
	},
}
