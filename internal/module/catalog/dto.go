package catalog

type AddItemRequest struct {
	Title       string `form:"title"`
	Description string `form:"description"`
	Price       string `form:"price"`
	Category    string `form:"category"`
}

type ContactRequest struct {
	Name    string `form:"name"`
	Email   string `form:"email"`
	Message string `form:"message"`
}

// Categories 发布页可选分类
var Categories = []string{"graphic-design", "photography", "fashion-design", "other"}

// 空库时写入的示例商品
var sampleItems = []ItemModel{
	{
		Title:       "Graphic Design Services",
		Description: "Professional logo design, branding, and visual identity services. Transform your brand with stunning graphics.",
		Price:       150.00,
		Category:    "graphic-design",
	},
	{
		Title:       "Photography Services",
		Description: "Expert photography services for events, products, and portraits. High-quality images for all occasions.",
		Price:       200.00,
		Category:    "photography",
	},
	{
		Title:       "Fashion Design",
		Description: "Custom fashion design and styling services. From concept to creation, bring your fashion vision to life.",
		Price:       300.00,
		Category:    "fashion-design",
	},
}
