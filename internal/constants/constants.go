package constants

// 菜单分类常量
const (
	CategorySushi   = "sushi"
	CategoryRamen   = "ramen"
	CategoryMochi   = "mochi"
	CategoryOnigiri = "onigiri"
)

// 购物车策略常量
const (
	// MinLineQuantity 行项最小数量，加入购物车时不足则钳制到该值
	MinLineQuantity = 1
)
