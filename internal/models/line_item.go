package models

// LineItem 购物车行项（同一商品在购物车中只存在一行）
type LineItem struct {
	ID       string `json:"id"`              // 商品标识（分类-编号，如 sushi-1），合并键
	Name     string `json:"name"`            // 展示名称，创建后不变
	Price    string `json:"price"`           // 价格字面量（如 "$16.00"）
	Category string `json:"category"`        // 分类
	Image    string `json:"image,omitempty"` // 图片资源（可选，缺省时由渲染层按分类回退）
	Quantity int    `json:"quantity"`        // 数量，始终 >= 1
}

// LineItemInput 加入购物车的商品描述（不含数量）
type LineItemInput struct {
	ID       string `json:"id"`
	Name     string `json:"name"`
	Price    string `json:"price"`
	Category string `json:"category"`
	Image    string `json:"image,omitempty"`
}

// Subtotal 行小计（单价 x 数量），价格无法解析时按零计
func (item LineItem) Subtotal() Money {
	unit, ok := ParseMoney(item.Price)
	if !ok {
		return Money{}
	}
	return unit.MulInt(item.Quantity)
}
