package catalog

import (
	"fmt"
	"strings"

	"github.com/noren-next/internal/models"
)

// Item 菜单项
type Item struct {
	Number      int    `json:"-"`
	ID          string `json:"id"` // 分类-编号（如 sushi-1），与购物车合并键一致
	Name        string `json:"name"`
	Description string `json:"description"`
	Price       string `json:"price"` // 价格字面量（如 "$28.00"）
	Image       string `json:"image,omitempty"`
	IsPopular   bool   `json:"is_popular,omitempty"`
}

// Category 菜单分类
type Category struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Icon  string `json:"icon"`
	Items []Item `json:"items"`
}

// Problem 菜单数据问题（价格无法解析、ID 重复等）
type Problem struct {
	ItemID string
	Reason string
}

// Catalog 内存菜单目录
// 购物车只从这里获得 addItem 载荷（ID、名称、价格字面量、分类、可选图片）。
type Catalog struct {
	categories []Category
	index      map[string]models.LineItemInput
}

// New 构建菜单目录，菜单数据存在问题时返回错误
func New() (*Catalog, error) {
	c, problems := build(defaultMenu())
	if len(problems) > 0 {
		first := problems[0]
		return nil, fmt.Errorf("menu data invalid: %s (%s), %d problem(s) total", first.ItemID, first.Reason, len(problems))
	}
	return c, nil
}

// Lint 检查菜单数据并返回全部问题，供 menucheck 命令使用
func Lint() []Problem {
	_, problems := build(defaultMenu())
	return problems
}

func build(categories []Category) (*Catalog, []Problem) {
	c := &Catalog{
		categories: categories,
		index:      make(map[string]models.LineItemInput),
	}
	var problems []Problem
	for ci := range c.categories {
		category := &c.categories[ci]
		if category.Icon == "" {
			category.Icon = CategoryIcon(category.ID)
		}
		for ii := range category.Items {
			item := &category.Items[ii]
			item.ID = fmt.Sprintf("%s-%d", category.ID, item.Number)
			if _, exists := c.index[item.ID]; exists {
				problems = append(problems, Problem{ItemID: item.ID, Reason: "duplicate item id"})
				continue
			}
			if _, ok := models.ParseMoney(item.Price); !ok {
				problems = append(problems, Problem{ItemID: item.ID, Reason: fmt.Sprintf("unparseable price %q", item.Price)})
			}
			c.index[item.ID] = models.LineItemInput{
				ID:       item.ID,
				Name:     item.Name,
				Price:    item.Price,
				Category: category.ID,
				Image:    item.Image,
			}
		}
	}
	return c, problems
}

// Categories 返回菜单分类（展示顺序）
func (c *Catalog) Categories() []Category {
	return c.categories
}

// ItemByID 按商品 ID 查找加入购物车的载荷
func (c *Catalog) ItemByID(id string) (models.LineItemInput, bool) {
	input, ok := c.index[strings.TrimSpace(id)]
	return input, ok
}

// Size 菜单项总数
func (c *Catalog) Size() int {
	return len(c.index)
}

// CategoryIcon 分类缺省图标路径（渲染层图片回退约定）
func CategoryIcon(category string) string {
	return "/icons/" + strings.ToLower(strings.TrimSpace(category)) + "-icon.svg"
}
