package main

import (
	"fmt"
	"os"

	"github.com/noren-next/internal/catalog"
	"github.com/noren-next/internal/models"
)

// menucheck 菜单数据检查工具
// 离线检查菜单目录：价格字面量可解析、商品 ID 唯一，
// 在构建/发布前发现坏数据，避免运行期按零价聚合。
func main() {
	problems := catalog.Lint()
	if len(problems) > 0 {
		for _, p := range problems {
			fmt.Fprintf(os.Stderr, "menucheck: %s: %s\n", p.ItemID, p.Reason)
		}
		fmt.Fprintf(os.Stderr, "menucheck: %d problem(s) found\n", len(problems))
		os.Exit(1)
	}

	cat, err := catalog.New()
	if err != nil {
		fmt.Fprintf(os.Stderr, "menucheck: %v\n", err)
		os.Exit(1)
	}

	total := models.Money{}
	count := 0
	for _, category := range cat.Categories() {
		for _, item := range category.Items {
			price, _ := models.ParseMoney(item.Price)
			total = total.Add(price)
			count++
		}
	}
	fmt.Printf("menucheck: ok, %d items in %d categories, combined list price %s\n",
		count, len(cat.Categories()), total.String())
}
