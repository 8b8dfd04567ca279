package models

import (
	"fmt"
	"strings"
)

// Category represents one row of the categories collection. The field
// set mirrors the persisted JSON layout exactly.
type Category struct {
	ID              string  `json:"id"`
	CategoryName    string  `json:"category_name"`
	SupplierName    string  `json:"supplier_name"`
	ProductType     string  `json:"product_type"`
	BasePrice       int     `json:"base_price"`
	ListPrice       int     `json:"list_price"`
	SellingPrice    int     `json:"selling_price"`
	DiscountAmount  int     `json:"discount_amount"`
	DiscountPercent int     `json:"discount_percent"`
	MarginPercent   int     `json:"margin_percent"`
	TaxRate         float64 `json:"tax_rate"`
	StockQty        int     `json:"stock_qty"`
	MinStock        int     `json:"min_stock"`
	MaxStock        int     `json:"max_stock"`
	ReorderQty      int     `json:"reorder_qty"`
	WeightG         int     `json:"weight_g"`
	VolumeCm3       int     `json:"volume_cm3"`
	ActiveStatus    bool    `json:"active_status"`
	CreatedDate     string  `json:"created_date"`
	UpdatedDate     string  `json:"updated_date"`
}

// SearchText returns the canonical text form used for free-text
// matching, fields in declaration order.
func (c Category) SearchText() string {
	var b strings.Builder
	fmt.Fprintf(&b, "id=%s", c.ID)
	fmt.Fprintf(&b, "|category_name=%s", c.CategoryName)
	fmt.Fprintf(&b, "|supplier_name=%s", c.SupplierName)
	fmt.Fprintf(&b, "|product_type=%s", c.ProductType)
	fmt.Fprintf(&b, "|base_price=%d", c.BasePrice)
	fmt.Fprintf(&b, "|list_price=%d", c.ListPrice)
	fmt.Fprintf(&b, "|selling_price=%d", c.SellingPrice)
	fmt.Fprintf(&b, "|discount_amount=%d", c.DiscountAmount)
	fmt.Fprintf(&b, "|discount_percent=%d", c.DiscountPercent)
	fmt.Fprintf(&b, "|margin_percent=%d", c.MarginPercent)
	fmt.Fprintf(&b, "|tax_rate=%.2f", c.TaxRate)
	fmt.Fprintf(&b, "|stock_qty=%d", c.StockQty)
	fmt.Fprintf(&b, "|min_stock=%d", c.MinStock)
	fmt.Fprintf(&b, "|max_stock=%d", c.MaxStock)
	fmt.Fprintf(&b, "|reorder_qty=%d", c.ReorderQty)
	fmt.Fprintf(&b, "|weight_g=%d", c.WeightG)
	fmt.Fprintf(&b, "|volume_cm3=%d", c.VolumeCm3)
	fmt.Fprintf(&b, "|active_status=%t", c.ActiveStatus)
	fmt.Fprintf(&b, "|created_date=%s", c.CreatedDate)
	fmt.Fprintf(&b, "|updated_date=%s", c.UpdatedDate)
	return b.String()
}
