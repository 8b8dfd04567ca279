package models

import (
	"fmt"
	"strings"
)

// Product represents one row of the products collection. The field set
// mirrors the persisted JSON layout exactly.
type Product struct {
	ID              int     `json:"id"`
	Name            string  `json:"name"`
	Brand           string  `json:"brand"`
	Category        string  `json:"category"`
	Subcategory     string  `json:"subcategory"`
	Status          string  `json:"status"`
	StockQuantity   int     `json:"stock_quantity"`
	ReservedStock   int     `json:"reserved_stock"`
	AvailableStock  int     `json:"available_stock"`
	Price           int     `json:"price"`
	SalePrice       int     `json:"sale_price"`
	DiscountPercent int     `json:"discount_percent"`
	Rating          float64 `json:"rating"`
	ReviewCount     int     `json:"review_count"`
	WeightKg        float64 `json:"weight_kg"`
	Dimensions      string  `json:"dimensions"`
	WarrantyMonths  int     `json:"warranty_months"`
	SKU             string  `json:"sku"`
	Barcode         string  `json:"barcode"`
	CreatedDate     string  `json:"created_date"`
	UpdatedDate     string  `json:"updated_date"`
}

// SearchText returns the canonical text form used for free-text
// matching. Fields appear in declaration order so matching does not
// depend on incidental map or JSON key ordering.
func (p Product) SearchText() string {
	var b strings.Builder
	fmt.Fprintf(&b, "id=%d", p.ID)
	fmt.Fprintf(&b, "|name=%s", p.Name)
	fmt.Fprintf(&b, "|brand=%s", p.Brand)
	fmt.Fprintf(&b, "|category=%s", p.Category)
	fmt.Fprintf(&b, "|subcategory=%s", p.Subcategory)
	fmt.Fprintf(&b, "|status=%s", p.Status)
	fmt.Fprintf(&b, "|stock_quantity=%d", p.StockQuantity)
	fmt.Fprintf(&b, "|reserved_stock=%d", p.ReservedStock)
	fmt.Fprintf(&b, "|available_stock=%d", p.AvailableStock)
	fmt.Fprintf(&b, "|price=%d", p.Price)
	fmt.Fprintf(&b, "|sale_price=%d", p.SalePrice)
	fmt.Fprintf(&b, "|discount_percent=%d", p.DiscountPercent)
	fmt.Fprintf(&b, "|rating=%.1f", p.Rating)
	fmt.Fprintf(&b, "|review_count=%d", p.ReviewCount)
	fmt.Fprintf(&b, "|weight_kg=%.2f", p.WeightKg)
	fmt.Fprintf(&b, "|dimensions=%s", p.Dimensions)
	fmt.Fprintf(&b, "|warranty_months=%d", p.WarrantyMonths)
	fmt.Fprintf(&b, "|sku=%s", p.SKU)
	fmt.Fprintf(&b, "|barcode=%s", p.Barcode)
	fmt.Fprintf(&b, "|created_date=%s", p.CreatedDate)
	fmt.Fprintf(&b, "|updated_date=%s", p.UpdatedDate)
	return b.String()
}
