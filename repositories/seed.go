package repositories

import (
	"fmt"
	"time"

	"github.com/blogem/export-portal/models"
)

// Default datasets written on first startup: 20 rows per collection
// with the full field set. Values are derived from the row index so a
// fresh deployment always seeds the same content.

const (
	seedRows   = 20
	dateLayout = "2006-01-02"
)

// seedEpoch anchors the generated created_date values.
var seedEpoch = time.Date(2024, time.January, 1, 0, 0, 0, 0, time.UTC)

var (
	seedBrands     = [5]string{"Apple", "Samsung", "Google", "Sony", "Dell"}
	seedCategories = [5]string{"Electronics", "Mobile", "Laptop", "Tablet", "Wearable"}
	seedStatuses   = [5]string{"active", "pending", "out-of-stock", "low-stock", "discontinued"}
	seedSuppliers  = [5]string{"Amazon", "Walmart", "Target", "BestBuy", "eBay"}
	seedTypes      = [5]string{"Premium", "Standard", "Budget", "Luxury", "Basic"}
)

// SeedProducts builds the default product dataset.
func SeedProducts() []models.Product {
	today := time.Now().Format(dateLayout)

	products := make([]models.Product, 0, seedRows)
	for i := 0; i < seedRows; i++ {
		n := i + 1
		products = append(products, models.Product{
			ID:              n,
			Name:            fmt.Sprintf("iPhone Pro %d", n),
			Brand:           seedBrands[i%5],
			Category:        seedCategories[i%5],
			Subcategory:     fmt.Sprintf("Subcategory %d", i%4+1),
			Status:          seedStatuses[i%5],
			StockQuantity:   10 + (n*37)%500,
			ReservedStock:   (n * 7) % 50,
			AvailableStock:  (n * 31) % 450,
			Price:           100 + (n*173)%2000,
			SalePrice:       50 + (n*67)%500,
			DiscountPercent: (n * 13) % 40,
			Rating:          3.5 + float64(n%15)*0.1,
			ReviewCount:     (n * 97) % 1000,
			WeightKg:        0.1 + float64(n%50)*0.1,
			Dimensions:      fmt.Sprintf("%dx%dx%dcm", 10+n%20, 8+n%15, 2+n%5),
			WarrantyMonths:  12 + (n*5)%36,
			SKU:             fmt.Sprintf("SKU%04d", n),
			Barcode:         fmt.Sprintf("BAR%012d", n*123456),
			CreatedDate:     seedEpoch.AddDate(0, 0, -n*11).Format(dateLayout),
			UpdatedDate:     today,
		})
	}

	return products
}

// SeedCategories builds the default category dataset.
func SeedCategories() []models.Category {
	today := time.Now().Format(dateLayout)

	categories := make([]models.Category, 0, seedRows)
	for i := 0; i < seedRows; i++ {
		n := i + 1
		categories = append(categories, models.Category{
			ID:              fmt.Sprintf("CAT%03d", n),
			CategoryName:    fmt.Sprintf("Category %d", n),
			SupplierName:    seedSuppliers[i%5],
			ProductType:     seedTypes[i%5],
			BasePrice:       20 + (n*53)%1000,
			ListPrice:       30 + (n*71)%1200,
			SellingPrice:    15 + (n*43)%800,
			DiscountAmount:  (n * 17) % 200,
			DiscountPercent: (n * 11) % 50,
			MarginPercent:   10 + (n*3)%40,
			TaxRate:         5 + float64(n%10) + float64(n%4)*0.25,
			StockQty:        (n * 211) % 2000,
			MinStock:        (n * 9) % 100,
			MaxStock:        (n * 449) % 5000,
			ReorderQty:      (n * 41) % 500,
			WeightG:         100 + (n*367)%5000,
			VolumeCm3:       1000 + (n*823)%10000,
			ActiveStatus:    i%3 != 2,
			CreatedDate:     seedEpoch.AddDate(0, 0, -n*23).Format(dateLayout),
			UpdatedDate:     today,
		})
	}

	return categories
}
