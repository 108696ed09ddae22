package fakers

import (
	"fmt"
	"math/rand"

	"shopfront/app/models"

	"github.com/go-faker/faker/v4"
	"github.com/google/uuid"
	"github.com/gosimple/slug"
	"github.com/shopspring/decimal"
)

func fakePrice() float64 {
	return 5 + rand.Float64()*495
}

// ProductFaker builds one demo product under the given category.
func ProductFaker(category *models.Category) *models.Product {
	name := faker.Name()
	imageSeed := slug.Make(name + "-" + uuid.NewString()[:6])

	var stockQty *uint
	if rand.Intn(4) > 0 {
		qty := uint(rand.Intn(50))
		stockQty = &qty
	}

	product := &models.Product{
		Name:        name,
		Description: faker.Paragraph(),
		Price:       decimal.NewFromFloat(fakePrice()).Round(2),
		ImageURL:    fmt.Sprintf("https://picsum.photos/seed/%s/800/800", imageSeed),
		InStock:     rand.Intn(10) > 0,
		StockQty:    stockQty,
		Popularity:  uint(rand.Intn(1000)),
		TrendScore:  uint(rand.Intn(1000)),

		LowStockThreshold: 5,
		NotifyOnLowStock:  true,
	}
	if category != nil {
		product.CategoryID = &category.ID
	}
	return product
}
