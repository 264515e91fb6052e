package product

import (
	"gorm.io/gorm"

	"product-service/internal/models"
)

type UnitMeasureView struct {
	ID   uint   `json:"id"`
	Name string `json:"name"`
}

// ProductView is the read shape of a product. The embedded relation keeps
// the legacy "unit_measures" key existing clients depend on.
type ProductView struct {
	ID            uint            `json:"id"`
	Name          string          `json:"name"`
	Price         float64         `json:"price"`
	UnitMeasureID uint            `json:"unit_measure_id"`
	UnitMeasures  UnitMeasureView `json:"unit_measures"`
}

// toView resolves the referenced unit measure with an explicit lookup.
func toView(db *gorm.DB, p models.Product) (ProductView, error) {
	var um models.UnitMeasure
	if err := db.First(&um, "id = ?", p.UnitMeasureID).Error; err != nil {
		return ProductView{}, err
	}
	return composeView(p, um), nil
}

// toViews batches the unit measure lookup for a whole page.
func toViews(db *gorm.DB, products []models.Product) ([]ProductView, error) {
	views := make([]ProductView, 0, len(products))
	if len(products) == 0 {
		return views, nil
	}

	ids := make([]uint, 0, len(products))
	seen := make(map[uint]bool, len(products))
	for _, p := range products {
		if !seen[p.UnitMeasureID] {
			seen[p.UnitMeasureID] = true
			ids = append(ids, p.UnitMeasureID)
		}
	}

	var unitMeasures []models.UnitMeasure
	if err := db.Where("id IN ?", ids).Find(&unitMeasures).Error; err != nil {
		return nil, err
	}

	byID := make(map[uint]models.UnitMeasure, len(unitMeasures))
	for _, um := range unitMeasures {
		byID[um.ID] = um
	}

	for _, p := range products {
		views = append(views, composeView(p, byID[p.UnitMeasureID]))
	}
	return views, nil
}

func composeView(p models.Product, um models.UnitMeasure) ProductView {
	return ProductView{
		ID:            p.ID,
		Name:          p.Name,
		Price:         p.Price,
		UnitMeasureID: p.UnitMeasureID,
		UnitMeasures: UnitMeasureView{
			ID:   um.ID,
			Name: um.Name,
		},
	}
}
