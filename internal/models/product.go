package models

// Product carries no association field: the embedded unit measure in
// responses is resolved with an explicit lookup, and the foreign key
// constraint is created by the database package at migration time.
type Product struct {
	ID            uint    `gorm:"primaryKey"`
	Name          string  `gorm:"size:100;not null;unique"`
	Price         float64 `gorm:"not null"`
	UnitMeasureID uint    `gorm:"not null;index"`
}
