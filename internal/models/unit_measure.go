package models

// UnitMeasure rows are referenced by products but never mutated here;
// they are seeded/managed outside this service.
type UnitMeasure struct {
	ID   uint   `gorm:"primaryKey"`
	Name string `gorm:"size:100;not null;unique"`
}
