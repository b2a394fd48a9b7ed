package models

// Department is static reference data, seeded once and read-only after.
type Department struct {
	ID          uint   `gorm:"primarykey" json:"id"`
	Name        string `gorm:"uniqueIndex;not null" json:"name"`
	Description string `json:"description"`
}

func (Department) TableName() string {
	return "departments"
}
