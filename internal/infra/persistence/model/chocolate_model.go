// Package model holds the GORM-specific persistence structs. They are mapped
// to and from pure domain entities inside the repository implementations.
package model

// ChocolateModel is the GORM-specific struct for the 'chocolates' table.
type ChocolateModel struct {
	ID    int64  `gorm:"primaryKey;autoIncrement"`
	Name  string `gorm:"type:varchar(100);not null"`
	Price string `gorm:"type:varchar(20);not null"`
	Img   string `gorm:"type:varchar(255);not null"`
}

// TableName explicitly sets the table name for GORM.
func (ChocolateModel) TableName() string {
	return "chocolates"
}
