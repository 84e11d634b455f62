package model

import "time"

// CartModel is the GORM-specific struct for the 'cart' table. The unique
// index on chocolate_id enforces the at-most-one-row-per-chocolate invariant
// at the store level; the FK cascade mirrors the explicit transactional
// cleanup done on chocolate deletion.
type CartModel struct {
	ID          int64           `gorm:"primaryKey;autoIncrement"`
	ChocolateID int64           `gorm:"not null;uniqueIndex"`
	Quantity    int             `gorm:"not null;default:1"`
	CreatedAt   time.Time       `gorm:"autoCreateTime"`
	Chocolate   *ChocolateModel `gorm:"foreignKey:ChocolateID;constraint:OnDelete:CASCADE"`
}

// TableName explicitly sets the table name for GORM.
func (CartModel) TableName() string {
	return "cart"
}
