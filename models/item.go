package models

import "time"

type Item struct {
	ID         uint      `gorm:"primaryKey" json:"id"`
	CategoryID uint      `gorm:"index;not null" json:"category_id"`
	ItemName   string    `gorm:"size:255;not null" json:"item_name"`
	Stock      int       `gorm:"not null;default:0;check:stock >= 0" json:"stock"`
	CreatedAt  time.Time `json:"created_at"`
	UpdatedAt  time.Time `json:"updated_at"`

	Category *Category `gorm:"foreignKey:CategoryID;constraint:OnDelete:CASCADE" json:"-"`
}

func (Item) TableName() string { return "items" }
