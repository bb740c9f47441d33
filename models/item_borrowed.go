package models

import "time"

type ItemBorrowed struct {
	ID             uint      `gorm:"primaryKey" json:"id"`
	UserID         uint      `gorm:"index;not null" json:"user_id"`
	ItemID         uint      `gorm:"index;not null" json:"item_id"`
	BorrowStatusID uint      `gorm:"index;not null" json:"borrow_status_id"`
	Quantity       int       `gorm:"not null" json:"quantity"`
	BorrowDate     Date      `gorm:"not null" json:"borrow_date"`
	ReturnDate     *Date     `json:"return_date"`
	DueDate        Date      `gorm:"not null" json:"due_date"`
	Fine           float64   `gorm:"type:decimal(8,2);default:0" json:"fine"`
	CreatedAt      time.Time `json:"created_at"`
	UpdatedAt      time.Time `json:"updated_at"`

	User         *User         `gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE" json:"-"`
	Item         *Item         `gorm:"foreignKey:ItemID;constraint:OnDelete:CASCADE" json:"-"`
	BorrowStatus *BorrowStatus `gorm:"foreignKey:BorrowStatusID;constraint:OnDelete:CASCADE" json:"-"`
}

func (ItemBorrowed) TableName() string { return "item_borroweds" }
