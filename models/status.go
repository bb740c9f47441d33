package models

import "time"

// BorrowStatus labels the state of a borrow record, with a badge color
// for the admin UI (hex code, e.g. "#007BFF").
type BorrowStatus struct {
	ID         uint      `gorm:"primaryKey" json:"id"`
	StatusName string    `gorm:"size:255;not null" json:"status_name"`
	BadgeColor string    `gorm:"size:7;not null" json:"badge_color"`
	CreatedAt  time.Time `json:"created_at"`
	UpdatedAt  time.Time `json:"updated_at"`
}

func (BorrowStatus) TableName() string { return "borrow_statuses" }

type RequestStatus struct {
	ID         uint      `gorm:"primaryKey" json:"id"`
	StatusName string    `gorm:"size:255;not null" json:"status_name"`
	BadgeColor string    `gorm:"size:255;not null" json:"badge_color"`
	CreatedAt  time.Time `json:"created_at"`
	UpdatedAt  time.Time `json:"updated_at"`
}

func (RequestStatus) TableName() string { return "request_statuses" }
