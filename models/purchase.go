package models

import "time"

type PurchaseInvoice struct {
	ID            uint      `gorm:"primaryKey" json:"id"`
	ItemPurchased string    `gorm:"size:255;not null" json:"item_purchased"`
	TotalPrice    float64   `gorm:"type:decimal(10,2);not null" json:"total_price"`
	Budget        float64   `gorm:"type:decimal(10,2);not null" json:"budget"`
	Quantity      int       `gorm:"not null" json:"quantity"`
	Img           *string   `gorm:"type:text" json:"img"`
	CreatedAt     time.Time `json:"created_at"`
	UpdatedAt     time.Time `json:"updated_at"`
}

func (PurchaseInvoice) TableName() string { return "purchase_invoices" }

type PurchaseRequest struct {
	ID              uint      `gorm:"primaryKey" json:"id"`
	RequestStatusID uint      `gorm:"index;not null" json:"request_status_id"`
	CategoryID      uint      `gorm:"index;not null" json:"category_id"`
	InvoiceID       *uint     `gorm:"index" json:"invoice_id"`
	RequestedBy     string    `gorm:"size:255;not null" json:"requested_by"`
	ApprovedBy      *string   `gorm:"size:255" json:"approved_by"`
	ItemRequested   string    `gorm:"size:255;not null" json:"item_requested"`
	Description     *string   `gorm:"type:text" json:"description"`
	Quantity        int       `gorm:"not null" json:"quantity"`
	PricePerPcs     float64   `gorm:"type:decimal(10,2);not null" json:"price_per_pcs"`
	RequestDate     Date      `gorm:"not null" json:"request_date"`
	ApprovedBudget  *float64  `gorm:"type:decimal(10,2)" json:"approved_budget"`
	UsedBudget      *float64  `gorm:"type:decimal(10,2)" json:"used_budget"`
	CreatedAt       time.Time `json:"created_at"`
	UpdatedAt       time.Time `json:"updated_at"`

	RequestStatus *RequestStatus   `gorm:"foreignKey:RequestStatusID;constraint:OnDelete:CASCADE" json:"-"`
	Category      *Category        `gorm:"foreignKey:CategoryID;constraint:OnDelete:CASCADE" json:"-"`
	Invoice       *PurchaseInvoice `gorm:"foreignKey:InvoiceID;constraint:OnDelete:SET NULL" json:"-"`
}

func (PurchaseRequest) TableName() string { return "purchase_requests" }
