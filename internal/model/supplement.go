package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// SupplementPurchase is a single entry in a member's purchase history.
// Rows are append-only: nothing in the service updates or deletes them.
type SupplementPurchase struct {
	ID uuid.UUID `json:"id" gorm:"type:char(36);primaryKey"`
	// Seq is the insertion-order key. Timestamps can tie within a granule,
	// so history reads sort on this instead of created_at.
	Seq         uint64          `json:"-" gorm:"autoIncrement;uniqueIndex"`
	MemberID    uuid.UUID       `json:"memberId" gorm:"type:char(36);not null;index"`
	ProductName string          `json:"productName" gorm:"size:255;not null"`
	Price       decimal.Decimal `json:"price" gorm:"type:decimal(20,2);not null"`
	Quantity    int             `json:"quantity" gorm:"not null"`
	PurchasedAt time.Time       `json:"purchasedAt"`
	CreatedAt   time.Time       `json:"createdAt"`
}

// BeforeCreate sets UUID before creating the record.
func (p *SupplementPurchase) BeforeCreate(tx *gorm.DB) error {
	if p.ID == uuid.Nil {
		p.ID = uuid.New()
	}
	return nil
}
