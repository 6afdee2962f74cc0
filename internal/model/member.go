package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Member represents a gym member account.
type Member struct {
	ID               uuid.UUID `json:"id" gorm:"type:char(36);primaryKey"`
	Name             string    `json:"name" gorm:"size:255;not null"`
	Email            string    `json:"email" gorm:"uniqueIndex;size:255;not null"`
	PasswordHash     string    `json:"-" gorm:"size:255;not null"` // Never expose in JSON
	MembershipActive bool      `json:"membershipActive" gorm:"default:false;index"`
	CreatedAt        time.Time `json:"createdAt"`
	UpdatedAt        time.Time `json:"updatedAt"`

	// Relations
	PaymentDetails      *PaymentDetails      `json:"paymentDetails,omitempty" gorm:"foreignKey:MemberID"`
	SupplementPurchases []SupplementPurchase `json:"-" gorm:"foreignKey:MemberID"`
}

// BeforeCreate sets UUID before creating the record.
func (m *Member) BeforeCreate(tx *gorm.DB) error {
	if m.ID == uuid.Nil {
		m.ID = uuid.New()
	}
	return nil
}

// PaymentDetails records the plan payment that activated a membership.
// There is at most one row per member; a purchase overwrites it.
type PaymentDetails struct {
	MemberID    uuid.UUID `json:"-" gorm:"type:char(36);primaryKey"`
	Plan        string    `json:"plan" gorm:"size:50;not null"`
	Amount      int64     `json:"amount" gorm:"not null"`
	Method      string    `json:"method" gorm:"size:100;not null"`
	PurchasedAt time.Time `json:"purchasedAt"`
}

// TableName overrides the default pluralization.
func (PaymentDetails) TableName() string {
	return "payment_details"
}
