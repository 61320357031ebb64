package model

import (
	"time"

	"github.com/google/uuid"
)

// OrderModel mirrors the 'orders' table.
type OrderModel struct {
	ID           uuid.UUID  `gorm:"type:uuid;primaryKey"`
	UserID       uuid.UUID  `gorm:"type:uuid;not null;index:idx_orders_user_status,priority:1"`
	Subtotal     float64    `gorm:"type:numeric(14,2);not null"`
	ShippingCost float64    `gorm:"type:numeric(14,2);not null;default:0"`
	Discount     float64    `gorm:"type:numeric(14,2);not null;default:0"`
	Total        float64    `gorm:"type:numeric(14,2);not null"`
	CouponID     *uuid.UUID `gorm:"type:uuid"`
	CouponCode   string     `gorm:"type:varchar(50)"`
	Status       string     `gorm:"type:varchar(20);not null;index:idx_orders_user_status,priority:2"`
	CreatedAt    time.Time
	UpdatedAt    time.Time
	CompletedAt  *time.Time

	User   UserModel    `gorm:"foreignKey:UserID;constraint:OnDelete:RESTRICT"`
	Coupon *CouponModel `gorm:"foreignKey:CouponID;constraint:OnDelete:SET NULL"`
}

// TableName explicitly sets the table name for GORM.
func (OrderModel) TableName() string {
	return "orders"
}

// ReferralModel mirrors the 'referrals' table. A user can be referred at most once.
type ReferralModel struct {
	ID            uuid.UUID `gorm:"type:uuid;primaryKey"`
	ReferrerID    uuid.UUID `gorm:"type:uuid;not null;index"`
	ReferredID    uuid.UUID `gorm:"type:uuid;uniqueIndex;not null"`
	Code          string    `gorm:"type:varchar(16);not null"`
	Status        string    `gorm:"type:varchar(20);not null"`
	ReferrerBonus int64     `gorm:"not null;default:0"`
	ReferredBonus int64     `gorm:"not null;default:0"`
	CompletedAt   *time.Time
	CreatedAt     time.Time

	Referrer UserModel `gorm:"foreignKey:ReferrerID;constraint:OnDelete:RESTRICT"`
	Referred UserModel `gorm:"foreignKey:ReferredID;constraint:OnDelete:RESTRICT"`
}

// TableName explicitly sets the table name for GORM.
func (ReferralModel) TableName() string {
	return "referrals"
}
