package model

import (
	"time"

	"github.com/google/uuid"
)

// CouponModel mirrors the 'coupons' table.
type CouponModel struct {
	ID             uuid.UUID `gorm:"type:uuid;primaryKey"`
	Code           string    `gorm:"type:varchar(50);uniqueIndex;not null"`
	Description    string    `gorm:"type:text"`
	DiscountType   string    `gorm:"type:varchar(20);not null"`
	DiscountValue  float64   `gorm:"type:numeric(12,2);not null;default:0"`
	MaxDiscount    *float64  `gorm:"type:numeric(12,2)"`
	MinOrderValue  *float64  `gorm:"type:numeric(12,2)"`
	ValidFrom      time.Time `gorm:"not null"`
	ValidUntil     time.Time `gorm:"not null"`
	UsageLimit     *int64
	UsedCount      int64  `gorm:"not null;default:0"`
	TargetAudience string `gorm:"type:varchar(50);not null;default:'all'"`
	AutoApply      bool   `gorm:"not null;default:false;index:idx_coupons_auto_apply,priority:1"`
	IsActive       bool   `gorm:"not null;index:idx_coupons_auto_apply,priority:2"`
	CreatedAt      time.Time
	UpdatedAt      time.Time
}

// TableName explicitly sets the table name for GORM.
func (CouponModel) TableName() string {
	return "coupons"
}
