package model

import (
	"time"

	"github.com/google/uuid"
)

// TierModel mirrors the 'tiers' table.
type TierModel struct {
	ID               uuid.UUID `gorm:"type:uuid;primaryKey"`
	Name             string    `gorm:"type:varchar(50);uniqueIndex;not null"`
	MinSpend         float64   `gorm:"type:numeric(14,2);uniqueIndex;not null;check:chk_tiers_min_spend,min_spend >= 0"`
	DiscountPercent  float64   `gorm:"type:numeric(5,2);not null;default:0"`
	FreeShipping     bool      `gorm:"not null;default:false"`
	PointsMultiplier float64   `gorm:"type:numeric(6,3);not null;default:1;check:chk_tiers_multiplier,points_multiplier > 0"`
	CreatedAt        time.Time
	UpdatedAt        time.Time
}

// TableName explicitly sets the table name for GORM.
func (TierModel) TableName() string {
	return "tiers"
}

// LoyaltyAccountModel mirrors the 'loyalty_accounts' table. One row per user.
type LoyaltyAccountModel struct {
	ID             uuid.UUID  `gorm:"type:uuid;primaryKey"`
	UserID         uuid.UUID  `gorm:"type:uuid;uniqueIndex;not null"`
	TotalPoints    int64      `gorm:"not null;default:0;check:chk_loyalty_total_points,total_points >= 0"`
	LifetimePoints int64      `gorm:"not null;default:0"`
	RedeemedPoints int64      `gorm:"not null;default:0"`
	LifetimeSpent  float64    `gorm:"type:numeric(14,2);not null;default:0"`
	TierID         *uuid.UUID `gorm:"type:uuid"`
	CreatedAt      time.Time
	UpdatedAt      time.Time

	User UserModel  `gorm:"foreignKey:UserID;constraint:OnDelete:RESTRICT"`
	Tier *TierModel `gorm:"foreignKey:TierID;constraint:OnDelete:SET NULL"`
}

// TableName explicitly sets the table name for GORM.
func (LoyaltyAccountModel) TableName() string {
	return "loyalty_accounts"
}

// PointsTransactionModel mirrors the append-only 'points_transactions' ledger.
type PointsTransactionModel struct {
	ID               uuid.UUID  `gorm:"type:uuid;primaryKey"`
	LoyaltyAccountID uuid.UUID  `gorm:"type:uuid;not null;index:idx_points_tx_account_created,priority:1"`
	Type             string     `gorm:"type:varchar(20);not null"`
	Points           int64      `gorm:"not null"`
	Description      string     `gorm:"type:varchar(255)"`
	OrderID          *uuid.UUID `gorm:"type:uuid;index"`
	CreatedAt        time.Time  `gorm:"index:idx_points_tx_account_created,priority:2,sort:desc"`

	LoyaltyAccount LoyaltyAccountModel `gorm:"foreignKey:LoyaltyAccountID;constraint:OnDelete:RESTRICT"`
}

// TableName explicitly sets the table name for GORM.
func (PointsTransactionModel) TableName() string {
	return "points_transactions"
}

// LoyaltySettingsID is the primary key of the single settings row.
const LoyaltySettingsID = 1

// LoyaltySettingsModel mirrors the single-row 'loyalty_settings' table.
type LoyaltySettingsModel struct {
	ID                  int     `gorm:"primaryKey;autoIncrement:false"`
	Enabled             bool    `gorm:"not null"`
	PointsPerTaka       float64 `gorm:"type:numeric(10,4);not null"`
	MinimumRedeemPoints int64   `gorm:"not null"`
	PointValue          float64 `gorm:"type:numeric(10,4);not null"`
	ReferrerBonus       int64   `gorm:"not null"`
	ReferredBonus       int64   `gorm:"not null"`
	UpdatedAt           time.Time
}

// TableName explicitly sets the table name for GORM.
func (LoyaltySettingsModel) TableName() string {
	return "loyalty_settings"
}
