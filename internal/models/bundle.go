package models

import (
	"strings"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// BundleCosts are the cached totals of a bundle. Minute and megabyte costs
// are folded into the monthly total using the consumption profile of each line.
type BundleCosts struct {
	TotalUnitCost    decimal.Decimal `json:"totalUnitCost" gorm:"type:DECIMAL(20,2);not null;default:0" example:"120.00"`   // One-time total
	TotalMonthlyCost decimal.Decimal `json:"totalMonthlyCost" gorm:"type:DECIMAL(20,2);not null;default:0" example:"12.00"` // Recurring total per month
}

func (c BundleCosts) Equal(o BundleCosts) bool {
	return c.TotalUnitCost.Equal(o.TotalUnitCost) && c.TotalMonthlyCost.Equal(o.TotalMonthlyCost)
}

// Bundle is a composition of kits and items with an expected
// monthly consumption.
type Bundle struct {
	DefaultModel
	Name        string `json:"name" gorm:"uniqueIndex:idx_bundle_name,where:deleted_at IS NULL;not null" example:"Field Office Connectivity"` // Unique name of the bundle
	Description string `json:"description" example:"Everything a field office needs to stay connected"`                                       // Description of the bundle
	Comments    string `json:"comments" example:""`                                                                                           // Free text comments
	BundleCosts
}

func (b *Bundle) BeforeSave(_ *gorm.DB) error {
	b.Name = strings.TrimSpace(b.Name)
	b.Description = strings.TrimSpace(b.Description)
	b.Comments = strings.TrimSpace(b.Comments)

	if b.Name == "" {
		return ErrCodeEmpty
	}

	b.TotalUnitCost = RoundAmount(b.TotalUnitCost)
	b.TotalMonthlyCost = RoundAmount(b.TotalMonthlyCost)
	return nil
}

// Consumption is the expected usage per month of a bundle line.
type Consumption struct {
	Quantity  uint `json:"quantity" gorm:"not null" example:"2"`            // Number of units
	Minutes   uint `json:"minutes" gorm:"not null;default:0" example:"0"`   // Expected airtime minutes per month
	Megabytes uint `json:"megabytes" gorm:"not null;default:0" example:"0"` // Expected traffic in megabytes per month
}

// BundleKit links a kit into a bundle.
type BundleKit struct {
	LineModel
	BundleID uint    `json:"bundleId" gorm:"uniqueIndex:idx_bundle_kit;not null" example:"1"` // ID of the bundle
	Bundle   *Bundle `json:"-" gorm:"constraint:OnDelete:RESTRICT"`
	KitID    uint    `json:"kitId" gorm:"uniqueIndex:idx_bundle_kit;not null" example:"2"` // ID of the kit
	Kit      *Kit    `json:"kit,omitempty" gorm:"constraint:OnDelete:RESTRICT"`            // The kit, if loaded
	Consumption
}

func (bk *BundleKit) BeforeSave(_ *gorm.DB) error {
	return ValidateQuantities(bk.Quantity)
}

// BundleItem links an item directly into a bundle.
type BundleItem struct {
	LineModel
	BundleID uint    `json:"bundleId" gorm:"uniqueIndex:idx_bundle_item;not null" example:"1"` // ID of the bundle
	Bundle   *Bundle `json:"-" gorm:"constraint:OnDelete:RESTRICT"`
	ItemID   uint    `json:"itemId" gorm:"uniqueIndex:idx_bundle_item;not null" example:"4"` // ID of the item
	Item     *Item   `json:"item,omitempty" gorm:"constraint:OnDelete:RESTRICT"`             // The item, if loaded
	Consumption
}

func (bi *BundleItem) BeforeSave(_ *gorm.DB) error {
	return ValidateQuantities(bi.Quantity)
}
