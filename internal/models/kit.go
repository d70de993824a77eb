package models

import (
	"strings"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// KitCosts are the cached totals of a kit. They are only written
// by recomputes.
type KitCosts struct {
	TotalUnitCost     decimal.Decimal `json:"totalUnitCost" gorm:"type:DECIMAL(20,2);not null;default:0" example:"30.00"`    // Sum of quantity × unit cost
	TotalMonthlyCost  decimal.Decimal `json:"totalMonthlyCost" gorm:"type:DECIMAL(20,2);not null;default:0" example:"6.00"`  // Sum of quantity × monthly cost
	TotalMinuteCost   decimal.Decimal `json:"totalMinuteCost" gorm:"type:DECIMAL(20,2);not null;default:0" example:"0.00"`   // Sum of quantity × minute cost
	TotalMegabyteCost decimal.Decimal `json:"totalMegabyteCost" gorm:"type:DECIMAL(20,2);not null;default:0" example:"0.00"` // Sum of quantity × megabyte cost
}

// Equal reports whether both totals are identical in every dimension.
func (c KitCosts) Equal(o KitCosts) bool {
	return c.TotalUnitCost.Equal(o.TotalUnitCost) &&
		c.TotalMonthlyCost.Equal(o.TotalMonthlyCost) &&
		c.TotalMinuteCost.Equal(o.TotalMinuteCost) &&
		c.TotalMegabyteCost.Equal(o.TotalMegabyteCost)
}

func (c KitCosts) round() KitCosts {
	return KitCosts{
		TotalUnitCost:     RoundAmount(c.TotalUnitCost),
		TotalMonthlyCost:  RoundAmount(c.TotalMonthlyCost),
		TotalMinuteCost:   RoundAmount(c.TotalMinuteCost),
		TotalMegabyteCost: RoundAmount(c.TotalMegabyteCost),
	}
}

// Kit is a fixed assembly of items.
type Kit struct {
	DefaultModel
	Code        string `json:"code" gorm:"uniqueIndex:idx_kit_code,where:deleted_at IS NULL;not null" example:"VSAT-KIT"` // Unique code of the kit
	Description string `json:"description" example:"Satellite uplink kit"`                                                // Description of the kit
	Comments    string `json:"comments" example:""`                                                                       // Free text comments
	KitCosts
}

func (k *Kit) BeforeSave(_ *gorm.DB) error {
	k.Code = strings.TrimSpace(k.Code)
	k.Description = strings.TrimSpace(k.Description)
	k.Comments = strings.TrimSpace(k.Comments)

	if k.Code == "" {
		return ErrCodeEmpty
	}

	k.KitCosts = k.KitCosts.round()
	return nil
}

// KitItem links an item into a kit.
type KitItem struct {
	LineModel
	KitID    uint  `json:"kitId" gorm:"uniqueIndex:idx_kit_item;not null" example:"1"` // ID of the kit
	Kit      *Kit  `json:"-" gorm:"constraint:OnDelete:RESTRICT"`
	ItemID   uint  `json:"itemId" gorm:"uniqueIndex:idx_kit_item;not null" example:"4"` // ID of the item
	Item     *Item `json:"item,omitempty" gorm:"constraint:OnDelete:RESTRICT"`          // The item, if loaded
	Quantity uint  `json:"quantity" gorm:"not null" example:"3"`                        // Number of units of the item in the kit
}

func (ki *KitItem) BeforeSave(_ *gorm.DB) error {
	return ValidateQuantities(ki.Quantity)
}

// ValidateQuantities verifies that all quantities and months are at least 1.
func ValidateQuantities(values ...uint) error {
	for _, v := range values {
		if v < 1 {
			return ErrInvalidQuantity
		}
	}

	return nil
}
