package models

import (
	"strings"

	"github.com/shopspring/decimal"
	"golang.org/x/exp/slices"
	"gorm.io/gorm"
)

// ItemCategory classifies catalog items.
type ItemCategory string

const (
	CategoryConsumable    ItemCategory = "Consumable"
	CategorySatellite     ItemCategory = "Satellite"
	CategoryHF            ItemCategory = "HF"
	CategoryVHF           ItemCategory = "VHF"
	CategoryTelephony     ItemCategory = "Telephony"
	CategoryWLAN          ItemCategory = "W-LAN"
	CategoryNetwork       ItemCategory = "Network"
	CategoryGenerator     ItemCategory = "Generator"
	CategoryElectrical    ItemCategory = "Electrical"
	CategoryVehicle       ItemCategory = "Vehicle"
	CategoryGPS           ItemCategory = "GPS"
	CategoryTools         ItemCategory = "Tools"
	CategoryIT            ItemCategory = "IT"
	CategoryICT           ItemCategory = "ICT"
	CategoryTC            ItemCategory = "TC"
	CategoryStationery    ItemCategory = "Stationery"
	CategoryRelief        ItemCategory = "Relief"
	CategoryMiscellaneous ItemCategory = "Miscellaneous"
	CategoryRunningCost   ItemCategory = "Running Cost"
)

// ItemCategories lists all valid item categories.
var ItemCategories = []ItemCategory{
	CategoryConsumable, CategorySatellite, CategoryHF, CategoryVHF, CategoryTelephony,
	CategoryWLAN, CategoryNetwork, CategoryGenerator, CategoryElectrical, CategoryVehicle,
	CategoryGPS, CategoryTools, CategoryIT, CategoryICT, CategoryTC,
	CategoryStationery, CategoryRelief, CategoryMiscellaneous, CategoryRunningCost,
}

// CostType is informational only, every item carries all four cost dimensions.
type CostType string

const (
	CostTypeOneTime   CostType = "one-time"
	CostTypeRecurring CostType = "recurring"
)

// Item is a leaf of the catalog with its four cost dimensions.
type Item struct {
	DefaultModel
	Code         string          `json:"code" gorm:"uniqueIndex:idx_item_code,where:deleted_at IS NULL;not null" example:"VSAT-01"` // Unique code of the item
	Description  string          `json:"description" example:"VSAT terminal"`                                                       // Description of the item
	Category     ItemCategory    `json:"category" gorm:"not null" example:"Satellite"`                                              // Category of the item
	CostType     CostType        `json:"costType" gorm:"not null" example:"one-time"`                                               // Informational cost type
	UnitCost     decimal.Decimal `json:"unitCost" gorm:"type:DECIMAL(20,2);not null;default:0" example:"1500.00"`                   // One-time cost per unit
	MonthlyCost  decimal.Decimal `json:"monthlyCost" gorm:"type:DECIMAL(20,2);not null;default:0" example:"40.00"`                  // Recurring cost per unit and month
	MinuteCost   decimal.Decimal `json:"minuteCost" gorm:"type:DECIMAL(20,2);not null;default:0" example:"0.50"`                    // Cost per minute of airtime
	MegabyteCost decimal.Decimal `json:"megabyteCost" gorm:"type:DECIMAL(20,2);not null;default:0" example:"2.00"`                  // Cost per megabyte of traffic
	Comments     string          `json:"comments" example:"Ordered from the regional warehouse"`                                    // Free text comments
}

// Costs returns the four cost dimensions.
func (i Item) Costs() []decimal.Decimal {
	return []decimal.Decimal{i.UnitCost, i.MonthlyCost, i.MinuteCost, i.MegabyteCost}
}

func (i *Item) BeforeSave(_ *gorm.DB) error {
	i.Code = strings.TrimSpace(i.Code)
	i.Description = strings.TrimSpace(i.Description)
	i.Comments = strings.TrimSpace(i.Comments)

	if i.Code == "" {
		return ErrCodeEmpty
	}

	if i.Category == "" {
		i.Category = CategoryMiscellaneous
	}
	if !slices.Contains(ItemCategories, i.Category) {
		return ErrInvalidCategory
	}

	if i.CostType == "" {
		i.CostType = CostTypeOneTime
	}
	if i.CostType != CostTypeOneTime && i.CostType != CostTypeRecurring {
		return ErrInvalidCostType
	}

	if err := ValidateAmounts(i.Costs()...); err != nil {
		return err
	}

	i.UnitCost = RoundAmount(i.UnitCost)
	i.MonthlyCost = RoundAmount(i.MonthlyCost)
	i.MinuteCost = RoundAmount(i.MinuteCost)
	i.MegabyteCost = RoundAmount(i.MegabyteCost)

	return nil
}
