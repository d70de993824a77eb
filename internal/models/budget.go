package models

import (
	"strings"

	"github.com/sahana-eden/budget/internal/types"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// BudgetCosts are the cached totals of a budget.
type BudgetCosts struct {
	TotalOnetimeCosts   decimal.Decimal `json:"totalOnetimeCosts" gorm:"type:DECIMAL(20,2);not null;default:0" example:"220.00"`    // Total one-time costs
	TotalRecurringCosts decimal.Decimal `json:"totalRecurringCosts" gorm:"type:DECIMAL(20,2);not null;default:0" example:"6216.00"` // Total recurring costs over all months
}

func (c BudgetCosts) Equal(o BudgetCosts) bool {
	return c.TotalOnetimeCosts.Equal(o.TotalOnetimeCosts) && c.TotalRecurringCosts.Equal(o.TotalRecurringCosts)
}

// Budget is the top level plan. It aggregates staff and bundle lines.
type Budget struct {
	DefaultModel
	Name        string `json:"name" gorm:"uniqueIndex:idx_budget_name,where:deleted_at IS NULL;not null" example:"Haiti Earthquake Response"` // Unique name of the budget
	Description string `json:"description" example:"Telecommunications for the first six months"`                                             // Description of the budget
	Comments    string `json:"comments" example:""`                                                                                           // Free text comments
	BudgetCosts
}

func (b *Budget) BeforeSave(_ *gorm.DB) error {
	b.Name = strings.TrimSpace(b.Name)
	b.Description = strings.TrimSpace(b.Description)
	b.Comments = strings.TrimSpace(b.Comments)

	if b.Name == "" {
		return ErrCodeEmpty
	}

	b.TotalOnetimeCosts = RoundAmount(b.TotalOnetimeCosts)
	b.TotalRecurringCosts = RoundAmount(b.TotalRecurringCosts)
	return nil
}

// Deployment holds the scalar fields shared by all budget lines.
type Deployment struct {
	ProjectID  *uint        `json:"projectId" example:"12"`                                         // ID of the project in the project management system, optional
	Quantity   uint         `json:"quantity" gorm:"not null" example:"2"`                           // Number of units
	Months     uint         `json:"months" gorm:"not null" example:"3"`                             // Duration in months
	StartMonth *types.Month `json:"startMonth" swaggertype:"string" example:"2026-11-01T00:00:00Z"` // First month of the deployment, optional
}

// BudgetBundle deploys a bundle in a budget.
type BudgetBundle struct {
	LineModel
	BudgetID   uint      `json:"budgetId" gorm:"index;not null" example:"1"` // ID of the budget
	Budget     *Budget   `json:"-" gorm:"constraint:OnDelete:RESTRICT"`
	BundleID   uint      `json:"bundleId" gorm:"index;not null" example:"2"`             // ID of the bundle
	Bundle     *Bundle   `json:"bundle,omitempty" gorm:"constraint:OnDelete:RESTRICT"`   // The bundle, if loaded
	LocationID *uint     `json:"locationId" example:"3"`                                 // ID of the location, optional
	Location   *Location `json:"location,omitempty" gorm:"constraint:OnDelete:RESTRICT"` // The location, if loaded
	Deployment
}

func (bb *BudgetBundle) BeforeSave(_ *gorm.DB) error {
	return ValidateQuantities(bb.Quantity, bb.Months)
}

// BudgetStaff deploys staff in a budget.
type BudgetStaff struct {
	LineModel
	BudgetID   uint      `json:"budgetId" gorm:"index;not null" example:"1"` // ID of the budget
	Budget     *Budget   `json:"-" gorm:"constraint:OnDelete:RESTRICT"`
	StaffID    uint      `json:"staffId" gorm:"index;not null" example:"5"`              // ID of the staff type
	Staff      *Staff    `json:"staff,omitempty" gorm:"constraint:OnDelete:RESTRICT"`    // The staff type, if loaded
	LocationID *uint     `json:"locationId" example:"3"`                                 // ID of the location, optional
	Location   *Location `json:"location,omitempty" gorm:"constraint:OnDelete:RESTRICT"` // The location, if loaded
	Deployment
}

func (BudgetStaff) TableName() string {
	return "budget_staff"
}

func (bs *BudgetStaff) BeforeSave(_ *gorm.DB) error {
	return ValidateQuantities(bs.Quantity, bs.Months)
}
