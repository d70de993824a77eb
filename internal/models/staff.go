package models

import (
	"strings"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// Staff is a staff type that can be budgeted, e.g. "Field Engineer".
type Staff struct {
	DefaultModel
	Name     string          `json:"name" gorm:"uniqueIndex:idx_staff_name,where:deleted_at IS NULL;not null" example:"Field Engineer"` // Unique name of the staff type
	Grade    string          `json:"grade" example:"P3"`                                                                                // Grade of the staff type
	Salary   decimal.Decimal `json:"salary" gorm:"type:DECIMAL(20,2);not null;default:0" example:"4200"`                                // Monthly salary
	Travel   decimal.Decimal `json:"travel" gorm:"type:DECIMAL(20,2);not null;default:0" example:"850"`                                 // One-time travel cost
	Currency string          `json:"currency" gorm:"size:3" example:"USD"`                                                              // ISO 4217 currency code of the amounts
	Comments string          `json:"comments" example:"Deployed for the emergency phase"`                                               // Free text comments
}

func (Staff) TableName() string {
	return "staff"
}

func (s *Staff) BeforeSave(_ *gorm.DB) error {
	s.Name = strings.TrimSpace(s.Name)
	s.Grade = strings.TrimSpace(s.Grade)
	s.Comments = strings.TrimSpace(s.Comments)
	s.Currency = strings.ToUpper(strings.TrimSpace(s.Currency))

	if s.Name == "" {
		return ErrCodeEmpty
	}

	if err := ValidateAmounts(s.Salary, s.Travel); err != nil {
		return err
	}

	s.Salary = RoundAmount(s.Salary)
	s.Travel = RoundAmount(s.Travel)

	return nil
}
