package models

import (
	"strings"
	"unicode/utf8"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// LocationCodeLength is the maximum length of a location code.
const LocationCodeLength = 16

// Location is a duty station. It adds subsistence and hazard pay
// to every staff line placed there.
type Location struct {
	DefaultModel
	Code        string          `json:"code" gorm:"uniqueIndex:idx_location_code,where:deleted_at IS NULL;size:16;not null" example:"PAP"` // Unique code of the location
	Description string          `json:"description" example:"Port-au-Prince"`                                                              // Description of the location
	Subsistence decimal.Decimal `json:"subsistence" gorm:"type:DECIMAL(20,2);not null;default:0" example:"120"`                            // Monthly subsistence allowance
	HazardPay   decimal.Decimal `json:"hazardPay" gorm:"type:DECIMAL(20,2);not null;default:0" example:"250"`                              // Monthly hazard pay
	Comments    string          `json:"comments" example:""`                                                                               // Free text comments
}

func (l *Location) BeforeSave(_ *gorm.DB) error {
	l.Code = strings.TrimSpace(l.Code)
	l.Description = strings.TrimSpace(l.Description)
	l.Comments = strings.TrimSpace(l.Comments)

	if l.Code == "" {
		return ErrCodeEmpty
	}

	if utf8.RuneCountInString(l.Code) > LocationCodeLength {
		return ErrCodeTooLong
	}

	if err := ValidateAmounts(l.Subsistence, l.HazardPay); err != nil {
		return err
	}

	l.Subsistence = RoundAmount(l.Subsistence)
	l.HazardPay = RoundAmount(l.HazardPay)

	return nil
}
