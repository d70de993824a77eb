package v1_test

import (
	"net/http"
	"testing"

	v1 "github.com/sahana-eden/budget/internal/controllers/v1"
	"github.com/sahana-eden/budget/internal/models"
	"github.com/sahana-eden/budget/test"
	"github.com/stretchr/testify/assert"
)

func (suite *TestSuiteStandard) TestStaffCreate() {
	staff := suite.createTestStaff(v1.StaffEditable{Name: "Field Engineer", Grade: "P3", Salary: d("4200"), Travel: d("850")})

	suite.Assert().Equal("USD", staff.Data.Currency, "the configured currency is the default")
	suite.assertDecimal("4200", staff.Data.Salary, "salary")

	suite.createTestStaff(v1.StaffEditable{Name: "Field Engineer"}, http.StatusConflict)
}

func (suite *TestSuiteStandard) TestStaffCreateFails() {
	tests := []struct {
		name  string
		staff v1.StaffEditable
		err   error
	}{
		{"Other currency", v1.StaffEditable{Name: "Driver", Currency: "EUR"}, models.ErrCurrencyMismatch},
		{"Not a currency", v1.StaffEditable{Name: "Driver", Currency: "XYZW"}, models.ErrCurrencyMismatch},
		{"Negative salary", v1.StaffEditable{Name: "Driver", Salary: d("-100")}, models.ErrInvalidAmount},
		{"No name", v1.StaffEditable{}, models.ErrCodeEmpty},
	}

	for _, tt := range tests {
		suite.T().Run(tt.name, func(t *testing.T) {
			r := test.Request(t, suite.controller, http.MethodPost, "http://example.com/v1/staff", tt.staff)
			test.AssertHTTPStatus(t, &r, http.StatusBadRequest)
			assert.Contains(t, r.Body.String(), tt.err.Error())
		})
	}
}

func (suite *TestSuiteStandard) TestStaffUpdateCascades() {
	s := suite.buildScenario()

	r := suite.request(http.MethodPatch, s.staff.Data.Links.Self, map[string]any{"salary": "2000", "travel": "0"})
	test.AssertHTTPStatus(suite.T(), &r, http.StatusOK)

	totals := suite.budgetTotals(s.budget.Data.ID)
	suite.assertDecimal("60", totals.TotalOnetimeCosts, "no travel left, only the bundle")
	suite.assertDecimal("12216", totals.TotalRecurringCosts, "2 × 3 × (2000 + 30) + 36")
}

func (suite *TestSuiteStandard) TestStaffDelete() {
	s := suite.buildScenario()

	r := suite.request(http.MethodDelete, s.staff.Data.Links.Self, nil)
	test.AssertHTTPStatus(suite.T(), &r, http.StatusConflict)
	suite.Assert().Contains(r.Body.String(), models.ErrReferenceInUse.Error())

	r = suite.request(http.MethodPost, s.staff.Data.Links.Self+"/soft-delete", nil)
	test.AssertHTTPStatus(suite.T(), &r, http.StatusOK)

	totals := suite.budgetTotals(s.budget.Data.ID)
	suite.assertDecimal("60", totals.TotalOnetimeCosts, "only the bundle is left")
	suite.assertDecimal("36", totals.TotalRecurringCosts, "only the bundle is left")

	// A soft-deleted staff type is still cited and can not be removed
	r = suite.request(http.MethodDelete, s.staff.Data.Links.Self, nil)
	test.AssertHTTPStatus(suite.T(), &r, http.StatusConflict)

	r = suite.request(http.MethodPost, s.staff.Data.Links.Self+"/restore", nil)
	test.AssertHTTPStatus(suite.T(), &r, http.StatusOK)

	totals = suite.budgetTotals(s.budget.Data.ID)
	suite.assertDecimal("6216", totals.TotalRecurringCosts, "recurring costs after restore")
}

func (suite *TestSuiteStandard) TestStaffGetFilter() {
	suite.createTestStaff(v1.StaffEditable{Name: "Field Engineer"})
	suite.createTestStaff(v1.StaffEditable{Name: "Field Coordinator"})
	suite.createTestStaff(v1.StaffEditable{Name: "Driver"})

	r := suite.request(http.MethodGet, "http://example.com/v1/staff?name=Field*", nil)
	test.AssertHTTPStatus(suite.T(), &r, http.StatusOK)

	var staff v1.StaffListResponse
	test.DecodeResponse(suite.T(), &r, &staff)
	suite.Assert().Len(staff.Data, 2)
}
