package v1_test

import (
	"net/http"
	"testing"

	v1 "github.com/sahana-eden/budget/internal/controllers/v1"
	"github.com/sahana-eden/budget/internal/models"
	"github.com/sahana-eden/budget/internal/rollup"
	"github.com/sahana-eden/budget/internal/types"
	"github.com/sahana-eden/budget/test"
	"github.com/stretchr/testify/assert"
)

func (suite *TestSuiteStandard) TestBudgetsCreate() {
	budget := suite.createTestBudget(v1.BudgetEditable{Name: "Haiti Earthquake Response"})

	suite.Assert().True(budget.Data.TotalOnetimeCosts.IsZero())
	suite.Assert().True(budget.Data.TotalRecurringCosts.IsZero())
	suite.Assert().Equal(budget.Data.Links.Self+"/snapshot", budget.Data.Links.Snapshot)
	suite.Assert().Equal(budget.Data.Links.Self+"/refresh", budget.Data.Links.Refresh)

	suite.createTestBudget(v1.BudgetEditable{Name: "Haiti Earthquake Response"}, http.StatusConflict)
}

func (suite *TestSuiteStandard) TestBudgetsScenarioTotals() {
	s := suite.buildScenario()

	r := suite.request(http.MethodGet, s.budget.Data.Links.Self, nil)
	test.AssertHTTPStatus(suite.T(), &r, http.StatusOK)

	var budget v1.BudgetResponse
	test.DecodeResponse(suite.T(), &r, &budget)
	suite.assertDecimal("160", budget.Data.TotalOnetimeCosts, "100 travel + 60 bundle")
	suite.assertDecimal("6216", budget.Data.TotalRecurringCosts, "6180 staff + 36 bundle")
}

func (suite *TestSuiteStandard) TestBudgetsStaffWithoutLocation() {
	s := suite.buildScenario()

	// Without a location, there is neither subsistence nor hazard pay
	suite.addBudgetStaff(s.budget.Data.ID, rollup.StaffLine{
		StaffID:    s.staff.Data.ID,
		Deployment: models.Deployment{Quantity: 1, Months: 1},
	})

	totals := suite.budgetTotals(s.budget.Data.ID)
	suite.assertDecimal("210", totals.TotalOnetimeCosts, "160 + 50 travel")
	suite.assertDecimal("7216", totals.TotalRecurringCosts, "6216 + 1000 salary")
}

func (suite *TestSuiteStandard) TestBudgetsAddStaffFails() {
	s := suite.buildScenario()
	next := types.NewMonth(2026, 11)
	last := types.NewMonth(2026, 9)

	tests := []struct {
		name   string
		line   rollup.StaffLine
		status int
		err    error
	}{
		{"Same staff at the same location", rollup.StaffLine{StaffID: s.staff.Data.ID, LocationID: &s.location.Data.ID, Deployment: models.Deployment{Quantity: 1, Months: 1}}, http.StatusConflict, models.ErrDuplicateAssociation},
		{"Zero months", rollup.StaffLine{StaffID: s.staff.Data.ID, Deployment: models.Deployment{Quantity: 1}}, http.StatusBadRequest, models.ErrInvalidQuantity},
		{"Unknown staff", rollup.StaffLine{StaffID: 9999, Deployment: models.Deployment{Quantity: 1, Months: 1}}, http.StatusBadRequest, models.ErrUnknownReference},
		{"Unknown location", rollup.StaffLine{StaffID: s.staff.Data.ID, LocationID: ptr(uint(9999)), Deployment: models.Deployment{Quantity: 1, Months: 1}}, http.StatusBadRequest, models.ErrUnknownReference},
		{"Started last month", rollup.StaffLine{StaffID: s.staff.Data.ID, Deployment: models.Deployment{Quantity: 1, Months: 1, StartMonth: &last}}, http.StatusBadRequest, models.ErrBackdatedLine},
		{"Starts next month", rollup.StaffLine{StaffID: s.staff.Data.ID, Deployment: models.Deployment{Quantity: 1, Months: 1, StartMonth: &next}}, http.StatusCreated, nil},
	}

	for _, tt := range tests {
		suite.T().Run(tt.name, func(t *testing.T) {
			r := test.Request(t, suite.controller, http.MethodPost, s.budget.Data.Links.Self+"/staff", tt.line)
			test.AssertHTTPStatus(t, &r, tt.status)

			if tt.err != nil {
				assert.Contains(t, r.Body.String(), tt.err.Error())
			}
		})
	}
}

func (suite *TestSuiteStandard) TestBudgetsLines() {
	s := suite.buildScenario()

	r := suite.request(http.MethodGet, s.budget.Data.Links.Lines, nil)
	test.AssertHTTPStatus(suite.T(), &r, http.StatusOK)

	var lines v1.BudgetLinesResponse
	test.DecodeResponse(suite.T(), &r, &lines)
	suite.Require().Len(lines.Data.Staff, 1)
	suite.Require().Len(lines.Data.Bundles, 1)
	suite.Assert().Equal(s.staffAt.Data.ID, lines.Data.Staff[0].ID)
	suite.Require().NotNil(lines.Data.Staff[0].Staff, "the staff type is loaded")
	suite.Assert().Equal("S", lines.Data.Staff[0].Staff.Name)
	suite.Require().NotNil(lines.Data.Bundles[0].Location, "the location is loaded")
	suite.Assert().Equal("L", lines.Data.Bundles[0].Location.Code)
}

func (suite *TestSuiteStandard) TestBudgetsSetLines() {
	s := suite.buildScenario()

	r := suite.request(http.MethodPut, s.budget.Data.Links.Lines, v1.BudgetLinesEditable{
		Bundles: []rollup.BundleLine{
			{BundleID: s.bundle.Data.ID, LocationID: &s.location.Data.ID, Deployment: models.Deployment{Quantity: 2, Months: 3}},
		},
	})
	test.AssertHTTPStatus(suite.T(), &r, http.StatusOK)

	var lines v1.BudgetLinesResponse
	test.DecodeResponse(suite.T(), &r, &lines)
	suite.Assert().Len(lines.Data.Staff, 0)
	suite.Require().Len(lines.Data.Bundles, 1)
	suite.Assert().Equal(uint(2), lines.Data.Bundles[0].Quantity)

	totals := suite.budgetTotals(s.budget.Data.ID)
	suite.assertDecimal("120", totals.TotalOnetimeCosts, "2 × 60")
	suite.assertDecimal("72", totals.TotalRecurringCosts, "2 × 12 × 3")

	// A duplicate rejects the whole replacement
	line := rollup.BundleLine{BundleID: s.bundle.Data.ID, Deployment: models.Deployment{Quantity: 1, Months: 1}}
	r = suite.request(http.MethodPut, s.budget.Data.Links.Lines, v1.BudgetLinesEditable{
		Bundles: []rollup.BundleLine{line, line},
	})
	test.AssertHTTPStatus(suite.T(), &r, http.StatusConflict)
	suite.Assert().NotContains(r.Body.String(), "existingId", "a line listed twice has no existing line to edit")

	totals = suite.budgetTotals(s.budget.Data.ID)
	suite.assertDecimal("120", totals.TotalOnetimeCosts, "one-time costs after failed replacement")
}

func (suite *TestSuiteStandard) TestBudgetsSnapshot() {
	s := suite.buildScenario()

	r := suite.request(http.MethodGet, s.budget.Data.Links.Snapshot, nil)
	test.AssertHTTPStatus(suite.T(), &r, http.StatusOK)

	var snapshot v1.SnapshotResponse
	test.DecodeResponse(suite.T(), &r, &snapshot)

	suite.Assert().Equal("USD", snapshot.Data.Currency)
	suite.Assert().Equal("G", snapshot.Data.Budget.Name)
	suite.assertDecimal("160", snapshot.Data.Budget.TotalOnetimeCosts, "budget one-time costs")

	suite.Require().Len(snapshot.Data.Staff, 1)
	suite.assertDecimal("100", snapshot.Data.Staff[0].OnetimeCost, "staff one-time cost")
	suite.assertDecimal("6180", snapshot.Data.Staff[0].RecurringCost, "staff recurring cost")

	suite.Require().Len(snapshot.Data.Bundles, 1)
	bundle := snapshot.Data.Bundles[0]
	suite.assertDecimal("60", bundle.OnetimeCost, "bundle one-time cost")
	suite.assertDecimal("36", bundle.RecurringCost, "bundle recurring cost")
	suite.Require().Len(bundle.Kits, 1)
	suite.Require().Len(bundle.Kits[0].Items, 1)
	suite.Assert().Equal(uint(3), bundle.Kits[0].Items[0].Quantity)
}

func (suite *TestSuiteStandard) TestBudgetsRefresh() {
	s := suite.buildScenario()

	for i := 0; i < 2; i++ {
		r := suite.request(http.MethodPost, s.budget.Data.Links.Refresh, nil)
		test.AssertHTTPStatus(suite.T(), &r, http.StatusOK)

		var budget v1.BudgetResponse
		test.DecodeResponse(suite.T(), &r, &budget)
		suite.assertDecimal("160", budget.Data.TotalOnetimeCosts, "one-time costs after refresh")
		suite.assertDecimal("6216", budget.Data.TotalRecurringCosts, "recurring costs after refresh")
	}

	r := suite.request(http.MethodPost, "http://example.com/v1/budgets/9999/refresh", nil)
	test.AssertHTTPStatus(suite.T(), &r, http.StatusNotFound)
}

func (suite *TestSuiteStandard) TestBudgetsDelete() {
	s := suite.buildScenario()

	r := suite.request(http.MethodDelete, s.budget.Data.Links.Self, nil)
	test.AssertHTTPStatus(suite.T(), &r, http.StatusNoContent)

	// Deleted budgets can still be read
	r = suite.request(http.MethodGet, s.budget.Data.Links.Self, nil)
	test.AssertHTTPStatus(suite.T(), &r, http.StatusOK)

	var budget v1.BudgetResponse
	test.DecodeResponse(suite.T(), &r, &budget)
	suite.Assert().True(budget.Data.DeletedAt.Valid)

	r = suite.request(http.MethodPost, s.budget.Data.Links.Refresh, nil)
	test.AssertHTTPStatus(suite.T(), &r, http.StatusNotFound)

	r = suite.request(http.MethodGet, "http://example.com/v1/budgets", nil)
	test.AssertHTTPStatus(suite.T(), &r, http.StatusOK)

	var budgets v1.BudgetListResponse
	test.DecodeResponse(suite.T(), &r, &budgets)
	suite.Assert().Len(budgets.Data, 0)

	// The name is free again
	suite.createTestBudget(v1.BudgetEditable{Name: "G"})
}

func (suite *TestSuiteStandard) TestBudgetsDatabaseError() {
	budget := suite.createTestBudget(v1.BudgetEditable{})

	suite.CloseDB()

	r := suite.request(http.MethodGet, budget.Data.Links.Totals, nil)
	test.AssertHTTPStatus(suite.T(), &r, http.StatusInternalServerError)
	suite.Assert().Contains(r.Body.String(), models.ErrStorageFailure.Error())
}
