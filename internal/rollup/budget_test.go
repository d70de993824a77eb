package rollup_test

import (
	"errors"
	"time"

	"github.com/sahana-eden/budget/internal/config"
	"github.com/sahana-eden/budget/internal/models"
	"github.com/sahana-eden/budget/internal/rollup"
	"github.com/sahana-eden/budget/internal/types"
)

func (suite *TestSuiteStandard) TestBudgetCreateUpdate() {
	budget := suite.createTestBudget("Haiti")

	_, err := suite.engine.CreateBudget(suite.ctx, models.Budget{Name: "Haiti"})
	suite.Assert().ErrorIs(err, models.ErrDuplicateCode)

	_, err = suite.engine.CreateBudget(suite.ctx, models.Budget{Name: " "})
	suite.Assert().ErrorIs(err, models.ErrCodeEmpty)

	budget, err = suite.engine.UpdateBudget(suite.ctx, budget.ID, models.Budget{Name: "Haiti Response"}, "Name")
	suite.Require().Nil(err)
	suite.Assert().Equal("Haiti Response", budget.Name)

	found, err := suite.engine.GetBudgetByName(suite.ctx, "Haiti Response")
	suite.Require().Nil(err)
	suite.Assert().Equal(budget.ID, found.ID)

	budgets, err := suite.engine.ListBudgets(suite.ctx, rollup.BudgetFilter{Name: "Haiti*"})
	suite.Require().Nil(err)
	suite.Assert().Len(budgets, 1)
}

func (suite *TestSuiteStandard) TestBudgetStaffWithoutLocation() {
	staff := suite.createTestStaff(models.Staff{Name: "S", Salary: d("1000"), Travel: d("50")})
	budget := suite.createTestBudget("G")

	_, err := suite.engine.AddBudgetStaff(suite.ctx, budget.ID, rollup.StaffLine{
		StaffID:    staff.ID,
		Deployment: models.Deployment{Quantity: 1, Months: 2},
	})
	suite.Require().Nil(err)

	totals, err := suite.engine.BudgetTotals(suite.ctx, budget.ID)
	suite.Require().Nil(err)
	suite.assertDecimal("50", totals.TotalOnetimeCosts)
	suite.assertDecimal("2000", totals.TotalRecurringCosts)
}

func (suite *TestSuiteStandard) TestBudgetLineValidation() {
	s := suite.buildScenario()

	tests := []struct {
		name string
		line rollup.StaffLine
		err  error
	}{
		{"Zero quantity", rollup.StaffLine{StaffID: s.staff.ID, Deployment: models.Deployment{Months: 1}}, models.ErrInvalidQuantity},
		{"Zero months", rollup.StaffLine{StaffID: s.staff.ID, Deployment: models.Deployment{Quantity: 1}}, models.ErrInvalidQuantity},
		{"Unknown staff", rollup.StaffLine{StaffID: 9999, Deployment: models.Deployment{Quantity: 1, Months: 1}}, models.ErrUnknownReference},
		{"Unknown location", rollup.StaffLine{StaffID: s.staff.ID, LocationID: ptr(uint(9999)), Deployment: models.Deployment{Quantity: 1, Months: 1}}, models.ErrUnknownReference},
		{"Duplicate", rollup.StaffLine{StaffID: s.staff.ID, LocationID: &s.location.ID, Deployment: models.Deployment{Quantity: 5, Months: 5}}, models.ErrDuplicateAssociation},
	}

	for _, tt := range tests {
		_, err := suite.engine.AddBudgetStaff(suite.ctx, s.budget.ID, tt.line)
		suite.Assert().ErrorIs(err, tt.err, tt.name)
	}

	_, err := suite.engine.AddBudgetStaff(suite.ctx, 9999, rollup.StaffLine{StaffID: s.staff.ID, Deployment: models.Deployment{Quantity: 1, Months: 1}})
	suite.Assert().ErrorIs(err, models.ErrResourceNotFound)

	suite.assertDecimal("6216", suite.budget(s.budget.ID).TotalRecurringCosts)
}

func (suite *TestSuiteStandard) TestBudgetSameBundleAtTwoLocations() {
	s := suite.buildScenario()
	other := suite.createTestLocation(models.Location{Code: "JAC"})

	line, err := suite.engine.AddBudgetBundle(suite.ctx, s.budget.ID, rollup.BundleLine{
		BundleID:   s.bundle.ID,
		LocationID: &other.ID,
		Deployment: models.Deployment{Quantity: 1, Months: 1},
	})
	suite.Require().Nil(err)

	// Without location is another deployment, too
	_, err = suite.engine.AddBudgetBundle(suite.ctx, s.budget.ID, rollup.BundleLine{
		BundleID:   s.bundle.ID,
		Deployment: models.Deployment{Quantity: 1, Months: 1},
	})
	suite.Require().Nil(err)

	_, err = suite.engine.AddBudgetBundle(suite.ctx, s.budget.ID, rollup.BundleLine{
		BundleID:   s.bundle.ID,
		Deployment: models.Deployment{Quantity: 2, Months: 2},
	})
	suite.Assert().ErrorIs(err, models.ErrDuplicateAssociation, "Lines without location are compared NULL-safe")

	// So is the same location for another project
	_, err = suite.engine.AddBudgetBundle(suite.ctx, s.budget.ID, rollup.BundleLine{
		BundleID:   s.bundle.ID,
		LocationID: &other.ID,
		Deployment: models.Deployment{ProjectID: ptr(uint(12)), Quantity: 1, Months: 1},
	})
	suite.Require().Nil(err)

	_, err = suite.engine.AddBudgetBundle(suite.ctx, s.budget.ID, rollup.BundleLine{
		BundleID:   s.bundle.ID,
		LocationID: &other.ID,
		Deployment: models.Deployment{Quantity: 3, Months: 3},
	})
	var duplicate *models.DuplicateError
	suite.Require().True(errors.As(err, &duplicate))
	suite.Assert().Equal(line.ID, duplicate.ExistingID)

	// 160 + 3 × 60, 6216 + 3 × 12
	budget := suite.budget(s.budget.ID)
	suite.assertDecimal("340", budget.TotalOnetimeCosts)
	suite.assertDecimal("6252", budget.TotalRecurringCosts)
	suite.assertClean()
}

func (suite *TestSuiteStandard) TestBudgetLineUpdateAndRemove() {
	s := suite.buildScenario()
	other := suite.createTestLocation(models.Location{Code: "JAC", Subsistence: d("10"), HazardPay: d("5")})

	lines, err := suite.engine.BudgetLines(suite.ctx, s.budget.ID)
	suite.Require().Nil(err)
	suite.Require().Len(lines.Staff, 1)
	suite.Require().Len(lines.Bundles, 1)
	suite.Require().NotNil(lines.Staff[0].Staff)
	suite.Require().NotNil(lines.Bundles[0].Location)

	staffLine, err := suite.engine.UpdateBudgetStaff(suite.ctx, lines.Staff[0].ID, rollup.StaffLine{
		StaffID:    s.staff.ID,
		LocationID: &other.ID,
		Deployment: models.Deployment{Quantity: 1, Months: 6},
	})
	suite.Require().Nil(err)
	suite.Assert().Equal(lines.Staff[0].ID, staffLine.ID)

	// 1 × 50 + 60, 1 × (1000 + 10 + 5) × 6 + 36
	budget := suite.budget(s.budget.ID)
	suite.assertDecimal("110", budget.TotalOnetimeCosts)
	suite.assertDecimal("6126", budget.TotalRecurringCosts)

	// Updating a line to itself is no duplicate
	_, err = suite.engine.UpdateBudgetBundle(suite.ctx, lines.Bundles[0].ID, rollup.BundleLine{
		BundleID:   s.bundle.ID,
		LocationID: &s.location.ID,
		Deployment: models.Deployment{Quantity: 2, Months: 3},
	})
	suite.Require().Nil(err)
	suite.assertDecimal("170", suite.budget(s.budget.ID).TotalOnetimeCosts)

	_, err = suite.engine.UpdateBudgetBundle(suite.ctx, lines.Bundles[0].ID, rollup.BundleLine{
		BundleID:   s.bundle.ID,
		Deployment: models.Deployment{Quantity: 2, Months: 0},
	})
	suite.Assert().ErrorIs(err, models.ErrInvalidQuantity)

	suite.Require().Nil(suite.engine.RemoveBudgetStaff(suite.ctx, staffLine.ID))
	suite.Require().Nil(suite.engine.RemoveBudgetBundle(suite.ctx, lines.Bundles[0].ID))

	budget = suite.budget(s.budget.ID)
	suite.assertDecimal("0", budget.TotalOnetimeCosts)
	suite.assertDecimal("0", budget.TotalRecurringCosts)

	err = suite.engine.RemoveBudgetStaff(suite.ctx, staffLine.ID)
	suite.Assert().ErrorIs(err, models.ErrResourceNotFound)
}

func (suite *TestSuiteStandard) TestBudgetBackdatedLines() {
	staff := suite.createTestStaff(models.Staff{Name: "S", Salary: d("1000")})
	budget := suite.createTestBudget("G")

	past := types.NewMonth(2026, time.September)
	current := types.NewMonth(2026, time.October)

	_, err := suite.engine.AddBudgetStaff(suite.ctx, budget.ID, rollup.StaffLine{
		StaffID:    staff.ID,
		Deployment: models.Deployment{Quantity: 1, Months: 1, StartMonth: &past},
	})
	suite.Assert().ErrorIs(err, models.ErrBackdatedLine)

	line, err := suite.engine.AddBudgetStaff(suite.ctx, budget.ID, rollup.StaffLine{
		StaffID:    staff.ID,
		Deployment: models.Deployment{Quantity: 1, Months: 1, StartMonth: &current},
	})
	suite.Require().Nil(err)

	lines, err := suite.engine.BudgetLines(suite.ctx, budget.ID)
	suite.Require().Nil(err)
	suite.Require().NotNil(lines.Staff[0].StartMonth)
	suite.Assert().Equal(current.String(), lines.Staff[0].StartMonth.String())

	settings := config.DefaultSettings()
	settings.AllowBackdatedBudget = true
	engine := suite.newEngine(settings)

	_, err = engine.UpdateBudgetStaff(suite.ctx, line.ID, rollup.StaffLine{
		StaffID:    staff.ID,
		Deployment: models.Deployment{Quantity: 1, Months: 1, StartMonth: &past},
	})
	suite.Assert().Nil(err)
}

func (suite *TestSuiteStandard) TestBudgetSetLines() {
	s := suite.buildScenario()
	other := suite.createTestLocation(models.Location{Code: "JAC"})

	lines, err := suite.engine.SetBudgetLines(suite.ctx, s.budget.ID,
		[]rollup.StaffLine{
			{StaffID: s.staff.ID, Deployment: models.Deployment{Quantity: 1, Months: 1}},
		},
		[]rollup.BundleLine{
			{BundleID: s.bundle.ID, LocationID: &s.location.ID, Deployment: models.Deployment{Quantity: 1, Months: 1}},
			{BundleID: s.bundle.ID, LocationID: &other.ID, Deployment: models.Deployment{Quantity: 1, Months: 1}},
		},
	)
	suite.Require().Nil(err)
	suite.Assert().Len(lines.Staff, 1)
	suite.Assert().Len(lines.Bundles, 2)

	// 50 + 2 × 60, 1000 + 2 × 12
	budget := suite.budget(s.budget.ID)
	suite.assertDecimal("170", budget.TotalOnetimeCosts)
	suite.assertDecimal("1024", budget.TotalRecurringCosts)

	_, err = suite.engine.SetBudgetLines(suite.ctx, s.budget.ID, nil, []rollup.BundleLine{
		{BundleID: s.bundle.ID, Deployment: models.Deployment{Quantity: 1, Months: 1}},
		{BundleID: s.bundle.ID, Deployment: models.Deployment{Quantity: 2, Months: 1}},
	})
	suite.Assert().ErrorIs(err, models.ErrDuplicateAssociation)

	_, err = suite.engine.SetBudgetLines(suite.ctx, s.budget.ID, []rollup.StaffLine{
		{StaffID: s.staff.ID, Deployment: models.Deployment{Quantity: 1}},
	}, nil)
	suite.Assert().ErrorIs(err, models.ErrInvalidQuantity)

	// Failed replacements leave the lines untouched
	lines, err = suite.engine.BudgetLines(suite.ctx, s.budget.ID)
	suite.Require().Nil(err)
	suite.Assert().Len(lines.Bundles, 2)
	suite.assertDecimal("170", suite.budget(s.budget.ID).TotalOnetimeCosts)

	lines, err = suite.engine.SetBudgetLines(suite.ctx, s.budget.ID, nil, nil)
	suite.Require().Nil(err)
	suite.Assert().Empty(lines.Staff)
	suite.Assert().Empty(lines.Bundles)
	suite.assertDecimal("0", suite.budget(s.budget.ID).TotalOnetimeCosts)
}

// TestBudgetSetLinesListedTwice verifies that a line listed twice is
// rejected before anything is written, so no existing line is named.
func (suite *TestSuiteStandard) TestBudgetSetLinesListedTwice() {
	s := suite.buildScenario()

	_, err := suite.engine.SetBudgetLines(suite.ctx, s.budget.ID, []rollup.StaffLine{
		{StaffID: s.staff.ID, LocationID: &s.location.ID, Deployment: models.Deployment{Quantity: 1, Months: 1}},
		{StaffID: s.staff.ID, LocationID: &s.location.ID, Deployment: models.Deployment{Quantity: 2, Months: 1}},
	}, nil)
	suite.Require().ErrorIs(err, models.ErrDuplicateAssociation)

	var duplicate *models.DuplicateError
	suite.Assert().False(errors.As(err, &duplicate), "no existing line must be offered for editing")

	// The same staff type at a different place is fine
	_, err = suite.engine.SetBudgetLines(suite.ctx, s.budget.ID, []rollup.StaffLine{
		{StaffID: s.staff.ID, LocationID: &s.location.ID, Deployment: models.Deployment{Quantity: 1, Months: 1}},
		{StaffID: s.staff.ID, Deployment: models.Deployment{Quantity: 1, Months: 1}},
	}, []rollup.BundleLine{
		{BundleID: s.bundle.ID, Deployment: models.Deployment{Quantity: 1, Months: 1}},
		{BundleID: s.bundle.ID, Deployment: models.Deployment{Quantity: 1, Months: 1}},
	})
	suite.Require().ErrorIs(err, models.ErrDuplicateAssociation)
	suite.Assert().False(errors.As(err, &duplicate))

	suite.Assert().Empty(suite.audit.take(), "rejected replacements must not emit events")
	suite.assertDecimal("160", suite.budget(s.budget.ID).TotalOnetimeCosts)
}

func (suite *TestSuiteStandard) TestBudgetDelete() {
	s := suite.buildScenario()

	suite.Require().Nil(suite.engine.DeleteBudget(suite.ctx, s.budget.ID))
	suite.Assert().True(suite.budget(s.budget.ID).Deleted())

	// All lines are gone, nothing is referenced anymore
	suite.Assert().Nil(suite.engine.DeleteStaff(suite.ctx, s.staff.ID))
	suite.Assert().Nil(suite.engine.DeleteLocation(suite.ctx, s.location.ID))
	suite.Assert().Nil(suite.engine.DeleteBundle(suite.ctx, s.bundle.ID))

	err := suite.engine.DeleteBudget(suite.ctx, s.budget.ID)
	suite.Assert().ErrorIs(err, models.ErrResourceNotFound)

	suite.createTestBudget("G")
}
