package rollup_test

import (
	"errors"

	"github.com/sahana-eden/budget/internal/models"
	"github.com/sahana-eden/budget/internal/rollup"
)

func (suite *TestSuiteStandard) TestScenarioBasicKit() {
	item := suite.createTestItem(models.Item{Code: "A", UnitCost: d("10"), MonthlyCost: d("2")})
	kit := suite.createTestKit("K")

	_, err := suite.engine.AddKitItem(suite.ctx, kit.ID, item.ID, 3)
	suite.Require().Nil(err)

	totals, err := suite.engine.KitTotals(suite.ctx, kit.ID)
	suite.Require().Nil(err)
	suite.assertDecimal("30", totals.TotalUnitCost)
	suite.assertDecimal("6", totals.TotalMonthlyCost)
	suite.assertDecimal("0", totals.TotalMinuteCost)
	suite.assertDecimal("0", totals.TotalMegabyteCost)
	suite.assertClean()
}

func (suite *TestSuiteStandard) TestScenarioItemUpdatePropagates() {
	s := suite.buildScenario()

	_, err := suite.engine.UpdateItem(suite.ctx, s.item.ID, models.Item{UnitCost: d("20")}, "UnitCost")
	suite.Require().Nil(err)

	suite.assertDecimal("60", suite.kit(s.kit.ID).TotalUnitCost)
	suite.assertDecimal("120", suite.bundle(s.bundle.ID).TotalUnitCost)

	// 2 × 50 + 1 × 120
	suite.assertDecimal("220", suite.budget(s.budget.ID).TotalOnetimeCosts)
	suite.assertClean()
}

func (suite *TestSuiteStandard) TestScenarioKitInBundle() {
	s := suite.buildScenario()

	bundle := suite.bundle(s.bundle.ID)
	suite.assertDecimal("60", bundle.TotalUnitCost)
	suite.assertDecimal("12", bundle.TotalMonthlyCost)

	_, err := suite.engine.UpdateItem(suite.ctx, s.item.ID, models.Item{UnitCost: d("20")}, "UnitCost")
	suite.Require().Nil(err)

	bundle = suite.bundle(s.bundle.ID)
	suite.assertDecimal("120", bundle.TotalUnitCost)
	suite.assertDecimal("12", bundle.TotalMonthlyCost)
}

func (suite *TestSuiteStandard) TestScenarioBundleInBudget() {
	s := suite.buildScenario()

	_, err := suite.engine.UpdateItem(suite.ctx, s.item.ID, models.Item{UnitCost: d("20")}, "UnitCost")
	suite.Require().Nil(err)

	totals, err := suite.engine.BudgetTotals(suite.ctx, s.budget.ID)
	suite.Require().Nil(err)
	suite.assertDecimal("220", totals.TotalOnetimeCosts)
	suite.assertDecimal("6216", totals.TotalRecurringCosts)
	suite.assertClean()
}

func (suite *TestSuiteStandard) TestScenarioDuplicateRejected() {
	s := suite.buildScenario()

	lines, err := suite.engine.KitItems(suite.ctx, s.kit.ID)
	suite.Require().Nil(err)
	suite.Require().Len(lines, 1)

	_, err = suite.engine.AddKitItem(suite.ctx, s.kit.ID, s.item.ID, 5)
	suite.Require().ErrorIs(err, models.ErrDuplicateAssociation)

	var duplicate *models.DuplicateError
	suite.Require().True(errors.As(err, &duplicate))
	suite.Assert().Equal(lines[0].ID, duplicate.ExistingID)

	suite.assertDecimal("30", suite.kit(s.kit.ID).TotalUnitCost)
	suite.Assert().Empty(suite.audit.take(), "A rejected mutation must not emit audit events")
}

func (suite *TestSuiteStandard) TestScenarioReferenceProtection() {
	s := suite.buildScenario()

	err := suite.engine.DeleteItem(suite.ctx, s.item.ID)
	suite.Require().ErrorIs(err, models.ErrReferenceInUse)

	_, err = suite.engine.GetItem(suite.ctx, s.item.ID)
	suite.Require().Nil(err)
	suite.assertDecimal("30", suite.kit(s.kit.ID).TotalUnitCost)

	// Soft-deleting removes the item from every total
	_, err = suite.engine.SoftDeleteItem(suite.ctx, s.item.ID)
	suite.Require().Nil(err)

	suite.assertDecimal("0", suite.kit(s.kit.ID).TotalUnitCost)
	suite.assertDecimal("0", suite.bundle(s.bundle.ID).TotalUnitCost)
	suite.assertDecimal("100", suite.budget(s.budget.ID).TotalOnetimeCosts)
	suite.assertClean()
}

func (suite *TestSuiteStandard) TestScenarioEvents() {
	s := suite.buildScenario()

	_, err := suite.engine.UpdateItem(suite.ctx, s.item.ID, models.Item{UnitCost: d("20")}, "UnitCost")
	suite.Require().Nil(err)

	events := suite.audit.take()
	suite.Require().Len(events, 4)

	expected := []rollup.Event{
		{Action: rollup.ActionUpdate, Kind: rollup.KindItem, ID: s.item.ID, At: now},
		{Action: rollup.ActionRecompute, Kind: rollup.KindKit, ID: s.kit.ID, At: now},
		{Action: rollup.ActionRecompute, Kind: rollup.KindBundle, ID: s.bundle.ID, At: now},
		{Action: rollup.ActionRecompute, Kind: rollup.KindBudget, ID: s.budget.ID, At: now},
	}
	suite.Assert().Equal(expected, events)
}
