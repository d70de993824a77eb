package rollup_test

import (
	"errors"

	"github.com/sahana-eden/budget/internal/models"
	"github.com/sahana-eden/budget/internal/rollup"
)

func (suite *TestSuiteStandard) TestBundleConsumptionFoldsIntoMonthly() {
	phone := suite.createTestItem(models.Item{Code: "SAT-PHONE", UnitCost: d("800"), MonthlyCost: d("30"), MinuteCost: d("1.5"), MegabyteCost: d("8")})
	kit := suite.createTestKit("PHONE-KIT")
	_, err := suite.engine.AddKitItem(suite.ctx, kit.ID, phone.ID, 1)
	suite.Require().Nil(err)

	bundle := suite.createTestBundle("Comms")
	_, err = suite.engine.AddBundleKit(suite.ctx, bundle.ID, kit.ID, models.Consumption{Quantity: 2, Minutes: 100, Megabytes: 10})
	suite.Require().Nil(err)

	// unit: 2 × 800
	// monthly: 2 × 30 + 2 × 100 × 1.5 + 2 × 10 × 8
	b := suite.bundle(bundle.ID)
	suite.assertDecimal("1600", b.TotalUnitCost)
	suite.assertDecimal("520", b.TotalMonthlyCost)

	_, err = suite.engine.AddBundleItem(suite.ctx, bundle.ID, phone.ID, models.Consumption{Quantity: 1, Minutes: 10})
	suite.Require().Nil(err)

	// + 800, + 30 + 10 × 1.5
	b = suite.bundle(bundle.ID)
	suite.assertDecimal("2400", b.TotalUnitCost)
	suite.assertDecimal("565", b.TotalMonthlyCost)

	// A change of the item reaches the bundle through the kit and directly
	_, err = suite.engine.UpdateItem(suite.ctx, phone.ID, models.Item{MinuteCost: d("1")}, "MinuteCost")
	suite.Require().Nil(err)

	// 2 × 30 + 2 × 100 × 1 + 2 × 10 × 8 + 30 + 10 × 1
	suite.assertDecimal("460", suite.bundle(bundle.ID).TotalMonthlyCost)
	suite.assertClean()
}

func (suite *TestSuiteStandard) TestBundleLineOperations() {
	s := suite.buildScenario()
	item := suite.createTestItem(models.Item{Code: "B", UnitCost: d("5")})

	line, err := suite.engine.AddBundleItem(suite.ctx, s.bundle.ID, item.ID, models.Consumption{Quantity: 2})
	suite.Require().Nil(err)
	suite.assertDecimal("70", suite.bundle(s.bundle.ID).TotalUnitCost)

	_, err = suite.engine.AddBundleItem(suite.ctx, s.bundle.ID, item.ID, models.Consumption{Quantity: 1})
	var duplicate *models.DuplicateError
	suite.Require().True(errors.As(err, &duplicate))
	suite.Assert().Equal(line.ID, duplicate.ExistingID)

	line, err = suite.engine.UpdateBundleItem(suite.ctx, line.ID, models.Consumption{Quantity: 4})
	suite.Require().Nil(err)
	suite.Assert().Equal(uint(4), line.Quantity)
	suite.assertDecimal("80", suite.bundle(s.bundle.ID).TotalUnitCost)

	_, err = suite.engine.UpdateBundleItem(suite.ctx, line.ID, models.Consumption{Quantity: 0})
	suite.Assert().ErrorIs(err, models.ErrInvalidQuantity)

	suite.Require().Nil(suite.engine.RemoveBundleItem(suite.ctx, line.ID))
	suite.assertDecimal("60", suite.bundle(s.bundle.ID).TotalUnitCost)

	contents, err := suite.engine.BundleContents(suite.ctx, s.bundle.ID)
	suite.Require().Nil(err)
	suite.Require().Len(contents.Kits, 1)
	suite.Assert().Empty(contents.Items)

	_, err = suite.engine.AddBundleKit(suite.ctx, s.bundle.ID, s.kit.ID, models.Consumption{Quantity: 1})
	suite.Assert().ErrorIs(err, models.ErrDuplicateAssociation)

	kitLine, err := suite.engine.UpdateBundleKit(suite.ctx, contents.Kits[0].ID, models.Consumption{Quantity: 1})
	suite.Require().Nil(err)
	suite.Assert().Equal(uint(1), kitLine.Quantity)

	// The bundle halves, so does its share in the budget: 100 + 30, 6180 + 6 × 3
	budget := suite.budget(s.budget.ID)
	suite.assertDecimal("130", budget.TotalOnetimeCosts)
	suite.assertDecimal("6198", budget.TotalRecurringCosts)

	suite.Require().Nil(suite.engine.RemoveBundleKit(suite.ctx, kitLine.ID))
	suite.assertDecimal("0", suite.bundle(s.bundle.ID).TotalUnitCost)
	suite.assertClean()
}

func (suite *TestSuiteStandard) TestBundleAddKitFails() {
	bundle := suite.createTestBundle("V")
	kit := suite.createTestKit("K")

	_, err := suite.engine.AddBundleKit(suite.ctx, bundle.ID, 9999, models.Consumption{Quantity: 1})
	suite.Assert().ErrorIs(err, models.ErrUnknownReference)

	_, err = suite.engine.AddBundleKit(suite.ctx, bundle.ID, kit.ID, models.Consumption{})
	suite.Assert().ErrorIs(err, models.ErrInvalidQuantity)

	suite.Require().Nil(suite.engine.DeleteKit(suite.ctx, kit.ID))
	_, err = suite.engine.AddBundleKit(suite.ctx, bundle.ID, kit.ID, models.Consumption{Quantity: 1})
	suite.Assert().ErrorIs(err, models.ErrUnknownReference)
}

func (suite *TestSuiteStandard) TestBundleSetContents() {
	a := suite.createTestItem(models.Item{Code: "A", UnitCost: d("10"), MonthlyCost: d("1")})
	kit := suite.createTestKit("K")
	_, err := suite.engine.AddKitItem(suite.ctx, kit.ID, a.ID, 2)
	suite.Require().Nil(err)
	bundle := suite.createTestBundle("V")

	contents, err := suite.engine.SetBundleContents(suite.ctx, bundle.ID, []rollup.BundleContent{
		{KitID: &kit.ID, Consumption: models.Consumption{Quantity: 1}},
		{ItemID: &a.ID, Consumption: models.Consumption{Quantity: 3}},
	})
	suite.Require().Nil(err)
	suite.Assert().Len(contents.Kits, 1)
	suite.Assert().Len(contents.Items, 1)
	suite.Require().NotNil(contents.Kits[0].Kit)

	// 1 × 20 + 3 × 10, 1 × 2 + 3 × 1
	b := suite.bundle(bundle.ID)
	suite.assertDecimal("50", b.TotalUnitCost)
	suite.assertDecimal("5", b.TotalMonthlyCost)

	kitLine := contents.Kits[0].ID
	contents, err = suite.engine.SetBundleContents(suite.ctx, bundle.ID, []rollup.BundleContent{
		{KitID: &kit.ID, Consumption: models.Consumption{Quantity: 2}},
	})
	suite.Require().Nil(err)
	suite.Assert().Equal(kitLine, contents.Kits[0].ID)
	suite.Assert().Empty(contents.Items)
	suite.assertDecimal("40", suite.bundle(bundle.ID).TotalUnitCost)

	tests := []struct {
		name     string
		contents []rollup.BundleContent
		err      error
	}{
		{"Neither kit nor item", []rollup.BundleContent{{Consumption: models.Consumption{Quantity: 1}}}, models.ErrInvalidContent},
		{"Kit and item", []rollup.BundleContent{{KitID: &kit.ID, ItemID: &a.ID, Consumption: models.Consumption{Quantity: 1}}}, models.ErrInvalidContent},
		{"Kit twice", []rollup.BundleContent{{KitID: &kit.ID, Consumption: models.Consumption{Quantity: 1}}, {KitID: &kit.ID, Consumption: models.Consumption{Quantity: 1}}}, models.ErrDuplicateAssociation},
		{"Item twice", []rollup.BundleContent{{ItemID: &a.ID, Consumption: models.Consumption{Quantity: 1}}, {ItemID: &a.ID, Consumption: models.Consumption{Quantity: 2}}}, models.ErrDuplicateAssociation},
		{"Zero quantity", []rollup.BundleContent{{ItemID: &a.ID}}, models.ErrInvalidQuantity},
		{"Unknown item", []rollup.BundleContent{{ItemID: ptr(uint(9999)), Consumption: models.Consumption{Quantity: 1}}}, models.ErrUnknownReference},
	}

	for _, tt := range tests {
		_, err := suite.engine.SetBundleContents(suite.ctx, bundle.ID, tt.contents)
		suite.Assert().ErrorIs(err, tt.err, tt.name)
	}

	suite.assertDecimal("40", suite.bundle(bundle.ID).TotalUnitCost)
}

func (suite *TestSuiteStandard) TestBundleDelete() {
	s := suite.buildScenario()

	err := suite.engine.DeleteBundle(suite.ctx, s.bundle.ID)
	suite.Assert().ErrorIs(err, models.ErrReferenceInUse)

	lines, err := suite.engine.BudgetLines(suite.ctx, s.budget.ID)
	suite.Require().Nil(err)
	suite.Require().Nil(suite.engine.RemoveBudgetBundle(suite.ctx, lines.Bundles[0].ID))

	suite.Require().Nil(suite.engine.DeleteBundle(suite.ctx, s.bundle.ID))
	suite.Assert().True(suite.bundle(s.bundle.ID).Deleted())

	// The kit is no longer cited
	suite.Assert().Nil(suite.engine.DeleteKit(suite.ctx, s.kit.ID))

	bundles, err := suite.engine.ListBundles(suite.ctx, rollup.BundleFilter{IncludeDeleted: true})
	suite.Require().Nil(err)
	suite.Assert().Len(bundles, 1)

	_, err = suite.engine.GetBundleByName(suite.ctx, "V")
	suite.Assert().ErrorIs(err, models.ErrResourceNotFound)
}
