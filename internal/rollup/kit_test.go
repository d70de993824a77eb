package rollup_test

import (
	"github.com/sahana-eden/budget/internal/models"
	"github.com/sahana-eden/budget/internal/rollup"
)

func (suite *TestSuiteStandard) TestKitCreateUpdate() {
	kit, err := suite.engine.CreateKit(suite.ctx, models.Kit{
		Code:     "VSAT-KIT",
		KitCosts: models.KitCosts{TotalUnitCost: d("500")},
	})
	suite.Require().Nil(err)
	suite.assertDecimal("0", kit.TotalUnitCost)

	_, err = suite.engine.CreateKit(suite.ctx, models.Kit{Code: "VSAT-KIT"})
	suite.Assert().ErrorIs(err, models.ErrDuplicateCode)

	kit, err = suite.engine.UpdateKit(suite.ctx, kit.ID, models.Kit{Description: "Uplink"}, "Description")
	suite.Require().Nil(err)
	suite.Assert().Equal("Uplink", kit.Description)

	_, err = suite.engine.UpdateKit(suite.ctx, kit.ID, models.Kit{}, "TotalUnitCost")
	suite.Assert().ErrorIs(err, models.ErrUnknownField)

	found, err := suite.engine.GetKitByCode(suite.ctx, "VSAT-KIT")
	suite.Require().Nil(err)
	suite.Assert().Equal(kit.ID, found.ID)

	kits, err := suite.engine.ListKits(suite.ctx, rollup.KitFilter{Code: "VSAT*"})
	suite.Require().Nil(err)
	suite.Assert().Len(kits, 1)
}

func (suite *TestSuiteStandard) TestKitAllDimensions() {
	item := suite.createTestItem(models.Item{Code: "SAT", UnitCost: d("1500"), MonthlyCost: d("40"), MinuteCost: d("0.5"), MegabyteCost: d("2")})
	kit := suite.createTestKit("K")

	_, err := suite.engine.AddKitItem(suite.ctx, kit.ID, item.ID, 2)
	suite.Require().Nil(err)

	kit = suite.kit(kit.ID)
	suite.assertDecimal("3000", kit.TotalUnitCost)
	suite.assertDecimal("80", kit.TotalMonthlyCost)
	suite.assertDecimal("1", kit.TotalMinuteCost)
	suite.assertDecimal("4", kit.TotalMegabyteCost)
}

func (suite *TestSuiteStandard) TestKitItemLineOperations() {
	s := suite.buildScenario()

	lines, err := suite.engine.KitItems(suite.ctx, s.kit.ID)
	suite.Require().Nil(err)
	suite.Require().Len(lines, 1)
	suite.Require().NotNil(lines[0].Item)
	suite.Assert().Equal("A", lines[0].Item.Code)

	_, err = suite.engine.UpdateKitItemQuantity(suite.ctx, lines[0].ID, 0)
	suite.Assert().ErrorIs(err, models.ErrInvalidQuantity)

	line, err := suite.engine.UpdateKitItemQuantity(suite.ctx, lines[0].ID, 5)
	suite.Require().Nil(err)
	suite.Assert().Equal(uint(5), line.Quantity)
	suite.assertDecimal("50", suite.kit(s.kit.ID).TotalUnitCost)
	suite.assertDecimal("100", suite.bundle(s.bundle.ID).TotalUnitCost)

	suite.Require().Nil(suite.engine.RemoveKitItem(suite.ctx, lines[0].ID))
	suite.assertDecimal("0", suite.kit(s.kit.ID).TotalUnitCost)
	suite.assertDecimal("0", suite.bundle(s.bundle.ID).TotalMonthlyCost)

	err = suite.engine.RemoveKitItem(suite.ctx, lines[0].ID)
	suite.Assert().ErrorIs(err, models.ErrResourceNotFound)

	// The item is no longer cited and can be deleted
	suite.Assert().Nil(suite.engine.DeleteItem(suite.ctx, s.item.ID))
	suite.assertClean()
}

func (suite *TestSuiteStandard) TestKitAddItemFails() {
	item := suite.createTestItem(models.Item{Code: "A"})
	kit := suite.createTestKit("K")

	_, err := suite.engine.AddKitItem(suite.ctx, kit.ID, item.ID, 0)
	suite.Assert().ErrorIs(err, models.ErrInvalidQuantity)

	_, err = suite.engine.AddKitItem(suite.ctx, kit.ID, 9999, 1)
	suite.Assert().ErrorIs(err, models.ErrUnknownReference)

	_, err = suite.engine.AddKitItem(suite.ctx, 9999, item.ID, 1)
	suite.Assert().ErrorIs(err, models.ErrResourceNotFound)
}

func (suite *TestSuiteStandard) TestKitUpdateItems() {
	a := suite.createTestItem(models.Item{Code: "A", UnitCost: d("10")})
	b := suite.createTestItem(models.Item{Code: "B", UnitCost: d("100")})
	c := suite.createTestItem(models.Item{Code: "C", UnitCost: d("1000")})
	kit := suite.createTestKit("K")

	_, err := suite.engine.SetKitItems(suite.ctx, kit.ID, []rollup.KitLine{{ItemID: a.ID, Quantity: 1}, {ItemID: b.ID, Quantity: 1}})
	suite.Require().Nil(err)
	suite.audit.take()

	lines, err := suite.engine.UpdateKitItems(suite.ctx, kit.ID, []rollup.KitItemEdit{
		{ItemID: a.ID, Quantity: 4},
		{ItemID: b.ID, Delete: true},
		{ItemID: c.ID, Quantity: 2},
	})
	suite.Require().Nil(err)
	suite.Require().Len(lines, 2)
	suite.assertDecimal("2040", suite.kit(kit.ID).TotalUnitCost)

	// One recompute for all edits
	recomputes := 0
	for _, e := range suite.audit.take() {
		if e.Action == rollup.ActionRecompute {
			recomputes++
		}
	}
	suite.Assert().Equal(1, recomputes)

	_, err = suite.engine.UpdateKitItems(suite.ctx, kit.ID, []rollup.KitItemEdit{{ItemID: b.ID, Delete: true}})
	suite.Assert().ErrorIs(err, models.ErrResourceNotFound)

	_, err = suite.engine.UpdateKitItems(suite.ctx, kit.ID, []rollup.KitItemEdit{{ItemID: a.ID, Quantity: 1}, {ItemID: a.ID, Quantity: 2}})
	suite.Assert().ErrorIs(err, models.ErrDuplicateAssociation)

	// A failing edit rolls back the edits before it
	_, err = suite.engine.UpdateKitItems(suite.ctx, kit.ID, []rollup.KitItemEdit{{ItemID: a.ID, Quantity: 1}, {ItemID: 9999, Quantity: 1}})
	suite.Assert().ErrorIs(err, models.ErrUnknownReference)
	suite.assertDecimal("2040", suite.kit(kit.ID).TotalUnitCost)
}

func (suite *TestSuiteStandard) TestKitSetItems() {
	a := suite.createTestItem(models.Item{Code: "A", UnitCost: d("10")})
	b := suite.createTestItem(models.Item{Code: "B", UnitCost: d("100")})
	kit := suite.createTestKit("K")

	lines, err := suite.engine.SetKitItems(suite.ctx, kit.ID, []rollup.KitLine{{ItemID: a.ID, Quantity: 3}})
	suite.Require().Nil(err)
	suite.Require().Len(lines, 1)
	kept := lines[0].ID

	lines, err = suite.engine.SetKitItems(suite.ctx, kit.ID, []rollup.KitLine{{ItemID: b.ID, Quantity: 1}, {ItemID: a.ID, Quantity: 2}})
	suite.Require().Nil(err)
	suite.Require().Len(lines, 2)
	suite.Assert().Equal(kept, lines[0].ID, "Lines of items that stay keep their ID")
	suite.Assert().Equal(uint(2), lines[0].Quantity)
	suite.assertDecimal("120", suite.kit(kit.ID).TotalUnitCost)

	_, err = suite.engine.SetKitItems(suite.ctx, kit.ID, []rollup.KitLine{{ItemID: a.ID, Quantity: 1}, {ItemID: a.ID, Quantity: 1}})
	suite.Assert().ErrorIs(err, models.ErrDuplicateAssociation)

	_, err = suite.engine.SetKitItems(suite.ctx, kit.ID, []rollup.KitLine{{ItemID: a.ID, Quantity: 0}})
	suite.Assert().ErrorIs(err, models.ErrInvalidQuantity)

	lines, err = suite.engine.SetKitItems(suite.ctx, kit.ID, nil)
	suite.Require().Nil(err)
	suite.Assert().Empty(lines)
	suite.assertDecimal("0", suite.kit(kit.ID).TotalUnitCost)
}

func (suite *TestSuiteStandard) TestKitDelete() {
	s := suite.buildScenario()

	err := suite.engine.DeleteKit(suite.ctx, s.kit.ID)
	suite.Assert().ErrorIs(err, models.ErrReferenceInUse)

	contents, err := suite.engine.BundleContents(suite.ctx, s.bundle.ID)
	suite.Require().Nil(err)
	suite.Require().Nil(suite.engine.RemoveBundleKit(suite.ctx, contents.Kits[0].ID))

	suite.Require().Nil(suite.engine.DeleteKit(suite.ctx, s.kit.ID))
	suite.Assert().True(suite.kit(s.kit.ID).Deleted())

	// The lines are gone, so the item can be deleted and the code reused
	suite.Assert().Nil(suite.engine.DeleteItem(suite.ctx, s.item.ID))
	suite.createTestKit("K")
}
