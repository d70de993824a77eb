package rollup_test

import (
	"context"
	"fmt"
	"sync"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/sahana-eden/budget/internal/models"
	"github.com/sahana-eden/budget/internal/rollup"
)

func (suite *TestSuiteStandard) TestRefreshIdempotent() {
	s := suite.buildScenario()
	before := suite.budget(s.budget.ID)

	budget, err := suite.engine.Refresh(suite.ctx, s.budget.ID)
	suite.Require().Nil(err)
	suite.Assert().True(before.BudgetCosts.Equal(budget.BudgetCosts))

	_, err = suite.engine.Refresh(suite.ctx, s.budget.ID)
	suite.Require().Nil(err)
	suite.Assert().Empty(suite.audit.take())
}

func (suite *TestSuiteStandard) TestRefreshRepairsDrift() {
	s := suite.buildScenario()

	err := models.DB.Model(&models.Kit{}).Where("id = ?", s.kit.ID).UpdateColumn("total_unit_cost", d("1")).Error
	suite.Require().Nil(err)

	drifts, err := suite.engine.Verify(suite.ctx)
	suite.Require().Nil(err)
	suite.Require().Len(drifts, 1)
	suite.Assert().Equal(rollup.KindKit, drifts[0].Kind)
	suite.Assert().Equal(s.kit.ID, drifts[0].ID)
	suite.Assert().Equal("totalUnitCost", drifts[0].Field)
	suite.assertDecimal("1", drifts[0].Stored)
	suite.assertDecimal("30", drifts[0].Expected)
	suite.Assert().Contains(drifts[0].String(), "expected 30")

	_, err = suite.engine.Refresh(suite.ctx, s.budget.ID)
	suite.Require().Nil(err)

	suite.Assert().Equal([]rollup.Event{
		{Action: rollup.ActionRecompute, Kind: rollup.KindKit, ID: s.kit.ID, At: now},
	}, suite.audit.take())
	suite.assertClean()
}

func (suite *TestSuiteStandard) TestRefreshAll() {
	s := suite.buildScenario()
	unused := suite.createTestKit("UNUSED")
	_, err := suite.engine.AddKitItem(suite.ctx, unused.ID, s.item.ID, 1)
	suite.Require().Nil(err)

	err = models.DB.Model(&models.Kit{}).Where("id = ?", unused.ID).UpdateColumn("total_monthly_cost", d("99")).Error
	suite.Require().Nil(err)
	err = models.DB.Model(&models.Budget{}).Where("id = ?", s.budget.ID).UpdateColumn("total_onetime_costs", d("0")).Error
	suite.Require().Nil(err)

	drifts, err := suite.engine.Verify(suite.ctx)
	suite.Require().Nil(err)
	suite.Assert().Len(drifts, 2)

	suite.Require().Nil(suite.engine.RefreshAll(suite.ctx))
	suite.assertClean()
	suite.assertDecimal("2", suite.kit(unused.ID).TotalMonthlyCost)
	suite.assertDecimal("160", suite.budget(s.budget.ID).TotalOnetimeCosts)
}

func (suite *TestSuiteStandard) TestRefreshDeletedBudget() {
	budget := suite.createTestBudget("G")
	suite.Require().Nil(suite.engine.DeleteBudget(suite.ctx, budget.ID))

	_, err := suite.engine.Refresh(suite.ctx, budget.ID)
	suite.Assert().ErrorIs(err, models.ErrResourceNotFound)
}

func (suite *TestSuiteStandard) TestMutationRevertIdentity() {
	s := suite.buildScenario()

	kit := suite.kit(s.kit.ID).KitCosts
	bundle := suite.bundle(s.bundle.ID).BundleCosts
	budget := suite.budget(s.budget.ID).BudgetCosts

	_, err := suite.engine.UpdateItem(suite.ctx, s.item.ID, models.Item{UnitCost: d("12.34"), MonthlyCost: d("0.01")}, "UnitCost", "MonthlyCost")
	suite.Require().Nil(err)
	suite.Assert().False(kit.Equal(suite.kit(s.kit.ID).KitCosts))

	_, err = suite.engine.UpdateItem(suite.ctx, s.item.ID, models.Item{UnitCost: d("10"), MonthlyCost: d("2")}, "UnitCost", "MonthlyCost")
	suite.Require().Nil(err)

	suite.Assert().Equal(kit.TotalUnitCost.String(), suite.kit(s.kit.ID).TotalUnitCost.String())
	suite.Assert().Equal(kit.TotalMonthlyCost.String(), suite.kit(s.kit.ID).TotalMonthlyCost.String())
	suite.Assert().Equal(bundle.TotalUnitCost.String(), suite.bundle(s.bundle.ID).TotalUnitCost.String())
	suite.Assert().Equal(bundle.TotalMonthlyCost.String(), suite.bundle(s.bundle.ID).TotalMonthlyCost.String())
	suite.Assert().Equal(budget.TotalOnetimeCosts.String(), suite.budget(s.budget.ID).TotalOnetimeCosts.String())
	suite.Assert().Equal(budget.TotalRecurringCosts.String(), suite.budget(s.budget.ID).TotalRecurringCosts.String())
}

func (suite *TestSuiteStandard) TestRecomputeOverflow() {
	item := suite.createTestItem(models.Item{Code: "GOLD", UnitCost: d("4000000000000")})
	kit := suite.createTestKit("K")

	_, err := suite.engine.AddKitItem(suite.ctx, kit.ID, item.ID, 3)
	suite.Require().ErrorIs(err, models.ErrRecomputeOverflow)

	lines, err := suite.engine.KitItems(suite.ctx, kit.ID)
	suite.Require().Nil(err)
	suite.Assert().Empty(lines, "An overflowing cascade must roll back the whole mutation")

	_, err = suite.engine.AddKitItem(suite.ctx, kit.ID, item.ID, 2)
	suite.Require().Nil(err)

	// The overflow happens one level down, the item update is rolled back with it
	_, err = suite.engine.UpdateItem(suite.ctx, item.ID, models.Item{UnitCost: d("6000000000000")}, "UnitCost")
	suite.Require().ErrorIs(err, models.ErrRecomputeOverflow)

	item, err = suite.engine.GetItem(suite.ctx, item.ID)
	suite.Require().Nil(err)
	suite.assertDecimal("4000000000000", item.UnitCost)
	suite.assertDecimal("8000000000000", suite.kit(kit.ID).TotalUnitCost)
}

// TestLargeAmountsKeepCents walks amounts with cents close to the
// largest accepted value through all layers.
func (suite *TestSuiteStandard) TestLargeAmountsKeepCents() {
	item := suite.createTestItem(models.Item{Code: "VSAT", UnitCost: d("3333333333333.33"), MonthlyCost: d("1234567890123.45")})

	item, err := suite.engine.GetItem(suite.ctx, item.ID)
	suite.Require().Nil(err)
	suite.assertDecimal("3333333333333.33", item.UnitCost)
	suite.assertDecimal("1234567890123.45", item.MonthlyCost)

	kit := suite.createTestKit("K")
	_, err = suite.engine.AddKitItem(suite.ctx, kit.ID, item.ID, 3)
	suite.Require().Nil(err)
	suite.assertDecimal("9999999999999.99", suite.kit(kit.ID).TotalUnitCost)
	suite.assertDecimal("3703703670370.35", suite.kit(kit.ID).TotalMonthlyCost)

	bundle := suite.createTestBundle("V")
	_, err = suite.engine.AddBundleKit(suite.ctx, bundle.ID, kit.ID, models.Consumption{Quantity: 1})
	suite.Require().Nil(err)
	suite.assertDecimal("9999999999999.99", suite.bundle(bundle.ID).TotalUnitCost)

	budget := suite.createTestBudget("G")
	_, err = suite.engine.AddBudgetBundle(suite.ctx, budget.ID, rollup.BundleLine{
		BundleID:   bundle.ID,
		Deployment: models.Deployment{Quantity: 1, Months: 2},
	})
	suite.Require().Nil(err)
	suite.assertDecimal("9999999999999.99", suite.budget(budget.ID).TotalOnetimeCosts)
	suite.assertDecimal("7407407340740.7", suite.budget(budget.ID).TotalRecurringCosts)
	suite.assertClean()

	// One cent more does not fit
	_, err = suite.engine.UpdateItem(suite.ctx, item.ID, models.Item{UnitCost: d("3333333333333.34")}, "UnitCost")
	suite.Require().ErrorIs(err, models.ErrRecomputeOverflow)
	suite.assertDecimal("9999999999999.99", suite.budget(budget.ID).TotalOnetimeCosts)
}

func (suite *TestSuiteStandard) TestStorageFailure() {
	item := suite.createTestItem(models.Item{Code: "A"})
	suite.audit.take()
	suite.CloseDB()

	_, err := suite.engine.UpdateItem(suite.ctx, item.ID, models.Item{Description: "x"}, "Description")
	suite.Assert().ErrorIs(err, models.ErrStorageFailure)

	_, err = suite.engine.GetItem(suite.ctx, item.ID)
	suite.Assert().ErrorIs(err, models.ErrStorageFailure)

	_, err = suite.engine.Verify(suite.ctx)
	suite.Assert().ErrorIs(err, models.ErrStorageFailure)

	suite.Assert().Empty(suite.audit.take(), "Failed mutations must not emit audit events")
}

func (suite *TestSuiteStandard) TestCancelledContext() {
	ctx, cancel := context.WithCancel(suite.ctx)
	cancel()

	_, err := suite.engine.CreateItem(ctx, models.Item{Code: "A"})
	suite.Assert().ErrorIs(err, context.Canceled)
}

func (suite *TestSuiteStandard) TestConcurrentUpdates() {
	kit := suite.createTestKit("K")
	bundle := suite.createTestBundle("V")
	_, err := suite.engine.AddBundleKit(suite.ctx, bundle.ID, kit.ID, models.Consumption{Quantity: 1})
	suite.Require().Nil(err)

	items := make([]models.Item, 8)
	for i := range items {
		items[i] = suite.createTestItem(models.Item{Code: fmt.Sprintf("ITEM-%d", i), UnitCost: d("1")})
		_, err := suite.engine.AddKitItem(suite.ctx, kit.ID, items[i].ID, 1)
		suite.Require().Nil(err)
	}

	var wg sync.WaitGroup
	errs := make(chan error, len(items)*2)

	for _, item := range items {
		wg.Add(2)

		go func(id uint) {
			defer wg.Done()
			_, err := suite.engine.UpdateItem(suite.ctx, id, models.Item{UnitCost: d("10")}, "UnitCost")
			errs <- err
		}(item.ID)

		go func(id uint) {
			defer wg.Done()
			_, err := suite.engine.UpdateItem(suite.ctx, id, models.Item{MonthlyCost: d("1")}, "MonthlyCost")
			errs <- err
		}(item.ID)
	}

	wg.Wait()
	close(errs)

	for err := range errs {
		suite.Assert().Nil(err)
	}

	k := suite.kit(kit.ID)
	suite.assertDecimal("80", k.TotalUnitCost)
	suite.assertDecimal("8", k.TotalMonthlyCost)
	suite.assertDecimal("80", suite.bundle(bundle.ID).TotalUnitCost)
	suite.assertClean()
}

func (suite *TestSuiteStandard) TestSnapshot() {
	s := suite.buildScenario()
	direct := suite.createTestItem(models.Item{Code: "B", UnitCost: d("5"), MonthlyCost: d("1")})
	_, err := suite.engine.AddBundleItem(suite.ctx, s.bundle.ID, direct.ID, models.Consumption{Quantity: 1})
	suite.Require().Nil(err)

	snapshot, err := suite.engine.Snapshot(suite.ctx, s.budget.ID)
	suite.Require().Nil(err)

	suite.Assert().Equal("G", snapshot.Budget.Name)
	suite.Assert().Equal("USD", snapshot.Currency)
	suite.assertDecimal("15", snapshot.Overlays.ShippingPercent)
	suite.assertDecimal("7", snapshot.Overlays.IndirectPercent)
	suite.Assert().Equal(now, snapshot.TakenAt)

	suite.Require().Len(snapshot.Staff, 1)
	suite.Require().NotNil(snapshot.Staff[0].Staff)
	suite.Require().NotNil(snapshot.Staff[0].Location)
	suite.Assert().Equal("L", snapshot.Staff[0].Location.Code)
	suite.assertDecimal("100", snapshot.Staff[0].OnetimeCost)
	suite.assertDecimal("6180", snapshot.Staff[0].RecurringCost)

	suite.Require().Len(snapshot.Bundles, 1)
	entry := snapshot.Bundles[0]
	suite.Require().NotNil(entry.Bundle)
	suite.Require().Len(entry.Kits, 1)
	suite.Require().Len(entry.Kits[0].Items, 1)
	suite.Assert().Equal("A", entry.Kits[0].Items[0].Item.Code)
	suite.Require().Len(entry.Items, 1)
	suite.Assert().Equal("B", entry.Items[0].Item.Code)

	// 60 + 5, (12 + 1) × 3
	suite.assertDecimal("65", entry.OnetimeCost)
	suite.assertDecimal("39", entry.RecurringCost)

	// Line costs add up to the totals
	suite.True(snapshot.Staff[0].OnetimeCost.Add(entry.OnetimeCost).Equal(snapshot.Budget.TotalOnetimeCosts))
	suite.True(snapshot.Staff[0].RecurringCost.Add(entry.RecurringCost).Equal(snapshot.Budget.TotalRecurringCosts))

	_, err = suite.engine.Snapshot(suite.ctx, 9999)
	suite.Assert().ErrorIs(err, models.ErrResourceNotFound)
}

func (suite *TestSuiteStandard) TestSnapshotSoftDeletedStaff() {
	s := suite.buildScenario()

	_, err := suite.engine.SoftDeleteStaff(suite.ctx, s.staff.ID)
	suite.Require().Nil(err)

	snapshot, err := suite.engine.Snapshot(suite.ctx, s.budget.ID)
	suite.Require().Nil(err)
	suite.Require().Len(snapshot.Staff, 1)
	suite.Assert().Nil(snapshot.Staff[0].Staff)
	suite.assertDecimal("0", snapshot.Staff[0].RecurringCost)
}

func (suite *TestSuiteStandard) TestVerifyCascadesOff() {
	settings := suite.engine.Settings()
	settings.VerifyCascades = false
	suite.engine = suite.newEngine(settings)

	s := suite.buildScenario()
	suite.assertDecimal("160", suite.budget(s.budget.ID).TotalOnetimeCosts)
	suite.assertClean()
}

func (suite *TestSuiteStandard) TestMetrics() {
	suite.buildScenario()

	collectors := rollup.Collectors()
	suite.Require().Len(collectors, 2)
	suite.Assert().GreaterOrEqual(testutil.CollectAndCount(collectors[0], "rollup_recomputes_total"), 3)
	suite.Assert().Equal(1, testutil.CollectAndCount(collectors[1], "rollup_cascade_duration_seconds"))
}
