package v1_test

import (
	"fmt"
	"net/http"

	v1 "github.com/sahana-eden/budget/internal/controllers/v1"
	"github.com/sahana-eden/budget/internal/models"
	"github.com/sahana-eden/budget/internal/rollup"
	"github.com/sahana-eden/budget/test"
)

func (suite *TestSuiteStandard) TestKitsCreate() {
	kit := suite.createTestKit(v1.KitEditable{Code: "VSAT-KIT", Description: "Satellite uplink"})

	suite.Assert().Equal("VSAT-KIT", kit.Data.Code)
	suite.Assert().True(kit.Data.TotalUnitCost.IsZero(), "a new kit costs nothing")
	suite.Assert().Equal(kit.Data.Links.Self+"/items", kit.Data.Links.Items)

	suite.createTestKit(v1.KitEditable{Code: "VSAT-KIT"}, http.StatusConflict)
	suite.createTestKit(v1.KitEditable{Code: " "}, http.StatusBadRequest)
}

// TestKitsTotalsCannotBeSet verifies that totals in the body are ignored.
func (suite *TestSuiteStandard) TestKitsTotalsCannotBeSet() {
	kit := suite.createTestKit(v1.KitEditable{})

	r := suite.request(http.MethodPatch, kit.Data.Links.Self, map[string]any{
		"description":   "Updated",
		"totalUnitCost": "500",
	})
	test.AssertHTTPStatus(suite.T(), &r, http.StatusOK)

	var updated v1.KitResponse
	test.DecodeResponse(suite.T(), &r, &updated)
	suite.Assert().Equal("Updated", updated.Data.Description)
	suite.Assert().True(updated.Data.TotalUnitCost.IsZero())
}

func (suite *TestSuiteStandard) TestKitsAddItem() {
	s := suite.buildScenario()

	totals := suite.kitTotals(s.kit.Data.ID)
	suite.assertDecimal("30", totals.TotalUnitCost, "unit cost")
	suite.assertDecimal("6", totals.TotalMonthlyCost, "monthly cost")

	r := suite.request(http.MethodPost, s.kit.Data.Links.Items, rollup.KitLine{ItemID: s.item.Data.ID, Quantity: 1})
	test.AssertHTTPStatus(suite.T(), &r, http.StatusConflict)

	var e struct {
		Error      string `json:"error"`
		ExistingID *uint  `json:"existingId"`
	}
	test.DecodeResponse(suite.T(), &r, &e)
	suite.Require().NotNil(e.ExistingID, "the ID of the existing line must be returned")
	suite.Assert().Equal(s.kitItem.Data.ID, *e.ExistingID)

	// Nothing changed
	totals = suite.kitTotals(s.kit.Data.ID)
	suite.assertDecimal("30", totals.TotalUnitCost, "unit cost after duplicate")
}

func (suite *TestSuiteStandard) TestKitsAddItemFails() {
	item := suite.createTestItem(v1.ItemEditable{})
	kit := suite.createTestKit(v1.KitEditable{})

	suite.addKitItem(kit.Data.ID, rollup.KitLine{ItemID: item.Data.ID, Quantity: 0}, http.StatusBadRequest)
	suite.addKitItem(kit.Data.ID, rollup.KitLine{ItemID: 9999, Quantity: 1}, http.StatusBadRequest)
	suite.addKitItem(9999, rollup.KitLine{ItemID: item.Data.ID, Quantity: 1}, http.StatusNotFound)
}

func (suite *TestSuiteStandard) TestKitsSetItems() {
	s := suite.buildScenario()
	b := suite.createTestItem(v1.ItemEditable{UnitCost: d("5"), MonthlyCost: d("1")})

	r := suite.request(http.MethodPut, s.kit.Data.Links.Items, []rollup.KitLine{
		{ItemID: s.item.Data.ID, Quantity: 1},
		{ItemID: b.Data.ID, Quantity: 4},
	})
	test.AssertHTTPStatus(suite.T(), &r, http.StatusOK)

	var lines v1.KitItemListResponse
	test.DecodeResponse(suite.T(), &r, &lines)
	suite.Require().Len(lines.Data, 2)
	suite.Assert().Equal(s.kitItem.Data.ID, lines.Data[0].ID, "the line of a kept item keeps its ID")

	totals := suite.kitTotals(s.kit.Data.ID)
	suite.assertDecimal("30", totals.TotalUnitCost, "1×10 + 4×5")
	suite.assertDecimal("6", totals.TotalMonthlyCost, "1×2 + 4×1")

	// The same item twice is rejected as a whole
	r = suite.request(http.MethodPut, s.kit.Data.Links.Items, []rollup.KitLine{
		{ItemID: b.Data.ID, Quantity: 1},
		{ItemID: b.Data.ID, Quantity: 2},
	})
	test.AssertHTTPStatus(suite.T(), &r, http.StatusConflict)

	r = suite.request(http.MethodGet, s.kit.Data.Links.Items, nil)
	test.AssertHTTPStatus(suite.T(), &r, http.StatusOK)
	test.DecodeResponse(suite.T(), &r, &lines)
	suite.Assert().Len(lines.Data, 2)
}

func (suite *TestSuiteStandard) TestKitsUpdateItems() {
	s := suite.buildScenario()
	b := suite.createTestItem(v1.ItemEditable{UnitCost: d("5")})

	r := suite.request(http.MethodPatch, s.kit.Data.Links.Items, []rollup.KitItemEdit{
		{ItemID: s.item.Data.ID, Delete: true},
		{ItemID: b.Data.ID, Quantity: 2},
	})
	test.AssertHTTPStatus(suite.T(), &r, http.StatusOK)

	var lines v1.KitItemListResponse
	test.DecodeResponse(suite.T(), &r, &lines)
	suite.Require().Len(lines.Data, 1)
	suite.Assert().Equal(b.Data.ID, lines.Data[0].ItemID)

	totals := suite.kitTotals(s.kit.Data.ID)
	suite.assertDecimal("10", totals.TotalUnitCost, "2×5")

	budget := suite.budgetTotals(s.budget.Data.ID)
	suite.assertDecimal("120", budget.TotalOnetimeCosts, "100 travel + 2 kits × 10")
}

func (suite *TestSuiteStandard) TestKitsDelete() {
	s := suite.buildScenario()

	r := suite.request(http.MethodDelete, s.kit.Data.Links.Self, nil)
	test.AssertHTTPStatus(suite.T(), &r, http.StatusConflict)
	suite.Assert().Contains(r.Body.String(), models.ErrReferenceInUse.Error())

	unused := suite.createTestKit(v1.KitEditable{})
	suite.addKitItem(unused.Data.ID, rollup.KitLine{ItemID: s.item.Data.ID, Quantity: 1})

	r = suite.request(http.MethodDelete, unused.Data.Links.Self, nil)
	test.AssertHTTPStatus(suite.T(), &r, http.StatusNoContent)

	// The code is free again
	suite.createTestKit(v1.KitEditable{Code: unused.Data.Code})
}

func (suite *TestSuiteStandard) TestKitsGetFilter() {
	suite.createTestKit(v1.KitEditable{Code: "VSAT-KIT"})
	suite.createTestKit(v1.KitEditable{Code: "HF-KIT"})

	r := suite.request(http.MethodGet, "http://example.com/v1/kits?code=VSAT*", nil)
	test.AssertHTTPStatus(suite.T(), &r, http.StatusOK)

	var kits v1.KitListResponse
	test.DecodeResponse(suite.T(), &r, &kits)
	suite.Require().Len(kits.Data, 1)
	suite.Assert().Equal("VSAT-KIT", kits.Data[0].Code)
	suite.Assert().Equal(fmt.Sprintf("http://example.com/v1/kits/%d/totals", kits.Data[0].ID), kits.Data[0].Links.Totals)
}
