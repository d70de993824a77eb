package v1_test

import (
	"fmt"
	"net/http"
	"testing"

	v1 "github.com/sahana-eden/budget/internal/controllers/v1"
	"github.com/sahana-eden/budget/internal/models"
	"github.com/sahana-eden/budget/internal/rollup"
	"github.com/sahana-eden/budget/test"
	"github.com/stretchr/testify/assert"
)

func (suite *TestSuiteStandard) TestBundlesCreate() {
	bundle := suite.createTestBundle(v1.BundleEditable{Name: " Field Office ", Description: "Connectivity"})

	suite.Assert().Equal("Field Office", bundle.Data.Name)
	suite.Assert().True(bundle.Data.TotalUnitCost.IsZero())
	suite.Assert().Equal(bundle.Data.Links.Self+"/contents", bundle.Data.Links.Contents)

	suite.createTestBundle(v1.BundleEditable{Name: "Field Office"}, http.StatusConflict)
}

// TestBundlesUpdateUnknownFields verifies that a body without known fields
// leaves the bundle unchanged.
func (suite *TestSuiteStandard) TestBundlesUpdateUnknownFields() {
	bundle := suite.createTestBundle(v1.BundleEditable{Name: "Field Office", Description: "Connectivity"})

	r := suite.request(http.MethodPatch, bundle.Data.Links.Self, map[string]any{"colour": "green"})
	test.AssertHTTPStatus(suite.T(), &r, http.StatusOK)

	var updated v1.BundleResponse
	test.DecodeResponse(suite.T(), &r, &updated)
	suite.Assert().Equal("Field Office", updated.Data.Name)
	suite.Assert().Equal("Connectivity", updated.Data.Description)
}

func (suite *TestSuiteStandard) TestBundlesTotals() {
	s := suite.buildScenario()

	r := suite.request(http.MethodGet, s.bundle.Data.Links.Totals, nil)
	test.AssertHTTPStatus(suite.T(), &r, http.StatusOK)

	var totals v1.BundleTotalsResponse
	test.DecodeResponse(suite.T(), &r, &totals)
	suite.assertDecimal("60", totals.Data.TotalUnitCost, "2 kits × 30")
	suite.assertDecimal("12", totals.Data.TotalMonthlyCost, "2 kits × 6")
}

// TestBundlesItemConsumption verifies that airtime and traffic of direct
// items are part of the monthly cost.
func (suite *TestSuiteStandard) TestBundlesItemConsumption() {
	s := suite.buildScenario()
	phone := suite.createTestItem(v1.ItemEditable{
		Code:         "SATPHONE",
		UnitCost:     d("5"),
		MonthlyCost:  d("1"),
		MinuteCost:   d("0.5"),
		MegabyteCost: d("2"),
	})

	r := suite.request(http.MethodPost, fmt.Sprintf("%s/items", s.bundle.Data.Links.Self), v1.BundleItemCreate{
		ItemID:      phone.Data.ID,
		Consumption: models.Consumption{Quantity: 1, Minutes: 100, Megabytes: 3},
	})
	test.AssertHTTPStatus(suite.T(), &r, http.StatusCreated)

	var totals v1.BundleTotalsResponse
	r = suite.request(http.MethodGet, s.bundle.Data.Links.Totals, nil)
	test.AssertHTTPStatus(suite.T(), &r, http.StatusOK)
	test.DecodeResponse(suite.T(), &r, &totals)
	suite.assertDecimal("65", totals.Data.TotalUnitCost, "60 + 5")
	suite.assertDecimal("69", totals.Data.TotalMonthlyCost, "12 + 1 + 100×0.5 + 3×2")

	budget := suite.budgetTotals(s.budget.Data.ID)
	suite.assertDecimal("165", budget.TotalOnetimeCosts, "100 travel + 65")
	suite.assertDecimal("6387", budget.TotalRecurringCosts, "6180 staff + 3 months × 69")
}

func (suite *TestSuiteStandard) TestBundlesAddKitDuplicate() {
	s := suite.buildScenario()

	r := suite.request(http.MethodGet, s.bundle.Data.Links.Contents, nil)
	test.AssertHTTPStatus(suite.T(), &r, http.StatusOK)

	var contents v1.BundleContentsResponse
	test.DecodeResponse(suite.T(), &r, &contents)
	suite.Require().Len(contents.Data.Kits, 1)
	suite.Assert().Len(contents.Data.Items, 0)

	r = suite.request(http.MethodPost, s.bundle.Data.Links.Self+"/kits", v1.BundleKitCreate{
		KitID:       s.kit.Data.ID,
		Consumption: models.Consumption{Quantity: 5},
	})
	test.AssertHTTPStatus(suite.T(), &r, http.StatusConflict)
	suite.Assert().Contains(r.Body.String(), fmt.Sprintf(`"existingId":%d`, contents.Data.Kits[0].ID))
}

func (suite *TestSuiteStandard) TestBundlesSetContents() {
	s := suite.buildScenario()
	phone := suite.createTestItem(v1.ItemEditable{UnitCost: d("5"), MonthlyCost: d("1")})

	r := suite.request(http.MethodPut, s.bundle.Data.Links.Contents, []rollup.BundleContent{
		{KitID: &s.kit.Data.ID, Consumption: models.Consumption{Quantity: 1}},
		{ItemID: &phone.Data.ID, Consumption: models.Consumption{Quantity: 2}},
	})
	test.AssertHTTPStatus(suite.T(), &r, http.StatusOK)

	var contents v1.BundleContentsResponse
	test.DecodeResponse(suite.T(), &r, &contents)
	suite.Assert().Len(contents.Data.Kits, 1)
	suite.Assert().Len(contents.Data.Items, 1)

	budget := suite.budgetTotals(s.budget.Data.ID)
	suite.assertDecimal("140", budget.TotalOnetimeCosts, "100 travel + 30 + 2×5")
	suite.assertDecimal("6204", budget.TotalRecurringCosts, "6180 + 3 months × (6 + 2×1)")
}

func (suite *TestSuiteStandard) TestBundlesSetContentsFails() {
	s := suite.buildScenario()

	tests := []struct {
		name     string
		contents []rollup.BundleContent
		status   int
		err      error
	}{
		{"Neither kit nor item", []rollup.BundleContent{{Consumption: models.Consumption{Quantity: 1}}}, http.StatusBadRequest, models.ErrInvalidContent},
		{"Kit and item", []rollup.BundleContent{{KitID: &s.kit.Data.ID, ItemID: &s.item.Data.ID, Consumption: models.Consumption{Quantity: 1}}}, http.StatusBadRequest, models.ErrInvalidContent},
		{"Zero quantity", []rollup.BundleContent{{KitID: &s.kit.Data.ID}}, http.StatusBadRequest, models.ErrInvalidQuantity},
		{"Unknown kit", []rollup.BundleContent{{KitID: ptr(uint(9999)), Consumption: models.Consumption{Quantity: 1}}}, http.StatusBadRequest, models.ErrUnknownReference},
		{"Kit twice", []rollup.BundleContent{
			{KitID: &s.kit.Data.ID, Consumption: models.Consumption{Quantity: 1}},
			{KitID: &s.kit.Data.ID, Consumption: models.Consumption{Quantity: 2}},
		}, http.StatusConflict, models.ErrDuplicateAssociation},
	}

	for _, tt := range tests {
		suite.T().Run(tt.name, func(t *testing.T) {
			r := test.Request(t, suite.controller, http.MethodPut, s.bundle.Data.Links.Contents, tt.contents)
			test.AssertHTTPStatus(t, &r, tt.status)
			assert.Contains(t, r.Body.String(), tt.err.Error())
		})
	}

	// Failed replacements leave the bundle untouched
	totals := suite.budgetTotals(s.budget.Data.ID)
	suite.assertDecimal("160", totals.TotalOnetimeCosts, "one-time costs")
	suite.assertDecimal("6216", totals.TotalRecurringCosts, "recurring costs")
}

func (suite *TestSuiteStandard) TestBundlesDelete() {
	s := suite.buildScenario()

	r := suite.request(http.MethodDelete, s.bundle.Data.Links.Self, nil)
	test.AssertHTTPStatus(suite.T(), &r, http.StatusConflict)
	suite.Assert().Contains(r.Body.String(), models.ErrReferenceInUse.Error())

	r = suite.request(http.MethodDelete, s.budget.Data.Links.Self, nil)
	test.AssertHTTPStatus(suite.T(), &r, http.StatusNoContent)

	r = suite.request(http.MethodDelete, s.bundle.Data.Links.Self, nil)
	test.AssertHTTPStatus(suite.T(), &r, http.StatusNoContent)

	// The kit is no longer used by any bundle
	r = suite.request(http.MethodDelete, s.kit.Data.Links.Self, nil)
	test.AssertHTTPStatus(suite.T(), &r, http.StatusNoContent)
}

func (suite *TestSuiteStandard) TestBundlesGetFilter() {
	suite.createTestBundle(v1.BundleEditable{Name: "Field Office"})
	suite.createTestBundle(v1.BundleEditable{Name: "Field Team"})
	suite.createTestBundle(v1.BundleEditable{Name: "Headquarters"})

	tests := []struct {
		query string
		len   int
	}{
		{"", 3},
		{"name=Field*", 2},
		{"name=Headquarters", 1},
		{"name=Warehouse", 0},
	}

	for _, tt := range tests {
		suite.T().Run(tt.query, func(t *testing.T) {
			r := test.Request(t, suite.controller, http.MethodGet, "http://example.com/v1/bundles?"+tt.query, nil)
			test.AssertHTTPStatus(t, &r, http.StatusOK)

			var bundles v1.BundleListResponse
			test.DecodeResponse(t, &r, &bundles)
			assert.Len(t, bundles.Data, tt.len)
		})
	}
}
