package v1_test

import (
	"net/http"

	v1 "github.com/sahana-eden/budget/internal/controllers/v1"
	"github.com/sahana-eden/budget/internal/models"
	"github.com/sahana-eden/budget/test"
)

func (suite *TestSuiteStandard) TestLocationsCreate() {
	location := suite.createTestLocation(v1.LocationEditable{Code: "PAP", Description: "Port-au-Prince", Subsistence: d("120"), HazardPay: d("250")})

	suite.Assert().Equal("PAP", location.Data.Code)
	suite.assertDecimal("250", location.Data.HazardPay, "hazard pay")

	suite.createTestLocation(v1.LocationEditable{Code: "PAP"}, http.StatusConflict)

	r := suite.request(http.MethodPost, "http://example.com/v1/locations", v1.LocationEditable{Code: "THIS-CODE-IS-TOO-LONG"})
	test.AssertHTTPStatus(suite.T(), &r, http.StatusBadRequest)
	suite.Assert().Contains(r.Body.String(), models.ErrCodeTooLong.Error())
}

func (suite *TestSuiteStandard) TestLocationsUpdateCascades() {
	s := suite.buildScenario()

	r := suite.request(http.MethodPatch, s.location.Data.Links.Self, map[string]any{"hazardPay": "100"})
	test.AssertHTTPStatus(suite.T(), &r, http.StatusOK)

	var location v1.LocationResponse
	test.DecodeResponse(suite.T(), &r, &location)
	suite.assertDecimal("30", location.Data.Subsistence, "subsistence must be kept")

	totals := suite.budgetTotals(s.budget.Data.ID)
	suite.assertDecimal("160", totals.TotalOnetimeCosts, "one-time costs do not depend on the location")
	suite.assertDecimal("6816", totals.TotalRecurringCosts, "2 × 3 × (1000 + 30 + 100) + 36")
}

func (suite *TestSuiteStandard) TestLocationsDelete() {
	s := suite.buildScenario()

	r := suite.request(http.MethodDelete, s.location.Data.Links.Self, nil)
	test.AssertHTTPStatus(suite.T(), &r, http.StatusConflict)

	r = suite.request(http.MethodPost, s.location.Data.Links.Self+"/soft-delete", nil)
	test.AssertHTTPStatus(suite.T(), &r, http.StatusOK)

	totals := suite.budgetTotals(s.budget.Data.ID)
	suite.assertDecimal("6036", totals.TotalRecurringCosts, "2 × 3 × 1000 + 36 without subsistence")

	unused := suite.createTestLocation(v1.LocationEditable{})
	r = suite.request(http.MethodDelete, unused.Data.Links.Self, nil)
	test.AssertHTTPStatus(suite.T(), &r, http.StatusNoContent)
}
