package v1_test

import (
	"net/http"

	v1 "github.com/sahana-eden/budget/internal/controllers/v1"
	"github.com/sahana-eden/budget/internal/models"
	"github.com/sahana-eden/budget/internal/rollup"
	"github.com/sahana-eden/budget/test"
)

func (suite *TestSuiteStandard) verify() []rollup.Drift {
	r := suite.request(http.MethodGet, "http://example.com/v1/verify", nil)
	test.AssertHTTPStatus(suite.T(), &r, http.StatusOK)

	var response v1.VerifyResponse
	test.DecodeResponse(suite.T(), &r, &response)
	return response.Data
}

func (suite *TestSuiteStandard) TestMaintenanceVerifyConsistent() {
	suite.buildScenario()

	r := suite.request(http.MethodGet, "http://example.com/v1/verify", nil)
	test.AssertHTTPStatus(suite.T(), &r, http.StatusOK)
	suite.Assert().JSONEq(`{"data":[]}`, r.Body.String())
}

// TestMaintenanceRefreshAll verifies that totals changed behind the back
// of the engine are reported and repaired.
func (suite *TestSuiteStandard) TestMaintenanceRefreshAll() {
	s := suite.buildScenario()

	err := models.DB.Model(&models.Kit{}).Where("id = ?", s.kit.Data.ID).Update("total_unit_cost", d("999")).Error
	suite.Require().Nil(err)

	drifts := suite.verify()
	suite.Require().NotEmpty(drifts)
	suite.Assert().Equal(rollup.KindKit, drifts[0].Kind)
	suite.Assert().Equal(s.kit.Data.ID, drifts[0].ID)
	suite.Assert().Equal("totalUnitCost", drifts[0].Field)
	suite.assertDecimal("999", drifts[0].Stored, "stored kit total")
	suite.assertDecimal("30", drifts[0].Expected, "kit total by definition")

	r := suite.request(http.MethodPost, "http://example.com/v1/refresh", nil)
	test.AssertHTTPStatus(suite.T(), &r, http.StatusNoContent)

	suite.Assert().Empty(suite.verify())
	suite.assertDecimal("30", suite.kitTotals(s.kit.Data.ID).TotalUnitCost, "kit total after refresh")
}

func (suite *TestSuiteStandard) TestMaintenanceDatabaseError() {
	suite.CloseDB()

	r := suite.request(http.MethodGet, "http://example.com/v1/verify", nil)
	test.AssertHTTPStatus(suite.T(), &r, http.StatusInternalServerError)

	r = suite.request(http.MethodPost, "http://example.com/v1/refresh", nil)
	test.AssertHTTPStatus(suite.T(), &r, http.StatusInternalServerError)
}
