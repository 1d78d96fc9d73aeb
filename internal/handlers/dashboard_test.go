package handlers

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"go.mongodb.org/mongo-driver/mongo/integration/mtest"

	"github.com/medsupply/erp-api/internal/config"
	"github.com/medsupply/erp-api/internal/roles"
	"github.com/medsupply/erp-api/internal/services"
)

func TestViewForRole(t *testing.T) {
	assert.Equal(t, "admin", ViewForRole(roles.Owner))
	assert.Equal(t, "admin", ViewForRole(roles.Admin))
	assert.Equal(t, "doctor", ViewForRole(roles.Doctor))
	assert.Equal(t, "hospital", ViewForRole(roles.Hospital))
	assert.Equal(t, "deliverer", ViewForRole(roles.Deliverer))
	assert.Equal(t, "distributor", ViewForRole(roles.Distributor))
	assert.Equal(t, "accountant", ViewForRole(roles.Accountant))
}

func TestViewForRoleFallsBackToGuest(t *testing.T) {
	assert.Equal(t, "guest", ViewForRole(roles.Role("")))
	assert.Equal(t, "guest", ViewForRole(roles.Role("intern")))
}

func TestDashboardRendersZeroStatsWhenCountsFail(t *testing.T) {
	mt := mtest.New(t, mtest.NewOptions().ClientType(mtest.Mock))

	mt.Run("failed counts are logged and rendered as zero", func(mt *mtest.T) {
		h := NewHandler(mt.DB, services.NewReturnNumberService(mt.DB), services.NewHistoryService(mt.DB), config.UploadConfig{})
		r := gin.New()
		r.Use(stubIdentity("accountant"))
		r.GET("/api/dashboard", h.Dashboard)

		mt.AddMockResponses(
			mtest.CreateCommandErrorResponse(mtest.CommandError{Code: 11600, Message: "interrupted", Name: "InterruptedAtShutdown"}),
			mtest.CreateCommandErrorResponse(mtest.CommandError{Code: 11600, Message: "interrupted", Name: "InterruptedAtShutdown"}),
		)

		w := httptest.NewRecorder()
		r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/dashboard", nil))

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Contains(t, w.Body.String(), `"view":"accountant"`)
		assert.Contains(t, w.Body.String(), `"ledgerEntries":0`)
		assert.Contains(t, w.Body.String(), `"invoices":0`)
	})
}
