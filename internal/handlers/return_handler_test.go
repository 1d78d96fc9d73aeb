package handlers

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo/integration/mtest"

	"github.com/medsupply/erp-api/internal/config"
	"github.com/medsupply/erp-api/internal/middleware"
	"github.com/medsupply/erp-api/internal/models"
	"github.com/medsupply/erp-api/internal/services"
)

// stubIdentity plays the part of AuthMiddleware for handler tests.
func stubIdentity(role string) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Set(middleware.ContextUserID, "64a1f0c2e4b0a1b2c3d4e5f6")
		c.Set(middleware.ContextUserRole, role)
		c.Next()
	}
}

func newReturnRouter(mt *mtest.T) *gin.Engine {
	h := NewHandler(mt.DB, services.NewReturnNumberService(mt.DB), services.NewHistoryService(mt.DB), config.UploadConfig{})
	r := gin.New()
	r.Use(stubIdentity("admin"))
	r.PATCH("/api/returns/:id/use", h.MarkReturnUsed)
	r.PUT("/api/returns/:id", h.UpdateReturn)
	return r
}

func TestMarkReturnUsedLifecycle(t *testing.T) {
	mt := mtest.New(t, mtest.NewOptions().ClientType(mtest.Mock))

	mt.Run("consumes an available return", func(mt *mtest.T) {
		r := newReturnRouter(mt)
		mt.AddMockResponses(
			mtest.CreateSuccessResponse(bson.E{Key: "n", Value: 1}, bson.E{Key: "nModified", Value: 1}),
			mtest.CreateSuccessResponse(), // history append
		)

		id := primitive.NewObjectID().Hex()
		w := httptest.NewRecorder()
		r.ServeHTTP(w, httptest.NewRequest(http.MethodPatch, "/api/returns/"+id+"/use", nil))

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Contains(t, w.Body.String(), models.ReturnStatusUsed)
	})

	mt.Run("a used return cannot be used again", func(mt *mtest.T) {
		r := newReturnRouter(mt)
		returnID := primitive.NewObjectID()
		mt.AddMockResponses(
			// The status-filtered update matches nothing the second time.
			mtest.CreateSuccessResponse(bson.E{Key: "n", Value: 0}, bson.E{Key: "nModified", Value: 0}),
			mtest.CreateCursorResponse(0, mt.DB.Name()+".returns", mtest.FirstBatch,
				bson.D{{Key: "_id", Value: returnID}, {Key: "status", Value: models.ReturnStatusUsed}}),
		)

		w := httptest.NewRecorder()
		r.ServeHTTP(w, httptest.NewRequest(http.MethodPatch, "/api/returns/"+returnID.Hex()+"/use", nil))

		assert.Equal(t, http.StatusConflict, w.Code)
		assert.Contains(t, w.Body.String(), "Return is "+models.ReturnStatusUsed)
	})

	mt.Run("unknown return is not found", func(mt *mtest.T) {
		r := newReturnRouter(mt)
		mt.AddMockResponses(
			mtest.CreateSuccessResponse(bson.E{Key: "n", Value: 0}, bson.E{Key: "nModified", Value: 0}),
			mtest.CreateCursorResponse(0, mt.DB.Name()+".returns", mtest.FirstBatch),
		)

		w := httptest.NewRecorder()
		r.ServeHTTP(w, httptest.NewRequest(http.MethodPatch, "/api/returns/"+primitive.NewObjectID().Hex()+"/use", nil))

		assert.Equal(t, http.StatusNotFound, w.Code)
	})
}

func TestUpdateReturnNeverTouchesReturnNumber(t *testing.T) {
	mt := mtest.New(t, mtest.NewOptions().ClientType(mtest.Mock))

	mt.Run("return number survives later saves", func(mt *mtest.T) {
		r := newReturnRouter(mt)
		mt.AddMockResponses(
			mtest.CreateSuccessResponse(bson.E{Key: "n", Value: 1}, bson.E{Key: "nModified", Value: 1}),
		)

		// A caller smuggling returnNumber or status into the payload gets
		// them silently dropped: only items and reason are updatable.
		body := `{"reason":"damaged packaging","returnNumber":"AR999999","status":"Used"}`
		req := httptest.NewRequest(http.MethodPut, "/api/returns/"+primitive.NewObjectID().Hex(), strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)
		require.Equal(t, http.StatusOK, w.Code)

		evt := mt.GetStartedEvent()
		require.NotNil(t, evt)
		require.Equal(t, "update", evt.CommandName)

		set := evt.Command.Lookup("updates").Array().
			Lookup("0").Document().
			Lookup("u").Document().
			Lookup("$set").Document()

		_, err := set.LookupErr("returnNumber")
		assert.Error(t, err, "returnNumber must never be part of an update")
		_, err = set.LookupErr("status")
		assert.Error(t, err, "status changes only through the transition endpoints")
		_, err = set.LookupErr("reason")
		assert.NoError(t, err)
	})
}
