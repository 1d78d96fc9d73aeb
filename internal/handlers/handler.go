package handlers

import (
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/medsupply/erp-api/internal/config"
	"github.com/medsupply/erp-api/internal/services"
)

// Handler carries the dependencies every route handler needs. Built once at
// startup and shared; the database handle is injected here rather than held
// in a package-level singleton.
type Handler struct {
	DB            *mongo.Database
	ReturnNumbers *services.ReturnNumberService
	History       *services.HistoryService
	Upload        config.UploadConfig
}

func NewHandler(db *mongo.Database, returnNumbers *services.ReturnNumberService, history *services.HistoryService, upload config.UploadConfig) *Handler {
	return &Handler{
		DB:            db,
		ReturnNumbers: returnNumbers,
		History:       history,
		Upload:        upload,
	}
}
