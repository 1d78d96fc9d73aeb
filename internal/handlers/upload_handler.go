package handlers

import (
	"context"
	"errors"
	"mime/multipart"
	"net/http"
	"path/filepath"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/medsupply/erp-api/internal/middleware"
	"github.com/medsupply/erp-api/internal/models"
)

var errUnsupportedImage = errors.New("only JPEG and PNG images are accepted")

// validateImage enforces the upload rules: JPEG/PNG only, under the
// configured size ceiling. Both the declared content type and the file
// extension have to agree.
func validateImage(file *multipart.FileHeader, maxBytes int64) error {
	if file.Size > maxBytes {
		return errors.New("file exceeds the maximum upload size")
	}
	contentType := file.Header.Get("Content-Type")
	if contentType != "image/jpeg" && contentType != "image/png" {
		return errUnsupportedImage
	}
	switch strings.ToLower(filepath.Ext(file.Filename)) {
	case ".jpg", ".jpeg", ".png":
		return nil
	default:
		return errUnsupportedImage
	}
}

// saveImage stores the file under a generated unique name and returns it.
func (h *Handler) saveImage(c *gin.Context, file *multipart.FileHeader) (string, error) {
	filename := uuid.NewString() + strings.ToLower(filepath.Ext(file.Filename))
	if err := c.SaveUploadedFile(file, filepath.Join(h.Upload.Dir, filename)); err != nil {
		return "", err
	}
	return filename, nil
}

// UploadProfilePhoto stores a profile image and records it on the caller's
// account.
func (h *Handler) UploadProfilePhoto(c *gin.Context) {
	userID, err := primitive.ObjectIDFromHex(c.GetString(middleware.ContextUserID))
	if err != nil {
		respondError(c, http.StatusUnauthorized, "Invalid user id in token")
		return
	}

	file, err := c.FormFile("photo")
	if err != nil {
		respondError(c, http.StatusBadRequest, "photo file is required")
		return
	}
	if err := validateImage(file, h.Upload.MaxBytes); err != nil {
		respondError(c, http.StatusBadRequest, err.Error())
		return
	}

	filename, err := h.saveImage(c, file)
	if err != nil {
		respondUnhandled(c, err)
		return
	}

	_, err = h.DB.Collection("users").UpdateOne(context.TODO(), bson.M{"_id": userID}, bson.M{"$set": bson.M{"photoUrl": filename}})
	if err != nil {
		respondUnhandled(c, err)
		return
	}
	respondOK(c, gin.H{"filename": filename}, "Profile photo uploaded")
}

// UploadPickupPhoto attaches a pickup-confirmation image to an order. The
// route is gated to deliverers and only makes sense once the order has
// been picked up.
func (h *Handler) UploadPickupPhoto(c *gin.Context) {
	orderID, err := primitive.ObjectIDFromHex(c.Param("id"))
	if err != nil {
		respondError(c, http.StatusBadRequest, "Invalid order id")
		return
	}

	var order models.Order
	if err := h.DB.Collection("orders").FindOne(context.TODO(), bson.M{"_id": orderID}).Decode(&order); err != nil {
		respondError(c, http.StatusNotFound, "Order not found")
		return
	}
	if order.Status == models.OrderStatusPending {
		respondError(c, http.StatusConflict, "Order has not been picked up yet")
		return
	}

	file, err := c.FormFile("photo")
	if err != nil {
		respondError(c, http.StatusBadRequest, "photo file is required")
		return
	}
	if err := validateImage(file, h.Upload.MaxBytes); err != nil {
		respondError(c, http.StatusBadRequest, err.Error())
		return
	}

	filename, err := h.saveImage(c, file)
	if err != nil {
		respondUnhandled(c, err)
		return
	}

	_, err = h.DB.Collection("orders").UpdateOne(context.TODO(), bson.M{"_id": orderID}, bson.M{"$set": bson.M{"pickupPhoto": filename}})
	if err != nil {
		respondUnhandled(c, err)
		return
	}
	respondOK(c, gin.H{"filename": filename}, "Pickup photo uploaded")
}
