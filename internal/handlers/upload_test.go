package handlers

import (
	"mime/multipart"
	"net/textproto"
	"testing"

	"github.com/stretchr/testify/assert"
)

func fileHeader(name, contentType string, size int64) *multipart.FileHeader {
	header := textproto.MIMEHeader{}
	header.Set("Content-Type", contentType)
	return &multipart.FileHeader{Filename: name, Header: header, Size: size}
}

func TestValidateImageAcceptsJPEGAndPNG(t *testing.T) {
	maxBytes := int64(5 << 20)
	assert.NoError(t, validateImage(fileHeader("photo.jpg", "image/jpeg", 1024), maxBytes))
	assert.NoError(t, validateImage(fileHeader("photo.jpeg", "image/jpeg", 1024), maxBytes))
	assert.NoError(t, validateImage(fileHeader("photo.png", "image/png", 1024), maxBytes))
	assert.NoError(t, validateImage(fileHeader("PHOTO.PNG", "image/png", 1024), maxBytes))
}

func TestValidateImageRejectsOtherTypes(t *testing.T) {
	maxBytes := int64(5 << 20)
	assert.Error(t, validateImage(fileHeader("doc.pdf", "application/pdf", 1024), maxBytes))
	assert.Error(t, validateImage(fileHeader("anim.gif", "image/gif", 1024), maxBytes))

	// Extension and declared type must agree.
	assert.Error(t, validateImage(fileHeader("photo.exe", "image/png", 1024), maxBytes))
}

func TestValidateImageRejectsOversizedFile(t *testing.T) {
	maxBytes := int64(5 << 20)
	assert.Error(t, validateImage(fileHeader("photo.png", "image/png", maxBytes+1), maxBytes))
	assert.NoError(t, validateImage(fileHeader("photo.png", "image/png", maxBytes), maxBytes))
}
