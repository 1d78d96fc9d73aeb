package services

import (
	"regexp"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/medsupply/erp-api/internal/models"
)

func TestFormatReturnNumberPrefixes(t *testing.T) {
	assert.Equal(t, "AR000001", FormatReturnNumber(models.ReturnTypeAdmin, 1))
	assert.Equal(t, "DR000001", FormatReturnNumber(models.ReturnTypeDoctor, 1))

	// Anything that is not a doctor return gets the admin prefix.
	assert.Equal(t, "AR000042", FormatReturnNumber("", 42))
}

func TestFormatReturnNumberPadding(t *testing.T) {
	assert.Equal(t, "AR000007", FormatReturnNumber(models.ReturnTypeAdmin, 7))
	assert.Equal(t, "DR001234", FormatReturnNumber(models.ReturnTypeDoctor, 1234))
	assert.Equal(t, "AR999999", FormatReturnNumber(models.ReturnTypeAdmin, 999999))
}

func TestFormatReturnNumberShape(t *testing.T) {
	pattern := regexp.MustCompile(`^(AR|DR)\d{6}$`)
	for seq := int64(1); seq <= 100000; seq *= 10 {
		assert.Regexp(t, pattern, FormatReturnNumber(models.ReturnTypeAdmin, seq))
		assert.Regexp(t, pattern, FormatReturnNumber(models.ReturnTypeDoctor, seq))
	}
}
