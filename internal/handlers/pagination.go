package handlers

import (
	"strconv"

	"github.com/gin-gonic/gin"
)

const defaultPageSize = 20

// parsePagination reads ?page= and ?limit=, clamping to sane values.
func parsePagination(c *gin.Context) (page, limit int) {
	page, _ = strconv.Atoi(c.DefaultQuery("page", "1"))
	if page < 1 {
		page = 1
	}
	limit, _ = strconv.Atoi(c.DefaultQuery("limit", strconv.Itoa(defaultPageSize)))
	if limit < 1 || limit > 100 {
		limit = defaultPageSize
	}
	return page, limit
}

func buildPagination(page, limit int, count int64) Pagination {
	pages := int((count + int64(limit) - 1) / int64(limit))
	return Pagination{Page: page, Pages: pages, Count: count}
}
