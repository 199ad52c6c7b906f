package handler

import (
	"math"
	"strconv"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

const (
	defaultPageSize = 10
	maxPageSize     = 100

	// maxPage keeps (page-1)*limit within int for every accepted limit.
	maxPage = math.MaxInt / maxPageSize
)

// PaginationMeta defines the structure for pagination metadata.
type PaginationMeta struct {
	TotalItems  int64 `json:"total_items"`
	TotalPages  int   `json:"total_pages"`
	CurrentPage int   `json:"current_page"`
	PageSize    int   `json:"page_size"`
}

// PaginatedResponse defines the structure for a paginated list of any type.
type PaginatedResponse[T any] struct {
	Data []T            `json:"data"`
	Meta PaginationMeta `json:"meta"`
}

// NewPaginatedResponse creates a new PaginatedResponse.
func NewPaginatedResponse[T any](data []T, totalItems int64, page, limit int) PaginatedResponse[T] {
	if limit <= 0 {
		limit = 1
	}
	if data == nil {
		data = []T{}
	}
	return PaginatedResponse[T]{
		Data: data,
		Meta: PaginationMeta{
			TotalItems:  totalItems,
			TotalPages:  (int(totalItems) + limit - 1) / limit,
			CurrentPage: page,
			PageSize:    limit,
		},
	}
}

// Paginate executes a paginated query and returns the results.
func Paginate[T any](db *gorm.DB, page, limit int) (*PaginatedResponse[T], error) {
	var totalItems int64
	if err := db.Model(new(T)).Count(&totalItems).Error; err != nil {
		return nil, err
	}

	var results []T
	if err := db.Offset(offset(page, limit)).Limit(limit).Find(&results).Error; err != nil {
		return nil, err
	}

	response := NewPaginatedResponse(results, totalItems, page, limit)
	return &response, nil
}

// PaginateSlice returns one page of an in-memory list.
func PaginateSlice[T any](items []T, page, limit int) PaginatedResponse[T] {
	total := len(items)
	start := offset(page, limit)
	if start > total {
		start = total
	}
	end := total
	if limit >= 0 && limit < total-start {
		end = start + limit
	}

	data := make([]T, end-start)
	copy(data, items[start:end])
	return NewPaginatedResponse(data, int64(total), page, limit)
}

// offset is the number of rows before page. Out-of-range input yields
// math.MaxInt rather than a wrapped negative value.
func offset(page, limit int) int {
	if page < 1 || limit < 1 {
		return 0
	}
	if page-1 > (math.MaxInt)/limit {
		return math.MaxInt
	}
	return (page - 1) * limit
}

// pageParams reads "page" and "limit", falling back to 1 and the default size.
func pageParams(c *gin.Context) (page, limit int) {
	page, err := strconv.Atoi(c.DefaultQuery("page", "1"))
	if err != nil || page < 1 {
		page = 1
	}
	if page > maxPage {
		page = maxPage
	}

	limit, err = strconv.Atoi(c.DefaultQuery("limit", strconv.Itoa(defaultPageSize)))
	if err != nil || limit < 1 {
		limit = defaultPageSize
	}
	if limit > maxPageSize {
		limit = maxPageSize
	}
	return page, limit
}
