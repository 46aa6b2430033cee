package pagination

import (
	"strconv"

	"github.com/gofiber/fiber/v2"
)

// Params represents pagination parameters
type Params struct {
	Page   int `json:"page"`
	Limit  int `json:"limit"`
	Offset int `json:"-"`
}

const (
	// StudentsLimit and PaymentsLimit are the default page sizes for admin listings
	StudentsLimit = 1000
	PaymentsLimit = 1000
	// OwnPaymentsLimit is the default page size for a student's own payments
	OwnPaymentsLimit = 100

	// MaxLimit is the maximum number of items per page
	MaxLimit = 1000

	// TotalCountHeader carries the unpaginated total of a listing
	TotalCountHeader = "X-Total-Count"
)

// GetParams extracts pagination parameters from request
func GetParams(c *fiber.Ctx, defaultLimit int) *Params {
	page, _ := strconv.Atoi(c.Query("page", "1"))
	limit, _ := strconv.Atoi(c.Query("limit", strconv.Itoa(defaultLimit)))

	// Validate page
	if page < 1 {
		page = 1
	}

	// Validate limit
	if limit < 1 {
		limit = defaultLimit
	}
	if limit > MaxLimit {
		limit = MaxLimit
	}

	return &Params{
		Page:   page,
		Limit:  limit,
		Offset: (page - 1) * limit,
	}
}

// SetTotal exposes the total item count of a listing as a response header
func SetTotal(c *fiber.Ctx, total int64) {
	c.Set(TotalCountHeader, strconv.FormatInt(total, 10))
}
