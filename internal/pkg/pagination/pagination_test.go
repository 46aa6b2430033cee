package pagination

import (
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
)

func TestGetParams(t *testing.T) {
	cases := []struct {
		query      string
		wantPage   int
		wantLimit  int
		wantOffset int
	}{
		{"", 1, OwnPaymentsLimit, 0},
		{"?page=3&limit=10", 3, 10, 20},
		{"?page=0&limit=-5", 1, OwnPaymentsLimit, 0},
		{"?page=abc&limit=abc", 1, OwnPaymentsLimit, 0},
		{"?limit=5000", 1, MaxLimit, 0},
	}

	for _, tc := range cases {
		var got *Params
		app := fiber.New()
		app.Get("/", func(c *fiber.Ctx) error {
			got = GetParams(c, OwnPaymentsLimit)
			SetTotal(c, 42)
			return c.SendStatus(fiber.StatusOK)
		})

		resp, err := app.Test(httptest.NewRequest("GET", "/"+tc.query, nil))
		if err != nil {
			t.Fatalf("%q: request error: %v", tc.query, err)
		}
		if resp.Header.Get(TotalCountHeader) != "42" {
			t.Fatalf("%q: expected total header, got %q", tc.query, resp.Header.Get(TotalCountHeader))
		}
		if got.Page != tc.wantPage || got.Limit != tc.wantLimit || got.Offset != tc.wantOffset {
			t.Fatalf("%q: unexpected params %+v", tc.query, got)
		}
	}
}
