package server

import (
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestGetPaging(t *testing.T) {
	tests := []struct {
		name           string
		url            string
		defaultLimit   int
		maxLimit       int
		expectedPage   int
		expectedLimit  int
		expectedOffset int
	}{
		{"defaults", "/api/special-requests", 10, 100, 1, 10, 0},
		{"explicit page and limit", "/api/special-requests?page=3&limit=25", 10, 100, 3, 25, 50},
		{"limit clamped to maximum", "/api/special-requests?limit=500", 10, 100, 1, 100, 0},
		{"invalid page falls back", "/api/special-requests?page=abc", 10, 100, 1, 10, 0},
		{"zero page falls back", "/api/special-requests?page=0", 10, 100, 1, 10, 0},
		{"negative limit falls back", "/api/special-requests?limit=-5", 10, 100, 1, 10, 0},
		{"admin defaults", "/api/admin/special-requests", 15, 200, 1, 15, 0},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			req := httptest.NewRequest("GET", tc.url, nil)
			page, limit, offset := getPaging(req, tc.defaultLimit, tc.maxLimit)
			assert.Equal(t, tc.expectedPage, page)
			assert.Equal(t, tc.expectedLimit, limit)
			assert.Equal(t, tc.expectedOffset, offset)
		})
	}
}

func TestBuildPaged(t *testing.T) {
	t.Run("middle page", func(t *testing.T) {
		resp := buildPaged([]int{1, 2, 3}, 2, 10, 35)
		assert.Equal(t, 4, resp.Meta.Pages)
		assert.True(t, resp.Meta.HasNext)
		assert.True(t, resp.Meta.HasPrev)
	})

	t.Run("single page", func(t *testing.T) {
		resp := buildPaged([]int{1}, 1, 10, 1)
		assert.Equal(t, 1, resp.Meta.Pages)
		assert.False(t, resp.Meta.HasNext)
		assert.False(t, resp.Meta.HasPrev)
	})

	t.Run("empty result", func(t *testing.T) {
		resp := buildPaged(nil, 1, 10, 0)
		assert.Equal(t, 0, resp.Meta.Pages)
		assert.False(t, resp.Meta.HasNext)
	})
}
