package server

import (
	"net/http"
	"strconv"
)

const (
	residentDefaultLimit = 10
	residentMaxLimit     = 100
	adminDefaultLimit    = 15
	adminMaxLimit        = 200
)

type pageMeta struct {
	Page    int  `json:"page"`
	Limit   int  `json:"limit"`
	Total   int  `json:"total"`
	Pages   int  `json:"pages"`
	HasNext bool `json:"hasNext"`
	HasPrev bool `json:"hasPrev"`
}

type pagedResponse struct {
	Data interface{} `json:"data"`
	Meta pageMeta    `json:"meta"`
}

// getPaging reads page/limit query params, clamping limit to the caller
// class maximum. Invalid values fall back to defaults.
func getPaging(r *http.Request, defaultLimit, maxLimit int) (page, limit, offset int) {
	page = 1
	limit = defaultLimit

	if pageStr := r.URL.Query().Get("page"); pageStr != "" {
		if v, err := strconv.Atoi(pageStr); err == nil && v > 0 {
			page = v
		}
	}
	if limitStr := r.URL.Query().Get("limit"); limitStr != "" {
		if v, err := strconv.Atoi(limitStr); err == nil && v > 0 {
			limit = v
		}
	}
	if limit > maxLimit {
		limit = maxLimit
	}
	return page, limit, (page - 1) * limit
}

func buildPaged(data interface{}, page, limit, total int) pagedResponse {
	pages := 0
	if limit > 0 {
		pages = (total + limit - 1) / limit
	}
	return pagedResponse{
		Data: data,
		Meta: pageMeta{
			Page:    page,
			Limit:   limit,
			Total:   total,
			Pages:   pages,
			HasNext: page < pages,
			HasPrev: page > 1,
		},
	}
}
