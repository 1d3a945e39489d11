package handler

import (
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"github.com/storedemo/store-api/internal/core/ports"
)

// errorResponse is the standard error envelope returned on all 4xx/5xx responses.
type errorResponse struct {
	Error string `json:"error"`
}

// pageResponse mirrors the envelope every list endpoint returns.
type pageResponse[T any] struct {
	Items      []T   `json:"items"`
	TotalCount int64 `json:"total_count"`
	TotalPages int   `json:"total_pages"`
	NumPage    int   `json:"num_page"`
	NumItems   int   `json:"num_items"`
}

// toPageResponse converts a service page, mapping each item through fn.
func toPageResponse[S, T any](p ports.Page[S], fn func(S) T) pageResponse[T] {
	items := make([]T, len(p.Items))
	for i, it := range p.Items {
		items[i] = fn(it)
	}
	return pageResponse[T]{
		Items:      items,
		TotalCount: p.TotalCount,
		TotalPages: p.TotalPages,
		NumPage:    p.NumPage,
		NumItems:   p.NumItems,
	}
}

// pageQuery reads ?page and ?size. Missing or malformed values fall back to
// zero and are normalized by the service layer.
func pageQuery(c echo.Context) ports.PageQuery {
	page, _ := strconv.Atoi(c.QueryParam("page"))
	size, _ := strconv.Atoi(c.QueryParam("size"))
	return ports.PageQuery{Page: page, Size: size}
}

// pathID parses an integer path parameter, rejecting anything that is not a
// positive number.
func pathID(c echo.Context, name string) (int, error) {
	id, err := strconv.Atoi(c.Param(name))
	if err != nil || id <= 0 {
		return 0, echo.NewHTTPError(http.StatusBadRequest, "invalid "+name)
	}
	return id, nil
}
