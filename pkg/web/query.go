package web

import "strings"

// DefaultPageSize is used when a paginated request gives no size.
const DefaultPageSize = 20

// PageQuery holds common pagination query parameters.
type PageQuery struct {
	Page int      `form:"page" binding:"min=0"`
	Size int      `form:"size" binding:"min=0,max=100"`
	Sort []string `form:"sort"`
}

// PageSize returns the requested size or the default one.
func (q PageQuery) PageSize() int {
	if q.Size == 0 {
		return DefaultPageSize
	}

	return q.Size
}

// SortParam is one "field,direction" sort query parameter.
type SortParam struct {
	Field     string
	Direction string
}

// ParseSort splits sort query values of the form "field" or "field,direction".
func ParseSort(values []string) []SortParam {
	params := make([]SortParam, 0, len(values))

	for _, v := range values {
		if strings.TrimSpace(v) == "" {
			continue
		}

		field, direction, _ := strings.Cut(v, ",")
		params = append(params, SortParam{
			Field:     strings.TrimSpace(field),
			Direction: strings.TrimSpace(direction),
		})
	}

	return params
}
