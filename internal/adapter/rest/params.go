package rest

import (
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/eslsoft/atelier/internal/entity"
	"github.com/eslsoft/atelier/pkg/listquery"
)

// parseListParams reads the shared filter and paging query parameters.
// Non-numeric or non-positive paging values coerce to defaults instead of
// propagating NaN-style garbage downstream.
func parseListParams(c *gin.Context) (listquery.Filter, listquery.Page) {
	filter := listquery.Filter{
		Category:   c.Query("category"),
		Difficulty: canonicalDifficulty(c.Query("difficulty")),
		Tags:       c.Query("tags"),
		Search:     c.Query("search"),
	}
	return filter, listquery.Page{
		Page:     intQuery(c, "page"),
		PageSize: intQuery(c, "pageSize"),
	}
}

// canonicalDifficulty maps legacy difficulty spellings onto the canonical
// enum so older clients keep filtering correctly. Unknown values pass
// through untouched and simply match nothing.
func canonicalDifficulty(raw string) string {
	if raw == "" {
		return ""
	}
	if d := entity.ParseDifficulty(raw); d.Valid() {
		return string(d)
	}
	return raw
}

func intQuery(c *gin.Context, key string) int {
	v, err := strconv.Atoi(c.Query(key))
	if err != nil {
		return 0
	}
	return v
}

// boolQuery returns nil when the parameter is absent or unparseable so
// the dimension stays a no-op.
func boolQuery(c *gin.Context, key string) *bool {
	raw := c.Query(key)
	if raw == "" {
		return nil
	}
	v, err := strconv.ParseBool(raw)
	if err != nil {
		return nil
	}
	return &v
}
