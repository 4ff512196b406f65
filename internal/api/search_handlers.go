package api

import (
	"errors"

	"github.com/gin-gonic/gin"
)

func GetSearch(app App) gin.HandlerFunc {
	return func(c *gin.Context) {
		query := c.Query("q")
		if query == "" {
			HandleError(c, app.Logger(), errors.New("missing q parameter"), 400, "Empty query")
			return
		}

		results, err := app.Search().Search(c.Request.Context(), query)
		if err != nil {
			HandleError(c, app.Logger(), err, 502, "Search failed")
			return
		}
		HandleSuccess(c, app.Logger(), results, map[string]any{"count": len(results)})
	}
}
