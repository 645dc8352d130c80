package api

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/pagesift/go-page-search/internal/search"
	"github.com/pagesift/go-page-search/services"
)

// SearchRequest is the JSON body of a search call. The filter, if present, is
// compiled into the document predicate the engine accepts.
type SearchRequest struct {
	Query  string                   `json:"query"`
	Filter *search.FilterExpression `json:"filter,omitempty"`
}

// SearchHandler executes a search against an index.
func (api *API) SearchHandler(c *gin.Context) {
	indexName := c.Param("indexName")

	accessor, err := api.engine.GetIndex(indexName)
	if err != nil {
		SendIndexNotFoundError(c, indexName)
		return
	}

	var req SearchRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		SendInvalidJSONError(c, err)
		return
	}

	start := time.Now()
	result, err := accessor.Search(services.SearchQuery{
		Query:  req.Query,
		Filter: search.CompileFilter(req.Filter),
	})
	if err != nil {
		api.metrics.SearchQueriesTotal.WithLabelValues("error").Inc()
		SendError(c, http.StatusInternalServerError, ErrCodeSearchFailed, err.Error())
		return
	}

	took := time.Since(start)
	api.analytics.TrackSearch(indexName, req.Query, len(result.Hits), took)
	api.metrics.SearchLatency.WithLabelValues(indexName).Observe(took.Seconds())
	api.metrics.SearchResultsCount.Observe(float64(len(result.Hits)))
	if len(result.Hits) > 0 {
		api.metrics.SearchQueriesTotal.WithLabelValues("hit").Inc()
	} else {
		api.metrics.SearchQueriesTotal.WithLabelValues("zero_result").Inc()
	}

	c.JSON(http.StatusOK, result)
}
