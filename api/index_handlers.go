package api

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/pagesift/go-page-search/config"
	internalErrors "github.com/pagesift/go-page-search/internal/errors"
)

// CreateIndexHandler handles the request to create a new index.
// Request Body: config.IndexSettings
func (api *API) CreateIndexHandler(c *gin.Context) {
	var settings config.IndexSettings
	if err := c.ShouldBindJSON(&settings); err != nil {
		SendInvalidJSONError(c, err)
		return
	}

	if err := api.engine.CreateIndex(settings); err != nil {
		switch {
		case errors.Is(err, internalErrors.ErrIndexAlreadyExists):
			SendIndexExistsError(c, settings.Name)
		case errors.Is(err, internalErrors.ErrInvalidInput):
			SendError(c, http.StatusBadRequest, ErrCodeValidationFailed, err.Error())
		default:
			SendInternalError(c, "create index", err)
		}
		return
	}

	api.metrics.IndexCount.Inc()
	c.JSON(http.StatusCreated, gin.H{"message": "Index '" + settings.Name + "' created successfully"})
}

// ListIndexesHandler returns the names of all indexes.
func (api *API) ListIndexesHandler(c *gin.Context) {
	names := api.engine.ListIndexes()
	c.JSON(http.StatusOK, gin.H{"indexes": names, "total": len(names)})
}

// GetIndexHandler returns the settings and current statistics of an index.
func (api *API) GetIndexHandler(c *gin.Context) {
	indexName := c.Param("indexName")

	accessor, err := api.engine.GetIndex(indexName)
	if err != nil {
		SendIndexNotFoundError(c, indexName)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"settings": accessor.Settings(),
		"stats":    accessor.Stats(),
	})
}

// DeleteIndexHandler removes an index.
func (api *API) DeleteIndexHandler(c *gin.Context) {
	indexName := c.Param("indexName")

	if err := api.engine.DeleteIndex(indexName); err != nil {
		SendIndexNotFoundError(c, indexName)
		return
	}

	api.metrics.IndexCount.Dec()
	c.JSON(http.StatusOK, gin.H{"message": "Index '" + indexName + "' deleted successfully"})
}
