package api

import (
	"context"
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	internalErrors "github.com/pagesift/go-page-search/internal/errors"
	"github.com/pagesift/go-page-search/model"
)

// ingestionBatchSize is the per-progress-update chunk for async ingestion.
const ingestionBatchSize = 100

// AddDocumentsHandler ingests a batch of documents into an index.
// Request Body: JSON array of documents.
// With ?async=true the batch is ingested in the background and a job id is
// returned immediately.
func (api *API) AddDocumentsHandler(c *gin.Context) {
	indexName := c.Param("indexName")

	accessor, err := api.engine.GetIndex(indexName)
	if err != nil {
		SendIndexNotFoundError(c, indexName)
		return
	}

	var docs []model.Document
	if err := c.ShouldBindJSON(&docs); err != nil {
		SendInvalidJSONError(c, err)
		return
	}
	if len(docs) == 0 {
		SendError(c, http.StatusBadRequest, ErrCodeValidationFailed, "document batch cannot be empty")
		return
	}

	if c.Query("async") == "true" {
		jobID := api.jobs.CreateJob(model.JobTypeDocumentIngestion, indexName, map[string]string{
			"documents": strconv.Itoa(len(docs)),
		})
		err := api.jobs.ExecuteJob(jobID, func(ctx context.Context, job *model.Job) error {
			for start := 0; start < len(docs); start += ingestionBatchSize {
				end := start + ingestionBatchSize
				if end > len(docs) {
					end = len(docs)
				}
				if err := accessor.AddDocuments(docs[start:end]); err != nil {
					return err
				}
				api.metrics.DocsIndexedTotal.Add(float64(end - start))
				api.jobs.UpdateJobProgress(job.ID, end, len(docs), "indexing")
			}
			return nil
		})
		if err != nil {
			SendInternalError(c, "start ingestion job", err)
			return
		}

		c.JSON(http.StatusAccepted, gin.H{
			"status": "accepted",
			"job_id": jobID,
		})
		return
	}

	if err := accessor.AddDocuments(docs); err != nil {
		switch {
		case errors.Is(err, internalErrors.ErrDuplicateDocument):
			SendError(c, http.StatusConflict, ErrCodeDuplicateDoc, err.Error())
		case errors.Is(err, internalErrors.ErrMissingDocumentID), errors.Is(err, internalErrors.ErrInvalidDocumentID):
			SendError(c, http.StatusBadRequest, ErrCodeValidationFailed, err.Error())
		default:
			SendError(c, http.StatusInternalServerError, ErrCodeIndexingFailed, err.Error())
		}
		return
	}

	api.metrics.DocsIndexedTotal.Add(float64(len(docs)))
	c.JSON(http.StatusOK, gin.H{"message": "Documents added successfully", "count": len(docs)})
}
