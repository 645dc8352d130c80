package api

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/pagesift/go-page-search/model"
)

// GetJobHandler returns the status of a background job.
func (api *API) GetJobHandler(c *gin.Context) {
	jobID := c.Param("jobId")

	job, err := api.jobs.GetJob(jobID)
	if err != nil {
		SendJobNotFoundError(c, jobID)
		return
	}

	c.JSON(http.StatusOK, job)
}

// ListJobsHandler lists the jobs of an index, optionally filtered by status
// via the ?status= query parameter.
func (api *API) ListJobsHandler(c *gin.Context) {
	indexName := c.Param("indexName")

	if _, err := api.engine.GetIndex(indexName); err != nil {
		SendIndexNotFoundError(c, indexName)
		return
	}

	var statusFilter *model.JobStatus
	if statusParam := c.Query("status"); statusParam != "" {
		status := model.JobStatus(statusParam)
		statusFilter = &status
	}

	jobList := api.jobs.ListJobs(indexName, statusFilter)
	c.JSON(http.StatusOK, gin.H{"jobs": jobList, "total": len(jobList)})
}
