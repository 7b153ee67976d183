package qa

import (
	"fmt"
	"net/http"
	"time"

	"github.com/Meesho/BharatMLStack/qaflow/handlers/config"
	internalErr "github.com/Meesho/BharatMLStack/qaflow/internal/errors"
	"github.com/Meesho/BharatMLStack/qaflow/pkg/logger"
	"github.com/Meesho/BharatMLStack/qaflow/pkg/metrics"
	"github.com/gin-gonic/gin"
)

type EvaluateRequest struct {
	ModelConfigId string `json:"model_config_id" binding:"required"`
	InferFile     string `json:"infer_file"`
	FromFile      bool   `json:"from_file"`
}

func RegisterRoutes(router *gin.Engine) {
	router.GET("/health/self", func(c *gin.Context) {
		c.String(http.StatusOK, "true")
	})
	router.POST("/v1/evaluate", evaluateHandler)
}

// evaluateHandler re-scores a persisted inference run. Only the
// from-file mode is reachable over HTTP; fresh inference output never
// crosses the wire, it is evaluated in-process by the run driver.
func evaluateHandler(c *gin.Context) {
	startTime := time.Now()

	var req EvaluateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	conf, err := config.GetModelConfig(req.ModelConfigId)
	if err != nil {
		logger.Error(fmt.Sprintf("evaluate: config not found for %s", req.ModelConfigId), err)
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	tags := []string{"model-id", req.ModelConfigId, "metric", conf.Metric}
	metrics.Count("qa.evaluate.request.total", 1, tags)

	inferFile := req.InferFile
	if inferFile == "" {
		inferFile = conf.InferFile
	}

	result, err := NewEvaluator(MetricKind(conf.Metric)).Evaluate(inferFile, nil, true)
	if err != nil {
		logger.Error(fmt.Sprintf("evaluate: run failed for %s", req.ModelConfigId), err)
		switch err.(type) {
		case *internalErr.UnsupportedMetricError, *internalErr.ParsingError:
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		}
		return
	}

	metrics.Timing("qa.evaluate.request.latency", time.Since(startTime), tags)
	c.JSON(http.StatusOK, result)
}
