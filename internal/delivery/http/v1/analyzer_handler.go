package v1

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/fenrirlabsnl/airesume/internal/delivery/http/response"
	"github.com/fenrirlabsnl/airesume/internal/domain"
	"github.com/fenrirlabsnl/airesume/pkg/apperror"
	"github.com/fenrirlabsnl/airesume/pkg/audit"
)

type AnalyzerHandler struct {
	analyzerUC domain.AnalyzerUsecase
}

// NewAnalyzerHandler registers the public job-fit analyzer route
func NewAnalyzerHandler(public *gin.RouterGroup, analyzerUC domain.AnalyzerUsecase) {
	handler := &AnalyzerHandler{
		analyzerUC: analyzerUC,
	}

	public.POST("/analyze", handler.AnalyzeJobDescription)
}

// AnalyzeJobDescription godoc
// @Summary      Analyze Job Description
// @Description  Score a pasted job description against the candidate's profile, experience, skills and known gaps.
// @Tags         analyzer
// @Accept       json
// @Produce      json
// @Param        job  body      domain.AnalyzeRequest  true  "Job Description"
// @Success      200  {object}  response.Response
// @Failure      400  {object}  response.Response
// @Failure      500  {object}  response.Response
// @Router       /analyze [post]
func (h *AnalyzerHandler) AnalyzeJobDescription(c *gin.Context) {
	var req domain.AnalyzeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Error(apperror.BadRequest(err.Error()))
		return
	}

	result, err := h.analyzerUC.AnalyzeFit(c.Request.Context(), req.JobDescription)
	if err != nil {
		c.Error(err)
		return
	}

	requestID, _ := c.Get("RequestID")
	reqIDStr, _ := requestID.(string)
	audit.Default().Log(audit.Event{
		Event:     audit.EventJDAnalyzed,
		IP:        c.ClientIP(),
		RequestID: reqIDStr,
		Details: map[string]interface{}{
			"match_score":    result.MatchScore,
			"recommendation": result.Recommendation,
		},
	})

	response.Success(c, http.StatusOK, "Analysis complete", result)
}
