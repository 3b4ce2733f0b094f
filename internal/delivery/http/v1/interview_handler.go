package v1

import (
	"net/http"
	"strconv"

	"valletta-hr-backend/internal/delivery/http/response"
	"valletta-hr-backend/internal/domain"
	"valletta-hr-backend/pkg/apperror"

	"github.com/gin-gonic/gin"
)

type InterviewHandler struct {
	interviewUC domain.InterviewUsecase
}

func NewInterviewHandler(rg *gin.RouterGroup, interviewUC domain.InterviewUsecase) {
	handler := &InterviewHandler{interviewUC: interviewUC}

	interviews := rg.Group("/interviews")
	{
		interviews.GET("/:candidateId", handler.Get)
		interviews.POST("", handler.Save)
		interviews.DELETE("/:candidateId", handler.Delete)
	}
}

// Get godoc
// @Summary      Get a candidate's interview scorecard
// @Description  Returns the single interview row for the candidate, reshaped into screening/technical/final sections. Missing fields come back as empty strings.
// @Tags         interviews
// @Produce      json
// @Param        candidateId  path  int  true  "Candidate ID"
// @Success      200  {object}  response.Response
// @Failure      404  {object}  response.Response
// @Router       /interviews/{candidateId} [get]
func (h *InterviewHandler) Get(c *gin.Context) {
	candidateID, err := strconv.ParseInt(c.Param("candidateId"), 10, 64)
	if err != nil {
		c.Error(apperror.BadRequest("Некорректный ID кандидата"))
		return
	}

	interview, err := h.interviewUC.GetInterview(c, candidateID)
	if err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusOK, "Interview fetched", interview)
}

// Save godoc
// @Summary      Create or update an interview scorecard
// @Description  Saves the full nested payload for the candidate named in the body. One scorecard per candidate; repeated saves update the same row.
// @Tags         interviews
// @Accept       json
// @Produce      json
// @Param        interview  body      domain.Interview  true  "Interview JSON"
// @Success      200  {object}  response.Response
// @Failure      400  {object}  response.Response
// @Failure      404  {object}  response.Response
// @Router       /interviews [post]
func (h *InterviewHandler) Save(c *gin.Context) {
	var interview domain.Interview
	if err := c.ShouldBindJSON(&interview); err != nil {
		c.Error(apperror.BadRequest(err.Error()))
		return
	}

	if err := h.interviewUC.SaveInterview(c, &interview); err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusOK, "Interview saved", interview)
}

// Delete godoc
// @Summary      Delete a candidate's interview scorecard
// @Tags         interviews
// @Produce      json
// @Param        candidateId  path  int  true  "Candidate ID"
// @Success      200  {object}  response.Response
// @Failure      404  {object}  response.Response
// @Router       /interviews/{candidateId} [delete]
func (h *InterviewHandler) Delete(c *gin.Context) {
	candidateID, err := strconv.ParseInt(c.Param("candidateId"), 10, 64)
	if err != nil {
		c.Error(apperror.BadRequest("Некорректный ID кандидата"))
		return
	}

	if err := h.interviewUC.DeleteInterview(c, candidateID); err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusOK, "Interview deleted", nil)
}
