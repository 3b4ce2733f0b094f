package v1

import (
	"net/http"
	"strconv"

	"valletta-hr-backend/internal/delivery/http/response"
	"valletta-hr-backend/internal/domain"
	"valletta-hr-backend/pkg/apperror"

	"github.com/gin-gonic/gin"
)

type CandidateHandler struct {
	candidateUC domain.CandidateUsecase
}

func NewCandidateHandler(rg *gin.RouterGroup, candidateUC domain.CandidateUsecase) {
	handler := &CandidateHandler{candidateUC: candidateUC}

	candidates := rg.Group("/candidates")
	{
		candidates.GET("", handler.List)
		candidates.POST("", handler.Create)
		candidates.PUT("/:id", handler.Update)
		candidates.DELETE("/:id", handler.Delete)
	}
}

// List godoc
// @Summary      List all candidates
// @Description  Returns every candidate ordered by creation time, newest first. Filtering happens client-side.
// @Tags         candidates
// @Produce      json
// @Success      200  {object}  response.Response
// @Router       /candidates [get]
func (h *CandidateHandler) List(c *gin.Context) {
	candidates, err := h.candidateUC.ListCandidates(c)
	if err != nil {
		c.Error(err)
		return
	}
	response.Success(c, http.StatusOK, "Candidates fetched", candidates)
}

// Create godoc
// @Summary      Create a candidate
// @Description  Creates a pipeline entry. nameRu, nameEn, email and vacancy are required; status defaults to "new", salaryCurrency to "USD".
// @Tags         candidates
// @Accept       json
// @Produce      json
// @Param        candidate  body      domain.Candidate  true  "Candidate JSON"
// @Success      201  {object}  response.Response
// @Failure      400  {object}  response.Response
// @Router       /candidates [post]
func (h *CandidateHandler) Create(c *gin.Context) {
	var candidate domain.Candidate
	if err := c.ShouldBindJSON(&candidate); err != nil {
		c.Error(apperror.BadRequest(err.Error()))
		return
	}

	if err := h.candidateUC.CreateCandidate(c, &candidate); err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusCreated, "Candidate created", candidate)
}

// Update godoc
// @Summary      Update a candidate
// @Description  Full replace of all mutable fields. statusUpdatedAt and updatedAt bump to server time on every call.
// @Tags         candidates
// @Accept       json
// @Produce      json
// @Param        id         path      int               true  "Candidate ID"
// @Param        candidate  body      domain.Candidate  true  "Candidate JSON"
// @Success      200  {object}  response.Response
// @Failure      400  {object}  response.Response
// @Failure      404  {object}  response.Response
// @Router       /candidates/{id} [put]
func (h *CandidateHandler) Update(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.Error(apperror.BadRequest("Некорректный ID кандидата"))
		return
	}

	var candidate domain.Candidate
	if err := c.ShouldBindJSON(&candidate); err != nil {
		c.Error(apperror.BadRequest(err.Error()))
		return
	}

	updated, err := h.candidateUC.UpdateCandidate(c, id, &candidate)
	if err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusOK, "Candidate updated", updated)
}

// Delete godoc
// @Summary      Delete a candidate
// @Description  Removes the row and returns its last snapshot. The candidate's interview row stays behind.
// @Tags         candidates
// @Produce      json
// @Param        id  path  int  true  "Candidate ID"
// @Success      200  {object}  response.Response
// @Failure      404  {object}  response.Response
// @Router       /candidates/{id} [delete]
func (h *CandidateHandler) Delete(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.Error(apperror.BadRequest("Некорректный ID кандидата"))
		return
	}

	deleted, err := h.candidateUC.DeleteCandidate(c, id)
	if err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusOK, "Candidate deleted", deleted)
}
