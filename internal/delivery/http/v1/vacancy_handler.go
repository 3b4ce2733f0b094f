package v1

import (
	"net/http"
	"strconv"

	"valletta-hr-backend/internal/delivery/http/response"
	"valletta-hr-backend/internal/domain"
	"valletta-hr-backend/pkg/apperror"

	"github.com/gin-gonic/gin"
)

type VacancyHandler struct {
	vacancyUC domain.VacancyUsecase
}

func NewVacancyHandler(rg *gin.RouterGroup, vacancyUC domain.VacancyUsecase) {
	handler := &VacancyHandler{vacancyUC: vacancyUC}

	vacancies := rg.Group("/vacancies")
	{
		vacancies.GET("", handler.List)
		vacancies.GET("/:id", handler.Get)
		vacancies.POST("", handler.Create)
		vacancies.PATCH("/:id", handler.Patch)
		vacancies.DELETE("/:id", handler.Delete)
	}
}

// List godoc
// @Summary      List all vacancies
// @Tags         vacancies
// @Produce      json
// @Success      200  {object}  response.Response
// @Router       /vacancies [get]
func (h *VacancyHandler) List(c *gin.Context) {
	vacancies, err := h.vacancyUC.ListVacancies(c)
	if err != nil {
		c.Error(err)
		return
	}
	response.Success(c, http.StatusOK, "Vacancies fetched", vacancies)
}

// Get godoc
// @Summary      Get a vacancy
// @Tags         vacancies
// @Produce      json
// @Param        id  path  int  true  "Vacancy ID"
// @Success      200  {object}  response.Response
// @Failure      404  {object}  response.Response
// @Router       /vacancies/{id} [get]
func (h *VacancyHandler) Get(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.Error(apperror.BadRequest("Некорректный ID вакансии"))
		return
	}

	vacancy, err := h.vacancyUC.GetVacancy(c, id)
	if err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusOK, "Vacancy fetched", vacancy)
}

// Create godoc
// @Summary      Create a vacancy
// @Description  title and description are required; currency defaults to RUB, status to active, client to GlobalBit.
// @Tags         vacancies
// @Accept       json
// @Produce      json
// @Param        vacancy  body      domain.Vacancy  true  "Vacancy JSON"
// @Success      201  {object}  response.Response
// @Failure      400  {object}  response.Response
// @Router       /vacancies [post]
func (h *VacancyHandler) Create(c *gin.Context) {
	var vacancy domain.Vacancy
	if err := c.ShouldBindJSON(&vacancy); err != nil {
		c.Error(apperror.BadRequest(err.Error()))
		return
	}

	if err := h.vacancyUC.CreateVacancy(c, &vacancy); err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusCreated, "Vacancy created", vacancy)
}

// Patch godoc
// @Summary      Partially update a vacancy
// @Description  Only supplied fields overwrite stored values; omitted fields, arrays included, are preserved.
// @Tags         vacancies
// @Accept       json
// @Produce      json
// @Param        id     path      int                  true  "Vacancy ID"
// @Param        patch  body      domain.VacancyPatch  true  "Fields to change"
// @Success      200  {object}  response.Response
// @Failure      400  {object}  response.Response
// @Failure      404  {object}  response.Response
// @Router       /vacancies/{id} [patch]
func (h *VacancyHandler) Patch(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.Error(apperror.BadRequest("Некорректный ID вакансии"))
		return
	}

	var patch domain.VacancyPatch
	if err := c.ShouldBindJSON(&patch); err != nil {
		c.Error(apperror.BadRequest(err.Error()))
		return
	}

	updated, err := h.vacancyUC.PatchVacancy(c, id, &patch)
	if err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusOK, "Vacancy updated", updated)
}

// Delete godoc
// @Summary      Delete a vacancy
// @Tags         vacancies
// @Produce      json
// @Param        id  path  int  true  "Vacancy ID"
// @Success      200  {object}  response.Response
// @Failure      404  {object}  response.Response
// @Router       /vacancies/{id} [delete]
func (h *VacancyHandler) Delete(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.Error(apperror.BadRequest("Некорректный ID вакансии"))
		return
	}

	if err := h.vacancyUC.DeleteVacancy(c, id); err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusOK, "Vacancy deleted", nil)
}
