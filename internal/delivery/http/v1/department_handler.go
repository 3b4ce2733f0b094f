package v1

import (
	"net/http"
	"strconv"

	"valletta-hr-backend/internal/delivery/http/response"
	"valletta-hr-backend/internal/domain"
	"valletta-hr-backend/pkg/apperror"

	"github.com/gin-gonic/gin"
)

type DepartmentHandler struct {
	departmentUC domain.DepartmentUsecase
}

func NewDepartmentHandler(rg *gin.RouterGroup, departmentUC domain.DepartmentUsecase) {
	handler := &DepartmentHandler{departmentUC: departmentUC}

	departments := rg.Group("/departments")
	{
		departments.GET("", handler.List)
		departments.POST("", handler.Create)
		departments.PUT("/:id", handler.Update)
		departments.DELETE("/:id", handler.Delete)
	}
}

// List godoc
// @Summary      List departments and projects
// @Description  Each entry carries employeeCount derived from its employee id list.
// @Tags         departments
// @Produce      json
// @Success      200  {object}  response.Response
// @Router       /departments [get]
func (h *DepartmentHandler) List(c *gin.Context) {
	departments, err := h.departmentUC.ListDepartments(c)
	if err != nil {
		c.Error(err)
		return
	}
	response.Success(c, http.StatusOK, "Departments fetched", departments)
}

// Create godoc
// @Summary      Create a department or project
// @Tags         departments
// @Accept       json
// @Produce      json
// @Param        department  body      domain.Department  true  "Department JSON"
// @Success      201  {object}  response.Response
// @Failure      400  {object}  response.Response
// @Router       /departments [post]
func (h *DepartmentHandler) Create(c *gin.Context) {
	var department domain.Department
	if err := c.ShouldBindJSON(&department); err != nil {
		c.Error(apperror.BadRequest(err.Error()))
		return
	}

	if err := h.departmentUC.CreateDepartment(c, &department); err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusCreated, "Department created", department)
}

// Update godoc
// @Summary      Update a department or project
// @Tags         departments
// @Accept       json
// @Produce      json
// @Param        id          path      int                true  "Department ID"
// @Param        department  body      domain.Department  true  "Department JSON"
// @Success      200  {object}  response.Response
// @Failure      404  {object}  response.Response
// @Router       /departments/{id} [put]
func (h *DepartmentHandler) Update(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.Error(apperror.BadRequest("Некорректный ID отдела"))
		return
	}

	var department domain.Department
	if err := c.ShouldBindJSON(&department); err != nil {
		c.Error(apperror.BadRequest(err.Error()))
		return
	}

	updated, err := h.departmentUC.UpdateDepartment(c, id, &department)
	if err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusOK, "Department updated", updated)
}

// Delete godoc
// @Summary      Delete a department or project
// @Tags         departments
// @Produce      json
// @Param        id  path  int  true  "Department ID"
// @Success      200  {object}  response.Response
// @Failure      404  {object}  response.Response
// @Router       /departments/{id} [delete]
func (h *DepartmentHandler) Delete(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.Error(apperror.BadRequest("Некорректный ID отдела"))
		return
	}

	if err := h.departmentUC.DeleteDepartment(c, id); err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusOK, "Department deleted", nil)
}
