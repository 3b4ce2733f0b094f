package v1

import (
	"net/http"
	"strconv"

	"valletta-hr-backend/internal/delivery/http/response"
	"valletta-hr-backend/internal/domain"
	"valletta-hr-backend/pkg/apperror"

	"github.com/gin-gonic/gin"
)

type EmployeeHandler struct {
	employeeUC domain.EmployeeUsecase
}

func NewEmployeeHandler(rg *gin.RouterGroup, employeeUC domain.EmployeeUsecase) {
	handler := &EmployeeHandler{employeeUC: employeeUC}

	employees := rg.Group("/employees")
	{
		employees.GET("", handler.List)
		employees.POST("", handler.Create)
		employees.PUT("/:id", handler.Update)
		employees.DELETE("/:id", handler.Delete)
	}
}

// List godoc
// @Summary      List all employees
// @Tags         employees
// @Produce      json
// @Success      200  {object}  response.Response
// @Router       /employees [get]
func (h *EmployeeHandler) List(c *gin.Context) {
	employees, err := h.employeeUC.ListEmployees(c)
	if err != nil {
		c.Error(err)
		return
	}
	response.Success(c, http.StatusOK, "Employees fetched", employees)
}

// Create godoc
// @Summary      Create an employee
// @Tags         employees
// @Accept       json
// @Produce      json
// @Param        employee  body      domain.Employee  true  "Employee JSON"
// @Success      201  {object}  response.Response
// @Failure      400  {object}  response.Response
// @Router       /employees [post]
func (h *EmployeeHandler) Create(c *gin.Context) {
	var employee domain.Employee
	if err := c.ShouldBindJSON(&employee); err != nil {
		c.Error(apperror.BadRequest(err.Error()))
		return
	}

	if err := h.employeeUC.CreateEmployee(c, &employee); err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusCreated, "Employee created", employee)
}

// Update godoc
// @Summary      Update an employee
// @Tags         employees
// @Accept       json
// @Produce      json
// @Param        id        path      int              true  "Employee ID"
// @Param        employee  body      domain.Employee  true  "Employee JSON"
// @Success      200  {object}  response.Response
// @Failure      404  {object}  response.Response
// @Router       /employees/{id} [put]
func (h *EmployeeHandler) Update(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.Error(apperror.BadRequest("Некорректный ID сотрудника"))
		return
	}

	var employee domain.Employee
	if err := c.ShouldBindJSON(&employee); err != nil {
		c.Error(apperror.BadRequest(err.Error()))
		return
	}

	updated, err := h.employeeUC.UpdateEmployee(c, id, &employee)
	if err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusOK, "Employee updated", updated)
}

// Delete godoc
// @Summary      Delete an employee
// @Tags         employees
// @Produce      json
// @Param        id  path  int  true  "Employee ID"
// @Success      200  {object}  response.Response
// @Failure      404  {object}  response.Response
// @Router       /employees/{id} [delete]
func (h *EmployeeHandler) Delete(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.Error(apperror.BadRequest("Некорректный ID сотрудника"))
		return
	}

	if err := h.employeeUC.DeleteEmployee(c, id); err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusOK, "Employee deleted", nil)
}
