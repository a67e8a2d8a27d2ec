package handler

import (
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"

	"employeeapi/src/app/http/dto"
	"employeeapi/src/app/http/response"
	"employeeapi/src/app/middleware"
	"employeeapi/src/core/ports"
)

// EmployeeHandler handles the /api/employees resource.
type EmployeeHandler struct {
	employees ports.EmployeeService
}

// NewEmployeeHandler creates a new EmployeeHandler.
func NewEmployeeHandler(employees ports.EmployeeService) *EmployeeHandler {
	return &EmployeeHandler{employees: employees}
}

// Register mounts the employee routes on g.
func (h *EmployeeHandler) Register(g *gin.RouterGroup) {
	g.POST("", h.Create)
	g.GET("", h.List)
	g.GET("/search", h.Search)
	g.GET("/:id", h.Get)
	g.PUT("/:id", h.Update)
	g.DELETE("/:id", h.Delete)
}

// Create stores a new employee.
// POST /api/employees
func (h *EmployeeHandler) Create(c *gin.Context) {
	requestID := middleware.GetRequestID(c)

	var req dto.CreateEmployeeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		bindError(c, err, requestID)
		return
	}
	e, err := req.ToDomain()
	if err != nil {
		response.FromDomainError(c, err, requestID)
		return
	}

	saved, err := h.employees.SaveEmployee(c.Request.Context(), e)
	if err != nil {
		response.FromDomainError(c, err, requestID)
		return
	}
	response.Created(c, dto.EmployeeFromDomain(saved))
}

// List returns every employee.
// GET /api/employees
func (h *EmployeeHandler) List(c *gin.Context) {
	list, err := h.employees.GetAllEmployees(c.Request.Context())
	if err != nil {
		response.FromDomainError(c, err, middleware.GetRequestID(c))
		return
	}
	response.OK(c, dto.EmployeesFromDomain(list))
}

// Get returns one employee, or 404 with an empty body.
// GET /api/employees/:id
func (h *EmployeeHandler) Get(c *gin.Context) {
	id, ok := parseEmployeeID(c)
	if !ok {
		return
	}
	e, found, err := h.employees.GetEmployeeByID(c.Request.Context(), id)
	if err != nil {
		response.FromDomainError(c, err, middleware.GetRequestID(c))
		return
	}
	if !found {
		response.NotFoundEmpty(c)
		return
	}
	response.OK(c, dto.EmployeeFromDomain(e))
}

// Search finds an employee by first and last name.
// GET /api/employees/search?firstName=&lastName=
func (h *EmployeeHandler) Search(c *gin.Context) {
	requestID := middleware.GetRequestID(c)
	firstName := strings.TrimSpace(c.Query("firstName"))
	lastName := strings.TrimSpace(c.Query("lastName"))
	if firstName == "" || lastName == "" {
		response.BadRequest(c, "firstName and lastName query parameters are required", requestID)
		return
	}

	e, found, err := h.employees.FindEmployeeByNames(c.Request.Context(), firstName, lastName)
	if err != nil {
		response.FromDomainError(c, err, requestID)
		return
	}
	if !found {
		response.NotFoundEmpty(c)
		return
	}
	response.OK(c, dto.EmployeeFromDomain(e))
}

// Update overwrites the fields present in the body onto the stored employee.
// PUT /api/employees/:id
func (h *EmployeeHandler) Update(c *gin.Context) {
	requestID := middleware.GetRequestID(c)
	id, ok := parseEmployeeID(c)
	if !ok {
		return
	}

	var req dto.UpdateEmployeeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		bindError(c, err, requestID)
		return
	}

	ctx := c.Request.Context()
	e, found, err := h.employees.GetEmployeeByID(ctx, id)
	if err != nil {
		response.FromDomainError(c, err, requestID)
		return
	}
	if !found {
		response.NotFoundEmpty(c)
		return
	}
	if err := e.Apply(req.ToChanges()); err != nil {
		response.FromDomainError(c, err, requestID)
		return
	}

	updated, err := h.employees.UpdateEmployee(ctx, e)
	if err != nil {
		response.FromDomainError(c, err, requestID)
		return
	}
	response.OK(c, dto.EmployeeFromDomain(updated))
}

// Delete removes an employee. It succeeds whether or not the id existed.
// DELETE /api/employees/:id
func (h *EmployeeHandler) Delete(c *gin.Context) {
	id, ok := parseEmployeeID(c)
	if !ok {
		return
	}
	if err := h.employees.DeleteEmployee(c.Request.Context(), id); err != nil {
		response.FromDomainError(c, err, middleware.GetRequestID(c))
		return
	}
	c.String(http.StatusOK, DeletedMessage(id))
}

// DeletedMessage is the confirmation text returned by Delete.
func DeletedMessage(id int64) string {
	return fmt.Sprintf("Employee with id: %d was deleted", id)
}

func parseEmployeeID(c *gin.Context) (int64, bool) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		response.BadRequest(c, "invalid employee id", middleware.GetRequestID(c))
		return 0, false
	}
	return id, true
}

// bindError reports the first failed validation rule, or a generic 400 for
// malformed JSON.
func bindError(c *gin.Context, err error, requestID string) {
	var verrs validator.ValidationErrors
	if errors.As(err, &verrs) && len(verrs) > 0 {
		fe := verrs[0]
		response.ValidationError(c, jsonFieldName(fe.Field()), "failed on '"+fe.Tag()+"' rule", requestID)
		return
	}
	response.BadRequest(c, "invalid request body", requestID)
}

func jsonFieldName(field string) string {
	if field == "" {
		return field
	}
	return strings.ToLower(field[:1]) + field[1:]
}
