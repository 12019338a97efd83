package handlers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/oksasatya/go-ddd-employee-service/internal/application"
	"github.com/oksasatya/go-ddd-employee-service/internal/domain/entity"
	"github.com/oksasatya/go-ddd-employee-service/pkg/response"
	"github.com/oksasatya/go-ddd-employee-service/pkg/validation"
)

const deletedMessage = "Employee deleted successfully!"

type EmployeeHandler struct {
	Svc    *application.Service
	Logger *logrus.Logger
}

func NewEmployeeHandler(svc *application.Service, logger *logrus.Logger) *EmployeeHandler {
	return &EmployeeHandler{Svc: svc, Logger: logger}
}

type employeeRequest struct {
	FirstName string `json:"firstName" binding:"required"`
	LastName  string `json:"lastName" binding:"required"`
	Email     string `json:"email" binding:"required"`
}

func (r employeeRequest) toEntity(id int64) *entity.Employee {
	return &entity.Employee{ID: id, FirstName: r.FirstName, LastName: r.LastName, Email: r.Email}
}

// Create handles POST /employees.
func (h *EmployeeHandler) Create(c *gin.Context) {
	var req employeeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.AbortWithError(c, http.StatusBadRequest, "invalid payload", validation.ToDetails(err))
		return
	}

	saved, err := h.Svc.SaveEmployee(c.Request.Context(), req.toEntity(0))
	if err != nil {
		h.fail(c, err)
		return
	}
	c.JSON(http.StatusCreated, saved)
}

// List handles GET /employees.
func (h *EmployeeHandler) List(c *gin.Context) {
	list, err := h.Svc.GetAllEmployees(c.Request.Context())
	if err != nil {
		h.fail(c, err)
		return
	}
	c.JSON(http.StatusOK, list)
}

// Get handles GET /employees/:id. Absence answers 404 with no body.
func (h *EmployeeHandler) Get(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	e, err := h.Svc.GetEmployeeByID(c.Request.Context(), id)
	if err != nil {
		h.fail(c, err)
		return
	}
	c.JSON(http.StatusOK, e)
}

// Update handles PUT /employees/:id. The path id wins over any id in the body.
func (h *EmployeeHandler) Update(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	ctx := c.Request.Context()
	if _, err := h.Svc.GetEmployeeByID(ctx, id); err != nil {
		h.fail(c, err)
		return
	}

	var req employeeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.AbortWithError(c, http.StatusBadRequest, "invalid payload", validation.ToDetails(err))
		return
	}

	updated, err := h.Svc.UpdateEmployee(ctx, req.toEntity(id))
	if err != nil {
		h.fail(c, err)
		return
	}
	c.JSON(http.StatusOK, updated)
}

// Delete handles DELETE /employees/:id. Deleting a missing id still succeeds.
func (h *EmployeeHandler) Delete(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		// no record can carry a non-numeric id, so there is nothing to delete
		c.String(http.StatusOK, deletedMessage)
		return
	}
	if err := h.Svc.DeleteEmployee(c.Request.Context(), id); err != nil {
		h.fail(c, err)
		return
	}
	c.String(http.StatusOK, deletedMessage)
}

// Search handles GET /search/employees?q=&size=.
func (h *EmployeeHandler) Search(c *gin.Context) {
	size, _ := strconv.Atoi(c.Query("size"))
	list, err := h.Svc.SearchEmployees(c.Request.Context(), c.Query("q"), size)
	if err != nil {
		h.fail(c, err)
		return
	}
	c.JSON(http.StatusOK, list)
}

// Health handles GET /healthz.
func (h *EmployeeHandler) Health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

func pathID(c *gin.Context) (int64, bool) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.Status(http.StatusNotFound)
		return 0, false
	}
	return id, true
}

func (h *EmployeeHandler) fail(c *gin.Context, err error) {
	switch {
	case errors.Is(err, application.ErrEmployeeNotFound):
		c.Status(http.StatusNotFound)
	case errors.Is(err, application.ErrEmployeeExists):
		response.AbortWithError(c, http.StatusConflict, err.Error(), nil)
	default:
		h.Logger.WithError(err).WithField("request_id", c.GetString("request_id")).Error("employee request failed")
		_ = c.Error(err)
		response.AbortWithError(c, http.StatusInternalServerError, "internal server error", nil)
	}
}
