package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/nguyenlong0920/ecommerce-admin/internal/http/middleware"
	"github.com/nguyenlong0920/ecommerce-admin/internal/http/validation"
	"github.com/nguyenlong0920/ecommerce-admin/internal/modules/admins"
	"github.com/nguyenlong0920/ecommerce-admin/internal/shared/apperr"
)

type AdminsHandler struct {
	svc *admins.Service
}

func NewAdminsHandler(svc *admins.Service) *AdminsHandler {
	return &AdminsHandler{svc: svc}
}

type adminInput struct {
	Email string `json:"email" binding:"required,email"`
}

func (h *AdminsHandler) List(c *gin.Context) {
	items, err := h.svc.List(c.Request.Context())
	if err != nil {
		middleware.Fail(c, apperr.Wrap(err))
		return
	}
	c.JSON(http.StatusOK, items)
}

func (h *AdminsHandler) Create(c *gin.Context) {
	var in adminInput
	if err := c.ShouldBindJSON(&in); err != nil {
		errs := validation.FromBindError(err, &in)
		middleware.Fail(c, apperr.InvalidErr("Enter a valid email address.", errs))
		return
	}

	a, err := h.svc.Create(c.Request.Context(), in.Email)
	if err != nil {
		middleware.Fail(c, err)
		return
	}
	c.JSON(http.StatusOK, a)
}

func (h *AdminsHandler) Update(c *gin.Context) {
	id := c.Query("_id")
	if id == "" {
		middleware.Fail(c, apperr.InvalidErr("Missing _id.", nil))
		return
	}

	var in adminInput
	if err := c.ShouldBindJSON(&in); err != nil {
		errs := validation.FromBindError(err, &in)
		middleware.Fail(c, apperr.InvalidErr("Enter a valid email address.", errs))
		return
	}

	a, err := h.svc.Update(c.Request.Context(), id, in.Email)
	if err != nil {
		middleware.Fail(c, err)
		return
	}
	c.JSON(http.StatusOK, a)
}

func (h *AdminsHandler) Delete(c *gin.Context) {
	id := c.Query("_id")
	if id == "" {
		middleware.Fail(c, apperr.InvalidErr("Missing _id.", nil))
		return
	}

	if err := h.svc.Delete(c.Request.Context(), id); err != nil {
		middleware.Fail(c, err)
		return
	}
	c.JSON(http.StatusOK, true)
}
