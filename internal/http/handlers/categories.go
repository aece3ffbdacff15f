package handlers

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/nguyenlong0920/ecommerce-admin/internal/http/middleware"
	"github.com/nguyenlong0920/ecommerce-admin/internal/http/validation"
	"github.com/nguyenlong0920/ecommerce-admin/internal/modules/categories"
	"github.com/nguyenlong0920/ecommerce-admin/internal/shared/apperr"
)

type CategoriesHandler struct {
	svc *categories.Service
}

func NewCategoriesHandler(svc *categories.Service) *CategoriesHandler {
	return &CategoriesHandler{svc: svc}
}

// The admin form keeps property values as one comma-separated field; the
// split happens here, at the boundary, and nowhere else.
type categoryPropertyInput struct {
	Name   string `json:"name"`
	Values string `json:"values"`
}

type categoryInput struct {
	ID         string                  `json:"_id"`
	Name       string                  `json:"name" binding:"required"`
	Properties []categoryPropertyInput `json:"properties"`
}

type categoryView struct {
	ID         string                `json:"_id"`
	Name       string                `json:"name"`
	Properties []categories.Property `json:"properties"`
}

func mapCategory(c categories.Category) categoryView {
	return categoryView{ID: c.ID, Name: c.Name, Properties: c.Properties()}
}

func (h *CategoriesHandler) List(c *gin.Context) {
	items, err := h.svc.List(c.Request.Context())
	if err != nil {
		middleware.Fail(c, apperr.Wrap(err))
		return
	}

	out := make([]categoryView, 0, len(items))
	for _, item := range items {
		out = append(out, mapCategory(item))
	}
	c.JSON(http.StatusOK, out)
}

func (h *CategoriesHandler) Create(c *gin.Context) {
	var in categoryInput
	if err := c.ShouldBindJSON(&in); err != nil {
		errs := validation.FromBindError(err, &in)
		middleware.Fail(c, apperr.InvalidErr("Category name is required.", errs))
		return
	}

	cat, err := h.svc.Create(c.Request.Context(), in.Name, parseProperties(in.Properties))
	if err != nil {
		middleware.Fail(c, err)
		return
	}
	c.JSON(http.StatusOK, mapCategory(cat))
}

func (h *CategoriesHandler) Update(c *gin.Context) {
	var in categoryInput
	if err := c.ShouldBindJSON(&in); err != nil {
		errs := validation.FromBindError(err, &in)
		middleware.Fail(c, apperr.InvalidErr("Category name is required.", errs))
		return
	}
	if in.ID == "" {
		middleware.Fail(c, apperr.InvalidErr("Missing _id.", nil))
		return
	}

	cat, err := h.svc.Update(c.Request.Context(), in.ID, in.Name, parseProperties(in.Properties))
	if err != nil {
		middleware.Fail(c, err)
		return
	}
	c.JSON(http.StatusOK, mapCategory(cat))
}

func (h *CategoriesHandler) Delete(c *gin.Context) {
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

func parseProperties(in []categoryPropertyInput) []categories.Property {
	out := make([]categories.Property, 0, len(in))
	for _, p := range in {
		out = append(out, categories.Property{
			Name:   p.Name,
			Values: strings.Split(p.Values, ","),
		})
	}
	return out
}
