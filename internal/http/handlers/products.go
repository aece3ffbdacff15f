package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/nguyenlong0920/ecommerce-admin/internal/http/middleware"
	"github.com/nguyenlong0920/ecommerce-admin/internal/http/validation"
	"github.com/nguyenlong0920/ecommerce-admin/internal/modules/categories"
	"github.com/nguyenlong0920/ecommerce-admin/internal/modules/products"
	"github.com/nguyenlong0920/ecommerce-admin/internal/shared/apperr"
	"github.com/nguyenlong0920/ecommerce-admin/internal/storage"
)

type ProductsHandler struct {
	svc   *products.Service
	store storage.Storage
}

func NewProductsHandler(svc *products.Service, store storage.Storage) *ProductsHandler {
	return &ProductsHandler{svc: svc, store: store}
}

type productInput struct {
	ID          string            `json:"_id"`
	Title       string            `json:"title" binding:"required"`
	Description string            `json:"description"`
	PriceCents  int64             `json:"price_cents" binding:"gte=0"`
	Images      []string          `json:"images"`
	Category    *string           `json:"category"`
	Properties  map[string]string `json:"properties"`
}

type productView struct {
	ID          string            `json:"_id"`
	Title       string            `json:"title"`
	Description string            `json:"description"`
	PriceCents  int64             `json:"price_cents"`
	Images      []string          `json:"images"`
	Category    *string           `json:"category"`
	Properties  map[string]string `json:"properties"`
	// EditableProperties is only present on the single-product response: the
	// property definitions the product's category currently carries.
	EditableProperties []categories.Property `json:"editable_properties,omitempty"`
}

func mapProduct(p products.Product) productView {
	return productView{
		ID:          p.ID,
		Title:       p.Title,
		Description: p.Description,
		PriceCents:  p.PriceCents,
		Images:      p.Images(),
		Category:    p.CategoryID,
		Properties:  p.Properties(),
	}
}

// List serves both the collection (optionally filtered by ?category=) and,
// when ?_id= is present, a single product with its editable property set.
func (h *ProductsHandler) List(c *gin.Context) {
	if id := c.Query("_id"); id != "" {
		detail, err := h.svc.Get(c.Request.Context(), id)
		if err != nil {
			middleware.Fail(c, err)
			return
		}
		out := mapProduct(detail.Product)
		out.EditableProperties = detail.EditableProperties
		c.JSON(http.StatusOK, out)
		return
	}

	items, err := h.svc.List(c.Request.Context(), c.Query("category"))
	if err != nil {
		middleware.Fail(c, apperr.Wrap(err))
		return
	}

	out := make([]productView, 0, len(items))
	for _, p := range items {
		out = append(out, mapProduct(p))
	}
	c.JSON(http.StatusOK, out)
}

func (h *ProductsHandler) Create(c *gin.Context) {
	var in productInput
	if err := c.ShouldBindJSON(&in); err != nil {
		errs := validation.FromBindError(err, &in)
		middleware.Fail(c, apperr.InvalidErr("Product payload is invalid.", errs))
		return
	}

	p, err := h.svc.Create(c.Request.Context(), saveInputFrom(in))
	if err != nil {
		middleware.Fail(c, err)
		return
	}
	c.JSON(http.StatusOK, mapProduct(p))
}

func (h *ProductsHandler) Update(c *gin.Context) {
	var in productInput
	if err := c.ShouldBindJSON(&in); err != nil {
		errs := validation.FromBindError(err, &in)
		middleware.Fail(c, apperr.InvalidErr("Product payload is invalid.", errs))
		return
	}
	if in.ID == "" {
		middleware.Fail(c, apperr.InvalidErr("Missing _id.", nil))
		return
	}

	p, err := h.svc.Update(c.Request.Context(), in.ID, saveInputFrom(in))
	if err != nil {
		middleware.Fail(c, err)
		return
	}
	c.JSON(http.StatusOK, mapProduct(p))
}

func (h *ProductsHandler) Delete(c *gin.Context) {
	id := c.Query("_id")
	if id == "" {
		middleware.Fail(c, apperr.InvalidErr("Missing _id.", nil))
		return
	}

	detail, err := h.svc.Get(c.Request.Context(), id)
	if err != nil {
		middleware.Fail(c, err)
		return
	}

	if err := h.svc.Delete(c.Request.Context(), id); err != nil {
		middleware.Fail(c, err)
		return
	}

	// best effort: a leaked object beats a failed delete
	for _, url := range detail.Product.Images() {
		_ = h.store.Delete(c.Request.Context(), url)
	}
	c.JSON(http.StatusOK, true)
}

func saveInputFrom(in productInput) products.SaveInput {
	return products.SaveInput{
		Title:       in.Title,
		Description: in.Description,
		PriceCents:  in.PriceCents,
		Images:      in.Images,
		CategoryID:  in.Category,
		Properties:  in.Properties,
	}
}
