package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/nguyenlong0920/ecommerce-admin/internal/http/middleware"
	"github.com/nguyenlong0920/ecommerce-admin/internal/modules/orders"
	"github.com/nguyenlong0920/ecommerce-admin/internal/shared/apperr"
)

type OrdersHandler struct {
	repo *orders.Repo
}

func NewOrdersHandler(repo *orders.Repo) *OrdersHandler {
	return &OrdersHandler{repo: repo}
}

type orderView struct {
	ID            string            `json:"_id"`
	CreatedAt     string            `json:"createdAt"`
	Name          string            `json:"name"`
	Email         string            `json:"email"`
	StreetAddress string            `json:"streetAddress"`
	City          string            `json:"city"`
	PostalCode    string            `json:"postalCode"`
	Country       string            `json:"country"`
	Paid          bool              `json:"paid"`
	LineItems     []orders.LineItem `json:"line_items"`
}

func (h *OrdersHandler) List(c *gin.Context) {
	items, err := h.repo.List(c.Request.Context())
	if err != nil {
		middleware.Fail(c, apperr.Wrap(err))
		return
	}

	out := make([]orderView, 0, len(items))
	for _, o := range items {
		out = append(out, orderView{
			ID:            o.ID,
			CreatedAt:     o.CreatedAt.Format("2006-01-02T15:04:05.000Z07:00"),
			Name:          o.Name,
			Email:         o.Email,
			StreetAddress: o.StreetAddress,
			City:          o.City,
			PostalCode:    o.PostalCode,
			Country:       o.Country,
			Paid:          o.Paid,
			LineItems:     o.LineItems(),
		})
	}
	c.JSON(http.StatusOK, out)
}
