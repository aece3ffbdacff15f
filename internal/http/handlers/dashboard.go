package handlers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/nguyenlong0920/ecommerce-admin/internal/http/middleware"
	"github.com/nguyenlong0920/ecommerce-admin/internal/modules/orders"
	"github.com/nguyenlong0920/ecommerce-admin/internal/modules/stats"
	"github.com/nguyenlong0920/ecommerce-admin/internal/shared/apperr"
)

type DashboardHandler struct {
	orders *orders.Repo
}

func NewDashboardHandler(repo *orders.Repo) *DashboardHandler {
	return &DashboardHandler{orders: repo}
}

type bucketView struct {
	Count        int    `json:"count"`
	RevenueCents int64  `json:"revenue_cents"`
	Revenue      string `json:"revenue"` // locale-formatted units
}

func mapBucket(b stats.Bucket) bucketView {
	return bucketView{
		Count:        b.Count,
		RevenueCents: b.RevenueCents,
		Revenue:      stats.FormatRevenue(b.RevenueCents),
	}
}

func (h *DashboardHandler) Get(c *gin.Context) {
	list, err := h.orders.List(c.Request.Context())
	if err != nil {
		middleware.Fail(c, apperr.Wrap(err))
		return
	}

	s := stats.Summarize(list, time.Now())
	c.JSON(http.StatusOK, gin.H{
		"today":     mapBucket(s.Today),
		"thisWeek":  mapBucket(s.ThisWeek),
		"thisMonth": mapBucket(s.ThisMonth),
		"byDay":     s.ByDay,
	})
}
