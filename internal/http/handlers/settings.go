package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/nguyenlong0920/ecommerce-admin/internal/http/middleware"
	"github.com/nguyenlong0920/ecommerce-admin/internal/http/validation"
	"github.com/nguyenlong0920/ecommerce-admin/internal/modules/settings"
	"github.com/nguyenlong0920/ecommerce-admin/internal/shared/apperr"
)

type SettingsHandler struct {
	repo *settings.Repo
}

func NewSettingsHandler(repo *settings.Repo) *SettingsHandler {
	return &SettingsHandler{repo: repo}
}

// Get returns JSON null for a setting that was never written; the panel
// treats that as "no value yet", not as a failure.
func (h *SettingsHandler) Get(c *gin.Context) {
	name := c.Query("name")
	if name == "" {
		middleware.Fail(c, apperr.InvalidErr("Missing name.", nil))
		return
	}

	s, err := h.repo.Get(c.Request.Context(), name)
	if err != nil {
		middleware.Fail(c, apperr.Wrap(err))
		return
	}
	if s == nil {
		c.JSON(http.StatusOK, nil)
		return
	}
	c.JSON(http.StatusOK, s)
}

type settingInput struct {
	Name  string `json:"name" binding:"required"`
	Value string `json:"value"`
}

func (h *SettingsHandler) Put(c *gin.Context) {
	var in settingInput
	if err := c.ShouldBindJSON(&in); err != nil {
		errs := validation.FromBindError(err, &in)
		middleware.Fail(c, apperr.InvalidErr("Setting name is required.", errs))
		return
	}

	s, err := h.repo.Upsert(c.Request.Context(), in.Name, in.Value)
	if err != nil {
		middleware.Fail(c, apperr.Wrap(err))
		return
	}
	c.JSON(http.StatusOK, s)
}
