package handlers

import (
	"crypto/subtle"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/nguyenlong0920/ecommerce-admin/internal/http/middleware"
	"github.com/nguyenlong0920/ecommerce-admin/internal/http/validation"
	"github.com/nguyenlong0920/ecommerce-admin/internal/modules/admins"
	"github.com/nguyenlong0920/ecommerce-admin/internal/shared/apperr"
)

// AuthHandler issues and destroys sessions. OAuth itself lives in the
// external identity gateway: after verifying a sign-in it calls Login with
// the verified email and a shared token. A session is only created when that
// email is on the admin allow-list.
type AuthHandler struct {
	Sessions     middleware.SessionCfg
	Admins       *admins.Service
	GatewayToken string
}

func NewAuthHandler(sessions middleware.SessionCfg, svc *admins.Service, gatewayToken string) *AuthHandler {
	return &AuthHandler{Sessions: sessions, Admins: svc, GatewayToken: gatewayToken}
}

type loginInput struct {
	Email string `json:"email" binding:"required,email"`
}

func (h *AuthHandler) Login(c *gin.Context) {
	token := c.GetHeader("X-Auth-Gateway-Token")
	if h.GatewayToken == "" || subtle.ConstantTimeCompare([]byte(token), []byte(h.GatewayToken)) != 1 {
		middleware.Fail(c, apperr.UnauthorizedErr("authentication required"))
		return
	}

	var in loginInput
	if err := c.ShouldBindJSON(&in); err != nil {
		errs := validation.FromBindError(err, &in)
		middleware.Fail(c, apperr.InvalidErr("Invalid sign-in payload.", errs))
		return
	}

	admin, err := h.Admins.GetByEmail(c.Request.Context(), in.Email)
	if err != nil {
		// not on the allow-list: no session
		middleware.Fail(c, apperr.ForbiddenErr("Not an admin."))
		return
	}

	sess, err := middleware.CreateSession(h.Sessions, admin.ID)
	if err != nil {
		middleware.Fail(c, apperr.Wrap(err))
		return
	}

	maxAge := int(h.Sessions.TTL.Seconds())
	c.SetCookie(h.Sessions.CookieName, sess.ID, maxAge, "/", "", h.Sessions.Secure, true)
	c.JSON(http.StatusOK, gin.H{"_id": admin.ID, "email": admin.Email})
}

func (h *AuthHandler) Logout(c *gin.Context) {
	if sessionID, err := c.Cookie(h.Sessions.CookieName); err == nil && sessionID != "" {
		_ = middleware.DeleteSession(h.Sessions, sessionID)
	}
	c.SetCookie(h.Sessions.CookieName, "", -1, "/", "", h.Sessions.Secure, true)
	c.JSON(http.StatusOK, true)
}

func (h *AuthHandler) Me(c *gin.Context) {
	a, ok := middleware.CurrentAdmin(c)
	if !ok {
		middleware.Fail(c, apperr.UnauthorizedErr("authentication required"))
		return
	}
	c.JSON(http.StatusOK, gin.H{"_id": a.ID, "email": a.Email})
}
