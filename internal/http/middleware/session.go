package middleware

import (
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// SessionCfg holds configuration for session middleware.
type SessionCfg struct {
	DB         *gorm.DB
	CookieName string
	Secure     bool
	TTL        time.Duration
}

// Session is a database-backed admin session. Sessions are only ever created
// for emails present in the admins table, so holding one implies admin access.
type Session struct {
	ID         string    `gorm:"type:char(36);primaryKey"`
	AdminID    string    `gorm:"type:char(36);not null;index:ix_sessions_admin_id"`
	ExpiresAt  time.Time `gorm:"not null"`
	CreatedAt  time.Time `gorm:"not null"`
	LastSeenAt time.Time `gorm:"not null"`
}

func (Session) TableName() string { return "sessions" }

// SessionMiddleware loads the session named by the cookie and puts the admin
// identity into the gin context. Missing or expired sessions just pass
// through unauthenticated; RequireAdmin decides whether that matters.
func SessionMiddleware(cfg SessionCfg) gin.HandlerFunc {
	return func(c *gin.Context) {
		sessionID, err := c.Cookie(cfg.CookieName)
		if err != nil || sessionID == "" {
			c.Next()
			return
		}

		var sess Session
		if err := cfg.DB.Where("id = ? AND expires_at > ?", sessionID, time.Now()).First(&sess).Error; err != nil {
			// invalid or expired session, clear cookie
			c.SetCookie(cfg.CookieName, "", -1, "/", "", cfg.Secure, true)
			c.Next()
			return
		}

		c.Set("session", &sess)
		c.Set("admin_id", sess.AdminID)

		var adminEmail string
		row := cfg.DB.Table("admins").Select("email").Where("id = ?", sess.AdminID).Row()
		if err := row.Scan(&adminEmail); err == nil {
			c.Set("admin_email", adminEmail)
		}

		c.Next()
	}
}

// CreateSession creates a new session for the given admin.
func CreateSession(cfg SessionCfg, adminID string) (*Session, error) {
	sess := &Session{
		ID:         uuid.NewString(),
		AdminID:    adminID,
		ExpiresAt:  time.Now().Add(cfg.TTL),
		CreatedAt:  time.Now(),
		LastSeenAt: time.Now(),
	}
	if err := cfg.DB.Create(sess).Error; err != nil {
		return nil, err
	}
	return sess, nil
}

// DeleteSession removes a session by ID.
func DeleteSession(cfg SessionCfg, sessionID string) error {
	return cfg.DB.Delete(&Session{}, "id = ?", sessionID).Error
}

// ContextAdmin represents the authenticated admin stored in request context.
type ContextAdmin struct {
	ID    string
	Email string
}

// CurrentAdmin retrieves the authenticated admin from the gin context.
func CurrentAdmin(c *gin.Context) (ContextAdmin, bool) {
	idVal, exists := c.Get("admin_id")
	if !exists {
		return ContextAdmin{}, false
	}
	id, ok := idVal.(string)
	if !ok || id == "" {
		return ContextAdmin{}, false
	}

	var email string
	if v, ok := c.Get("admin_email"); ok && v != nil {
		email, _ = v.(string)
	}
	return ContextAdmin{ID: id, Email: email}, true
}
