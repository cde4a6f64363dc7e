package api

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/chirpnet/chirp/pkg/telemetry"
)

type registerRequest struct {
	Username string `json:"username" binding:"required,max=32"`
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
	FullName string `json:"fullName" binding:"required,max=100"`
}

type loginRequest struct {
	Username string `json:"username" binding:"required"`
	Password string `json:"password" binding:"required"`
}

// register handles POST /api/auth/register
func (r *Router) register(c *gin.Context) {
	ctx, span := telemetry.StartSpan(c.Request.Context(), "auth.register")
	defer span.End()

	var req registerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	user, err := r.auth.Register(ctx, req.Username, req.Email, req.Password, req.FullName)
	if err != nil {
		r.businessError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Registration successful", "user": user.Username})
}

// login handles POST /api/auth/login; on success it issues a session
// token and sets the session cookie
func (r *Router) login(c *gin.Context) {
	ctx, span := telemetry.StartSpan(c.Request.Context(), "auth.login")
	defer span.End()

	var req loginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	user, err := r.auth.Login(ctx, req.Username, req.Password)
	if err != nil {
		r.businessError(c, err)
		return
	}

	token, err := r.sessions.Create(ctx, user.Username)
	if err != nil {
		r.logger.Error("Failed to create session", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		return
	}

	r.setSessionCookie(c, token, int(r.sessionCfg.TTL.Seconds()))
	c.JSON(http.StatusOK, gin.H{"message": "Login successful", "user": user.Username})
}

// logout handles POST /api/auth/logout; it invalidates the session
// server-side and clears the cookie
func (r *Router) logout(c *gin.Context) {
	ctx, span := telemetry.StartSpan(c.Request.Context(), "auth.logout")
	defer span.End()

	if token, err := c.Cookie(r.sessionCfg.CookieName); err == nil && token != "" {
		if err := r.sessions.Delete(ctx, token); err != nil {
			r.logger.Warn("Failed to delete session", zap.Error(err))
		}
	}

	r.setSessionCookie(c, "", -1)
	c.JSON(http.StatusOK, gin.H{"message": "Logout successful"})
}

// current handles GET /api/auth/current
func (r *Router) current(c *gin.Context) {
	username := currentUsername(c)
	if username == "" {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Not authenticated"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"user": username})
}

func (r *Router) setSessionCookie(c *gin.Context, token string, maxAge int) {
	c.SetSameSite(http.SameSiteLaxMode)
	c.SetCookie(r.sessionCfg.CookieName, token, maxAge, "/", "", r.sessionCfg.CookieSecure, true)
}
