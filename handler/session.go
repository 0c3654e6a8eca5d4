package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/sgc-amambai/contracts/config"
	"github.com/sgc-amambai/contracts/middleware"
	"github.com/sgc-amambai/contracts/pkg/logger"
	"github.com/sgc-amambai/contracts/service"
)

type SessionHandler struct {
	sessions *service.SessionStore
	config   *config.SessionConfig
}

func NewSessionHandler(sessions *service.SessionStore, cfg *config.SessionConfig) *SessionHandler {
	return &SessionHandler{sessions: sessions, config: cfg}
}

type SessionResponse struct {
	SessionID string `json:"session_id"`
	Token     string `json:"token"`
	ExpiresAt string `json:"expires_at"`
	Contracts int    `json:"contracts"`
}

// Create opens a new portfolio session and returns its token
func (h *SessionHandler) Create(c *gin.Context) {
	sess, err := h.sessions.Create()
	if err != nil {
		respondError(c, err)
		return
	}

	token, expiresAt, err := middleware.GenerateToken(sess.ID, h.config)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to generate token"})
		return
	}

	logger.Info(c.Request.Context(), "session created", "session_id", sess.ID, "contracts", sess.Contracts.Count())

	c.JSON(http.StatusCreated, SessionResponse{
		SessionID: sess.ID,
		Token:     token,
		ExpiresAt: expiresAt.Format("2006-01-02T15:04:05Z07:00"),
		Contracts: sess.Contracts.Count(),
	})
}
