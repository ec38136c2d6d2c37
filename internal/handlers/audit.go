package handlers

import (
	"net/http"

	"eizer/internal/database"
	"eizer/internal/respond"

	"github.com/gin-gonic/gin"
)

type AuditHandler struct {
	store *database.Store
}

func NewAuditHandler(store *database.Store) *AuditHandler {
	return &AuditHandler{store: store}
}

func (h *AuditHandler) List(c *gin.Context) {
	logs, err := h.store.ListAuditLogs()
	if err != nil {
		internalError(c, "failed to load audit logs")
		return
	}
	respond.Data(c, http.StatusOK, logs)
}
