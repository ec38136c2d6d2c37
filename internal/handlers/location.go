package handlers

import (
	"net/http"

	"eizer/internal/database"
	"eizer/internal/models"
	"eizer/internal/respond"

	"github.com/gin-gonic/gin"
)

type LocationHandler struct {
	store *database.Store
}

func NewLocationHandler(store *database.Store) *LocationHandler {
	return &LocationHandler{store: store}
}

func (h *LocationHandler) List(c *gin.Context) {
	locations, err := h.store.ListMachineLocations()
	if err != nil {
		internalError(c, "failed to load machine locations")
		return
	}
	respond.Data(c, http.StatusOK, locations)
}

type locationCreateInput struct {
	Name        string `json:"name" binding:"required"`
	Description string `json:"description"`
}

func (h *LocationHandler) Create(c *gin.Context) {
	var input locationCreateInput
	if err := c.ShouldBindJSON(&input); err != nil {
		badRequest(c, "name is required")
		return
	}

	location := models.MachineLocation{
		Name:        input.Name,
		Description: input.Description,
	}
	if err := h.store.CreateMachineLocation(&location); err != nil {
		internalError(c, "failed to create machine location")
		return
	}

	h.store.CreateAuditLog(sessionUserID(c), "location", location.ID, "create", "Created machine location: "+location.Name)
	respond.Data(c, http.StatusOK, location)
}
