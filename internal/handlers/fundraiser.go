package handlers

import (
	"net/http"

	"eizer/internal/database"
	"eizer/internal/models"
	"eizer/internal/respond"

	"github.com/gin-gonic/gin"
)

type FundraiserHandler struct {
	store *database.Store
}

func NewFundraiserHandler(store *database.Store) *FundraiserHandler {
	return &FundraiserHandler{store: store}
}

func (h *FundraiserHandler) List(c *gin.Context) {
	fundraisers, err := h.store.ListFundraisers()
	if err != nil {
		internalError(c, "failed to load fundraisers")
		return
	}
	respond.Data(c, http.StatusOK, fundraisers)
}

func (h *FundraiserHandler) GetByID(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}
	fundraiser, err := h.store.GetFundraiserByID(id)
	if err != nil {
		internalError(c, "failed to load fundraiser")
		return
	}
	if fundraiser == nil {
		respond.Data(c, http.StatusOK, nil)
		return
	}
	respond.Data(c, http.StatusOK, fundraiser)
}

func (h *FundraiserHandler) GetByUserID(c *gin.Context) {
	userID, ok := parseID(c, "userId")
	if !ok {
		return
	}
	fundraiser, err := h.store.GetFundraiserByUserID(userID)
	if err != nil {
		internalError(c, "failed to load fundraiser")
		return
	}
	if fundraiser == nil {
		respond.Data(c, http.StatusOK, nil)
		return
	}
	respond.Data(c, http.StatusOK, fundraiser)
}

type fundraiserCreateInput struct {
	UserID          uint                    `json:"userId" binding:"required"`
	CustomerPhoneID string                  `json:"customerPhoneId"`
	FirstName       string                  `json:"firstName"`
	LastName        string                  `json:"lastName"`
	IsFoundation    bool                    `json:"isFoundation"`
	IsCompany       bool                    `json:"isCompany"`
	HebrewName      string                  `json:"hebrewName"`
	Email           string                  `json:"email" binding:"required,email"`
	Address2        string                  `json:"address2"`
	Address3        string                  `json:"address3"`
	Address4        string                  `json:"address4"`
	Status          models.FundraiserStatus `json:"status"`
}

func (h *FundraiserHandler) Create(c *gin.Context) {
	var input fundraiserCreateInput
	if err := c.ShouldBindJSON(&input); err != nil {
		badRequest(c, "userId and a valid email are required")
		return
	}
	if input.Status != "" && input.Status != models.FundraiserActive && input.Status != models.FundraiserInactive {
		badRequest(c, "status must be active or inactive")
		return
	}

	fundraiser := models.Fundraiser{
		UserID:          input.UserID,
		CustomerPhoneID: input.CustomerPhoneID,
		FirstName:       input.FirstName,
		LastName:        input.LastName,
		IsFoundation:    input.IsFoundation,
		IsCompany:       input.IsCompany,
		HebrewName:      input.HebrewName,
		Email:           input.Email,
		Address2:        input.Address2,
		Address3:        input.Address3,
		Address4:        input.Address4,
		Status:          input.Status,
	}
	if err := h.store.CreateFundraiser(&fundraiser); err != nil {
		internalError(c, "failed to create fundraiser")
		return
	}

	h.store.CreateAuditLog(sessionUserID(c), "fundraiser", fundraiser.ID, "create", "Created fundraiser: "+fundraiser.Email)
	respond.Data(c, http.StatusOK, fundraiser)
}

type fundraiserUpdateInput struct {
	CustomerPhoneID *string                  `json:"customerPhoneId"`
	FirstName       *string                  `json:"firstName"`
	LastName        *string                  `json:"lastName"`
	IsFoundation    *bool                    `json:"isFoundation"`
	IsCompany       *bool                    `json:"isCompany"`
	HebrewName      *string                  `json:"hebrewName"`
	Email           *string                  `json:"email" binding:"omitempty,email"`
	Address2        *string                  `json:"address2"`
	Address3        *string                  `json:"address3"`
	Address4        *string                  `json:"address4"`
	Status          *models.FundraiserStatus `json:"status"`
}

// Update applies the supplied fields only; everything else stays as it is.
func (h *FundraiserHandler) Update(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}

	var input fundraiserUpdateInput
	if err := c.ShouldBindJSON(&input); err != nil {
		badRequest(c, "invalid fundraiser fields")
		return
	}
	if input.Status != nil && *input.Status != models.FundraiserActive && *input.Status != models.FundraiserInactive {
		badRequest(c, "status must be active or inactive")
		return
	}

	data := map[string]any{}
	if input.CustomerPhoneID != nil {
		data["customer_phone_id"] = *input.CustomerPhoneID
	}
	if input.FirstName != nil {
		data["first_name"] = *input.FirstName
	}
	if input.LastName != nil {
		data["last_name"] = *input.LastName
	}
	if input.IsFoundation != nil {
		data["is_foundation"] = *input.IsFoundation
	}
	if input.IsCompany != nil {
		data["is_company"] = *input.IsCompany
	}
	if input.HebrewName != nil {
		data["hebrew_name"] = *input.HebrewName
	}
	if input.Email != nil {
		data["email"] = *input.Email
	}
	if input.Address2 != nil {
		data["address2"] = *input.Address2
	}
	if input.Address3 != nil {
		data["address3"] = *input.Address3
	}
	if input.Address4 != nil {
		data["address4"] = *input.Address4
	}
	if input.Status != nil {
		data["status"] = *input.Status
	}

	if len(data) > 0 {
		if err := h.store.UpdateFundraiser(id, data); err != nil {
			internalError(c, "failed to update fundraiser")
			return
		}
		h.store.CreateAuditLog(sessionUserID(c), "fundraiser", id, "update", "Updated fundraiser")
	}

	fundraiser, err := h.store.GetFundraiserByID(id)
	if err != nil {
		internalError(c, "failed to load fundraiser")
		return
	}
	respond.Data(c, http.StatusOK, fundraiser)
}
