package handlers

import (
	"fmt"
	"net/http"

	"eizer/internal/database"
	"eizer/internal/email"
	"eizer/internal/models"
	"eizer/internal/respond"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
)

type RedemptionHandler struct {
	store      *database.Store
	mailer     *email.Mailer
	adminEmail string

	// strictTransitions turns on the transition table; the legacy behavior
	// lets any status follow any other.
	strictTransitions bool
}

func NewRedemptionHandler(store *database.Store, mailer *email.Mailer, adminEmail string, strictTransitions bool) *RedemptionHandler {
	return &RedemptionHandler{
		store:             store,
		mailer:            mailer,
		adminEmail:        adminEmail,
		strictTransitions: strictTransitions,
	}
}

func (h *RedemptionHandler) List(c *gin.Context) {
	requests, err := h.store.ListRedemptionRequests()
	if err != nil {
		internalError(c, "failed to load redemption requests")
		return
	}
	respond.Data(c, http.StatusOK, requests)
}

func (h *RedemptionHandler) GetByID(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}
	request, err := h.store.GetRedemptionRequestByID(id)
	if err != nil {
		internalError(c, "failed to load redemption request")
		return
	}
	if request == nil {
		respond.Data(c, http.StatusOK, nil)
		return
	}
	respond.Data(c, http.StatusOK, request)
}

func (h *RedemptionHandler) GetByFundraiserID(c *gin.Context) {
	fundraiserID, ok := parseID(c, "fundraiserId")
	if !ok {
		return
	}
	requests, err := h.store.GetRedemptionRequestsByFundraiserID(fundraiserID)
	if err != nil {
		internalError(c, "failed to load redemption requests")
		return
	}
	respond.Data(c, http.StatusOK, requests)
}

type redemptionCreateInput struct {
	FundraiserID uint   `json:"fundraiserId" binding:"required"`
	Amount       string `json:"amount" binding:"required"`
	CheckNumber  string `json:"checkNumber"`
	CheckName    string `json:"checkName"`
	CheckMemo    string `json:"checkMemo"`
	Notes        string `json:"notes"`
}

// Create opens a redemption request. Status is not an input field: every new
// request starts as pending no matter what the caller sends.
func (h *RedemptionHandler) Create(c *gin.Context) {
	var input redemptionCreateInput
	if err := c.ShouldBindJSON(&input); err != nil {
		badRequest(c, "fundraiserId and amount are required")
		return
	}
	amount, err := decimal.NewFromString(input.Amount)
	if err != nil {
		badRequest(c, "amount must be a decimal string")
		return
	}

	request := models.RedemptionRequest{
		FundraiserID: input.FundraiserID,
		Amount:       models.Amount{Decimal: amount},
		CheckNumber:  input.CheckNumber,
		CheckName:    input.CheckName,
		CheckMemo:    input.CheckMemo,
		Notes:        input.Notes,
		Status:       models.RedemptionPending,
	}
	if err := h.store.CreateRedemptionRequest(&request); err != nil {
		internalError(c, "failed to create redemption request")
		return
	}

	h.notifyAdminNew(&request)
	respond.Data(c, http.StatusOK, request)
}

type redemptionUpdateInput struct {
	Status      *models.RedemptionStatus `json:"status"`
	CheckNumber *string                  `json:"checkNumber"`
	CheckName   *string                  `json:"checkName"`
	CheckMemo   *string                  `json:"checkMemo"`
	Notes       *string                  `json:"notes"`
}

// Update lets an admin move a request through its lifecycle and fill in
// check details. Without strict transitions any status change is accepted,
// including re-opening a rejected request.
func (h *RedemptionHandler) Update(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}

	var input redemptionUpdateInput
	if err := c.ShouldBindJSON(&input); err != nil {
		badRequest(c, "invalid redemption fields")
		return
	}
	if input.Status != nil && !models.ValidRedemptionStatus(*input.Status) {
		badRequest(c, "status must be one of pending, approved, released, rejected")
		return
	}

	existing, err := h.store.GetRedemptionRequestByID(id)
	if err != nil {
		internalError(c, "failed to load redemption request")
		return
	}
	if existing == nil {
		respond.Data(c, http.StatusOK, nil)
		return
	}

	if h.strictTransitions && input.Status != nil &&
		!models.AllowedRedemptionTransition(existing.Status, *input.Status) {
		badRequest(c, fmt.Sprintf("illegal status transition %s -> %s", existing.Status, *input.Status))
		return
	}

	data := map[string]any{}
	if input.Status != nil {
		data["status"] = *input.Status
	}
	if input.CheckNumber != nil {
		data["check_number"] = *input.CheckNumber
	}
	if input.CheckName != nil {
		data["check_name"] = *input.CheckName
	}
	if input.CheckMemo != nil {
		data["check_memo"] = *input.CheckMemo
	}
	if input.Notes != nil {
		data["notes"] = *input.Notes
	}

	if len(data) > 0 {
		if err := h.store.UpdateRedemptionRequest(id, data); err != nil {
			internalError(c, "failed to update redemption request")
			return
		}
		action := "update"
		if input.Status != nil && *input.Status != existing.Status {
			action = "status_change"
		}
		h.store.CreateAuditLog(sessionUserID(c), "redemption", id, action, fmt.Sprintf("Updated redemption request #%d", id))
	}

	if input.Status != nil {
		switch *input.Status {
		case models.RedemptionApproved, models.RedemptionReleased, models.RedemptionRejected:
			h.notifyFundraiser(existing, *input.Status)
		}
	}

	request, err := h.store.GetRedemptionRequestByID(id)
	if err != nil {
		internalError(c, "failed to load redemption request")
		return
	}
	respond.Data(c, http.StatusOK, request)
}

// notifyAdminNew tells the admin a request came in. Best effort, off the
// request goroutine; a failed send never fails the mutation.
func (h *RedemptionHandler) notifyAdminNew(request *models.RedemptionRequest) {
	fundraiserName := fmt.Sprintf("fundraiser #%d", request.FundraiserID)
	if fundraiser, err := h.store.GetFundraiserByID(request.FundraiserID); err == nil && fundraiser != nil {
		fundraiserName = fundraiser.DisplayName()
	}

	adminEmail := h.adminEmail
	amount := request.Amount.StringFixed(2)
	requestID := request.ID
	go h.mailer.NotifyAdminNewRedemption(adminEmail, fundraiserName, amount, requestID)
}

func (h *RedemptionHandler) notifyFundraiser(request *models.RedemptionRequest, status models.RedemptionStatus) {
	fundraiser, err := h.store.GetFundraiserByID(request.FundraiserID)
	if err != nil || fundraiser == nil {
		return
	}

	fundraiserEmail := fundraiser.Email
	fundraiserName := fundraiser.DisplayName()
	amount := request.Amount.StringFixed(2)
	requestID := request.ID
	go h.mailer.NotifyFundraiserStatusChange(fundraiserEmail, fundraiserName, status, amount, requestID)
}
