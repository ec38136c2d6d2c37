package handlers

import (
	"net/http"
	"time"

	"eizer/internal/database"
	"eizer/internal/email"
	"eizer/internal/models"
	"eizer/internal/respond"

	"github.com/gin-gonic/gin"
)

type MachineHandler struct {
	store      *database.Store
	mailer     *email.Mailer
	adminEmail string
}

func NewMachineHandler(store *database.Store, mailer *email.Mailer, adminEmail string) *MachineHandler {
	return &MachineHandler{store: store, mailer: mailer, adminEmail: adminEmail}
}

func (h *MachineHandler) List(c *gin.Context) {
	machines, err := h.store.ListMachines()
	if err != nil {
		internalError(c, "failed to load machines")
		return
	}
	respond.Data(c, http.StatusOK, machines)
}

func (h *MachineHandler) GetByID(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}
	machine, err := h.store.GetMachineByID(id)
	if err != nil {
		internalError(c, "failed to load machine")
		return
	}
	if machine == nil {
		respond.Data(c, http.StatusOK, nil)
		return
	}
	respond.Data(c, http.StatusOK, machine)
}

func (h *MachineHandler) GetByFundraiserID(c *gin.Context) {
	fundraiserID, ok := parseID(c, "fundraiserId")
	if !ok {
		return
	}
	machines, err := h.store.GetMachinesByFundraiserID(fundraiserID)
	if err != nil {
		internalError(c, "failed to load machines")
		return
	}
	respond.Data(c, http.StatusOK, machines)
}

type machineCreateInput struct {
	FundraiserID  *uint                `json:"fundraiserId"`
	MachineName   string               `json:"machineName" binding:"required"`
	MachineNumber string               `json:"machineNumber" binding:"required"`
	BatchNumber   *string              `json:"batchNumber"`
	LocationID    *uint                `json:"locationId"`
	Status        models.MachineStatus `json:"status"`
}

func (h *MachineHandler) Create(c *gin.Context) {
	var input machineCreateInput
	if err := c.ShouldBindJSON(&input); err != nil {
		badRequest(c, "machineName and machineNumber are required")
		return
	}
	if input.Status != "" && !models.ValidMachineStatus(input.Status) {
		badRequest(c, "status must be one of available, assigned, returned, inactive")
		return
	}

	machine := models.CreditCardMachine{
		FundraiserID:  input.FundraiserID,
		MachineName:   input.MachineName,
		MachineNumber: input.MachineNumber,
		BatchNumber:   input.BatchNumber,
		LocationID:    input.LocationID,
		Status:        input.Status,
	}
	if err := h.store.CreateMachine(&machine); err != nil {
		internalError(c, "failed to create machine")
		return
	}

	h.store.CreateAuditLog(sessionUserID(c), "machine", machine.ID, "create", "Created machine: "+machine.MachineNumber)
	respond.Data(c, http.StatusOK, machine)
}

type machineUpdateInput struct {
	FundraiserID  Optional[uint]        `json:"fundraiserId"`
	MachineName   *string               `json:"machineName"`
	MachineNumber *string               `json:"machineNumber"`
	BatchNumber   Optional[string]      `json:"batchNumber"`
	LocationID    Optional[uint]        `json:"locationId"`
	Status        *models.MachineStatus `json:"status"`
	BatchDate     Optional[time.Time]   `json:"batchDate"`
}

// Update applies a partial update. Every field is independently optional;
// fundraiserId, batchNumber, locationId and batchDate also accept an
// explicit null to clear the column, so a machine can be unassigned without
// touching anything else.
func (h *MachineHandler) Update(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}

	var input machineUpdateInput
	if err := c.ShouldBindJSON(&input); err != nil {
		badRequest(c, "invalid machine fields")
		return
	}
	if input.Status != nil && !models.ValidMachineStatus(*input.Status) {
		badRequest(c, "status must be one of available, assigned, returned, inactive")
		return
	}

	existing, err := h.store.GetMachineByID(id)
	if err != nil {
		internalError(c, "failed to load machine")
		return
	}
	if existing == nil {
		respond.Data(c, http.StatusOK, nil)
		return
	}

	data := map[string]any{}
	input.FundraiserID.apply(data, "fundraiser_id")
	if input.MachineName != nil {
		data["machine_name"] = *input.MachineName
	}
	if input.MachineNumber != nil {
		data["machine_number"] = *input.MachineNumber
	}
	input.BatchNumber.apply(data, "batch_number")
	input.LocationID.apply(data, "location_id")
	if input.Status != nil {
		data["status"] = *input.Status
	}
	input.BatchDate.apply(data, "batch_date")

	if len(data) > 0 {
		if err := h.store.UpdateMachine(id, data); err != nil {
			internalError(c, "failed to update machine")
			return
		}
		h.store.CreateAuditLog(sessionUserID(c), "machine", id, "update", "Updated machine: "+existing.MachineNumber)
	}

	if input.Status != nil && *input.Status == models.MachineReturned && existing.Status != models.MachineReturned {
		h.notifyReturned(existing)
	}

	machine, err := h.store.GetMachineByID(id)
	if err != nil {
		internalError(c, "failed to load machine")
		return
	}
	respond.Data(c, http.StatusOK, machine)
}

// notifyReturned tells the admin a machine came back. Fire and forget: the
// send happens off the request goroutine and its result is never checked.
func (h *MachineHandler) notifyReturned(machine *models.CreditCardMachine) {
	fundraiserName := "Unassigned"
	if machine.FundraiserID != nil {
		if fundraiser, err := h.store.GetFundraiserByID(*machine.FundraiserID); err == nil && fundraiser != nil {
			fundraiserName = fundraiser.DisplayName()
		}
	}
	batchNumber := ""
	if machine.BatchNumber != nil {
		batchNumber = *machine.BatchNumber
	}

	adminEmail := h.adminEmail
	machineName := machine.MachineName
	go h.mailer.NotifyAdminMachineReturned(adminEmail, fundraiserName, machineName, batchNumber)
}
