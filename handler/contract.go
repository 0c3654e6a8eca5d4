package handler

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"

	"github.com/sgc-amambai/contracts/date"
	"github.com/sgc-amambai/contracts/display"
	"github.com/sgc-amambai/contracts/lifecycle"
	"github.com/sgc-amambai/contracts/middleware"
	"github.com/sgc-amambai/contracts/model"
	"github.com/sgc-amambai/contracts/pkg/logger"
)

type ContractHandler struct {
	currency string
	today    func() date.Date
}

// NewContractHandler creates the ledger handler. today supplies the default reference date.
func NewContractHandler(currency string, today func() date.Date) *ContractHandler {
	return &ContractHandler{currency: currency, today: today}
}

// ContractRequest is the body of a registration or edit
type ContractRequest struct {
	Subject    string          `json:"subject"`
	Contractor string          `json:"contractor"`
	Value      decimal.Decimal `json:"value"`
	StartDate  date.Date       `json:"start_date"`
	EndDate    date.Date       `json:"end_date"`
	Category   model.Category  `json:"category"`
	Inspector  string          `json:"inspector"`
}

func (r ContractRequest) contract() model.Contract {
	return model.Contract{
		Subject:    r.Subject,
		Contractor: r.Contractor,
		Value:      r.Value,
		StartDate:  r.StartDate,
		EndDate:    r.EndDate,
		Category:   r.Category,
		Inspector:  r.Inspector,
	}
}

// EntryView is one ledger row
type EntryView struct {
	model.Contract
	Tier          model.Tier `json:"tier"`
	DaysRemaining int        `json:"days_remaining"`
	Label         string     `json:"label"`
	Highlight     string     `json:"highlight"`
	ValueDisplay  string     `json:"value_display"`
}

func (h *ContractHandler) view(e model.Entry) EntryView {
	return EntryView{
		Contract:      e.Contract,
		Tier:          e.Status.Tier,
		DaysRemaining: e.Status.DaysRemaining,
		Label:         display.Label(e.Status),
		Highlight:     display.Highlight(e.Status.Tier),
		ValueDisplay:  display.FormatMoney(e.Contract.Value, h.currency),
	}
}

func bindContract(c *gin.Context) (model.Contract, bool) {
	var req ContractRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request: " + err.Error()})
		return model.Contract{}, false
	}
	return req.contract(), true
}

// Register adds a contract to the session portfolio
func (h *ContractHandler) Register(c *gin.Context) {
	sess := middleware.GetSession(c)

	contract, ok := bindContract(c)
	if !ok {
		return
	}

	created, err := sess.Contracts.Register(contract)
	if err != nil {
		respondError(c, err)
		return
	}

	logger.Info(c.Request.Context(), "contract registered",
		"contract_id", created.ID,
		"end_date", created.EndDate.String(),
	)

	c.JSON(http.StatusCreated, created)
}

// Update replaces an existing contract
func (h *ContractHandler) Update(c *gin.Context) {
	sess := middleware.GetSession(c)

	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Contract not found"})
		return
	}

	contract, ok := bindContract(c)
	if !ok {
		return
	}

	updated, err := sess.Contracts.Update(id, contract)
	if err != nil {
		respondError(c, err)
		return
	}

	logger.Info(c.Request.Context(), "contract updated", "contract_id", id)

	c.JSON(http.StatusOK, updated)
}

// List returns the annotated ledger, optionally sorted
func (h *ContractHandler) List(c *gin.Context) {
	sess := middleware.GetSession(c)

	ref, err := referenceDate(c, h.today)
	if err != nil {
		respondError(c, err)
		return
	}

	entries, _, err := lifecycle.Summarize(sess.Contracts.Snapshot(), ref)
	if err != nil {
		respondError(c, err)
		return
	}
	if err := display.SortEntries(entries, c.Query("sort"), c.Query("order") == "desc"); err != nil {
		respondError(c, err)
		return
	}

	rows := make([]EntryView, len(entries))
	for i, e := range entries {
		rows[i] = h.view(e)
	}

	c.JSON(http.StatusOK, gin.H{
		"reference_date": ref,
		"contracts":      rows,
	})
}

// Get returns a single annotated contract
func (h *ContractHandler) Get(c *gin.Context) {
	sess := middleware.GetSession(c)

	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Contract not found"})
		return
	}

	ref, err := referenceDate(c, h.today)
	if err != nil {
		respondError(c, err)
		return
	}

	contract, ok := sess.Contracts.Get(id)
	if !ok {
		c.JSON(http.StatusNotFound, gin.H{"error": "Contract not found"})
		return
	}

	c.JSON(http.StatusOK, h.view(model.Entry{
		Contract: contract,
		Status:   lifecycle.Classify(contract.EndDate, ref),
	}))
}
