package handlers

import (
	"aw-society/internal/core/domain"
	"aw-society/internal/core/services"
	"aw-society/internal/pkg/pagination"
	"aw-society/internal/pkg/response"

	"github.com/gofiber/fiber/v2"
)

// TransactionHandler handles transaction endpoints
type TransactionHandler struct {
	ledgerService *services.LedgerService
	bonusService  *services.BonusService
	memberService *services.MemberService
	txnService    *services.TransactionQueryService
}

// NewTransactionHandler creates a new transaction handler
func NewTransactionHandler(
	ledgerService *services.LedgerService,
	bonusService *services.BonusService,
	memberService *services.MemberService,
	txnService *services.TransactionQueryService,
) *TransactionHandler {
	return &TransactionHandler{
		ledgerService: ledgerService,
		bonusService:  bonusService,
		memberService: memberService,
		txnService:    txnService,
	}
}

// CreateRequest represents a transaction creation request
type CreateRequest struct {
	MemberID       uint     `json:"member_id"`
	Type           string   `json:"type"`
	Amount         float64  `json:"amount"`
	Description    string   `json:"description"`
	InterestRate   *float64 `json:"interest_rate,omitempty"`
	DurationMonths *int     `json:"duration_months,omitempty"`
}

// BonusRequest represents a bonus distribution request
type BonusRequest struct {
	Amount      float64 `json:"amount"`
	Description string  `json:"description"`
}

// Create handles applying one financial transaction
// @Summary Create transaction
// @Description Apply a financial event (contribution, loan, payment, bonus) to a member
// @Tags Transactions
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param body body CreateRequest true "Transaction intent"
// @Success 201 {object} response.Response
// @Failure 400 {object} response.Response
// @Failure 404 {object} response.Response
// @Failure 409 {object} response.Response
// @Router /transactions [post]
func (h *TransactionHandler) Create(c *fiber.Ctx) error {
	var req CreateRequest
	if err := c.BodyParser(&req); err != nil {
		return response.BadRequest(c, "Invalid request body")
	}

	if req.MemberID == 0 {
		return response.BadRequest(c, "Member ID is required")
	}
	if req.Type == "" {
		return response.BadRequest(c, "Transaction type is required")
	}

	txn, err := h.ledgerService.Apply(c.Context(), &services.ApplyTransactionInput{
		MemberID:       req.MemberID,
		Type:           domain.TransactionType(req.Type),
		Amount:         req.Amount,
		Description:    req.Description,
		InterestRate:   req.InterestRate,
		DurationMonths: req.DurationMonths,
	})
	if err != nil {
		return response.FromDomainError(c, err)
	}

	return response.Created(c, "Transaction recorded successfully", fiber.Map{
		"transaction": txn,
	})
}

// List handles listing all transactions with pagination
// @Summary List transactions
// @Description List all transactions, newest first (admin only)
// @Tags Transactions
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param page query int false "Page number"
// @Param limit query int false "Items per page"
// @Success 200 {object} response.Response
// @Router /transactions [get]
func (h *TransactionHandler) List(c *fiber.Ctx) error {
	params := pagination.GetParams(c)

	txns, total, err := h.txnService.List(c.Context(), params.Offset, params.Limit)
	if err != nil {
		return response.FromDomainError(c, err)
	}

	return response.Success(c, "Transactions retrieved successfully",
		pagination.NewResponse(txns, params, total))
}

// ListByMember handles listing one member's transactions
// @Summary List member transactions
// @Description List one member's transaction history (self or admin)
// @Tags Transactions
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "Member ID"
// @Success 200 {object} response.Response
// @Failure 404 {object} response.Response
// @Router /transactions/member/{id} [get]
func (h *TransactionHandler) ListByMember(c *fiber.Ctx) error {
	id, err := parseID(c)
	if err != nil {
		return response.BadRequest(c, "Invalid member ID")
	}

	txns, err := h.memberService.GetTransactions(c.Context(), id)
	if err != nil {
		return response.FromDomainError(c, err)
	}

	return response.Success(c, "Transactions retrieved successfully", fiber.Map{
		"transactions": txns,
	})
}

// Bonus handles distributing a bonus to every member
// @Summary Distribute bonus
// @Description Credit a flat bonus amount to every member (admin only)
// @Tags Transactions
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param body body BonusRequest true "Bonus amount and description"
// @Success 201 {object} response.Response
// @Failure 400 {object} response.Response
// @Router /transactions/bonus [post]
func (h *TransactionHandler) Bonus(c *fiber.Ctx) error {
	var req BonusRequest
	if err := c.BodyParser(&req); err != nil {
		return response.BadRequest(c, "Invalid request body")
	}

	result, err := h.bonusService.Distribute(c.Context(), req.Amount, req.Description)
	if err != nil {
		return response.FromDomainError(c, err)
	}

	return response.Created(c, "Bonus distributed successfully", fiber.Map{
		"distributed_count": result.DistributedCount,
		"total_amount":      result.TotalAmount,
	})
}
