package handlers

import (
	"fmt"

	"aw-society/internal/core/services"
	"aw-society/internal/pkg/response"

	"github.com/gofiber/fiber/v2"
)

// ReceiptHandler handles receipt endpoints
type ReceiptHandler struct {
	receiptService *services.ReceiptService
}

// NewReceiptHandler creates a new receipt handler
func NewReceiptHandler(receiptService *services.ReceiptService) *ReceiptHandler {
	return &ReceiptHandler{receiptService: receiptService}
}

// GenerateRequest represents a receipt generation request
type GenerateRequest struct {
	TransactionID string `json:"transaction_id"`
}

// Generate handles rendering and storing a receipt
// @Summary Generate receipt
// @Description Render the PDF receipt for a transaction and email it to the member
// @Tags Receipts
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param body body GenerateRequest true "Transaction reference"
// @Success 201 {object} response.Response
// @Failure 400 {object} response.Response
// @Failure 404 {object} response.Response
// @Router /receipts [post]
func (h *ReceiptHandler) Generate(c *fiber.Ctx) error {
	var req GenerateRequest
	if err := c.BodyParser(&req); err != nil {
		return response.BadRequest(c, "Invalid request body")
	}
	if req.TransactionID == "" {
		return response.BadRequest(c, "Transaction ID is required")
	}

	generatedBy, _ := c.Locals("email").(string)

	receipt, err := h.receiptService.Generate(c.Context(), req.TransactionID, generatedBy)
	if err != nil {
		return response.FromDomainError(c, err)
	}

	return response.Created(c, "Receipt generated successfully", fiber.Map{
		"receipt_no":     receipt.ReceiptNo,
		"transaction_id": receipt.TransactionID,
		"date":           receipt.Date,
	})
}

// Download handles streaming the stored receipt PDF
// @Summary Download receipt
// @Description Download the stored PDF receipt for a transaction
// @Tags Receipts
// @Produce application/pdf
// @Security BearerAuth
// @Param transactionId path string true "Transaction ID"
// @Success 200 {file} binary
// @Failure 404 {object} response.Response
// @Router /receipts/{transactionId} [get]
func (h *ReceiptHandler) Download(c *fiber.Ctx) error {
	transactionID := c.Params("transactionId")
	if transactionID == "" {
		return response.BadRequest(c, "Transaction ID is required")
	}

	receipt, err := h.receiptService.GetByTransactionID(c.Context(), transactionID)
	if err != nil {
		return response.FromDomainError(c, err)
	}

	c.Set(fiber.HeaderContentType, "application/pdf")
	c.Set(fiber.HeaderContentDisposition,
		fmt.Sprintf(`attachment; filename="receipt-%s.pdf"`, receipt.ReceiptNo))
	return c.Send(receipt.PDFData)
}
