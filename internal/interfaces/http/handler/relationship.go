package handler

import (
	app "github.com/accounting/backend/internal/application/accounting"
	"github.com/accounting/backend/internal/interfaces/http/dto"
	"github.com/gin-gonic/gin"
)

// LinkRequest is the payload for linking a customer to an invoice
type LinkRequest struct {
	CustomerID uint `json:"customer_id" binding:"required"`
	InvoiceID  uint `json:"invoice_id" binding:"required"`
}

// RelationshipHandler handles the customer-invoice link endpoints
type RelationshipHandler struct {
	BaseHandler
	relationshipService *app.RelationshipService
}

// NewRelationshipHandler creates a new RelationshipHandler
func NewRelationshipHandler(relationshipService *app.RelationshipService) *RelationshipHandler {
	return &RelationshipHandler{relationshipService: relationshipService}
}

// RegisterRoutes registers relationship routes on the given group
func (h *RelationshipHandler) RegisterRoutes(rg *gin.RouterGroup) {
	links := rg.Group("/customer-invoices")
	{
		links.POST("", h.Create)
		links.PUT("/:customerId/:invoiceId", h.Update)
		links.DELETE("/:customerId/:invoiceId", h.Delete)
	}
}

// Create handles POST /customer-invoices
func (h *RelationshipHandler) Create(c *gin.Context) {
	var req LinkRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.Error(c, 400, dto.ErrCodeInvalidJSON, "Invalid request body: "+err.Error())
		return
	}

	if err := h.relationshipService.Assign(c.Request.Context(), req.CustomerID, req.InvoiceID); err != nil {
		h.HandleDomainError(c, err)
		return
	}
	h.CreatedEmpty(c)
}

// Update handles PUT /customer-invoices/:customerId/:invoiceId. Linking and
// relinking share the same routine; only the response status differs from
// Create.
func (h *RelationshipHandler) Update(c *gin.Context) {
	customerID, ok := h.pathID(c, "customerId")
	if !ok {
		return
	}
	invoiceID, ok := h.pathID(c, "invoiceId")
	if !ok {
		return
	}

	if err := h.relationshipService.Assign(c.Request.Context(), customerID, invoiceID); err != nil {
		h.HandleDomainError(c, err)
		return
	}
	h.OKEmpty(c)
}

// Delete handles DELETE /customer-invoices/:customerId/:invoiceId
func (h *RelationshipHandler) Delete(c *gin.Context) {
	customerID, ok := h.pathID(c, "customerId")
	if !ok {
		return
	}
	invoiceID, ok := h.pathID(c, "invoiceId")
	if !ok {
		return
	}

	if err := h.relationshipService.Remove(c.Request.Context(), customerID, invoiceID); err != nil {
		h.HandleDomainError(c, err)
		return
	}
	h.NoContent(c)
}
