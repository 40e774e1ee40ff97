package http

import (
	"errors"
	"strconv"

	"github.com/gofiber/fiber/v2"

	"github.com/remodj/billing-api/internal/application/dto"
	appestimate "github.com/remodj/billing-api/internal/application/estimate"
	"github.com/remodj/billing-api/internal/domain"
	"github.com/remodj/billing-api/internal/domain/entity"
)

// EstimateHandler handles draft editing and PDF generation (gated).
type EstimateHandler struct {
	builder  *appestimate.BuilderUseCase
	generate *appestimate.GenerateUseCase
}

// NewEstimateHandler builds the handler.
func NewEstimateHandler(builder *appestimate.BuilderUseCase, generate *appestimate.GenerateUseCase) *EstimateHandler {
	return &EstimateHandler{builder: builder, generate: generate}
}

// Create starts a new draft with form defaults.
// POST /api/estimates
func (h *EstimateHandler) Create(c *fiber.Ctx) error {
	id, draft := h.builder.CreateDraft()
	return c.Status(fiber.StatusCreated).JSON(toDraftResponse(id, draft))
}

// Get returns the draft with its derived totals.
// GET /api/estimates/:id
func (h *EstimateHandler) Get(c *fiber.Ctx) error {
	id := c.Params("id")
	draft, err := h.builder.Get(id)
	if err != nil {
		return mapDomainError(c, err)
	}
	return c.JSON(toDraftResponse(id, draft))
}

// AddItem appends a default line item.
// POST /api/estimates/:id/items
func (h *EstimateHandler) AddItem(c *fiber.Ctx) error {
	id := c.Params("id")
	if err := h.builder.AddItem(id); err != nil {
		return mapDomainError(c, err)
	}
	draft, err := h.builder.Get(id)
	if err != nil {
		return mapDomainError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(toDraftResponse(id, draft))
}

// RemoveItem removes the item at :index. Removing the last remaining item is
// a silent no-op, so this always answers with the (possibly unchanged) draft.
// DELETE /api/estimates/:id/items/:index
func (h *EstimateHandler) RemoveItem(c *fiber.Ctx) error {
	id := c.Params("id")
	index, err := strconv.Atoi(c.Params("index"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "index must be an integer"})
	}
	if err := h.builder.RemoveItem(id, index); err != nil {
		return mapDomainError(c, err)
	}
	draft, err := h.builder.Get(id)
	if err != nil {
		return mapDomainError(c, err)
	}
	return c.JSON(toDraftResponse(id, draft))
}

// UpdateItem replaces one field of the item at :index.
// PATCH /api/estimates/:id/items/:index
func (h *EstimateHandler) UpdateItem(c *fiber.Ctx) error {
	id := c.Params("id")
	index, err := strconv.Atoi(c.Params("index"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "index must be an integer"})
	}
	var in dto.UpdateFieldRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "invalid body"})
	}
	if err := h.builder.UpdateItem(id, index, in.Field, in.Value); err != nil {
		return mapDomainError(c, err)
	}
	draft, err := h.builder.Get(id)
	if err != nil {
		return mapDomainError(c, err)
	}
	return c.JSON(toDraftResponse(id, draft))
}

// UpdateHeader updates a header field or the discount/tax figures.
// PATCH /api/estimates/:id
func (h *EstimateHandler) UpdateHeader(c *fiber.Ctx) error {
	id := c.Params("id")
	var in dto.UpdateFieldRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "invalid body"})
	}
	if err := h.builder.SetHeaderField(id, in.Field, in.Value); err != nil {
		return mapDomainError(c, err)
	}
	draft, err := h.builder.Get(id)
	if err != nil {
		return mapDomainError(c, err)
	}
	return c.JSON(toDraftResponse(id, draft))
}

// GeneratePDF validates the draft and streams the rendered document. An
// invalid draft answers 422 with the complete field→message map; nothing is
// rendered in that case.
// POST /api/estimates/:id/pdf
func (h *EstimateHandler) GeneratePDF(c *fiber.Ctx) error {
	id := c.Params("id")
	pdfBytes, filename, err := h.generate.GenerateEstimatePDF(c.Context(), id)
	if err != nil {
		var verr *entity.ValidationError
		if errors.As(err, &verr) {
			return c.Status(fiber.StatusUnprocessableEntity).JSON(toValidationResponse(verr))
		}
		return mapDomainError(c, err)
	}
	c.Set(fiber.HeaderContentType, "application/pdf")
	c.Set(fiber.HeaderContentDisposition, `attachment; filename="`+filename+`"`)
	return c.Send(pdfBytes)
}

// Close discards the draft (the cancel/close action of the billing modal).
// DELETE /api/estimates/:id
func (h *EstimateHandler) Close(c *fiber.Ctx) error {
	if err := h.builder.Close(c.Params("id")); err != nil {
		return mapDomainError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}

// ── mapping helpers ───────────────────────────────────────────────────────────

func toDraftResponse(id string, d *entity.EstimateDraft) dto.DraftResponse {
	items := make([]dto.LineItemResponse, 0, len(d.Items))
	for _, item := range d.Items {
		items = append(items, dto.LineItemResponse{
			Name:      item.Name,
			Quantity:  item.Quantity,
			UnitPrice: item.UnitPrice,
			LineTotal: item.LineTotal(),
		})
	}
	return dto.DraftResponse{
		ID:              id,
		EstimateNo:      d.EstimateNo,
		Date:            d.Date,
		CustomerName:    d.CustomerName,
		CustomerPhone:   d.CustomerPhone,
		CustomerAddress: d.CustomerAddress,
		Items:           items,
		Discount:        d.Discount,
		Tax:             d.Tax,
		Subtotal:        d.Subtotal(),
		FinalTotal:      d.FinalTotal(),
	}
}

func toValidationResponse(verr *entity.ValidationError) dto.ValidationErrorResponse {
	fields := make(map[string]string, len(verr.Fields))
	for f, msg := range verr.Fields {
		fields[string(f)] = msg
	}
	return dto.ValidationErrorResponse{Code: "VALIDATION", Errors: fields}
}

func mapDomainError(c *fiber.Ctx, err error) error {
	switch {
	case errors.Is(err, domain.ErrNotFound):
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "estimate draft not found"})
	case errors.Is(err, domain.ErrInvalidInput):
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "invalid field or index"})
	default:
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
}
