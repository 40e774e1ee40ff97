package estimate

import (
	"strconv"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/remodj/billing-api/internal/domain"
	"github.com/remodj/billing-api/internal/domain/entity"
)

// Item field names accepted by UpdateItem.
const (
	ItemFieldName      = "name"
	ItemFieldQuantity  = "quantity"
	ItemFieldUnitPrice = "unit_price"
)

// Header field names accepted by SetHeaderField, beyond the entity.Field
// constants for the five header inputs.
const (
	FieldDiscount = "discount"
	FieldTax      = "tax"
)

// BuilderUseCase holds the in-progress drafts while they are being edited.
// Drafts are editing state only: nothing survives process exit and a draft
// disappears as soon as its session closes.
type BuilderUseCase struct {
	mu     sync.RWMutex
	drafts map[string]*entity.EstimateDraft
	now    func() time.Time
}

// NewBuilderUseCase builds the use case. now is the clock used for draft
// defaults (date, auto estimate number).
func NewBuilderUseCase(now func() time.Time) *BuilderUseCase {
	if now == nil {
		now = time.Now
	}
	return &BuilderUseCase{
		drafts: make(map[string]*entity.EstimateDraft),
		now:    now,
	}
}

// CreateDraft starts a new draft with form defaults and returns its ID.
func (uc *BuilderUseCase) CreateDraft() (string, *entity.EstimateDraft) {
	id := uuid.New().String()
	draft := entity.NewEstimateDraft(uc.now())

	uc.mu.Lock()
	uc.drafts[id] = draft
	uc.mu.Unlock()

	return id, copyDraft(draft)
}

// Get returns a copy of the draft, safe to read while others mutate it.
func (uc *BuilderUseCase) Get(id string) (*entity.EstimateDraft, error) {
	uc.mu.RLock()
	defer uc.mu.RUnlock()
	draft, ok := uc.drafts[id]
	if !ok {
		return nil, domain.ErrNotFound
	}
	return copyDraft(draft), nil
}

// AddItem appends a default line item to the draft.
func (uc *BuilderUseCase) AddItem(id string) error {
	return uc.mutate(id, func(d *entity.EstimateDraft) error {
		d.AddItem()
		return nil
	})
}

// RemoveItem removes the item at index. Removing the last remaining item is
// a silent no-op, per the collection's never-empty invariant.
func (uc *BuilderUseCase) RemoveItem(id string, index int) error {
	return uc.mutate(id, func(d *entity.EstimateDraft) error {
		d.RemoveItem(index)
		return nil
	})
}

// UpdateItem replaces one field of the item at index. Values arrive as form
// strings; malformed numerics are coerced (quantity → 1, unit price → 0)
// rather than rejected. No validation happens here: that is deferred to
// generate time.
func (uc *BuilderUseCase) UpdateItem(id string, index int, field, value string) error {
	return uc.mutate(id, func(d *entity.EstimateDraft) error {
		if index < 0 || index >= len(d.Items) {
			return domain.ErrInvalidInput
		}
		switch field {
		case ItemFieldName:
			d.Items[index].Name = value
		case ItemFieldQuantity:
			d.Items[index].Quantity = parseQuantity(value)
		case ItemFieldUnitPrice:
			d.Items[index].UnitPrice = parseAmount(value)
		default:
			return domain.ErrInvalidInput
		}
		return nil
	})
}

// SetHeaderField updates one of the header inputs, or the discount/tax
// adjustment figures. Discount and tax parse failures coerce to 0; the stored
// values are never sign-clamped (the observed product accepts negatives
// there, and so do we).
func (uc *BuilderUseCase) SetHeaderField(id, field, value string) error {
	return uc.mutate(id, func(d *entity.EstimateDraft) error {
		switch entity.Field(field) {
		case entity.FieldEstimateNo:
			d.EstimateNo = value
		case entity.FieldDate:
			d.Date = value
		case entity.FieldCustomerName:
			d.CustomerName = value
		case entity.FieldCustomerPhone:
			d.CustomerPhone = value
		case entity.FieldCustomerAddress:
			d.CustomerAddress = value
		default:
			switch field {
			case FieldDiscount:
				d.Discount = parseAmount(value)
			case FieldTax:
				d.Tax = parseAmount(value)
			default:
				return domain.ErrInvalidInput
			}
		}
		return nil
	})
}

// SetDiscount updates the flat discount amount.
func (uc *BuilderUseCase) SetDiscount(id, value string) error {
	return uc.SetHeaderField(id, FieldDiscount, value)
}

// SetTax updates the flat tax amount.
func (uc *BuilderUseCase) SetTax(id, value string) error {
	return uc.SetHeaderField(id, FieldTax, value)
}

// Close discards the draft (cancel/close action).
func (uc *BuilderUseCase) Close(id string) error {
	uc.mu.Lock()
	defer uc.mu.Unlock()
	if _, ok := uc.drafts[id]; !ok {
		return domain.ErrNotFound
	}
	delete(uc.drafts, id)
	return nil
}

func (uc *BuilderUseCase) mutate(id string, fn func(*entity.EstimateDraft) error) error {
	uc.mu.Lock()
	defer uc.mu.Unlock()
	draft, ok := uc.drafts[id]
	if !ok {
		return domain.ErrNotFound
	}
	return fn(draft)
}

func copyDraft(d *entity.EstimateDraft) *entity.EstimateDraft {
	cp := *d
	cp.Items = make([]entity.LineItem, len(d.Items))
	copy(cp.Items, d.Items)
	return &cp
}

// parseQuantity parses a form quantity. Parse failure falls back to 1, the
// field default; a parseable non-positive value is stored as-is and caught by
// validation instead.
func parseQuantity(s string) int {
	n, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil {
		return 1
	}
	return n
}

// parseAmount parses a form money value. Parse failure falls back to 0.
func parseAmount(s string) decimal.Decimal {
	d, err := decimal.NewFromString(strings.TrimSpace(s))
	if err != nil {
		return decimal.Zero
	}
	return d
}
