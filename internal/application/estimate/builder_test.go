package estimate_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/remodj/billing-api/internal/application/estimate"
	"github.com/remodj/billing-api/internal/domain"
	"github.com/remodj/billing-api/internal/domain/entity"
)

func fixedClock() time.Time {
	return time.Date(2024, 1, 15, 9, 0, 0, 0, time.UTC)
}

// ──────────────────────────────────────────────────────────────────────────────
// Draft lifecycle
// ──────────────────────────────────────────────────────────────────────────────

func TestCreateDraft_UsesInjectedClock(t *testing.T) {
	uc := estimate.NewBuilderUseCase(fixedClock)

	id, draft := uc.CreateDraft()

	assert.NotEmpty(t, id)
	assert.Equal(t, "EST-20240115-001", draft.EstimateNo)
	assert.Equal(t, "2024-01-15", draft.Date)
	assert.Len(t, draft.Items, 1)
}

func TestCreateDraft_DraftsAreIndependent(t *testing.T) {
	uc := estimate.NewBuilderUseCase(fixedClock)

	id1, _ := uc.CreateDraft()
	id2, _ := uc.CreateDraft()
	require.NotEqual(t, id1, id2)

	require.NoError(t, uc.SetHeaderField(id1, string(entity.FieldCustomerName), "Arun"))

	d2, err := uc.Get(id2)
	require.NoError(t, err)
	assert.Empty(t, d2.CustomerName)
}

func TestGet_UnknownDraft(t *testing.T) {
	uc := estimate.NewBuilderUseCase(fixedClock)

	_, err := uc.Get("no-such-draft")

	assert.ErrorIs(t, err, domain.ErrNotFound)
}

// Get hands out a copy; mutating it must not write through to the stored
// draft.
func TestGet_ReturnsDetachedCopy(t *testing.T) {
	uc := estimate.NewBuilderUseCase(fixedClock)
	id, _ := uc.CreateDraft()

	d, err := uc.Get(id)
	require.NoError(t, err)
	d.Items[0].Name = "tampered"
	d.CustomerName = "tampered"

	fresh, err := uc.Get(id)
	require.NoError(t, err)
	assert.Empty(t, fresh.Items[0].Name)
	assert.Empty(t, fresh.CustomerName)
}

func TestClose_DiscardsDraft(t *testing.T) {
	uc := estimate.NewBuilderUseCase(fixedClock)
	id, _ := uc.CreateDraft()

	require.NoError(t, uc.Close(id))

	_, err := uc.Get(id)
	assert.ErrorIs(t, err, domain.ErrNotFound)
	assert.ErrorIs(t, uc.Close(id), domain.ErrNotFound)
}

// ──────────────────────────────────────────────────────────────────────────────
// Item edits and coercion
// ──────────────────────────────────────────────────────────────────────────────

func TestUpdateItem_Fields(t *testing.T) {
	uc := estimate.NewBuilderUseCase(fixedClock)
	id, _ := uc.CreateDraft()

	require.NoError(t, uc.UpdateItem(id, 0, estimate.ItemFieldName, "DJ Set"))
	require.NoError(t, uc.UpdateItem(id, 0, estimate.ItemFieldQuantity, "3"))
	require.NoError(t, uc.UpdateItem(id, 0, estimate.ItemFieldUnitPrice, "1500"))

	d, err := uc.Get(id)
	require.NoError(t, err)
	assert.Equal(t, "DJ Set", d.Items[0].Name)
	assert.Equal(t, 3, d.Items[0].Quantity)
	assert.Equal(t, "4500.00", d.Items[0].LineTotal().StringFixed(2))
}

// Form strings that do not parse coerce instead of erroring: quantity falls
// back to 1, money to 0. A parseable zero quantity is kept and left for
// validation to reject.
func TestUpdateItem_MalformedValuesCoerce(t *testing.T) {
	uc := estimate.NewBuilderUseCase(fixedClock)
	id, _ := uc.CreateDraft()

	require.NoError(t, uc.UpdateItem(id, 0, estimate.ItemFieldQuantity, "abc"))
	require.NoError(t, uc.UpdateItem(id, 0, estimate.ItemFieldUnitPrice, "12,50"))
	d, _ := uc.Get(id)
	assert.Equal(t, 1, d.Items[0].Quantity)
	assert.True(t, d.Items[0].UnitPrice.IsZero())

	require.NoError(t, uc.UpdateItem(id, 0, estimate.ItemFieldQuantity, "0"))
	d, _ = uc.Get(id)
	assert.Equal(t, 0, d.Items[0].Quantity, "parseable zero is stored, not coerced")
}

func TestUpdateItem_BadIndexOrField(t *testing.T) {
	uc := estimate.NewBuilderUseCase(fixedClock)
	id, _ := uc.CreateDraft()

	assert.ErrorIs(t, uc.UpdateItem(id, 5, estimate.ItemFieldName, "x"), domain.ErrInvalidInput)
	assert.ErrorIs(t, uc.UpdateItem(id, -1, estimate.ItemFieldName, "x"), domain.ErrInvalidInput)
	assert.ErrorIs(t, uc.UpdateItem(id, 0, "color", "purple"), domain.ErrInvalidInput)
}

func TestAddAndRemoveItem(t *testing.T) {
	uc := estimate.NewBuilderUseCase(fixedClock)
	id, _ := uc.CreateDraft()

	require.NoError(t, uc.AddItem(id))
	require.NoError(t, uc.AddItem(id))
	d, _ := uc.Get(id)
	require.Len(t, d.Items, 3)

	require.NoError(t, uc.RemoveItem(id, 1))
	require.NoError(t, uc.RemoveItem(id, 1))
	d, _ = uc.Get(id)
	require.Len(t, d.Items, 1)

	// Removing the last remaining item is accepted and ignored.
	require.NoError(t, uc.RemoveItem(id, 0))
	d, _ = uc.Get(id)
	assert.Len(t, d.Items, 1)
}

// ──────────────────────────────────────────────────────────────────────────────
// Header edits
// ──────────────────────────────────────────────────────────────────────────────

func TestSetHeaderField_AllFields(t *testing.T) {
	uc := estimate.NewBuilderUseCase(fixedClock)
	id, _ := uc.CreateDraft()

	require.NoError(t, uc.SetHeaderField(id, string(entity.FieldEstimateNo), "EST-X-9"))
	require.NoError(t, uc.SetHeaderField(id, string(entity.FieldDate), "2024-02-01"))
	require.NoError(t, uc.SetHeaderField(id, string(entity.FieldCustomerName), "Arun Kumar"))
	require.NoError(t, uc.SetHeaderField(id, string(entity.FieldCustomerPhone), "+91 98765 43210"))
	require.NoError(t, uc.SetHeaderField(id, string(entity.FieldCustomerAddress), "12 Beach Road"))

	d, _ := uc.Get(id)
	assert.Equal(t, "EST-X-9", d.EstimateNo)
	assert.Equal(t, "2024-02-01", d.Date)
	assert.Equal(t, "Arun Kumar", d.CustomerName)
	assert.Equal(t, "+91 98765 43210", d.CustomerPhone)
	assert.Equal(t, "12 Beach Road", d.CustomerAddress)
}

func TestSetDiscountAndTax_CoerceAndAcceptNegatives(t *testing.T) {
	uc := estimate.NewBuilderUseCase(fixedClock)
	id, _ := uc.CreateDraft()

	require.NoError(t, uc.SetDiscount(id, "2000"))
	require.NoError(t, uc.SetTax(id, "not-a-number"))
	d, _ := uc.Get(id)
	assert.Equal(t, "2000", d.Discount.String())
	assert.True(t, d.Tax.IsZero(), "malformed tax coerces to zero")

	// Negative adjustments are stored untouched.
	require.NoError(t, uc.SetDiscount(id, "-500"))
	d, _ = uc.Get(id)
	assert.Equal(t, "-500", d.Discount.String())
}

func TestSetHeaderField_UnknownField(t *testing.T) {
	uc := estimate.NewBuilderUseCase(fixedClock)
	id, _ := uc.CreateDraft()

	assert.ErrorIs(t, uc.SetHeaderField(id, "gstin", "x"), domain.ErrInvalidInput)
}
