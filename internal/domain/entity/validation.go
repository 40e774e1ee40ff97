package entity

import (
	"fmt"
	"sort"
	"strings"
	"time"
)

// Field identifies a single form field in validation results. Header fields
// are the constants below; item fields are built with ItemName, ItemQuantity
// and ItemUnitPrice so the set stays closed while still being indexable.
type Field string

const (
	FieldEstimateNo      Field = "estimate_no"
	FieldDate            Field = "date"
	FieldCustomerName    Field = "customer_name"
	FieldCustomerPhone   Field = "customer_phone"
	FieldCustomerAddress Field = "customer_address"
)

// ItemName is the name field of the item at index (0-based).
func ItemName(index int) Field {
	return Field(fmt.Sprintf("items[%d].name", index))
}

// ItemQuantity is the quantity field of the item at index.
func ItemQuantity(index int) Field {
	return Field(fmt.Sprintf("items[%d].quantity", index))
}

// ItemUnitPrice is the unit price field of the item at index.
func ItemUnitPrice(index int) Field {
	return Field(fmt.Sprintf("items[%d].unit_price", index))
}

// ValidationErrors maps violated fields to human-readable messages, intended
// to be displayed inline next to the offending field.
type ValidationErrors map[Field]string

// ValidationError wraps a non-empty ValidationErrors as an error so use cases
// can abort generation while handing the full field map back to the caller.
type ValidationError struct {
	Fields ValidationErrors
}

func (e *ValidationError) Error() string {
	keys := make([]string, 0, len(e.Fields))
	for f := range e.Fields {
		keys = append(keys, string(f))
	}
	sort.Strings(keys)
	return "validation failed: " + strings.Join(keys, ", ")
}

// Validate checks every rule and reports every violation together (not
// fail-fast). An empty result means the draft is valid.
//
// Discount and Tax are deliberately left out: the observed product never
// rejected them, so neither do we.
func (d *EstimateDraft) Validate() ValidationErrors {
	errs := ValidationErrors{}

	if strings.TrimSpace(d.EstimateNo) == "" {
		errs[FieldEstimateNo] = "Estimate number is required"
	}
	if strings.TrimSpace(d.Date) == "" {
		errs[FieldDate] = "Date is required"
	} else if _, err := time.Parse(ISODate, d.Date); err != nil {
		errs[FieldDate] = "Date must be in YYYY-MM-DD format"
	}
	if strings.TrimSpace(d.CustomerName) == "" {
		errs[FieldCustomerName] = "Customer name is required"
	}
	if strings.TrimSpace(d.CustomerPhone) == "" {
		errs[FieldCustomerPhone] = "Customer phone is required"
	}
	if strings.TrimSpace(d.CustomerAddress) == "" {
		errs[FieldCustomerAddress] = "Customer address is required"
	}

	for i, item := range d.Items {
		if strings.TrimSpace(item.Name) == "" {
			errs[ItemName(i)] = "Item name is required"
		}
		if item.Quantity <= 0 {
			errs[ItemQuantity(i)] = "Quantity must be greater than 0"
		}
		if item.UnitPrice.IsNegative() {
			errs[ItemUnitPrice(i)] = "Amount cannot be negative"
		}
	}

	return errs
}
