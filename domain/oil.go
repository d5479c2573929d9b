// Package domain defines core business types for the perfume-oil shop.
package domain

import (
	"errors"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
)

// Oil represents a stocked fragrance oil tracked by weight in grams.
type Oil struct {
	ID                   string  `json:"id"`
	Name                 string  `json:"name" validate:"required"`
	Company              string  `json:"company"`
	Category             string  `json:"category"`
	CurrentWeight        float64 `json:"currentWeight" validate:"gte=0"`
	PurchasePricePerGram float64 `json:"purchasePricePerGram" validate:"gte=0"`
	SalePricePerGram     float64 `json:"salePricePerGram" validate:"gte=0"`
	MacerationDate       string  `json:"macerationDate,omitempty"`
	MacerationPercentage float64 `json:"macerationPercentage,omitempty"`
	AddedDate            string  `json:"addedDate"`
}

// OilPatch carries the fields of an Oil that may be changed after
// creation. Nil fields are left untouched; ID and AddedDate are
// immutable and have no patch counterpart.
type OilPatch struct {
	Name                 *string
	Company              *string
	Category             *string
	CurrentWeight        *float64
	PurchasePricePerGram *float64
	SalePricePerGram     *float64
	MacerationDate       *string
	MacerationPercentage *float64
}

// Apply merges the set fields of the patch into o.
func (p OilPatch) Apply(o Oil) Oil {
	if p.Name != nil {
		o.Name = *p.Name
	}
	if p.Company != nil {
		o.Company = *p.Company
	}
	if p.Category != nil {
		o.Category = *p.Category
	}
	if p.CurrentWeight != nil {
		o.CurrentWeight = *p.CurrentWeight
	}
	if p.PurchasePricePerGram != nil {
		o.PurchasePricePerGram = *p.PurchasePricePerGram
	}
	if p.SalePricePerGram != nil {
		o.SalePricePerGram = *p.SalePricePerGram
	}
	if p.MacerationDate != nil {
		o.MacerationDate = *p.MacerationDate
	}
	if p.MacerationPercentage != nil {
		o.MacerationPercentage = *p.MacerationPercentage
	}
	return o
}

// Company is a supplier name register entry. Oil.Company is a copied
// string, not a reference, so deleting a Company never touches oils.
type Company struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())
	// report fields under their json names so errors match the wire format
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})
	return v
}

// ValidateOil checks the record-level invariants of an Oil.
func ValidateOil(o Oil) error {
	if o.ID == "" {
		return NewInvalidOilError("id", "cannot be empty", o.ID)
	}
	if err := validate.Struct(o); err != nil {
		var verrs validator.ValidationErrors
		if errors.As(err, &verrs) && len(verrs) > 0 {
			fe := verrs[0]
			reason := "cannot be empty"
			if fe.Tag() == "gte" {
				reason = "must be non-negative"
			}
			return NewInvalidOilError(fe.Field(), reason, fe.Value())
		}
		return err
	}
	return nil
}
