package service

import (
	"errors"
	"fmt"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/shopspring/decimal"
	"github.com/stockboard/stockboard/internal/apperrors"
	"github.com/stockboard/stockboard/internal/models"
)

var validate *validator.Validate

func init() {
	validate = validator.New()
	validate.RegisterCustomTypeFunc(decimalValue, decimal.Decimal{})
	if err := validate.RegisterValidation("notblank", notBlank); err != nil {
		panic(err)
	}
}

func decimalValue(v reflect.Value) any {
	if d, ok := v.Interface().(decimal.Decimal); ok {
		f, _ := d.Float64()
		return f
	}
	return nil
}

func notBlank(fl validator.FieldLevel) bool {
	return strings.TrimSpace(fl.Field().String()) != ""
}

// validateForm reports every invalid field of data in a single
// *apperrors.ValidationError.
func validateForm(data models.ProductFormData) error {
	err := validate.Struct(data)
	if err == nil {
		return nil
	}

	var fieldErrors validator.ValidationErrors
	if !errors.As(err, &fieldErrors) {
		return err
	}

	verr := &apperrors.ValidationError{}
	for _, fe := range fieldErrors {
		verr.Add(strings.ToLower(fe.Field()), formatValidationError(fe))
	}
	return verr
}

func formatValidationError(err validator.FieldError) string {
	switch err.Tag() {
	case "required", "notblank":
		return "is required"
	case "min":
		return fmt.Sprintf("must be at least %s", err.Param())
	case "oneof":
		return fmt.Sprintf("must be one of: %s", err.Param())
	default:
		return "is invalid"
	}
}

func validateSort(s models.SortState) error {
	verr := &apperrors.ValidationError{}
	if !s.Field.Valid() {
		verr.Add("field", fmt.Sprintf("unknown sort field %q", s.Field))
	}
	if s.Direction != models.SortAsc && s.Direction != models.SortDesc {
		verr.Add("direction", fmt.Sprintf("unknown sort direction %q", s.Direction))
	}
	if len(verr.Fields) > 0 {
		return verr
	}
	return nil
}

func validatePagination(p models.PaginationState) error {
	verr := &apperrors.ValidationError{}
	if p.Page < 1 {
		verr.Add("page", "must be at least 1")
	}
	if p.PageSize < 1 {
		verr.Add("page_size", "must be at least 1")
	}
	if len(verr.Fields) > 0 {
		return verr
	}
	return nil
}

func validateFilters(f models.FilterState) error {
	for _, c := range f.Categories {
		if !c.Valid() {
			return apperrors.NewValidationError("categories", fmt.Sprintf("unknown category %q", c))
		}
	}
	return nil
}
