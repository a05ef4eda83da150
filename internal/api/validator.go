package api

import (
	"fmt"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
	"github.com/ougirez/planstat/internal/domain"
	"github.com/ougirez/planstat/internal/domain/dto"
	"github.com/ougirez/planstat/internal/pkg/constants"
)

type Validator struct {
	validate *validator.Validate
}

func NewValidator() *Validator {
	v := validator.New()
	v.RegisterStructValidation(yearBoundsValidation, dto.YearBounds{})
	v.RegisterStructValidation(comparisonSpecValidation, domain.ComparisonSpec{})
	return &Validator{validate: v}
}

func (v *Validator) Validate(i interface{}) error {
	if err := v.validate.Struct(i); err != nil {
		return fmt.Errorf("%w: %s", constants.ErrBadRequest, err.Error())
	}
	return nil
}

func yearBoundsValidation(sl validator.StructLevel) {
	b := sl.Current().Interface().(dto.YearBounds)
	if !b.Ordered() {
		sl.ReportError(b.EndYear, "EndYear", "end_year", "gtefield", "StartYear")
	}
}

func comparisonSpecValidation(sl validator.StructLevel) {
	spec := sl.Current().Interface().(domain.ComparisonSpec)
	if spec.StartYear != nil && spec.EndYear != nil && *spec.StartYear > *spec.EndYear {
		sl.ReportError(spec.EndYear, "EndYear", "endYear", "gtefield", "StartYear")
	}
}

// Binder binds path, query and body values and validates the result.
type Binder struct {
	echo.DefaultBinder
}

func NewBinder() *Binder {
	return &Binder{}
}

func (b *Binder) Bind(i interface{}, c echo.Context) error {
	if err := b.DefaultBinder.Bind(i, c); err != nil {
		return fmt.Errorf("%w: %s", constants.ErrBadRequest, err.Error())
	}
	return c.Validate(i)
}
