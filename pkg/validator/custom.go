package validator

import (
	"reflect"
	"regexp"
	"strings"

	"github.com/go-playground/validator/v10"

	"roadsketch/internal/domain"
	"roadsketch/internal/symbols"
)

var (
	hexColor   = regexp.MustCompile(`^#[0-9a-fA-F]{6}$`)
	colorNames = map[string]struct{}{
		"red": {}, "blue": {}, "black": {}, "yellow": {}, "green": {}, "white": {},
	}
)

func RegisterCustomValidations(validate *validator.Validate) {
	// LatLng is checked as a whole: the field value seen by "geo" is its
	// Valid() result.
	validate.RegisterCustomTypeFunc(func(v reflect.Value) interface{} {
		if p, ok := v.Interface().(domain.LatLng); ok {
			return p.Valid()
		}
		return nil
	}, domain.LatLng{})

	validate.RegisterValidation("lat", validateLat)
	validate.RegisterValidation("lng", validateLng)
	validate.RegisterValidation("geo", validateGeo)
	validate.RegisterValidation("symbol", validateSymbol)
	validate.RegisterValidation("linecolor", validateLineColor)
}

func validateLat(fl validator.FieldLevel) bool {
	lat := fl.Field().Float()
	return lat >= -90.0 && lat <= 90.0
}

func validateLng(fl validator.FieldLevel) bool {
	lng := fl.Field().Float()
	return lng >= -180.0 && lng <= 180.0
}

func validateGeo(fl validator.FieldLevel) bool {
	f := fl.Field()
	return f.Kind() == reflect.Bool && f.Bool()
}

func validateSymbol(fl validator.FieldLevel) bool {
	return symbols.Valid(fl.Field().String())
}

func validateLineColor(fl validator.FieldLevel) bool {
	c := strings.ToLower(strings.TrimSpace(fl.Field().String()))
	if _, ok := colorNames[c]; ok {
		return true
	}
	return hexColor.MatchString(c)
}
