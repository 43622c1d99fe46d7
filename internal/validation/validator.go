package validation

import (
	"path/filepath"
	"reflect"
	"regexp"
	"strings"

	"github.com/go-playground/validator/v10"
)

// Validator wraps the go-playground validator with custom rules and error formatting
type Validator struct {
	validate *validator.Validate
}

// GetValidate returns the underlying validator.Validate instance for use with Echo
func (v *Validator) GetValidate() *validator.Validate {
	return v.validate
}

// singleton instance of the validator
var instance *Validator

// GetValidator returns the singleton validator instance
func GetValidator() *Validator {
	if instance == nil {
		instance = NewValidator()
	}
	return instance
}

// NewValidator creates a new validator instance with custom rules and configuration
func NewValidator() *Validator {
	v := validator.New()

	_ = v.RegisterValidation("username", validateUsername)
	_ = v.RegisterValidation("item_code", validateItemCode)
	_ = v.RegisterValidation("spreadsheet_name", validateSpreadsheetName)

	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})

	return &Validator{validate: v}
}

// Custom validation functions

// validateUsername validates the login name format: 3-64 characters of
// letters, digits, dot, underscore or hyphen
func validateUsername(fl validator.FieldLevel) bool {
	username := fl.Field().String()
	if username == "" {
		return false
	}

	matched, _ := regexp.MatchString(`^[a-zA-Z0-9._-]{3,64}$`, username)
	return matched
}

// validateItemCode validates a bid item code such as 202-00090
func validateItemCode(fl validator.FieldLevel) bool {
	itemCode := fl.Field().String()
	if itemCode == "" {
		return false
	}

	matched, _ := regexp.MatchString(`^[A-Za-z0-9][A-Za-z0-9.\-]{0,63}$`, itemCode)
	return matched
}

// validateSpreadsheetName validates an uploaded file name: no path
// separators and a supported spreadsheet extension
func validateSpreadsheetName(fl validator.FieldLevel) bool {
	name := fl.Field().String()
	if name == "" || name != filepath.Base(name) {
		return false
	}

	switch strings.ToLower(filepath.Ext(name)) {
	case ".csv", ".xlsx":
		return true
	default:
		return false
	}
}
