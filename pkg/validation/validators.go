package validation

import (
	"regexp"
	"time"

	"github.com/go-playground/validator/v10"
)

// Regex patterns
var (
	dniRegex         = regexp.MustCompile(`^\d{7,8}$`)
	phoneAreaRegex   = regexp.MustCompile(`^\d{2,4}$`)
	phoneNumberRegex = regexp.MustCompile(`^\d{6,8}$`)
	birthDateRegex   = regexp.MustCompile(`^\d{2}/\d{2}/\d{4}$`)
)

// Education levels accepted by the intake form.
var educationLevels = map[string]bool{
	"secondary":  true,
	"tertiary":   true,
	"university": true,
	"advanced":   true,
}

// RegisterValidators registers custom validators to the validator instance
func RegisterValidators(v *validator.Validate) {
	_ = v.RegisterValidation("dni", ValidDNI)
	_ = v.RegisterValidation("phone_area", ValidPhoneArea)
	_ = v.RegisterValidation("phone_number", ValidPhoneNumber)
	_ = v.RegisterValidation("birth_date", ValidBirthDate)
	_ = v.RegisterValidation("education_level", ValidEducationLevel)
}

// ValidDNI validates the national identity number: digits only, 7-8 long.
func ValidDNI(fl validator.FieldLevel) bool {
	return dniRegex.MatchString(fl.Field().String())
}

// ValidPhoneArea validates the phone area code part.
func ValidPhoneArea(fl validator.FieldLevel) bool {
	return phoneAreaRegex.MatchString(fl.Field().String())
}

// ValidPhoneNumber validates the phone number part.
func ValidPhoneNumber(fl validator.FieldLevel) bool {
	return phoneNumberRegex.MatchString(fl.Field().String())
}

// ValidBirthDate validates a dd/mm/yyyy string and that it denotes a real
// calendar date. time.Parse rejects impossible dates like 31/02/2000.
func ValidBirthDate(fl validator.FieldLevel) bool {
	val := fl.Field().String()
	if !birthDateRegex.MatchString(val) {
		return false
	}
	_, err := time.Parse("02/01/2006", val)
	return err == nil
}

// ValidEducationLevel validates membership in the education level enum.
func ValidEducationLevel(fl validator.FieldLevel) bool {
	return educationLevels[fl.Field().String()]
}
