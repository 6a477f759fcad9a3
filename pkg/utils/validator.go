package utils

import (
	"regexp"

	"github.com/go-playground/validator/v10"
)

var validate *validator.Validate

var (
	cpfRe  = regexp.MustCompile(`^\d{11}$`)
	hhmmRe = regexp.MustCompile(`^([01]\d|2[0-3]):[0-5]\d$`)
)

func init() {
	validate = validator.New()

	err := validate.RegisterValidation("cpf", validateCPF)
	if err != nil {
		return
	}
	err = validate.RegisterValidation("sexo", validateSexo)
	if err != nil {
		return
	}
	err = validate.RegisterValidation("hhmm", validateHHMM)
	if err != nil {
		return
	}
}

func ValidateStruct(s interface{}) error {
	return validate.Struct(s)
}

func validateCPF(fl validator.FieldLevel) bool {
	return cpfRe.MatchString(fl.Field().String())
}

func validateSexo(fl validator.FieldLevel) bool {
	sexo := fl.Field().String()
	return sexo == "M" || sexo == "F"
}

func validateHHMM(fl validator.FieldLevel) bool {
	return hhmmRe.MatchString(fl.Field().String())
}
