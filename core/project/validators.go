package project

import (
	ut "github.com/go-playground/universal-translator"
	"github.com/go-playground/validator/v10"

	"github.com/Radiyassin/login-campus-connect/core"
)

var (
	letterGradeTag  = "lettergrade"
	letterGradeText = "invalid grade"

	projectStatusTag  = "projectstatus"
	projectStatusText = "invalid status"
)

// InitValidators registers the project validation tags. core.InitValidators must run first.
func InitValidators(validate *validator.Validate, translator ut.Translator) {
	_ = validate.RegisterValidation(letterGradeTag, letterGradeValidation)
	core.RegisterCustomTranslation(validate, translator, letterGradeTag, letterGradeText)

	_ = validate.RegisterValidation(projectStatusTag, projectStatusValidation)
	core.RegisterCustomTranslation(validate, translator, projectStatusTag, projectStatusText)
}

func letterGradeValidation(fl validator.FieldLevel) bool {
	return IsLetterGrade(fl.Field().String())
}

// projectStatusValidation accepts every Status, plus StatusAll.
func projectStatusValidation(fl validator.FieldLevel) bool {
	st := Status(fl.Field().String())
	return st == StatusAll || st.IsValid()
}
