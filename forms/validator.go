package forms

import (
	"regexp"

	"github.com/go-playground/validator/v10"
)

// Usernames must start with a letter and may contain letters, digits, dots
// or underscores, as the account form has always required.
var usernameRe = regexp.MustCompile(`^[A-Za-z][A-Za-z0-9_.]*$`)

var validate = newValidate()

func newValidate() *validator.Validate {
	v := validator.New()

	// Custom validations
	_ = v.RegisterValidation("username_charset", validateUsernameCharset)

	return v
}

func validateUsernameCharset(fl validator.FieldLevel) bool {
	return usernameRe.MatchString(fl.Field().String())
}

// Errors maps form field names to one user-facing message each.
type Errors map[string]string

// Any reports whether validation produced at least one error.
func (e Errors) Any() bool { return len(e) > 0 }

// checkStruct runs the tag-based rules and folds the result into an Errors
// map keyed by the struct field name.
func checkStruct(form interface{}) Errors {
	errs := Errors{}
	err := validate.Struct(form)
	if err == nil {
		return errs
	}
	verrs, ok := err.(validator.ValidationErrors)
	if !ok {
		errs["form"] = "Invalid form submission."
		return errs
	}
	for _, fe := range verrs {
		if _, seen := errs[fe.Field()]; seen {
			continue
		}
		errs[fe.Field()] = messageFor(fe)
	}
	return errs
}

func messageFor(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return "This field is required."
	case "max":
		return "Field must be between 1 and " + fe.Param() + " characters long."
	case "email":
		return "Invalid email address."
	case "url":
		return "Invalid URL."
	case "username_charset":
		return "Usernames must have only letters, numbers, dots or underscores."
	case "min":
		return "Value is too small."
	default:
		return "Invalid value."
	}
}
