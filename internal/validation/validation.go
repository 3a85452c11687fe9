package validation

import (
	"errors"
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
)

// MaxAdTextLength caps the length of a submitted job ad, in characters.
const MaxAdTextLength = 100_000

// ErrBlankText is returned for text that is empty or only whitespace.
var ErrBlankText = errors.New("job ad text is required")

// AdRequest is the body accepted by the form and the JSON API.
type AdRequest struct {
	Text string `json:"text" form:"text" validate:"required,notblank,max=100000"`
}

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())
	v.RegisterValidation("notblank", func(fl validator.FieldLevel) bool {
		return strings.TrimSpace(fl.Field().String()) != ""
	})
	return v
}

// ValidateAdRequest checks r and returns a message suitable for the user.
func ValidateAdRequest(r AdRequest) error {
	err := validate.Struct(r)
	if err == nil {
		return nil
	}

	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) || len(verrs) == 0 {
		return err
	}
	switch verrs[0].Tag() {
	case "required", "notblank":
		return ErrBlankText
	case "max":
		return fmt.Errorf("job ad text must be at most %d characters", MaxAdTextLength)
	default:
		return fmt.Errorf("invalid %s", strings.ToLower(verrs[0].Field()))
	}
}

// ValidateAdText checks free text the same way as a request body.
func ValidateAdText(text string) error {
	return ValidateAdRequest(AdRequest{Text: text})
}
