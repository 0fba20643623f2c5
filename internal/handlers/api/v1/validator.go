package v1

import (
	stderrors "errors"
	"fmt"
	"reflect"
	"strings"
	"sync"

	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"

	"github.com/KirkDiggler/rpg-charsheet/internal/errors"
)

var tagNamesOnce sync.Once

// registerTagNames makes binding errors report json field names
func registerTagNames() {
	tagNamesOnce.Do(func() {
		if v, ok := binding.Validator.Engine().(*validator.Validate); ok {
			v.RegisterTagNameFunc(func(fld reflect.StructField) string {
				name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
				if name == "-" {
					return ""
				}
				return name
			})
		}
	})
}

// bindError converts a gin binding failure to an InvalidArgument error.
// Validation failures become one detail per field.
func bindError(err error, message string) error {
	var verrs validator.ValidationErrors
	if !stderrors.As(err, &verrs) {
		return errors.WrapWithCode(err, errors.CodeInvalidArgument, message)
	}

	details := make([]string, 0, len(verrs))
	for _, fe := range verrs {
		details = append(details, describeField(fe))
	}
	return errors.InvalidArgument(message).WithDetails(details)
}

func describeField(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return fmt.Sprintf("%s is required", fe.Field())
	case "oneof":
		return fmt.Sprintf("%s must be one of: %s", fe.Field(), strings.ReplaceAll(fe.Param(), " ", ", "))
	case "max":
		return fmt.Sprintf("%s must be %s characters or less", fe.Field(), fe.Param())
	default:
		return fmt.Sprintf("%s failed the %s check", fe.Field(), fe.Tag())
	}
}
