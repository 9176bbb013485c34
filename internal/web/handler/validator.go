package handler

import (
	"errors"
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
)

// echoValidator wraps go-playground/validator so Echo can call c.Validate(req).
type echoValidator struct {
	v *validator.Validate
}

// NewValidator returns an echoValidator ready to be assigned to echo.Echo.Validator.
func NewValidator() *echoValidator {
	return &echoValidator{v: validator.New()}
}

// Validate satisfies the echo.Validator interface.
func (ev *echoValidator) Validate(i any) error {
	if err := ev.v.Struct(i); err != nil {
		var ve validator.ValidationErrors
		if errors.As(err, &ve) {
			msgs := make([]string, 0, len(ve))
			for _, fe := range ve {
				msgs = append(msgs, fieldError(fe))
			}
			return fmt.Errorf("%s", strings.Join(msgs, " "))
		}
		return err
	}
	return nil
}

// fieldError converts a single ValidationError into the message shown inline
// on the form.
func fieldError(fe validator.FieldError) string {
	field := fieldLabel(fe.Field())
	switch fe.Tag() {
	case "required":
		return field + "을(를) 입력해주세요."
	case "min":
		return fmt.Sprintf("%s은(는) %s자 이상이어야 합니다.", field, fe.Param())
	case "max":
		return fmt.Sprintf("%s은(는) %s자 이하여야 합니다.", field, fe.Param())
	default:
		return fmt.Sprintf("%s이(가) 올바르지 않습니다.", field)
	}
}

func fieldLabel(field string) string {
	switch strings.ToLower(field) {
	case "username":
		return "아이디"
	case "password":
		return "비밀번호"
	case "title":
		return "제목"
	case "content":
		return "내용"
	default:
		return field
	}
}
