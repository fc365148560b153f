package validators

import "errors"

var (
	ErrUnsupportedType = errors.New("unsupported type for validation")
	ErrUnknownField    = errors.New("unknown field for validation")

	ErrEmptyEmail         = errors.New("email là bắt buộc")
	ErrInvalidEmail       = errors.New("email không hợp lệ")
	ErrEmptyPassword      = errors.New("mật khẩu là bắt buộc")
	ErrPasswordTooShort   = errors.New("mật khẩu phải có ít nhất 6 ký tự")
	ErrEmptyFullName      = errors.New("họ tên là bắt buộc")
	ErrInvalidPhoneNumber = errors.New("số điện thoại không hợp lệ")
)
