// SPDX-License-Identifier: Apache-2.0

// Package app contains shared application-layer constants used across the
// VanGo client core.
//
// All Msg* constants are human-readable message strings surfaced to the user
// or written into log entries to describe the outcome of an operation.
// Keeping them in one place ensures consistent wording throughout the app.
package app

const (
	// MsgSomethingWentWrong is the localized fallback shown to the user when
	// a failed call carries neither a server message nor a transport message.
	MsgSomethingWentWrong = "Đã có lỗi xảy ra, vui lòng thử lại sau"

	// MsgSessionExpired is shown when the server rejects the stored session
	// credential and the user is returned to the login screen.
	MsgSessionExpired = "Phiên đăng nhập đã hết hạn, vui lòng đăng nhập lại"

	// MsgLoginFailed is shown when the sign-in request itself could not be
	// completed.
	MsgLoginFailed = "Đăng nhập thất bại"

	// MsgRegisterFailed is shown when the account-creation request could not
	// be completed.
	MsgRegisterFailed = "Đăng ký thất bại"

	// MsgNetworkUnreachable is shown when no response reached the client at
	// all (timeout, no connectivity).
	MsgNetworkUnreachable = "Không thể kết nối đến máy chủ"
)
