// Package nav defines the navigation capability the session core needs from
// the UI shell: the ability to programmatically switch the active screen.
package nav

//go:generate mockgen -source=navigator.go -destination=../mock/navigator_mock.go -package=mock

// Screen names the core navigates to.
const (
	// ScreenLogin is the sign-in screen the user is returned to when the
	// session expires.
	ScreenLogin = "Login"
)

// Navigator is implemented by the UI shell. Navigate must only be called
// after IsReady reports true; callers that find the navigator not ready skip
// navigation silently.
type Navigator interface {
	IsReady() bool
	Navigate(screen string)
}

type nopNavigator struct{}

func (nopNavigator) IsReady() bool   { return false }
func (nopNavigator) Navigate(string) {}

// Nop returns a Navigator that is never ready. Used in headless runs and in
// tests that do not care about navigation.
func Nop() Navigator {
	return nopNavigator{}
}
