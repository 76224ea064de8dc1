//go:build windows

package prompt

import "golang.org/x/sys/windows"

// usernameEnvVar names the variable holding the effective username.
const usernameEnvVar = "USERNAME"

// adminAccountName is the canonical display name for elevated accounts.
const adminAccountName = "Administrator"

// osProbe reports elevation from the process token.
type osProbe struct{}

func (osProbe) Elevated() bool {
	return windows.GetCurrentProcessToken().IsElevated()
}
