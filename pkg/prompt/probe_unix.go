//go:build !windows

package prompt

import "os"

// usernameEnvVar names the variable holding the effective username.
const usernameEnvVar = "USER"

// adminAccountName is the canonical display name for elevated accounts.
// Unix has none; root keeps its own username.
const adminAccountName = ""

// osProbe reports elevation from the effective UID.
type osProbe struct{}

func (osProbe) Elevated() bool {
	return os.Geteuid() == 0
}
