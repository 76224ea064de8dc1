// Package prompt renders prompt components as styled segment lists. The
// flagship component is the gradient username module: it decides from
// environment signals whether the current user should be shown, formats the
// username through a template, and fades the result through a color
// gradient one grapheme at a time.
package prompt

import (
	"os"

	"github.com/charmbracelet/log"
)

// PrivilegeProbe reports whether the process runs with elevated
// (administrator/root) privileges. Implementations are selected per
// platform at composition time; tests inject fakes.
type PrivilegeProbe interface {
	Elevated() bool
}

// Context carries everything a component render needs: an environment view,
// the privilege probe, a logger, and the loaded component options. The zero
// value is usable and falls back to the live process environment.
type Context struct {
	// LookupEnv resolves an environment variable. Nil means os.LookupEnv.
	LookupEnv func(name string) (string, bool)

	// Probe detects elevated privileges. Nil means never elevated.
	Probe PrivilegeProbe

	// Logger receives warnings. Nil means log.Default().
	Logger *log.Logger

	Username UsernameOptions
	Gradient GradientOptions
}

// NewContext returns a context backed by the live process environment, the
// platform privilege probe, and default options.
func NewContext() *Context {
	return &Context{
		LookupEnv: os.LookupEnv,
		Probe:     osProbe{},
		Logger:    log.Default(),
		Username:  DefaultUsernameOptions(),
		Gradient:  DefaultGradientOptions(),
	}
}

// GetEnv returns the value of an environment variable and whether it is
// set.
func (c *Context) GetEnv(name string) (string, bool) {
	if c.LookupEnv == nil {
		return os.LookupEnv(name)
	}
	return c.LookupEnv(name)
}

// HasEnv reports whether an environment variable is present and non-empty.
// Only presence matters to callers; the value is never interpreted.
func (c *Context) HasEnv(name string) bool {
	v, ok := c.GetEnv(name)
	return ok && v != ""
}

func (c *Context) logger() *log.Logger {
	if c.Logger == nil {
		return log.Default()
	}
	return c.Logger
}

// elevated consults the privilege probe. A probe that panics is treated as
// "not elevated" after logging a warning; the render must survive probe
// failures.
func (c *Context) elevated() (elevated bool) {
	defer func() {
		if r := recover(); r != nil {
			c.logger().Warn("privilege probe failed, assuming not elevated", "panic", r)
			elevated = false
		}
	}()
	if c.Probe == nil {
		return false
	}
	return c.Probe.Elevated()
}
