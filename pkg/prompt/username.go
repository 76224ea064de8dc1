package prompt

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/dkoosis/promptfade/pkg/format"
	"github.com/dkoosis/promptfade/pkg/gradient"
	"github.com/dkoosis/promptfade/pkg/segment"
)

// Module is a prompt component. Render returns the component's styled
// segments, or nil when the component elects not to display this pass.
type Module interface {
	Name() string
	Render(ctx *Context) []segment.Segment
}

// GradientUsername renders the current user's name faded through a color
// gradient.
//
// The component displays when any of these hold:
//   - show_always is configured
//   - the process runs with elevated privileges
//   - the effective user differs from the login user ($LOGNAME)
//   - the session arrived over SSH
//
// A missing username variable always suppresses the component.
type GradientUsername struct{}

func (GradientUsername) Name() string { return "gradient_username" }

// Render implements Module.
func (m GradientUsername) Render(ctx *Context) []segment.Segment {
	opts := ctx.Username
	if opts.Disabled {
		return nil
	}
	username, ok := ctx.GetEnv(usernameEnvVar)
	if !ok || username == "" {
		return nil
	}

	elevated := ctx.elevated()
	if elevated && adminAccountName != "" {
		username = adminAccountName
	}

	if !shouldShowUsername(ctx, opts, elevated, username) {
		return nil
	}

	styleStr := opts.StyleUser
	if elevated {
		styleStr = opts.StyleRoot
	}
	style, err := format.ParseStyle(styleStr)
	if err != nil {
		ctx.logger().Warn("gradient_username: invalid style, not rendering", "style", styleStr, "err", err)
		return nil
	}

	f, err := format.New(opts.Format)
	if err != nil {
		ctx.logger().Warn("gradient_username: invalid format, not rendering", "err", err)
		return nil
	}
	segs, err := f.Format(
		func(name string) (lipgloss.Style, bool) {
			return style, name == "style"
		},
		func(name string) (string, bool) {
			if name == "user" {
				return username, true
			}
			return "", false
		},
	)
	if err != nil {
		ctx.logger().Warn("gradient_username: format failed, not rendering", "err", err)
		return nil
	}

	curve := m.curve(ctx)
	return RecolorAll(segs, curve, ctx.Gradient.sampleCount())
}

// curve builds the render's gradient, substituting the fallback curve when
// the configured stops fail to build. Each render constructs a fresh curve
// so configuration reloads take effect immediately.
func (m GradientUsername) curve(ctx *Context) gradient.Curve {
	opts := ctx.Gradient
	if len(opts.Stops) == 0 && len(opts.Domain) == 0 {
		switch opts.Preset {
		case "", "sunset":
			return gradient.Sunset()
		case "gold":
			return gradient.Gold()
		case "magma":
			return gradient.Fallback()
		default:
			ctx.logger().Warn("gradient_username: unknown gradient preset, using fallback", "preset", opts.Preset)
			return gradient.Fallback()
		}
	}
	curve, err := gradient.Build(opts.Stops, opts.Domain)
	if err != nil {
		ctx.logger().Warn("gradient_username: invalid gradient, using fallback", "err", err)
		return gradient.Fallback()
	}
	return curve
}

// shouldShowUsername implements the display decision. All conditions OR
// together; any one forces display.
func shouldShowUsername(ctx *Context, opts UsernameOptions, elevated bool, username string) bool {
	return opts.ShowAlways ||
		elevated ||
		!isLoginUser(ctx, username) ||
		isSSHSession(ctx)
}

// isLoginUser reports whether the effective user matches $LOGNAME. A
// missing $LOGNAME counts as a match: absence alone never forces display.
func isLoginUser(ctx *Context, username string) bool {
	logname, ok := ctx.GetEnv("LOGNAME")
	if !ok {
		return true
	}
	return logname == username
}

var sshEnvVars = [...]string{"SSH_CONNECTION", "SSH_CLIENT", "SSH_TTY"}

func isSSHSession(ctx *Context) bool {
	for _, v := range sshEnvVars {
		if ctx.HasEnv(v) {
			return true
		}
	}
	return false
}
