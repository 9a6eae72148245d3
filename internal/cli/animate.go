package cli

import (
	"os"

	"github.com/scbrown/vroom/internal/anim"
	"github.com/scbrown/vroom/internal/config"
	"github.com/scbrown/vroom/internal/tty"
)

// shouldAnimate applies the configured animation mode to the output stream.
func shouldAnimate(mode string, out *os.File) bool {
	switch mode {
	case config.AnimationNever:
		return false
	case config.AnimationAuto:
		return tty.IsTerminal(out)
	default:
		return true
	}
}

// playAnimation runs the car animation on stdout. It is cosmetic: errors
// and panics are swallowed so the package manager always gets to run.
func playAnimation() {
	defer func() {
		if r := recover(); r != nil {
			debugf("animation aborted: %v", r)
		}
	}()

	a := &anim.Animator{
		Out:   stdout,
		Width: tty.WidthFunc(stdout),
		Sleep: sleep,
	}
	if err := a.Run(); err != nil {
		debugf("animation aborted: %v", err)
	}
}
