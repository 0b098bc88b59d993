package launcher

import (
	"github.com/ytget/workout-viewer/internal/platform"
)

// AppOverlay is the registered name of the workout overlay
const AppOverlay = "overlay"

// OverlayApp resolves the overlay binary for the current platform inside binDir.
// The binary is looked up at launch time so it may be installed while the app runs.
func OverlayApp(binDir string, env ...string) AppBuilder {
	return func() (AppSpec, error) {
		path, err := platform.FindOverlayBinary(binDir)
		if err != nil {
			return AppSpec{}, err
		}
		return AppSpec{
			Command: path,
			Dir:     binDir,
			Env:     env,
		}, nil
	}
}
