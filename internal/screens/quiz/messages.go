package quiz

import (
	"github.com/pathpilot/pathpilot/internal/api"
)

// startedMsg is sent when quiz generation finishes.
type startedMsg struct {
	Err error
}

// scoredMsg is sent when submission and progress recording finish.
type scoredMsg struct {
	Err error
}

// levelMsg carries the refreshed level classification after scoring.
type levelMsg struct {
	Info      *api.LevelInfo
	Celebrate bool
}
