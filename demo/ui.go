package demo

import (
	"time"

	"github.com/solvecorp/resolve/internal/rlog"
)

// UI is a minimal resolve.UI backed by an internal/rlog.Logger. Debug output
// is gated behind Verbose so that the lazy thunk spec §6 requires is only
// ever evaluated when requested.
type UI struct {
	Log     *rlog.Logger
	Verbose bool
	Rate    time.Duration
}

// NewUI returns a UI logging to log. A zero Rate defaults to one second.
func NewUI(log *rlog.Logger, verbose bool) *UI {
	return &UI{Log: log, Verbose: verbose, Rate: time.Second}
}

func (u *UI) BeforeResolution() { u.Log.LogResolvefln("starting resolution") }
func (u *UI) AfterResolution()  { u.Log.LogResolvefln("resolution finished") }

func (u *UI) IndicateProgress() { u.Log.LogResolvefln("still working...") }

func (u *UI) Debug(depth int, thunk func() string) {
	if !u.Verbose {
		return
	}
	indent := ""
	for i := 0; i < depth; i++ {
		indent += "  "
	}
	u.Log.Logf("%s%s\n", indent, thunk())
}

func (u *UI) ProgressRate() time.Duration {
	if u.Rate == 0 {
		return time.Second
	}
	return u.Rate
}
