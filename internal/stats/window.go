package stats

import (
	"time"

	"github.com/lenix123/dd-manager/internal/model"
)

// Window is an inclusive range of calendar days.
type Window struct {
	Start time.Time
	End   time.Time
}

// DefaultWindow is the trailing days-long window through today.
func DefaultWindow(days int) Window {
	end := model.Day(time.Now())
	return Window{Start: end.AddDate(0, 0, -days), End: end}
}

// After reports whether d falls past the window's end.
func (w Window) After(d time.Time) bool {
	return model.Day(d).After(w.End)
}

// Before reports whether d falls ahead of the window's start.
func (w Window) Before(d time.Time) bool {
	return model.Day(d).Before(w.Start)
}

// Contains reports whether d falls inside the window, bounds included.
func (w Window) Contains(d time.Time) bool {
	return !w.Before(d) && !w.After(d)
}
