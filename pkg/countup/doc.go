// Package countup animates statistic counters from zero to their value when
// they scroll into view.
//
// Counter is the pure state machine: Observe feeds it the visible ratio of
// the display and Frame computes the eased value for a timestamp. Entering
// the view (ratio at or above the threshold, 0.5 by default) starts a run
// from 0; leaving cancels it and resets to 0 so it replays next time. A run
// lasts Duration (1200ms by default) and always lands exactly on the target.
//
// Driver attaches a Counter to a FrameSource and pushes values to a
// callback from its own goroutine. Close cancels pending frames so nothing
// is published after the display is gone.
package countup
