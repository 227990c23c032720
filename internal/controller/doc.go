// Package controller orchestrates a single compression operation from file
// selection to the written archive.
//
// The controller is wired by dependency injection: it holds the format
// registry, the archiver, and a UI abstraction; the UI in turn holds a
// single file-selected callback pointing back at the controller. One
// operation is in flight at most; a selection arriving while another
// operation runs is logged and ignored.
//
// An operation walks the states Idle, Validating, Reading, Compressing,
// AwaitingSavePath, Writing, Complete, with Error reachable from every
// non-terminal state. Progress is reported at fixed checkpoints (0, 33, 66,
// 100 percent) and the progress indicator is hidden on every exit path,
// including failures.
package controller
