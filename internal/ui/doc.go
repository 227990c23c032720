// Package ui implements the application window on top of the Fyne toolkit.
//
// It renders the select zone, progress indicator, status label, and the
// supported-formats panel, and owns the native open/save dialogs. The window
// forwards a selected file to a single injected callback, which runs on a
// worker goroutine so dialogs and file I/O never block the event thread;
// display updates are marshalled back onto it with fyne.Do.
package ui
