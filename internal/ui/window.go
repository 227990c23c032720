package ui

import (
	"context"
	"fmt"
	"strings"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/app"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/storage"
	"fyne.io/fyne/v2/widget"

	"github.com/dmitrijs2005/filecompressor/internal/config"
	"github.com/dmitrijs2005/filecompressor/internal/format"
	"github.com/dmitrijs2005/filecompressor/internal/logging"
)

// Window is the main application window. It satisfies the controller's UI
// interface.
type Window struct {
	app fyne.App
	win fyne.Window

	registry *format.Registry
	log      logging.Logger

	onFileSelected func(path string)

	progressBar   *widget.ProgressBar
	progressLabel *widget.Label
	statusLabel   *widget.Label
}

// New builds the window and its widgets. The file-selected callback is wired
// separately via SetOnFileSelected before Run.
func New(cfg *config.Config, registry *format.Registry, log logging.Logger) *Window {
	a := app.New()
	w := a.NewWindow(cfg.WindowTitle)
	w.Resize(fyne.NewSize(cfg.WindowWidth, cfg.WindowHeight))
	w.CenterOnScreen()

	u := &Window{app: a, win: w, registry: registry, log: log}
	u.buildWidgets()
	w.SetOnDropped(u.onDropped)
	return u
}

// SetOnFileSelected installs the callback invoked with the path of every
// file the user picks or drops.
func (u *Window) SetOnFileSelected(fn func(path string)) {
	u.onFileSelected = fn
}

// Run shows the window and enters the event loop. It blocks until the
// window is closed.
func (u *Window) Run() {
	u.win.ShowAndRun()
}

func (u *Window) buildWidgets() {
	title := widget.NewLabelWithStyle("File Compressor", fyne.TextAlignCenter, fyne.TextStyle{Bold: true})

	dropZone := widget.NewButton("Click to select a file", u.openSelectDialog)

	u.progressBar = widget.NewProgressBar()
	u.progressBar.Hide()
	u.progressLabel = widget.NewLabel("")
	u.progressLabel.Alignment = fyne.TextAlignCenter
	u.progressLabel.Hide()

	u.statusLabel = widget.NewLabel("")
	u.statusLabel.Alignment = fyne.TextAlignCenter
	u.statusLabel.Wrapping = fyne.TextWrapWord

	selectBtn := widget.NewButton("Select File", u.openSelectDialog)
	selectBtn.Importance = widget.HighImportance

	u.win.SetContent(container.NewVBox(
		title,
		dropZone,
		u.progressBar,
		u.progressLabel,
		u.statusLabel,
		selectBtn,
		widget.NewSeparator(),
		u.formatInfo(),
	))
}

// formatInfo renders the supported-formats panel from the registry table.
func (u *Window) formatInfo() fyne.CanvasObject {
	rows := []fyne.CanvasObject{
		widget.NewLabelWithStyle("Supported Formats", fyne.TextAlignCenter, fyne.TextStyle{Bold: true}),
	}
	for _, c := range u.registry.Categories() {
		exts := make([]string, 0, len(c.Extensions))
		for _, e := range c.Extensions {
			exts = append(exts, strings.ToUpper(strings.TrimPrefix(e, ".")))
		}
		rows = append(rows, widget.NewLabel(fmt.Sprintf("• %s: %s", c.Name, strings.Join(exts, ", "))))
	}
	return container.NewVBox(rows...)
}

func (u *Window) openSelectDialog() {
	d := dialog.NewFileOpen(func(rc fyne.URIReadCloser, err error) {
		if err != nil {
			u.log.Error(context.Background(), "open dialog failed", "error", err)
			return
		}
		if rc == nil {
			return // cancelled
		}
		path := rc.URI().Path()
		_ = rc.Close()
		u.fileSelected(path)
	}, u.win)
	d.SetFilter(storage.NewExtensionFileFilter(u.registry.Extensions()))
	d.Show()
}

func (u *Window) onDropped(_ fyne.Position, uris []fyne.URI) {
	if len(uris) == 0 {
		return
	}
	u.fileSelected(uris[0].Path())
}

// fileSelected hands the path to the injected callback on a worker
// goroutine: the callback performs blocking I/O and re-enters the UI for
// the save dialog, so it must not run on the event thread.
func (u *Window) fileSelected(path string) {
	if u.onFileSelected == nil {
		return
	}
	go u.onFileSelected(path)
}

// ShowProgress resets and reveals the progress indicator.
func (u *Window) ShowProgress() {
	fyne.Do(func() {
		u.progressBar.SetValue(0)
		u.progressLabel.SetText("")
		u.progressBar.Show()
		u.progressLabel.Show()
	})
}

// HideProgress hides the progress indicator. The controller calls this on
// every exit path of an operation.
func (u *Window) HideProgress() {
	fyne.Do(func() {
		u.progressBar.Hide()
		u.progressLabel.Hide()
	})
}

// UpdateProgress sets the bar to percent (0-100) and the stage label.
func (u *Window) UpdateProgress(percent int, label string) {
	fyne.Do(func() {
		u.progressBar.SetValue(float64(percent) / 100)
		u.progressLabel.SetText(label)
	})
}

// SetStatus shows msg below the progress area, colored by severity.
func (u *Window) SetStatus(msg string, isError bool) {
	fyne.Do(func() {
		if isError {
			u.statusLabel.Importance = widget.DangerImportance
		} else {
			u.statusLabel.Importance = widget.SuccessImportance
		}
		u.statusLabel.SetText(msg)
	})
}

// PickSavePath opens the save dialog pre-filled with the suggested filename
// and filtered to ZIP files. It blocks the calling worker goroutine until
// the dialog resolves; a cancel returns an empty path and a nil error.
func (u *Window) PickSavePath(suggested string) (string, error) {
	type result struct {
		path string
		err  error
	}
	ch := make(chan result, 1)

	fyne.Do(func() {
		d := dialog.NewFileSave(func(wc fyne.URIWriteCloser, err error) {
			if err != nil {
				ch <- result{err: err}
				return
			}
			if wc == nil {
				ch <- result{} // cancelled
				return
			}
			path := wc.URI().Path()
			// The controller writes the archive itself; the dialog's writer
			// is only needed to learn the chosen path.
			if cerr := wc.Close(); cerr != nil {
				ch <- result{err: cerr}
				return
			}
			ch <- result{path: path}
		}, u.win)
		d.SetFileName(suggested)
		d.SetFilter(storage.NewExtensionFileFilter([]string{".zip"}))
		d.Show()
	})

	r := <-ch
	return r.path, r.err
}
