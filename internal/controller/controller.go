package controller

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sync/atomic"

	"github.com/gabriel-vasile/mimetype"
	"github.com/google/uuid"

	"github.com/dmitrijs2005/filecompressor/internal/archive"
	"github.com/dmitrijs2005/filecompressor/internal/common"
	"github.com/dmitrijs2005/filecompressor/internal/format"
	"github.com/dmitrijs2005/filecompressor/internal/logging"
	"github.com/dmitrijs2005/filecompressor/internal/sizefmt"
)

// User-facing messages. Error details are appended to MsgErrorPrefix.
const (
	MsgUnsupported = "Unsupported file type. Please select a supported file."
	MsgErrorPrefix = "An error occurred: "
)

// UI is the display surface the controller drives. Implementations must
// tolerate calls from a non-UI goroutine; PickSavePath blocks until the user
// chooses a path or dismisses the prompt (empty path, nil error).
type UI interface {
	ShowProgress()
	HideProgress()
	UpdateProgress(percent int, label string)
	SetStatus(msg string, isError bool)
	PickSavePath(suggested string) (string, error)
}

// Controller runs the compression state machine. One operation at a time;
// see ProcessFile.
type Controller struct {
	registry *format.Registry
	archiver *archive.Archiver
	ui       UI
	log      logging.Logger

	busy  atomic.Bool
	state State
}

func New(registry *format.Registry, archiver *archive.Archiver, ui UI, log logging.Logger) *Controller {
	return &Controller{
		registry: registry,
		archiver: archiver,
		ui:       ui,
		log:      log,
	}
}

// State returns the stage the last operation reached.
func (c *Controller) State() State {
	return c.state
}

// ProcessFile runs one full operation for the selected path: validate,
// read, compress, prompt for a save location, write, report. All failures
// except a user cancel surface as a single error status; the progress
// indicator is hidden on every exit path. A call arriving while another
// operation is in flight is ignored.
func (c *Controller) ProcessFile(ctx context.Context, path string) {
	if !c.busy.CompareAndSwap(false, true) {
		c.log.Warn(ctx, "file selection ignored: operation already in progress", "path", path)
		return
	}
	defer c.busy.Store(false)

	log := c.log.With("op", uuid.NewString(), "file", filepath.Base(path))
	log.Info(ctx, "file selected", "path", path)

	c.setState(ctx, log, StateValidating)
	if !c.registry.IsSupported(path) {
		log.Warn(ctx, "rejected file", "reason", common.ErrUnsupportedType)
		c.ui.SetStatus(MsgUnsupported, true)
		c.setState(ctx, log, StateIdle)
		return
	}

	c.ui.ShowProgress()
	defer c.ui.HideProgress()

	err := c.run(ctx, log, path)
	switch {
	case err == nil:
		c.setState(ctx, log, StateComplete)
	case errors.Is(err, common.ErrCancelled):
		log.Info(ctx, "save cancelled by user")
		c.setState(ctx, log, StateIdle)
	default:
		log.Error(ctx, "operation failed", "state", c.state.String(), "error", err)
		c.setState(ctx, log, StateError)
		c.ui.SetStatus(MsgErrorPrefix+err.Error(), true)
		c.setState(ctx, log, StateIdle)
	}
}

// run executes the active stages of the state machine. It returns
// common.ErrCancelled when the user dismisses the save prompt; any other
// error carries the underlying failure for display.
func (c *Controller) run(ctx context.Context, log logging.Logger, path string) error {
	c.setState(ctx, log, StateReading)
	c.ui.UpdateProgress(0, "Reading file...")
	data, err := os.ReadFile(path)
	if err != nil {
		return err
	}
	log.Info(ctx, "file read", "size", len(data), "mime", mimetype.Detect(data).String())

	c.setState(ctx, log, StateCompressing)
	c.ui.UpdateProgress(33, "Compressing...")
	res, err := c.archiver.Compress(data, filepath.Base(path))
	if err != nil {
		return err
	}
	log.Info(ctx, "archive built", "size", len(res.Data))

	c.setState(ctx, log, StateAwaitingSavePath)
	c.ui.UpdateProgress(66, "Saving...")
	savePath, err := c.ui.PickSavePath(res.Filename)
	if err != nil {
		return err
	}
	if savePath == "" {
		return common.ErrCancelled
	}

	c.setState(ctx, log, StateWriting)
	if err := os.WriteFile(savePath, res.Data, 0o644); err != nil {
		return err
	}
	log.Info(ctx, "archive written", "path", savePath)

	c.ui.UpdateProgress(100, "Complete!")
	c.ui.SetStatus(fmt.Sprintf("File compressed successfully!\nOriginal size: %s, compressed size: %s",
		sizefmt.Format(len(data)), sizefmt.Format(len(res.Data))), false)
	return nil
}

func (c *Controller) setState(ctx context.Context, log logging.Logger, s State) {
	c.state = s
	log.Debug(ctx, "state changed", "state", s.String())
}
