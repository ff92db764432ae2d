package controller

// State is the state of the editing surface.
type State int

const (
	Closed State = iota
	Open
)

func (s State) String() string {
	if s == Open {
		return "open"
	}
	return "closed"
}

// Handle controls a dialog shown by a DialogHost.
type Handle interface {
	Hide()
}

// Dialog describes the column dialog handed to the host.
type Dialog struct {
	Props     DialogProps
	WidthMode string
	Checkbox  CheckboxProps
	OnConfirm func()
	OnCancel  func()
}

// DialogHost shows modal dialogs.
type DialogHost interface {
	Show(dialog Dialog) Handle
}

// Workflow drives the open/confirm/cancel cycle of the column dialog.
type Workflow struct {
	ctl    *Controller
	host   DialogHost
	handle Handle
}

// NewWorkflow binds a controller to the host that renders its dialog. host
// may be nil when no surface needs to be shown.
func NewWorkflow(ctl *Controller, host DialogHost) *Workflow {
	return &Workflow{ctl: ctl, host: host}
}

// Controller returns the underlying controller.
func (w *Workflow) Controller() *Controller {
	return w.ctl
}

// State returns the current workflow state.
func (w *Workflow) State() State {
	if w.ctl.IsOpen() {
		return Open
	}
	return Closed
}

// Open shows the dialog with a draft taken from the applied columns.
func (w *Workflow) Open() bool {
	if w.ctl.IsOpen() {
		return false
	}
	w.ctl.begin()
	if w.host != nil {
		cfg := w.ctl.Config()
		w.handle = w.host.Show(Dialog{
			Props:     cfg.Dialog.WithDefaults(),
			WidthMode: cfg.DisplayType.WidthMode(),
			Checkbox:  cfg.Checkbox,
			OnConfirm: func() { w.Confirm() },
			OnCancel:  func() { w.Cancel() },
		})
	}
	return true
}

// Confirm commits the draft and hides the dialog.
func (w *Workflow) Confirm() bool {
	if !w.ctl.IsOpen() {
		return false
	}
	w.ctl.commit()
	w.hide()
	return true
}

// Cancel drops the draft and hides the dialog.
func (w *Workflow) Cancel() bool {
	if !w.ctl.IsOpen() {
		return false
	}
	w.ctl.discard()
	w.hide()
	return true
}

func (w *Workflow) hide() {
	if w.handle == nil {
		return
	}
	handle := w.handle
	w.handle = nil
	handle.Hide()
}
