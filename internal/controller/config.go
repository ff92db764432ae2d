package controller

// DisplayType selects how the column dialog sizes its option grid.
type DisplayType string

const (
	DisplayAutoWidth  DisplayType = "auto-width"
	DisplayFixedWidth DisplayType = "fixed-width"
)

// WidthMode returns "fixed" or "auto".
func (d DisplayType) WidthMode() string {
	if d == DisplayFixedWidth {
		return "fixed"
	}
	return "auto"
}

// CheckboxProps is passed through to the checkbox group.
type CheckboxProps struct {
	// Columns is the number of option columns; zero lets the group decide.
	Columns int `yaml:"columns,omitempty"`
}

// DialogProps is passed through to the dialog host.
type DialogProps struct {
	Title         string `yaml:"title,omitempty"`
	Description   string `yaml:"description,omitempty"`
	ConfirmText   string `yaml:"confirmText,omitempty"`
	CancelText    string `yaml:"cancelText,omitempty"`
	SelectAllText string `yaml:"selectAllText,omitempty"`
	Width         int    `yaml:"width,omitempty"`
}

// Config is the controller configuration supplied by the host.
type Config struct {
	// Fields lists the keys the user may toggle. Nil means every key.
	Fields      []string      `yaml:"fields,omitempty"`
	DisplayType DisplayType   `yaml:"displayType,omitempty"`
	Checkbox    CheckboxProps `yaml:"checkboxProps,omitempty"`
	Dialog      DialogProps   `yaml:"dialogProps,omitempty"`
}

const (
	defaultDialogTitle   = "Table settings"
	defaultDescription   = "Select the columns to display in the table"
	defaultConfirmText   = "Confirm"
	defaultCancelText    = "Cancel"
	defaultSelectAllText = "Select all"
	defaultDialogWidth   = 64
)

// WithDefaults fills empty dialog texts.
func (p DialogProps) WithDefaults() DialogProps {
	if p.Title == "" {
		p.Title = defaultDialogTitle
	}
	if p.Description == "" {
		p.Description = defaultDescription
	}
	if p.ConfirmText == "" {
		p.ConfirmText = defaultConfirmText
	}
	if p.CancelText == "" {
		p.CancelText = defaultCancelText
	}
	if p.SelectAllText == "" {
		p.SelectAllText = defaultSelectAllText
	}
	if p.Width <= 0 {
		p.Width = defaultDialogWidth
	}
	return p
}
