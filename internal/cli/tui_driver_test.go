package cli

import (
	"testing"

	"github.com/alexanderramin/moodtrack/internal/teatest"
)

// TestDriver wraps teatest.Driver with moodtrack-specific inspection methods.
// It provides access to appModel internals (view stack, shared state,
// chart navigation) that the generic driver can't see.
type TestDriver struct {
	*teatest.Driver
}

// NewTestDriver creates a TestDriver from a test App.
// It constructs the appModel, sets terminal size, and drains Init()
// (which loads the current week synchronously via in-memory SQLite).
func NewTestDriver(t *testing.T, app *App) *TestDriver {
	t.Helper()

	m := newAppModel(app)
	d := teatest.New(t, m, teatest.WithSize(120, 40))
	d.DrainInit()

	return &TestDriver{Driver: d}
}

func (d *TestDriver) appModel() appModel {
	return d.Model.(appModel)
}

// ActiveViewID returns the ViewID of the top view on the stack.
func (d *TestDriver) ActiveViewID() ViewID {
	m := d.appModel()
	v := m.activeView()
	if v == nil {
		return ViewID(-1)
	}
	return v.ID()
}

// ViewStackLen returns the number of views on the stack.
func (d *TestDriver) ViewStackLen() int {
	return len(d.appModel().viewStack)
}

// ChartView returns the home chart view at the bottom of the stack.
func (d *TestDriver) ChartView() *chartView {
	d.T.Helper()
	m := d.appModel()
	if len(m.viewStack) == 0 {
		d.T.Fatal("view stack is empty")
	}
	v, ok := m.viewStack[0].(*chartView)
	if !ok {
		d.T.Fatalf("bottom view is %T, want *chartView", m.viewStack[0])
	}
	return v
}

// State returns the shared state for inspection.
func (d *TestDriver) State() *SharedState {
	return d.appModel().state
}

// IsQuitting returns whether the app has signaled a quit.
func (d *TestDriver) IsQuitting() bool {
	return d.appModel().quitting || d.Quitting
}

// LastOutput returns the transient output shown above the status bar,
// with ANSI codes removed.
func (d *TestDriver) LastOutput() string {
	return teatest.StripANSI(d.appModel().lastOutput)
}
