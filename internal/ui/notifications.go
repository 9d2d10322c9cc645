package ui

import (
	"sync"
	"time"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/theme"
	"fyne.io/fyne/v2/widget"
)

// NotificationKind selects the icon shown next to a message
type NotificationKind int

const (
	NotificationSuccess NotificationKind = iota
	NotificationError
	NotificationInfo
)

// NotificationPanel shows one transient message under the toolbar
type NotificationPanel struct {
	icon      *widget.Icon
	label     *widget.Label
	container *fyne.Container
	hideAfter time.Duration

	mu  sync.Mutex
	gen uint64
}

// NewNotificationPanel creates a hidden panel that hides itself hideAfter
// a message is shown. Zero keeps messages until the next one.
func NewNotificationPanel(hideAfter time.Duration) *NotificationPanel {
	p := &NotificationPanel{
		icon:      widget.NewIcon(nil),
		label:     widget.NewLabel(""),
		hideAfter: hideAfter,
	}
	p.container = container.NewHBox(p.icon, p.label)
	p.container.Hide()
	return p
}

// Container returns the panel's canvas object
func (p *NotificationPanel) Container() fyne.CanvasObject {
	return p.container
}

// Text returns the message currently displayed, or "" when hidden
func (p *NotificationPanel) Text() string {
	if !p.container.Visible() {
		return ""
	}
	return p.label.Text
}

// Show displays message and schedules it to disappear
func (p *NotificationPanel) Show(message string, kind NotificationKind) {
	p.mu.Lock()
	p.gen++
	gen := p.gen
	p.mu.Unlock()

	switch kind {
	case NotificationError:
		p.icon.SetResource(theme.ErrorIcon())
	case NotificationInfo:
		p.icon.SetResource(theme.InfoIcon())
	default:
		p.icon.SetResource(theme.ConfirmIcon())
	}
	p.label.SetText(message)
	p.container.Show()
	p.container.Refresh()

	if p.hideAfter > 0 {
		time.AfterFunc(p.hideAfter, func() {
			fyne.Do(func() { p.hideIfCurrent(gen) })
		})
	}
}

// Hide removes the current message
func (p *NotificationPanel) Hide() {
	p.mu.Lock()
	p.gen++
	p.mu.Unlock()
	p.container.Hide()
}

func (p *NotificationPanel) hideIfCurrent(gen uint64) {
	p.mu.Lock()
	current := p.gen == gen
	p.mu.Unlock()
	if current {
		p.container.Hide()
	}
}
