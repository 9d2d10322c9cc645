package ui

import (
	"time"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/driver/mobile"
	"fyne.io/fyne/v2/widget"
)

// SwipeDirection is the dominant direction of a completed touch
type SwipeDirection int

const (
	SwipeNone SwipeDirection = iota
	SwipeLeft
	SwipeRight
	SwipeUp
	SwipeDown
)

// Swipe thresholds
const (
	DefaultSwipeThreshold float32 = 50.0
	MaxSwipeDuration              = 500 * time.Millisecond
)

// detectSwipe classifies a touch that moved from start to end within
// duration. Slow or short movements are not swipes.
func detectSwipe(start, end fyne.Position, duration time.Duration, threshold float32) SwipeDirection {
	if duration >= MaxSwipeDuration {
		return SwipeNone
	}

	dx := end.X - start.X
	dy := end.Y - start.Y
	if dx*dx+dy*dy < threshold*threshold {
		return SwipeNone
	}

	if abs32(dx) > abs32(dy) {
		if dx > 0 {
			return SwipeRight
		}
		return SwipeLeft
	}
	if dy > 0 {
		return SwipeDown
	}
	return SwipeUp
}

func abs32(v float32) float32 {
	if v < 0 {
		return -v
	}
	return v
}

// swipePager wraps the table so horizontal swipes turn pages on touch devices
type swipePager struct {
	widget.BaseWidget

	content fyne.CanvasObject
	next    func()
	prev    func()
	now     func() time.Time

	touchStart    time.Time
	touchStartPos fyne.Position
	tracking      bool
}

var _ mobile.Touchable = (*swipePager)(nil)

func newSwipePager(content fyne.CanvasObject, next, prev func()) *swipePager {
	sp := &swipePager{
		content: content,
		next:    next,
		prev:    prev,
		now:     time.Now,
	}
	sp.ExtendBaseWidget(sp)
	return sp
}

// CreateRenderer implements fyne.Widget
func (sp *swipePager) CreateRenderer() fyne.WidgetRenderer {
	return widget.NewSimpleRenderer(sp.content)
}

// TouchDown starts tracking a touch
func (sp *swipePager) TouchDown(event *mobile.TouchEvent) {
	sp.touchStart = sp.now()
	sp.touchStartPos = event.Position
	sp.tracking = true
}

// TouchUp turns a horizontal swipe into a page change
func (sp *swipePager) TouchUp(event *mobile.TouchEvent) {
	if !sp.tracking {
		return
	}
	sp.tracking = false

	switch detectSwipe(sp.touchStartPos, event.Position, sp.now().Sub(sp.touchStart), DefaultSwipeThreshold) {
	case SwipeLeft:
		if sp.next != nil {
			sp.next()
		}
	case SwipeRight:
		if sp.prev != nil {
			sp.prev()
		}
	}
}

// TouchCancel drops the tracked touch
func (sp *swipePager) TouchCancel(*mobile.TouchEvent) {
	sp.tracking = false
}
