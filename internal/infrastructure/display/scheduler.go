package display

import "time"

// TimerScheduler implements engine.Scheduler on the process timer
// heap. Each callback fires once after its delay.
type TimerScheduler struct{}

// Schedule arms fn to run after delay.
func (TimerScheduler) Schedule(fn func(), delay time.Duration) {
	time.AfterFunc(delay, fn)
}
