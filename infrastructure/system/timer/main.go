package timer

import (
	domainTimer "github.com/kaiwahq/kaiwactl/domain/system/timer"
	"time"
)

type Timer struct{}

func NewTimer() domainTimer.ITimer {
	return &Timer{}
}

func (t *Timer) Now() time.Time {
	return time.Now()
}
