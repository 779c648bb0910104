package indexwatch

// Action is the decision CheckState takes for one poll.
type Action int

const (
	// NoAction means the gap is acceptable or a notification was sent recently.
	NoAction Action = iota

	// ShouldWait means the chain view is behind the index; poll again later.
	ShouldWait

	// ShouldNotify means the gap is too large and the debounce interval allows an alert.
	ShouldNotify
)

func (a Action) String() string {
	switch a {
	case ShouldWait:
		return "wait"
	case ShouldNotify:
		return "notify"
	default:
		return "none"
	}
}

// Config holds the watchdog thresholds.
type Config struct {
	// MaxBlockDifference is the largest acceptable gap between the chain head
	// and the indexed height. Zero alerts on any gap.
	MaxBlockDifference uint64

	// MaxNotifyInterval is the number of seconds that must be exceeded
	// between two alerts. Zero allows one alert per second.
	MaxNotifyInterval uint64
}

// NotificationState remembers when the last alert went out. LastNotifyTime
// is in Unix seconds; zero means never.
type NotificationState struct {
	LastNotifyTime uint64
}

// Update records a delivered alert at now. The stored time never decreases.
func (s *NotificationState) Update(now uint64) {
	s.LastNotifyTime = max(s.LastNotifyTime, now)
}

// Result is the outcome of CheckState. Heights and Difference are set only
// for ShouldNotify.
type Result struct {
	Action        Action
	CurrentHeight uint64
	CachedHeight  uint64
	Difference    uint64
}

// CheckState decides what to do with one pair of observed heights. It is
// pure: state is passed by value and never modified.
//
// A gap notifies only when it is strictly greater than MaxBlockDifference and
// either no alert was ever sent or more than MaxNotifyInterval seconds passed
// since the last one.
func CheckState(current, cached uint64, state NotificationState, cfg Config, now uint64) Result {
	if current < cached {
		return Result{Action: ShouldWait}
	}

	diff := current - cached
	if diff <= cfg.MaxBlockDifference {
		return Result{Action: NoAction}
	}

	neverNotified := state.LastNotifyTime == 0
	intervalElapsed := now > state.LastNotifyTime && now-state.LastNotifyTime > cfg.MaxNotifyInterval
	if !neverNotified && !intervalElapsed {
		return Result{Action: NoAction}
	}

	return Result{
		Action:        ShouldNotify,
		CurrentHeight: current,
		CachedHeight:  cached,
		Difference:    diff,
	}
}
