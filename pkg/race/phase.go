package race

type Phase int

const (
	NotStarted Phase = iota // waiting for the first key press or click
	Countdown               // 3-2-1-START, simulation paused
	Running
	PlayerWon
	AIWon
)

func (p Phase) String() string {
	switch p {
	case NotStarted:
		return "not-started"
	case Countdown:
		return "countdown"
	case Running:
		return "running"
	case PlayerWon:
		return "player-won"
	case AIWon:
		return "ai-won"
	default:
		return "unknown"
	}
}

// Terminal reports whether the race is over.
func (p Phase) Terminal() bool {
	return p == PlayerWon || p == AIWon
}

// CountdownLabels is what the countdown shows before each tick and after
// the last one.
var CountdownLabels = [...]string{"3", "2", "1", "START"}

const countdownTicks = len(CountdownLabels) - 1

// CountdownTimer counts the ticks of the start timer.
type CountdownTimer struct {
	ticks int
}

// Tick advances the countdown and reports whether it has finished.
func (c *CountdownTimer) Tick() bool {
	if c.ticks < countdownTicks {
		c.ticks++
	}
	return c.Done()
}

func (c *CountdownTimer) Done() bool {
	return c.ticks >= countdownTicks
}

func (c *CountdownTimer) Label() string {
	return CountdownLabels[c.ticks]
}
