package machines

type Status uint8

const (
	Running Status = iota
	HaltedAccept
	HaltedNoRule
	HaltedStepLimit
)

func (s Status) String() string {
	switch s {
	case Running:
		return "running"
	case HaltedAccept:
		return "accepted"
	case HaltedNoRule:
		return "halted: no rule"
	case HaltedStepLimit:
		return "halted: step limit"
	}
	return "unknown"
}

func (s Status) Halted() bool {
	return s != Running
}
