package mode

import "fmt"

type Mode uint8

const (
	Demo Mode = iota
	Sweep
)

func UnmarshalText(text string) (Mode, error) {
	switch text {
	case "d":
		return Demo, nil
	case "s":
		return Sweep, nil
	default:
		return 0, fmt.Errorf("invalid mode: %q", text)
	}
}

func (m Mode) String() string {
	switch m {
	case Demo:
		return "d"
	case Sweep:
		return "s"
	default:
		return fmt.Sprintf("Mode(%d)", uint8(m))
	}
}
