package messenger

import "fmt"

type SenderAction string

const (
	SenderActionMarkSeen  SenderAction = "mark_seen"
	SenderActionTypingOn  SenderAction = "typing_on"
	SenderActionTypingOff SenderAction = "typing_off"
)

// legacyTypingOff is an old misspelling still accepted from callers.
const legacyTypingOff = "typing_of"

func ParseSenderAction(s string) (SenderAction, error) {
	switch s {
	case string(SenderActionMarkSeen), string(SenderActionTypingOn), string(SenderActionTypingOff):
		return SenderAction(s), nil
	case legacyTypingOff:
		return SenderActionTypingOff, nil
	default:
		return "", fmt.Errorf("%w: unknown sender action %q", ErrValidation, s)
	}
}

func (a SenderAction) String() string {
	return string(a)
}
