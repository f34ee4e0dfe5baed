package model

// WheelKind discriminates the outcome of a physical wheel spin
type WheelKind string

const (
	WheelMoney    WheelKind = "MONEY"
	WheelBankrupt WheelKind = "BANKRUPT"
	WheelLoseTurn WheelKind = "LOSE_A_TURN"
	WheelFreeSpin WheelKind = "FREE_SPIN"
	WheelPrize    WheelKind = "PRIZE"
)

// WheelResult is a manually entered wheel outcome. Exactly one variant
// per value: money segments carry Amount, prize segments carry a Prize
// tag plus the flat payout they award, the remaining kinds carry nothing.
type WheelResult struct {
	Kind   WheelKind `json:"kind"`
	Amount int       `json:"amount,omitempty"`
	Prize  string    `json:"prize,omitempty"`
}

// Money returns a money-segment result
func Money(amount int) WheelResult {
	return WheelResult{Kind: WheelMoney, Amount: amount}
}

// Bankrupt returns a BANKRUPT-segment result
func Bankrupt() WheelResult {
	return WheelResult{Kind: WheelBankrupt}
}

// LoseATurn returns a LOSE_A_TURN-segment result
func LoseATurn() WheelResult {
	return WheelResult{Kind: WheelLoseTurn}
}

// FreeSpin returns a FREE_SPIN-segment result
func FreeSpin() WheelResult {
	return WheelResult{Kind: WheelFreeSpin}
}

// Prize returns a prize-segment result with a flat payout
func Prize(tag string, payout int) WheelResult {
	return WheelResult{Kind: WheelPrize, Amount: payout, Prize: tag}
}

// IsMoney reports whether this result lets the team guess a consonant
func (w WheelResult) IsMoney() bool {
	return w.Kind == WheelMoney
}

// Validate checks that the result is well-formed
func (w WheelResult) Validate() error {
	switch w.Kind {
	case WheelMoney:
		if w.Amount <= 0 {
			return ErrInvalidWheelResult
		}
	case WheelBankrupt, WheelLoseTurn, WheelFreeSpin:
		if w.Amount != 0 || w.Prize != "" {
			return ErrInvalidWheelResult
		}
	case WheelPrize:
		if w.Prize == "" || w.Amount < 0 {
			return ErrInvalidWheelResult
		}
	default:
		return ErrInvalidWheelResult
	}
	return nil
}

// Label returns a short display name for the segment
func (w WheelResult) Label() string {
	switch w.Kind {
	case WheelMoney:
		return "MONEY"
	case WheelPrize:
		return w.Prize
	default:
		return string(w.Kind)
	}
}

// StandardWheel lists the segments of the physical party wheel, used by
// UIs to render the manual-entry picker. The set is advisory: spin input
// accepts any valid WheelResult.
func StandardWheel() []WheelResult {
	return []WheelResult{
		Money(100),
		Money(200),
		Money(300),
		Money(500),
		Money(750),
		Money(1000),
		Bankrupt(),
		LoseATurn(),
		FreeSpin(),
		Prize("DANCE", 1001),
		Prize("STORY", 1001),
		Prize("WIN_A_CAR", 0),
	}
}
