package core

// Action is a discrete trading signal. The zero value means no signal.
// Values are a small signed scale so that detector outputs compose
// arithmetically, e.g. crossUnder - crossAbove yields +1 on an oversold
// entry and -1 on an overbought exit.
type Action int8

const (
	StrongSell Action = -2
	Sell       Action = -1
	None       Action = 0
	Buy        Action = 1
	StrongBuy  Action = 2
)

func (a Action) String() string {
	switch {
	case a <= StrongSell:
		return "strong sell"
	case a == Sell:
		return "sell"
	case a == Buy:
		return "buy"
	case a >= StrongBuy:
		return "strong buy"
	default:
		return "none"
	}
}

// IsBuy reports whether the action is on the buy side of the scale.
func (a Action) IsBuy() bool { return a > 0 }

// IsSell reports whether the action is on the sell side of the scale.
func (a Action) IsSell() bool { return a < 0 }
