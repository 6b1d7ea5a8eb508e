package entities

import (
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

// Settlement is a payout record for one publisher over one period. The
// reward is computed from in-period activity at settlement time and never
// recomputed afterwards.
type Settlement struct {
	SettlementID     string
	PublisherID      string
	StartPeriod      time.Time
	EndPeriod        time.Time
	ImpressionsCount int
	ClicksCount      int
	RewardAmount     decimal.Decimal
	TxSignature      string
	SettledAt        time.Time
}

func (s Settlement) ValidateBasics() bool {
	return strings.TrimSpace(s.PublisherID) != "" &&
		!s.EndPeriod.Before(s.StartPeriod)
}
