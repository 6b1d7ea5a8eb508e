package entities

import (
	"strings"
	"time"
)

// MaxAdSlotsPerPublisher caps the inventory a single publisher may register.
const MaxAdSlotsPerPublisher = 3

type Publisher struct {
	PublisherID       string
	WalletAddress     string
	Domain            string
	VerificationToken string
	IsVerified        bool
	TrafficScore      int
	Tags              []string
	CreatedAt         time.Time
}

func (p Publisher) ValidateBasics() bool {
	return strings.TrimSpace(p.WalletAddress) != "" &&
		strings.TrimSpace(p.Domain) != ""
}

type AdSlot struct {
	SlotID       string
	PublisherID  string
	SlotName     string
	Tags         []string
	AspectRatios []string
	CreatedAt    time.Time
}

func (s AdSlot) ValidateBasics() bool {
	return strings.TrimSpace(s.PublisherID) != "" &&
		strings.TrimSpace(s.SlotName) != ""
}
