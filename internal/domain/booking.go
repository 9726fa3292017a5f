package domain

import (
	"math"
	"time"

	"github.com/google/uuid"
)

// Tier is a subscription tier.
type Tier string

const (
	TierFree    Tier = "FREE"
	TierPremium Tier = "PREMIUM"
)

// UnlimitedMessages marks a tier without a daily chat limit.
const UnlimitedMessages = -1

func (t Tier) String() string { return string(t) }

// ParseTier returns the tier named by s. Unknown or empty names are FREE.
func ParseTier(s string) Tier {
	if t := Tier(s); t.IsValid() {
		return t
	}
	return TierFree
}

func (t Tier) IsValid() bool {
	switch t {
	case TierFree, TierPremium:
		return true
	}
	return false
}

// MessageLimit is the number of chat messages allowed per day.
func (t Tier) MessageLimit() int {
	switch t {
	case TierPremium:
		return UnlimitedMessages
	case TierFree:
		return 10
	}
	return 10
}

// Discount is the booking discount fraction.
func (t Tier) Discount() float64 {
	switch t {
	case TierPremium:
		return 0.15
	case TierFree:
		return 0
	}
	return 0
}

// DiscountedPrice applies the tier discount, rounded to two decimals.
func (t Tier) DiscountedPrice(price float64) float64 {
	return math.Round(price*(1-t.Discount())*100) / 100
}

// Booking is a therapy session booked by the owner.
type Booking struct {
	ID          uuid.UUID `json:"id"`
	TherapistID string    `json:"therapistId"`
	Slot        time.Time `json:"datetime"`
	Price       float64   `json:"price"`
	Tier        Tier      `json:"tier"`
	CreatedAt   time.Time `json:"createdAt"`
}

// Reminder is a scheduled wellness reminder.
type Reminder struct {
	ID        uuid.UUID `json:"id"`
	Title     string    `json:"title"`
	Body      string    `json:"body"`
	At        time.Time `json:"datetime"`
	CreatedAt time.Time `json:"createdAt"`
}
