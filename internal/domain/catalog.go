package domain

import (
	"fmt"
	"strings"

	"github.com/shopspring/decimal"
)

// RarityTier is the ordered rarity of a catalog entry.
// Values compare with < so Common < Rare < Epic < Legendary.
type RarityTier int

const (
	RarityCommon RarityTier = iota
	RarityRare
	RarityEpic
	RarityLegendary
)

var rarityNames = map[RarityTier]string{
	RarityCommon:    "common",
	RarityRare:      "rare",
	RarityEpic:      "epic",
	RarityLegendary: "legendary",
}

// String returns the lowercase config name of the tier.
func (r RarityTier) String() string {
	if name, ok := rarityNames[r]; ok {
		return name
	}
	return fmt.Sprintf("rarity(%d)", int(r))
}

// ParseRarityTier converts a config name ("common", "Legendary", ...) into a RarityTier.
func ParseRarityTier(s string) (RarityTier, error) {
	key := strings.ToLower(strings.TrimSpace(s))
	for tier, name := range rarityNames {
		if name == key {
			return tier, nil
		}
	}
	return 0, fmt.Errorf("%w: unknown rarity tier %q", ErrInvalidInput, s)
}

func (r RarityTier) MarshalText() ([]byte, error) {
	return []byte(r.String()), nil
}

func (r *RarityTier) UnmarshalText(text []byte) error {
	tier, err := ParseRarityTier(string(text))
	if err != nil {
		return err
	}
	*r = tier
	return nil
}

// Variant is the fixed edition tag of a catalog entry.
type Variant string

const (
	VariantVintage Variant = "vintage"
	VariantModern  Variant = "modern"
)

// ParseVariant converts a config name into a Variant.
func ParseVariant(s string) (Variant, error) {
	switch v := Variant(strings.ToLower(strings.TrimSpace(s))); v {
	case VariantVintage, VariantModern:
		return v, nil
	default:
		return "", fmt.Errorf("%w: unknown variant %q", ErrInvalidInput, s)
	}
}

// Outcome space for a single draw: every hash value lands in [OutcomeMin, OutcomeMax].
const (
	OutcomeMin   = 0
	OutcomeMax   = 99
	OutcomeRange = OutcomeMax - OutcomeMin + 1
)

// Band is a closed integer interval [Low, High] of the draw outcome space.
type Band struct {
	Low  int `json:"low"`
	High int `json:"high"`
}

// Contains reports whether v lies inside the band.
func (b Band) Contains(v int) bool {
	return v >= b.Low && v <= b.High
}

// Width is the number of outcomes covered by the band.
func (b Band) Width() int {
	if b.High < b.Low {
		return 0
	}
	return b.High - b.Low + 1
}

// Valid reports whether the band is well-formed and inside the outcome space.
func (b Band) Valid() bool {
	return b.Low >= OutcomeMin && b.High <= OutcomeMax && b.Low <= b.High
}

func (b Band) String() string {
	return fmt.Sprintf("[%d,%d]", b.Low, b.High)
}

// CatalogEntry is one obtainable item archetype with its display data and probability band.
// Entries are loaded once at startup and never mutated afterwards.
type CatalogEntry struct {
	ID            string          `json:"id"`
	Rarity        RarityTier      `json:"rarity"`
	Variant       Variant         `json:"variant"`
	DisplayName   string          `json:"display_name"`
	ImageRef      string          `json:"image_ref"`
	Description   string          `json:"description"`
	DailyYield    decimal.Decimal `json:"daily_yield"`
	CooldownHours int             `json:"cooldown_hours"`
	ROIDays       decimal.Decimal `json:"roi_days"`
	Band          Band            `json:"probability_band"`
}

// RarityTierConfig is one tier of the power distribution: weight in percent and an
// inclusive integer range of power values.
type RarityTierConfig struct {
	Name   string  `json:"name" yaml:"name"`
	Weight float64 `json:"weight" yaml:"weight"`
	Min    int     `json:"min" yaml:"min"`
	Max    int     `json:"max" yaml:"max"`
}

// RarityDistributionEntry is one discrete power value with its cumulative selection probability.
type RarityDistributionEntry struct {
	Value                 int     `json:"value"`
	CumulativeProbability float64 `json:"cumulative_probability"`
}
