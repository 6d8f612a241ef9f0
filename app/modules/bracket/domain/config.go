package bracketdomain

import (
	"fmt"
	"math/bits"
)

// DefaultRoundNames names the rounds of the 64+8 field, indexed by round.
var DefaultRoundNames = []string{
	"first four",
	"second round",
	"third round",
	"sweet sixteen",
	"elite eight",
	"final four",
	"championship game",
}

// DefaultSeedCycle is the seed of each slot within a quadrant of 16 slots.
var DefaultSeedCycle = []int{1, 16, 8, 9, 5, 12, 4, 13, 6, 11, 3, 14, 7, 10, 2, 15}

const (
	DefaultSlotCount          = 64
	DefaultQualifyingMatchups = 4
)

// BracketConfig describes the shape of a tournament. Build it once with
// NewBracketConfig and pass it by value; the slices are copied on construction
// and never handed out.
type BracketConfig struct {
	slotCount          int
	qualifyingMatchups int
	roundNames         []string
	seedCycle          []int
}

// NewBracketConfig validates the shape and returns an immutable config.
func NewBracketConfig(slotCount, qualifyingMatchups int, roundNames []string, seedCycle []int) (BracketConfig, error) {
	if slotCount < 2 || bits.OnesCount(uint(slotCount)) != 1 {
		return BracketConfig{}, fmt.Errorf("%w: slot count %d is not a power of two", ErrInvalidBracketConfig, slotCount)
	}
	if qualifyingMatchups < 0 || qualifyingMatchups > slotCount {
		return BracketConfig{}, fmt.Errorf("%w: %d qualifying matchups for %d slots", ErrInvalidBracketConfig, qualifyingMatchups, slotCount)
	}
	rounds := 1 + bits.TrailingZeros(uint(slotCount))
	if len(roundNames) != rounds {
		return BracketConfig{}, fmt.Errorf("%w: %d round names for %d rounds", ErrInvalidBracketConfig, len(roundNames), rounds)
	}
	if len(seedCycle) == 0 {
		return BracketConfig{}, fmt.Errorf("%w: empty seed cycle", ErrInvalidBracketConfig)
	}
	for _, seed := range seedCycle {
		if seed <= 0 {
			return BracketConfig{}, fmt.Errorf("%w: seed %d is not positive", ErrInvalidBracketConfig, seed)
		}
	}

	return BracketConfig{
		slotCount:          slotCount,
		qualifyingMatchups: qualifyingMatchups,
		roundNames:         append([]string(nil), roundNames...),
		seedCycle:          append([]int(nil), seedCycle...),
	}, nil
}

// DefaultBracketConfig is the 64-slot bracket preceded by four qualifying games.
func DefaultBracketConfig() BracketConfig {
	cfg, err := NewBracketConfig(DefaultSlotCount, DefaultQualifyingMatchups, DefaultRoundNames, DefaultSeedCycle)
	if err != nil {
		panic(err)
	}
	return cfg
}

// SlotCount is the number of start slots in the main bracket.
func (c BracketConfig) SlotCount() int { return c.slotCount }

// QualifyingMatchups is the number of play-in games feeding the main bracket.
func (c BracketConfig) QualifyingMatchups() int { return c.qualifyingMatchups }

// TotalTeams counts every entrant, both members of each qualifying game included.
func (c BracketConfig) TotalTeams() int { return c.slotCount + c.qualifyingMatchups }

// Rounds is the number of rounds including the qualifying round.
func (c BracketConfig) Rounds() int { return len(c.roundNames) }

// RoundName returns the display name of round r.
func (c BracketConfig) RoundName(r int) string {
	if r < 0 || r >= len(c.roundNames) {
		return fmt.Sprintf("round %d", r)
	}
	return c.roundNames[r]
}

// RoundNames returns a copy of the round names.
func (c BracketConfig) RoundNames() []string {
	return append([]string(nil), c.roundNames...)
}

// ExpectedWinners is the number of winner entries a complete round r holds.
func (c BracketConfig) ExpectedWinners(r int) int {
	if r == QualifyingRound {
		return c.qualifyingMatchups
	}
	return c.slotCount >> r
}

// PointValue is what a correct pick in round r is worth.
func (c BracketConfig) PointValue(r int) int {
	return 1 << r
}

// SeedForSlot returns the seed printed next to start slot i.
func (c BracketConfig) SeedForSlot(i int) int {
	return c.seedCycle[i%len(c.seedCycle)]
}

// QualifyingRound is the index of the play-in round.
const QualifyingRound = 0
