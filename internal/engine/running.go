package engine

// Reward constants for the running game. Rewards use integer floor
// division, so partial progress toward the next coin is discarded.
const (
	DistancePerCoin   = 10   // feet per Base coin
	BonusPeriod       = 30   // seconds per Bonus coin
	MilestoneDistance = 1000 // feet per Milestone coin
)

// RewardRates lets the catalog override the stock running constants.
type RewardRates struct {
	DistancePerCoin   int
	BonusPeriod       int
	MilestoneDistance int
}

// DefaultRewardRates returns the stock rates.
func DefaultRewardRates() RewardRates {
	return RewardRates{
		DistancePerCoin:   DistancePerCoin,
		BonusPeriod:       BonusPeriod,
		MilestoneDistance: MilestoneDistance,
	}
}

func (r RewardRates) valid() bool {
	return r.DistancePerCoin > 0 && r.BonusPeriod > 0 && r.MilestoneDistance > 0
}

// RunningGame converts a running session into currency and playtime. It is
// a one-shot computation over fixed rates; the entity itself only carries
// the base playtime state so it can live in the session's entity map.
type RunningGame struct {
	Game
	rates RewardRates
}

func NewRunningGame(rates RewardRates) *RunningGame {
	if !rates.valid() {
		rates = DefaultRewardRates()
	}
	return &RunningGame{
		Game:  Game{name: "Running Game"},
		rates: rates,
	}
}

// Progress credits the ledger for a run and fans the elapsed time out as
// playtime to every other entity. The fan-out is unconditional: locked
// games bank playtime too, they just can't spend it until unlocked. The
// running game never credits itself.
func (g *RunningGame) Progress(distance, seconds int, ledger *Ledger, entities map[string]Entity) {
	if distance < 0 || seconds < 0 {
		return
	}
	ledger.Add(KindBase, distance/g.rates.DistancePerCoin)
	ledger.Add(KindBonus, seconds/g.rates.BonusPeriod)
	ledger.Add(KindMilestone, distance/g.rates.MilestoneDistance)

	for _, e := range entities {
		if e.Name() == g.name {
			continue
		}
		e.AddPlaytime(seconds)
	}
}
