package engine

// Kind identifies one of the session currencies.
type Kind string

const (
	KindBase       Kind = "Base Coins"
	KindBonus      Kind = "Bonus Coins"
	KindMilestone  Kind = "Milestone Coins"
	KindGachaToken Kind = "Gacha Tokens"
)

func (k Kind) IsValid() bool {
	switch k {
	case KindBase, KindBonus, KindMilestone, KindGachaToken:
		return true
	default:
		return false
	}
}

// Kinds lists all currencies in display order.
var Kinds = []Kind{KindBase, KindBonus, KindMilestone, KindGachaToken}

// Ledger holds the per-session currency balances. Balances never go
// negative: Add ignores negative amounts and Spend refuses overdrafts.
type Ledger struct {
	balances map[Kind]int
}

// NewLedger creates a ledger with every known currency at zero.
func NewLedger() *Ledger {
	b := make(map[Kind]int, len(Kinds))
	for _, k := range Kinds {
		b[k] = 0
	}
	return &Ledger{balances: b}
}

// Add increases the balance of the given kind. Unknown kinds and negative
// amounts are silently ignored; this leniency keeps reward code free of
// error plumbing and is relied on by callers.
func (l *Ledger) Add(kind Kind, amount int) {
	if amount < 0 {
		return
	}
	if _, ok := l.balances[kind]; !ok {
		return
	}
	l.balances[kind] += amount
}

// Spend decrements the balance of the given kind and reports success.
// The check and the decrement are one step: on insufficient funds (or an
// unknown kind) the ledger is left untouched and false is returned.
func (l *Ledger) Spend(kind Kind, amount int) bool {
	if amount < 0 {
		return false
	}
	bal, ok := l.balances[kind]
	if !ok || bal < amount {
		return false
	}
	l.balances[kind] = bal - amount
	return true
}

// Balance returns the current balance of one kind (zero for unknown kinds).
func (l *Ledger) Balance(kind Kind) int {
	return l.balances[kind]
}

// Balances returns a copy of all balances. Mutating the returned map has
// no effect on the ledger.
func (l *Ledger) Balances() map[Kind]int {
	out := make(map[Kind]int, len(l.balances))
	for k, v := range l.balances {
		out[k] = v
	}
	return out
}
