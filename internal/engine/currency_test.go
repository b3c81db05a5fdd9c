package engine

import "testing"

func TestLedgerSpendAtomic(t *testing.T) {
	l := NewLedger()
	l.Add(KindBase, 10)

	if ok := l.Spend(KindBase, 11); ok {
		t.Fatalf("spend above balance succeeded")
	}
	if got := l.Balance(KindBase); got != 10 {
		t.Fatalf("failed spend changed balance: got %d, want 10", got)
	}

	if ok := l.Spend(KindBase, 10); !ok {
		t.Fatalf("spend at exact balance refused")
	}
	if got := l.Balance(KindBase); got != 0 {
		t.Fatalf("balance after spend = %d, want 0", got)
	}
}

func TestLedgerNeverNegative(t *testing.T) {
	l := NewLedger()
	ops := []struct {
		spend  bool
		kind   Kind
		amount int
	}{
		{false, KindBonus, 5},
		{true, KindBonus, 3},
		{true, KindBonus, 3},
		{false, KindBonus, -4},
		{true, KindBonus, 2},
		{true, KindGachaToken, 1},
	}
	for _, op := range ops {
		if op.spend {
			l.Spend(op.kind, op.amount)
		} else {
			l.Add(op.kind, op.amount)
		}
	}
	for k, v := range l.Balances() {
		if v < 0 {
			t.Fatalf("balance %s went negative: %d", k, v)
		}
	}
	if got := l.Balance(KindBonus); got != 0 {
		t.Fatalf("bonus balance = %d, want 0", got)
	}
}

func TestLedgerUnknownKindLeniency(t *testing.T) {
	l := NewLedger()
	l.Add(Kind("Moon Dust"), 100)
	if got := l.Balance(Kind("Moon Dust")); got != 0 {
		t.Fatalf("unknown kind accrued balance %d", got)
	}
	if ok := l.Spend(Kind("Moon Dust"), 1); ok {
		t.Fatalf("spend on unknown kind succeeded")
	}
}

func TestLedgerBalancesCopy(t *testing.T) {
	l := NewLedger()
	l.Add(KindMilestone, 2)

	b := l.Balances()
	b[KindMilestone] = 999

	if got := l.Balance(KindMilestone); got != 2 {
		t.Fatalf("mutating Balances() copy leaked into ledger: %d", got)
	}
}
