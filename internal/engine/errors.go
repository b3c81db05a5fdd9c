package engine

import "fmt"

// ItemNotUsableError indicates UseItem found no consumable copy of the
// named item, or the target game does not exist. Either way the session
// is unchanged. This is returned inline and should be shown to the user.
type ItemNotUsableError struct {
	Item string
	Game string
}

func (e ItemNotUsableError) Error() string {
	return fmt.Sprintf("item '%s' not found or not usable on '%s'", e.Item, e.Game)
}

// LockedGameError indicates an unlock check failed: the inventory does not
// hold the entity's required item.
type LockedGameError struct {
	Game         string
	RequiredItem string
}

func (e LockedGameError) Error() string {
	return fmt.Sprintf("game '%s' is locked (requires '%s')", e.Game, e.RequiredItem)
}
