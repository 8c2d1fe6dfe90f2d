package ordering

import (
	"restaurant-manager-api/models"
)

// Transition defines a valid table status change
type Transition struct {
	From models.TableStatus
	To   models.TableStatus
}

// validTransitions is the authoritative table-state definition: the three
// active states move freely between each other, any state may be taken out
// of service, and an inactive table comes back only as AVAILABLE.
var validTransitions = []Transition{
	{From: models.TableAvailable, To: models.TableOccupied},
	{From: models.TableAvailable, To: models.TableReserved},
	{From: models.TableAvailable, To: models.TableInactive},
	{From: models.TableOccupied, To: models.TableAvailable},
	{From: models.TableOccupied, To: models.TableReserved},
	{From: models.TableOccupied, To: models.TableInactive},
	{From: models.TableReserved, To: models.TableAvailable},
	{From: models.TableReserved, To: models.TableOccupied},
	{From: models.TableReserved, To: models.TableInactive},
	{From: models.TableInactive, To: models.TableAvailable},
}

// Build a lookup map for O(1) validation
var transitionMap = func() map[Transition]bool {
	m := make(map[Transition]bool)
	for _, t := range validTransitions {
		m[t] = true
	}
	return m
}()

// ValidTransitionsFrom returns all valid next states from a given state
func ValidTransitionsFrom(status models.TableStatus) []models.TableStatus {
	var nexts []models.TableStatus
	for _, t := range validTransitions {
		if t.From == status {
			nexts = append(nexts, t.To)
		}
	}
	return nexts
}

// CanTransition checks if a table may move from one status to another
func CanTransition(from, to models.TableStatus) error {
	if from == to {
		return nil
	}
	if transitionMap[Transition{From: from, To: to}] {
		return nil
	}
	return invalidf("invalid table status change: %s → %s. Valid changes from %s are: %s",
		from, to, from, describeValidFrom(from))
}

func describeValidFrom(status models.TableStatus) string {
	nexts := ValidTransitionsFrom(status)
	if len(nexts) == 0 {
		return "none"
	}
	result := ""
	for i, s := range nexts {
		if i > 0 {
			result += ", "
		}
		result += string(s)
	}
	return result
}

// AllTransitions returns the full transition table for documentation
func AllTransitions() []Transition {
	return validTransitions
}
