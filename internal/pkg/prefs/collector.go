package prefs

// Step identifies one onboarding screen. Steps are independent: any step may be
// skipped, and revisiting an earlier step never clears later answers.
type Step int

const (
	StepAgeRange Step = iota
	StepRelationshipStatus
	StepBudget
	StepCuisines
	StepTransportation
	StepHobbies
)

// Minimum set sizes before the client may advance past a set-valued step.
// These are UI gates only; Complete never enforces them.
const (
	MinCuisines       = 3
	MinHobbies        = 3
	MinTransportation = 1
)

// Selection is the accumulated onboarding record. Nil/empty fields mean the
// step was skipped; partial selections are valid.
type Selection struct {
	AgeRange           *AgeBracket
	RelationshipStatus *RelationshipStatus
	Budget             *BudgetTier
	Cuisines           []Cuisine
	Transportation     []Transportation
	Hobbies            []Hobby
}

// Collector accumulates answers across the onboarding steps. It is plain
// in-memory state with no failure modes.
type Collector struct {
	sel Selection
}

func NewCollector() *Collector { return &Collector{} }

// SelectValue records an answer for a step. Single-valued steps overwrite;
// set-valued steps toggle membership.
func (c *Collector) SelectValue(step Step, value string) {
	switch step {
	case StepAgeRange:
		v := AgeBracket(value)
		c.sel.AgeRange = &v
	case StepRelationshipStatus:
		v := RelationshipStatus(value)
		c.sel.RelationshipStatus = &v
	case StepBudget:
		v := BudgetTier(value)
		c.sel.Budget = &v
	case StepCuisines:
		c.sel.Cuisines = toggle(c.sel.Cuisines, Cuisine(value))
	case StepTransportation:
		c.sel.Transportation = toggle(c.sel.Transportation, Transportation(value))
	case StepHobbies:
		c.sel.Hobbies = toggle(c.sel.Hobbies, Hobby(value))
	}
}

// CanAdvance reports whether the client may move past a step. Single-valued
// steps are always skippable; set-valued steps require their minimum size.
func (c *Collector) CanAdvance(step Step) bool {
	switch step {
	case StepCuisines:
		return len(c.sel.Cuisines) >= MinCuisines
	case StepHobbies:
		return len(c.sel.Hobbies) >= MinHobbies
	case StepTransportation:
		return len(c.sel.Transportation) >= MinTransportation
	default:
		return true
	}
}

// Complete emits the accumulated record. Unanswered steps stay unset.
func (c *Collector) Complete() Selection { return c.sel }

func toggle[T comparable](set []T, v T) []T {
	for i, existing := range set {
		if existing == v {
			return append(set[:i], set[i+1:]...)
		}
	}
	return append(set, v)
}
