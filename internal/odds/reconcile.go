package odds

// ReconcilePlan is the set of writes that turns the persisted odds of a match
// into the incoming list.
type ReconcilePlan struct {
	Update []Odds
	Insert []Odds
	Delete []int
}

// Empty reports whether the plan performs no writes.
func (p ReconcilePlan) Empty() bool {
	return len(p.Update) == 0 && len(p.Insert) == 0 && len(p.Delete) == 0
}

// PlanReconcile diffs incoming against current using id as the only key.
// Entries with id 0 are inserted, known ids are updated and every current id
// left unmatched is deleted. A non-zero incoming id that is not one of the
// match's odds, or appears twice, is rejected before anything is written.
func PlanReconcile(matchID int, current, incoming []Odds) (ReconcilePlan, error) {
	working := make(map[int]bool, len(current))
	for _, o := range current {
		working[o.ID] = true
	}

	var plan ReconcilePlan
	seen := make(map[int]bool, len(incoming))
	for _, o := range incoming {
		o.MatchID = matchID
		if o.ID == 0 {
			plan.Insert = append(plan.Insert, o)
			continue
		}
		if seen[o.ID] {
			return ReconcilePlan{}, Invalidf("odds %d listed twice", o.ID)
		}
		seen[o.ID] = true
		if !working[o.ID] {
			return ReconcilePlan{}, Invalidf("odds %d does not belong to match %d", o.ID, matchID)
		}
		delete(working, o.ID)
		plan.Update = append(plan.Update, o)
	}

	// keep deletes in current order so runs are reproducible
	for _, o := range current {
		if working[o.ID] {
			plan.Delete = append(plan.Delete, o.ID)
		}
	}
	return plan, nil
}
