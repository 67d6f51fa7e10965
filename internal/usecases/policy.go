package usecases

// LifecyclePolicy holds the configurable application and match lifecycle rules
type LifecyclePolicy struct {
	// AllowReapply reopens a withdrawn or rejected application as pending instead of
	// failing with Conflict.
	AllowReapply bool
	// TalentTerminationCleanup removes the membership when the talent, not only the
	// team, terminates their last active match.
	TalentTerminationCleanup bool
}
