package pricing

// Resolve picks the rule that governs profile: administrator, then custom role, then
// standard user, then the default rule. Each step scans the whole ordered set and the first
// matching rule wins. A nil rule with a nil error means no rule applies and booking is free.
func Resolve(profile RoleProfile, rules []Rule) (*Rule, error) {
	if err := checkSingleDefault(rules); err != nil {
		return nil, err
	}

	for _, tag := range profile.Candidates() {
		for i := range rules {
			if rules[i].AppliesTo(tag) {
				r := rules[i]
				return &r, nil
			}
		}
	}

	for i := range rules {
		if rules[i].IsDefault() {
			r := rules[i]
			return &r, nil
		}
	}
	return nil, nil
}
