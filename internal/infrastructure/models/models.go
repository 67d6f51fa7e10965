package models

// All lists every persisted model in migration order.
func All() []interface{} {
	return []interface{}{
		&Talent{},
		&Skill{},
		&TalentSkill{},
		&TalentLanguage{},
		&Team{},
		&TeamMember{},
		&JobPosting{},
		&Application{},
		&Match{},
		&PredefinedOption{},
	}
}
