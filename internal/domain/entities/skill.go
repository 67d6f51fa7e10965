package entities

import (
	"time"

	"github.com/google/uuid"
)

// SkillCategory groups skills by side of house
type SkillCategory string

const (
	SkillCategoryBOH     SkillCategory = "BOH"
	SkillCategoryFOH     SkillCategory = "FOH"
	SkillCategoryGeneral SkillCategory = "General"
)

var bohSkills = map[string]struct{}{
	"Knife skills": {}, "Sauté": {}, "Grill": {}, "Garde manger": {}, "Sushi/sashimi": {},
	"Wok": {}, "Pasta": {}, "BBQ": {}, "Baking": {}, "Pizza": {}, "Prep": {}, "Wood fire": {},
	"Recipe following": {}, "Recipe writing": {},
}

var fohSkills = map[string]struct{}{
	"Wine knowledge": {}, "Cocktail knowledge": {}, "Beer knowledge": {},
	"Food knowledge": {}, "Coffee skills": {}, "Can carry up to 4 plates": {},
	"POS Toast": {}, "Square": {}, "TouchBistro": {}, "Clover": {}, "Dinerware": {}, "Revel": {},
}

// CategorizeSkill returns the category a newly created skill is filed under.
func CategorizeSkill(name string) SkillCategory {
	if _, ok := bohSkills[name]; ok {
		return SkillCategoryBOH
	}
	if _, ok := fohSkills[name]; ok {
		return SkillCategoryFOH
	}
	return SkillCategoryGeneral
}

// Skill is a named capability. Names are unique.
type Skill struct {
	ID        uuid.UUID     `json:"id"`
	Name      string        `json:"name"`
	Category  SkillCategory `json:"category"`
	CreatedAt time.Time     `json:"-"`
}
