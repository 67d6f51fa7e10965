// Package matching scores how well a talent fits a job posting and filters
// talent and postings against search criteria.
package matching

import (
	"sort"

	"github.com/google/uuid"
	"mise.backend/internal/domain/entities"
)

// Default criterion weights. They sum to MaxScore.
const (
	defaultPositionWeight     = 30
	defaultServiceStyleWeight = 20
	defaultLocationWeight     = 20
	defaultAvailabilityWeight = 15
	defaultCompensationWeight = 15

	MaxScore = 100
)

// Weights holds the points awarded per satisfied criterion.
type Weights struct {
	Position     int
	ServiceStyle int
	Location     int
	Availability int
	Compensation int
}

// DefaultWeights returns the standard weighting.
func DefaultWeights() Weights {
	return Weights{
		Position:     defaultPositionWeight,
		ServiceStyle: defaultServiceStyleWeight,
		Location:     defaultLocationWeight,
		Availability: defaultAvailabilityWeight,
		Compensation: defaultCompensationWeight,
	}
}

// Option configures a Scorer.
type Option func(*Scorer)

// WithWeights replaces the criterion weights. Negative weights are ignored.
func WithWeights(w Weights) Option {
	return func(s *Scorer) {
		if w.Position >= 0 && w.ServiceStyle >= 0 && w.Location >= 0 &&
			w.Availability >= 0 && w.Compensation >= 0 {
			s.weights = w
		}
	}
}

// Scorer computes compatibility scores. The score only ranks results and is
// never stored.
type Scorer struct {
	weights Weights
}

// NewScorer creates a scorer with the default weights unless overridden.
func NewScorer(opts ...Option) *Scorer {
	s := &Scorer{weights: DefaultWeights()}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Breakdown lists which criteria a talent satisfied for a posting.
type Breakdown struct {
	Position     bool
	ServiceStyle bool
	Location     bool
	Availability bool
	Compensation bool
}

// Evaluate checks each criterion. team may be nil, in which case location
// never matches.
func Evaluate(talent *entities.Talent, posting *entities.JobPosting, team *entities.Team) Breakdown {
	b := Breakdown{
		Position:     talent.HasPosition(posting.SpecificPosition),
		ServiceStyle: talent.HasServiceStyle(posting.ServiceStyle),
		Availability: talent.Availability.Overlaps(posting.Shifts),
	}
	if team != nil {
		b.Location = talent.InterestedWorkingArea == team.Location
	}
	rate := talent.DesiredRate(posting.CompensationType)
	if rate.Valid && rate.Float64 > 0 {
		b.Compensation = posting.CompensationRange.Contains(rate.Float64)
	}
	return b
}

// Score returns the weighted total for talent on posting.
func (s *Scorer) Score(talent *entities.Talent, posting *entities.JobPosting, team *entities.Team) int {
	b := Evaluate(talent, posting, team)
	score := 0
	if b.Position {
		score += s.weights.Position
	}
	if b.ServiceStyle {
		score += s.weights.ServiceStyle
	}
	if b.Location {
		score += s.weights.Location
	}
	if b.Availability {
		score += s.weights.Availability
	}
	if b.Compensation {
		score += s.weights.Compensation
	}
	return score
}

// RankByScore sorts results by match score, highest first, keeping the input
// order among equal scores.
func RankByScore(results []entities.JobSearchResult) {
	sort.SliceStable(results, func(i, j int) bool {
		return results[i].MatchScore > results[j].MatchScore
	})
}

// TalentCriteria selects talent for applicant search. Zero fields are ignored.
// When SkillIDs is non-nil a talent must hold at least one of them.
type TalentCriteria struct {
	Position        string
	Location        string
	ExperienceLevel string
	ServiceStyle    string
	Availability    entities.DayShift
	SkillIDs        map[uuid.UUID]struct{}
	TalentSkills    map[uuid.UUID][]uuid.UUID
}

// Accept reports whether t satisfies every set criterion.
func (c TalentCriteria) Accept(t *entities.Talent) bool {
	if c.Position != "" && !t.HasPosition(c.Position) {
		return false
	}
	if c.Location != "" && t.InterestedWorkingArea != c.Location {
		return false
	}
	if c.ExperienceLevel != "" && t.ExperienceLevel != c.ExperienceLevel {
		return false
	}
	if c.ServiceStyle != "" && !t.HasServiceStyle(c.ServiceStyle) {
		return false
	}
	if !c.Availability.IsZero() && !t.Availability.Has(c.Availability.Day, c.Availability.Shift) {
		return false
	}
	if c.SkillIDs != nil {
		held := false
		for _, id := range c.TalentSkills[t.ID] {
			if _, ok := c.SkillIDs[id]; ok {
				held = true
				break
			}
		}
		if !held {
			return false
		}
	}
	return true
}

// PostingCriteria selects postings for job search. Zero fields are ignored.
// When SkillIDs is non-nil a posting must require at least one of them.
type PostingCriteria struct {
	PositionType     entities.PositionType
	SpecificPosition string
	ServiceStyle     string
	CompensationType entities.CompensationType
	// CompensationMin keeps postings whose max reaches it.
	CompensationMin *float64
	// CompensationMax keeps postings whose min does not exceed it.
	CompensationMax *float64
	Availability    entities.DayShift
	SkillIDs        []uuid.UUID
}

// Accept reports whether p satisfies every set criterion.
func (c PostingCriteria) Accept(p *entities.JobPosting) bool {
	if c.PositionType != "" && p.PositionType != c.PositionType {
		return false
	}
	if c.SpecificPosition != "" && p.SpecificPosition != c.SpecificPosition {
		return false
	}
	if c.ServiceStyle != "" && p.ServiceStyle != c.ServiceStyle {
		return false
	}
	if c.CompensationType != "" && p.CompensationType != c.CompensationType {
		return false
	}
	if c.CompensationMin != nil && p.CompensationRange.Max < *c.CompensationMin {
		return false
	}
	if c.CompensationMax != nil && p.CompensationRange.Min > *c.CompensationMax {
		return false
	}
	if !c.Availability.IsZero() && !p.Shifts.Has(c.Availability.Day, c.Availability.Shift) {
		return false
	}
	if c.SkillIDs != nil && !p.RequiresAnySkill(c.SkillIDs) {
		return false
	}
	return true
}
