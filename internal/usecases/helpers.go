package usecases

import (
	"errors"

	"github.com/google/uuid"
	"mise.backend/internal/domain/entities"
	domainerrors "mise.backend/internal/domain/errors"
)

// notFound replaces a bare ErrNotFound with a NotFound carrying message.
func notFound(err error, message string) error {
	if errors.Is(err, domainerrors.ErrNotFound) {
		return domainerrors.NotFound(message)
	}
	return err
}

func indexTeams(teams []*entities.Team) map[uuid.UUID]*entities.Team {
	byID := make(map[uuid.UUID]*entities.Team, len(teams))
	for _, t := range teams {
		byID[t.ID] = t
	}
	return byID
}

func indexPostings(postings []*entities.JobPosting) map[uuid.UUID]*entities.JobPosting {
	byID := make(map[uuid.UUID]*entities.JobPosting, len(postings))
	for _, p := range postings {
		byID[p.ID] = p
	}
	return byID
}

func indexTalent(talent []*entities.Talent) map[uuid.UUID]*entities.Talent {
	byID := make(map[uuid.UUID]*entities.Talent, len(talent))
	for _, t := range talent {
		byID[t.ID] = t
	}
	return byID
}

func indexSkills(skills []*entities.Skill) map[uuid.UUID]entities.Skill {
	byID := make(map[uuid.UUID]entities.Skill, len(skills))
	for _, s := range skills {
		byID[s.ID] = *s
	}
	return byID
}

// uniqueIDs drops duplicate IDs, keeping first occurrence order.
func uniqueIDs(ids []uuid.UUID) []uuid.UUID {
	seen := make(map[uuid.UUID]struct{}, len(ids))
	out := make([]uuid.UUID, 0, len(ids))
	for _, id := range ids {
		if _, dup := seen[id]; dup {
			continue
		}
		seen[id] = struct{}{}
		out = append(out, id)
	}
	return out
}
