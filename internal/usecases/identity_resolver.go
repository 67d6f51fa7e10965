package usecases

import (
	"context"
	"errors"

	"mise.backend/internal/domain/entities"
	domainerrors "mise.backend/internal/domain/errors"
	"mise.backend/internal/domain/repositories"
)

// IdentityResolver maps an authenticated caller to their talent profile
type IdentityResolver struct {
	talentRepo repositories.TalentRepository
}

// NewIdentityResolver creates a new identity resolver
func NewIdentityResolver(talentRepo repositories.TalentRepository) *IdentityResolver {
	return &IdentityResolver{talentRepo: talentRepo}
}

// Resolve returns the talent owning identity. Mutations use it: a missing identity
// is Unauthenticated and a missing profile is NotFound.
func (r *IdentityResolver) Resolve(ctx context.Context, identity *entities.Identity) (*entities.Talent, error) {
	if identity == nil || identity.TokenIdentifier == "" {
		return nil, domainerrors.Unauthorized("not authenticated")
	}
	talent, err := r.talentRepo.GetByTokenIdentifier(ctx, identity.TokenIdentifier)
	if err != nil {
		if errors.Is(err, domainerrors.ErrNotFound) {
			return nil, domainerrors.NotFound("talent profile not found")
		}
		return nil, err
	}
	return talent, nil
}

// ResolveOptional is Resolve for best-effort reads: both failure cases yield a nil
// talent and no error.
func (r *IdentityResolver) ResolveOptional(ctx context.Context, identity *entities.Identity) (*entities.Talent, error) {
	talent, err := r.Resolve(ctx, identity)
	if err != nil {
		if errors.Is(err, domainerrors.ErrUnauthorized) || errors.Is(err, domainerrors.ErrNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return talent, nil
}
