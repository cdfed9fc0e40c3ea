package impl

import (
	"context"

	"pernoite/internal/domain/entity"
	"pernoite/internal/domain/repository"

	"github.com/google/uuid"
	"github.com/pkg/errors"
)

// audience is the raw candidate set resolved from a targeting descriptor,
// before preference filtering. Guest tokens are kept apart because they have
// no preference row and bypass the filter.
type audience struct {
	recipients  []*entity.Recipient
	guestTokens []*entity.PushToken
}

// empty reports whether targeting matched nobody at all.
func (a *audience) empty() bool {
	return len(a.recipients) == 0 && len(a.guestTokens) == 0
}

// targetingResolver turns a targeting descriptor into the candidate set of
// recipients. Read-only; an empty result is not an error.
type targetingResolver struct {
	recipientRepo repository.RecipientRepository
	tokenRepo     repository.TokenRepository
}

func newTargetingResolver(recipientRepo repository.RecipientRepository, tokenRepo repository.TokenRepository) *targetingResolver {
	return &targetingResolver{
		recipientRepo: recipientRepo,
		tokenRepo:     tokenRepo,
	}
}

// resolve executes exactly one targeting branch, in strict priority order.
func (r *targetingResolver) resolve(ctx context.Context, targeting entity.Targeting) (*audience, error) {
	var (
		recipients []*entity.Recipient
		guests     []*entity.PushToken
		err        error
	)

	switch targeting.Kind {
	case entity.TargetingUsers:
		recipients, err = r.recipientRepo.FindRecipientsByIDs(ctx, targeting.UserIDs)
	case entity.TargetingRole:
		recipients, err = r.recipientRepo.FindRecipientsByRole(ctx, targeting.Role)
	case entity.TargetingMotel:
		recipients, err = r.recipientRepo.FindRecipientsByMotelFavorites(ctx, *targeting.MotelID)
	case entity.TargetingBroadcast:
		recipients, err = r.recipientRepo.FindAllRecipients(ctx)
		if err == nil && targeting.IncludeGuests {
			guests, err = r.tokenRepo.FindActiveGuestTokens(ctx)
		}
	default:
		return nil, errors.Errorf("unknown targeting kind: %q", targeting.Kind)
	}
	if err != nil {
		return nil, errors.Wrap(err, "failed to resolve targeting")
	}

	return &audience{
		recipients:  dedupeRecipients(recipients),
		guestTokens: guests,
	}, nil
}

// dedupeRecipients drops repeated user IDs while preserving order. Explicit
// id lists and favorite joins can both produce duplicates.
func dedupeRecipients(recipients []*entity.Recipient) []*entity.Recipient {
	seen := make(map[uuid.UUID]struct{}, len(recipients))
	out := make([]*entity.Recipient, 0, len(recipients))
	for _, rec := range recipients {
		if _, ok := seen[rec.UserID]; ok {
			continue
		}
		seen[rec.UserID] = struct{}{}
		out = append(out, rec)
	}

	return out
}
