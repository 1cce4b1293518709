package service

import (
	"context"

	"esign-webhook-gateway/internal/core/domain"
	"esign-webhook-gateway/internal/core/ports"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
)

// MatcherServiceImpl implements ports.ClientMatcher. Strategies run in strict
// priority order (tax document, then email, then name similarity) and the
// first one that returns a candidate wins; later strategies are not tried.
// A strategy lookup error is logged and treated as "no match from this
// strategy", falling through to the next.
type MatcherServiceImpl struct {
	clientRepo ports.ClientRepository
	log        zerolog.Logger
}

// NewMatcherService creates a new MatcherServiceImpl.
func NewMatcherService(clientRepo ports.ClientRepository, log zerolog.Logger) *MatcherServiceImpl {
	return &MatcherServiceImpl{clientRepo: clientRepo, log: log}
}

// Match resolves a signer to an existing CRM client within the workspace.
// Returns nil, nil when no strategy finds a candidate, the expected outcome
// for contracts that need manual linking later.
func (s *MatcherServiceImpl) Match(ctx context.Context, workspaceID uuid.UUID, signer *domain.ContractSigner) (*domain.ClientMatch, error) {
	if signer == nil {
		return nil, nil
	}

	strategies := []struct {
		name string
		run  func() (*domain.ClientMatch, error)
	}{
		{"document", func() (*domain.ClientMatch, error) {
			return s.clientRepo.FindByDocument(ctx, workspaceID, signer.Document())
		}},
		{"email", func() (*domain.ClientMatch, error) {
			if signer.Email == nil {
				return nil, nil
			}
			return s.clientRepo.FindByEmail(ctx, workspaceID, *signer.Email)
		}},
		{"name", func() (*domain.ClientMatch, error) {
			return s.clientRepo.FindByName(ctx, workspaceID, signer.Name)
		}},
	}

	for _, strategy := range strategies {
		match, err := strategy.run()
		if err != nil {
			s.log.Warn().
				Err(err).
				Str("strategy", strategy.name).
				Str("workspace_id", workspaceID.String()).
				Msg("matching strategy failed, trying next")
			continue
		}
		if match != nil {
			s.log.Info().
				Str("strategy", strategy.name).
				Str("client_id", match.ClientID.String()).
				Float64("confidence", match.Confidence).
				Msg("client matched")
			return match, nil
		}
	}

	return nil, nil
}
