package service

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"esign-webhook-gateway/internal/core/domain"
	"esign-webhook-gateway/internal/core/ports"
	"esign-webhook-gateway/pkg/apperror"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
)

const webhookActor = "zapsign:webhook"

// WebhookServiceImpl implements ports.WebhookService: the five-stage
// ingestion pipeline for one provider delivery. Stages run sequentially
// because each depends on the previous one's writes; cross-delivery
// concurrency is handled entirely by the upsert keys, not by locking.
type WebhookServiceImpl struct {
	logRepo      ports.WebhookLogRepository
	profileRepo  ports.ProfileRepository
	contractRepo ports.ContractRepository
	signerRepo   ports.SignerRepository
	historyRepo  ports.HistoryRepository
	matcher      ports.ClientMatcher
	wsCache      ports.WorkspaceCache // nil = caching disabled
	cacheTTL     time.Duration
	log          zerolog.Logger
}

// NewWebhookService creates a new WebhookServiceImpl.
func NewWebhookService(
	logRepo ports.WebhookLogRepository,
	profileRepo ports.ProfileRepository,
	contractRepo ports.ContractRepository,
	signerRepo ports.SignerRepository,
	historyRepo ports.HistoryRepository,
	matcher ports.ClientMatcher,
	wsCache ports.WorkspaceCache,
	cacheTTL time.Duration,
	log zerolog.Logger,
) *WebhookServiceImpl {
	return &WebhookServiceImpl{
		logRepo:      logRepo,
		profileRepo:  profileRepo,
		contractRepo: contractRepo,
		signerRepo:   signerRepo,
		historyRepo:  historyRepo,
		matcher:      matcher,
		wsCache:      wsCache,
		cacheTTL:     cacheTTL,
		log:          log,
	}
}

// ProcessEvent handles one inbound delivery. The delivery log entry is
// created before any business logic and always driven to a terminal status
// (processed or error) before returning, so no entry is left stalled at
// received/processing whatever the outcome of stages 2-5.
func (s *WebhookServiceImpl) ProcessEvent(ctx context.Context, event *ports.WebhookEvent, meta domain.RequestMeta) (*ports.EventResult, error) {
	// Stage 1: durable delivery log, best-effort. Losing this write costs
	// audit traceability, not the delivery itself.
	entry := s.appendDeliveryLog(ctx, event, meta)

	result, err := s.process(ctx, event, entry)

	// Stage 5b: finalize the log entry regardless of outcome.
	s.finalize(ctx, entry, result, err)

	if err != nil {
		return nil, err
	}
	return result, nil
}

func (s *WebhookServiceImpl) process(ctx context.Context, event *ports.WebhookEvent, entry *domain.WebhookLogEntry) (*ports.EventResult, error) {
	if entry != nil {
		if err := s.logRepo.MarkProcessing(ctx, entry.ID); err != nil {
			s.log.Warn().Err(err).Str("log_id", entry.ID.String()).Msg("failed to advance webhook log to processing")
		}
	}

	// Stage 2: tenant resolution. The creator email is the pipeline's single
	// authorization boundary; without a workspace nothing is written.
	workspaceID, err := s.resolveWorkspace(ctx, event.CreatedByEmail)
	if err != nil {
		return nil, apperror.InternalError(fmt.Errorf("resolve workspace: %w", err))
	}
	if workspaceID == nil {
		return nil, apperror.ErrWorkspaceNotResolved()
	}

	// Stage 3: contract upsert keyed by (workspace, open_id).
	contract, err := s.contractRepo.Upsert(ctx, buildContract(event, *workspaceID))
	if err != nil {
		return nil, apperror.InternalError(fmt.Errorf("upsert contract: %w", err))
	}

	// Stage 3b: signer upserts, one by one. A malformed or failing signer is
	// recorded and skipped; signer completeness is best-effort relative to
	// the contract row itself.
	signerResults, primary := s.upsertSigners(ctx, event, contract)

	// Stage 4: client identity matching via the primary (first) signer.
	match, err := s.matchClient(ctx, contract, primary)
	if err != nil {
		return nil, err
	}

	// Stage 5: audit trail. Runs whether or not a match was found; a
	// failure here fails the delivery so the provider redelivers.
	if err := s.appendHistory(ctx, contract, event); err != nil {
		return nil, apperror.InternalError(fmt.Errorf("append contract history: %w", err))
	}

	return &ports.EventResult{
		ContractID:    contract.ID,
		WorkspaceID:   *workspaceID,
		ClientMatched: match != nil,
		Match:         match,
		Signers:       signerResults,
	}, nil
}

// appendDeliveryLog creates the stage-1 log entry. Returns nil when the
// write fails; processing continues without audit traceability.
func (s *WebhookServiceImpl) appendDeliveryLog(ctx context.Context, event *ports.WebhookEvent, meta domain.RequestMeta) *domain.WebhookLogEntry {
	attempt := 1
	if prior, err := s.logRepo.CountByOpenID(ctx, event.OpenID); err != nil {
		s.log.Warn().Err(err).Int64("open_id", event.OpenID).Msg("failed to count prior deliveries")
	} else {
		attempt = prior + 1
	}

	entry := &domain.WebhookLogEntry{
		ID:            uuid.New(),
		EventType:     event.EventType,
		ZapSignOpenID: event.OpenID,
		ZapSignToken:  event.Token,
		RawPayload:    event.RawPayload,
		Status:        domain.WebhookLogStatusReceived,
		Attempt:       attempt,
		RequestURL:    meta.URL,
		UserAgent:     meta.UserAgent,
		SourceIP:      meta.SourceIP,
		Headers:       meta.Headers,
		ReceivedAt:    time.Now().UTC(),
	}

	if err := s.logRepo.Create(ctx, entry); err != nil {
		s.log.Warn().Err(err).Int64("open_id", event.OpenID).Msg("failed to persist webhook delivery log")
		return nil
	}
	return entry
}

// resolveWorkspace maps the creator email to its active workspace, fronted
// by the Redis cache when available. Cache errors are misses.
func (s *WebhookServiceImpl) resolveWorkspace(ctx context.Context, email string) (*uuid.UUID, error) {
	if email == "" {
		return nil, nil
	}

	if s.wsCache != nil {
		cached, err := s.wsCache.Get(ctx, email)
		if err != nil {
			s.log.Warn().Err(err).Msg("workspace cache read failed, falling through to database")
		}
		if cached != nil {
			return cached, nil
		}
	}

	workspaceID, err := s.profileRepo.ActiveWorkspaceByEmail(ctx, email)
	if err != nil {
		return nil, err
	}
	if workspaceID == nil {
		return nil, nil
	}

	if s.wsCache != nil {
		if err := s.wsCache.Set(ctx, email, *workspaceID, s.cacheTTL); err != nil {
			s.log.Warn().Err(err).Msg("workspace cache write failed")
		}
	}
	return workspaceID, nil
}

// upsertSigners persists every signer in the payload, collecting a tagged
// result per signer. The primary signer (first in the payload) is returned
// for identity matching even if its upsert failed; matching works off
// payload data, not the stored row.
func (s *WebhookServiceImpl) upsertSigners(ctx context.Context, event *ports.WebhookEvent, contract *domain.Contract) ([]ports.SignerResult, *domain.ContractSigner) {
	results := make([]ports.SignerResult, 0, len(event.Signers))
	var primary *domain.ContractSigner

	for i, ws := range event.Signers {
		signer := buildSigner(ws, contract)
		if i == 0 {
			primary = signer
		}

		if ws.Token == "" {
			err := fmt.Errorf("signer %q has no token", ws.Name)
			s.log.Warn().Err(err).Str("contract_id", contract.ID.String()).Msg("skipping malformed signer")
			results = append(results, ports.SignerResult{Token: ws.Token, Err: err})
			continue
		}

		stored, err := s.signerRepo.Upsert(ctx, signer)
		if err != nil {
			s.log.Warn().Err(err).Str("signer_token", ws.Token).Msg("signer upsert failed, continuing")
			results = append(results, ports.SignerResult{Token: ws.Token, Err: err})
			continue
		}
		results = append(results, ports.SignerResult{Token: ws.Token, Signer: stored})
	}

	return results, primary
}

// matchClient runs stage 4 and writes a found match back onto the contract.
// No match is the expected non-error outcome; only the writeback itself can
// fail the delivery.
func (s *WebhookServiceImpl) matchClient(ctx context.Context, contract *domain.Contract, primary *domain.ContractSigner) (*domain.ClientMatch, error) {
	if primary == nil {
		return nil, nil
	}

	match, err := s.matcher.Match(ctx, contract.WorkspaceID, primary)
	if err != nil {
		s.log.Warn().Err(err).Str("contract_id", contract.ID.String()).Msg("client matching failed, leaving contract unlinked")
		return nil, nil
	}
	if match == nil {
		return nil, nil
	}

	if err := s.contractRepo.SetClientMatch(ctx, contract.ID, match); err != nil {
		return nil, apperror.InternalError(fmt.Errorf("write client match: %w", err))
	}

	contract.ClientID = &match.ClientID
	contract.MatchedBy = &match.Source
	contract.MatchingConfidence = &match.Confidence
	return match, nil
}

func (s *WebhookServiceImpl) appendHistory(ctx context.Context, contract *domain.Contract, event *ports.WebhookEvent) error {
	historyEvent := domain.HistoryEventUpdated
	description := "Contract updated via ZapSign webhook"
	if contract.Status == domain.ContractStatusSigned {
		historyEvent = domain.HistoryEventSigned
		description = "Contract signed via ZapSign webhook"
	}

	newValues, err := json.Marshal(contract)
	if err != nil {
		return fmt.Errorf("marshal contract snapshot: %w", err)
	}

	return s.historyRepo.Create(ctx, &domain.ContractHistory{
		ID:          uuid.New(),
		ContractID:  contract.ID,
		WorkspaceID: contract.WorkspaceID,
		Event:       historyEvent,
		Description: description,
		NewValues:   newValues,
		Actor:       webhookActor,
		CreatedAt:   time.Now().UTC(),
	})
}

// finalize drives the delivery log entry to its terminal status. History is
// delivery-counted and the log is the retry ground truth, so this runs on
// every path, success or failure.
func (s *WebhookServiceImpl) finalize(ctx context.Context, entry *domain.WebhookLogEntry, result *ports.EventResult, procErr error) {
	if entry == nil {
		return
	}

	if procErr != nil {
		if err := s.logRepo.MarkFailed(ctx, entry.ID, procErr.Error()); err != nil {
			s.log.Warn().Err(err).Str("log_id", entry.ID.String()).Msg("failed to finalize webhook log as error")
		}
		return
	}

	summary, err := json.Marshal(map[string]any{
		"contract_id":    result.ContractID,
		"client_matched": result.ClientMatched,
	})
	if err != nil {
		s.log.Warn().Err(err).Msg("failed to marshal processed summary")
	}
	if err := s.logRepo.MarkProcessed(ctx, entry.ID, summary); err != nil {
		s.log.Warn().Err(err).Str("log_id", entry.ID.String()).Msg("failed to finalize webhook log as processed")
	}
}

// buildContract maps the payload onto a contract row for upsert.
func buildContract(event *ports.WebhookEvent, workspaceID uuid.UUID) *domain.Contract {
	return &domain.Contract{
		ID:                uuid.New(),
		WorkspaceID:       workspaceID,
		ZapSignOpenID:     event.OpenID,
		ZapSignToken:      event.Token,
		Name:              event.Name,
		Status:            mapContractStatus(event.Status),
		OriginalFileURL:   event.OriginalFile,
		SignedFileURL:     event.SignedFile,
		CreatedByEmail:    event.CreatedByEmail,
		Metadata:          event.ExtraInfo,
		ProviderCreatedAt: parseTime(event.CreatedAt),
		ProviderUpdatedAt: parseTime(event.UpdatedAt),
		SignedAt:          parseTime(event.SignedAt),
	}
}

// buildSigner maps one payload signer onto a signer row.
func buildSigner(ws ports.WebhookSigner, contract *domain.Contract) *domain.ContractSigner {
	return &domain.ContractSigner{
		ID:           uuid.New(),
		ContractID:   contract.ID,
		WorkspaceID:  contract.WorkspaceID,
		ZapSignToken: ws.Token,
		ExternalID:   ws.ExternalID,
		Name:         ws.Name,
		Email:        ws.Email,
		PhoneCountry: ws.PhoneCountry,
		Phone:        ws.Phone,
		CPF:          ws.CPF,
		CNPJ:         ws.CNPJ,
		Status:       mapSignerStatus(ws.Status),
		SignURL:      ws.SignURL,
		TimesViewed:  ws.TimesViewed,
		LastViewAt:   parseTime(ws.LastViewAt),
		SignedAt:     parseTime(ws.SignedAt),
		IPAddress:    ws.IPAddress,
		GeoLatitude:  ws.GeoLatitude,
		GeoLongitude: ws.GeoLongitude,
	}
}

func mapContractStatus(status string) domain.ContractStatus {
	switch status {
	case "signed":
		return domain.ContractStatusSigned
	case "refused", "rejected":
		return domain.ContractStatusRejected
	case "expired":
		return domain.ContractStatusExpired
	default:
		return domain.ContractStatusPending
	}
}

func mapSignerStatus(status string) domain.SignerStatus {
	switch status {
	case "signed":
		return domain.SignerStatusSigned
	case "refused", "rejected":
		return domain.SignerStatusRejected
	default:
		return domain.SignerStatusPending
	}
}

// parseTime accepts the provider's timestamp formats; nil on absence or
// anything unparseable.
func parseTime(value *string) *time.Time {
	if value == nil || *value == "" {
		return nil
	}
	for _, layout := range []string{time.RFC3339Nano, time.RFC3339, "2006-01-02 15:04:05"} {
		if t, err := time.Parse(layout, *value); err == nil {
			utc := t.UTC()
			return &utc
		}
	}
	return nil
}
