package integration

import (
	"context"
	"fmt"
	"strings"
	"sync"
	"time"

	"esign-webhook-gateway/internal/core/domain"

	"github.com/google/uuid"
)

// --- In-Memory Webhook Log Repo ---

type inMemoryWebhookLogRepo struct {
	mu      sync.RWMutex
	entries map[uuid.UUID]*domain.WebhookLogEntry
}

func newInMemoryWebhookLogRepo() *inMemoryWebhookLogRepo {
	return &inMemoryWebhookLogRepo{entries: make(map[uuid.UUID]*domain.WebhookLogEntry)}
}

func (r *inMemoryWebhookLogRepo) Create(ctx context.Context, entry *domain.WebhookLogEntry) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	cp := *entry
	r.entries[entry.ID] = &cp
	return nil
}

func (r *inMemoryWebhookLogRepo) MarkProcessing(ctx context.Context, id uuid.UUID) error {
	return r.setStatus(id, domain.WebhookLogStatusProcessing, nil, nil)
}

func (r *inMemoryWebhookLogRepo) MarkProcessed(ctx context.Context, id uuid.UUID, processedPayload []byte) error {
	return r.setStatus(id, domain.WebhookLogStatusProcessed, processedPayload, nil)
}

func (r *inMemoryWebhookLogRepo) MarkFailed(ctx context.Context, id uuid.UUID, errMsg string) error {
	return r.setStatus(id, domain.WebhookLogStatusError, nil, &errMsg)
}

func (r *inMemoryWebhookLogRepo) setStatus(id uuid.UUID, status domain.WebhookLogStatus, payload []byte, errMsg *string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	entry, ok := r.entries[id]
	if !ok {
		return fmt.Errorf("webhook log entry not found")
	}
	entry.Status = status
	if payload != nil {
		entry.ProcessedPayload = payload
	}
	if errMsg != nil {
		entry.ErrorMessage = errMsg
	}
	if status.IsTerminal() {
		now := time.Now().UTC()
		entry.ProcessedAt = &now
	}
	return nil
}

func (r *inMemoryWebhookLogRepo) CountByOpenID(ctx context.Context, openID int64) (int, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	count := 0
	for _, entry := range r.entries {
		if entry.ZapSignOpenID == openID {
			count++
		}
	}
	return count, nil
}

func (r *inMemoryWebhookLogRepo) all() []domain.WebhookLogEntry {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]domain.WebhookLogEntry, 0, len(r.entries))
	for _, entry := range r.entries {
		out = append(out, *entry)
	}
	return out
}

// --- In-Memory Contract Repo ---

type inMemoryContractRepo struct {
	mu        sync.RWMutex
	contracts map[uuid.UUID]*domain.Contract
}

func newInMemoryContractRepo() *inMemoryContractRepo {
	return &inMemoryContractRepo{contracts: make(map[uuid.UUID]*domain.Contract)}
}

// Upsert mirrors the SQL ON CONFLICT semantics: re-delivery for the same
// (workspace, open_id) updates payload fields in place and never touches the
// client-match columns.
func (r *inMemoryContractRepo) Upsert(ctx context.Context, c *domain.Contract) (*domain.Contract, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, existing := range r.contracts {
		if existing.WorkspaceID == c.WorkspaceID && existing.ZapSignOpenID == c.ZapSignOpenID {
			existing.ZapSignToken = c.ZapSignToken
			existing.Name = c.Name
			existing.Status = c.Status
			existing.OriginalFileURL = c.OriginalFileURL
			existing.SignedFileURL = c.SignedFileURL
			existing.CreatedByEmail = c.CreatedByEmail
			existing.Metadata = c.Metadata
			existing.ProviderCreatedAt = c.ProviderCreatedAt
			existing.ProviderUpdatedAt = c.ProviderUpdatedAt
			existing.SignedAt = c.SignedAt
			existing.UpdatedAt = time.Now().UTC()
			cp := *existing
			return &cp, nil
		}
	}
	cp := *c
	cp.CreatedAt = time.Now().UTC()
	cp.UpdatedAt = cp.CreatedAt
	r.contracts[cp.ID] = &cp
	out := cp
	return &out, nil
}

func (r *inMemoryContractRepo) GetByOpenID(ctx context.Context, workspaceID uuid.UUID, openID int64) (*domain.Contract, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	for _, c := range r.contracts {
		if c.WorkspaceID == workspaceID && c.ZapSignOpenID == openID && !c.IsDeleted {
			cp := *c
			return &cp, nil
		}
	}
	return nil, nil
}

func (r *inMemoryContractRepo) SetClientMatch(ctx context.Context, contractID uuid.UUID, match *domain.ClientMatch) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	c, ok := r.contracts[contractID]
	if !ok {
		return fmt.Errorf("contract not found")
	}
	c.ClientID = &match.ClientID
	c.MatchedBy = &match.Source
	c.MatchingConfidence = &match.Confidence
	c.UpdatedAt = time.Now().UTC()
	return nil
}

func (r *inMemoryContractRepo) count() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.contracts)
}

// --- In-Memory Signer Repo ---

type inMemorySignerRepo struct {
	mu      sync.RWMutex
	signers map[string]*domain.ContractSigner // keyed by zapsign token
}

func newInMemorySignerRepo() *inMemorySignerRepo {
	return &inMemorySignerRepo{signers: make(map[string]*domain.ContractSigner)}
}

func (r *inMemorySignerRepo) Upsert(ctx context.Context, s *domain.ContractSigner) (*domain.ContractSigner, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if existing, ok := r.signers[s.ZapSignToken]; ok {
		id := existing.ID
		createdAt := existing.CreatedAt
		cp := *s
		cp.ID = id
		cp.CreatedAt = createdAt
		cp.UpdatedAt = time.Now().UTC()
		r.signers[s.ZapSignToken] = &cp
		out := cp
		return &out, nil
	}
	cp := *s
	cp.CreatedAt = time.Now().UTC()
	cp.UpdatedAt = cp.CreatedAt
	r.signers[s.ZapSignToken] = &cp
	out := cp
	return &out, nil
}

func (r *inMemorySignerRepo) ListByContract(ctx context.Context, contractID uuid.UUID) ([]domain.ContractSigner, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	var out []domain.ContractSigner
	for _, s := range r.signers {
		if s.ContractID == contractID {
			out = append(out, *s)
		}
	}
	return out, nil
}

// --- In-Memory Client Repo ---

type inMemoryClientRepo struct {
	mu      sync.RWMutex
	clients []domain.Client
}

func newInMemoryClientRepo(clients ...domain.Client) *inMemoryClientRepo {
	return &inMemoryClientRepo{clients: clients}
}

func digits(s string) string {
	var b strings.Builder
	for _, r := range s {
		if r >= '0' && r <= '9' {
			b.WriteRune(r)
		}
	}
	return b.String()
}

func (r *inMemoryClientRepo) FindByDocument(ctx context.Context, workspaceID uuid.UUID, document string) (*domain.ClientMatch, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	want := digits(document)
	if want == "" {
		return nil, nil
	}
	for _, c := range r.clients {
		if c.WorkspaceID != workspaceID {
			continue
		}
		if c.CPF != nil && digits(*c.CPF) == want {
			return &domain.ClientMatch{ClientID: c.ID, Source: domain.MatchSourceDocument, Confidence: 0.95}, nil
		}
		if c.CNPJ != nil && digits(*c.CNPJ) == want {
			return &domain.ClientMatch{ClientID: c.ID, Source: domain.MatchSourceDocument, Confidence: 0.95}, nil
		}
	}
	return nil, nil
}

func (r *inMemoryClientRepo) FindByEmail(ctx context.Context, workspaceID uuid.UUID, email string) (*domain.ClientMatch, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	if email == "" {
		return nil, nil
	}
	want := strings.ToLower(email)
	for _, c := range r.clients {
		if c.WorkspaceID != workspaceID || c.Email == nil {
			continue
		}
		if strings.ToLower(*c.Email) == want {
			return &domain.ClientMatch{ClientID: c.ID, Source: domain.MatchSourceEmail, Confidence: 0.80}, nil
		}
	}
	return nil, nil
}

// FindByName approximates the trigram lookup with exact case-insensitive
// equality, which is all the flow tests need.
func (r *inMemoryClientRepo) FindByName(ctx context.Context, workspaceID uuid.UUID, name string) (*domain.ClientMatch, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	if name == "" {
		return nil, nil
	}
	for _, c := range r.clients {
		if c.WorkspaceID != workspaceID {
			continue
		}
		if strings.EqualFold(c.Name, name) {
			return &domain.ClientMatch{ClientID: c.ID, Source: domain.MatchSourceName, Confidence: 0.60}, nil
		}
	}
	return nil, nil
}

// --- In-Memory Profile Repo ---

type inMemoryProfileRepo struct {
	mu       sync.RWMutex
	profiles map[string]uuid.UUID // lowercased email -> active workspace
}

func newInMemoryProfileRepo() *inMemoryProfileRepo {
	return &inMemoryProfileRepo{profiles: make(map[string]uuid.UUID)}
}

func (r *inMemoryProfileRepo) add(email string, workspaceID uuid.UUID) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.profiles[strings.ToLower(email)] = workspaceID
}

func (r *inMemoryProfileRepo) ActiveWorkspaceByEmail(ctx context.Context, email string) (*uuid.UUID, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	id, ok := r.profiles[strings.ToLower(email)]
	if !ok {
		return nil, nil
	}
	return &id, nil
}

// --- In-Memory History Repo ---

type inMemoryHistoryRepo struct {
	mu      sync.RWMutex
	entries []domain.ContractHistory
}

func newInMemoryHistoryRepo() *inMemoryHistoryRepo {
	return &inMemoryHistoryRepo{}
}

func (r *inMemoryHistoryRepo) Create(ctx context.Context, entry *domain.ContractHistory) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.entries = append(r.entries, *entry)
	return nil
}

func (r *inMemoryHistoryRepo) ListByContract(ctx context.Context, contractID uuid.UUID) ([]domain.ContractHistory, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	var out []domain.ContractHistory
	for _, e := range r.entries {
		if e.ContractID == contractID {
			out = append(out, e)
		}
	}
	return out, nil
}
