package integration

import (
	"bytes"
	"context"
	"net/http"
	"sync"
	"testing"

	"esign-webhook-gateway/internal/core/domain"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestConcurrentRedeliveries fires 50 concurrent deliveries of the same
// envelope and verifies they converge onto a single contract row, the
// invariant the upsert key exists to guarantee.
func TestConcurrentRedeliveries(t *testing.T) {
	workspaceID := uuid.New()
	cpf := "12345678900"
	app := newTestApp(t, domain.Client{
		ID: uuid.New(), WorkspaceID: workspaceID, Name: "João da Silva", CPF: &cpf,
	})
	app.profileRepo.add("advogado@firma.com", workspaceID)

	const deliveries = 50
	payload := []byte(signedPayload(42, "T1", "S1"))

	var wg sync.WaitGroup
	statuses := make(chan int, deliveries)

	for i := 0; i < deliveries; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			resp, err := http.Post(app.server.URL+"/webhooks/zapsign", "application/json", bytes.NewReader(payload))
			if err != nil {
				statuses <- 0
				return
			}
			resp.Body.Close()
			statuses <- resp.StatusCode
		}()
	}
	wg.Wait()
	close(statuses)

	for code := range statuses {
		assert.Equal(t, http.StatusOK, code)
	}

	// One contract, one signer, every delivery logged terminally.
	assert.Equal(t, 1, app.contractRepo.count())

	contract, err := app.contractRepo.GetByOpenID(context.Background(), workspaceID, 42)
	require.NoError(t, err)
	signers, err := app.signerRepo.ListByContract(context.Background(), contract.ID)
	require.NoError(t, err)
	assert.Len(t, signers, 1)

	logs := app.logRepo.all()
	assert.Len(t, logs, deliveries)
	for _, entry := range logs {
		assert.True(t, entry.Status.IsTerminal())
	}
}
