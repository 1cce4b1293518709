package domain

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

func TestContractStatus_IsTerminal(t *testing.T) {
	assert.False(t, ContractStatusPending.IsTerminal())
	assert.True(t, ContractStatusSigned.IsTerminal())
	assert.True(t, ContractStatusRejected.IsTerminal())
	assert.True(t, ContractStatusExpired.IsTerminal())
}

func TestWebhookLogStatus_IsTerminal(t *testing.T) {
	assert.False(t, WebhookLogStatusReceived.IsTerminal())
	assert.False(t, WebhookLogStatusProcessing.IsTerminal())
	assert.True(t, WebhookLogStatusProcessed.IsTerminal())
	assert.True(t, WebhookLogStatusError.IsTerminal())
}

func TestContract_Linked(t *testing.T) {
	c := &Contract{}
	assert.False(t, c.Linked())

	id := uuid.New()
	c.ClientID = &id
	assert.True(t, c.Linked())
}

func TestContractSigner_Document(t *testing.T) {
	s := &ContractSigner{}
	assert.Equal(t, "", s.Document())

	cnpj := "12345678000190"
	s.CNPJ = &cnpj
	assert.Equal(t, cnpj, s.Document())

	// CPF takes precedence over CNPJ when both are present.
	cpf := "12345678901"
	s.CPF = &cpf
	assert.Equal(t, cpf, s.Document())

	empty := ""
	s.CPF = &empty
	assert.Equal(t, cnpj, s.Document())
}
