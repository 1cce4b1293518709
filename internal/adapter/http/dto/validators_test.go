package dto

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestZapSignEvent_Validate(t *testing.T) {
	tests := []struct {
		name    string
		payload ZapSignEvent
		wantErr bool
	}{
		{"valid", ZapSignEvent{OpenID: 42, Token: "tok"}, false},
		{"missing open_id", ZapSignEvent{Token: "tok"}, true},
		{"negative open_id", ZapSignEvent{OpenID: -1, Token: "tok"}, true},
		{"missing token", ZapSignEvent{OpenID: 42}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.payload.Validate()
			if tt.wantErr {
				assert.NotNil(t, err)
			} else {
				assert.Nil(t, err)
			}
		})
	}
}

func TestZapSignEvent_ToEvent(t *testing.T) {
	raw := []byte(`{
		"event_type": "doc_signed",
		"open_id": 42,
		"token": "doc-tok",
		"status": "signed",
		"name": "Contrato",
		"original_file": {"url": "https://files.example/orig.pdf"},
		"signed_file": {"url": "https://files.example/signed.pdf"},
		"created_by": {"email": "owner@firma.com"},
		"extra_info": {"case": "proc-123"},
		"signers": [{
			"token": "s1",
			"name": "João Silva",
			"email": "joao@example.com",
			"cpf": "123.456.789-00",
			"status": "signed",
			"times_viewed": 3
		}]
	}`)

	var payload ZapSignEvent
	require.NoError(t, json.Unmarshal(raw, &payload))

	event := payload.ToEvent(raw)
	assert.Equal(t, int64(42), event.OpenID)
	assert.Equal(t, "doc-tok", event.Token)
	assert.Equal(t, "owner@firma.com", event.CreatedByEmail)
	require.NotNil(t, event.OriginalFile)
	assert.Equal(t, "https://files.example/orig.pdf", *event.OriginalFile)
	assert.JSONEq(t, `{"case": "proc-123"}`, string(event.ExtraInfo))
	assert.Equal(t, raw, event.RawPayload)

	require.Len(t, event.Signers, 1)
	signer := event.Signers[0]
	assert.Equal(t, "s1", signer.Token)
	require.NotNil(t, signer.CPF)
	assert.Equal(t, "123.456.789-00", *signer.CPF)
	assert.Equal(t, 3, signer.TimesViewed)
}

func TestZapSignEvent_ToEvent_MinimalPayload(t *testing.T) {
	raw := []byte(`{"event_type":"doc_created","open_id":7,"token":"t7"}`)

	var payload ZapSignEvent
	require.NoError(t, json.Unmarshal(raw, &payload))

	event := payload.ToEvent(raw)
	assert.Equal(t, int64(7), event.OpenID)
	assert.Empty(t, event.CreatedByEmail)
	assert.Nil(t, event.OriginalFile)
	assert.Nil(t, event.SignedFile)
	assert.Empty(t, event.Signers)
}
