package mxe

import (
	"context"
	"encoding/base64"
	"fmt"

	"github.com/gagliardetto/solana-go"
	"github.com/gorilla/websocket"
)

// Message types for the gateway protocol.
const (
	msgMXEPublicKey = "mxe_public_key"
)

type keyRequest struct {
	Type      string `json:"type"`
	ProgramID string `json:"program_id"`
}

type keyResponse struct {
	Type  string `json:"type"`
	Key   string `json:"key,omitempty"` // base64
	Error string `json:"error,omitempty"`
}

// WebsocketKeySource asks an MXE gateway for the cluster public key over a
// websocket. Each call dials a fresh connection; the fetcher owns retries.
type WebsocketKeySource struct {
	URL    string
	Dialer *websocket.Dialer
}

// NewWebsocketKeySource builds a source for the given gateway URL.
func NewWebsocketKeySource(url string) *WebsocketKeySource {
	return &WebsocketKeySource{URL: url, Dialer: websocket.DefaultDialer}
}

// MXEPublicKey performs one request/response exchange with the gateway.
func (s *WebsocketKeySource) MXEPublicKey(ctx context.Context, programID solana.PublicKey) ([]byte, error) {
	conn, _, err := s.Dialer.DialContext(ctx, s.URL, nil)
	if err != nil {
		return nil, fmt.Errorf("dialing MXE gateway: %w", err)
	}
	defer conn.Close()

	req := keyRequest{Type: msgMXEPublicKey, ProgramID: programID.String()}
	if err := conn.WriteJSON(req); err != nil {
		return nil, fmt.Errorf("sending key request: %w", err)
	}

	var resp keyResponse
	if err := conn.ReadJSON(&resp); err != nil {
		return nil, fmt.Errorf("reading key response: %w", err)
	}
	if resp.Error != "" {
		return nil, fmt.Errorf("gateway error: %s", resp.Error)
	}
	if resp.Type != msgMXEPublicKey {
		return nil, fmt.Errorf("unexpected response type %q", resp.Type)
	}

	key, err := base64.StdEncoding.DecodeString(resp.Key)
	if err != nil {
		return nil, fmt.Errorf("decoding key: %w", err)
	}
	return key, nil
}
