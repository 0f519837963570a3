package mxe

import (
	"context"
	"fmt"

	"github.com/gagliardetto/solana-go"
	"github.com/gagliardetto/solana-go/rpc"

	"arena-mpc/accounts"
	"arena-mpc/crypto"
)

// mxeAccountDiscriminatorLen is the Anchor discriminator prefixing the MXE
// account data; the cluster x25519 key follows it.
const mxeAccountDiscriminatorLen = 8

// RPCKeySource reads the MXE cluster public key from the MXE account's
// on-chain data.
type RPCKeySource struct {
	client *rpc.Client
}

// NewRPCKeySource connects the source to a Solana RPC endpoint.
func NewRPCKeySource(endpoint string) *RPCKeySource {
	return &RPCKeySource{client: rpc.New(endpoint)}
}

// MXEPublicKey fetches the MXE account derived from programID and extracts
// the key bytes. Transient RPC failures surface as plain errors so the
// fetcher can retry them.
func (s *RPCKeySource) MXEPublicKey(ctx context.Context, programID solana.PublicKey) ([]byte, error) {
	bundle, err := accounts.Derive(programID, 0)
	if err != nil {
		return nil, err
	}

	info, err := s.client.GetAccountInfo(ctx, bundle.MXE)
	if err != nil {
		return nil, fmt.Errorf("fetching MXE account %s: %w", bundle.MXE, err)
	}
	if info == nil || info.Value == nil {
		return nil, fmt.Errorf("MXE account %s not found", bundle.MXE)
	}

	data := info.Value.Data.GetBinary()
	if len(data) < mxeAccountDiscriminatorLen+crypto.KeySize {
		return nil, fmt.Errorf("MXE account data is %d bytes, want at least %d",
			len(data), mxeAccountDiscriminatorLen+crypto.KeySize)
	}

	return data[mxeAccountDiscriminatorLen : mxeAccountDiscriminatorLen+crypto.KeySize], nil
}
