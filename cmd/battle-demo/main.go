package main

import (
	"context"
	"encoding/hex"
	"fmt"
	"log"
	"time"

	"github.com/gagliardetto/solana-go"
	"github.com/joho/godotenv"

	"arena-mpc/battle"
	"arena-mpc/crypto"
	"arena-mpc/mxe"
	"arena-mpc/shared"
	"arena-mpc/stats"
)

// demoProgramID is the battle program on the demo cluster.
const demoProgramID = "64LHiQ3ELgJXGbAB6WzT2WNpKrUdHZEV1Mv3oRX6vaEg"

// localKeySource stands in for a live MXE cluster: it holds its own x25519
// key pair and hands out the public half.
type localKeySource struct {
	key *crypto.KeyPair
}

func (s *localKeySource) MXEPublicKey(ctx context.Context, programID solana.PublicKey) ([]byte, error) {
	return s.key.PublicKey[:], nil
}

func pickKeySource() (mxe.KeySource, error) {
	if endpoint := shared.GetEnvOrDefault("MXE_RPC_ENDPOINT", ""); endpoint != "" {
		return mxe.NewRPCKeySource(endpoint), nil
	}
	if gateway := shared.GetEnvOrDefault("MXE_GATEWAY_URL", ""); gateway != "" {
		return mxe.NewWebsocketKeySource(gateway), nil
	}
	key, err := crypto.GenerateKeyPair()
	if err != nil {
		return nil, err
	}
	return &localKeySource{key: key}, nil
}

func main() {
	_ = godotenv.Load()

	logger, err := shared.NewLoggerFromEnv("battle-demo")
	if err != nil {
		log.Fatalf("building logger: %v", err)
	}
	defer logger.Sync()

	source, err := pickKeySource()
	if err != nil {
		log.Fatalf("building key source: %v", err)
	}

	programID := solana.MustPublicKeyFromBase58(
		shared.GetEnvOrDefault("BATTLE_PROGRAM_ID", demoProgramID))

	record := stats.BattleStats{
		Strength:     85,
		Agility:      70,
		Endurance:    90,
		Intelligence: 75,
	}

	opts := shared.PrepareOptions{
		MaxRetries: shared.GetEnvIntOrDefault("MXE_MAX_RETRIES", shared.DefaultMaxRetries),
		RetryDelay: time.Duration(shared.GetEnvIntOrDefault("MXE_RETRY_DELAY_MS", 500)) * time.Millisecond,
		Debug:      shared.GetEnvBoolOrDefault("DEBUG", false),
	}

	preparer := battle.NewPreparer(source, logger)
	result, err := preparer.Prepare(context.Background(), programID, record, opts)
	if err != nil {
		log.Fatalf("preparation failed (%s): %v", shared.KindOf(err), err)
	}

	fmt.Println("Battle preparation complete")
	fmt.Printf("  computation offset: %d\n", result.ComputationOffset)
	fmt.Printf("  encrypted stats:    %s\n", hex.EncodeToString(result.EncryptedStats[:]))
	fmt.Printf("  client public key:  %s\n", hex.EncodeToString(result.ClientPublicKey[:]))
	fmt.Printf("  nonce:              %s\n", result.Nonce.String())
	fmt.Println("  accounts:")
	fmt.Printf("    mxe:            %s\n", result.Accounts.MXE)
	fmt.Printf("    mempool:        %s\n", result.Accounts.Mempool)
	fmt.Printf("    executing pool: %s\n", result.Accounts.ExecutingPool)
	fmt.Printf("    comp def:       %s\n", result.Accounts.CompDef)
	fmt.Printf("    computation:    %s\n", result.Accounts.Computation)
	fmt.Printf("    battle result:  %s\n", result.Accounts.BattleResult)
	fmt.Printf("    fee pool:       %s\n", result.Accounts.FeePool)
	fmt.Printf("    cluster:        %s\n", result.Accounts.Cluster)
	fmt.Printf("    clock:          %s\n", result.Accounts.Clock)
	fmt.Printf("    system program: %s\n", result.Accounts.SystemProgram)
	fmt.Printf("    mxe program:    %s\n", result.Accounts.MXEProgram)

	outcome, err := battle.SimulateOutcome(context.Background(), record.Strength, 300*time.Millisecond)
	if err != nil {
		log.Fatalf("simulation failed: %v", err)
	}
	fmt.Printf("Simulated outcome: %s vs %s (strength %d), proof %s\n",
		outcome.Outcome, outcome.Opponent.Name, outcome.Opponent.Strength, outcome.Proof)
}
