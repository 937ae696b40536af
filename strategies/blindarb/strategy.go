package blindarb

import (
	"context"
	"math/big"
	"sync"
	"sync/atomic"

	lru "github.com/hashicorp/golang-lru"
	"golang.org/x/sync/semaphore"

	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/log"

	"github.com/vyorkin/kazuka"
	"github.com/vyorkin/kazuka/mevsharerpc"
	"github.com/vyorkin/kazuka/providers"
)

// maxConcurrentBuilds bounds how many ladder rungs may call into the
// ArbProvider at once. The provider typically simulates against an RPC
// endpoint, so spraying all 14 rungs at once would needlessly burst load
// against it for a single trigger event.
const maxConcurrentBuilds = 4

// recentDedupeSize bounds how many recently-sprayed trigger hashes the
// strategy remembers, so a matchmaker redelivery of the same hint within
// that window does not spray a second bundle ladder for it. The MEV-Share
// contract allows at-most-one-reader-per-subscriber but does not forbid
// the matchmaker from redelivering the same hint.
const recentDedupeSize = 4096

// ladderExponents are the 14 powers of ten (10^5 .. 10^18) the strategy
// sprays a backrun candidate size at for every qualifying event.
var ladderExponents = func() []*big.Int {
	out := make([]*big.Int, 0, 14)
	for exp := 5; exp <= 18; exp++ {
		out = append(out, new(big.Int).Exp(big.NewInt(10), big.NewInt(int64(exp)), nil))
	}
	return out
}()

// Strategy is the reference blind V2/V3 arbitrage strategy: on every
// MevShareEvent whose first disclosed log's address maps to a known V3
// pool, it sprays a 14-rung ladder of backrun bundle candidates.
type Strategy struct {
	pools    *PoolTable
	provider providers.ArbProvider
	dryRun   bool

	seen         *lru.Cache
	currentBlock atomic.Uint64
	buildSem     *semaphore.Weighted
}

// New builds a strategy over pools and provider. dryRun substitutes
// provider.BuildSignedBackrun's result with providers.PlaceholderBackrunBytes
// and never calls the provider, so no RPC call is made.
func New(pools *PoolTable, provider providers.ArbProvider, dryRun bool) *Strategy {
	cache, err := lru.New(recentDedupeSize)
	if err != nil {
		// lru.New only fails for a non-positive size, which
		// recentDedupeSize never is: this can only indicate a
		// programming error, never a runtime condition.
		panic(&kazuka.InvariantError{Msg: "blindarb: recentDedupeSize must be positive: " + err.Error()})
	}
	return &Strategy{
		pools:    pools,
		provider: provider,
		dryRun:   dryRun,
		seen:     cache,
		buildSem: semaphore.NewWeighted(maxConcurrentBuilds),
	}
}

// SyncState is a no-op: the pool table is loaded before New is called,
// so there is nothing left to validate at startup.
func (s *Strategy) SyncState(ctx context.Context) error {
	return nil
}

// SetCurrentBlock seeds the strategy's notion of the chain head before
// its first NewBlock event arrives.
func (s *Strategy) SetCurrentBlock(n uint64) {
	s.currentBlock.Store(n)
}

// ProcessEvent reacts to MevShareEvent hints; it also observes NewBlock
// events to track the chain head, since a MevSendBundle's inclusion
// window is expressed relative to the current block and the MEV-Share
// hint itself carries no block number.
func (s *Strategy) ProcessEvent(ctx context.Context, ev kazuka.Event) []kazuka.Action {
	if nb, ok := ev.(*kazuka.NewBlock); ok {
		s.currentBlock.Store(nb.Number)
		return nil
	}

	mse, ok := ev.(*kazuka.MevShareEvent)
	if !ok {
		return nil
	}
	if len(mse.Logs) == 0 {
		return nil
	}

	addr := mse.Logs[0].Address
	pair, ok := s.pools.Lookup(addr)
	if !ok {
		return nil
	}

	if _, dup := s.seen.Get(mse.Hash); dup {
		return nil
	}
	s.seen.Add(mse.Hash, struct{}{})

	actions := make([]kazuka.Action, len(ladderExponents))
	var wg sync.WaitGroup
	for i, size := range ladderExponents {
		i, size := i, size
		if err := s.buildSem.Acquire(ctx, 1); err != nil {
			// Context cancelled mid-spray: leave remaining rungs unbuilt
			// rather than block past the engine's shutdown.
			break
		}
		wg.Add(1)
		go func() {
			defer wg.Done()
			defer s.buildSem.Release(1)
			actions[i] = s.buildBundle(ctx, mse, addr, pair, size)
		}()
	}
	wg.Wait()

	out := actions[:0]
	for _, a := range actions {
		if a != nil {
			out = append(out, a)
		}
	}
	return out
}

func (s *Strategy) buildBundle(ctx context.Context, mse *kazuka.MevShareEvent, v3Pool common.Address, pair PoolPair, size *big.Int) kazuka.Action {
	var signed []byte
	if s.dryRun {
		signed = providers.PlaceholderBackrunBytes
		log.Debug("blindarb: dry-run bundle built", "trigger", mse.Hash, "size", size)
	} else {
		var err error
		signed, err = s.provider.BuildSignedBackrun(ctx, v3Pool, pair.V2Pool, pair.IsWeth0, size)
		if err != nil {
			log.Warn("blindarb: provider failed to build backrun, using empty payload", "size", size, "err", err)
			signed = nil
		}
	}

	current := s.currentBlock.Load()
	maxBlock := current + 30

	return &kazuka.SubmitBundle{
		Bundle: mevsharerpc.MevSendBundle{
			ProtocolVersion: mevsharerpc.ProtocolVersionV01,
			Inclusion: mevsharerpc.Inclusion{
				Block:    current + 1,
				MaxBlock: &maxBlock,
			},
			BundleBody: []mevsharerpc.BundleItem{
				mevsharerpc.Hash{Hash: mse.Hash},
				mevsharerpc.Tx{Bytes: signed, CanRevert: false},
			},
		},
	}
}
