// Copyright 2021 ChainSafe Systems (ON)
// SPDX-License-Identifier: LGPL-3.0-only

package dot

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/PolymeshAssociation/Polymesh-sub002/dot/types"
	"github.com/PolymeshAssociation/Polymesh-sub002/internal/database"
	"github.com/PolymeshAssociation/Polymesh-sub002/lib/common"
	"github.com/PolymeshAssociation/Polymesh-sub002/lib/runtime"
	"github.com/PolymeshAssociation/Polymesh-sub002/lib/system"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	bestBlockGauge = promauto.NewGauge(prometheus.GaugeOpts{
		Namespace: "polymesh_node",
		Name:      "best_block",
		Help:      "number of the last block produced",
	})
	extrinsicsCounter = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "polymesh_node",
		Name:      "extrinsics_total",
		Help:      "extrinsics applied, by outcome",
	}, []string{"outcome"})
)

var timeNow = time.Now

// Inclusion is the outcome of a submitted extrinsic in the block it
// was applied in. Err is its dispatch error, if any.
type Inclusion struct {
	Block     types.BlockNumber
	BlockHash common.Hash
	Index     uint32
	Err       error
	Events    []system.EventRecord
}

type pendingExtrinsic struct {
	extrinsic runtime.Extrinsic
	included  chan Inclusion
}

// BlockProducer builds a block from the pending extrinsics at every
// tick of the block clock, then persists the state to the storage table.
type BlockProducer struct {
	runtime      *runtime.Runtime
	storageTable database.Table
	interval     time.Duration

	bestBlockGauge    prometheus.Gauge
	extrinsicsCounter *prometheus.CounterVec

	mtx     sync.Mutex
	pending []pendingExtrinsic
	running bool
	cancel  context.CancelFunc
	done    chan struct{}
}

// NewBlockProducer creates a block producer for the runtime given.
func NewBlockProducer(rt *runtime.Runtime, storageTable database.Table, interval time.Duration) *BlockProducer {
	return &BlockProducer{
		runtime:           rt,
		storageTable:      storageTable,
		interval:          interval,
		bestBlockGauge:    bestBlockGauge,
		extrinsicsCounter: extrinsicsCounter,
	}
}

// Submit queues the extrinsic for the next block. The channel returned
// receives its inclusion once the block is persisted, and is closed
// without a value if the extrinsic is dropped.
func (bp *BlockProducer) Submit(extrinsic runtime.Extrinsic) (<-chan Inclusion, error) {
	bp.mtx.Lock()
	defer bp.mtx.Unlock()

	if !bp.running {
		return nil, ErrProducerStopped
	}
	included := make(chan Inclusion, 1)
	bp.pending = append(bp.pending, pendingExtrinsic{extrinsic: extrinsic, included: included})
	return included, nil
}

// Start starts the block clock.
func (bp *BlockProducer) Start() error {
	bp.mtx.Lock()
	defer bp.mtx.Unlock()

	ctx, cancel := context.WithCancel(context.Background())
	bp.cancel = cancel
	bp.done = make(chan struct{})
	bp.running = true

	go bp.run(ctx)
	return nil
}

// Stop stops the block clock. Extrinsics still pending are dropped.
func (bp *BlockProducer) Stop() error {
	bp.mtx.Lock()
	bp.running = false
	dropped := bp.pending
	bp.pending = nil
	bp.mtx.Unlock()

	bp.cancel()
	<-bp.done

	drop(dropped)
	if len(dropped) > 0 {
		logger.Warnf("dropped %d pending extrinsics", len(dropped))
	}
	return nil
}

func drop(pending []pendingExtrinsic) {
	for _, p := range pending {
		close(p.included)
	}
}

func (bp *BlockProducer) run(ctx context.Context) {
	defer close(bp.done)

	ticker := time.NewTicker(bp.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			_, err := bp.ProduceBlock()
			if err != nil {
				logger.Errorf("cannot produce block: %s", err)
			}
		}
	}
}

func (bp *BlockProducer) takePending() []pendingExtrinsic {
	bp.mtx.Lock()
	defer bp.mtx.Unlock()

	pending := bp.pending
	bp.pending = nil
	return pending
}

// ProduceBlock executes a block on top of the best block with the
// pending extrinsics, then persists the state. A block failing to
// execute leaves the state untouched and drops its extrinsics.
func (bp *BlockProducer) ProduceBlock() (result runtime.BlockResult, err error) {
	pending := bp.takePending()
	result, number, err := bp.produceBlock(pending)
	if err != nil {
		drop(pending)
		return result, err
	}

	for index, p := range pending {
		p.included <- inclusionOf(number, result, uint32(index))
		close(p.included)
	}
	return result, nil
}

func (bp *BlockProducer) produceBlock(pending []pendingExtrinsic) (
	result runtime.BlockResult, number types.BlockNumber, err error) {
	extrinsics := make([]runtime.Extrinsic, len(pending))
	for index, p := range pending {
		extrinsics[index] = p.extrinsic
	}

	block, err := bp.nextBlock(extrinsics)
	if err != nil {
		return result, 0, err
	}

	state := bp.runtime.State()
	err = state.Transactional(func() (err error) {
		result, err = bp.runtime.ExecuteBlock(block)
		return err
	})
	if err != nil {
		return result, 0, fmt.Errorf("executing block #%d: %w", block.Number, err)
	}

	err = state.Persist(bp.storageTable.NewWriteBatch())
	if err != nil {
		return result, 0, fmt.Errorf("persisting block #%d: %w", block.Number, err)
	}

	failed := 0
	for _, extrinsic := range result.Extrinsics {
		if extrinsic.Err != nil {
			failed++
		}
	}
	bp.bestBlockGauge.Set(float64(block.Number))
	bp.extrinsicsCounter.WithLabelValues("success").Add(float64(len(result.Extrinsics) - failed))
	bp.extrinsicsCounter.WithLabelValues("failed").Add(float64(failed))

	logger.Infof("🔨 produced block #%d (%s) with %d extrinsics, %d failed, %d scheduled tasks",
		block.Number, result.Hash.Short(), len(result.Extrinsics), failed, result.Dispatched)
	return result, block.Number, nil
}

// inclusionOf returns the inclusion of the extrinsic at the index given,
// with the events it deposited.
func inclusionOf(number types.BlockNumber, result runtime.BlockResult, index uint32) Inclusion {
	inclusion := Inclusion{
		Block:     number,
		BlockHash: result.Hash,
		Index:     index,
		Err:       result.Extrinsics[index].Err,
	}
	phase := system.Phase{Kind: system.PhaseApplyExtrinsic, ExtrinsicIndex: index}
	for _, record := range result.Events {
		if record.Phase == phase {
			inclusion.Events = append(inclusion.Events, record)
		}
	}
	return inclusion
}

// nextBlock returns the block following the best block. Its timestamp
// is the current time in milliseconds, kept strictly increasing.
func (bp *BlockProducer) nextBlock(extrinsics []runtime.Extrinsic) (block runtime.Block, err error) {
	system := bp.runtime.System()
	best, err := system.BlockNumber()
	if err != nil {
		return block, err
	}
	parentHash, err := system.BlockHash(best)
	if err != nil {
		return block, err
	}
	last, err := system.Now()
	if err != nil {
		return block, err
	}

	timestamp := types.Moment(timeNow().UnixMilli())
	if timestamp <= last {
		timestamp = last + 1
	}

	return runtime.Block{
		Number:     best + 1,
		ParentHash: parentHash,
		Timestamp:  timestamp,
		Extrinsics: extrinsics,
	}, nil
}
