// Package runner evaluates batches of gas samples. The batch is split into
// partitions and each partition is evaluated by its own goroutine, with an
// independent detail.Context per sample.
package runner

import (
	"fmt"
	"math"
	"strconv"
	"strings"
	"sync"

	"github.com/notargets/aga8/detail"
	"github.com/notargets/aga8/params"
	"github.com/notargets/aga8/partitions"
	"github.com/patrickmn/go-cache"
)

// DefaultPartitionSize is used when Config.PartitionSize is zero.
const DefaultPartitionSize = 16

// Sample is one (P, T, composition) query of a batch
type Sample struct {
	Name        string
	Pressure    float64   // kPa
	Temperature float64   // K
	Composition []float64 // mole fractions in params.Component order
}

// Outcome pairs a sample with its evaluation. Err is nil on success; on a
// solver failure Result is still set and carries the fallback density.
type Outcome struct {
	Sample
	Index     int // position of the sample in the batch
	Partition int
	Result    *detail.Result
	Err       error
}

// Config holds configuration for creating a Runner
type Config struct {
	PartitionSize int
	Strategy      partitions.PartitionStrategy
	Samples       []Sample
}

// Runner evaluates a partitioned batch of samples. Samples with the same
// composition share one reduced detail.Mixture.
type Runner struct {
	Config
	Layout *partitions.PartitionLayout

	mixtures *cache.Cache
}

// NewRunner partitions the configured samples
func NewRunner(cfg Config) (*Runner, error) {
	if cfg.PartitionSize == 0 {
		cfg.PartitionSize = DefaultPartitionSize
	}
	pb := &partitions.PartitionBuilder{
		NumSamples:          len(cfg.Samples),
		TargetPartitionSize: cfg.PartitionSize,
		Strategy:            cfg.Strategy,
	}
	layout, err := pb.BuildPartitions()
	if err != nil {
		return nil, fmt.Errorf("failed to partition %d samples: %w", len(cfg.Samples), err)
	}
	return &Runner{
		Config:   cfg,
		Layout:   layout,
		mixtures: cache.New(cache.NoExpiration, 0),
	}, nil
}

// Run evaluates every sample and returns the outcomes in sample order. A
// failing sample is recorded in its Outcome and does not stop the batch.
func (r *Runner) Run() []Outcome {
	outcomes := make([]Outcome, len(r.Samples))

	// Build the shared tables before any worker starts
	params.Load()

	var wg sync.WaitGroup
	for _, p := range r.Layout.Partitions {
		if p.NumSamples == 0 {
			continue
		}
		wg.Add(1)
		go func(p partitions.Partition) {
			defer wg.Done()
			for _, k := range p.Samples {
				outcomes[k] = r.evaluate(k, p.ID)
			}
		}(p)
	}
	wg.Wait()

	return outcomes
}

func (r *Runner) evaluate(k, partition int) (o Outcome) {
	o = Outcome{
		Sample:    r.Samples[k],
		Index:     k,
		Partition: partition,
	}
	mix, err := r.mixture(o.Composition)
	if err != nil {
		o.Err = fmt.Errorf("sample %d (%s): %w", k, o.Name, err)
		return
	}
	o.Result, err = detail.NewMixtureContext(mix).Evaluate(o.Pressure, o.Temperature)
	if err != nil {
		o.Err = fmt.Errorf("sample %d (%s): %w", k, o.Name, err)
	}
	return
}

// mixture returns the reduced mixture for composition x, building and
// caching it on first use
func (r *Runner) mixture(x []float64) (*detail.Mixture, error) {
	key := compositionKey(x)
	if m, found := r.mixtures.Get(key); found {
		return m.(*detail.Mixture), nil
	}
	mix, err := detail.NewMixture(x)
	if err != nil {
		return nil, err
	}
	if err := r.mixtures.Add(key, mix, cache.NoExpiration); err != nil {
		// Another partition stored this composition first
		if m, found := r.mixtures.Get(key); found {
			return m.(*detail.Mixture), nil
		}
	}
	return mix, nil
}

// compositionKey encodes the exact bit patterns of the fractions
func compositionKey(x []float64) string {
	var b strings.Builder
	for i, xi := range x {
		if i > 0 {
			b.WriteByte(':')
		}
		b.WriteString(strconv.FormatUint(math.Float64bits(xi), 16))
	}
	return b.String()
}

// CachedMixtures reports how many distinct compositions have been reduced
func (r *Runner) CachedMixtures() int {
	return r.mixtures.ItemCount()
}

// Failed returns the outcomes that carry an error
func Failed(outcomes []Outcome) (failed []Outcome) {
	for _, o := range outcomes {
		if o.Err != nil {
			failed = append(failed, o)
		}
	}
	return
}
