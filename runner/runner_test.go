package runner

import (
	"errors"
	"fmt"
	"math"
	"sync"
	"testing"

	"github.com/notargets/aga8/detail"
	"github.com/notargets/aga8/params"
	"github.com/notargets/aga8/partitions"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func referenceGas() []float64 {
	return []float64{
		0.77824, 0.02, 0.06, 0.08, 0.03, 0.0015, 0.003, 0.0005, 0.00165, 0.00215,
		0.00088, 0.00024, 0.00015, 0.00009, 0.004, 0.005, 0.002, 0.0001, 0.0025,
		0.007, 0.001,
	}
}

func pressureSweep(n int) []Sample {
	samples := make([]Sample, n)
	for i := range samples {
		samples[i] = Sample{
			Name:        fmt.Sprintf("p%d", i),
			Pressure:    1000 * float64(i+1),
			Temperature: 400,
			Composition: referenceGas(),
		}
	}
	return samples
}

func TestRunMatchesSerialEvaluation(t *testing.T) {
	samples := pressureSweep(23)
	for _, strategy := range []partitions.PartitionStrategy{partitions.BlockPartition, partitions.RoundRobin} {
		t.Run(strategy.String(), func(t *testing.T) {
			r, err := NewRunner(Config{PartitionSize: 4, Strategy: strategy, Samples: samples})
			require.NoError(t, err)
			assert.Equal(t, 6, r.Layout.NumPartitions)

			outcomes := r.Run()
			require.Len(t, outcomes, len(samples))
			assert.Empty(t, Failed(outcomes))
			for k, o := range outcomes {
				assert.Equal(t, k, o.Index)
				assert.Equal(t, samples[k].Name, o.Name)
				assert.Equal(t, r.Layout.GetPartition(k), o.Partition)

				want, err := detail.Evaluate(samples[k].Pressure, samples[k].Temperature, samples[k].Composition)
				require.NoError(t, err)
				assert.Equal(t, *want, *o.Result, o.Name)
			}
		})
	}
}

func TestRunRecordsFailures(t *testing.T) {
	samples := pressureSweep(3)
	samples[1].Pressure = 0
	samples[2].Composition = samples[2].Composition[:5]

	r, err := NewRunner(Config{PartitionSize: 1, Samples: samples})
	require.NoError(t, err)
	outcomes := r.Run()

	assert.NoError(t, outcomes[0].Err)
	assert.True(t, outcomes[0].Result.Converged)

	assert.True(t, errors.Is(outcomes[1].Err, detail.ErrDegenerateInput))
	require.NotNil(t, outcomes[1].Result)
	assert.Equal(t, 0., outcomes[1].Result.D)

	assert.True(t, errors.Is(outcomes[2].Err, detail.ErrComposition))
	assert.Nil(t, outcomes[2].Result)

	failed := Failed(outcomes)
	require.Len(t, failed, 2)
	assert.Equal(t, 1, failed[0].Index)
	assert.Equal(t, 2, failed[1].Index)
}

func TestNewRunnerDefaults(t *testing.T) {
	r, err := NewRunner(Config{Samples: pressureSweep(40)})
	require.NoError(t, err)
	assert.Equal(t, DefaultPartitionSize, r.PartitionSize)
	assert.Equal(t, 3, r.Layout.NumPartitions)

	r, err = NewRunner(Config{})
	require.NoError(t, err)
	assert.Empty(t, r.Run())

	_, err = NewRunner(Config{PartitionSize: -1, Samples: pressureSweep(2)})
	assert.Error(t, err)
}

func TestRunSharesNoStateAcrossSamples(t *testing.T) {
	// The same query repeated in every partition gives identical results
	samples := make([]Sample, 12)
	for i := range samples {
		samples[i] = Sample{Pressure: 50000, Temperature: 400, Composition: referenceGas()}
	}
	samples[5].Composition = make([]float64, params.NumComponents)
	samples[5].Composition[params.Methane] = 1

	r, err := NewRunner(Config{PartitionSize: 2, Strategy: partitions.RoundRobin, Samples: samples})
	require.NoError(t, err)
	outcomes := r.Run()
	for k, o := range outcomes {
		require.NoError(t, o.Err)
		if k == 5 {
			assert.Equal(t, 16.043, o.Result.MolarMass)
			continue
		}
		assert.Equal(t, *outcomes[0].Result, *o.Result)
	}
}

func TestRunCachesMixtures(t *testing.T) {
	samples := pressureSweep(8)
	methane := make([]float64, params.NumComponents)
	methane[params.Methane] = 1
	samples[3].Composition = methane
	samples[6].Composition = append([]float64(nil), methane...)
	samples[7].Composition = []float64{-1}

	r, err := NewRunner(Config{PartitionSize: 3, Samples: samples})
	require.NoError(t, err)
	outcomes := r.Run()

	// Invalid compositions are never cached
	assert.Equal(t, 2, r.CachedMixtures())
	require.Len(t, Failed(outcomes), 1)
	assert.Equal(t, 16.043, outcomes[6].Result.MolarMass)
}

func TestMixtureSharedAcrossGoroutines(t *testing.T) {
	r, err := NewRunner(Config{Samples: pressureSweep(1)})
	require.NoError(t, err)

	const workers = 16
	mixes := make([]*detail.Mixture, workers)
	var wg sync.WaitGroup
	for w := 0; w < workers; w++ {
		wg.Add(1)
		go func(w int) {
			defer wg.Done()
			mix, err := r.mixture(referenceGas())
			assert.NoError(t, err)
			mixes[w] = mix
		}(w)
	}
	wg.Wait()

	require.NotNil(t, mixes[0])
	for _, mix := range mixes[1:] {
		assert.Same(t, mixes[0], mix)
	}
	assert.Equal(t, 1, r.CachedMixtures())
}

func TestCompositionKey(t *testing.T) {
	a := referenceGas()
	b := referenceGas()
	assert.Equal(t, compositionKey(a), compositionKey(b))
	b[20] = math.Nextafter(b[20], 1)
	assert.NotEqual(t, compositionKey(a), compositionKey(b))
	assert.NotEqual(t, compositionKey([]float64{1, 0}), compositionKey([]float64{1}))
}
