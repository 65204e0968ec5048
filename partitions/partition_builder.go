package partitions

import (
	"fmt"
	"math"
	"strings"
)

// PartitionBuilder splits a batch of samples into partitions
type PartitionBuilder struct {
	NumSamples int

	// Partitioning parameters
	TargetPartitionSize int // Desired samples per partition
	Strategy            PartitionStrategy
}

// PartitionStrategy defines how samples are grouped
type PartitionStrategy int

const (
	BlockPartition PartitionStrategy = iota // Consecutive samples
	RoundRobin                              // Distribute cyclically
)

func (s PartitionStrategy) String() string {
	switch s {
	case BlockPartition:
		return "block"
	case RoundRobin:
		return "round-robin"
	default:
		return fmt.Sprintf("PartitionStrategy(%d)", int(s))
	}
}

// ParseStrategy maps a strategy name to its PartitionStrategy. An empty name
// selects BlockPartition.
func ParseStrategy(name string) (PartitionStrategy, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "", "block":
		return BlockPartition, nil
	case "round-robin", "roundrobin":
		return RoundRobin, nil
	default:
		return 0, fmt.Errorf("unknown partition strategy %q", name)
	}
}

// BuildPartitions creates a partition layout for the batch
func (pb *PartitionBuilder) BuildPartitions() (*PartitionLayout, error) {
	if pb.NumSamples < 0 {
		return nil, fmt.Errorf("negative sample count %d", pb.NumSamples)
	}
	if pb.TargetPartitionSize < 1 {
		return nil, fmt.Errorf("target partition size must be positive, got %d",
			pb.TargetPartitionSize)
	}

	// Determine number of partitions needed
	numPartitions := pb.calculateNumPartitions()

	// Assign the samples
	sToP, err := pb.partitionSamples(numPartitions)
	if err != nil {
		return nil, err
	}

	// Create partition structures
	partitions := pb.createPartitions(sToP, numPartitions)

	kpartMax := pb.calculateKpartMax(partitions)
	for i := range partitions {
		partitions[i].MaxSamples = kpartMax
	}

	layout := &PartitionLayout{
		Partitions:    partitions,
		KpartMax:      kpartMax,
		TotalSamples:  pb.NumSamples,
		NumPartitions: numPartitions,
		SToP:          sToP,
	}

	if err := layout.ValidateLayout(); err != nil {
		return nil, fmt.Errorf("invalid partition layout: %w", err)
	}

	return layout, nil
}

// calculateNumPartitions determines the partition count from the target size
func (pb *PartitionBuilder) calculateNumPartitions() int {
	numPartitions := int(math.Ceil(float64(pb.NumSamples) / float64(pb.TargetPartitionSize)))

	// Ensure at least one partition
	if numPartitions < 1 {
		numPartitions = 1
	}

	return numPartitions
}

// partitionSamples assigns samples to partitions
func (pb *PartitionBuilder) partitionSamples(numPartitions int) ([]int, error) {
	sToP := make([]int, pb.NumSamples)

	switch pb.Strategy {
	case BlockPartition:
		samplesPerPartition := int(math.Ceil(float64(pb.NumSamples) / float64(numPartitions)))
		for i := 0; i < pb.NumSamples; i++ {
			sToP[i] = i / samplesPerPartition
			if sToP[i] >= numPartitions {
				sToP[i] = numPartitions - 1
			}
		}

	case RoundRobin:
		for i := 0; i < pb.NumSamples; i++ {
			sToP[i] = i % numPartitions
		}

	default:
		return nil, fmt.Errorf("unsupported partition strategy %v", pb.Strategy)
	}

	return sToP, nil
}

// createPartitions builds partition structures from sample assignments
func (pb *PartitionBuilder) createPartitions(sToP []int, numPartitions int) []Partition {
	partitions := make([]Partition, numPartitions)

	for i := range partitions {
		partitions[i] = Partition{
			ID:      i,
			Samples: make([]int, 0),
		}
	}

	for sample, part := range sToP {
		partitions[part].Samples = append(partitions[part].Samples, sample)
		partitions[part].NumSamples++
	}

	return partitions
}

// calculateKpartMax finds maximum samples across all partitions
func (pb *PartitionBuilder) calculateKpartMax(partitions []Partition) int {
	maxSamples := 0
	for _, p := range partitions {
		if p.NumSamples > maxSamples {
			maxSamples = p.NumSamples
		}
	}
	return maxSamples
}

// PartitionStatistics computes load balance metrics
func (layout *PartitionLayout) PartitionStatistics() PartitionStats {
	stats := PartitionStats{
		NumPartitions: layout.NumPartitions,
		MinSamples:    math.MaxInt32,
		MaxSamples:    0,
		AvgSamples:    float64(layout.TotalSamples) / float64(layout.NumPartitions),
	}

	for _, p := range layout.Partitions {
		if p.NumSamples < stats.MinSamples {
			stats.MinSamples = p.NumSamples
		}
		if p.NumSamples > stats.MaxSamples {
			stats.MaxSamples = p.NumSamples
		}
	}

	if stats.AvgSamples > 0 {
		stats.Imbalance = float64(stats.MaxSamples) / stats.AvgSamples
	}

	return stats
}

type PartitionStats struct {
	NumPartitions int
	MinSamples    int
	MaxSamples    int
	AvgSamples    float64
	Imbalance     float64 // MaxSamples / AvgSamples
}
