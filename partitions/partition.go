package partitions

import (
	"fmt"
)

// Partition represents a group of samples that one worker evaluates in
// sequence
type Partition struct {
	// Unique identifier for this partition
	ID int

	// Sample membership
	Samples    []int // Global sample indices in this partition
	NumSamples int   // Actual number of samples
	MaxSamples int   // Size of the largest partition in the layout
}

// PartitionLayout manages the complete decomposition of a batch
type PartitionLayout struct {
	// All partitions in the batch
	Partitions []Partition

	// Global sizing information
	KpartMax      int // max(NumSamples) across all partitions
	TotalSamples  int // Sum of all samples across partitions
	NumPartitions int // Total number of partitions

	// Sample to partition mapping
	SToP []int // Length TotalSamples: sample k belongs to partition SToP[k]
}

// GetPartition returns the partition containing sample k
func (pl *PartitionLayout) GetPartition(sampleID int) int {
	if sampleID < 0 || sampleID >= len(pl.SToP) {
		return -1
	}
	return pl.SToP[sampleID]
}

// ValidateLayout checks partition consistency
func (pl *PartitionLayout) ValidateLayout() error {
	if len(pl.Partitions) != pl.NumPartitions {
		return fmt.Errorf("%d partitions stored, NumPartitions is %d",
			len(pl.Partitions), pl.NumPartitions)
	}
	if len(pl.SToP) != pl.TotalSamples {
		return fmt.Errorf("sample map covers %d samples, TotalSamples is %d",
			len(pl.SToP), pl.TotalSamples)
	}

	// Verify KpartMax
	actualMax, total := 0, 0
	for i, p := range pl.Partitions {
		if p.ID != i {
			return fmt.Errorf("partition at position %d has ID %d", i, p.ID)
		}
		if p.NumSamples != len(p.Samples) {
			return fmt.Errorf("partition %d: NumSamples %d != %d listed samples",
				p.ID, p.NumSamples, len(p.Samples))
		}
		if p.NumSamples > actualMax {
			actualMax = p.NumSamples
		}
		if p.MaxSamples != pl.KpartMax {
			return fmt.Errorf("partition %d: MaxSamples %d != KpartMax %d",
				p.ID, p.MaxSamples, pl.KpartMax)
		}
		for _, k := range p.Samples {
			if pl.GetPartition(k) != p.ID {
				return fmt.Errorf("sample %d listed in partition %d but mapped to %d",
					k, p.ID, pl.GetPartition(k))
			}
		}
		total += p.NumSamples
	}
	if actualMax != pl.KpartMax {
		return fmt.Errorf("computed KpartMax %d != stored KpartMax %d",
			actualMax, pl.KpartMax)
	}
	if total != pl.TotalSamples {
		return fmt.Errorf("partitions hold %d samples, TotalSamples is %d",
			total, pl.TotalSamples)
	}
	return nil
}
