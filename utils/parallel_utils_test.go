package utils

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPartitionMap(t *testing.T) {
	{ // Bucket sizes cover the index space with a maximum imbalance of one
		getHisto := func(K, Np int) (histo map[int]int) {
			pm := NewPartitionMap(Np, K)
			histo = make(map[int]int)
			for np := 0; np < pm.ParallelDegree; np++ {
				maxK := pm.GetBucketDimension(np)
				histo[maxK]++
			}
			return
		}
		getTotal := func(histo map[int]int) (total int) {
			for key, count := range histo {
				total += key * count
			}
			return
		}
		assert.Equal(t, map[int]int{1: 32}, getHisto(32, 32))
		assert.Equal(t, map[int]int{8: 32}, getHisto(256, 32))
		assert.Equal(t, map[int]int{8: 1, 9: 31}, getHisto(287, 32))
		assert.Equal(t, 287, getTotal(getHisto(287, 32)))
		for n := 64; n < 2000; n++ {
			var (
				keys   [2]float64
				keyNum int
			)
			histo := getHisto(n, 32)
			for key := range histo {
				keys[keyNum] = float64(key)
				keyNum++
			}
			if keyNum == 2 {
				assert.Equal(t, 1., math.Abs(keys[0]-keys[1])) // Maximum imbalance of 1
			}
			assert.Equal(t, n, getTotal(histo))
		}
	}
	{ // Buckets are contiguous and disjoint
		pm := NewPartitionMap(7, 101)
		last := 0
		for np := 0; np < pm.ParallelDegree; np++ {
			kMin, kMax := pm.GetBucketRange(np)
			assert.Equal(t, last, kMin)
			assert.True(t, kMax > kMin)
			last = kMax
		}
		assert.Equal(t, 101, last)
	}
	{ // Degree is clamped to the index space
		pm := NewPartitionMap(16, 3)
		assert.Equal(t, 3, pm.ParallelDegree)
		pm = NewPartitionMap(0, 3)
		assert.Equal(t, 1, pm.ParallelDegree)
	}
}

func TestRunParallel(t *testing.T) {
	var (
		pm      = NewPartitionMap(7, 101)
		visited = make([]int, 101)
	)
	pm.RunParallel(func(kMin, kMax int) {
		for k := kMin; k < kMax; k++ {
			visited[k]++
		}
	})
	for k, count := range visited {
		assert.Equalf(t, 1, count, "index %d", k)
	}
}
