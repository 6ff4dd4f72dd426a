package utils

import (
	"math"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPartitionMap(t *testing.T) {
	{
		getHisto := func(K, Np int) (histo map[int]int) {
			pm := NewPartitionMap(Np, K)
			histo = make(map[int]int)
			for np := 0; np < pm.ParallelDegree; np++ {
				kMin, kMax := pm.GetBucketRange(np)
				histo[kMax-kMin]++
			}
			return
		}
		getTotal := func(histo map[int]int) (total int) {
			for key, count := range histo {
				total += key * count
			}
			return
		}
		// More buckets than indices collapses to one index per bucket
		assert.Equal(t, map[int]int{1: 2}, getHisto(2, 32))
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
	{ // Buckets are contiguous and cover the whole range
		for maxIndex := 10; maxIndex < 500; maxIndex++ {
			pm := NewPartitionMap(5, maxIndex)
			next := 0
			for bn := 0; bn < pm.ParallelDegree; bn++ {
				kMin, kMax := pm.GetBucketRange(bn)
				assert.Equal(t, next, kMin)
				assert.Less(t, kMin, kMax)
				next = kMax
			}
			assert.Equal(t, maxIndex, next)
		}
	}
	{
		pm := NewPartitionMap(0, 1000)
		assert.GreaterOrEqual(t, pm.ParallelDegree, 1)
		pm = NewPartitionMap(3, 0)
		assert.Equal(t, 1, pm.ParallelDegree)
		assert.Equal(t, [2]int{0, 0}, pm.Partitions[0])
	}
}

func TestForEachBucket(t *testing.T) {
	var (
		pm    = NewPartitionMap(7, 643)
		hits  = make([]int32, 643)
		calls int32
	)
	pm.ForEachBucket(func(bn, kMin, kMax int) {
		atomic.AddInt32(&calls, 1)
		for k := kMin; k < kMax; k++ {
			atomic.AddInt32(&hits[k], 1)
		}
	})
	assert.Equal(t, int32(7), calls)
	for k := range hits {
		assert.Equal(t, int32(1), hits[k])
	}
}
