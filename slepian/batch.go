package slepian

import (
	"sync"

	"gonum.org/v1/gonum/mat"

	"github.com/notargets/goslepian/utils"
)

// Job is one independent solve. With Kernel nil it is the classical problem
// (N, NW), otherwise the generalized problem (Kernel, Weight).
type Job struct {
	Name    string
	N       int
	NW      float64
	Kernel  mat.Symmetric
	Weight  mat.Symmetric
	Count   int // number of tapers
	Request Request
}

// BatchResult is the outcome of one Job. Err is set and Tapers nil when the
// solve failed; the other jobs are unaffected.
type BatchResult struct {
	Name   string
	Tapers *TaperSet
	Err    error
}

func (j Job) solve() (*TaperSet, error) {
	if j.Kernel == nil {
		return SolveClassical(j.N, j.NW, j.Count, j.Request)
	}
	return SolveGeneralized(j.Kernel, j.Weight, j.Count, j.Request)
}

// SolveBatch solves the jobs on up to parallelDegree goroutines, each
// owning a contiguous partition of the job list. Results are in job order.
// Kernels shared between jobs are only read.
func SolveBatch(jobs []Job, parallelDegree int) (results []BatchResult) {
	results = make([]BatchResult, len(jobs))
	if len(jobs) == 0 {
		return
	}
	var (
		pm = utils.NewPartitionMap(parallelDegree, len(jobs))
		wg = sync.WaitGroup{}
	)
	for np := 0; np < pm.ParallelDegree; np++ {
		wg.Add(1)
		go func(np int) {
			defer wg.Done()
			kMin, kMax := pm.GetBucketRange(np)
			for i := kMin; i < kMax; i++ {
				ts, err := jobs[i].solve()
				results[i] = BatchResult{Name: jobs[i].Name, Tapers: ts, Err: err}
			}
		}(np)
	}
	wg.Wait()
	return
}
