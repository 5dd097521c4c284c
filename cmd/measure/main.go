// Command measure times random insert/erase workloads on a red-black tree and reports how
// the tree's shape and speed change as a growing share of the inserted keys is erased.
package main

import (
	"math"
	"math/bits"
	"math/rand"
	"os"
	"testing"

	"github.com/g-m-twostay/go-rbtree/Trees"
	"github.com/sirupsen/logrus"
	"github.com/spf13/pflag"
)

var log = logrus.New()

type sample struct {
	ms                         float64
	count, height, blackHeight int
}

// workload inserts n random keys, then erases the first erase of them in insertion order.
func workload(r *rand.Rand, n, erase uint32, opts ...Trees.Option) (*Trees.RBTree[int, uint32], error) {
	tree := Trees.New[int, uint32](n, opts...)
	all := make([]int, 0, n)
	for range n {
		a := r.Int()
		if tree.Insert(a) == nil {
			all = append(all, a)
		}
	}
	for _, v := range all[:min(int(erase), len(all))] {
		if err := tree.Erase(v); err != nil {
			return nil, err
		}
	}
	return tree, nil
}

func measure(n, erase uint32, seed int64, check bool, opts []Trees.Option) (sample, error) {
	var tree *Trees.RBTree[int, uint32]
	var err error
	br := testing.Benchmark(func(b *testing.B) {
		for range b.N {
			b.StopTimer()
			r := rand.New(rand.NewSource(seed))
			b.StartTimer()
			if tree, err = workload(r, n, erase, opts...); err != nil {
				b.FailNow()
			}
		}
	})
	if err != nil {
		return sample{}, err
	}
	if check {
		if err = tree.Verify(); err != nil {
			return sample{}, err
		}
	}
	return sample{float64(br.NsPerOp()) / 1e6, tree.Count(), tree.Height(), tree.BlackHeight()}, nil
}

func main() {
	nodes := pflag.Uint32P("nodes", "n", 100000, "Number of random keys inserted per run.")
	steps := pflag.Uint32("steps", 20, "Number of runs; run i erases nodes/steps*i of the inserted keys.")
	seed := pflag.Int64("seed", 0, "Seed of the key generator, the same for every run.")
	check := pflag.Bool("verify", true, "Verify the red-black invariants after every run.")
	trace := pflag.Bool("trace", false, "Log every rebalancing step at debug level. Only useful with small --nodes.")
	verbose := pflag.BoolP("verbose", "v", false, "Log each run.")
	pflag.Parse()

	testing.Init()
	if *steps == 0 || *nodes == 0 {
		pflag.Usage()
		os.Exit(2)
	}
	var opts []Trees.Option
	if *verbose || *trace {
		log.SetLevel(logrus.DebugLevel)
	}
	if *trace {
		opts = append(opts, Trees.WithLogger(log))
	}

	bound := 2 * bits.Len32(*nodes)
	var samples []sample
	for i := uint32(1); i <= *steps; i++ {
		erase := *nodes / *steps * i
		s, err := measure(*nodes, erase, *seed, *check, opts)
		if err != nil {
			log.WithError(err).WithField("step", i).Fatal("run failed")
		}
		samples = append(samples, s)
		l := log.WithFields(logrus.Fields{
			"step": i, "erased": erase, "count": s.count, "height": s.height,
			"black_height": s.blackHeight, "ms_per_op": s.ms,
		})
		if s.height > bound {
			l.Warnf("height exceeds 2*log2(n+1)=%d", bound)
		} else {
			l.Debug("run done")
		}
	}
	var sum float64
	for _, s := range samples {
		sum += s.ms
	}
	avg := sum / float64(len(samples))
	sum = 0
	for _, s := range samples {
		a := s.ms - avg
		sum += a * a
	}
	log.WithFields(logrus.Fields{
		"runs": len(samples), "average_ms": avg, "stddev_ms": math.Sqrt(sum / float64(len(samples))),
	}).Info("done")
}
