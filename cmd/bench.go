package cmd

import (
	"fmt"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"gonum.org/v1/gonum/stat"

	"github.com/montecarlo-sim/montecarlo-sim/mc"
	"github.com/montecarlo-sim/montecarlo-sim/mc/dist"
)

var (
	benchSamples uint64 // Trials per run
	benchWorkers []int  // Worker counts to sweep
	benchRepeats int    // Repeated runs per worker count
	benchSeed    uint64 // Base seed shared by all runs
)

// benchCmd sweeps worker counts over a uniform-sampling model and reports
// per-run throughput plus mean speedup against the first worker count.
var benchCmd = &cobra.Command{
	Use:   "bench",
	Short: "Benchmark sequential vs parallel execution",
	Run: func(cmd *cobra.Command, args []string) {
		if len(benchWorkers) == 0 {
			benchWorkers = []int{1}
		}
		if benchRepeats < 1 {
			benchRepeats = 1
		}
		model := dist.Uniform(0, 1)

		logrus.Infof("Benchmarking %d samples, workers=%v, repeats=%d, seed=%d",
			benchSamples, benchWorkers, benchRepeats, benchSeed)

		fmt.Println("policy,workers,run,samples,elapsed_ms,samples_per_sec,estimate,variance")
		meanElapsed := make([]float64, len(benchWorkers))
		for wi, workers := range benchWorkers {
			var engine *mc.Engine
			label := "parallel"
			if workers <= 1 {
				engine = mc.NewSequentialEngine(model, benchSeed)
				label = "sequential"
			} else {
				engine = mc.NewParallelEngine(model, workers, benchSeed)
			}

			elapsed := make([]float64, benchRepeats)
			for run := 0; run < benchRepeats; run++ {
				res, err := engine.Run(benchSamples)
				if err != nil {
					logrus.Fatalf("benchmark run failed: %v", err)
				}
				ms := float64(res.Elapsed.Microseconds()) / 1000.0
				elapsed[run] = ms
				throughput := 0.0
				if ms > 0 {
					throughput = float64(benchSamples) / (ms / 1000.0)
				}
				fmt.Printf("%s,%d,%d,%d,%.3f,%.0f,%.6f,%.6f\n",
					label, workers, run, benchSamples, ms, throughput, res.Estimate, res.Variance)
			}
			meanElapsed[wi] = stat.Mean(elapsed, nil)
		}

		baseline := meanElapsed[0]
		for wi, workers := range benchWorkers {
			speedup := 0.0
			if meanElapsed[wi] > 0 {
				speedup = baseline / meanElapsed[wi]
			}
			fmt.Printf("# workers=%d mean_elapsed=%.3fms speedup=%.2fx\n", workers, meanElapsed[wi], speedup)
		}
	},
}

// init sets up bench command flags
func init() {
	benchCmd.Flags().Uint64Var(&benchSamples, "samples", 1_000_000, "Trials per benchmark run")
	benchCmd.Flags().IntSliceVar(&benchWorkers, "workers", []int{1, 2, 4}, "Comma-separated worker counts to sweep")
	benchCmd.Flags().IntVar(&benchRepeats, "repeats", 3, "Repeated runs per worker count")
	benchCmd.Flags().Uint64Var(&benchSeed, "seed", mc.DefaultSeed, "Base seed shared by all runs")
}
