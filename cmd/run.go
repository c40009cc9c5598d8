package cmd

import (
	"fmt"
	"math"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/montecarlo-sim/montecarlo-sim/mc"
)

var (
	runScenario   string  // Named demo scenario
	runConfigFile string  // YAML scenario spec (overrides the other flags)
	runIterations uint64  // Number of trials
	runSeed       uint64  // Base seed
	runPolicy     string  // Execution policy
	runWorkers    int     // Worker count for the parallel policy
	runCILevel    float64 // Confidence level for the reported interval
)

// runCmd executes one scenario and reports the estimate with its interval
var runCmd = &cobra.Command{
	Use:   "run",
	Short: "Run a Monte Carlo scenario",
	Run: func(cmd *cobra.Command, args []string) {
		spec := &ScenarioSpec{
			Scenario:   runScenario,
			Iterations: runIterations,
			Seed:       runSeed,
			Policy:     runPolicy,
			Workers:    runWorkers,
			CILevel:    runCILevel,
		}
		if runConfigFile != "" {
			loaded, err := LoadScenarioSpec(runConfigFile)
			if err != nil {
				logrus.Fatalf("%v", err)
			}
			spec = loaded
			if spec.Seed == 0 {
				spec.Seed = mc.DefaultSeed
			}
			if spec.CILevel == 0 {
				spec.CILevel = 0.95
			}
		}

		sc, err := NewScenario(spec.Scenario)
		if err != nil {
			logrus.Fatalf("%v", err)
		}
		transform := sc.Transform
		if spec.Transform != nil {
			transform, err = spec.Transform.Build()
			if err != nil {
				logrus.Fatalf("%v", err)
			}
		}

		policy, err := buildPolicy(spec.Policy, spec.Workers)
		if err != nil {
			logrus.Fatalf("%v", err)
		}

		logrus.Infof("Running scenario %q: iterations=%d seed=%d policy=%s",
			spec.Scenario, spec.Iterations, spec.Seed, policyName(spec.Policy, spec.Workers))

		engine := mc.NewEngine(sc.Model, policy, transform, spec.Seed)
		res, err := engine.Run(spec.Iterations)
		if err != nil {
			logrus.Fatalf("simulation failed: %v", err)
		}

		ci := mc.CI(res, spec.CILevel)
		fmt.Printf("scenario:   %s\n", spec.Scenario)
		fmt.Printf("iterations: %d\n", res.Iterations)
		fmt.Printf("estimate:   %.9f\n", res.Estimate)
		fmt.Printf("std error:  %.9f\n", res.StdError)
		fmt.Printf("%.0f%% CI:     [%.9f, %.9f]\n", ci.Level*100, ci.Lower, ci.Upper)
		fmt.Printf("elapsed:    %s\n", res.Elapsed)
		if !math.IsNaN(sc.Reference) {
			fmt.Printf("reference:  %.9f (abs error %.2e)\n", sc.Reference, math.Abs(res.Estimate-sc.Reference))
		}
	},
}

// buildPolicy maps a policy name and worker count onto an execution policy.
func buildPolicy(name string, workers int) (mc.ExecutionPolicy, error) {
	switch name {
	case "", "sequential":
		return mc.Sequential{}, nil
	case "parallel":
		return mc.NewParallel(workers), nil
	case "gpu":
		return mc.GPU{}, nil
	default:
		return nil, fmt.Errorf("unknown policy %q", name)
	}
}

func policyName(name string, workers int) string {
	if name == "parallel" {
		return fmt.Sprintf("parallel(workers=%d)", mc.NewParallel(workers).Workers())
	}
	if name == "" {
		return "sequential"
	}
	return name
}

// init sets up run command flags
func init() {
	runCmd.Flags().StringVar(&runScenario, "scenario", "pi", "Scenario to run (pi, dice, integration, uniform-mean, option)")
	runCmd.Flags().StringVar(&runConfigFile, "config", "", "YAML scenario spec (overrides scenario flags)")
	runCmd.Flags().Uint64Var(&runIterations, "iterations", 1_000_000, "Number of trials")
	runCmd.Flags().Uint64Var(&runSeed, "seed", mc.DefaultSeed, "Base seed for substream derivation")
	runCmd.Flags().StringVar(&runPolicy, "policy", "sequential", "Execution policy (sequential, parallel, gpu)")
	runCmd.Flags().IntVar(&runWorkers, "workers", 0, "Worker count for parallel policy (0 = auto-detect)")
	runCmd.Flags().Float64Var(&runCILevel, "ci-level", 0.95, "Confidence level for the reported interval")
}
