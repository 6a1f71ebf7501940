package teardown

import (
	"fmt"
	"time"
)

// Phase is one destructive step of a teardown.
type Phase interface {
	Name() string
	Run(ctx *Context) error
}

// DefaultPhases returns the destructive phases in execution order.
func DefaultPhases() []Phase {
	return []Phase{
		&parameterPruning{},
		&stackDeletion{role: roleApplication},
		&stackDeletion{role: rolePipeline},
		&tagReclamation{},
		&localConfigPruning{},
	}
}

// RunPhases executes all teardown phases sequentially.
func RunPhases(ctx *Context, phases []Phase) error {
	start := time.Now()
	ctx.Reporter.Printf("Starting teardown of %s with %d phases...", ctx.Target.DeploymentID(), len(phases))

	for i, phase := range phases {
		if err := ctx.Err(); err != nil {
			return cancelled(err)
		}

		phaseStart := time.Now()
		name := fmt.Sprintf("%s (%d/%d)", phase.Name(), i+1, len(phases))

		ctx.Reporter.Printf("[%s] starting", name)

		if err := phase.Run(ctx); err != nil {
			ctx.Reporter.Errorf("[%s] failed: %v", name, err)
			return fmt.Errorf("%s phase failed: %w", phase.Name(), err)
		}

		ctx.Reporter.Printf("[%s] completed in %v", name, time.Since(phaseStart).Round(time.Millisecond))
	}

	ctx.Reporter.Printf("Teardown completed in %v", time.Since(start).Round(time.Millisecond))
	return nil
}
