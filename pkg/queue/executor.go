package queue

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/codeready-toolchain/conductor/ent"
	"github.com/codeready-toolchain/conductor/ent/pipelinerun"
	"github.com/codeready-toolchain/conductor/pkg/definition"
	"github.com/codeready-toolchain/conductor/pkg/nodes"
	"github.com/codeready-toolchain/conductor/pkg/pipeline"
	"github.com/codeready-toolchain/conductor/pkg/services"
)

// Executor dispatches a claimed run to the orchestrator matching its mode.
type Executor struct {
	fixed       *pipeline.Orchestrator
	definitions *definition.Orchestrator
	defService  *services.DefinitionService
	registry    *nodes.Registry
}

// NewExecutor creates the run executor used by the worker pool.
func NewExecutor(fixed *pipeline.Orchestrator, definitions *definition.Orchestrator, defService *services.DefinitionService, registry *nodes.Registry) *Executor {
	return &Executor{
		fixed:       fixed,
		definitions: definitions,
		defService:  defService,
		registry:    registry,
	}
}

// Execute drives one run to a terminal status.
func (e *Executor) Execute(ctx context.Context, run *ent.PipelineRun) *ExecutionResult {
	switch run.Mode {
	case pipelinerun.ModeFixed:
		return e.executeFixed(ctx, run)
	case pipelinerun.ModeDefinition:
		return e.executeDefinition(ctx, run)
	default:
		return &ExecutionResult{
			Status: pipelinerun.StatusFailed,
			Error:  fmt.Errorf("unknown run mode %q", run.Mode),
		}
	}
}

func (e *Executor) executeFixed(ctx context.Context, run *ent.PipelineRun) *ExecutionResult {
	if err := e.fixed.Execute(ctx, run); err != nil {
		return &ExecutionResult{Status: pipelinerun.StatusFailed, Error: err}
	}
	return &ExecutionResult{Status: pipelinerun.StatusNotified}
}

func (e *Executor) executeDefinition(ctx context.Context, run *ent.PipelineRun) *ExecutionResult {
	compiled, err := e.compileForRun(ctx, run)
	if err != nil {
		return &ExecutionResult{Status: pipelinerun.StatusFailed, Error: err}
	}

	result, err := e.definitions.Execute(ctx, run, compiled)
	if err != nil {
		return &ExecutionResult{Status: pipelinerun.StatusFailed, Error: err}
	}
	return &ExecutionResult{Status: pipelinerun.Status(result.Status)}
}

// compileForRun loads and compiles the definition a run references. The
// config was validated at admission; a failure here means the definition was
// removed or corrupted since.
func (e *Executor) compileForRun(ctx context.Context, run *ent.PipelineRun) (*definition.CompiledPipeline, error) {
	if run.DefinitionName == nil || *run.DefinitionName == "" {
		return nil, fmt.Errorf("definition run %s has no definition name", run.ID)
	}

	def, err := e.defService.GetDefinitionByName(ctx, *run.DefinitionName)
	if err != nil {
		return nil, fmt.Errorf("failed to load definition %q: %w", *run.DefinitionName, err)
	}
	if !def.IsActive {
		return nil, fmt.Errorf("definition %q is not active", def.Name)
	}

	compiled, err := definition.Compile(def.Config, e.registry)
	if err != nil {
		slog.Error("Stored definition no longer compiles",
			"definition", def.Name, "version", def.Version, "error", err)
		return nil, fmt.Errorf("definition %q does not compile: %w", def.Name, err)
	}
	return compiled, nil
}
