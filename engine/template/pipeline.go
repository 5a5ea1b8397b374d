package template

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/segmentio/ksuid"

	"github.com/agentdesk/agentdesk/engine/agent"
	"github.com/agentdesk/agentdesk/engine/category"
	"github.com/agentdesk/agentdesk/engine/core"
	"github.com/agentdesk/agentdesk/engine/metrics"
	"github.com/agentdesk/agentdesk/engine/task"
	"github.com/agentdesk/agentdesk/engine/tool"
	"github.com/agentdesk/agentdesk/pkg/config"
	"github.com/agentdesk/agentdesk/pkg/logger"
)

// Pipeline classifies a request and hands it to the specialist of its category.
// Agent and task definitions are read from the loader on every request.
type Pipeline struct {
	tpl     *Template
	cfg     *config.Config
	runner  agent.Runner
	loader  *Loader
	records RecordSource
	metrics *metrics.Recorder
}

type PipelineOption func(*Pipeline)

// WithRecords replaces the fixture-backed record source.
func WithRecords(src RecordSource) PipelineOption {
	return func(p *Pipeline) {
		p.records = src
	}
}

func WithMetrics(rec *metrics.Recorder) PipelineOption {
	return func(p *Pipeline) {
		p.metrics = rec
	}
}

func NewPipeline(
	tpl *Template,
	cfg *config.Config,
	runner agent.Runner,
	loader *Loader,
	opts ...PipelineOption,
) *Pipeline {
	if cfg == nil {
		cfg = config.Default()
	}
	p := &Pipeline{tpl: tpl, cfg: cfg, runner: runner, loader: loader}
	for _, opt := range opts {
		opt(p)
	}
	if p.records == nil {
		p.records = NewFixtureSource(loader)
	}
	return p
}

func (p *Pipeline) Template() *Template {
	return p.tpl
}

// Classify runs only the classifier and returns the normalized category.
func (p *Pipeline) Classify(ctx context.Context, query string) (category.Category, error) {
	agents, tasks, err := p.definitions()
	if err != nil {
		return "", err
	}
	return p.classify(ctx, query, agents, tasks)
}

// Handle classifies query, runs the routed specialist, and wraps its answer.
func (p *Pipeline) Handle(ctx context.Context, query string) (*Result, error) {
	requestID := ksuid.New().String()
	log := logger.FromContext(ctx).With("template", p.tpl.Name, "request_id", requestID)
	ctx = logger.ContextWithLogger(ctx, log)

	agents, tasks, err := p.definitions()
	if err != nil {
		return nil, err
	}
	start := time.Now()
	c, err := p.classify(ctx, query, agents, tasks)
	if err != nil {
		return nil, err
	}
	p.metrics.ObserveStage(p.tpl.Name, metrics.StageClassify, start)

	route, ok := p.tpl.Routes[c]
	if !ok {
		return nil, core.Errorf(core.CodeInvalidCategory, "template %s has no route for %q", p.tpl.Name, c)
	}
	registry, err := p.Tools(ctx)
	if err != nil {
		return nil, err
	}
	bound, err := registry.Resolve(p.tpl.Bindings[route.Agent]...)
	if err != nil {
		return nil, fmt.Errorf("agent %s: %w", route.Agent, err)
	}
	specialist, err := agents.Build(route.Agent, p.cfg.MainModel(), bound, p.verbose())
	if err != nil {
		return nil, err
	}
	t, err := tasks.Build(route.Task, task.Vars{"query": query})
	if err != nil {
		return nil, err
	}
	log.Debug("Routing request", "category", c, "agent", route.Agent, "task", route.Task)

	start = time.Now()
	response, err := p.runner.Run(ctx, specialist, t)
	if err != nil {
		return nil, fmt.Errorf("%s failed: %w", route.Agent, err)
	}
	p.metrics.ObserveStage(p.tpl.Name, metrics.StageExecute, start)
	p.metrics.RecordRequest(p.tpl.Name, string(c))
	return NewResult(p.tpl.Categories(), query, c, response)
}

// Tools builds every tool of the template against the pipeline's record source.
func (p *Pipeline) Tools(ctx context.Context) (*tool.Registry, error) {
	tools, err := p.tpl.Tools(ctx, NewToolEnv(p.tpl.Name, p.loader, p.records))
	if err != nil {
		return nil, fmt.Errorf("template %s: %w", p.tpl.Name, err)
	}
	registry := tool.NewRegistry()
	for _, t := range tools {
		if err := registry.Register(t); err != nil {
			return nil, err
		}
	}
	return registry, nil
}

func (p *Pipeline) classify(
	ctx context.Context,
	query string,
	agents agent.Configs,
	tasks task.Configs,
) (category.Category, error) {
	classifier, err := agents.Build(ClassifierAgent, p.cfg.LightModel(), nil, p.verbose())
	if err != nil {
		return "", err
	}
	t, err := tasks.Build(p.tpl.ClassifyTask, task.Vars{"query": query})
	if err != nil {
		return "", err
	}
	raw, err := p.runner.Run(ctx, classifier, t)
	if err != nil {
		return "", fmt.Errorf("classification failed: %w", err)
	}
	c := p.tpl.Normalizer.Normalize(strings.ToLower(strings.TrimSpace(raw)))
	logger.FromContext(ctx).Debug("Request classified", "raw", raw, "category", c)
	return c, nil
}

func (p *Pipeline) definitions() (agent.Configs, task.Configs, error) {
	agents, err := p.loader.Agents(p.tpl.Name)
	if err != nil {
		return nil, nil, err
	}
	tasks, err := p.loader.Tasks(p.tpl.Name)
	if err != nil {
		return nil, nil, err
	}
	return agents, tasks, nil
}

func (p *Pipeline) verbose() bool {
	return bool(p.cfg.Runtime.Verbose)
}
