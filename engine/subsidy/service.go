package subsidy

import (
	"context"
	"fmt"
	"path"
	"strconv"
	"time"

	"github.com/agentdesk/agentdesk/engine/agent"
	"github.com/agentdesk/agentdesk/engine/metrics"
	"github.com/agentdesk/agentdesk/engine/task"
	"github.com/agentdesk/agentdesk/engine/template"
	"github.com/agentdesk/agentdesk/engine/tool"
	"github.com/agentdesk/agentdesk/pkg/config"
	"github.com/agentdesk/agentdesk/pkg/logger"
)

// Name is the asset directory of the subsidy consultant.
const Name = "subsidy"

// Company describes the applicant for matching.
type Company struct {
	Industry  string
	Employees int
	Capital   string
	Location  string
	Challenge string
}

// Info renders the one-line company summary, e.g. "製造業 / 30人 / 3000万円 / 東京都".
func (c Company) Info() string {
	return fmt.Sprintf("%s / %d人 / %s / %s", c.Industry, c.Employees, c.Capital, c.Location)
}

type MatchResult struct {
	CompanyInfo     string
	Recommendations string
}

type DraftResult struct {
	SubsidyName string
	Draft       string
}

type ScoreResult struct {
	SubsidyName string
	ScoreReport string
}

type SummaryResult struct {
	Summary string
}

// Service runs the four subsidy consultant operations.
type Service struct {
	cfg     *config.Config
	runner  agent.Runner
	loader  *template.Loader
	catalog *Catalog
	metrics *metrics.Recorder
}

func NewService(cfg *config.Config, runner agent.Runner, loader *template.Loader, rec *metrics.Recorder) *Service {
	if cfg == nil {
		cfg = config.Default()
	}
	catalogPath := path.Join(loader.Dir(Name), template.KnowledgeDir, CatalogFile)
	return &Service{
		cfg:     cfg,
		runner:  runner,
		loader:  loader,
		catalog: NewCatalog(loader.Fs(), catalogPath),
		metrics: rec,
	}
}

func (s *Service) Catalog() *Catalog {
	return s.catalog
}

// Tools returns the subsidy tools by name.
func (s *Service) Tools() *tool.Registry {
	return tool.NewRegistry(NewSearchTool(s.catalog), NewListTool(s.catalog))
}

func (s *Service) Match(ctx context.Context, c Company) (*MatchResult, error) {
	out, err := s.run(ctx, "matcher", s.cfg.LightModel(),
		[]tool.Tool{NewSearchTool(s.catalog), NewListTool(s.catalog)},
		"match_subsidies", task.Vars{
			"industry":  c.Industry,
			"employees": strconv.Itoa(c.Employees),
			"capital":   c.Capital,
			"location":  c.Location,
			"challenge": c.Challenge,
		})
	if err != nil {
		return nil, err
	}
	return &MatchResult{CompanyInfo: c.Info(), Recommendations: out}, nil
}

func (s *Service) Draft(ctx context.Context, subsidyName, companyInfo, planSummary string) (*DraftResult, error) {
	out, err := s.run(ctx, "writer", s.cfg.MainModel(),
		[]tool.Tool{NewSearchTool(s.catalog)},
		"draft_application", task.Vars{
			"subsidy_name": subsidyName,
			"company_info": companyInfo,
			"plan_summary": planSummary,
		})
	if err != nil {
		return nil, err
	}
	return &DraftResult{SubsidyName: subsidyName, Draft: out}, nil
}

func (s *Service) Score(ctx context.Context, subsidyName, applicationText string) (*ScoreResult, error) {
	out, err := s.run(ctx, "scorer", s.cfg.MainModel(),
		[]tool.Tool{NewSearchTool(s.catalog)},
		"score_application", task.Vars{
			"subsidy_name":     subsidyName,
			"application_text": applicationText,
		})
	if err != nil {
		return nil, err
	}
	return &ScoreResult{SubsidyName: subsidyName, ScoreReport: out}, nil
}

func (s *Service) Summarize(ctx context.Context, guidelinesText string) (*SummaryResult, error) {
	out, err := s.run(ctx, "summarizer", s.cfg.LightModel(), nil,
		"summarize_guidelines", task.Vars{"guidelines_text": guidelinesText})
	if err != nil {
		return nil, err
	}
	return &SummaryResult{Summary: out}, nil
}

func (s *Service) run(
	ctx context.Context,
	agentKey, model string,
	tools []tool.Tool,
	taskKey string,
	vars task.Vars,
) (string, error) {
	agents, err := s.loader.Agents(Name)
	if err != nil {
		return "", err
	}
	tasks, err := s.loader.Tasks(Name)
	if err != nil {
		return "", err
	}
	a, err := agents.Build(agentKey, model, tools, bool(s.cfg.Runtime.Verbose))
	if err != nil {
		return "", err
	}
	t, err := tasks.Build(taskKey, vars)
	if err != nil {
		return "", err
	}
	logger.FromContext(ctx).Debug("Running subsidy task", "agent", agentKey, "task", taskKey, "model", model)
	start := time.Now()
	out, err := s.runner.Run(ctx, a, t)
	if err != nil {
		return "", fmt.Errorf("%s failed: %w", taskKey, err)
	}
	s.metrics.ObserveStage(Name, metrics.StageExecute, start)
	s.metrics.RecordRequest(Name, taskKey)
	return out, nil
}
