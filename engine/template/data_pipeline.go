package template

import (
	"context"

	"github.com/agentdesk/agentdesk/engine/category"
	"github.com/agentdesk/agentdesk/engine/tool"
	"github.com/agentdesk/agentdesk/engine/tool/knowledge"
	"github.com/agentdesk/agentdesk/engine/tool/record"
)

const (
	PipelineHealth  category.Category = "pipeline_health"
	DataQuality     category.Category = "data_quality"
	AlertManagement category.Category = "alert_management"
	Recovery        category.Category = "recovery"
)

func DataPipeline() *Template {
	set := category.NewSet(PipelineHealth, DataQuality, AlertManagement, Recovery)
	return &Template{
		Name:         "data-pipeline",
		Title:        "AI Data Pipeline Monitor",
		Prompt:       "Operator",
		ClassifyTask: "classify_request",
		Normalizer: category.TwoStage(set, PipelineHealth, []category.KeywordSet{
			{Category: PipelineHealth, Keywords: []string{
				"pipeline", "etl", "job", "run", "execution", "status",
				"latency", "throughput", "schedule", "dag", "airflow", "orchestr",
			}},
			{Category: DataQuality, Keywords: []string{
				"quality", "completeness", "freshness", "schema", "drift",
				"null", "duplicate", "anomal", "accuracy", "validation", "data check",
			}},
			{Category: AlertManagement, Keywords: []string{
				"alert", "notify", "notification", "escalat", "pager",
				"incident", "sla", "severity", "on-call", "channel",
			}},
			{Category: Recovery, Keywords: []string{
				"recover", "retry", "rollback", "backfill", "restart",
				"fix", "restor", "failover", "fallback", "manual",
			}},
		}),
		Routes: map[category.Category]Route{
			PipelineHealth:  {Task: "check_pipeline", Agent: "pipeline_health_checker"},
			DataQuality:     {Task: "analyze_data_quality", Agent: "data_quality_analyzer"},
			AlertManagement: {Task: "manage_alerts", Agent: "alert_manager"},
			Recovery:        {Task: "advise_recovery", Agent: "recovery_advisor"},
		},
		Bindings: map[string][]string{
			"pipeline_health_checker": {"check_pipeline_status", "search_runbook"},
			"data_quality_analyzer":   {"query_data_metrics", "search_runbook"},
			"alert_manager":           {"search_runbook"},
			"recovery_advisor":        {"check_pipeline_status", "search_runbook"},
		},
		Tools: dataPipelineTools,
	}
}

func dataPipelineTools(ctx context.Context, env *ToolEnv) ([]tool.Tool, error) {
	return collect(
		func() (tool.Tool, error) {
			return lookupTool(ctx, env, "pipelines", record.LookupConfig{
				Name:        "check_pipeline_status",
				Description: "Check run status, duration, throughput, and errors of a data pipeline (e.g., ETL-001).",
				Argument:    "pipeline_id",
				Entity:      "Pipeline",
				Plural:      "pipelines",
				Key:         record.UpperKey,
			})
		},
		func() (tool.Tool, error) {
			return lookupTool(ctx, env, "datasets", record.LookupConfig{
				Name:        "query_data_metrics",
				Description: "Query completeness, freshness, schema drift, null and duplicate rates for a dataset.",
				Argument:    "dataset_name",
				Entity:      "Dataset",
				Plural:      "datasets",
				Key:         record.SnakeKey,
			})
		},
		ready(searchTool(env, knowledge.SearchConfig{
			Name:        "search_runbook",
			Description: "Search the data pipeline runbook for operational procedures and troubleshooting guides.",
			Marker:      h3Marker,
			MaxResults:  defaultResults,
			MaxRunes:    defaultRunes,
			Snippet:     true,
			NotFound:    "No runbook articles found for: %s",
		})),
	)
}
