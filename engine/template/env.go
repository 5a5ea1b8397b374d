package template

import (
	"context"
	"fmt"
	"path"

	"github.com/agentdesk/agentdesk/engine/tool/knowledge"
	"github.com/agentdesk/agentdesk/engine/tool/record"
)

// RecordSource yields the keyed repository behind a lookup tool.
type RecordSource interface {
	Repository(ctx context.Context, template, table string) (record.Repository, error)
}

// FixtureSource serves records straight from the bundled YAML tables.
type FixtureSource struct {
	loader *Loader
}

func NewFixtureSource(loader *Loader) *FixtureSource {
	return &FixtureSource{loader: loader}
}

func (s *FixtureSource) Repository(_ context.Context, template, table string) (record.Repository, error) {
	entries, err := s.loader.Records(template, table)
	if err != nil {
		return nil, err
	}
	return record.NewMemoryRepository(entries), nil
}

// RedisSource serves records from Redis hashes populated by Seed.
type RedisSource struct {
	client record.RedisClient
	prefix string
}

func NewRedisSource(client record.RedisClient, prefix string) *RedisSource {
	return &RedisSource{client: client, prefix: prefix}
}

func (s *RedisSource) Repository(_ context.Context, template, table string) (record.Repository, error) {
	return record.NewRedisRepository(s.client, s.prefix, TableKey(template, table)), nil
}

// TableKey names a template's table inside a shared store.
func TableKey(template, table string) string {
	return template + ":" + table
}

// Seed copies every bundled record table of the given templates into Redis.
func Seed(ctx context.Context, loader *Loader, client record.RedisClient, prefix string, templates ...string) (int, error) {
	seeded := 0
	for _, name := range templates {
		tables, err := loader.Tables(name)
		if err != nil {
			return seeded, err
		}
		for _, table := range tables {
			entries, err := loader.Records(name, table)
			if err != nil {
				return seeded, err
			}
			repo := record.NewRedisRepository(client, prefix, TableKey(name, table))
			if err := repo.Seed(ctx, entries); err != nil {
				return seeded, fmt.Errorf("failed to seed %s: %w", TableKey(name, table), err)
			}
			seeded++
		}
	}
	return seeded, nil
}

// ToolEnv gives a template's tool factory access to its assets.
type ToolEnv struct {
	template string
	loader   *Loader
	records  RecordSource
}

func NewToolEnv(template string, loader *Loader, records RecordSource) *ToolEnv {
	if records == nil {
		records = NewFixtureSource(loader)
	}
	return &ToolEnv{template: template, loader: loader, records: records}
}

// Corpus returns the template's knowledge documents.
func (e *ToolEnv) Corpus() *knowledge.Corpus {
	return knowledge.NewCorpus(e.loader.Fs(), path.Join(e.loader.Dir(e.template), KnowledgeDir))
}

func (e *ToolEnv) Repository(ctx context.Context, table string) (record.Repository, error) {
	return e.records.Repository(ctx, e.template, table)
}

// Entries reads a bundled table directly, for tools that need declared order.
func (e *ToolEnv) Entries(table string) ([]record.Entry, error) {
	return e.loader.Records(e.template, table)
}
