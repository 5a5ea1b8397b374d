package template

import (
	"errors"
	"fmt"
	"io/fs"
	"path"

	"github.com/spf13/afero"

	"github.com/agentdesk/agentdesk/engine/agent"
	"github.com/agentdesk/agentdesk/engine/core"
	"github.com/agentdesk/agentdesk/engine/task"
	"github.com/agentdesk/agentdesk/engine/tool/record"
)

const (
	AgentsFile   = "agents.yaml"
	TasksFile    = "tasks.yaml"
	KnowledgeDir = "knowledge"
	RecordsDir   = "records"
)

// Loader reads template assets laid out as <root>/<template>/{agents.yaml,
// tasks.yaml, knowledge/, records/}. Files are re-read on every call.
type Loader struct {
	fs   afero.Fs
	root string
}

func NewLoader(fsys afero.Fs, root string) *Loader {
	if root == "" {
		root = "."
	}
	return &Loader{fs: fsys, root: root}
}

func (l *Loader) Fs() afero.Fs {
	return l.fs
}

// Dir returns the directory holding a template's assets.
func (l *Loader) Dir(name string) string {
	return path.Join(l.root, name)
}

func (l *Loader) Agents(name string) (agent.Configs, error) {
	data, err := l.read(name, AgentsFile)
	if err != nil {
		return nil, err
	}
	return agent.Parse(data)
}

func (l *Loader) Tasks(name string) (task.Configs, error) {
	data, err := l.read(name, TasksFile)
	if err != nil {
		return nil, err
	}
	return task.Parse(data)
}

// Records parses records/<table>.yaml of a template.
func (l *Loader) Records(name, table string) ([]record.Entry, error) {
	data, err := l.read(name, path.Join(RecordsDir, table+".yaml"))
	if err != nil {
		return nil, err
	}
	entries, err := record.ParseTable(data)
	if err != nil {
		return nil, core.NewError(fmt.Errorf("%s/%s: %w", name, table, err), core.CodeInvalidConfig, nil)
	}
	return entries, nil
}

// Tables lists the record tables bundled with a template.
func (l *Loader) Tables(name string) ([]string, error) {
	matches, err := afero.Glob(l.fs, path.Join(l.Dir(name), RecordsDir, "*.yaml"))
	if err != nil {
		return nil, fmt.Errorf("failed to list record tables of %s: %w", name, err)
	}
	tables := make([]string, 0, len(matches))
	for _, m := range matches {
		base := path.Base(m)
		tables = append(tables, base[:len(base)-len(".yaml")])
	}
	return tables, nil
}

func (l *Loader) read(name, file string) ([]byte, error) {
	p := path.Join(l.Dir(name), file)
	data, err := afero.ReadFile(l.fs, p)
	if errors.Is(err, fs.ErrNotExist) {
		return nil, core.NewError(
			fmt.Errorf("config file %s not found: %w", p, err),
			core.CodeConfigNotFound,
			map[string]any{"path": p},
		)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", p, err)
	}
	return data, nil
}
