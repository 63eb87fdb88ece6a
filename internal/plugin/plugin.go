// Package plugin wires the exporter into an editor host: the capability
// check, the menu name and the export action.
package plugin

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"runtime/debug"
	"sync"

	"maptojson/internal/export"
	"maptojson/internal/level"
	"maptojson/internal/persistence/history"
)

const (
	DisplayName = "Map To JSON"

	ErrorTitle = "JSON Export Error"
	ErrorText  = "An error occurred while exporting."

	// LastSaveFolderKey is the host setting consulted when no export has
	// happened yet in this session.
	LastSaveFolderKey = "LastSave/Folder"
)

// Compatible reports whether the plugin can run in this host. The export
// only reads the in-memory level, so every host version qualifies.
func Compatible() bool { return true }

func Name() string { return DisplayName }

// Session is the open editor document.
type Session interface {
	Level() level.Level
}

// Host is the platform glue: a save picker and the two ways of telling the
// user how it went.
type Host interface {
	// ChooseDestination returns ok=false when the user cancels.
	ChooseDestination(defaultName, defaultFolder string) (path string, ok bool, err error)
	ReportSuccess(res export.Result)
	ReportFailure(title, message string)
}

type Settings interface {
	Setting(key, fallback string) string
}

// Recorder persists finished exports. *history.SQLiteHistory implements it.
type Recorder interface {
	Record(ctx context.Context, e history.Entry) (history.Entry, error)
	LastFolder(ctx context.Context) (string, error)
}

// ErrCancelled is returned by Run when the user dismisses the picker.
var ErrCancelled = errors.New("export cancelled")

type Plugin struct {
	host     Host
	settings Settings
	exporter *export.Exporter
	recorder Recorder
	homeDir  func() (string, error)

	mu         sync.Mutex
	lastFolder string
}

func New(host Host, settings Settings, exporter *export.Exporter) *Plugin {
	if exporter == nil {
		exporter = export.New(nil, export.DefaultOptions())
	}
	return &Plugin{
		host:     host,
		settings: settings,
		exporter: exporter,
		homeDir:  os.UserHomeDir,
	}
}

// WithRecorder attaches an export history. It seeds and persists the last
// used folder.
func (p *Plugin) WithRecorder(r Recorder) *Plugin {
	p.recorder = r
	return p
}

func (p *Plugin) LastFolder() string {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.lastFolder
}

// Run performs one export of the session's level: picker, write, report.
// Every failure, panics included, is reported to the host once and returned.
// A failure to record history after a successful write is returned but
// not reported, since the file itself is fine.
func (p *Plugin) Run(ctx context.Context, s Session) (export.Result, error) {
	lvl := s.Level().Clone()

	path, ok, err := p.host.ChooseDestination(DefaultFileName(lvl.Name), p.defaultFolder(ctx))
	if err != nil {
		p.host.ReportFailure(ErrorTitle, err.Error())
		return export.Result{}, fmt.Errorf("choose destination: %w", err)
	}
	if !ok {
		return export.Result{}, ErrCancelled
	}

	res, err := p.export(path, lvl)
	if err != nil {
		p.host.ReportFailure(ErrorTitle, err.Error())
		return export.Result{}, err
	}

	p.mu.Lock()
	p.lastFolder = filepath.Dir(res.Path)
	p.mu.Unlock()
	p.host.ReportSuccess(res)

	if p.recorder != nil {
		entry := history.FromResult(res, p.exporter.Translator().Names.Digest)
		if _, err := p.recorder.Record(ctx, entry); err != nil {
			return res, fmt.Errorf("record history: %w", err)
		}
	}
	return res, nil
}

func (p *Plugin) export(path string, lvl level.Level) (res export.Result, err error) {
	defer func() {
		if r := recover(); r != nil {
			err = &PanicError{Value: r, Stack: debug.Stack()}
		}
	}()
	return p.exporter.WriteFile(path, lvl)
}

// PanicError wraps a panic raised while building or writing the document.
type PanicError struct {
	Value any
	Stack []byte
}

func (e *PanicError) Error() string { return fmt.Sprintf("export panic: %v", e.Value) }

// DefaultFileName is the picker's suggested name for a level.
func DefaultFileName(levelName string) string { return levelName + ".json" }

func (p *Plugin) defaultFolder(ctx context.Context) string {
	if f := p.LastFolder(); f != "" {
		return f
	}
	if p.recorder != nil {
		if f, err := p.recorder.LastFolder(ctx); err == nil && f != "" {
			return f
		}
	}
	if p.settings != nil {
		if f := p.settings.Setting(LastSaveFolderKey, ""); f != "" {
			return f
		}
	}
	if home, err := p.homeDir(); err == nil {
		return home
	}
	return "."
}
