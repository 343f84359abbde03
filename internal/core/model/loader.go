package model

import (
	"os"
	"sync"
	"time"

	"inspectgrade/internal/platform/logger"
)

// readFile is a seam for tests
var readFile = os.ReadFile

// Provider hands out the process model, nil when none could be loaded
type Provider interface {
	Model() Model
}

// Info describes the outcome of the load for meta endpoints
type Info struct {
	Path     string    `json:"path"`
	Loaded   bool      `json:"loaded"`
	Name     string    `json:"name,omitempty"`
	Schema   string    `json:"schema,omitempty"`
	Kind     string    `json:"kind,omitempty"`
	Features int       `json:"features,omitempty"`
	LoadedAt time.Time `json:"loaded_at,omitzero"`
	Error    string    `json:"error,omitempty"`
}

// Loader reads the artifact at path at most once per process
// Every failure is logged and memoized as an absent model
type Loader struct {
	path string

	once  sync.Once
	model Model
	info  Info
	err   error
}

// NewLoader returns a loader for path; nothing is read until Model is called
func NewLoader(path string) *Loader {
	return &Loader{path: path, info: Info{Path: path}}
}

// Path returns the artifact path
func (l *Loader) Path() string { return l.path }

// Model returns the loaded model or nil; the file is read on the first call only
func (l *Loader) Model() Model {
	l.once.Do(l.load)
	return l.model
}

// Err returns why the model is absent, nil when it loaded; the load is triggered if needed
func (l *Loader) Err() error {
	l.once.Do(l.load)
	return l.err
}

// Info returns load details, triggering the load if needed
func (l *Loader) Info() Info {
	l.once.Do(l.load)
	return l.info
}

func (l *Loader) load() {
	log := logger.Named("model")

	data, err := readFile(l.path)
	if err != nil {
		l.fail(err)
		log.Warn().Err(err).Str("path", l.path).Msg("model artifact not loaded")
		return
	}
	a, err := Decode(data, l.path)
	if err != nil {
		l.fail(err)
		log.Error().Err(err).Str("path", l.path).Msg("model artifact unreadable")
		return
	}
	m, err := Compile(a)
	if err != nil {
		l.fail(err)
		log.Error().Err(err).Str("path", l.path).Msg("model artifact rejected")
		return
	}

	l.model = m
	l.info = Info{
		Path:     l.path,
		Loaded:   true,
		Name:     a.Name,
		Schema:   m.Schema().Name,
		Kind:     m.Kind(),
		Features: len(m.Schema().Keys),
		LoadedAt: time.Now().UTC(),
	}
	log.Info().Str("path", l.path).Str("schema", l.info.Schema).Str("kind", l.info.Kind).Msg("model loaded")
}

func (l *Loader) fail(err error) {
	l.err = err
	l.info = Info{Path: l.path, Error: err.Error()}
}

// Static is a Provider over a fixed model, useful in tests and tools
type Static struct{ M Model }

// Model implements Provider
func (s Static) Model() Model { return s.M }

// Info implements the loader's Info for a fixed model
func (s Static) Info() Info {
	if s.M == nil {
		return Info{Error: "no model"}
	}
	return Info{Loaded: true, Schema: s.M.Schema().Name, Kind: s.M.Kind(), Features: len(s.M.Schema().Keys)}
}
