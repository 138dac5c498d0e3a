// Package engine runs source analysis on behalf of editors: engines that
// understand a file type, a resolver choosing engines by type, and a pool of
// workers serving requests.
package engine

import (
	"errors"
	"fmt"
	"sync"

	"github.com/t14raptor/jsparse/outline"
	"github.com/t14raptor/jsparse/parser"
	"github.com/t14raptor/jsparse/parser/scanner"
)

// ErrNoEngine is returned when no engine is registered for a file type.
var ErrNoEngine = errors.New("engine: no engine for file type")

// Message severities.
const (
	TypeError   = "error"
	TypeWarning = "warning"
)

type Message struct {
	Message string `json:"message"`
	Line    int    `json:"line"`
	Type    string `json:"type"`
}

// Result is what an engine reports for one source text.
type Result struct {
	Messages []Message     `json:"messages"`
	Outline  *outline.Info `json:"outline,omitempty"`
}

// Engine analyses source text of the file types it is registered for.
type Engine interface {
	Name() string
	Parse(source, fileType string) Result
}

// JavaScript parses scripts and extracts their outline.
type JavaScript struct {
	Patterns []outline.Pattern
	Strict   bool
}

// NewJavaScript returns an engine matching the given declaration patterns.
// A nil slice selects outline.DefaultPatterns.
func NewJavaScript(patterns []outline.Pattern, strict bool) *JavaScript {
	if patterns == nil {
		patterns = outline.DefaultPatterns()
	}
	return &JavaScript{Patterns: patterns, Strict: strict}
}

func (*JavaScript) Name() string { return "javascript" }

func (j *JavaScript) Parse(source, _ string) Result {
	prog, err := parser.ParseFile(source, parser.WithStrict(j.Strict))
	if err != nil {
		return Result{Messages: []Message{errorMessage(err)}}
	}
	return Result{Outline: outline.Extract(prog, j.Patterns)}
}

func errorMessage(err error) Message {
	var syntaxErr *scanner.SyntaxError
	if errors.As(err, &syntaxErr) {
		return Message{Message: syntaxErr.Message, Line: syntaxErr.Line, Type: TypeError}
	}
	return Message{Message: err.Error(), Type: TypeError}
}

// Resolver maps file types to the engines registered for them.
type Resolver struct {
	mu      sync.RWMutex
	engines map[string][]Engine
}

func NewResolver() *Resolver {
	return &Resolver{engines: make(map[string][]Engine)}
}

// Register adds e for every listed file type, after any engines already
// registered for it.
func (r *Resolver) Register(e Engine, fileTypes ...string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, typ := range fileTypes {
		r.engines[typ] = append(r.engines[typ], e)
	}
}

// Resolve returns the engines for fileType in registration order.
func (r *Resolver) Resolve(fileType string) []Engine {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return append([]Engine(nil), r.engines[fileType]...)
}

// Parse runs every engine for fileType and merges their results: messages
// are concatenated and a later engine's outline replaces an earlier one.
func (r *Resolver) Parse(fileType, source string) (Result, error) {
	engines := r.Resolve(fileType)
	if len(engines) == 0 {
		return Result{}, fmt.Errorf("%w %q", ErrNoEngine, fileType)
	}
	var merged Result
	for _, e := range engines {
		res := e.Parse(source, fileType)
		merged.Messages = append(merged.Messages, res.Messages...)
		if res.Outline != nil {
			merged.Outline = res.Outline
		}
	}
	return merged, nil
}
