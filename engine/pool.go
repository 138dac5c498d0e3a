package engine

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/google/uuid"
)

var (
	ErrPoolClosed  = errors.New("engine: pool closed")
	ErrUnknownTask = errors.New("engine: unknown task")
)

// Tasks understood by the pool.
const (
	TaskParse        = "parse"
	TaskOutline      = "outline"
	TaskFindFunction = "findFunction"
)

// DefaultFileType is used for requests that do not name one.
const DefaultFileType = "js"

type Request struct {
	ID     uuid.UUID `json:"id"`
	Source string    `json:"source"`
	Task   string    `json:"task"`
	Type   string    `json:"type,omitempty"`
	Args   []string  `json:"args,omitempty"`
}

// Response carries either a Value or, when IsError is set, the line and
// message of the failure.
type Response struct {
	ID      uuid.UUID `json:"id"`
	Value   any       `json:"value,omitempty"`
	IsError bool      `json:"isError,omitempty"`
	Line    int       `json:"line,omitempty"`
	Message string    `json:"message,omitempty"`
}

type job struct {
	ctx   context.Context
	req   Request
	reply chan Response
}

// Pool serves requests on a fixed number of worker goroutines.
type Pool struct {
	resolver *Resolver
	jobs     chan job
	logger   *slog.Logger
	wg       sync.WaitGroup

	mu     sync.RWMutex
	closed bool
}

type poolOptions struct {
	workers int
	queue   int
	logger  *slog.Logger
}

type PoolOption func(*poolOptions)

// WithWorkers sets the number of workers. Values below one are raised to one.
func WithWorkers(n int) PoolOption {
	return func(o *poolOptions) { o.workers = n }
}

// WithQueue sets how many requests may wait for a worker.
func WithQueue(n int) PoolOption {
	return func(o *poolOptions) { o.queue = n }
}

func WithLogger(logger *slog.Logger) PoolOption {
	return func(o *poolOptions) { o.logger = logger }
}

// NewPool starts the workers. Close stops them.
func NewPool(resolver *Resolver, opts ...PoolOption) *Pool {
	o := poolOptions{workers: 1, queue: 16, logger: slog.Default()}
	for _, opt := range opts {
		opt(&o)
	}
	o.workers = max(o.workers, 1)
	o.queue = max(o.queue, 0)

	p := &Pool{
		resolver: resolver,
		jobs:     make(chan job, o.queue),
		logger:   o.logger,
	}
	for i := 0; i < o.workers; i++ {
		p.wg.Add(1)
		go p.work(i)
	}
	return p
}

// Submit queues req and waits for its response. A request without an ID is
// given one. Cancelling ctx abandons the wait; a parse already running is
// not interrupted.
func (p *Pool) Submit(ctx context.Context, req Request) (Response, error) {
	switch req.Task {
	case TaskParse, TaskOutline, TaskFindFunction:
	default:
		return Response{}, fmt.Errorf("%w %q", ErrUnknownTask, req.Task)
	}
	if req.ID == uuid.Nil {
		req.ID = uuid.New()
	}
	if req.Type == "" {
		req.Type = DefaultFileType
	}

	reply := make(chan Response, 1)
	p.mu.RLock()
	if p.closed {
		p.mu.RUnlock()
		return Response{}, ErrPoolClosed
	}
	select {
	case p.jobs <- job{ctx: ctx, req: req, reply: reply}:
		p.mu.RUnlock()
	case <-ctx.Done():
		p.mu.RUnlock()
		return Response{}, ctx.Err()
	}

	select {
	case resp := <-reply:
		return resp, nil
	case <-ctx.Done():
		return Response{}, ctx.Err()
	}
}

// Close stops accepting requests, lets the workers finish the queue and
// waits for them.
func (p *Pool) Close() {
	p.mu.Lock()
	if p.closed {
		p.mu.Unlock()
		return
	}
	p.closed = true
	close(p.jobs)
	p.mu.Unlock()
	p.wg.Wait()
}

func (p *Pool) work(id int) {
	defer p.wg.Done()
	for j := range p.jobs {
		if j.ctx.Err() != nil {
			p.logger.Debug("Skipping cancelled request", "worker", id, "id", j.req.ID)
			continue
		}
		start := time.Now()
		resp := p.handle(j.req)
		p.logger.Debug("Handled request",
			"worker", id,
			"id", j.req.ID,
			"task", j.req.Task,
			"error", resp.IsError,
			"duration", time.Since(start))
		j.reply <- resp
	}
}

func (p *Pool) handle(req Request) Response {
	res, err := p.resolver.Parse(req.Type, req.Source)
	if err != nil {
		return Response{ID: req.ID, IsError: true, Message: err.Error()}
	}

	switch req.Task {
	case TaskParse:
		res.Outline = nil
		return Response{ID: req.ID, Value: res}
	case TaskOutline:
		return Response{ID: req.ID, Value: res}
	}

	// findFunction
	if len(req.Args) == 0 {
		return Response{ID: req.ID, IsError: true, Message: "findFunction needs a function name"}
	}
	for _, msg := range res.Messages {
		if msg.Type == TypeError {
			return Response{ID: req.ID, IsError: true, Line: msg.Line, Message: msg.Message}
		}
	}
	if res.Outline != nil {
		if fn, ok := res.Outline.FindFunction(req.Args[0]); ok {
			return Response{ID: req.ID, Value: fn.Line}
		}
	}
	return Response{ID: req.ID, IsError: true, Message: fmt.Sprintf("function %s not found", req.Args[0])}
}
