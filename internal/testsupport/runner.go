package testsupport

import (
	"context"
	"sync"

	"isorip/internal/command"
)

// Call records one invocation seen by FakeRunner.
type Call struct {
	Binary string
	Args   []string
}

// Response is what FakeRunner hands back for a call.
type Response struct {
	Result command.Result
	Err    error
}

// Stdout builds a successful response printing out on stdout.
func Stdout(out string) Response {
	return Response{Result: command.Result{Stdout: []byte(out)}}
}

// Stderr builds a response printing errOut on stderr.
func Stderr(errOut string) Response {
	return Response{Result: command.Result{Stderr: []byte(errOut)}}
}

// FakeRunner is a command.Runner that records calls and replays queued
// responses per binary. The last queued response for a binary repeats;
// binaries with no responses get an empty result.
type FakeRunner struct {
	mu        sync.Mutex
	calls     []Call
	responses map[string][]Response
}

// NewFakeRunner returns an empty FakeRunner.
func NewFakeRunner() *FakeRunner {
	return &FakeRunner{responses: make(map[string][]Response)}
}

// On queues responses for binary.
func (f *FakeRunner) On(binary string, responses ...Response) *FakeRunner {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.responses[binary] = append(f.responses[binary], responses...)
	return f
}

// Run implements command.Runner.
func (f *FakeRunner) Run(_ context.Context, binary string, args ...string) (command.Result, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.calls = append(f.calls, Call{Binary: binary, Args: append([]string(nil), args...)})
	queue := f.responses[binary]
	if len(queue) == 0 {
		return command.Result{}, nil
	}
	resp := queue[0]
	if len(queue) > 1 {
		f.responses[binary] = queue[1:]
	}
	return resp.Result, resp.Err
}

// Calls returns every recorded call in order.
func (f *FakeRunner) Calls() []Call {
	f.mu.Lock()
	defer f.mu.Unlock()
	return append([]Call(nil), f.calls...)
}

// CallsTo returns the recorded calls for binary in order.
func (f *FakeRunner) CallsTo(binary string) []Call {
	f.mu.Lock()
	defer f.mu.Unlock()
	var out []Call
	for _, call := range f.calls {
		if call.Binary == binary {
			out = append(out, call)
		}
	}
	return out
}
