package server

import (
	"context"
	"io"
	"net"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/gorilla/websocket"

	"github.com/t14raptor/jsparse/engine"
)

func newPool(t *testing.T) *engine.Pool {
	t.Helper()
	r := engine.NewResolver()
	r.Register(engine.NewJavaScript(nil, false), engine.DefaultFileType)
	p := engine.NewPool(r, engine.WithWorkers(2))
	t.Cleanup(p.Close)
	return p
}

func dial(t *testing.T, ts *httptest.Server) *websocket.Conn {
	t.Helper()
	url := "ws" + strings.TrimPrefix(ts.URL, "http") + "/parse"
	conn, _, err := websocket.DefaultDialer.Dial(url, nil)
	if err != nil {
		t.Fatalf("dial: %v", err)
	}
	t.Cleanup(func() { conn.Close() })
	return conn
}

// response mirrors engine.Response with the value left undecoded.
type response struct {
	ID      uuid.UUID      `json:"id"`
	Value   map[string]any `json:"value"`
	IsError bool           `json:"isError"`
	Line    int            `json:"line"`
	Message string         `json:"message"`
}

func roundTrip(t *testing.T, conn *websocket.Conn, msg string) response {
	t.Helper()
	if err := conn.WriteMessage(websocket.TextMessage, []byte(msg)); err != nil {
		t.Fatal(err)
	}
	var resp response
	if err := conn.ReadJSON(&resp); err != nil {
		t.Fatal(err)
	}
	return resp
}

func TestParseEndpoint(t *testing.T) {
	ts := httptest.NewServer(New(newPool(t), nil).Handler())
	defer ts.Close()
	conn := dial(t, ts)

	id := uuid.New()
	resp := roundTrip(t, conn, `{"id":"`+id.String()+`","task":"outline","source":"function f() {}"}`)
	if resp.ID != id || resp.IsError {
		t.Fatalf("resp = %+v", resp)
	}
	outline, ok := resp.Value["outline"].(map[string]any)
	if !ok {
		t.Fatalf("value = %+v", resp.Value)
	}
	if fns := outline["functions"].([]any); len(fns) != 1 {
		t.Errorf("functions = %v", fns)
	}

	resp = roundTrip(t, conn, `{"task":"parse","source":"a = ;"}`)
	msgs := resp.Value["messages"].([]any)
	if len(msgs) != 1 || msgs[0].(map[string]any)["message"] != "Missing operand" {
		t.Errorf("messages = %v", msgs)
	}
}

func TestParseEndpointErrors(t *testing.T) {
	ts := httptest.NewServer(New(newPool(t), nil).Handler())
	defer ts.Close()
	conn := dial(t, ts)

	tests := []struct {
		msg  string
		want string
	}{
		{`not json`, "invalid request"},
		{`{"task":"compile"}`, "unknown task"},
		{`{"task":"findFunction","source":"\nx = ;","args":["f"]}`, "Missing operand"},
	}
	for _, tt := range tests {
		resp := roundTrip(t, conn, tt.msg)
		if !resp.IsError || !strings.Contains(resp.Message, tt.want) {
			t.Errorf("%s: resp = %+v, want error containing %q", tt.msg, resp, tt.want)
		}
	}
}

func TestHealthz(t *testing.T) {
	ts := httptest.NewServer(New(newPool(t), nil).Handler())
	defer ts.Close()

	res, err := http.Get(ts.URL + "/healthz")
	if err != nil {
		t.Fatal(err)
	}
	defer res.Body.Close()
	body, _ := io.ReadAll(res.Body)
	if res.StatusCode != http.StatusOK || string(body) != "ok" {
		t.Errorf("healthz = %d %q", res.StatusCode, body)
	}
}

func TestServeShutdown(t *testing.T) {
	ln, err := net.Listen("tcp", "127.0.0.1:0")
	if err != nil {
		t.Fatal(err)
	}
	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- New(newPool(t), nil).Serve(ctx, ln) }()

	res, err := http.Get("http://" + ln.Addr().String() + "/healthz")
	if err != nil {
		t.Fatal(err)
	}
	res.Body.Close()

	cancel()
	select {
	case err := <-done:
		if err != nil {
			t.Errorf("Serve() = %v", err)
		}
	case <-time.After(5 * time.Second):
		t.Fatal("server did not shut down")
	}
}
