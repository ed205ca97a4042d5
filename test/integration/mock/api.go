package mock

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"sync"
)

// ApiMock is a fake upstream backend. It records every request it receives and
// answers each method+path with the configured status and JSON body.
type ApiMock struct {
	mu               sync.Mutex
	server           *httptest.Server
	headersReceived  map[string][]map[string]string
	queriesReceived  map[string][]map[string]string
	responses        map[string]any
	responseStatuses map[string]int
}

func NewApiServer() *ApiMock {
	return &ApiMock{
		headersReceived:  map[string][]map[string]string{},
		queriesReceived:  map[string][]map[string]string{},
		responses:        map[string]any{},
		responseStatuses: map[string]int{},
	}
}

func (a *ApiMock) Start() {
	a.server = httptest.NewServer(http.HandlerFunc(a.handle))
}

func (a *ApiMock) Close() {
	if a.server != nil {
		a.server.Close()
	}
}

func (a *ApiMock) GetUrl() string {
	if a.server == nil {
		return ""
	}
	return a.server.URL
}

func (a *ApiMock) handle(w http.ResponseWriter, r *http.Request) {
	key := r.Method + r.URL.Path

	a.mu.Lock()
	headers := map[string]string{}
	for name, values := range r.Header {
		headers[name] = values[0]
	}
	a.headersReceived[key] = append(a.headersReceived[key], headers)

	queries := map[string]string{}
	for name, values := range r.URL.Query() {
		queries[name] = values[0]
	}
	a.queriesReceived[key] = append(a.queriesReceived[key], queries)

	status, ok := a.responseStatuses[key]
	if !ok {
		status = http.StatusNotFound
	}
	body, hasBody := a.responses[key]
	a.mu.Unlock()

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if hasBody {
		_ = json.NewEncoder(w).Encode(body)
	} else {
		_, _ = w.Write([]byte(`{"error":"not mocked"}`))
	}
}

// SetResponse configures the answer for method+path. body may be any JSON value.
func (a *ApiMock) SetResponse(method, path string, status int, body any) {
	a.mu.Lock()
	defer a.mu.Unlock()
	a.responses[method+path] = body
	a.responseStatuses[method+path] = status
}

func (a *ApiMock) GetRequestHeaders(method, path string, index int) map[string]string {
	a.mu.Lock()
	defer a.mu.Unlock()
	received := a.headersReceived[method+path]
	if index < 0 || index >= len(received) {
		return nil
	}
	return received[index]
}

func (a *ApiMock) GetRequestQueries(method, path string, index int) map[string]string {
	a.mu.Lock()
	defer a.mu.Unlock()
	received := a.queriesReceived[method+path]
	if index < 0 || index >= len(received) {
		return nil
	}
	return received[index]
}

func (a *ApiMock) RequestCount(method, path string) int {
	a.mu.Lock()
	defer a.mu.Unlock()
	return len(a.queriesReceived[method+path])
}

// Reset drops every configured response and recorded request.
func (a *ApiMock) Reset() {
	a.mu.Lock()
	defer a.mu.Unlock()
	a.headersReceived = map[string][]map[string]string{}
	a.queriesReceived = map[string][]map[string]string{}
	a.responses = map[string]any{}
	a.responseStatuses = map[string]int{}
}
