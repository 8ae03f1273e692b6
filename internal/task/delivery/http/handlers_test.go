package http

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"

	"web3-todo-list/internal/middleware"
	"web3-todo-list/internal/model"
	"web3-todo-list/internal/task"
)

type mockLogger struct{}

func (m *mockLogger) Debug(ctx context.Context, args ...any)                  {}
func (m *mockLogger) Debugf(ctx context.Context, format string, args ...any)  {}
func (m *mockLogger) Info(ctx context.Context, args ...any)                   {}
func (m *mockLogger) Infof(ctx context.Context, format string, args ...any)   {}
func (m *mockLogger) Warn(ctx context.Context, args ...any)                   {}
func (m *mockLogger) Warnf(ctx context.Context, format string, args ...any)   {}
func (m *mockLogger) Error(ctx context.Context, args ...any)                  {}
func (m *mockLogger) Errorf(ctx context.Context, format string, args ...any)  {}
func (m *mockLogger) DPanic(ctx context.Context, args ...any)                 {}
func (m *mockLogger) DPanicf(ctx context.Context, format string, args ...any) {}
func (m *mockLogger) Panic(ctx context.Context, args ...any)                  {}
func (m *mockLogger) Panicf(ctx context.Context, format string, args ...any)  {}
func (m *mockLogger) Fatal(ctx context.Context, args ...any)                  {}
func (m *mockLogger) Fatalf(ctx context.Context, format string, args ...any)  {}

type mockUseCase struct {
	count     task.CountOutput
	tasks     map[uint64]model.Task
	list      task.ListOutput
	stats     task.StatsOutput
	createErr error
	writeErr  error
	readErr   error

	createCalls []task.CreateInput
	completed   []uint64
}

func (m *mockUseCase) Count(ctx context.Context) (task.CountOutput, error) {
	return m.count, m.readErr
}

func (m *mockUseCase) Detail(ctx context.Context, id uint64) (task.DetailOutput, error) {
	t, ok := m.tasks[id]
	if !ok {
		return task.DetailOutput{}, fmt.Errorf("%w: execution reverted", task.ErrTaskNotFound)
	}
	return task.DetailOutput{Task: t}, nil
}

func (m *mockUseCase) Create(ctx context.Context, input task.CreateInput) (task.CreateOutput, error) {
	m.createCalls = append(m.createCalls, input)
	if m.createErr != nil {
		return task.CreateOutput{}, m.createErr
	}
	return task.CreateOutput{TxHash: "0xabc", Block: 7}, nil
}

func (m *mockUseCase) Complete(ctx context.Context, id uint64) (task.CompleteOutput, error) {
	m.completed = append(m.completed, id)
	if m.writeErr != nil {
		return task.CompleteOutput{}, m.writeErr
	}
	return task.CompleteOutput{TxHash: "0xdef", Block: 8}, nil
}

func (m *mockUseCase) List(ctx context.Context) (task.ListOutput, error) {
	return m.list, m.readErr
}

func (m *mockUseCase) Stats(ctx context.Context) (task.StatsOutput, error) {
	return m.stats, m.readErr
}

func (m *mockUseCase) Watch(ctx context.Context) error { return nil }

type envelope struct {
	ErrorCode int               `json:"error_code"`
	Message   string            `json:"message"`
	Data      json.RawMessage   `json:"data"`
	Errors    map[string]string `json:"errors"`
}

var sampleTask = model.Task{
	ID:          1,
	Title:       "Ship release",
	Description: "Tag and publish",
	DueDate:     1777777777,
	Priority:    model.PrioritySchedule,
	Owner:       "0x70997970C51812dc3A010C7d01b50e0d17dc79C8",
}

func newRouter(uc task.UseCase) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	RegisterRoutes(r.Group(""), New(&mockLogger{}, uc), middleware.New(&mockLogger{}, middleware.Config{}))
	return r
}

func serve(t *testing.T, r *gin.Engine, method, path, body string) (int, envelope) {
	t.Helper()
	var req *http.Request
	if body != "" {
		req = httptest.NewRequest(method, path, strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
	} else {
		req = httptest.NewRequest(method, path, nil)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	var env envelope
	if err := json.Unmarshal(w.Body.Bytes(), &env); err != nil {
		t.Fatalf("decode response %q: %v", w.Body.String(), err)
	}
	return w.Code, env
}

func TestCount(t *testing.T) {
	r := newRouter(&mockUseCase{count: task.CountOutput{Count: 3}})

	code, env := serve(t, r, http.MethodGet, "/tasks/count", "")
	if code != http.StatusOK {
		t.Fatalf("expected 200, got %d", code)
	}
	var data countResp
	_ = json.Unmarshal(env.Data, &data)
	if data.Count != 3 {
		t.Errorf("expected count 3, got %d", data.Count)
	}

	r = newRouter(&mockUseCase{readErr: errors.New("dial tcp: connection refused")})
	code, env = serve(t, r, http.MethodGet, "/tasks/count", "")
	if code != http.StatusBadRequest || env.Message != "dial tcp: connection refused" {
		t.Errorf("expected 400 with chain message, got %d %q", code, env.Message)
	}
}

func TestDetail(t *testing.T) {
	r := newRouter(&mockUseCase{tasks: map[uint64]model.Task{1: sampleTask}})

	t.Run("found", func(t *testing.T) {
		code, env := serve(t, r, http.MethodGet, "/tasks/1", "")
		if code != http.StatusOK {
			t.Fatalf("expected 200, got %d", code)
		}
		var data struct {
			Task map[string]any `json:"task"`
		}
		_ = json.Unmarshal(env.Data, &data)
		if data.Task["title"] != "Ship release" || data.Task["priorityLabel"] != "schedule" {
			t.Errorf("unexpected task %v", data.Task)
		}
		if data.Task["value"] != "50000" || data.Task["dueAt"] != "2026-05-03 03:09:37" {
			t.Errorf("unexpected stake or due date %v", data.Task)
		}
	})

	t.Run("not found", func(t *testing.T) {
		code, env := serve(t, r, http.MethodGet, "/tasks/99", "")
		if code != http.StatusNotFound || env.Message != task.ErrTaskNotFound.Error() {
			t.Errorf("expected 404, got %d %q", code, env.Message)
		}
	})

	t.Run("invalid id", func(t *testing.T) {
		for _, path := range []string{"/tasks/abc", "/tasks/-1", "/tasks/1.5"} {
			code, env := serve(t, r, http.MethodGet, path, "")
			if code != http.StatusBadRequest || env.Message != errInvalidID.Error() {
				t.Errorf("%s: expected 400, got %d %q", path, code, env.Message)
			}
		}
	})
}

func TestCreate(t *testing.T) {
	const valid = `{"title":"Ship release","description":"Tag and publish","dueDate":1999999999,"priority":0,"value":"100000"}`

	t.Run("created", func(t *testing.T) {
		uc := &mockUseCase{}
		code, env := serve(t, newRouter(uc), http.MethodPost, "/tasks", valid)
		if code != http.StatusCreated {
			t.Fatalf("expected 201, got %d (%s)", code, env.Message)
		}
		var data txResp
		_ = json.Unmarshal(env.Data, &data)
		if data.TxHash != "0xabc" || data.Block != 7 {
			t.Errorf("unexpected tx %+v", data)
		}
		if len(uc.createCalls) != 1 {
			t.Fatalf("expected one Create call, got %d", len(uc.createCalls))
		}
		in := uc.createCalls[0]
		if in.Priority != 0 || in.Value != "100000" || in.DueDate != 1999999999 {
			t.Errorf("unexpected input %+v", in)
		}
	})

	t.Run("binding errors", func(t *testing.T) {
		tests := []struct {
			name  string
			body  string
			field string
		}{
			{"value not whitelisted", `{"title":"a","description":"b","dueDate":1999999999,"priority":0,"value":"123"}`, "value"},
			{"priority out of range", `{"title":"a","description":"b","dueDate":1999999999,"priority":4,"value":"1000"}`, "priority"},
			{"missing priority", `{"title":"a","description":"b","dueDate":1999999999,"value":"1000"}`, "priority"},
			{"missing title", `{"description":"b","dueDate":1999999999,"priority":3,"value":"1000"}`, "title"},
		}
		for _, tt := range tests {
			t.Run(tt.name, func(t *testing.T) {
				uc := &mockUseCase{}
				code, env := serve(t, newRouter(uc), http.MethodPost, "/tasks", tt.body)
				if code != http.StatusBadRequest {
					t.Fatalf("expected 400, got %d", code)
				}
				if _, ok := env.Errors[tt.field]; !ok {
					t.Errorf("expected error for %q, got %v", tt.field, env.Errors)
				}
				if len(uc.createCalls) != 0 {
					t.Error("use case must not be called")
				}
			})
		}
	})

	t.Run("malformed json", func(t *testing.T) {
		code, env := serve(t, newRouter(&mockUseCase{}), http.MethodPost, "/tasks", `{"title":`)
		if code != http.StatusBadRequest || env.Message != errInvalidPayload.Error() {
			t.Errorf("expected 400 invalid payload, got %d %q", code, env.Message)
		}
	})

	t.Run("due date in the past", func(t *testing.T) {
		uc := &mockUseCase{createErr: task.ErrDueDateNotInFuture}
		body := `{"title":"a","description":"b","dueDate":1,"priority":1,"value":"50000"}`
		code, env := serve(t, newRouter(uc), http.MethodPost, "/tasks", body)
		if code != http.StatusBadRequest || env.Message != task.ErrDueDateNotInFuture.Error() {
			t.Errorf("expected 400, got %d %q", code, env.Message)
		}
	})
}

func TestComplete(t *testing.T) {
	uc := &mockUseCase{}
	r := newRouter(uc)

	code, env := serve(t, r, http.MethodPost, "/tasks/2/complete", "")
	if code != http.StatusOK {
		t.Fatalf("expected 200, got %d", code)
	}
	var data txResp
	_ = json.Unmarshal(env.Data, &data)
	if data.TxHash != "0xdef" || len(uc.completed) != 1 || uc.completed[0] != 2 {
		t.Errorf("unexpected result %+v calls %v", data, uc.completed)
	}

	revert := "execution reverted: custom error 0x" + "de7b6ed2"
	uc.writeErr = errors.New(revert)
	code, env = serve(t, r, http.MethodPost, "/tasks/2/complete", "")
	if code != http.StatusBadRequest || env.Message != revert {
		t.Errorf("expected contract error unchanged, got %d %q", code, env.Message)
	}

	code, _ = serve(t, r, http.MethodPost, "/tasks/-1/complete", "")
	if code != http.StatusBadRequest {
		t.Errorf("expected 400 for negative id, got %d", code)
	}
}

func TestList(t *testing.T) {
	second := sampleTask
	second.ID = 2
	second.IsCompleted = true
	uc := &mockUseCase{list: task.ListOutput{Tasks: []model.Task{sampleTask, second}, Count: 3}}

	code, env := serve(t, newRouter(uc), http.MethodGet, "/tasks", "")
	if code != http.StatusOK {
		t.Fatalf("expected 200, got %d", code)
	}
	var data struct {
		Items []map[string]any `json:"items"`
		Count uint64           `json:"count"`
	}
	_ = json.Unmarshal(env.Data, &data)
	if len(data.Items) != 2 || data.Count != 3 {
		t.Fatalf("unexpected list %+v", data)
	}
	if data.Items[1]["id"] != float64(2) || data.Items[1]["isCompleted"] != true {
		t.Errorf("unexpected second item %+v", data.Items[1])
	}

	code, env = serve(t, newRouter(&mockUseCase{list: task.ListOutput{Tasks: []model.Task{}}}), http.MethodGet, "/tasks", "")
	if code != http.StatusOK || !strings.Contains(string(env.Data), `"items":[]`) {
		t.Errorf("expected empty items array, got %d %s", code, env.Data)
	}
}

func TestStats(t *testing.T) {
	uc := &mockUseCase{stats: task.StatsOutput{Total: 3, Completed: 1, Pending: 2, StakeInCustody: "101000"}}

	code, env := serve(t, newRouter(uc), http.MethodGet, "/tasks/stats", "")
	if code != http.StatusOK {
		t.Fatalf("expected 200, got %d", code)
	}
	var data statsResp
	_ = json.Unmarshal(env.Data, &data)
	if data != (statsResp{Total: 3, Completed: 1, Pending: 2, StakeInCustody: "101000"}) {
		t.Errorf("unexpected stats %+v", data)
	}
}
