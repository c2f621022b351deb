package controller

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http/httptest"
	"strings"
	"testing"

	"notes-app-be/internal/dto"
	"notes-app-be/internal/pkg/logger"
	"notes-app-be/internal/pkg/serverutils"
	"notes-app-be/internal/service"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeNoteService struct {
	calls     int
	notes     []dto.NoteResponse
	listErr   error
	createErr error
	deleteErr error
	deleted   []int64
}

func (f *fakeNoteService) List(ctx context.Context) ([]dto.NoteResponse, error) {
	f.calls++
	return f.notes, f.listErr
}

func (f *fakeNoteService) Create(ctx context.Context, req *dto.CreateNoteRequest) (*dto.NoteResponse, error) {
	f.calls++
	if f.createErr != nil {
		return nil, f.createErr
	}
	return &dto.NoteResponse{Id: 1, Title: req.Title, Content: req.Content}, nil
}

func (f *fakeNoteService) Delete(ctx context.Context, id int64) error {
	f.calls++
	f.deleted = append(f.deleted, id)
	return f.deleteErr
}

func newTestApp(svc service.INoteService) *fiber.App {
	app := fiber.New(fiber.Config{ErrorHandler: serverutils.ErrorHandler(logger.NewNopLogger())})
	NewNoteController(svc, logger.NewNopLogger()).RegisterRoutes(app.Group("/api"))
	return app
}

func doRequest(t *testing.T, app *fiber.App, method, path, body string) (int, string) {
	t.Helper()
	var reader io.Reader
	if body != "" {
		reader = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, path, reader)
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	raw, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	return resp.StatusCode, string(raw)
}

func TestDeleteInvalidIdNeverTouchesService(t *testing.T) {
	svc := &fakeNoteService{}
	app := newTestApp(svc)

	for _, id := range []string{"", "abc", "1.5", "12abc", "%20", "99999999999999999999"} {
		t.Run("id="+id, func(t *testing.T) {
			code, body := doRequest(t, app, "DELETE", "/api/notes/"+id, "")
			assert.Equal(t, fiber.StatusBadRequest, code)
			assert.JSONEq(t, `{"error":"Invalid ID"}`, body)
		})
	}
	assert.Zero(t, svc.calls)
}

func TestDeleteOutcomes(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		wantCode int
		wantBody string
	}{
		{name: "removed", wantCode: 200, wantBody: `{"message":"Note deleted"}`},
		{name: "absent", err: service.ErrNoteNotFound, wantCode: 404, wantBody: `{"error":"Note not found"}`},
		{name: "store fault", err: errors.New("connection reset"), wantCode: 500, wantBody: `{"error":"Failed to delete note"}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc := &fakeNoteService{deleteErr: tt.err}
			code, body := doRequest(t, newTestApp(svc), "DELETE", "/api/notes/42", "")
			assert.Equal(t, tt.wantCode, code)
			assert.JSONEq(t, tt.wantBody, body)
			assert.Equal(t, []int64{42}, svc.deleted)
		})
	}
}

func TestListOutcomes(t *testing.T) {
	svc := &fakeNoteService{notes: []dto.NoteResponse{{Id: 3, Title: "a", Content: "b"}}}
	code, body := doRequest(t, newTestApp(svc), "GET", "/api/notes", "")
	assert.Equal(t, 200, code)
	assert.JSONEq(t, `[{"id":3,"title":"a","content":"b"}]`, body)

	svc = &fakeNoteService{listErr: errors.New("db down")}
	code, body = doRequest(t, newTestApp(svc), "GET", "/api/notes", "")
	assert.Equal(t, 500, code)
	assert.JSONEq(t, `{"error":"Failed to fetch notes"}`, body)
}

func TestCreateOutcomes(t *testing.T) {
	tests := []struct {
		name      string
		body      string
		createErr error
		wantCode  int
		wantError string
		wantCalls int
	}{
		{name: "created", body: `{"title":"t","content":"c"}`, wantCode: 201, wantCalls: 1},
		{name: "malformed json", body: `{"title":`, wantCode: 400, wantError: "Invalid request body"},
		{name: "missing content", body: `{"title":"t"}`, wantCode: 400, wantError: "Title and content are required"},
		{name: "blank title", body: `{"title":"  ","content":"c"}`, wantCode: 400, wantError: "Title and content are required"},
		{name: "store fault", body: `{"title":"t","content":"c"}`, createErr: errors.New("disk full"), wantCode: 500, wantError: "Failed to create note", wantCalls: 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc := &fakeNoteService{createErr: tt.createErr}
			code, body := doRequest(t, newTestApp(svc), "POST", "/api/notes", tt.body)
			assert.Equal(t, tt.wantCode, code)
			assert.Equal(t, tt.wantCalls, svc.calls)

			if tt.wantError != "" {
				var res serverutils.ErrorBody
				require.NoError(t, json.Unmarshal([]byte(body), &res))
				assert.Equal(t, tt.wantError, res.Error)
				return
			}
			assert.JSONEq(t, `{"id":1,"title":"t","content":"c"}`, body)
		})
	}
}
