package server

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	proposal "github.com/alnah/go-proposal"
	"github.com/alnah/go-proposal/internal/store"
)

const testAPIKey = "s3cret"

var fixedNow = time.Date(2026, time.March, 5, 9, 30, 0, 0, time.UTC)

func init() {
	gin.SetMode(gin.TestMode)
}

// newTestServer returns a router over a memory store holding one AI call.
func newTestServer(t *testing.T, cfg Config, gen Generator) (*gin.Engine, *store.MemoryStore) {
	t.Helper()

	if gen == nil {
		g, err := proposal.NewGenerator(proposal.WithClock(func() time.Time { return fixedNow }))
		require.NoError(t, err)
		gen = g
	}
	if cfg.APIKey == "" {
		cfg.APIKey = testAPIKey
	}

	st := store.NewMemoryStore()
	require.NoError(t, st.Create(context.Background(), &store.VoiceLog{
		VoiceID:    "voice-42",
		Transcript: "Client wants an AI chatbot, budget $20k, needs it by Q1",
		AudioURL:   "https://example.com/audio/1.mp3",
		ClientName: "Acme & Sons",
	}))

	s := New(cfg, st, gen, nil)
	s.now = func() time.Time { return fixedNow }
	return s.Router(), st
}

func do(r http.Handler, method, path, body string, header map[string]string) *httptest.ResponseRecorder {
	var req *http.Request
	if body != "" {
		req = httptest.NewRequest(method, path, strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
	} else {
		req = httptest.NewRequest(method, path, nil)
	}
	for k, v := range header {
		req.Header.Set(k, v)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestWebhook_CreatesVoiceLog(t *testing.T) {
	t.Parallel()
	r, st := newTestServer(t, Config{}, nil)

	body := `{"elevenlabs_voice_id":"voice-7","transcript":"We need a new website","audio_url":"https://example.com/a.mp3"}`
	w := do(r, http.MethodPost, "/api/v1/webhook/n8n", body, map[string]string{apiKeyHeader: testAPIKey})

	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	var resp webhookResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "success", resp.Status)
	assert.Equal(t, int64(2), resp.ID)

	v, err := st.Get(context.Background(), resp.ID)
	require.NoError(t, err)
	assert.Equal(t, "voice-7", v.VoiceID)
	assert.Equal(t, "We need a new website", v.Transcript)
	assert.Empty(t, v.ClientName)

	assert.Equal(t, "60", w.Header().Get("X-RateLimit-Limit"))
}

func TestWebhook_Rejections(t *testing.T) {
	t.Parallel()

	valid := `{"elevenlabs_voice_id":"v","transcript":"t","audio_url":"u"}`
	tests := []struct {
		name   string
		body   string
		header map[string]string
		want   int
	}{
		{name: "missing key", body: valid, want: http.StatusUnauthorized},
		{name: "wrong key", body: valid, header: map[string]string{apiKeyHeader: "nope"}, want: http.StatusUnauthorized},
		{name: "missing voice id", body: `{"transcript":"t"}`, header: map[string]string{apiKeyHeader: testAPIKey}, want: http.StatusUnprocessableEntity},
		{name: "malformed json", body: `{"elevenlabs_voice_id":`, header: map[string]string{apiKeyHeader: testAPIKey}, want: http.StatusUnprocessableEntity},
		{
			name:   "client name too long",
			body:   `{"elevenlabs_voice_id":"v","client_name":"` + strings.Repeat("x", proposal.MaxClientNameLength+1) + `"}`,
			header: map[string]string{apiKeyHeader: testAPIKey},
			want:   http.StatusUnprocessableEntity,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			r, st := newTestServer(t, Config{}, nil)

			w := do(r, http.MethodPost, "/api/v1/webhook/n8n", tt.body, tt.header)
			assert.Equal(t, tt.want, w.Code, w.Body.String())

			n, err := st.Count(context.Background())
			require.NoError(t, err)
			assert.Equal(t, 1, n, "nothing stored")
		})
	}
}

func TestWebhook_EmptyConfiguredKeyRejectsAll(t *testing.T) {
	t.Parallel()

	r := gin.New()
	r.POST("/hook", apiKeyAuth(""), func(c *gin.Context) { c.Status(http.StatusOK) })

	w := do(r, http.MethodPost, "/hook", "", map[string]string{apiKeyHeader: ""})
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestWebhook_RateLimited(t *testing.T) {
	t.Parallel()
	r, _ := newTestServer(t, Config{RateLimit: 2, RatePeriod: time.Hour}, nil)

	header := map[string]string{apiKeyHeader: testAPIKey}
	body := `{"elevenlabs_voice_id":"v"}`
	for range 2 {
		require.Equal(t, http.StatusOK, do(r, http.MethodPost, "/api/v1/webhook/n8n", body, header).Code)
	}

	w := do(r, http.MethodPost, "/api/v1/webhook/n8n", body, header)
	assert.Equal(t, http.StatusTooManyRequests, w.Code)
	assert.Equal(t, "0", w.Header().Get("X-RateLimit-Remaining"))
}

func TestProposalRoutes_RateLimited(t *testing.T) {
	t.Parallel()
	r, _ := newTestServer(t, Config{RateLimit: 2, RatePeriod: time.Hour}, nil)

	require.Equal(t, http.StatusOK, do(r, http.MethodGet, "/api/v1/voice_logs/1/proposal/pdf", "", nil).Code)
	require.Equal(t, http.StatusOK, do(r, http.MethodGet, "/api/v1/voice_logs/1/proposal/html", "", nil).Code)

	w := do(r, http.MethodGet, "/api/v1/voice_logs/1/proposal/pdf", "", nil)
	assert.Equal(t, http.StatusTooManyRequests, w.Code)
	assert.Equal(t, "0", w.Header().Get("X-RateLimit-Remaining"))

	header := map[string]string{apiKeyHeader: testAPIKey}
	w = do(r, http.MethodPost, "/api/v1/webhook/n8n", `{"elevenlabs_voice_id":"v"}`, header)
	assert.Equal(t, http.StatusOK, w.Code, "webhook budget is separate from read routes")
}

func TestListVoiceLogs(t *testing.T) {
	t.Parallel()
	r, st := newTestServer(t, Config{}, nil)

	ctx := context.Background()
	for _, id := range []string{"second", "third"} {
		require.NoError(t, st.Create(ctx, &store.VoiceLog{VoiceID: id}))
	}

	t.Run("newest first", func(t *testing.T) {
		w := do(r, http.MethodGet, "/api/v1/voice_logs", "", nil)
		require.Equal(t, http.StatusOK, w.Code)

		var logs []store.VoiceLog
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &logs))
		require.Len(t, logs, 3)
		assert.Equal(t, "third", logs[0].VoiceID)
		assert.Equal(t, "voice-42", logs[2].VoiceID)
	})

	t.Run("paging", func(t *testing.T) {
		w := do(r, http.MethodGet, "/api/v1/voice_logs?skip=1&limit=1", "", nil)
		require.Equal(t, http.StatusOK, w.Code)

		var logs []store.VoiceLog
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &logs))
		require.Len(t, logs, 1)
		assert.Equal(t, "second", logs[0].VoiceID)
	})

	t.Run("empty page is an array", func(t *testing.T) {
		w := do(r, http.MethodGet, "/api/v1/voice_logs?skip=50", "", nil)
		require.Equal(t, http.StatusOK, w.Code)
		assert.JSONEq(t, `[]`, w.Body.String())
	})

	t.Run("bad limit", func(t *testing.T) {
		w := do(r, http.MethodGet, "/api/v1/voice_logs?limit=lots", "", nil)
		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.Contains(t, w.Body.String(), "limit must be an integer")
	})
}

func TestProposalJSON(t *testing.T) {
	t.Parallel()
	r, _ := newTestServer(t, Config{}, nil)

	w := do(r, http.MethodGet, "/api/v1/voice_logs/1/proposal", "", nil)
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	var resp proposalResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, int64(1), resp.ID)
	assert.Equal(t, "voice-42", resp.VoiceID)
	assert.Equal(t, "AI", resp.Category)
	assert.True(t, strings.HasPrefix(resp.Proposal, "# AI & Automation Strategy Proposal"))
	for _, want := range []string{"voice-42", "$20k", "Q1 Delivery", "March 05, 2026"} {
		assert.Contains(t, resp.Proposal, want)
	}
}

func TestProposalHTML(t *testing.T) {
	t.Parallel()
	r, _ := newTestServer(t, Config{}, nil)

	w := do(r, http.MethodGet, "/api/v1/voice_logs/1/proposal/html", "", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "text/html; charset=utf-8", w.Header().Get("Content-Type"))

	body := w.Body.String()
	assert.Contains(t, body, "<h1")
	assert.Contains(t, body, "Acme &amp; Sons")
	assert.NotContains(t, body, "Acme & Sons")
}

func TestProposalPDF(t *testing.T) {
	t.Parallel()
	r, _ := newTestServer(t, Config{}, nil)

	w := do(r, http.MethodGet, "/api/v1/voice_logs/1/proposal/pdf", "", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "application/pdf", w.Header().Get("Content-Type"))
	assert.Equal(t, "attachment; filename=proposal_1.pdf", w.Header().Get("Content-Disposition"))
	assert.True(t, strings.HasPrefix(w.Body.String(), "%PDF-1.4"))
	assert.True(t, strings.HasSuffix(w.Body.String(), "%%EOF\n"))
}

func TestProposal_Errors(t *testing.T) {
	t.Parallel()

	failing := generatorFunc(func(context.Context, proposal.Input) (*proposal.Result, error) {
		return nil, errors.Join(proposal.ErrRender, errors.New("disk on fire"))
	})
	tooBig := generatorFunc(func(context.Context, proposal.Input) (*proposal.Result, error) {
		return nil, errors.Join(proposal.ErrRender, proposal.ErrLayoutLimit)
	})

	tests := []struct {
		name     string
		gen      Generator
		path     string
		want     int
		wantBody string
	}{
		{name: "unknown id", path: "/api/v1/voice_logs/99/proposal", want: http.StatusNotFound, wantBody: "voice log not found"},
		{name: "non-numeric id", path: "/api/v1/voice_logs/abc/proposal/pdf", want: http.StatusBadRequest},
		{name: "zero id", path: "/api/v1/voice_logs/0/proposal/html", want: http.StatusBadRequest},
		{name: "render failure is masked", gen: failing, path: "/api/v1/voice_logs/1/proposal/pdf", want: http.StatusInternalServerError, wantBody: "internal server error"},
		{name: "layout limit", gen: tooBig, path: "/api/v1/voice_logs/1/proposal/pdf", want: http.StatusUnprocessableEntity},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			r, _ := newTestServer(t, Config{}, tt.gen)

			w := do(r, http.MethodGet, tt.path, "", nil)
			assert.Equal(t, tt.want, w.Code, w.Body.String())
			if tt.wantBody != "" {
				assert.Contains(t, w.Body.String(), tt.wantBody)
			}
			assert.NotContains(t, w.Body.String(), "disk on fire")
		})
	}
}

func TestHealth(t *testing.T) {
	t.Parallel()

	t.Run("memory store", func(t *testing.T) {
		t.Parallel()
		r, _ := newTestServer(t, Config{}, nil)

		w := do(r, http.MethodGet, "/healthz", "", nil)
		require.Equal(t, http.StatusOK, w.Code)

		var resp healthResponse
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
		assert.Equal(t, "healthy", resp.Status)
		assert.True(t, fixedNow.Equal(resp.Timestamp), "timestamp = %v", resp.Timestamp)
	})

	t.Run("store ping fails", func(t *testing.T) {
		t.Parallel()

		st := &pingStore{MemoryStore: store.NewMemoryStore(), err: errors.New("connection refused")}
		r := New(Config{APIKey: testAPIKey}, st, generatorFunc(nil), nil).Router()

		w := do(r, http.MethodGet, "/healthz", "", nil)
		assert.Equal(t, http.StatusServiceUnavailable, w.Code)
		assert.Contains(t, w.Body.String(), "connection refused")
	})
}

// generatorFunc adapts a function to Generator.
type generatorFunc func(context.Context, proposal.Input) (*proposal.Result, error)

func (f generatorFunc) Generate(ctx context.Context, in proposal.Input) (*proposal.Result, error) {
	return f(ctx, in)
}

// pingStore is a memory store with a failing Ping.
type pingStore struct {
	*store.MemoryStore
	err error
}

func (p *pingStore) Ping(context.Context) error { return p.err }
