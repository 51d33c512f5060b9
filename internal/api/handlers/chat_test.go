package handlers_test

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/donaldgifford/bullion-desk/internal/api/handlers"
	"github.com/donaldgifford/bullion-desk/pkg/chat"
	chatMocks "github.com/donaldgifford/bullion-desk/pkg/chat/mocks"
	"github.com/donaldgifford/bullion-desk/pkg/logger"
)

const chatMessages = `[{"role":"user","content":"Melt value of a 1 oz Maple Leaf?"}]`

func postChat(t *testing.T, h *handlers.ChatHandler, body string) *httptest.ResponseRecorder {
	t.Helper()

	e := echo.New()
	req := httptest.NewRequest(http.MethodPost, "/api/chat", strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()

	require.NoError(t, h.Chat(e.NewContext(req, rec)))
	return rec
}

func TestChatHandler_Chat(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name       string
		body       string
		setupMock  func(*chatMocks.MockForwarder)
		wantStatus int
		wantBody   string
	}{
		{
			name: "success passes provider body through",
			body: `{"messages":` + chatMessages + `,"system":"You price bullion.","max_tokens":512}`,
			setupMock: func(m *chatMocks.MockForwarder) {
				m.EXPECT().
					Forward(mock.Anything, mock.MatchedBy(func(r chat.Request) bool {
						return string(r.Messages) == chatMessages &&
							string(r.System) == `"You price bullion."` &&
							r.MaxTokens == 512
					})).
					Return(&chat.Result{StatusCode: http.StatusOK, Body: []byte(`{"id":"msg_01","content":[]}`)}, nil).
					Once()
			},
			wantStatus: http.StatusOK,
			wantBody:   `{"id":"msg_01","content":[]}`,
		},
		{
			name: "null system prompt is dropped",
			body: `{"messages":` + chatMessages + `,"system":null}`,
			setupMock: func(m *chatMocks.MockForwarder) {
				m.EXPECT().
					Forward(mock.Anything, mock.MatchedBy(func(r chat.Request) bool {
						return r.System == nil && r.MaxTokens == 0
					})).
					Return(&chat.Result{StatusCode: http.StatusOK, Body: []byte(`{}`)}, nil).
					Once()
			},
			wantStatus: http.StatusOK,
			wantBody:   `{}`,
		},
		{
			name: "provider rejection keeps its status",
			body: `{"messages":` + chatMessages + `}`,
			setupMock: func(m *chatMocks.MockForwarder) {
				m.EXPECT().
					Forward(mock.Anything, mock.Anything).
					Return(&chat.Result{
						StatusCode: http.StatusTooManyRequests,
						Body:       []byte(`{"type":"error","error":{"type":"rate_limit_error"}}`),
					}, nil).
					Once()
			},
			wantStatus: http.StatusTooManyRequests,
			wantBody: `{"error":"AI provider returned an error","status":429,` +
				`"details":{"type":"error","error":{"type":"rate_limit_error"}}}`,
		},
		{
			name: "non-JSON provider body becomes a string",
			body: `{"messages":` + chatMessages + `}`,
			setupMock: func(m *chatMocks.MockForwarder) {
				m.EXPECT().
					Forward(mock.Anything, mock.Anything).
					Return(&chat.Result{StatusCode: http.StatusBadGateway, Body: []byte("upstream connect error")}, nil).
					Once()
			},
			wantStatus: http.StatusBadGateway,
			wantBody:   `{"error":"AI provider returned an error","status":502,"details":"upstream connect error"}`,
		},
		{
			name: "missing key is a configuration error",
			body: `{"messages":` + chatMessages + `}`,
			setupMock: func(m *chatMocks.MockForwarder) {
				m.EXPECT().
					Forward(mock.Anything, mock.Anything).
					Return(nil, chat.ErrMissingAPIKey).
					Once()
			},
			wantStatus: http.StatusInternalServerError,
			wantBody:   `{"error":"AI API key is not configured"}`,
		},
		{
			name: "network failure",
			body: `{"messages":` + chatMessages + `}`,
			setupMock: func(m *chatMocks.MockForwarder) {
				m.EXPECT().
					Forward(mock.Anything, mock.Anything).
					Return(nil, fmt.Errorf("calling anthropic API: %w", errors.New("dial tcp: i/o timeout"))).
					Once()
			},
			wantStatus: http.StatusInternalServerError,
			wantBody:   `{"error":"failed to reach AI provider","details":"calling anthropic API: dial tcp: i/o timeout"}`,
		},
		{
			name:       "missing messages",
			body:       `{"system":"hi"}`,
			setupMock:  func(*chatMocks.MockForwarder) {},
			wantStatus: http.StatusBadRequest,
			wantBody:   `{"error":"messages array is required"}`,
		},
		{
			name:       "messages not an array",
			body:       `{"messages":"hello"}`,
			setupMock:  func(*chatMocks.MockForwarder) {},
			wantStatus: http.StatusBadRequest,
			wantBody:   `{"error":"messages array is required"}`,
		},
		{
			name:       "invalid JSON",
			body:       `{messages`,
			setupMock:  func(*chatMocks.MockForwarder) {},
			wantStatus: http.StatusBadRequest,
			wantBody:   `{"error":"invalid JSON body"}`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			fwd := chatMocks.NewMockForwarder(t)
			tt.setupMock(fwd)

			rec := postChat(t, handlers.NewChatHandler(fwd, logger.Discard()), tt.body)
			assert.Equal(t, tt.wantStatus, rec.Code)
			assert.JSONEq(t, tt.wantBody, rec.Body.String())
		})
	}
}

func TestChatHandler_ForwardsMessagesUnmodified(t *testing.T) {
	t.Parallel()

	// Whitespace and key order inside messages must survive the proxy.
	messages := `[ {"content":[{"type":"text","text":"hi"}],"role":"user"} ]`

	var got chat.Request
	fwd := chatMocks.NewMockForwarder(t)
	fwd.EXPECT().
		Forward(mock.Anything, mock.Anything).
		Run(func(_ context.Context, r chat.Request) { got = r }).
		Return(&chat.Result{StatusCode: http.StatusOK, Body: []byte(`{}`)}, nil).
		Once()

	rec := postChat(t, handlers.NewChatHandler(fwd, logger.Discard()), `{"messages":`+messages+`}`)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, messages, string(got.Messages))
}
