package googletranslate

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"

	"poi-finder-api/internal/apperr"
	"poi-finder-api/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestJoinSegments(t *testing.T) {
	tests := []struct {
		name        string
		raw         string
		expected    string
		expectError bool
	}{
		{
			name:     "multiple segments in order",
			raw:      `[[["Xin chào. ","Hello. ",null,null,10],["Bạn khỏe không?","How are you?",null,null,10]],null,"en"]`,
			expected: "Xin chào. Bạn khỏe không?",
		},
		{
			name:     "skips malformed segments",
			raw:      `[[["Một",1],[],[42],["Hai"]]]`,
			expected: "MộtHai",
		},
		{
			name:        "empty payload",
			raw:         `[]`,
			expectError: true,
		},
		{
			name:        "wrong shape",
			raw:         `["text"]`,
			expectError: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var payload []interface{}
			require.NoError(t, json.Unmarshal([]byte(tt.raw), &payload))

			result, err := JoinSegments(payload)
			if tt.expectError {
				assert.Error(t, err)
				return
			}
			assert.NoError(t, err)
			assert.Equal(t, tt.expected, result)
		})
	}
}

func TestClient_Translate(t *testing.T) {
	var calls int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		atomic.AddInt32(&calls, 1)
		q := r.URL.Query()
		assert.Equal(t, "gtx", q.Get("client"))
		assert.Equal(t, "en", q.Get("sl"))
		assert.Equal(t, "vi", q.Get("tl"))
		assert.Equal(t, "Good morning", q.Get("q"))
		_, _ = w.Write([]byte(`[[["Chào buổi sáng","Good morning",null,null,1]],null,"en"]`))
	}))
	defer srv.Close()

	client := NewClient(Config{Endpoint: srv.URL}, srv.Client())

	result, err := client.Translate(context.Background(), models.TranslationRequest{Text: "Good morning", SourceLang: "en", TargetLang: "vi"})
	require.NoError(t, err)
	assert.Equal(t, "Chào buổi sáng", result.TranslatedText)

	_, err = client.Translate(context.Background(), models.TranslationRequest{Text: " ", SourceLang: "en", TargetLang: "vi"})
	assert.Equal(t, apperr.KindInvalidInput, apperr.KindOf(err))
	assert.Equal(t, int32(1), atomic.LoadInt32(&calls))
}
