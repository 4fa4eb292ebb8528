package controllers

import (
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"charter-backend/services"

	"github.com/gin-gonic/gin"
)

func newChatRouter(webhookURL string) *gin.Engine {
	gin.SetMode(gin.TestMode)
	ctrl := NewChatController(services.NewChatService(webhookURL))
	r := gin.New()
	r.POST("/api/chat", ctrl.RelayMessage)
	return r
}

func postChat(t *testing.T, r *gin.Engine, body string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(http.MethodPost, "/api/chat", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestChatRelayMissingWebhookConfig(t *testing.T) {
	r := newChatRouter("")

	w := postChat(t, r, `{"message":"ciao","sessionId":"abc"}`)
	if w.Code != http.StatusInternalServerError {
		t.Fatalf("status = %d; want 500", w.Code)
	}
	if !strings.Contains(w.Body.String(), "non è al momento configurato") {
		t.Errorf("body %q missing fixed configuration-error message", w.Body.String())
	}
}

func TestChatRelayForwardsAndReturnsUpstreamReply(t *testing.T) {
	var gotBody string
	upstream := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, req *http.Request) {
		buf, _ := io.ReadAll(req.Body)
		gotBody = string(buf)
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"message":"Benvenuto a bordo!"}`))
	}))
	defer upstream.Close()

	r := newChatRouter(upstream.URL)
	w := postChat(t, r, `{"message":"ciao","sessionId":"abc"}`)

	if w.Code != http.StatusOK {
		t.Fatalf("status = %d; want 200", w.Code)
	}
	if !strings.Contains(w.Body.String(), "Benvenuto a bordo!") {
		t.Errorf("body %q missing upstream reply", w.Body.String())
	}
	for _, fragment := range []string{`"message":"ciao"`, `"sessionId":"abc"`, `"source":"web"`} {
		if !strings.Contains(gotBody, fragment) {
			t.Errorf("upstream payload %q missing %q", gotBody, fragment)
		}
	}
}

func TestChatRelayReturnsUpstreamBodyUnmodified(t *testing.T) {
	const upstreamBody = `{"message":"Benvenuto a bordo!","intent":"greeting","suggestions":["Prezzi","Disponibilità"]}`
	upstream := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, req *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(upstreamBody))
	}))
	defer upstream.Close()

	r := newChatRouter(upstream.URL)
	w := postChat(t, r, `{"message":"ciao","sessionId":"abc"}`)

	if w.Code != http.StatusOK {
		t.Fatalf("status = %d; want 200", w.Code)
	}
	if w.Body.String() != upstreamBody {
		t.Errorf("body = %q; want the upstream body verbatim %q", w.Body.String(), upstreamBody)
	}
	if ct := w.Header().Get("Content-Type"); !strings.HasPrefix(ct, "application/json") {
		t.Errorf("Content-Type = %q; want application/json", ct)
	}
}

func TestChatRelayUpstreamFailure(t *testing.T) {
	upstream := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, req *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
	}))
	defer upstream.Close()

	r := newChatRouter(upstream.URL)
	w := postChat(t, r, `{"message":"ciao","sessionId":"abc"}`)

	if w.Code != http.StatusInternalServerError {
		t.Fatalf("status = %d; want 500", w.Code)
	}
	if !strings.Contains(w.Body.String(), "Non riesco a connettermi") {
		t.Errorf("body %q missing connection-error message", w.Body.String())
	}
}

func TestChatRelayRejectsEmptyPayload(t *testing.T) {
	r := newChatRouter("http://unused.invalid")

	for _, body := range []string{`{}`, `{"message":"ciao"}`, `{"sessionId":"abc"}`} {
		w := postChat(t, r, body)
		if w.Code != http.StatusBadRequest {
			t.Errorf("payload %s: status = %d; want 400", body, w.Code)
		}
	}
}
