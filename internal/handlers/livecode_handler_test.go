package handlers_test

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gorilla/websocket"

	"github.com/rahul0401-coder/intraview-AI-career/internal/models"
	"github.com/rahul0401-coder/intraview-AI-career/internal/session"
)

func TestAppendAssignsMonotonicSeq(t *testing.T) {
	h, _ := newTestServer(t)
	alice := register(t, h, "Alice", "alice@example.com")

	var last models.LiveCodeEvent
	for i, code := range []string{"a", "ab", "abc"} {
		rec := doJSON(t, h, http.MethodPost, "/api/v1/interviews/iv1/code", alice.Token, map[string]any{
			"code":     code,
			"language": "python",
		})
		wantStatus(t, rec, http.StatusCreated)
		decode(t, rec, &last)
		if last.Seq != int64(i+1) {
			t.Fatalf("seq = %d, want %d", last.Seq, i+1)
		}
	}
	if last.UpdatedBy != alice.User.ExternalID {
		t.Fatalf("updatedBy = %q, want caller subject", last.UpdatedBy)
	}

	rec := doJSON(t, h, http.MethodGet, "/api/v1/interviews/iv1/code/latest", alice.Token, nil)
	wantStatus(t, rec, http.StatusOK)
	var latest models.LiveCodeEvent
	decode(t, rec, &latest)
	if latest.Code != "abc" || latest.Seq != 3 {
		t.Fatalf("latest = %q seq %d, want abc seq 3", latest.Code, latest.Seq)
	}
}

func TestSeqIsPerInterview(t *testing.T) {
	h, _ := newTestServer(t)
	alice := register(t, h, "Alice", "alice@example.com")

	rec := doJSON(t, h, http.MethodPost, "/api/v1/interviews/iv1/code", alice.Token,
		map[string]any{"code": "x", "language": "java"})
	wantStatus(t, rec, http.StatusCreated)

	rec = doJSON(t, h, http.MethodPost, "/api/v1/interviews/iv2/code", alice.Token,
		map[string]any{"code": "y", "language": "java"})
	wantStatus(t, rec, http.StatusCreated)
	var ev models.LiveCodeEvent
	decode(t, rec, &ev)
	if ev.Seq != 1 {
		t.Fatalf("seq = %d, want 1 for a fresh interview", ev.Seq)
	}
}

func TestAppendRejectsUnknownLanguage(t *testing.T) {
	h, _ := newTestServer(t)
	alice := register(t, h, "Alice", "alice@example.com")

	rec := doJSON(t, h, http.MethodPost, "/api/v1/interviews/iv1/code", alice.Token,
		map[string]any{"code": "x", "language": "cobol"})
	wantStatus(t, rec, http.StatusBadRequest)
}

func TestLatestNullWhenEmpty(t *testing.T) {
	h, _ := newTestServer(t)
	alice := register(t, h, "Alice", "alice@example.com")

	rec := doJSON(t, h, http.MethodGet, "/api/v1/interviews/empty/code/latest", alice.Token, nil)
	wantStatus(t, rec, http.StatusOK)
	if body := rec.Body.String(); body != "null\n" {
		t.Fatalf("latest on empty log = %q, want null", body)
	}
}

// Switching question carries the previous code and language forward
// under the new question id; a fresh interview starts from empty
// javascript.
func TestSwitchQuestionCarriesCodeForward(t *testing.T) {
	h, _ := newTestServer(t)
	alice := register(t, h, "Alice", "alice@example.com")

	rec := doJSON(t, h, http.MethodPost, "/api/v1/interviews/iv1/code", alice.Token,
		map[string]any{"code": "print(1)", "language": "python", "questionId": "q1"})
	wantStatus(t, rec, http.StatusCreated)

	rec = doJSON(t, h, http.MethodPost, "/api/v1/interviews/iv1/code/question", alice.Token,
		map[string]any{"questionId": "q2"})
	wantStatus(t, rec, http.StatusCreated)
	var ev models.LiveCodeEvent
	decode(t, rec, &ev)
	if ev.QuestionID != "q2" {
		t.Fatalf("questionId = %q, want q2", ev.QuestionID)
	}
	if ev.Code != "print(1)" || ev.Language != models.LangPython {
		t.Fatalf("carry-forward lost: code=%q language=%q", ev.Code, ev.Language)
	}
	if ev.Seq != 2 {
		t.Fatalf("seq = %d, want 2", ev.Seq)
	}

	rec = doJSON(t, h, http.MethodPost, "/api/v1/interviews/fresh/code/question", alice.Token,
		map[string]any{"questionId": "q1"})
	wantStatus(t, rec, http.StatusCreated)
	decode(t, rec, &ev)
	if ev.Code != "" || ev.Language != models.LangJavaScript {
		t.Fatalf("fresh switch: code=%q language=%q, want empty javascript", ev.Code, ev.Language)
	}
}

func TestAppendBroadcastsToSubscribers(t *testing.T) {
	h, _, hub := newTestServerWithHub(t)
	alice := register(t, h, "Alice", "alice@example.com")

	received := make(chan models.LiveCodeEvent, 1)
	client := session.NewClient(nil)
	client.SetSendHook(func(ev models.LiveCodeEvent) { received <- ev })
	hub.Join("iv1", client)
	defer hub.Leave("iv1", client)

	rec := doJSON(t, h, http.MethodPost, "/api/v1/interviews/iv1/code", alice.Token,
		map[string]any{"code": "x := 1", "language": "javascript"})
	wantStatus(t, rec, http.StatusCreated)

	select {
	case ev := <-received:
		if ev.Code != "x := 1" || ev.InterviewID != "iv1" {
			t.Fatalf("unexpected event: %+v", ev)
		}
	default:
		t.Fatal("subscriber did not receive the appended event")
	}
}

func TestSubscribeRejectsAnonymousClients(t *testing.T) {
	h, _ := newTestServer(t)
	srv := httptest.NewServer(h)
	defer srv.Close()

	wsURL := strings.Replace(srv.URL, "http", "ws", 1) + "/ws/interviews/iv1/code"
	conn, resp, err := websocket.DefaultDialer.Dial(wsURL, nil)
	if err == nil {
		conn.Close()
		t.Fatal("anonymous dial succeeded, want rejection")
	}
	if resp == nil || resp.StatusCode != http.StatusUnauthorized {
		t.Fatalf("handshake response = %+v, want 401", resp)
	}
}

func TestSubscribeStreamsToTokenHolders(t *testing.T) {
	h, _, hub := newTestServerWithHub(t)
	alice := register(t, h, "Alice", "alice@example.com")
	bob := register(t, h, "Bob", "bob@example.com")
	srv := httptest.NewServer(h)
	defer srv.Close()

	wsURL := strings.Replace(srv.URL, "http", "ws", 1) + "/ws/interviews/iv1/code?token=" + bob.Token
	conn, _, err := websocket.DefaultDialer.Dial(wsURL, nil)
	if err != nil {
		t.Fatalf("dial with token: %v", err)
	}
	defer conn.Close()

	// The handshake finishes before the server joins the hub; wait for
	// the subscription before appending.
	deadline := time.Now().Add(5 * time.Second)
	for hub.SubscriberCount("iv1") == 0 {
		if time.Now().After(deadline) {
			t.Fatal("subscriber never joined the hub")
		}
		time.Sleep(5 * time.Millisecond)
	}

	rec := doJSON(t, h, http.MethodPost, "/api/v1/interviews/iv1/code", alice.Token,
		map[string]any{"code": "let x = 2", "language": "javascript"})
	wantStatus(t, rec, http.StatusCreated)

	conn.SetReadDeadline(time.Now().Add(5 * time.Second))
	var ev models.LiveCodeEvent
	if err := conn.ReadJSON(&ev); err != nil {
		t.Fatalf("read appended event: %v", err)
	}
	if ev.Code != "let x = 2" || ev.InterviewID != "iv1" {
		t.Fatalf("unexpected event: %+v", ev)
	}
}
