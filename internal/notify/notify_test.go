package notify

import (
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/greenvolt/solarquote/internal/logging"
)

func TestForwardDeliversPayload(t *testing.T) {
	received := make(chan []byte, 1)
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		body, _ := io.ReadAll(r.Body)
		received <- body
	}))
	defer srv.Close()

	f := New(srv.URL, logging.New())
	f.Forward([]byte(`{"event":"quotation_generated"}`))
	f.Wait()

	select {
	case body := <-received:
		if string(body) != `{"event":"quotation_generated"}` {
			t.Fatalf("unexpected payload: %s", body)
		}
	default:
		t.Fatal("downstream never received the payload")
	}
}

func TestForwardSwallowsDownstreamFailure(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
	}))
	defer srv.Close()

	f := New(srv.URL, logging.New())
	f.Forward([]byte(`{}`))
	f.Wait() // must not panic or propagate anything
}

func TestForwardDisabledWithoutURL(t *testing.T) {
	f := New("", logging.New())
	if f.Enabled() {
		t.Fatal("expected forwarder to be disabled")
	}
	f.Forward([]byte(`{}`))
	f.Wait()
}
