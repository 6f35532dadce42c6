// Package notify forwards webhook payloads downstream. Delivery is
// fire-and-forget telemetry: failures are logged and never propagated,
// and the quotation pipeline does not depend on the outcome.
package notify

import (
	"bytes"
	"net/http"
	"sync"
	"time"

	"github.com/greenvolt/solarquote/internal/logging"
)

// Forwarder posts JSON payloads to a single downstream URL.
type Forwarder struct {
	url    string
	client *http.Client
	log    *logging.Logger
	wg     sync.WaitGroup
}

// New creates a Forwarder. An empty url disables forwarding.
func New(url string, log *logging.Logger) *Forwarder {
	return &Forwarder{
		url:    url,
		client: &http.Client{Timeout: 10 * time.Second},
		log:    log,
	}
}

// Enabled reports whether a downstream URL is configured.
func (f *Forwarder) Enabled() bool { return f.url != "" }

// Forward submits the payload asynchronously and returns immediately.
func (f *Forwarder) Forward(payload []byte) {
	if !f.Enabled() {
		return
	}

	body := make([]byte, len(payload))
	copy(body, payload)

	f.wg.Add(1)
	go func() {
		defer f.wg.Done()

		resp, err := f.client.Post(f.url, "application/json", bytes.NewReader(body))
		if err != nil {
			f.log.Warn("[notify] forward failed: %v", err)
			return
		}
		resp.Body.Close()
		if resp.StatusCode >= 300 {
			f.log.Warn("[notify] downstream replied %d", resp.StatusCode)
		}
	}()
}

// Wait blocks until in-flight forwards finish. Used on shutdown and in tests.
func (f *Forwarder) Wait() {
	f.wg.Wait()
}
