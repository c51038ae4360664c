// Package ankiconnect is a thin client for the AnkiConnect HTTP API exposed
// by a locally running Anki. Every call is one request/response exchange;
// error payloads and transport failures both come back as ordinary errors so
// nothing upstream has to know about the wire format.
package ankiconnect

import (
	"bytes"
	"encoding/base64"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	ankidomain "github.com/CermP/anki-companion/internal/domain/anki"
)

// DefaultURL is where AnkiConnect listens when Anki runs on the same machine.
const DefaultURL = "http://127.0.0.1:8765"

// protocolVersion is the AnkiConnect API version this client speaks.
const protocolVersion = 6

type Client struct {
	URL  string
	HTTP *http.Client
}

// New returns a client for the AnkiConnect endpoint at url. An empty url
// selects DefaultURL; a zero timeout means unbounded waits.
func New(url string, timeout time.Duration) *Client {
	if url == "" {
		url = DefaultURL
	}
	return &Client{
		URL:  url,
		HTTP: &http.Client{Timeout: timeout},
	}
}

type request struct {
	Action  string `json:"action"`
	Version int    `json:"version"`
	Params  any    `json:"params,omitempty"`
}

type response struct {
	Result json.RawMessage `json:"result"`
	Error  *string         `json:"error"`
}

// invoke performs one AnkiConnect action and unmarshals its result field into
// out when out is non-nil. An error-bearing response payload is converted to
// a Go error here, at the transport boundary.
func (c *Client) invoke(action string, params, out any) error {
	body, err := json.Marshal(request{Action: action, Version: protocolVersion, Params: params})
	if err != nil {
		return fmt.Errorf("encode %s request: %w", action, err)
	}

	resp, err := c.HTTP.Post(c.URL, "application/json", bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("call %s: %w", action, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("call %s: unexpected status %s", action, resp.Status)
	}

	var payload response
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		return fmt.Errorf("decode %s response: %w", action, err)
	}
	if payload.Error != nil && *payload.Error != "" {
		return fmt.Errorf("%s: %s", action, *payload.Error)
	}

	if out == nil || len(payload.Result) == 0 {
		return nil
	}
	if err := json.Unmarshal(payload.Result, out); err != nil {
		return fmt.Errorf("decode %s result: %w", action, err)
	}
	return nil
}

// DeckNames enumerates all deck names in the collection.
func (c *Client) DeckNames() ([]string, error) {
	var names []string
	if err := c.invoke("deckNames", nil, &names); err != nil {
		return nil, err
	}
	return names, nil
}

// FindNotes resolves note identifiers matching a search query such as
// `"deck:Math::Algebra"`. Query semantics, including sub-deck inclusion,
// belong to Anki.
func (c *Client) FindNotes(query string) ([]int64, error) {
	var ids []int64
	params := map[string]string{"query": query}
	if err := c.invoke("findNotes", params, &ids); err != nil {
		return nil, err
	}
	return ids, nil
}

// NotesInfo fetches full note details for all ids in one batched call.
func (c *Client) NotesInfo(ids []int64) ([]ankidomain.Note, error) {
	var notes []ankidomain.Note
	params := map[string][]int64{"notes": ids}
	if err := c.invoke("notesInfo", params, &notes); err != nil {
		return nil, err
	}
	return notes, nil
}

// RetrieveMediaFile fetches the raw bytes of a file from Anki's media store.
// The second return value is false when the collection has no such file;
// that is not an error.
func (c *Client) RetrieveMediaFile(filename string) ([]byte, bool, error) {
	var raw json.RawMessage
	params := map[string]string{"filename": filename}
	if err := c.invoke("retrieveMediaFile", params, &raw); err != nil {
		return nil, false, err
	}

	// AnkiConnect answers with base64 content, or the literal false when the
	// file does not exist.
	var encoded string
	if err := json.Unmarshal(raw, &encoded); err != nil || encoded == "" {
		return nil, false, nil
	}
	data, err := base64.StdEncoding.DecodeString(encoded)
	if err != nil {
		return nil, false, fmt.Errorf("decode media %s: %w", filename, err)
	}
	return data, true, nil
}

// DeckQuery builds the scoping query FindNotes expects for one deck. The
// quotes keep deck names with spaces intact.
func DeckQuery(deckName string) string {
	return `"deck:` + deckName + `"`
}
