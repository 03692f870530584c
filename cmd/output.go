package cmd

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/url"
	"os"
	"strconv"

	"github.com/hevy-tools/hevyctl/api"
)

// stdout is swapped out by tests; everything machine-consumable goes
// through it.
var stdout io.Writer = os.Stdout

// printJSON writes raw API JSON to stdout, pretty-printed with a
// trailing newline. Keys and values pass through untouched; only
// whitespace changes.
func printJSON(data json.RawMessage) error {
	var buf bytes.Buffer
	if err := json.Indent(&buf, data, "", "  "); err != nil {
		return fmt.Errorf("formatting response: %w", err)
	}
	buf.WriteByte('\n')
	_, err := buf.WriteTo(stdout)
	return err
}

// rawBody validates a --json payload before any network activity.
func rawBody(cmdPath, s string) (json.RawMessage, error) {
	if !json.Valid([]byte(s)) {
		return nil, &api.RequestBodyError{
			Hint: fmt.Sprintf("see 'hevyctl %s --help' for the expected schema", cmdPath),
		}
	}
	return json.RawMessage(s), nil
}

// pageQuery builds the pagination query parameters forwarded verbatim
// to list endpoints.
func pageQuery(page, pageSize int) url.Values {
	q := url.Values{}
	q.Set("page", strconv.Itoa(page))
	q.Set("page_size", strconv.Itoa(pageSize))
	return q
}
