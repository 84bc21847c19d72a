package api

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/url"
	"strings"
)

func sprintfPath(path string, args ...any) string {
	if len(args) == 0 {
		return path
	}

	return fmt.Sprintf(path, args...)
}

func PercentEncode(s string) string {
	s = url.QueryEscape(s)
	return strings.ReplaceAll(s, "+", "%20")
}

// jsonUnmarshalStrictEmpty rejects empty bodies; every documented endpoint
// answers with an envelope, so nothing is not a valid answer.
func jsonUnmarshalStrictEmpty(body []byte, out any) error {
	if len(body) == 0 {
		return errors.New("empty body")
	}

	return json.Unmarshal(body, out)
}
