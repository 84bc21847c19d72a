package api

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"strconv"

	"github.com/drawhub-lab/client/pkg/errorx"
	"github.com/mitchellh/mapstructure"
)

// Parameter is an insertion-ordered query string builder. Keys are encoded
// in the order they were added; nil and empty values are dropped so optional
// filters disappear from the URL entirely.
type Parameter struct {
	pairs []pair
}

type pair struct {
	key   string
	value string
}

func Params() *Parameter {
	return &Parameter{}
}

func (p *Parameter) Add(key string, value any) *Parameter {
	switch v := value.(type) {
	case nil:
		return p
	case string:
		if v == "" {
			return p
		}
		p.pairs = append(p.pairs, pair{key, v})
	case *string:
		if v == nil || *v == "" {
			return p
		}
		p.pairs = append(p.pairs, pair{key, *v})
	case int:
		p.pairs = append(p.pairs, pair{key, strconv.Itoa(v)})
	case *int:
		if v == nil {
			return p
		}
		p.pairs = append(p.pairs, pair{key, strconv.Itoa(*v)})
	case bool:
		p.pairs = append(p.pairs, pair{key, strconv.FormatBool(v)})
	case *bool:
		if v == nil {
			return p
		}
		p.pairs = append(p.pairs, pair{key, strconv.FormatBool(*v)})
	default:
		p.pairs = append(p.pairs, pair{key, fmt.Sprintf("%v", v)})
	}

	return p
}

// Merge appends every pair of other after p's own pairs.
func (p *Parameter) Merge(other *Parameter) *Parameter {
	if other != nil {
		p.pairs = append(p.pairs, other.pairs...)
	}

	return p
}

func (p *Parameter) Empty() bool {
	return p == nil || len(p.pairs) == 0
}

func (p *Parameter) Encode() string {
	if p.Empty() {
		return ""
	}

	var buf bytes.Buffer
	for i, kv := range p.pairs {
		if i > 0 {
			buf.WriteByte('&')
		}
		buf.WriteString(kv.key)
		buf.WriteByte('=')
		buf.WriteString(PercentEncode(kv.value))
	}

	return buf.String()
}

// QueryString returns "" for an empty parameter set, otherwise "?k=v&...".
func (p *Parameter) QueryString() string {
	if p.Empty() {
		return ""
	}

	return "?" + p.Encode()
}

// Body is anything that can serialize itself into a request body together
// with its content type.
type Body interface {
	ToReader() (io.Reader, string, error)
}

type jsonBody struct {
	value any
}

func JSONBody(value any) Body {
	return jsonBody{value: value}
}

func (b jsonBody) ToReader() (io.Reader, string, error) {
	raw, err := json.Marshal(b.value)
	if err != nil {
		return nil, "", err
	}

	return bytes.NewReader(raw), "application/json", nil
}

type fileBody struct {
	field    string
	filename string
	content  io.Reader
}

// FileBody builds a multipart/form-data body with a single file part.
func FileBody(field, filename string, content io.Reader) Body {
	return fileBody{field: field, filename: filename, content: content}
}

func (b fileBody) ToReader() (io.Reader, string, error) {
	var buf bytes.Buffer
	writer := multipart.NewWriter(&buf)

	part, err := writer.CreateFormFile(b.field, b.filename)
	if err != nil {
		return nil, "", err
	}

	if _, err := io.Copy(part, b.content); err != nil {
		return nil, "", err
	}

	if err := writer.Close(); err != nil {
		return nil, "", err
	}

	return &buf, writer.FormDataContentType(), nil
}

// Response is the already-unwrapped result of a call. Data holds the
// envelope's data payload; RawBody is only set for Raw (blob) calls.
type Response struct {
	Code    int
	Header  http.Header
	Message string
	Data    json.RawMessage
	RawBody []byte
}

// Bind decodes the envelope data into out. Decoding goes through
// mapstructure keyed on json tags, which tolerates the loosely-typed
// numbers an envelope carries.
func Bind(resp *Response, out any) error {
	if resp == nil || len(resp.Data) == 0 {
		return nil
	}

	var loose any
	if err := json.Unmarshal(resp.Data, &loose); err != nil {
		return errorx.NewHTTP(resp.Code, errorx.NetworkError, "malformed response data: %v", err)
	}

	decoder, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		TagName:          "json",
		WeaklyTypedInput: true,
		Result:           out,
	})
	if err != nil {
		return errorx.Normalize(err)
	}

	if err := decoder.Decode(loose); err != nil {
		return errorx.New(errorx.UnknownError, "unexpected response shape: %v", err)
	}

	return nil
}

type envelope struct {
	Success bool            `json:"success"`
	Data    json.RawMessage `json:"data"`
	Message string          `json:"message"`
	Error   *envelopeError  `json:"error"`
}

type envelopeError struct {
	Code    string `json:"code"`
	Message string `json:"message"`
	Details string `json:"details"`
}
