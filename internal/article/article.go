// Package article defines the Article record served by the article endpoint
// and the HTTP source that loads it.
package article

import (
	"encoding/json"
	"errors"
	"fmt"

	"myarticles/internal/jsonutil"
)

// Error taxonomy for a load. Every error returned by a Source matches exactly
// one of these via errors.Is.
var (
	ErrNetwork   = errors.New("network failure")
	ErrStatus    = errors.New("unexpected status")
	ErrMalformed = errors.New("malformed JSON")
	ErrSchema    = errors.New("schema mismatch")
)

// StatusError reports a non-2xx response.
type StatusError struct {
	Code int
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("%s %d", ErrStatus, e.Code)
}

// Is makes StatusError match ErrStatus.
func (e *StatusError) Is(target error) bool {
	return target == ErrStatus
}

// Article is a server-defined record. ID is kept as raw JSON because the
// server may use any primitive for it; only its Key form is consumed.
type Article struct {
	ID    json.RawMessage `json:"id"`
	Title string          `json:"title"`
}

// Key returns the canonical text form of ID, used as a rendering key.
func (a Article) Key() string {
	k, _ := jsonutil.PrimitiveString(a.ID)
	return k
}

// Decode parses a response body into articles. The body must be a JSON array
// whose elements each carry a primitive "id" and a string "title"; extra
// fields are ignored. The returned slice is never nil on success.
func Decode(data []byte) ([]Article, error) {
	elems, err := jsonutil.RawArray(data)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrMalformed, err)
	}

	articles := make([]Article, 0, len(elems))
	for i, raw := range elems {
		a, err := decodeOne(raw)
		if err != nil {
			return nil, fmt.Errorf("%w: element %d: %w", ErrSchema, i, err)
		}
		articles = append(articles, a)
	}
	return articles, nil
}

func decodeOne(raw json.RawMessage) (Article, error) {
	fields, err := jsonutil.Fields(raw)
	if err != nil {
		return Article{}, err
	}

	id, ok := fields["id"]
	if !ok {
		return Article{}, errors.New(`missing "id"`)
	}
	if !jsonutil.IsPrimitive(id) {
		return Article{}, fmt.Errorf(`"id" is not a primitive: %s`, id)
	}

	rawTitle, ok := fields["title"]
	if !ok {
		return Article{}, errors.New(`missing "title"`)
	}
	if string(rawTitle) == "null" {
		return Article{}, errors.New(`"title" is null`)
	}
	var title string
	if err := jsonutil.UnmarshalWithContext(rawTitle, &title, `"title"`); err != nil {
		return Article{}, err
	}

	return Article{ID: id, Title: title}, nil
}
