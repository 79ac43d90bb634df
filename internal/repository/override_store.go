package repository

import (
	"bytes"
	"context"
	"errors"
	"fmt"

	"github.com/goccy/go-json"

	"office-hours/internal/domain"
)

var ErrCorruptDocument = errors.New("override document is corrupt")

// OverrideStore owns the whole override collection. Every write replaces the
// stored collection; concurrent writers race and the last one wins.
type OverrideStore interface {
	LoadAll(ctx context.Context) (domain.Overrides, error)
	SaveAll(ctx context.Context, overrides domain.Overrides) error
	Delete(ctx context.Context, date string) error
}

// documentBackend reads and writes the serialized override document.
// Read reports found=false when nothing has been stored yet.
type documentBackend interface {
	Read(ctx context.Context) (data []byte, found bool, err error)
	Write(ctx context.Context, data []byte) error
}

// DocumentOverrideStore keeps the collection as one JSON document in a backend.
type DocumentOverrideStore struct {
	backend documentBackend
}

func (s *DocumentOverrideStore) LoadAll(ctx context.Context) (domain.Overrides, error) {
	data, found, err := s.backend.Read(ctx)
	if err != nil {
		return domain.Overrides{}, err
	}
	if !found {
		return domain.Overrides{}, nil
	}
	return DecodeDocument(data)
}

func (s *DocumentOverrideStore) SaveAll(ctx context.Context, overrides domain.Overrides) error {
	data, err := EncodeDocument(overrides)
	if err != nil {
		return err
	}
	return s.backend.Write(ctx, data)
}

// Delete is a no-op when the date is absent or the document is corrupt.
func (s *DocumentOverrideStore) Delete(ctx context.Context, date string) error {
	overrides, err := s.LoadAll(ctx)
	if errors.Is(err, ErrCorruptDocument) {
		return nil
	}
	if err != nil {
		return err
	}
	if _, ok := overrides[date]; !ok {
		return nil
	}
	delete(overrides, date)
	return s.SaveAll(ctx, overrides)
}

// EncodeDocument renders overrides as 2-space indented JSON with sorted keys
// and non-ASCII text left unescaped.
func EncodeDocument(overrides domain.Overrides) ([]byte, error) {
	if overrides == nil {
		overrides = domain.Overrides{}
	}
	var buf bytes.Buffer
	encoder := json.NewEncoder(&buf)
	encoder.SetEscapeHTML(false)
	encoder.SetIndent("", "  ")
	if err := encoder.Encode(overrides); err != nil {
		return nil, fmt.Errorf("encode override document: %w", err)
	}
	return buf.Bytes(), nil
}

// DecodeDocument parses a stored document. Entries with an unexpected shape
// become closed days; a document that is not a JSON object is corrupt.
func DecodeDocument(data []byte) (domain.Overrides, error) {
	var raw map[string]json.RawMessage
	if err := json.Unmarshal(data, &raw); err != nil {
		return domain.Overrides{}, fmt.Errorf("%w: %v", ErrCorruptDocument, err)
	}
	overrides := make(domain.Overrides, len(raw))
	for date, value := range raw {
		overrides[date] = domain.ParseDaySchedule(value)
	}
	return overrides, nil
}
