package store

import (
	"context"
	"net/http"
	"net/url"

	"github.com/google/uuid"

	"github.com/restkit/restkit/errors"
	"github.com/restkit/restkit/httpclient"
	"github.com/restkit/restkit/validation"
)

// Find fetches a single record by id.
func Find[T any](ctx context.Context, s *Store, typeName, id string) (T, error) {
	var zero T

	resp, err := s.do(ctx, "find", typeName, httpclient.Request{
		Method: http.MethodGet,
		Path:   s.pathFor(typeName) + "/" + url.PathEscape(id),
	})
	if err != nil {
		return zero, err
	}

	attrs, err := s.ser.Normalize(typeName, resp.Body)
	if err != nil {
		return zero, errors.Serialization("normalize "+typeName+" record", err)
	}
	return decodeRecord[T](typeName, attrs)
}

// FindAll fetches every record of a type.
func FindAll[T any](ctx context.Context, s *Store, typeName string) ([]T, error) {
	return query[T](ctx, s, typeName, nil)
}

// Query fetches the records of a type matching the given query parameters.
func Query[T any](ctx context.Context, s *Store, typeName string, params map[string]string) ([]T, error) {
	return query[T](ctx, s, typeName, params)
}

func query[T any](ctx context.Context, s *Store, typeName string, params map[string]string) ([]T, error) {
	op := "findAll"
	if len(params) > 0 {
		op = "query"
	}

	resp, err := s.do(ctx, op, typeName, httpclient.Request{
		Method: http.MethodGet,
		Path:   s.pathFor(typeName),
		Query:  params,
	})
	if err != nil {
		return nil, err
	}

	many, err := s.ser.NormalizeMany(typeName, resp.Body)
	if err != nil {
		return nil, errors.Serialization("normalize "+typeName+" collection", err)
	}

	records := make([]T, 0, len(many))
	for _, attrs := range many {
		record, err := decodeRecord[T](typeName, attrs)
		if err != nil {
			return nil, err
		}
		records = append(records, record)
	}
	return records, nil
}

// Create persists a new record and returns the server's view of it.
func Create[T any](ctx context.Context, s *Store, typeName string, record T) (T, error) {
	var zero T

	if s.validate {
		if err := validation.Validate(record); err != nil {
			return zero, err
		}
	}

	attrs, err := recordAttrs(typeName, record)
	if err != nil {
		return zero, err
	}
	if s.assignIDs {
		if id, ok := attrs["id"]; !ok || id == nil || id == "" {
			attrs["id"] = uuid.NewString()
		}
	}

	payload, err := s.ser.Serialize(typeName, attrs)
	if err != nil {
		return zero, errors.Serialization("serialize "+typeName+" record", err)
	}

	resp, err := s.do(ctx, "create", typeName, httpclient.Request{
		Method:  http.MethodPost,
		Path:    s.pathFor(typeName),
		Body:    payload,
		Headers: map[string]string{"Content-Type": "application/json"},
	})
	if err != nil {
		return zero, err
	}

	normalized, err := s.ser.Normalize(typeName, resp.Body)
	if err != nil {
		return zero, errors.Serialization("normalize "+typeName+" record", err)
	}
	return decodeRecord[T](typeName, normalized)
}

// Update replaces an existing record and returns the server's view of it.
func Update[T any](ctx context.Context, s *Store, typeName, id string, record T) (T, error) {
	var zero T

	if s.validate {
		if err := validation.Validate(record); err != nil {
			return zero, err
		}
	}

	attrs, err := recordAttrs(typeName, record)
	if err != nil {
		return zero, err
	}

	payload, err := s.ser.Serialize(typeName, attrs)
	if err != nil {
		return zero, errors.Serialization("serialize "+typeName+" record", err)
	}

	resp, err := s.do(ctx, "update", typeName, httpclient.Request{
		Method:  http.MethodPut,
		Path:    s.pathFor(typeName) + "/" + url.PathEscape(id),
		Body:    payload,
		Headers: map[string]string{"Content-Type": "application/json"},
	})
	if err != nil {
		return zero, err
	}

	normalized, err := s.ser.Normalize(typeName, resp.Body)
	if err != nil {
		return zero, errors.Serialization("normalize "+typeName+" record", err)
	}
	return decodeRecord[T](typeName, normalized)
}

// Delete removes a record by id.
func (s *Store) Delete(ctx context.Context, typeName, id string) error {
	_, err := s.do(ctx, "delete", typeName, httpclient.Request{
		Method: http.MethodDelete,
		Path:   s.pathFor(typeName) + "/" + url.PathEscape(id),
	})
	return err
}
