package store

import (
	"github.com/restkit/restkit/errors"
	"github.com/restkit/restkit/inflect"
	"github.com/restkit/restkit/serializer"
)

// Profile bundles the API-convention hooks injected into the request
// pipeline. Each hook is an independent function value, so conventions can
// be mixed freely (a custom path scheme over the default classifier, say)
// instead of subclassed wholesale.
type Profile struct {
	// PathForType maps a record type name to its URL path segment.
	PathForType func(typeName string) string
	// ClassifyError refines the baseline error for a failed request. It
	// receives the response status, the raw body, and the baseline error,
	// and returns the error the caller sees. Nil selects the default
	// status-code classifier.
	ClassifyError func(status int, body []byte, fallback error) error
	// SerializerName selects the wire document format from the registry.
	SerializerName string
}

// DefaultProfile targets plain JSON APIs: pluralized underscored paths,
// structured status-code classification, pass-through JSON documents.
func DefaultProfile() Profile {
	return Profile{
		PathForType:    defaultPathForType,
		ClassifyError:  classifyStatus,
		SerializerName: serializer.JSONName,
	}
}

func defaultPathForType(typeName string) string {
	return inflect.Pluralize(inflect.Underscore(typeName))
}

// classifyStatus maps well-known HTTP statuses to structured errors and
// keeps the baseline for everything else.
func classifyStatus(status int, _ []byte, fallback error) error {
	if e := errors.FromStatus(status, fallback); e != nil {
		return e
	}
	return fallback
}

// applyDefaults fills unset hooks from DefaultProfile.
func (p Profile) applyDefaults() Profile {
	if p.PathForType == nil {
		p.PathForType = defaultPathForType
	}
	if p.ClassifyError == nil {
		p.ClassifyError = classifyStatus
	}
	if p.SerializerName == "" {
		p.SerializerName = serializer.JSONName
	}
	return p
}
