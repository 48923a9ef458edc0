// Package serializer defines how records are converted to and from their
// wire documents, plus a registry that lets stores resolve a serializer by
// name. The built-in "json" serializer marshals attribute maps as-is;
// API-convention serializers (root keys, key casing) register themselves
// under their own names.
package serializer
