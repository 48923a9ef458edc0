// Package activemodel customizes the record store for Rails-style JSON
// APIs built on active_model_serializers: underscored, pluralized URL paths
// ("famousPerson" -> "famous_people"), snake_case wire documents keyed by
// the record type, and 422 responses whose bodies carry field-level
// validation messages.
//
// The customizations are plain functions bundled into a store.Profile, not
// a store subtype:
//
//	s, err := store.New(store.Config{
//		HTTP:    httpclient.Config{BaseURL: "https://api.example.com"},
//		Profile: activemodel.Profile(),
//	})
package activemodel
