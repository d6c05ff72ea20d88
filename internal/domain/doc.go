// Package domain models SOS alerts and their routing to district topics.
//
// # Districts
//
// A district is the partitioning key for push fan-out: every subscriber
// registers on the topic "district-<id>" for the administrative area they
// care about, and an incoming alert is delivered to exactly one such topic.
// District identifiers are slugs: lowercase ASCII, words joined by a single
// underscore, never empty. [Slugify] produces them from free-text place
// names (including accented ones: "São Paulo!" becomes "sao_paulo") and is
// idempotent, so re-normalizing a slug is a no-op. That idempotence is what
// lets client-asserted districts, cached lookups, and live geocode answers
// all land on the same topic.
//
// # Resolution and provenance
//
// Resolution never fails upward: a [Resolver] must always answer with some
// district, degrading to a configured default when it cannot do better. The
// [Resolution] it returns carries a [Provenance] tag so callers and tests
// can tell a confident answer ("static", "nominatim", "cache", "client")
// from a degraded one ("regional", "fallback", "nominatim-fallback",
// "error") without parsing logs. The single exception is the asserted
// strategy, where a missing district in the request is the caller's error
// ([ErrDistrictRequired]), not something the server can resolve locally.
//
// # Alert kinds
//
// Two kinds exist on the wire: "sos_alert" opens an incident and requires
// whatever the active resolver needs (a coordinate, or an asserted
// district); "stop" marks it resolved and carries only identifying fields.
// [BuildNotification] shapes both into a [NotificationPayload] with the
// data block and per-platform rendering hints the mobile apps expect.
// Payload timestamps are RFC 3339 UTC, taken from the sender when supplied
// and from the package clock otherwise.
//
// Nothing here is persisted; payloads are built fresh per request and the
// same sos_id sent twice produces two independent notifications.
package domain
