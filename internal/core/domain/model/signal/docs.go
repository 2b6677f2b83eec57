// Package signal defines the ephemeral environmental data flowing through the
// impact analysis pipelines: weather readings per delivery location, traffic
// readings per route waypoint, and the verdicts the analyzers derive from
// them. Nothing in this package is persisted; batches are fetched from the
// external signal source, analyzed, and discarded.
package signal
