// Package services contains stateless domain services of the logistics
// decision engine:
//
//   - TrackingProgression derives display progress from elapsed time without
//     mutating the authoritative order aggregate
//   - WeatherAnalyzer and TrafficAnalyzer turn environmental signal batches
//     into deterministic impact verdicts
//
// Services in this package hold no references to repositories or external
// collaborators; they operate purely on domain values handed to them.
package services
