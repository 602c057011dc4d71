// Package health provides HTTP handlers for health probes.
//
// [LivenessHandler] is an always-OK endpoint for process liveness.
// [ReadinessHandler] executes a set of [Checks] in parallel and reports
// service readiness.
//
// Handlers respond with plain text for probe compatibility. JSON is
// returned when the client sets Accept: application/json or ?format=json.
//
//	r.Get("/health/live", health.LivenessHandler())
//	r.Get("/health/ready", health.ReadinessHandler(health.Checks{
//	    "db": repo.Healthcheck(db),
//	}))
package health
