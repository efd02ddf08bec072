// Package metrics provides observability hooks for docnav.
//
// Components receive a Recorder through dependency injection and default to
// NoopRecorder, so metrics can be switched on without nil checks:
//
//	recorder := metrics.NewPrometheusRecorder(registry)
//	srv := server.New(cfg, source, server.WithRecorder(recorder))
//
// PrometheusRecorder registers its collectors on the registry it is given;
// HTTPHandler serves that registry.
package metrics
