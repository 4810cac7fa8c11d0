// Package observability wires OpenTelemetry into the server.
//
// Setup installs OTLP/gRPC trace and metric exporters as the global providers
// when telemetry is enabled; otherwise the global no-op providers stay in
// place and every instrument created here records nothing. The HTTP
// middleware and the currency sync observer work the same way in both modes.
package observability
