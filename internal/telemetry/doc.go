// Package telemetry provides OpenTelemetry initialization and helpers
// for distributed tracing across the Naija Chef service.
//
// The package configures OTLP HTTP export for traces and logs, with
// support for hosted collectors and local backends.
package telemetry
