// Package metrics counts statement evaluations with Prometheus collectors
// held in a private registry, and renders them in the text exposition
// format.
package metrics
