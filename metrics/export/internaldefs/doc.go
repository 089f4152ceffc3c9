// Package internaldefs holds the metric name and help-text definitions
// shared by the Prometheus and OTel exporters, so both expose an
// identical series set.
package internaldefs
