// Package kafka produces verification reports to a Kafka topic.
//
// The client is produce-only. Reports are keyed by run ID and serialized as
// JSON. Auto topic creation is allowed so a verification run against a fresh
// cluster does not need a provisioning step.
package kafka
