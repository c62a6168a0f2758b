// Package rabbit publishes verification reports to RabbitMQ.
//
// The client is publish-only: it declares a durable topic exchange on
// startup, enables publisher confirms and waits for the broker's ack on
// every report. Downstream consumers bind their own queues to the exchange.
//
// Basic Usage:
//
//	client, err := rabbit.NewClient(rabbit.NewConfig(), log)
//	if err != nil {
//		log.Fatal("failed to connect to rabbit", err, nil)
//	}
//	defer client.Close()
//
//	if err := client.PublishReport(ctx, report); err != nil {
//		log.Error("failed to publish report", err, nil)
//	}
package rabbit
