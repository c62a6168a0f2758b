package rabbit

import (
	"context"
	"encoding/json"
	"fmt"

	amqp "github.com/rabbitmq/amqp091-go"

	"github.com/Aleph-Alpha/weaviate-verify/v1/verifier"
)

// PublishReport serializes a verification report and publishes it to the
// report exchange, waiting for the broker's confirm.
func (rb *Rabbit) PublishReport(ctx context.Context, report *verifier.Report) error {
	body, err := json.Marshal(report)
	if err != nil {
		return fmt.Errorf("failed to marshal report %q: %w", report.RunID, err)
	}

	rb.mu.RLock()
	confirm, err := rb.Channel.PublishWithDeferredConfirmWithContext(ctx,
		rb.cfg.Channel.ExchangeName,
		rb.cfg.Channel.RoutingKey,
		false, // mandatory
		false, // immediate
		amqp.Publishing{
			ContentType: rb.cfg.Channel.ContentType,
			MessageId:   report.RunID,
			Timestamp:   report.FinishedAt,
			Body:        body,
		},
	)
	rb.mu.RUnlock()
	if err != nil {
		rb.logger.Error("error in publishing report into rabbit", err, map[string]interface{}{
			"run_id": report.RunID,
		})
		return err
	}

	acked, err := confirm.WaitContext(ctx)
	if err != nil {
		return fmt.Errorf("failed to confirm report %q: %w", report.RunID, err)
	}
	if !acked {
		return fmt.Errorf("broker rejected report %q", report.RunID)
	}

	rb.logger.Debug("report published to rabbit", nil, map[string]interface{}{
		"run_id":   report.RunID,
		"exchange": rb.cfg.Channel.ExchangeName,
	})
	return nil
}
