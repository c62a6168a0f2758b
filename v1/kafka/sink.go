package kafka

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/segmentio/kafka-go"

	"github.com/Aleph-Alpha/weaviate-verify/v1/verifier"
)

// PublishReport produces a verification report to the report topic, keyed by
// run ID so repeated runs land in the same partition.
func (c *Client) PublishReport(ctx context.Context, report *verifier.Report) error {
	body, err := json.Marshal(report)
	if err != nil {
		return fmt.Errorf("failed to marshal report %q: %w", report.RunID, err)
	}

	err = c.writer.WriteMessages(ctx, kafka.Message{
		Key:   []byte(report.RunID),
		Value: body,
	})
	if err != nil {
		c.logger.Error("error in producing report to kafka", err, map[string]interface{}{
			"run_id": report.RunID,
			"topic":  c.cfg.Topic,
		})
		return fmt.Errorf("failed to produce report %q: %w", report.RunID, err)
	}

	c.logger.Debug("report produced to kafka", nil, map[string]interface{}{
		"run_id": report.RunID,
		"topic":  c.cfg.Topic,
	})
	return nil
}
