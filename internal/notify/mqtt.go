package notify

import (
	"context"
	"fmt"
	"strings"
)

// Publisher - минимальный контракт MQTT клиента
type Publisher interface {
	Publish(topic string, qos byte, retained bool, payload []byte) error
}

// MQTTSink публикует событие в топик получателя: {base}/{recipientType}/{recipientId}
type MQTTSink struct {
	publisher Publisher
	baseTopic string
}

func NewMQTTSink(publisher Publisher, baseTopic string) *MQTTSink {
	return &MQTTSink{
		publisher: publisher,
		baseTopic: strings.TrimRight(baseTopic, "/"),
	}
}

func (s *MQTTSink) Name() string { return "mqtt" }

func (s *MQTTSink) Deliver(_ context.Context, event AlertEvent, rawPayload []byte) error {
	topic := s.Topic(event)
	// QoS 1: at least once
	if err := s.publisher.Publish(topic, 1, false, rawPayload); err != nil {
		return fmt.Errorf("mqtt sink: %w", err)
	}
	return nil
}

func (s *MQTTSink) Topic(event AlertEvent) string {
	return fmt.Sprintf("%s/%s/%s", s.baseTopic, strings.ToLower(string(event.RecipientType)), event.RecipientID)
}
