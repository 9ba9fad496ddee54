package publisher

import (
	"context"
	"encoding/json"
	"time"

	"github.com/sukirti-panigrahi/Comeo/internal/domain"
	"github.com/segmentio/kafka-go"
)

const (
	TopicCampaignEvents = "campaign-events"
	TopicDonationEvents = "donation-events"
)

type DefaultKafkaPublisher struct {
	writer *kafka.Writer
}

func NewDefaultKafkaPublisher(brokers []string) *DefaultKafkaPublisher {
	return &DefaultKafkaPublisher{
		writer: &kafka.Writer{
			Addr:     kafka.TCP(brokers...),
			Balancer: &kafka.LeastBytes{},
		},
	}
}

func (k *DefaultKafkaPublisher) Publish(topic string, msgs ...domain.Message) error {
	var km []kafka.Message
	for _, m := range msgs {
		km = append(km, kafka.Message{
			Key:   m.Key,
			Value: m.Value,
			Time:  time.Now(),
			Topic: topic,
		})
	}

	return k.writer.WriteMessages(context.Background(), km...)
}

func (k *DefaultKafkaPublisher) PublishCampaignEvent(event CampaignEvent) error {
	v, err := json.Marshal(event)
	if err != nil {
		return err
	}

	return k.Publish(TopicCampaignEvents, domain.Message{Key: []byte(event.CampaignID), Value: v})
}

func (k *DefaultKafkaPublisher) PublishDonationEvent(event DonationEvent) error {
	v, err := json.Marshal(event)
	if err != nil {
		return err
	}

	return k.Publish(TopicDonationEvents, domain.Message{Key: []byte(event.CampaignID), Value: v})
}
