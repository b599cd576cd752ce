package kafka

import (
	"context"
	"encoding/json"
	"time"

	"github.com/segmentio/kafka-go"
)

type KafkaPublisher struct {
	contractWriter *kafka.Writer
	escrowWriter   *kafka.Writer
}

func NewKafkaPublisher(brokers []string, contractTopic, escrowTopic string) *KafkaPublisher {
	return &KafkaPublisher{
		contractWriter: &kafka.Writer{
			Addr:     kafka.TCP(brokers...),
			Topic:    contractTopic,
			Balancer: &kafka.LeastBytes{},
		},
		escrowWriter: &kafka.Writer{
			Addr:     kafka.TCP(brokers...),
			Topic:    escrowTopic,
			Balancer: &kafka.LeastBytes{},
		},
	}
}

func (k *KafkaPublisher) PublishContract(event ContractEvent) error {
	msg, err := json.Marshal(event)
	if err != nil {
		return err
	}

	return k.contractWriter.WriteMessages(context.Background(), kafka.Message{
		Key:   []byte(event.ContractID),
		Value: msg,
		Time:  time.Now(),
	})
}

func (k *KafkaPublisher) PublishEscrow(event EscrowEvent) error {
	msg, err := json.Marshal(event)
	if err != nil {
		return err
	}

	return k.escrowWriter.WriteMessages(context.Background(), kafka.Message{
		Key:   []byte(event.EscrowID),
		Value: msg,
		Time:  time.Now(),
	})
}

func (k *KafkaPublisher) Close() error {
	if err := k.contractWriter.Close(); err != nil {
		return err
	}
	return k.escrowWriter.Close()
}
