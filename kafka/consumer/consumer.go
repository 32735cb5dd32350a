package consumer

import (
	"context"
	"encoding/json"
	"errors"
	"os"
	"sync"

	"github.com/opentracing/opentracing-go"
	"github.com/segmentio/kafka-go"
	"github.com/sirupsen/logrus"
)

type Handler func(l logrus.FieldLogger, span opentracing.Span, key []byte, value []byte)

// AdaptHandler decodes the message payload before invoking the typed handler.
// Messages that fail to decode are logged and skipped.
func AdaptHandler[M any](h func(l logrus.FieldLogger, span opentracing.Span, event M)) Handler {
	return func(l logrus.FieldLogger, span opentracing.Span, key []byte, value []byte) {
		var event M
		err := json.Unmarshal(value, &event)
		if err != nil {
			l.WithError(err).Errorf("Unable to decode message into handler format.")
			return
		}
		h(l, span, event)
	}
}

type Config struct {
	name    string
	topic   string
	groupId string
}

func NewConfig(name string) func(topic string) func(groupId string) Config {
	return func(topic string) func(groupId string) Config {
		return func(groupId string) Config {
			return Config{name: name, topic: topic, groupId: groupId}
		}
	}
}

// StartConsumer reads the configured topic until the context closes, handing
// each message to the handlers under a fresh span.
func StartConsumer(l logrus.FieldLogger, ctx context.Context, wg *sync.WaitGroup) func(config Config, handlers ...Handler) {
	return func(config Config, handlers ...Handler) {
		wg.Add(1)
		go func() {
			defer wg.Done()

			reader := kafka.NewReader(kafka.ReaderConfig{
				Brokers:  []string{os.Getenv("BOOTSTRAP_SERVERS")},
				Topic:    config.topic,
				GroupID:  config.groupId,
				MinBytes: 10e3,
				MaxBytes: 10e6,
			})
			defer func() {
				err := reader.Close()
				if err != nil {
					l.WithError(err).Errorf("Unable to close reader for consumer [%s].", config.name)
				}
			}()

			l.Infof("Consumer [%s] reading topic [%s].", config.name, config.topic)
			for {
				msg, err := reader.ReadMessage(ctx)
				if errors.Is(err, context.Canceled) {
					l.Infof("Consumer [%s] shutting down.", config.name)
					return
				}
				if err != nil {
					l.WithError(err).Errorf("Unable to read message on topic [%s].", config.topic)
					return
				}

				span := opentracing.StartSpan(config.name)
				for _, h := range handlers {
					h(l, span, msg.Key, msg.Value)
				}
				span.Finish()
			}
		}()
	}
}
