package producer

import (
	"context"
	"encoding/binary"
	"encoding/json"
	"os"
	"sync"
	"time"

	"github.com/Chronicle20/atlas-model/model"
	"github.com/opentracing/opentracing-go"
	"github.com/segmentio/kafka-go"
	"github.com/sirupsen/logrus"
)

type MessageProducer func(provider model.Provider[[]kafka.Message]) error

// Provider resolves a message producer for the topic referenced by the
// environment variable token.
type Provider func(token string) MessageProducer

var writers sync.Map

func getWriter(topic string) *kafka.Writer {
	if w, ok := writers.Load(topic); ok {
		return w.(*kafka.Writer)
	}
	w := &kafka.Writer{
		Addr:         kafka.TCP(os.Getenv("BOOTSTRAP_SERVERS")),
		Topic:        topic,
		Balancer:     &kafka.LeastBytes{},
		BatchTimeout: 10 * time.Millisecond,
		RequiredAcks: kafka.RequireOne,
	}
	actual, _ := writers.LoadOrStore(topic, w)
	return actual.(*kafka.Writer)
}

func LookupTopic(l logrus.FieldLogger) func(token string) string {
	return func(token string) string {
		t := os.Getenv(token)
		if t == "" {
			l.Warnf("Topic for token [%s] is not configured.", token)
		}
		return t
	}
}

func ProviderImpl(l logrus.FieldLogger) func(span opentracing.Span) Provider {
	return func(span opentracing.Span) Provider {
		return func(token string) MessageProducer {
			topic := LookupTopic(l)(token)
			return func(provider model.Provider[[]kafka.Message]) error {
				ms, err := provider()
				if err != nil {
					return err
				}
				ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
				defer cancel()
				return getWriter(topic).WriteMessages(ctx, ms...)
			}
		}
	}
}

func CreateKey(key int) []byte {
	var b = make([]byte, 8)
	binary.BigEndian.PutUint64(b, uint64(key))
	return b
}

func SingleMessageProvider(key []byte, value interface{}) model.Provider[[]kafka.Message] {
	v, err := json.Marshal(value)
	if err != nil {
		return model.ErrorProvider[[]kafka.Message](err)
	}
	return model.FixedProvider([]kafka.Message{{Key: key, Value: v}})
}
