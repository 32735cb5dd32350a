package account

import (
	"atlas-pantry/kafka/consumer"
	"atlas-pantry/kafka/producer"
	"atlas-pantry/storage"

	"github.com/opentracing/opentracing-go"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

const consumerNameStatus = "account_status_event"

func StatusConsumer(l logrus.FieldLogger) func(groupId string) consumer.Config {
	return func(groupId string) consumer.Config {
		return consumer.NewConfig(consumerNameStatus)(producer.LookupTopic(l)(EnvEventTopicAccountStatus))(groupId)
	}
}

func StatusRegister(l logrus.FieldLogger, db *gorm.DB) consumer.Handler {
	return consumer.AdaptHandler(handleStatusEvent(db))
}

func handleStatusEvent(db *gorm.DB) func(l logrus.FieldLogger, span opentracing.Span, event statusEvent) {
	return func(l logrus.FieldLogger, span opentracing.Span, event statusEvent) {
		if event.Status != EventAccountStatusCreated {
			l.Debugf("Ignoring account status [%s] for account [%d].", event.Status, event.AccountId)
			return
		}

		created, err := storage.BootstrapDefaults(l, db, span)(event.AccountId)
		if err != nil {
			l.WithError(err).Errorf("Unable to bootstrap storage locations for account [%d].", event.AccountId)
			return
		}
		l.Infof("Bootstrapped [%d] storage locations for account [%d].", created, event.AccountId)
	}
}
