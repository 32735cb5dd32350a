package main

import (
	"atlas-pantry/account"
	"atlas-pantry/database"
	"atlas-pantry/inventory"
	"atlas-pantry/inventory/history"
	"atlas-pantry/kafka/consumer"
	"atlas-pantry/logger"
	"atlas-pantry/recipe/suggestion"
	"atlas-pantry/service"
	"atlas-pantry/storage"
	"atlas-pantry/tracing"

	"github.com/Chronicle20/atlas-rest/server"
)
import _ "net/http/pprof"

const serviceName = "atlas-pantry"
const consumerGroupId = "Pantry Service"

type Server struct {
	baseUrl string
	prefix  string
}

func (s Server) GetBaseURL() string {
	return s.baseUrl
}

func (s Server) GetPrefix() string {
	return s.prefix
}

func GetServer() Server {
	return Server{
		baseUrl: "",
		prefix:  "/api/pes/",
	}
}

func main() {
	l := logger.CreateLogger(serviceName)
	l.Infoln("Starting main service.")

	tdm := service.GetTeardownManager()

	tc, err := tracing.InitTracer(l)(serviceName)
	if err != nil {
		l.WithError(err).Fatal("Unable to initialize tracer.")
	}

	db := database.Connect(l, database.SetMigrations(storage.Migration, inventory.Migration, history.Migration))

	consumer.StartConsumer(l, tdm.Context(), tdm.WaitGroup())(account.StatusConsumer(l)(consumerGroupId), account.StatusRegister(l, db))

	server.CreateService(l, tdm.Context(), tdm.WaitGroup(), GetServer().GetPrefix(),
		storage.InitResource(GetServer())(db, inventory.CountForLocation, inventory.RelocateForLocation, inventory.CategoriesForLocation),
		inventory.InitResource(GetServer())(db),
		history.InitResource(GetServer())(db),
		suggestion.InitResource(GetServer())(db))

	tdm.TeardownFunc(tracing.Teardown(l)(tc))

	tdm.Wait()
	l.Infoln("Service shutdown.")
}
