package history

import (
	"net/http"

	"atlas-pantry/rest"

	"github.com/Chronicle20/atlas-model/model"
	"github.com/Chronicle20/atlas-rest/server"
	"github.com/gorilla/mux"
	"github.com/manyminds/api2go/jsonapi"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

const (
	GetInventoryHistory     = "get_inventory_history"
	GetInventoryItemHistory = "get_inventory_item_history"
)

func InitResource(si jsonapi.ServerInformation) func(db *gorm.DB) server.RouteInitializer {
	return func(db *gorm.DB) server.RouteInitializer {
		return func(router *mux.Router, l logrus.FieldLogger) {
			register := rest.RegisterHandler(l)(db)(si)

			r := router.PathPrefix("/owners/{ownerId}").Subrouter()
			r.HandleFunc("/history", register(GetInventoryHistory, handleGetInventoryHistory)).Methods(http.MethodGet)
			r.HandleFunc("/items/{itemId}/history", register(GetInventoryItemHistory, handleGetInventoryItemHistory)).Methods(http.MethodGet)
		}
	}
}

func handleGetInventoryHistory(d *rest.HandlerDependency, c *rest.HandlerContext) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ms, err := GetForOwner(d.Logger(), d.DB())(c.OwnerId())
		if err != nil {
			d.Logger().WithError(err).Errorf("Unable to get inventory history for owner [%d].", c.OwnerId())
			w.WriteHeader(http.StatusInternalServerError)
			return
		}

		res, err := model.TransformAll(ms, Transform)
		if err != nil {
			d.Logger().WithError(err).Errorf("Creating REST model.")
			w.WriteHeader(http.StatusInternalServerError)
			return
		}

		server.Marshal[[]RestModel](d.Logger())(w)(c.ServerInformation())(res)
	}
}

func handleGetInventoryItemHistory(d *rest.HandlerDependency, c *rest.HandlerContext) http.HandlerFunc {
	return rest.ParseItemId(d.Logger(), func(itemId uint32) http.HandlerFunc {
		return func(w http.ResponseWriter, r *http.Request) {
			ms, err := GetForItem(d.Logger(), d.DB())(c.OwnerId(), itemId)
			if err != nil {
				d.Logger().WithError(err).Errorf("Unable to get inventory history for item [%d].", itemId)
				w.WriteHeader(http.StatusInternalServerError)
				return
			}

			res, err := model.TransformAll(ms, Transform)
			if err != nil {
				d.Logger().WithError(err).Errorf("Creating REST model.")
				w.WriteHeader(http.StatusInternalServerError)
				return
			}

			server.Marshal[[]RestModel](d.Logger())(w)(c.ServerInformation())(res)
		}
	})
}
