package storage

import (
	"errors"
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
	GetStorageLocations          = "get_storage_locations"
	CreateStorageLocation        = "create_storage_location"
	UpdateStorageLocation        = "update_storage_location"
	DeleteStorageLocation        = "delete_storage_location"
	BootstrapStorageLocations    = "bootstrap_storage_locations"
	GetStorageLocationStatistics = "get_storage_location_statistics"
)

func InitResource(si jsonapi.ServerInformation) func(db *gorm.DB, counter ItemCounter, relocator ItemRelocator, categories CategoryProvider) server.RouteInitializer {
	return func(db *gorm.DB, counter ItemCounter, relocator ItemRelocator, categories CategoryProvider) server.RouteInitializer {
		return func(router *mux.Router, l logrus.FieldLogger) {
			register := rest.RegisterHandler(l)(db)(si)
			registerInput := rest.RegisterInputHandler[RestModel](l)(db)(si)

			r := router.PathPrefix("/owners/{ownerId}/storage-locations").Subrouter()
			r.HandleFunc("", register(GetStorageLocations, handleGetStorageLocations(counter))).Methods(http.MethodGet)
			r.HandleFunc("", registerInput(CreateStorageLocation, handleCreateStorageLocation)).Methods(http.MethodPost)
			r.HandleFunc("/defaults", register(BootstrapStorageLocations, handleBootstrapStorageLocations)).Methods(http.MethodPost)
			r.HandleFunc("/statistics", register(GetStorageLocationStatistics, handleGetStorageLocationStatistics(counter, categories))).Methods(http.MethodGet)
			r.HandleFunc("/{locationId}", registerInput(UpdateStorageLocation, handleUpdateStorageLocation)).Methods(http.MethodPatch)
			r.HandleFunc("/{locationId}", register(DeleteStorageLocation, handleDeleteStorageLocation(counter, relocator))).Methods(http.MethodDelete)
		}
	}
}

func handleGetStorageLocations(counter ItemCounter) rest.GetHandler {
	return func(d *rest.HandlerDependency, c *rest.HandlerContext) http.HandlerFunc {
		return func(w http.ResponseWriter, r *http.Request) {
			ms, err := GetForOwner(d.Logger(), d.DB())(c.OwnerId(), ItemCountDecorator(d.Logger(), d.DB(), counter))
			if err != nil {
				d.Logger().WithError(err).Errorf("Unable to get storage locations for owner [%d].", c.OwnerId())
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
}

func handleCreateStorageLocation(d *rest.HandlerDependency, c *rest.HandlerContext, input RestModel) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		m, err := Create(d.Logger(), d.DB(), d.Span())(c.OwnerId(), input.Name, input.LocationType, input.Description)
		if err != nil {
			if errors.Is(err, missingFieldErr) {
				w.WriteHeader(http.StatusBadRequest)
				return
			}
			if errors.Is(err, duplicateNameErr) {
				w.WriteHeader(http.StatusConflict)
				return
			}
			d.Logger().WithError(err).Errorf("Creating storage location.")
			w.WriteHeader(http.StatusInternalServerError)
			return
		}

		res, err := model.Transform(m, Transform)
		if err != nil {
			d.Logger().WithError(err).Errorf("Creating REST model.")
			w.WriteHeader(http.StatusInternalServerError)
			return
		}

		server.Marshal[RestModel](d.Logger())(w)(c.ServerInformation())(res)
	}
}

func handleUpdateStorageLocation(d *rest.HandlerDependency, c *rest.HandlerContext, input RestModel) http.HandlerFunc {
	return rest.ParseLocationId(d.Logger(), func(locationId uint32) http.HandlerFunc {
		return func(w http.ResponseWriter, r *http.Request) {
			m, err := Update(d.Logger(), d.DB(), d.Span())(c.OwnerId(), locationId, input.Name, input.LocationType, input.Description)
			if errors.Is(err, gorm.ErrRecordNotFound) {
				w.WriteHeader(http.StatusNotFound)
				return
			}
			if errors.Is(err, duplicateNameErr) {
				w.WriteHeader(http.StatusConflict)
				return
			}
			if err != nil {
				d.Logger().WithError(err).Errorf("Updating storage location [%d].", locationId)
				w.WriteHeader(http.StatusInternalServerError)
				return
			}

			res, err := model.Transform(m, Transform)
			if err != nil {
				d.Logger().WithError(err).Errorf("Creating REST model.")
				w.WriteHeader(http.StatusInternalServerError)
				return
			}

			server.Marshal[RestModel](d.Logger())(w)(c.ServerInformation())(res)
		}
	})
}

func handleDeleteStorageLocation(counter ItemCounter, relocator ItemRelocator) rest.GetHandler {
	return func(d *rest.HandlerDependency, c *rest.HandlerContext) http.HandlerFunc {
		return rest.ParseLocationId(d.Logger(), func(locationId uint32) http.HandlerFunc {
			return func(w http.ResponseWriter, r *http.Request) {
				err := Delete(d.Logger(), d.DB(), d.Span())(counter, relocator)(c.OwnerId(), locationId)
				if errors.Is(err, gorm.ErrRecordNotFound) {
					w.WriteHeader(http.StatusNotFound)
					return
				}
				if errors.Is(err, noDestinationErr) {
					w.WriteHeader(http.StatusConflict)
					return
				}
				if err != nil {
					d.Logger().WithError(err).Errorf("Deleting storage location [%d].", locationId)
					w.WriteHeader(http.StatusInternalServerError)
					return
				}
				w.WriteHeader(http.StatusNoContent)
			}
		})
	}
}

func handleBootstrapStorageLocations(d *rest.HandlerDependency, c *rest.HandlerContext) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		created, err := BootstrapDefaults(d.Logger(), d.DB(), d.Span())(c.OwnerId())
		if err != nil {
			d.Logger().WithError(err).Errorf("Bootstrapping storage locations for owner [%d].", c.OwnerId())
			w.WriteHeader(http.StatusInternalServerError)
			return
		}

		server.Marshal[BootstrapRestModel](d.Logger())(w)(c.ServerInformation())(BootstrapRestModel{Id: c.OwnerId(), Created: created})
	}
}

func handleGetStorageLocationStatistics(counter ItemCounter, categories CategoryProvider) rest.GetHandler {
	return func(d *rest.HandlerDependency, c *rest.HandlerContext) http.HandlerFunc {
		return func(w http.ResponseWriter, r *http.Request) {
			s, err := GetStatistics(d.Logger(), d.DB())(counter, categories)(c.OwnerId())
			if err != nil {
				d.Logger().WithError(err).Errorf("Computing storage statistics for owner [%d].", c.OwnerId())
				w.WriteHeader(http.StatusInternalServerError)
				return
			}

			res, err := TransformStatistics(c.OwnerId(), s)
			if err != nil {
				d.Logger().WithError(err).Errorf("Creating REST model.")
				w.WriteHeader(http.StatusInternalServerError)
				return
			}

			server.Marshal[StatisticsRestModel](d.Logger())(w)(c.ServerInformation())(res)
		}
	}
}
