package inventory

import (
	"errors"
	"net/http"
	"strconv"

	"atlas-pantry/kafka/producer"
	"atlas-pantry/rest"

	"github.com/Chronicle20/atlas-model/model"
	"github.com/Chronicle20/atlas-rest/server"
	"github.com/gorilla/mux"
	"github.com/manyminds/api2go/jsonapi"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

const (
	GetItems               = "get_items"
	GetItem                = "get_item"
	CreateItem             = "create_item"
	UpdateItem             = "update_item"
	UpdateItemQuantity     = "update_item_quantity"
	DeleteItem             = "delete_item"
	GetExpiringItems       = "get_expiring_items"
	GetExpiredItems        = "get_expired_items"
	GetLowStockItems       = "get_low_stock_items"
	GetLocationItems       = "get_location_items"
	GetInventoryStatistics = "get_inventory_statistics"
	UseItemsForRecipe      = "use_items_for_recipe"
)

func InitResource(si jsonapi.ServerInformation) func(db *gorm.DB) server.RouteInitializer {
	return func(db *gorm.DB) server.RouteInitializer {
		return func(router *mux.Router, l logrus.FieldLogger) {
			register := rest.RegisterHandler(l)(db)(si)
			registerInput := rest.RegisterInputHandler[RestModel](l)(db)(si)
			registerQuantityInput := rest.RegisterInputHandler[QuantityRestModel](l)(db)(si)
			registerUsageInput := rest.RegisterInputHandler[UsageRestModel](l)(db)(si)

			r := router.PathPrefix("/owners/{ownerId}").Subrouter()
			r.HandleFunc("/items", register(GetItems, handleGetItems)).Methods(http.MethodGet)
			r.HandleFunc("/items", registerInput(CreateItem, handleCreateItem)).Methods(http.MethodPost)
			r.HandleFunc("/items/expiring", register(GetExpiringItems, handleGetExpiringItems)).Methods(http.MethodGet)
			r.HandleFunc("/items/expired", register(GetExpiredItems, handleGetExpiredItems)).Methods(http.MethodGet)
			r.HandleFunc("/items/low-stock", register(GetLowStockItems, handleGetLowStockItems)).Methods(http.MethodGet)
			r.HandleFunc("/items/statistics", register(GetInventoryStatistics, handleGetInventoryStatistics)).Methods(http.MethodGet)
			r.HandleFunc("/items/{itemId}", register(GetItem, handleGetItem)).Methods(http.MethodGet)
			r.HandleFunc("/items/{itemId}", registerInput(UpdateItem, handleUpdateItem)).Methods(http.MethodPatch)
			r.HandleFunc("/items/{itemId}", register(DeleteItem, handleDeleteItem)).Methods(http.MethodDelete)
			r.HandleFunc("/items/{itemId}/quantity", registerQuantityInput(UpdateItemQuantity, handleUpdateItemQuantity)).Methods(http.MethodPatch)
			r.HandleFunc("/storage-locations/{locationId}/items", register(GetLocationItems, handleGetLocationItems)).Methods(http.MethodGet)
			r.HandleFunc("/recipes/use", registerUsageInput(UseItemsForRecipe, handleUseItemsForRecipe)).Methods(http.MethodPost)
		}
	}
}

func criteriaFromQuery(r *http.Request) SearchCriteria {
	q := r.URL.Query()
	criteria := SearchCriteria{
		Name:         q.Get("name"),
		Category:     q.Get("category"),
		ExpiryFilter: q.Get("expiryFilter"),
	}
	if locationId, err := strconv.Atoi(q.Get("locationId")); err == nil {
		criteria.LocationId = uint32(locationId)
	}
	return criteria
}

func marshalItems(d *rest.HandlerDependency, c *rest.HandlerContext, w http.ResponseWriter, ms []Model) {
	res, err := model.TransformAll(ms, Transform)
	if err != nil {
		d.Logger().WithError(err).Errorf("Creating REST model.")
		w.WriteHeader(http.StatusInternalServerError)
		return
	}
	server.Marshal[[]RestModel](d.Logger())(w)(c.ServerInformation())(res)
}

func handleGetItems(d *rest.HandlerDependency, c *rest.HandlerContext) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ms, err := Search(d.Logger(), d.DB())(c.OwnerId(), criteriaFromQuery(r))
		if err != nil {
			d.Logger().WithError(err).Errorf("Unable to get items for owner [%d].", c.OwnerId())
			w.WriteHeader(http.StatusInternalServerError)
			return
		}
		marshalItems(d, c, w, ms)
	}
}

func handleGetItem(d *rest.HandlerDependency, c *rest.HandlerContext) http.HandlerFunc {
	return rest.ParseItemId(d.Logger(), func(itemId uint32) http.HandlerFunc {
		return func(w http.ResponseWriter, r *http.Request) {
			m, err := GetById(d.Logger(), d.DB())(c.OwnerId(), itemId)
			if errors.Is(err, gorm.ErrRecordNotFound) {
				w.WriteHeader(http.StatusNotFound)
				return
			}
			if err != nil {
				d.Logger().WithError(err).Errorf("Unable to get item [%d].", itemId)
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

func handleCreateItem(d *rest.HandlerDependency, c *rest.HandlerContext, input RestModel) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ep := producer.ProviderImpl(d.Logger())(d.Span())
		m, err := Add(d.Logger(), d.DB(), d.Span())(ep)(c.OwnerId(), input.LocationId, input.Name, input.Category, input.Quantity, input.Unit, input.ExpiryDate, input.Notes)
		if errors.Is(err, missingFieldErr) || errors.Is(err, invalidQuantityErr) {
			w.WriteHeader(http.StatusBadRequest)
			return
		}
		if errors.Is(err, gorm.ErrRecordNotFound) {
			w.WriteHeader(http.StatusNotFound)
			return
		}
		if errors.Is(err, staleVersionErr) {
			w.WriteHeader(http.StatusConflict)
			return
		}
		if err != nil {
			d.Logger().WithError(err).Errorf("Creating item for owner [%d].", c.OwnerId())
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

func handleUpdateItem(d *rest.HandlerDependency, c *rest.HandlerContext, input RestModel) http.HandlerFunc {
	return rest.ParseItemId(d.Logger(), func(itemId uint32) http.HandlerFunc {
		return func(w http.ResponseWriter, r *http.Request) {
			m, err := Update(d.Logger(), d.DB(), d.Span())(c.OwnerId(), itemId, input.LocationId, input.Category, input.Unit, input.ExpiryDate, input.Notes)
			if errors.Is(err, gorm.ErrRecordNotFound) {
				w.WriteHeader(http.StatusNotFound)
				return
			}
			if errors.Is(err, staleVersionErr) {
				w.WriteHeader(http.StatusConflict)
				return
			}
			if err != nil {
				d.Logger().WithError(err).Errorf("Updating item [%d].", itemId)
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

func handleUpdateItemQuantity(d *rest.HandlerDependency, c *rest.HandlerContext, input QuantityRestModel) http.HandlerFunc {
	return rest.ParseItemId(d.Logger(), func(itemId uint32) http.HandlerFunc {
		return func(w http.ResponseWriter, r *http.Request) {
			ep := producer.ProviderImpl(d.Logger())(d.Span())
			m, err := SetQuantity(d.Logger(), d.DB(), d.Span())(ep)(c.OwnerId(), itemId, input.Quantity, input.Notes)
			if errors.Is(err, invalidQuantityErr) {
				w.WriteHeader(http.StatusBadRequest)
				return
			}
			if errors.Is(err, gorm.ErrRecordNotFound) {
				w.WriteHeader(http.StatusNotFound)
				return
			}
			if errors.Is(err, staleVersionErr) {
				w.WriteHeader(http.StatusConflict)
				return
			}
			if err != nil {
				d.Logger().WithError(err).Errorf("Adjusting quantity for item [%d].", itemId)
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

func handleDeleteItem(d *rest.HandlerDependency, c *rest.HandlerContext) http.HandlerFunc {
	return rest.ParseItemId(d.Logger(), func(itemId uint32) http.HandlerFunc {
		return func(w http.ResponseWriter, r *http.Request) {
			ep := producer.ProviderImpl(d.Logger())(d.Span())
			err := Delete(d.Logger(), d.DB(), d.Span())(ep)(c.OwnerId(), itemId)
			if errors.Is(err, gorm.ErrRecordNotFound) {
				w.WriteHeader(http.StatusNotFound)
				return
			}
			if err != nil {
				d.Logger().WithError(err).Errorf("Deleting item [%d].", itemId)
				w.WriteHeader(http.StatusInternalServerError)
				return
			}
			w.WriteHeader(http.StatusNoContent)
		}
	})
}

func handleGetExpiringItems(d *rest.HandlerDependency, c *rest.HandlerContext) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		days := 7
		if v, err := strconv.Atoi(r.URL.Query().Get("days")); err == nil && v > 0 {
			days = v
		}
		ms, err := GetExpiring(d.Logger(), d.DB())(c.OwnerId(), days)
		if err != nil {
			d.Logger().WithError(err).Errorf("Unable to get expiring items for owner [%d].", c.OwnerId())
			w.WriteHeader(http.StatusInternalServerError)
			return
		}
		marshalItems(d, c, w, ms)
	}
}

func handleGetExpiredItems(d *rest.HandlerDependency, c *rest.HandlerContext) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ms, err := GetExpired(d.Logger(), d.DB())(c.OwnerId())
		if err != nil {
			d.Logger().WithError(err).Errorf("Unable to get expired items for owner [%d].", c.OwnerId())
			w.WriteHeader(http.StatusInternalServerError)
			return
		}
		marshalItems(d, c, w, ms)
	}
}

func handleGetLowStockItems(d *rest.HandlerDependency, c *rest.HandlerContext) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		threshold := 1.0
		if v, err := strconv.ParseFloat(r.URL.Query().Get("threshold"), 64); err == nil && v >= 0 {
			threshold = v
		}
		ms, err := GetLowStock(d.Logger(), d.DB())(c.OwnerId(), threshold)
		if err != nil {
			d.Logger().WithError(err).Errorf("Unable to get low stock items for owner [%d].", c.OwnerId())
			w.WriteHeader(http.StatusInternalServerError)
			return
		}
		marshalItems(d, c, w, ms)
	}
}

func handleGetLocationItems(d *rest.HandlerDependency, c *rest.HandlerContext) http.HandlerFunc {
	return rest.ParseLocationId(d.Logger(), func(locationId uint32) http.HandlerFunc {
		return func(w http.ResponseWriter, r *http.Request) {
			ms, err := GetForLocation(d.Logger(), d.DB())(c.OwnerId(), locationId)
			if err != nil {
				d.Logger().WithError(err).Errorf("Unable to get items for location [%d].", locationId)
				w.WriteHeader(http.StatusInternalServerError)
				return
			}
			marshalItems(d, c, w, ms)
		}
	})
}

func handleGetInventoryStatistics(d *rest.HandlerDependency, c *rest.HandlerContext) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		s, err := GetStatistics(d.Logger(), d.DB())(c.OwnerId())
		if err != nil {
			d.Logger().WithError(err).Errorf("Computing inventory statistics for owner [%d].", c.OwnerId())
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

func handleUseItemsForRecipe(d *rest.HandlerDependency, c *rest.HandlerContext, input UsageRestModel) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ep := producer.ProviderImpl(d.Logger())(d.Span())
		results, err := UseForRecipe(d.Logger(), d.DB(), d.Span())(ep)(c.OwnerId(), input.RecipeName, ExtractUsages(input))
		if errors.Is(err, staleVersionErr) {
			w.WriteHeader(http.StatusConflict)
			return
		}
		if err != nil {
			d.Logger().WithError(err).Errorf("Using items for recipe for owner [%d].", c.OwnerId())
			w.WriteHeader(http.StatusInternalServerError)
			return
		}

		res, err := TransformUsageResults(c.OwnerId(), results)
		if err != nil {
			d.Logger().WithError(err).Errorf("Creating REST model.")
			w.WriteHeader(http.StatusInternalServerError)
			return
		}
		server.Marshal[UsageResultRestModel](d.Logger())(w)(c.ServerInformation())(res)
	}
}
