package suggestion

import (
	"net/http"
	"strconv"

	"atlas-pantry/recipe"
	"atlas-pantry/rest"

	"github.com/Chronicle20/atlas-model/model"
	"github.com/Chronicle20/atlas-rest/server"
	"github.com/gorilla/mux"
	"github.com/manyminds/api2go/jsonapi"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

const (
	EvaluateRecipe      = "evaluate_recipe"
	RankCookableRecipes = "rank_cookable_recipes"
	PlanMeals           = "plan_meals"
	BuildShoppingList   = "build_shopping_list"
)

func InitResource(si jsonapi.ServerInformation) func(db *gorm.DB) server.RouteInitializer {
	return func(db *gorm.DB) server.RouteInitializer {
		return func(router *mux.Router, l logrus.FieldLogger) {
			registerRecipeInput := rest.RegisterInputHandler[recipe.RestModel](l)(db)(si)
			registerBatchInput := rest.RegisterInputHandler[[]recipe.RestModel](l)(db)(si)

			r := router.PathPrefix("/owners/{ownerId}").Subrouter()
			r.HandleFunc("/recipes/evaluate", registerRecipeInput(EvaluateRecipe, handleEvaluateRecipe)).Methods(http.MethodPost)
			r.HandleFunc("/recipes/cookable", registerBatchInput(RankCookableRecipes, handleRankCookableRecipes)).Methods(http.MethodPost)
			r.HandleFunc("/recipes/meal-plan", registerBatchInput(PlanMeals, handlePlanMeals)).Methods(http.MethodPost)
			r.HandleFunc("/recipes/shopping-list", registerBatchInput(BuildShoppingList, handleBuildShoppingList)).Methods(http.MethodPost)
		}
	}
}

func handleEvaluateRecipe(d *rest.HandlerDependency, c *rest.HandlerContext, input recipe.RestModel) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		rm, err := recipe.Extract(input)
		if err != nil {
			w.WriteHeader(http.StatusBadRequest)
			return
		}

		e, err := Evaluate(d.Logger(), d.DB())(c.OwnerId(), rm)
		if err != nil {
			d.Logger().WithError(err).Errorf("Evaluating recipe [%s] for owner [%d].", rm.Name(), c.OwnerId())
			w.WriteHeader(http.StatusInternalServerError)
			return
		}

		res, err := model.Transform(e, Transform)
		if err != nil {
			d.Logger().WithError(err).Errorf("Creating REST model.")
			w.WriteHeader(http.StatusInternalServerError)
			return
		}
		server.Marshal[EvaluationRestModel](d.Logger())(w)(c.ServerInformation())(res)
	}
}

func handleRankCookableRecipes(d *rest.HandlerDependency, c *rest.HandlerContext, input []recipe.RestModel) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		rms, err := recipe.ExtractAll(input)
		if err != nil {
			w.WriteHeader(http.StatusBadRequest)
			return
		}

		filters := make([]EvaluationFilter, 0)
		if v, err := strconv.Atoi(r.URL.Query().Get("missingThreshold")); err == nil && v >= 0 {
			filters = append(filters, FilterMaxMissing(v))
		}

		es, err := RankByCookability(d.Logger(), d.DB())(c.OwnerId(), rms, filters...)
		if err != nil {
			d.Logger().WithError(err).Errorf("Ranking recipes for owner [%d].", c.OwnerId())
			w.WriteHeader(http.StatusInternalServerError)
			return
		}
		marshalEvaluations(d, c, w, es)
	}
}

func handlePlanMeals(d *rest.HandlerDependency, c *rest.HandlerContext, input []recipe.RestModel) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		rms, err := recipe.ExtractAll(input)
		if err != nil {
			w.WriteHeader(http.StatusBadRequest)
			return
		}

		es, err := RankByExpiryPriority(d.Logger(), d.DB())(c.OwnerId(), rms)
		if err != nil {
			d.Logger().WithError(err).Errorf("Planning meals for owner [%d].", c.OwnerId())
			w.WriteHeader(http.StatusInternalServerError)
			return
		}
		marshalEvaluations(d, c, w, es)
	}
}

func marshalEvaluations(d *rest.HandlerDependency, c *rest.HandlerContext, w http.ResponseWriter, es []Evaluation) {
	res, err := model.TransformAll(es, Transform)
	if err != nil {
		d.Logger().WithError(err).Errorf("Creating REST model.")
		w.WriteHeader(http.StatusInternalServerError)
		return
	}
	server.Marshal[[]EvaluationRestModel](d.Logger())(w)(c.ServerInformation())(res)
}

func handleBuildShoppingList(d *rest.HandlerDependency, c *rest.HandlerContext, input []recipe.RestModel) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		rms, err := recipe.ExtractAll(input)
		if err != nil {
			w.WriteHeader(http.StatusBadRequest)
			return
		}

		entries, err := ShoppingList(d.Logger(), d.DB())(c.OwnerId(), rms)
		if err != nil {
			d.Logger().WithError(err).Errorf("Building shopping list for owner [%d].", c.OwnerId())
			w.WriteHeader(http.StatusInternalServerError)
			return
		}

		res, err := TransformShoppingList(c.OwnerId(), entries)
		if err != nil {
			d.Logger().WithError(err).Errorf("Creating REST model.")
			w.WriteHeader(http.StatusInternalServerError)
			return
		}
		server.Marshal[ShoppingListRestModel](d.Logger())(w)(c.ServerInformation())(res)
	}
}
