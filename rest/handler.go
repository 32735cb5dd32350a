package rest

import (
	"io"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"
	"github.com/manyminds/api2go/jsonapi"
	"github.com/opentracing/opentracing-go"
	"github.com/opentracing/opentracing-go/ext"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

type HandlerDependency struct {
	l    logrus.FieldLogger
	db   *gorm.DB
	span opentracing.Span
}

func (h HandlerDependency) Logger() logrus.FieldLogger {
	return h.l
}

func (h HandlerDependency) DB() *gorm.DB {
	return h.db
}

func (h HandlerDependency) Span() opentracing.Span {
	return h.span
}

type HandlerContext struct {
	si      jsonapi.ServerInformation
	ownerId uint32
}

func (h HandlerContext) ServerInformation() jsonapi.ServerInformation {
	return h.si
}

func (h HandlerContext) OwnerId() uint32 {
	return h.ownerId
}

type GetHandler func(d *HandlerDependency, c *HandlerContext) http.HandlerFunc

type InputHandler[M any] func(d *HandlerDependency, c *HandlerContext, model M) http.HandlerFunc

func ParseInput[M any](d *HandlerDependency, c *HandlerContext, next InputHandler[M]) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var model M

		body, err := io.ReadAll(r.Body)
		if err != nil {
			w.WriteHeader(http.StatusBadRequest)
			return
		}
		defer r.Body.Close()

		err = jsonapi.Unmarshal(body, &model)
		if err != nil {
			d.l.WithError(err).Errorln("Deserializing input", err)
			w.WriteHeader(http.StatusBadRequest)
			return
		}
		next(d, c, model)(w, r)
	}
}

type SpanHandler func(l logrus.FieldLogger, span opentracing.Span) http.HandlerFunc

func RetrieveSpan(l logrus.FieldLogger, handlerName string, next SpanHandler) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		sctx, _ := opentracing.GlobalTracer().Extract(opentracing.HTTPHeaders, opentracing.HTTPHeadersCarrier(r.Header))
		span := opentracing.StartSpan(handlerName, ext.RPCServerOption(sctx))
		defer span.Finish()
		next(l, span)(w, r)
	}
}

type OwnerIdHandler func(ownerId uint32) http.HandlerFunc

// ParseOwnerId resolves the owner identifier from the path. Authentication is an
// upstream concern, the identifier arrives already validated.
func ParseOwnerId(l logrus.FieldLogger, next OwnerIdHandler) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ownerId, err := strconv.Atoi(mux.Vars(r)["ownerId"])
		if err != nil {
			l.WithError(err).Errorf("Unable to properly parse ownerId from path.")
			w.WriteHeader(http.StatusBadRequest)
			return
		}
		next(uint32(ownerId))(w, r)
	}
}

func RegisterHandler(l logrus.FieldLogger) func(db *gorm.DB) func(si jsonapi.ServerInformation) func(handlerName string, handler GetHandler) http.HandlerFunc {
	return func(db *gorm.DB) func(si jsonapi.ServerInformation) func(handlerName string, handler GetHandler) http.HandlerFunc {
		return func(si jsonapi.ServerInformation) func(handlerName string, handler GetHandler) http.HandlerFunc {
			return func(handlerName string, handler GetHandler) http.HandlerFunc {
				return RetrieveSpan(l, handlerName, func(sl logrus.FieldLogger, span opentracing.Span) http.HandlerFunc {
					fl := sl.WithFields(logrus.Fields{"originator": handlerName, "type": "rest_handler"})
					return ParseOwnerId(fl, func(ownerId uint32) http.HandlerFunc {
						return handler(&HandlerDependency{l: fl, db: db, span: span}, &HandlerContext{si: si, ownerId: ownerId})
					})
				})
			}
		}
	}
}

func RegisterInputHandler[M any](l logrus.FieldLogger) func(db *gorm.DB) func(si jsonapi.ServerInformation) func(handlerName string, handler InputHandler[M]) http.HandlerFunc {
	return func(db *gorm.DB) func(si jsonapi.ServerInformation) func(handlerName string, handler InputHandler[M]) http.HandlerFunc {
		return func(si jsonapi.ServerInformation) func(handlerName string, handler InputHandler[M]) http.HandlerFunc {
			return func(handlerName string, handler InputHandler[M]) http.HandlerFunc {
				return RetrieveSpan(l, handlerName, func(sl logrus.FieldLogger, span opentracing.Span) http.HandlerFunc {
					fl := sl.WithFields(logrus.Fields{"originator": handlerName, "type": "rest_handler"})
					return ParseOwnerId(fl, func(ownerId uint32) http.HandlerFunc {
						d := &HandlerDependency{l: fl, db: db, span: span}
						c := &HandlerContext{si: si, ownerId: ownerId}
						return ParseInput[M](d, c, handler)
					})
				})
			}
		}
	}
}

type LocationIdHandler func(locationId uint32) http.HandlerFunc

func ParseLocationId(l logrus.FieldLogger, next LocationIdHandler) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		locationId, err := strconv.Atoi(mux.Vars(r)["locationId"])
		if err != nil {
			l.WithError(err).Errorf("Unable to properly parse locationId from path.")
			w.WriteHeader(http.StatusBadRequest)
			return
		}
		next(uint32(locationId))(w, r)
	}
}

type ItemIdHandler func(itemId uint32) http.HandlerFunc

func ParseItemId(l logrus.FieldLogger, next ItemIdHandler) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		itemId, err := strconv.Atoi(mux.Vars(r)["itemId"])
		if err != nil {
			l.WithError(err).Errorf("Unable to properly parse itemId from path.")
			w.WriteHeader(http.StatusBadRequest)
			return
		}
		next(uint32(itemId))(w, r)
	}
}
