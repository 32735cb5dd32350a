package database

import (
	"github.com/Chronicle20/atlas-model/model"
	"gorm.io/gorm"
)

type EntityProvider[E any] func(db *gorm.DB) model.Provider[E]

type EntitySliceProvider[E any] func(db *gorm.DB) model.SliceProvider[E]

func Query[E any](db *gorm.DB, query interface{}) model.Provider[E] {
	var result E
	err := db.Where(query).First(&result).Error
	if err != nil {
		return model.ErrorProvider[E](err)
	}
	return model.FixedProvider(result)
}

func SliceQuery[E any](db *gorm.DB, query interface{}) model.SliceProvider[E] {
	var results []E
	err := db.Where(query).Find(&results).Error
	if err != nil {
		return model.ErrorProvider[[]E](err)
	}
	return model.FixedProvider(results)
}

func ModelProvider[M any, E any](db *gorm.DB) func(ep EntityProvider[E], transform func(E) (M, error)) model.Provider[M] {
	return func(ep EntityProvider[E], transform func(E) (M, error)) model.Provider[M] {
		return func() (M, error) {
			var m M
			e, err := ep(db)()
			if err != nil {
				return m, err
			}
			return transform(e)
		}
	}
}

func ModelSliceProvider[M any, E any](db *gorm.DB) func(ep EntitySliceProvider[E], transform func(E) (M, error)) model.SliceProvider[M] {
	return func(ep EntitySliceProvider[E], transform func(E) (M, error)) model.SliceProvider[M] {
		return func() ([]M, error) {
			es, err := ep(db)()
			if err != nil {
				return nil, err
			}
			ms := make([]M, 0)
			for _, e := range es {
				m, err := transform(e)
				if err != nil {
					return nil, err
				}
				ms = append(ms, m)
			}
			return ms, nil
		}
	}
}
