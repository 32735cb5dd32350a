package inventory

import (
	"atlas-pantry/kafka/producer"

	"github.com/Chronicle20/atlas-model/model"
	"github.com/segmentio/kafka-go"
)

func itemAddProvider(ownerId uint32, itemId uint32, name string, locationId uint32, quantity float64) model.Provider[[]kafka.Message] {
	key := producer.CreateKey(int(ownerId))
	value := &inventoryChangedEvent[inventoryChangedAddBody]{
		OwnerId: ownerId,
		ItemId:  itemId,
		Type:    ChangedTypeAdd,
		Body: inventoryChangedAddBody{
			Name:       name,
			LocationId: locationId,
			Quantity:   quantity,
		},
	}
	return producer.SingleMessageProvider(key, value)
}

func itemUpdateProvider(ownerId uint32, itemId uint32, name string, quantity float64, quantityChange float64) model.Provider[[]kafka.Message] {
	key := producer.CreateKey(int(ownerId))
	value := &inventoryChangedEvent[inventoryChangedUpdateBody]{
		OwnerId: ownerId,
		ItemId:  itemId,
		Type:    ChangedTypeUpdate,
		Body: inventoryChangedUpdateBody{
			Name:           name,
			Quantity:       quantity,
			QuantityChange: quantityChange,
		},
	}
	return producer.SingleMessageProvider(key, value)
}

func itemRemoveProvider(ownerId uint32, itemId uint32, name string, quantity float64) model.Provider[[]kafka.Message] {
	key := producer.CreateKey(int(ownerId))
	value := &inventoryChangedEvent[inventoryChangedRemoveBody]{
		OwnerId: ownerId,
		ItemId:  itemId,
		Type:    ChangedTypeRemove,
		Body: inventoryChangedRemoveBody{
			Name:     name,
			Quantity: quantity,
		},
	}
	return producer.SingleMessageProvider(key, value)
}
