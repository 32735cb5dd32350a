package inventory

const (
	EnvEventTopicInventoryChanged = "EVENT_TOPIC_INVENTORY_CHANGED"

	ChangedTypeAdd    = "INVENTORY_CHANGED_TYPE_ADD"
	ChangedTypeUpdate = "INVENTORY_CHANGED_TYPE_UPDATE"
	ChangedTypeRemove = "INVENTORY_CHANGED_TYPE_REMOVE"
)

type inventoryChangedEvent[M any] struct {
	OwnerId uint32 `json:"ownerId"`
	ItemId  uint32 `json:"itemId"`
	Type    string `json:"type"`
	Body    M      `json:"body"`
}

type inventoryChangedAddBody struct {
	Name       string  `json:"name"`
	LocationId uint32  `json:"locationId"`
	Quantity   float64 `json:"quantity"`
}

type inventoryChangedUpdateBody struct {
	Name           string  `json:"name"`
	Quantity       float64 `json:"quantity"`
	QuantityChange float64 `json:"quantityChange"`
}

type inventoryChangedRemoveBody struct {
	Name     string  `json:"name"`
	Quantity float64 `json:"quantity"`
}
