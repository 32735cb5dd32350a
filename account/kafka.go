package account

const (
	EnvEventTopicAccountStatus = "EVENT_TOPIC_ACCOUNT_STATUS"

	EventAccountStatusCreated = "CREATED"
	EventAccountStatusDeleted = "DELETED"
)

type statusEvent struct {
	AccountId uint32 `json:"accountId"`
	Name      string `json:"name"`
	Status    string `json:"status"`
}
