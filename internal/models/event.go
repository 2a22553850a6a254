package models

// Points event operations.
const (
	OperationHazardReported = "hazard_reported"
	OperationRewardRedeemed = "reward_redeemed"
)

// PointsEvent describes a change of a user's points balance.
type PointsEvent struct {
	EventID   string `json:"event_id"`  // EventID is a unique identifier for the event.
	Timestamp int64  `json:"timestamp"` // Timestamp is the Unix timestamp (in seconds) of the change.
	UserID    int64  `json:"user_id"`   // UserID is the identifier of the affected user.
	Username  string `json:"username"`  // Username of the affected user.
	Operation string `json:"operation"` // Operation is either hazard_reported or reward_redeemed.
	Points    int    `json:"points"`    // Points is the signed change applied to the balance.
	Balance   int    `json:"balance"`   // Balance is the balance after the change.
}
