package entity

// Domain event types published to the message bus.
const (
	EventAccountRegistered   = "account.registered"
	EventAccountVerified     = "account.verified"
	EventSellerStatusChanged = "seller.status_changed"
	EventContactReceived     = "contact.received"
)
