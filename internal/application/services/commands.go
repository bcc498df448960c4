package services

type CreateCommand struct {
	BuyOrder  string
	SessionID string
	Amount    string
	UserAgent string
}

// AuthorizeCommand carries what the gateway hands back through the buyer's
// browser. AbortToken is set instead of Token when the buyer cancelled on
// the gateway's payment form.
type AuthorizeCommand struct {
	Reference  string
	Token      string
	AbortToken string
}

type RefundCommand struct {
	BuyOrder     string
	AuthCode     string
	Amount       string
	CommerceCode string
}
