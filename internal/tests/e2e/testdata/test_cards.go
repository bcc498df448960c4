package testdata

// Cards published for the Webpay Plus integration environment.
type TestCard struct {
	CardNumber  string
	CVV         string
	Description string
	Approved    bool
}

var (
	ApprovedVisa = TestCard{
		CardNumber:  "4051885600446623",
		CVV:         "123",
		Description: "VISA credit, always approved",
		Approved:    true,
	}

	RejectedMastercard = TestCard{
		CardNumber:  "5186059559590568",
		CVV:         "123",
		Description: "Mastercard credit, always rejected",
		Approved:    false,
	}

	ApprovedRedcompra = TestCard{
		CardNumber:  "4051884239937763",
		Description: "Redcompra debit, approved",
		Approved:    true,
	}
)
