package mlbwire

type transactionsResponse struct {
	Transactions []transactionResponse `json:"transactions"`
}

type transactionResponse struct {
	Person        personResponse `json:"person"`
	ToTeam        teamResponse   `json:"toTeam"`
	FromTeam      teamResponse   `json:"fromTeam"`
	TypeDesc      string         `json:"typeDesc"`
	Description   string         `json:"description"`
	Date          string         `json:"date"`
	EffectiveDate string         `json:"effectiveDate"`
}

type personResponse struct {
	FullName string `json:"fullName"`
}

type teamResponse struct {
	Name string `json:"name"`
}
