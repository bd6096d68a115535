package models

// Bank is one entry of the Spanish payment-service register, keyed by its
// IBAN prefix ("ES" + 4-digit entity code).
type Bank struct {
	IBANPrefix     string `json:"iban_prefix"`
	Name           string `json:"name"`
	EntityCode     string `json:"entity_code"`
	Address        string `json:"address"`
	LEI            string `json:"lei,omitempty"`
	Operator       string `json:"operator,omitempty"`
	Provider       string `json:"provider,omitempty"`
	SupervisorCode string `json:"supervisor_code,omitempty"`
}
