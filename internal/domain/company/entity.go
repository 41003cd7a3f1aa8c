package company

import "time"

type Company struct {
	ID       string
	Name     string
	Username string
	Address  *string
	LogoURL  *string

	// Agency registration numbers, printed on statutory report headers and
	// electronic submission control records.
	TIN                      string
	RDOCode                  string
	SSSEmployerNumber        string
	PhilHealthEmployerNumber string
	PagIBIGEmployerNumber    string

	CreatedAt time.Time
	UpdatedAt time.Time
}
