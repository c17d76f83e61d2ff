package assumptions

import (
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
)

// Snapshot is one immutable set of assumptions a projection is computed
// from. Callers must not mutate a snapshot while a calculation pass is in
// flight; simulated scenarios each get their own snapshot.
type Snapshot struct {
	Name        string         `json:"name"`
	Year        int            `json:"year" validate:"gte=2000,lte=2100"`
	Services    []Service      `json:"services" validate:"dive"`
	Contractors []Contractor   `json:"contractors" validate:"dive"`
	Employees   []CLTEmployee  `json:"employees" validate:"dive"`
	Partners    []Partner      `json:"partners" validate:"dive"`
	Expenses    []FixedExpense `json:"expenses" validate:"dive"`
	Operational Operational    `json:"operational"`
	Payroll     PayrollParams  `json:"payroll"`
	Tax         TaxParams      `json:"tax"`
	Dividends   DividendPolicy `json:"dividends"`
	Finance     FinanceParams  `json:"finance"`
	TDABC       TDABCParams    `json:"tdabc"`
}

// Fingerprint returns a stable content hash of the snapshot, used as a
// cache key component so derived results invalidate whenever any
// assumption changes.
func (s *Snapshot) Fingerprint() string {
	raw, err := json.Marshal(s)
	if err != nil {
		return ""
	}
	sum := sha256.Sum256(raw)
	return hex.EncodeToString(sum[:])
}

// ServiceByName looks up a service, reporting whether it exists.
func (s *Snapshot) ServiceByName(name string) (Service, bool) {
	for _, svc := range s.Services {
		if svc.Name == name {
			return svc, true
		}
	}
	return Service{}, false
}

// SeasonalityFactor returns the session multiplier for month index 0-11,
// one when no seasonality is configured.
func (s *Snapshot) SeasonalityFactor(monthIdx int) float64 {
	if s.Operational.Seasonality == nil {
		return 1
	}
	return s.Operational.Seasonality[monthIdx]
}
