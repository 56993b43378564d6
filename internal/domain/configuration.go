package domain

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/shopspring/decimal"
	"gopkg.in/yaml.v3"
)

// EventType distinguishes one-time deposits from one-time withdrawals
type EventType string

const (
	EventDeposit    EventType = "deposit"
	EventWithdrawal EventType = "withdrawal"
)

// IsValid reports whether t is a known event type
func (t EventType) IsValid() bool {
	return t == EventDeposit || t == EventWithdrawal
}

// Event is a one-off cash movement applied at the start of its year
type Event struct {
	ID     string          `yaml:"id" json:"id"`
	Year   int             `yaml:"year" json:"year"`
	Amount decimal.Decimal `yaml:"amount" json:"amount"`
	Type   EventType       `yaml:"type" json:"type"`
	Name   string          `yaml:"name" json:"name"`
}

// UnmarshalYAML normalizes the event type so "Deposit" and "deposit" are equivalent
func (e *Event) UnmarshalYAML(value *yaml.Node) error {
	type alias Event
	var aux alias
	if err := value.Decode(&aux); err != nil {
		return err
	}
	*e = Event(aux)
	e.Type = normalizeEventType(e.Type)
	return nil
}

// UnmarshalJSON applies the same type normalization as UnmarshalYAML
func (e *Event) UnmarshalJSON(data []byte) error {
	type alias Event
	var aux alias
	if err := json.Unmarshal(data, &aux); err != nil {
		return err
	}
	*e = Event(aux)
	e.Type = normalizeEventType(e.Type)
	return nil
}

func normalizeEventType(t EventType) EventType {
	return EventType(strings.ToLower(strings.TrimSpace(string(t))))
}

// Configuration is a complete savings and withdrawal plan. Rates are percentages (6 means 6%).
type Configuration struct {
	InitialPrincipal    decimal.Decimal `yaml:"initial_principal" json:"initial_principal"`
	MonthlyContribution decimal.Decimal `yaml:"monthly_contribution" json:"monthly_contribution"`
	AnnualRate          decimal.Decimal `yaml:"annual_rate" json:"annual_rate"`
	YearsToGrow         int             `yaml:"years_to_grow" json:"years_to_grow"`
	StartAge            int             `yaml:"start_age" json:"start_age"`

	// RetirementYear is the last accumulation year; withdrawals start the year after.
	RetirementYear    int             `yaml:"retirement_year" json:"retirement_year"`
	MonthlyWithdrawal decimal.Decimal `yaml:"monthly_withdrawal" json:"monthly_withdrawal"`

	// InflationRate only affects purchasing power. Omitted means zero.
	InflationRate decimal.Decimal `yaml:"inflation_rate,omitempty" json:"inflation_rate,omitempty"`

	OneTimeEvents []Event `yaml:"one_time_events,omitempty" json:"one_time_events,omitempty"`
}

// IsRetirement reports whether year falls in the withdrawal phase
func (c *Configuration) IsRetirement(year int) bool {
	return year > c.RetirementYear
}

// AgeAt returns the age reached at the given year index
func (c *Configuration) AgeAt(year int) int {
	return c.StartAge + year
}

// RetirementAge returns the age at the end of the last accumulation year
func (c *Configuration) RetirementAge() int {
	return c.AgeAt(c.RetirementYear)
}

// EventsInYear returns the events scheduled for year, preserving collection order
func (c *Configuration) EventsInYear(year int) []Event {
	var events []Event
	for _, e := range c.OneTimeEvents {
		if e.Year == year {
			events = append(events, e)
		}
	}
	return events
}

// Describe returns a one-line human summary of the plan
func (c *Configuration) Describe() string {
	return fmt.Sprintf("principal %s, %s/month at %s%% for %d years (withdraw %s/month after year %d)",
		c.InitialPrincipal.StringFixed(0),
		c.MonthlyContribution.StringFixed(0),
		c.AnnualRate.String(),
		c.YearsToGrow,
		c.MonthlyWithdrawal.StringFixed(0),
		c.RetirementYear)
}
