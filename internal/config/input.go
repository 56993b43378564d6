package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/compoundpro/compound-calculator/internal/domain"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gopkg.in/yaml.v3"
)

const (
	maxYearsToGrow = 200
	maxStartAge    = 150
)

var (
	maxRatePercent = decimal.NewFromInt(100)
)

// ConfigurationError lists every constraint a configuration violates
type ConfigurationError struct {
	Violations []string
}

func (e *ConfigurationError) Error() string {
	return fmt.Sprintf("invalid configuration: %s", strings.Join(e.Violations, "; "))
}

func (e *ConfigurationError) add(format string, args ...any) {
	e.Violations = append(e.Violations, fmt.Sprintf(format, args...))
}

// InputParser handles parsing of plan files
type InputParser struct {
	// NewID generates identifiers for events that omit one.
	NewID func() string
}

// NewInputParser creates a new input parser
func NewInputParser() *InputParser {
	return &InputParser{NewID: uuid.NewString}
}

// LoadFromFile loads a configuration from a YAML or JSON file and validates it
func (ip *InputParser) LoadFromFile(filename string) (*domain.Configuration, error) {
	data, err := os.ReadFile(filename)
	if err != nil {
		return nil, fmt.Errorf("failed to read file %s: %w", filename, err)
	}

	var config *domain.Configuration
	if strings.EqualFold(filepath.Ext(filename), ".json") {
		config, err = ip.ParseJSON(data)
	} else {
		config, err = ip.ParseYAML(data)
	}
	if err != nil {
		return nil, err
	}

	if err := ip.ValidateConfiguration(config); err != nil {
		return nil, fmt.Errorf("configuration validation failed: %w", err)
	}

	return config, nil
}

// ParseYAML decodes a configuration without validating it
func (ip *InputParser) ParseYAML(data []byte) (*domain.Configuration, error) {
	var config domain.Configuration
	if err := yaml.Unmarshal(data, &config); err != nil {
		return nil, fmt.Errorf("failed to parse YAML: %w", err)
	}
	ip.assignEventIDs(&config)
	return &config, nil
}

// ParseJSON decodes a configuration without validating it
func (ip *InputParser) ParseJSON(data []byte) (*domain.Configuration, error) {
	var config domain.Configuration
	if err := json.Unmarshal(data, &config); err != nil {
		return nil, fmt.Errorf("failed to parse JSON: %w", err)
	}
	ip.assignEventIDs(&config)
	return &config, nil
}

func (ip *InputParser) assignEventIDs(config *domain.Configuration) {
	newID := ip.NewID
	if newID == nil {
		newID = uuid.NewString
	}
	for i := range config.OneTimeEvents {
		if strings.TrimSpace(config.OneTimeEvents[i].ID) == "" {
			config.OneTimeEvents[i].ID = newID()
		}
	}
}

// ValidateConfiguration checks the ranges the engine relies on. It returns a
// *ConfigurationError naming every violated constraint, or nil.
func (ip *InputParser) ValidateConfiguration(config *domain.Configuration) error {
	verr := &ConfigurationError{}

	if config.InitialPrincipal.IsNegative() {
		verr.add("initial principal cannot be negative")
	}
	if config.MonthlyContribution.IsNegative() {
		verr.add("monthly contribution cannot be negative")
	}
	if config.MonthlyWithdrawal.IsNegative() {
		verr.add("monthly withdrawal cannot be negative")
	}
	if config.AnnualRate.IsNegative() || config.AnnualRate.GreaterThan(maxRatePercent) {
		verr.add("annual rate must be between 0%% and 100%%")
	}
	if config.InflationRate.IsNegative() || config.InflationRate.GreaterThan(maxRatePercent) {
		verr.add("inflation rate must be between 0%% and 100%%")
	}
	if config.YearsToGrow < 1 || config.YearsToGrow > maxYearsToGrow {
		verr.add("years to grow must be between 1 and %d", maxYearsToGrow)
	}
	if config.StartAge < 0 || config.StartAge > maxStartAge {
		verr.add("start age must be between 0 and %d", maxStartAge)
	}
	if config.RetirementYear < 1 || config.RetirementYear > config.YearsToGrow {
		verr.add("retirement year must be between 1 and years to grow (%d)", config.YearsToGrow)
	}

	seen := make(map[string]bool, len(config.OneTimeEvents))
	for i, event := range config.OneTimeEvents {
		ip.validateEvent(verr, i, &event, config.YearsToGrow)
		if event.ID != "" {
			if seen[event.ID] {
				verr.add("event %d: duplicate id %q", i, event.ID)
			}
			seen[event.ID] = true
		}
	}

	if len(verr.Violations) > 0 {
		return verr
	}
	return nil
}

// validateEvent validates a single one-time event
func (ip *InputParser) validateEvent(verr *ConfigurationError, index int, event *domain.Event, yearsToGrow int) {
	if strings.TrimSpace(event.ID) == "" {
		verr.add("event %d: id is required", index)
	}
	if event.Year < 1 || event.Year > yearsToGrow {
		verr.add("event %d: year must be between 1 and %d", index, yearsToGrow)
	}
	if event.Amount.IsNegative() {
		verr.add("event %d: amount cannot be negative", index)
	}
	if !event.Type.IsValid() {
		verr.add("event %d: type must be 'deposit' or 'withdrawal', got %q", index, event.Type)
	}
}

// CreateExampleConfiguration returns the calculator's default plan with two sample events
func (ip *InputParser) CreateExampleConfiguration() *domain.Configuration {
	return &domain.Configuration{
		InitialPrincipal:    decimal.NewFromInt(100000),
		MonthlyContribution: decimal.NewFromInt(10000),
		AnnualRate:          decimal.NewFromInt(6),
		YearsToGrow:         30,
		StartAge:            25,
		RetirementYear:      30,
		MonthlyWithdrawal:   decimal.Zero,
		InflationRate:       decimal.NewFromInt(2),
		OneTimeEvents: []domain.Event{
			{
				ID:     "year-end-bonus",
				Year:   15,
				Amount: decimal.NewFromInt(100000),
				Type:   domain.EventDeposit,
				Name:   "Lump-sum deposit",
			},
			{
				ID:     "home-down-payment",
				Year:   10,
				Amount: decimal.NewFromInt(300000),
				Type:   domain.EventWithdrawal,
				Name:   "Home down payment",
			},
		},
	}
}
