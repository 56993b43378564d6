package domain

import "time"

// SavedScenario is a named configuration kept in the scenario store
type SavedScenario struct {
	ID   string        `yaml:"id" json:"id"`
	Name string        `yaml:"name" json:"name"`
	Date time.Time     `yaml:"date" json:"date"`
	Data Configuration `yaml:"data" json:"data"`
}
