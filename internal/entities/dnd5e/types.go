package dnd5e

// RaceOption is a selectable race with summary rules data
type RaceOption struct {
	Key   string `json:"key"`
	Name  string `json:"name"`
	Size  string `json:"size,omitempty"`
	Speed int    `json:"speed,omitempty"`
}

// ClassOption is a selectable class with summary rules data
type ClassOption struct {
	Key    string `json:"key"`
	Name   string `json:"name"`
	HitDie int    `json:"hitDie,omitempty"`
}
