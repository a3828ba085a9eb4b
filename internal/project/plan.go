// Package project handles save/load of plan documents and the user's
// fixture library as plain JSON files.
package project

import (
	"encoding/json"
	"os"
	"path/filepath"

	"github.com/planfit/planfit/internal/model"
)

// SavePlan writes the plan to the specified JSON file. It creates parent
// directories if they do not exist.
func SavePlan(path string, plan model.Plan) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return err
	}
	data, err := json.MarshalIndent(plan, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}

// LoadPlan reads a plan from the specified JSON file.
func LoadPlan(path string) (model.Plan, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return model.Plan{}, err
	}
	var plan model.Plan
	if err := json.Unmarshal(data, &plan); err != nil {
		return model.Plan{}, err
	}
	return plan, nil
}

// LoadOrCreatePlan loads a plan from the given path, or returns a fresh
// empty plan when the file does not exist yet.
func LoadOrCreatePlan(path string) (model.Plan, error) {
	plan, err := LoadPlan(path)
	if err != nil {
		if os.IsNotExist(err) {
			return model.NewPlan(), nil
		}
		return model.Plan{}, err
	}
	return plan, nil
}
