/*
config.go - Accrual policy file loading

PURPOSE:
  Loads an optional YAML policy file and overlays it on the built-in
  defaults. Every field is optional; an absent field keeps its default,
  so a file can override just the one number a deployment cares about.

FILE FORMAT (all hours, all optional):
  standard_monthly_rate: 13.34
  standard_cap: 160
  flex_jan_monthly: 10
  flex_other_monthly: 8
  flex_annual_accrual_cap: 48
  flex_carryover_cap: 48
  flex_balance_cap: 96
  workday_hours: 8

SEE ALSO:
  - pto/types.go: The Config the overlay produces
*/
package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/warp/pto-engine/pto"
)

// file mirrors the YAML document. Pointers distinguish "absent" from
// an explicit zero override.
type file struct {
	StandardMonthlyRate  *float64 `yaml:"standard_monthly_rate"`
	StandardCap          *float64 `yaml:"standard_cap"`
	FlexJanMonthly       *float64 `yaml:"flex_jan_monthly"`
	FlexOtherMonthly     *float64 `yaml:"flex_other_monthly"`
	FlexAnnualAccrualCap *float64 `yaml:"flex_annual_accrual_cap"`
	FlexCarryoverCap     *float64 `yaml:"flex_carryover_cap"`
	FlexBalanceCap       *float64 `yaml:"flex_balance_cap"`
	WorkdayHours         *float64 `yaml:"workday_hours"`
}

// Load reads a YAML policy file and overlays it on pto.DefaultConfig().
// An empty path returns the defaults unchanged.
func Load(path string) (pto.Config, error) {
	cfg := pto.DefaultConfig()
	if path == "" {
		return cfg, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return pto.Config{}, fmt.Errorf("failed to read config file: %w", err)
	}
	return overlay(cfg, data)
}

// Parse overlays YAML bytes on pto.DefaultConfig().
func Parse(data []byte) (pto.Config, error) {
	return overlay(pto.DefaultConfig(), data)
}

func overlay(cfg pto.Config, data []byte) (pto.Config, error) {
	var f file
	if err := yaml.Unmarshal(data, &f); err != nil {
		return pto.Config{}, fmt.Errorf("failed to parse config file: %w", err)
	}

	set := func(dst *pto.Hours, src *float64) {
		if src != nil {
			*dst = pto.NewHours(*src)
		}
	}
	set(&cfg.StandardMonthlyRate, f.StandardMonthlyRate)
	set(&cfg.StandardCap, f.StandardCap)
	set(&cfg.FlexJanMonthly, f.FlexJanMonthly)
	set(&cfg.FlexOtherMonthly, f.FlexOtherMonthly)
	set(&cfg.FlexAnnualAccrualCap, f.FlexAnnualAccrualCap)
	set(&cfg.FlexCarryoverCap, f.FlexCarryoverCap)
	set(&cfg.FlexBalanceCap, f.FlexBalanceCap)
	set(&cfg.WorkdayHours, f.WorkdayHours)

	return cfg, nil
}
