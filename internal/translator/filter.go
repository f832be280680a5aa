// Canopy STAPI - Satellite tasking API backend for Umbra Canopy
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/stapi-canopy

package translator

import (
	"fmt"

	"github.com/tomtom215/stapi-canopy/internal/models/canopy"
)

// CQL2 properties understood when narrowing spotlight constraints.
const (
	filterPropertyGrazingAngle = "grazing_angle_degrees"
	filterPropertySceneSize    = "scene_size"
)

// applyFilter narrows constraints with the comparisons of a CQL2-JSON
// filter. A single comparison or an "and" of comparisons is accepted.
// Comparisons on other properties are ignored.
func applyFilter(c *canopy.SpotlightConstraints, filter map[string]any) error {
	if len(filter) == 0 {
		return nil
	}

	op, _ := filter["op"].(string)
	args, _ := filter["args"].([]any)

	if op == "and" {
		for _, a := range args {
			sub, ok := a.(map[string]any)
			if !ok {
				return fmt.Errorf("%w: filter: \"and\" arguments must be expressions", ErrInvalidConstraint)
			}
			if err := applyComparison(c, sub); err != nil {
				return err
			}
		}
		return nil
	}
	return applyComparison(c, filter)
}

func applyComparison(c *canopy.SpotlightConstraints, expr map[string]any) error {
	op, _ := expr["op"].(string)
	args, _ := expr["args"].([]any)
	if op == "" || len(args) == 0 {
		return fmt.Errorf("%w: filter: expression needs op and args", ErrInvalidConstraint)
	}

	property := propertyName(args[0])
	switch property {
	case filterPropertyGrazingAngle:
		return applyGrazingAngle(c, op, args[1:])
	case filterPropertySceneSize:
		if op != "=" || len(args) != 2 {
			return fmt.Errorf("%w: filter: %s supports only \"=\"", ErrInvalidConstraint, property)
		}
		size, ok := args[1].(string)
		if !ok {
			return fmt.Errorf("%w: filter: %s must be a string", ErrInvalidConstraint, property)
		}
		c.SceneSize = size
		return nil
	default:
		return nil
	}
}

func applyGrazingAngle(c *canopy.SpotlightConstraints, op string, values []any) error {
	nums := make([]float64, 0, len(values))
	for _, v := range values {
		n, ok := toFloat(v)
		if !ok {
			return fmt.Errorf("%w: filter: %s value %v is not a number", ErrInvalidConstraint, filterPropertyGrazingAngle, v)
		}
		nums = append(nums, n)
	}

	switch {
	case op == ">=" && len(nums) == 1:
		c.GrazingAngleMinDegrees = nums[0]
	case op == "<=" && len(nums) == 1:
		c.GrazingAngleMaxDegrees = nums[0]
	case op == "between" && len(nums) == 2:
		c.GrazingAngleMinDegrees = nums[0]
		c.GrazingAngleMaxDegrees = nums[1]
	default:
		return fmt.Errorf("%w: filter: unsupported %q comparison on %s", ErrInvalidConstraint, op, filterPropertyGrazingAngle)
	}
	return nil
}

func propertyName(arg any) string {
	m, ok := arg.(map[string]any)
	if !ok {
		return ""
	}
	name, _ := m["property"].(string)
	return name
}

func toFloat(v any) (float64, bool) {
	switch n := v.(type) {
	case float64:
		return n, true
	case int:
		return float64(n), true
	case int64:
		return float64(n), true
	case uint64:
		return float64(n), true
	default:
		return 0, false
	}
}
