package ctk

import (
	"fmt"
	"strconv"
	"strings"
)

var slotNames = map[string]Slot{
	"onset":   SlotOnset,
	"nucleus": SlotNucleus,
	"coda":    SlotCoda,
	"tone":    SlotTone,
}

// ParseSlots parses a slot list into slot indices.
// Format: comma-separated items, each a slot name ("onset"), a single
// index ("2") or an index range ("0-2").
func ParseSlots(s string) ([]Slot, error) {
	var result []Slot
	for _, part := range strings.Split(s, ",") {
		part = strings.ToLower(strings.TrimSpace(part))
		if part == "" {
			continue
		}
		if slot, ok := slotNames[part]; ok {
			result = append(result, slot)
			continue
		}
		if idx := strings.Index(part, "-"); idx > 0 {
			start, err := parseSlotIndex(part[:idx])
			if err != nil {
				return nil, err
			}
			end, err := parseSlotIndex(part[idx+1:])
			if err != nil {
				return nil, err
			}
			for i := start; i <= end; i++ {
				result = append(result, i)
			}
			continue
		}
		n, err := parseSlotIndex(part)
		if err != nil {
			return nil, err
		}
		result = append(result, n)
	}
	if len(result) == 0 {
		return nil, fmt.Errorf("slot list %q is empty", s)
	}
	return result, nil
}

func parseSlotIndex(s string) (Slot, error) {
	n, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil {
		return 0, fmt.Errorf("slot %q: %w", s, err)
	}
	if n < int(SlotOnset) || n > int(SlotTone) {
		return 0, fmt.Errorf("slot %d out of range 0-3", n)
	}
	return Slot(n), nil
}
