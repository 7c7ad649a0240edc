package hxwire

import (
	"regexp"
	"strconv"
	"strings"
	"time"
)

// TriggerKind discriminates the closed set of trigger forms.
type TriggerKind int

const (
	// TriggerEvent fires when a named interaction reaches the element.
	TriggerEvent TriggerKind = iota

	// TriggerEvery fires on a repeating timer.
	TriggerEvery

	// TriggerLoad fires exactly once, when the tree becomes interactive.
	TriggerLoad
)

// DefaultEvent is the interaction a binding listens for when its trigger
// spec is absent or empty.
const DefaultEvent = "click"

// Trigger is one normalized trigger descriptor. Exactly one of the
// kind-specific fields is meaningful: Event for TriggerEvent, Every for
// TriggerEvery, neither for TriggerLoad.
type Trigger struct {
	Kind  TriggerKind
	Event string
	Every time.Duration
}

// everyPattern matches "every <n>" with an optional ms/s unit suffix.
// The number may be fractional; the unit defaults to milliseconds.
var everyPattern = regexp.MustCompile(`^every\s+([0-9]+(?:\.[0-9]+)?)\s*(ms|s)?$`)

// ParseTriggers turns a raw hx-trigger attribute value into trigger
// descriptors.
//
// The spec is a comma-separated list of tokens. "load" is the one-shot
// readiness trigger, "every <n>[ms|s]" is a repeating timer, and anything
// else is an event name. Malformed interval tokens are dropped without
// error. The result is never empty: an absent or empty spec (or one whose
// tokens were all dropped) falls back to the single DefaultEvent trigger.
func ParseTriggers(raw string) []Trigger {
	var triggers []Trigger

	for _, token := range strings.Split(raw, ",") {
		token = strings.TrimSpace(token)
		if token == "" {
			continue
		}

		switch {
		case token == "load":
			triggers = append(triggers, Trigger{Kind: TriggerLoad})

		case token == "every" || strings.HasPrefix(token, "every ") || strings.HasPrefix(token, "every\t"):
			m := everyPattern.FindStringSubmatch(token)
			if m == nil {
				continue // malformed interval: lenient drop
			}
			n, err := strconv.ParseFloat(m[1], 64)
			if err != nil {
				continue
			}
			unit := time.Millisecond
			if m[2] == "s" {
				unit = time.Second
			}
			d := time.Duration(n * float64(unit))
			if d <= 0 {
				continue
			}
			triggers = append(triggers, Trigger{Kind: TriggerEvery, Every: d})

		default:
			triggers = append(triggers, Trigger{Kind: TriggerEvent, Event: token})
		}
	}

	if len(triggers) == 0 {
		triggers = []Trigger{{Kind: TriggerEvent, Event: DefaultEvent}}
	}
	return triggers
}
