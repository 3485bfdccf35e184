package parse

import (
	"fmt"
	"strings"
	"sync"
)

// Template renders a natural-language sentence for an invocation. It must
// return a complete sentence even when expected argument keys are absent.
type Template func(args map[string]any) string

var (
	templateMu sync.RWMutex
	templates  = map[string]Template{
		"search_flights": func(args map[string]any) string {
			departure := argString(args, "departure_airport", "your departure city")
			arrival := argString(args, "arrival_airport", "your destination")
			return fmt.Sprintf("I'll search for flights from %s to %s for you.", departure, arrival)
		},
		"search_hotels": func(args map[string]any) string {
			location := argString(args, "location", "")
			if location == "" {
				location = argString(args, "city", "your destination")
			}
			return fmt.Sprintf("Let me search for hotels in %s.", location)
		},
		"book_hotel": func(args map[string]any) string {
			return fmt.Sprintf("I'll book hotel ID %s for you.", argString(args, "hotel_id", "the selected hotel"))
		},
		"book_car_rental": func(args map[string]any) string {
			return fmt.Sprintf("I'll book car rental ID %s for you.", argString(args, "rental_id", "the selected car"))
		},
		"cancel_booking": func(args map[string]any) string {
			kind := argString(args, "booking_type", "booking")
			if id := argString(args, "booking_id", ""); id != "" {
				return fmt.Sprintf("I'll cancel your %s %s for you.", kind, id)
			}
			return fmt.Sprintf("I'll cancel your %s for you.", kind)
		},
		"lookup_policy": func(map[string]any) string {
			return "Let me look up our company policies for you."
		},
		"fetch_user_flight_information": func(map[string]any) string {
			return "Let me check your current flight bookings."
		},
		"web_search_tool": func(args map[string]any) string {
			return fmt.Sprintf("I'll search the web for information about %s.", argString(args, "query", "your request"))
		},
	}
)

// Describe renders a sentence describing the named invocation. Tools without
// a registered template get the generic fallback, so the result is never
// empty.
func Describe(name string, args map[string]any) string {
	templateMu.RLock()
	tmpl, ok := templates[name]
	templateMu.RUnlock()
	if ok {
		return tmpl(args)
	}
	return fmt.Sprintf("I'll use the %s tool to help you.", name)
}

// RegisterTemplate installs or replaces the sentence template for a tool
// name. Segmentation logic is untouched; this only changes how the tool is
// narrated.
func RegisterTemplate(name string, tmpl Template) {
	name = strings.TrimSpace(name)
	if name == "" || tmpl == nil {
		return
	}
	templateMu.Lock()
	templates[name] = tmpl
	templateMu.Unlock()
}

// argString renders an argument value for interpolation, falling back to a
// placeholder phrase when the key is missing or blank.
func argString(args map[string]any, key, fallback string) string {
	v, ok := args[key]
	if !ok {
		return fallback
	}
	s := strings.TrimSpace(fmt.Sprint(v))
	if s == "" {
		return fallback
	}
	return s
}
