package collection

import "github.com/codequest/quest-engine/events"

// Method is one of the fixed HTTP method set an API layer teaches
type Method string

const (
	MethodGet    Method = "GET"
	MethodPost   Method = "POST"
	MethodPut    Method = "PUT"
	MethodDelete Method = "DELETE"
)

// Methods lists the full set a CRUD layer requires, in display order
var Methods = []Method{MethodGet, MethodPost, MethodPut, MethodDelete}

// DefaultCRUDBonus is awarded on CRUD completion, distinct from the
// token-order sequence bonus.
const DefaultCRUDBonus = 400

// CRUDTracker records which methods have completed at least one
// successful request. Completion fires once all four have a success,
// independent of call order.
type CRUDTracker struct {
	bus       *events.Bus
	bonus     int
	succeeded map[Method]int
	fired     bool
}

// NewCRUDTracker creates a tracker for one API layer instance
func NewCRUDTracker(bus *events.Bus, bonus int) *CRUDTracker {
	if bonus <= 0 {
		bonus = DefaultCRUDBonus
	}
	return &CRUDTracker{
		bus:       bus,
		bonus:     bonus,
		succeeded: make(map[Method]int),
	}
}

// Record notes the outcome of one request. Failed requests never count;
// repeats of one method never substitute for a missing one.
func (c *CRUDTracker) Record(m Method, success bool) {
	if !success || !validMethod(m) {
		return
	}
	c.succeeded[m]++
	if c.fired {
		return
	}
	for _, method := range Methods {
		if c.succeeded[method] == 0 {
			return
		}
	}
	c.fired = true
	c.bus.Publish(events.EventCRUDComplete, &events.CRUDCompletePayload{Bonus: c.bonus})
}

// Complete reports whether all four methods have at least one success
func (c *CRUDTracker) Complete() bool {
	return c.fired
}

// Successes returns the recorded success count for a method
func (c *CRUDTracker) Successes(m Method) int {
	return c.succeeded[m]
}

// Bonus returns the configured CRUD-completion bonus
func (c *CRUDTracker) Bonus() int {
	return c.bonus
}

func validMethod(m Method) bool {
	for _, method := range Methods {
		if m == method {
			return true
		}
	}
	return false
}
