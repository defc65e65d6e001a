package component

// TTL destroys its entity when Ticks reaches zero. Dying grace periods and
// attack telegraph leftovers use it.
type TTL struct {
	Ticks int
}

var TTLComponent = NewComponent[TTL]()
