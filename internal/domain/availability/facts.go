package availability

// Fact is one independently fetched fact set. Every fetch takes a generation from
// Begin; only the latest generation may land, and only while its key is still the
// draft's current key.
type Fact[K comparable, V any] struct {
	Key     K
	Value   V
	Loaded  bool
	Loading bool
	Err     error

	gen uint64
}

func (f *Fact[K, V]) Begin(key K) uint64 {
	f.gen++
	f.Key = key
	f.Loading = true
	f.Err = nil
	return f.gen
}

// Resolve stores v and reports whether it was applied.
func (f *Fact[K, V]) Resolve(gen uint64, current K, v V) bool {
	if !f.isCurrent(gen, current) {
		return false
	}
	f.Value = v
	f.Loaded = true
	f.Loading = false
	f.Err = nil
	return true
}

// Fail records err and keeps the previous value.
func (f *Fact[K, V]) Fail(gen uint64, current K, err error) bool {
	if !f.isCurrent(gen, current) {
		return false
	}
	f.Loading = false
	f.Err = err
	return true
}

// Cancel bumps the generation so any in-flight fetch is discarded.
func (f *Fact[K, V]) Cancel() {
	f.gen++
	f.Loading = false
}

func (f *Fact[K, V]) Generation() uint64 { return f.gen }

func (f *Fact[K, V]) isCurrent(gen uint64, current K) bool {
	return gen == f.gen && f.Key == current
}

// Facts groups the three fact sets the resolver keeps for a draft.
type Facts struct {
	Days      Fact[DayKey, map[string]bool]
	Slots     Fact[SlotKey, []Slot]
	Durations Fact[DurationKey, []int]
}
