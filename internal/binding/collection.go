package binding

// Collection is an ordered sequence of elements produced by exhaustive
// searches. Order is the path-discovery order and is externally
// observable; no operation reorders or deduplicates.
//
// The zero value is an empty collection ready for use.
//
// Append and Extend mutate the collection and exist for result
// aggregation. The algebra operations (Combine, Fix, Filter, Fetch) are
// pure and return new collections.
type Collection struct {
	elems []Element
}

// NewCollection creates a collection from elements in the given order.
func NewCollection(elems ...Element) *Collection {
	c := &Collection{}
	for _, e := range elems {
		c.Append(e)
	}
	return c
}

// FromRecords creates a collection of record elements in the given order.
func FromRecords(records ...Record) *Collection {
	c := &Collection{}
	for _, r := range records {
		c.Append(r)
	}
	return c
}

// Append adds one element to the end of the collection.
// Record keys are canonicalized and the record is copied, so the caller
// may keep mutating its own map afterwards.
func (c *Collection) Append(e Element) {
	if r, ok := e.(Record); ok {
		e = canonRecord(r)
	}
	c.elems = append(c.elems, e)
}

// Extend appends every element of other, preserving order.
// Elements of other were canonicalized on their own entry and are
// shared, not copied: elements are never mutated once inside a
// collection.
func (c *Collection) Extend(other *Collection) {
	if other == nil {
		return
	}
	c.elems = append(c.elems, other.elems...)
}

// Len returns the number of elements.
func (c *Collection) Len() int {
	return len(c.elems)
}

// Elements returns a copy of the element sequence.
func (c *Collection) Elements() []Element {
	out := make([]Element, len(c.elems))
	copy(out, c.elems)
	return out
}

// Records returns the record elements in collection order, skipping
// scalars.
func (c *Collection) Records() []Record {
	var out []Record
	for _, e := range c.elems {
		if r, ok := e.(Record); ok {
			out = append(out, r)
		}
	}
	return out
}

// Combine builds the cross product of the record elements of c and
// other: for every record a in c (outer loop) and every record b in
// other (inner loop), the result contains a copy of a overwritten by
// every key of b.
//
// The operation is not commutative - a key present in both records
// takes b's value in c.Combine(other) and a's value in
// other.Combine(c). Scalar elements do not participate.
func (c *Collection) Combine(other *Collection) *Collection {
	out := &Collection{}
	if other == nil {
		return out
	}
	for _, ea := range c.elems {
		a, ok := ea.(Record)
		if !ok {
			continue
		}
		for _, eb := range other.elems {
			b, ok := eb.(Record)
			if !ok {
				continue
			}
			merged := make(Record, len(a)+len(b))
			for k, v := range a {
				merged[k] = v
			}
			for k, v := range b {
				merged[k] = v
			}
			out.elems = append(out.elems, merged)
		}
	}
	return out
}

// Fix returns the elements whose bindings do not violate the
// constraints: a record survives iff for every constrained key it
// binds, the bound value equals the constraint value. Records lacking a
// constrained key survive - a constraint must not be violated, it need
// not exist. Use Filter to require existence.
//
// Scalar elements bind nothing and always survive.
func (c *Collection) Fix(constraints Record) *Collection {
	constraints = canonRecord(constraints)
	out := &Collection{}
	for _, e := range c.elems {
		r, ok := e.(Record)
		if !ok {
			out.elems = append(out.elems, e)
			continue
		}
		if satisfies(r, constraints) {
			out.elems = append(out.elems, r)
		}
	}
	return out
}

// Filter returns the records that bind every constrained key to the
// constraint value: Fix plus an existence requirement. Scalar elements
// are dropped unless the constraint set is empty.
func (c *Collection) Filter(constraints Record) *Collection {
	constraints = canonRecord(constraints)
	out := &Collection{}
	for _, e := range c.elems {
		r, ok := e.(Record)
		if !ok {
			if len(constraints) == 0 {
				out.elems = append(out.elems, e)
			}
			continue
		}
		if !satisfies(r, constraints) {
			continue
		}
		if containsKeys(r, constraints) {
			out.elems = append(out.elems, r)
		}
	}
	return out
}

// Fetch projects one variable: the values bound to name, taken from
// every record that binds it, in collection order. Records without the
// variable and scalar elements are skipped.
func (c *Collection) Fetch(name string) []any {
	name = CanonicalKey(name)
	var out []any
	for _, e := range c.elems {
		r, ok := e.(Record)
		if !ok {
			continue
		}
		if v, ok := r[name]; ok {
			out = append(out, v)
		}
	}
	return out
}

// Equal reports element-wise equality in order. Used by tests.
func (c *Collection) Equal(other *Collection) bool {
	if c.Len() != other.Len() {
		return false
	}
	for i, e := range c.elems {
		o := other.elems[i]
		switch ev := e.(type) {
		case Record:
			or, ok := o.(Record)
			if !ok || !EqualRecords(ev, or) {
				return false
			}
		case Scalar:
			os, ok := o.(Scalar)
			if !ok || !Equal(ev.Value, os.Value) {
				return false
			}
		}
	}
	return true
}

// satisfies reports whether r violates none of the constraints.
func satisfies(r, constraints Record) bool {
	for k, want := range constraints {
		if got, ok := r[k]; ok && !Equal(got, want) {
			return false
		}
	}
	return true
}

// containsKeys reports whether r binds every constrained key.
func containsKeys(r, constraints Record) bool {
	for k := range constraints {
		if _, ok := r[k]; !ok {
			return false
		}
	}
	return true
}
